// SPDX-License-Identifier: MIT

package cluster

// Segment is an axis-aligned line of a dendrogram drawing, in layout units:
// X runs over leaf positions (0..n-1), Y is the merge distance.
type Segment struct {
	X0, Y0, X1, Y1 float64
}

// LeafPos places a leaf on the X axis.
type LeafPos struct {
	ID    int
	Label string
	X     float64
}

// Dendrogram is a renderer-neutral drawing of a Tree.
type Dendrogram struct {
	Leaves   []LeafPos // in display order, X = 0, 1, ...
	Segments []Segment
	Height   float64 // largest Y
}

// Layout computes the dendrogram drawing of t.
//
// Leaves take consecutive X positions in Order. An internal node sits at the
// mean X of its two children and at Y equal to its merge distance. Each node
// contributes a vertical line from each child up to its own height and one
// horizontal bar joining the two children at that height.
// A tree with fewer than two leaves, such as the zero Tree, has nothing to
// draw and yields an empty Dendrogram.
// Complexity: O(n).
func Layout(t *Tree) Dendrogram {
	n := t.Len()
	if n < minLeaves || len(t.merges) != n-1 {
		return Dendrogram{}
	}
	xs := make([]float64, 2*n-1)
	dg := Dendrogram{
		Leaves:   make([]LeafPos, 0, n),
		Segments: make([]Segment, 0, 3*(n-1)),
		Height:   t.Height(),
	}
	for pos, id := range t.Order() {
		xs[id] = float64(pos)
		dg.Leaves = append(dg.Leaves, LeafPos{ID: id, Label: t.labels[id], X: float64(pos)})
	}

	// Merges are stored bottom-up: children always precede their parent.
	for k, m := range t.merges {
		id := n + k
		xa, xb := xs[m.A], xs[m.B]
		xs[id] = (xa + xb) / 2
		y := m.Distance
		dg.Segments = append(dg.Segments,
			Segment{X0: xa, Y0: t.NodeHeight(m.A), X1: xa, Y1: y},
			Segment{X0: xb, Y0: t.NodeHeight(m.B), X1: xb, Y1: y},
			Segment{X0: min(xa, xb), Y0: y, X1: max(xa, xb), Y1: y},
		)
	}

	return dg
}
