// SPDX-License-Identifier: MIT

package cluster

import (
	"fmt"
	"strings"
)

// Merge is one agglomeration step. A < B are the ids of the merged clusters
// (leaves are 0..n-1, the cluster built at step k is n+k). Size counts the
// leaves of the new cluster.
type Merge struct {
	A        int
	B        int
	Distance float64
	Size     int
}

// Tree is an immutable merge tree over labelled leaves.
type Tree struct {
	labels  []string
	merges  []Merge
	linkage Linkage
}

// Len returns the number of leaves.
func (t *Tree) Len() int { return len(t.labels) }

// Labels returns a copy of the leaf labels, indexed by leaf id.
func (t *Tree) Labels() []string {
	out := make([]string, len(t.labels))
	copy(out, t.labels)

	return out
}

// Merges returns a copy of the merge steps in order.
func (t *Tree) Merges() []Merge {
	out := make([]Merge, len(t.merges))
	copy(out, t.merges)

	return out
}

// Linkage returns the linkage the tree was built with.
func (t *Tree) Linkage() Linkage { return t.linkage }

// Height returns the distance of the final merge.
func (t *Tree) Height() float64 {
	if len(t.merges) == 0 {
		return 0
	}

	return t.merges[len(t.merges)-1].Distance
}

// Root returns the id of the root cluster.
func (t *Tree) Root() int { return 2*t.Len() - 2 }

// IsLeaf reports whether id names a leaf.
func (t *Tree) IsLeaf(id int) bool { return id >= 0 && id < t.Len() }

// Children returns the two clusters merged into id. Leaves have none.
func (t *Tree) Children(id int) (a, b int, ok bool) {
	k := id - t.Len()
	if k < 0 || k >= len(t.merges) {
		return 0, 0, false
	}

	return t.merges[k].A, t.merges[k].B, true
}

// NodeHeight returns the merge distance of id; leaves have height 0.
func (t *Tree) NodeHeight(id int) float64 {
	k := id - t.Len()
	if k < 0 || k >= len(t.merges) {
		return 0
	}

	return t.merges[k].Distance
}

// Order returns the leaf ids from left to right.
//
// The tree is walked depth-first from the root; at every node the child with
// the smaller merge height is visited first (leaves count as height 0), and
// equal heights go to the lower id.
// Complexity: O(n).
func (t *Tree) Order() []int {
	if t.Len() == 0 {
		return []int{}
	}
	order := make([]int, 0, t.Len())
	t.walk(t.Root(), func(leaf int) { order = append(order, leaf) })

	return order
}

// OrderedLabels returns the leaf labels in Order.
func (t *Tree) OrderedLabels() []string {
	out := make([]string, 0, t.Len())
	for _, id := range t.Order() {
		out = append(out, t.labels[id])
	}

	return out
}

// walk visits the leaves under id in display order. It uses an explicit stack
// so that deep chains (n in the thousands) do not grow the goroutine stack.
func (t *Tree) walk(id int, visit func(leaf int)) {
	stack := []int{id}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		first, second, ok := t.orderedChildren(top)
		if !ok {
			visit(top)

			continue
		}
		stack = append(stack, second, first) // first is popped next
	}
}

// orderedChildren returns the children of id in display order.
func (t *Tree) orderedChildren(id int) (first, second int, ok bool) {
	a, b, ok := t.Children(id)
	if !ok {
		return 0, 0, false
	}
	if t.NodeHeight(b) < t.NodeHeight(a) {
		return b, a, true
	}

	return a, b, true
}

// String renders the merge steps, one per line, for logs and debugging.
func (t *Tree) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tree(%s, %d leaves)\n", t.linkage, t.Len())
	for k, m := range t.merges {
		fmt.Fprintf(&b, "%d: %d+%d -> %d at %g (size %d)\n", k, m.A, m.B, t.Len()+k, m.Distance, m.Size)
	}

	return b.String()
}
