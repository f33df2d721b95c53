// SPDX-License-Identifier: MIT

package cluster

import (
	"fmt"
	"math"

	"github.com/katalvlaran/simmap/matrix"
)

// minLeaves is the smallest number of entities that can be clustered.
const minLeaves = 2

// Cluster builds the merge tree of the distance matrix sq.
//
// Implementation:
//   - Stage 1: validate options and the distance-matrix contract.
//   - Stage 2: copy sq into a working matrix indexed by slot; slot p holds the
//     cluster ids[p] of size sizes[p] while active[p] is set.
//   - Stage 3: n-1 times, pick the closest active pair (ties: lowest id pair),
//     record the merge, move the new cluster into the lower slot and update its
//     distances with the Lance-Williams rule of the linkage.
//
// Errors:
//   - ErrUnknownLinkage, ErrBadOption, ErrTooFewLeaves (validation).
//   - ErrNotDistance (invariant), wrapping the matrix sentinel that failed.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Cluster(sq *matrix.Square, opts ...Option) (*Tree, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("Cluster: %w", err)
	}
	if sq == nil {
		return nil, fmt.Errorf("Cluster: %w: %w", ErrNotDistance, matrix.ErrNilMatrix)
	}
	n := sq.Size()
	if n < minLeaves {
		return nil, fmt.Errorf("Cluster: %w: got %d", ErrTooFewLeaves, n)
	}
	if err = validateDistance(sq, o.Tolerance); err != nil {
		return nil, fmt.Errorf("Cluster(%dx%d): %w: %w", n, n, ErrNotDistance, err)
	}

	d := sq.Values() // working copy, row-major n×n indexed by slot
	ids := make([]int, n)
	sizes := make([]int, n)
	active := make([]bool, n)
	for p := range ids {
		ids[p], sizes[p], active[p] = p, 1, true
	}

	merges := make([]Merge, 0, n-1)
	for step := 0; step < n-1; step++ {
		p, q := closestPair(d, n, ids, active)
		a, b := ids[p], ids[q]
		if a > b {
			a, b = b, a
		}
		merged := sizes[p] + sizes[q]
		merges = append(merges, Merge{A: a, B: b, Distance: d[p*n+q], Size: merged})

		// Lance-Williams update into slot p; slot q retires.
		for k := 0; k < n; k++ {
			if !active[k] || k == p || k == q {
				continue
			}
			v := update(o.Linkage, d[p*n+k], d[q*n+k], sizes[p], sizes[q])
			d[p*n+k], d[k*n+p] = v, v
		}
		ids[p], sizes[p] = n+step, merged
		active[q] = false
	}

	return &Tree{labels: sq.Labels(), merges: merges, linkage: o.Linkage}, nil
}

// closestPair returns the active slots p<q at minimum distance. Among equal
// distances the pair whose sorted cluster ids (lo, hi) are lexicographically
// smallest wins.
func closestPair(d []float64, n int, ids []int, active []bool) (bp, bq int) {
	best := math.Inf(1)
	bestLo, bestHi := -1, -1
	var p, q, lo, hi int
	for p = 0; p < n; p++ {
		if !active[p] {
			continue
		}
		for q = p + 1; q < n; q++ {
			if !active[q] {
				continue
			}
			lo, hi = ids[p], ids[q]
			if lo > hi {
				lo, hi = hi, lo
			}
			v := d[p*n+q]
			if bestLo < 0 || v < best || (v == best && (lo < bestLo || (lo == bestLo && hi < bestHi))) {
				best, bp, bq, bestLo, bestHi = v, p, q, lo, hi
			}
		}
	}

	return bp, bq
}

// update returns the distance from the union of clusters a and b to a third
// cluster, given its distances da and db to a and b.
func update(l Linkage, da, db float64, sa, sb int) float64 {
	switch l {
	case Single:
		return math.Min(da, db)
	case Complete:
		return math.Max(da, db)
	default:
		return (float64(sa)*da + float64(sb)*db) / float64(sa+sb)
	}
}

// validateDistance checks the distance-matrix contract: finite, symmetric and
// zero-diagonal within tol, no negative cell.
func validateDistance(sq *matrix.Square, tol float64) error {
	if err := matrix.ValidateFinite(sq); err != nil {
		return err
	}
	if err := matrix.ValidateSymmetric(sq, tol); err != nil {
		return err
	}
	if err := matrix.ValidateDiagonal(sq, 0, tol); err != nil {
		return err
	}

	return matrix.ValidateNonNegative(sq)
}
