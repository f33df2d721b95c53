// SPDX-License-Identifier: MIT

package similarity

import (
	"cmp"
	"slices"
)

// Rank returns the 1-based ranks of x. Tied values share the average of the
// ranks they span, so [10, 20, 20, 30] ranks as [1, 2.5, 2.5, 4].
// x is not modified. Complexity: O(n log n).
func Rank(x []float64) []float64 {
	n := len(x)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int { return cmp.Compare(x[a], x[b]) })

	ranks := make([]float64, n)
	for start := 0; start < n; {
		end := start + 1
		for end < n && x[idx[end]] == x[idx[start]] {
			end++
		}
		// positions start..end-1 hold equal values: ranks start+1..end
		avg := float64(start+1+end) / 2
		for k := start; k < end; k++ {
			ranks[idx[k]] = avg
		}
		start = end
	}

	return ranks
}
