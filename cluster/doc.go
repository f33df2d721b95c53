// SPDX-License-Identifier: MIT

// Package cluster performs agglomerative hierarchical clustering on a
// distance matrix and lays the resulting merge tree out as a dendrogram.
//
// Algorithm:
//
//	Start with one singleton cluster per entity (leaf ids 0..n-1). At every
//	step merge the two active clusters at minimum distance; the new cluster
//	gets id n+k at step k. Distances from the new cluster to the remaining
//	ones follow the Lance-Williams update of the chosen linkage:
//
//	  Average (UPGMA, default)  (|a|·d(a,c) + |b|·d(b,c)) / (|a|+|b|)
//	  Single                    min(d(a,c), d(b,c))
//	  Complete                  max(d(a,c), d(b,c))
//
//	Average linkage equals the unweighted mean over all leaf pairs across the
//	two clusters. Ties are broken by the lexicographically lowest (A, B) id
//	pair, so the tree is fully deterministic.
//
// Guarantees:
//
//   - exactly n-1 merges for n leaves;
//   - non-decreasing merge distances (all three linkages are reducible);
//   - the Tree is immutable once returned.
//
// Errors:
//
//	Fewer than two entities is a matrix.ErrValidation (ErrTooFewLeaves).
//	A matrix that is not a distance matrix (non-square, asymmetric, non-zero
//	diagonal, negative cells) is a matrix.ErrInvariant (ErrNotDistance): the
//	stage that produced it broke its contract.
//
// Complexity: O(n³) time, O(n²) space.
package cluster
