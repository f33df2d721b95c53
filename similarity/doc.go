// SPDX-License-Identifier: MIT

// Package similarity computes pairwise correlation and distance matrices
// between the columns of a matrix.Table.
//
// What & Why:
//
//	Every column of the input is an entity (a feature); every row is one
//	observation of all entities. Compute compares each pair of columns with
//	the requested metric.Method and returns a labelled matrix.Square indexed
//	by the column names.
//
// Correlation family (Compute):
//
//	pearson   linear correlation coefficient
//	spearman  pearson over per-column ranks, ties share their average rank
//	kendall   Kendall tau-b rank concordance, corrected for ties
//
// The result is exactly symmetric, has an exact unit diagonal and lies in [-1, 1].
//
// Distance family (Compute and Distance):
//
//	euclidean  L2 norm of the difference
//	manhattan  L1 norm
//	maximum    L∞ norm, the largest absolute difference
//	minkowski  Lp norm, p = 2 unless WithMinkowskiP says otherwise
//	canberra   Σ |x-y| / (|x|+|y|), terms where both values are 0 are skipped
//	binary     share of disagreeing non-zero positions among positions where
//	           at least one value is non-zero (0 when both are all zero)
//
// The result is exactly symmetric, non-negative, with an exact zero diagonal.
//
// Distance is the clustering view of the same methods: correlation methods
// become the pseudo-metric 1 - corr, clamped at zero, so that average-linkage
// clustering always receives a non-negative matrix.
//
// All input checks (at least two columns, every cell finite, and for
// correlations at least two rows and no constant column) run before any
// computation. Failures are matrix.ErrValidation and name the offending column.
// The functions are pure: the input is never mutated and repeated calls return
// bit-identical results.
package similarity
