// SPDX-License-Identifier: MIT

// Package metric is the registry of pairwise comparison methods.
//
// Method names arrive from users as case-sensitive strings. They are resolved
// once, at the boundary, into the closed Method enumeration; everything
// downstream switches on Method and never compares strings again.
//
// Two families exist:
//
//	Correlation: pearson, spearman, kendall
//	Distance:    euclidean, maximum, manhattan, canberra, binary, minkowski
//
// An unknown name fails with ErrUnsupportedMethod, whose message lists the
// exact supported set. Resolution reads no data, so a bad method list fails
// before any input is touched.
package metric
