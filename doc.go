// SPDX-License-Identifier: MIT

// Package simmap computes pairwise similarity and dissimilarity between the
// columns of a numeric table, clusters them hierarchically and draws the
// result as heatmaps and dendrograms.
//
// The module is a set of small packages, each a pure function of its inputs:
//
//	matrix/      labelled Table input, labelled Square results, validators,
//	             column statistics, the two error classes
//	metric/      the closed registry of correlation and distance methods
//	similarity/  correlation matrices (pearson, spearman, kendall) and
//	             distance matrices (euclidean, maximum, manhattan, canberra,
//	             binary, minkowski)
//	scale/       colour bounds: default (-1, 1), tight (min, max), focus
//	cluster/     average, single and complete linkage; leaf order; layout
//	render/      PNG heatmaps of matrices and value tables, dendrograms
//	table/       text table reader and writer, column filters
//	config/      run configuration from YAML, TOML or flags
//	pipeline/    one concurrent task per method, with a per-method summary
//	cmd/simmap/  the command line
//
// Quick example:
//
//	tb, _ := table.ReadFile("cells.txt")
//	corr, _ := similarity.Compute(tb, metric.Pearson)
//	d, _ := similarity.OneMinus(corr)
//	tree, _ := cluster.Cluster(d)
//	ordered, _ := corr.Reorder(tree.Order())
//	b, _ := scale.Compute(ordered, scale.Config{Policy: scale.Default})
//	_ = render.NewPNG().Heatmap(w, ordered, b, "pearson")
//
// Errors:
//
//	Every failure is either matrix.ErrValidation (the input or the
//	configuration cannot be used) or matrix.ErrInvariant (a stage handed
//	over a result that breaks its contract). Test with matrix.IsValidation
//	and matrix.IsInvariant, or errors.Is against the package sentinels.
package simmap
