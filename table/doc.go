// SPDX-License-Identifier: MIT

// Package table reads sample-by-feature tables from text and writes pairwise
// matrices back out.
//
// Input format: whitespace-separated fields, one sample per line. The first
// non-blank line that is not a '#' comment holds the column names. A data
// line may carry one extra leading field, which becomes the row name; all
// data lines must agree on whether they do. Every other field must parse as
// a number. There is no missing-value support: "NA" or any other
// non-numeric text fails with a ParseError naming line, column and text.
//
// The column filters mirror the usual preparation of relative-abundance
// data before a heatmap: keep columns that are abundant in enough samples,
// drop all-zero columns, rescale each column to [0, 1].
package table
