// SPDX-License-Identifier: MIT

// Package render draws pairwise matrices, value tables and dendrograms into
// PNG images.
//
// A heatmap places one square cell per matrix entry; Values does the same for
// a samples × features table. Row labels run down the
// left side, column labels are written vertically above the grid, and a
// legend bar on the right shows the colour ramp with its low, mid and high
// ticks. Cell colours come from a three-stop Palette blended in CIE-L*a*b*;
// the value of each cell is mapped to [0, 1] by scale.Bounds.Norm.
//
// A dendrogram is drawn from cluster.Layout: leaves spread evenly along the
// X axis with their labels under the plot, merge heights grow upwards.
//
// The renderer is headless: it writes into any io.Writer and needs no
// display, fonts on disk or cgo.
package render
