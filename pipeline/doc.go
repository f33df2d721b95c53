// SPDX-License-Identifier: MIT

// Package pipeline runs every requested method over one table and writes the
// resulting plots.
//
// Each method is an independent task: it computes its own matrix, bounds
// and tree, and owns them until they are rendered. Tasks run concurrently
// up to the configured limit. A failing method is recorded in its Result
// and never stops the others; the Summary collects every outcome.
//
// Files are named after the output base and the method:
//
//	<output>_<method>.png                 heatmap, or the value table in value mode
//	<output>_<method>_dendogram.png       dendrogram (distance and value mode)
//	<output>_<method>_rows_dendogram.png  row dendrogram (value mode with Cluster)
//	<output>_<method>.tsv                 drawn matrix or table (with Export)
//
// Every file is written to a temporary name in the output directory and
// renamed into place once complete, so a failed method leaves nothing half
// written behind.
package pipeline
