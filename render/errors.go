// SPDX-License-Identifier: MIT

package render

import "github.com/katalvlaran/simmap/matrix"

var (
	// ErrEmptyMatrix is returned when there is nothing to draw.
	ErrEmptyMatrix = matrix.NewValidation("render: empty matrix")

	// ErrBadBounds is returned for colour bounds that are not finite or not ordered.
	ErrBadBounds = matrix.NewValidation("render: invalid colour bounds")

	// ErrNilTree is returned when Dendrogram receives no tree.
	ErrNilTree = matrix.NewValidation("render: nil tree")

	// ErrEmptyTree is returned for a tree with fewer than two leaves.
	ErrEmptyTree = matrix.NewValidation("render: tree has fewer than 2 leaves")
)
