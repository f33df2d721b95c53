// SPDX-License-Identifier: MIT

package pipeline

import "github.com/katalvlaran/simmap/matrix"

var (
	// ErrNilTable is returned when Run receives no table.
	ErrNilTable = matrix.NewValidation("pipeline: nil table")

	// ErrNilRenderer is returned when Run receives no renderer.
	ErrNilRenderer = matrix.NewInvariant("pipeline: nil renderer")
)
