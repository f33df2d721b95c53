// SPDX-License-Identifier: MIT

package scale

import "github.com/katalvlaran/simmap/matrix"

var (
	// ErrUnknownPolicy is returned for a policy name outside default, tight, focus.
	ErrUnknownPolicy = matrix.NewValidation("scale: unknown policy")

	// ErrFocusBounds is returned when focus thresholds are missing, non-finite or inverted.
	ErrFocusBounds = matrix.NewValidation("scale: invalid focus bounds")

	// ErrNilMatrix is returned when no matrix is supplied.
	ErrNilMatrix = matrix.NewValidation("scale: nil matrix")
)
