// SPDX-License-Identifier: MIT

package cluster

import "github.com/katalvlaran/simmap/matrix"

var (
	// ErrTooFewLeaves is returned when fewer than two entities are supplied.
	ErrTooFewLeaves = matrix.NewValidation("cluster: at least 2 entities are required")

	// ErrUnknownLinkage is returned for a linkage name or value outside the supported set.
	ErrUnknownLinkage = matrix.NewValidation("cluster: unknown linkage")

	// ErrBadOption is returned for an option value outside its domain.
	ErrBadOption = matrix.NewValidation("cluster: invalid option")

	// ErrNotDistance is returned when the input breaks the distance-matrix contract.
	ErrNotDistance = matrix.NewInvariant("cluster: input is not a distance matrix")
)
