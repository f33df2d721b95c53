// SPDX-License-Identifier: MIT

package metric

import "github.com/katalvlaran/simmap/matrix"

var (
	// ErrUnsupportedMethod is returned for a method name outside the registry.
	ErrUnsupportedMethod = matrix.NewValidation("metric: unsupported method")

	// ErrNoMethods is returned when a method list is empty.
	ErrNoMethods = matrix.NewValidation("metric: no methods requested")

	// ErrDuplicateMethod is returned when a method list names the same method twice.
	ErrDuplicateMethod = matrix.NewValidation("metric: duplicate method")
)
