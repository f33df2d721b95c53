// SPDX-License-Identifier: MIT

package similarity

import "github.com/katalvlaran/simmap/matrix"

var (
	// ErrNilInput is returned when no table is supplied.
	ErrNilInput = matrix.NewValidation("similarity: nil input table")

	// ErrTooFewColumns is returned when fewer than two columns are available.
	ErrTooFewColumns = matrix.NewValidation("similarity: at least 2 columns are required")

	// ErrTooFewRows is returned when a correlation is requested on fewer than two rows.
	ErrTooFewRows = matrix.NewValidation("similarity: at least 2 rows are required for a correlation")

	// ErrNonFinite is returned when the input holds NaN or ±Inf.
	ErrNonFinite = matrix.NewValidation("similarity: non-finite input value")

	// ErrZeroVariance is returned when a correlation involves a constant column.
	ErrZeroVariance = matrix.NewValidation("similarity: column has zero variance")

	// ErrOverflow is returned when a distance or a variance exceeds the float64 range.
	ErrOverflow = matrix.NewValidation("similarity: result overflows float64")

	// ErrBadOption is returned for an option value outside its domain.
	ErrBadOption = matrix.NewValidation("similarity: invalid option")
)
