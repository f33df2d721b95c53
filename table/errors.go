// SPDX-License-Identifier: MIT

package table

import (
	"fmt"

	"github.com/katalvlaran/simmap/matrix"
)

var (
	// ErrParse is returned for a cell that is not a number.
	ErrParse = matrix.NewValidation("table: cannot parse cell")

	// ErrRagged is returned when a data line has the wrong number of fields.
	ErrRagged = matrix.NewValidation("table: line has the wrong number of fields")

	// ErrNoHeader is returned for input without a header line.
	ErrNoHeader = matrix.NewValidation("table: missing header")

	// ErrNoRows is returned for a header without data lines.
	ErrNoRows = matrix.NewValidation("table: no data rows")

	// ErrNoColumns is returned when the filters remove every column.
	ErrNoColumns = matrix.NewValidation("table: no columns left after filtering")

	// ErrBadFilter is returned for a filter threshold outside [0, 1].
	ErrBadFilter = matrix.NewValidation("table: filter threshold must lie in [0, 1]")
)

// ParseError locates a cell that failed to parse. It unwraps to ErrParse.
type ParseError struct {
	Line   int    // 1-based line number in the input
	Column string // header name of the column
	Text   string // the offending field
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: line %d, column %q: %q is not a number", ErrParse, e.Line, e.Column, e.Text)
}

func (e *ParseError) Unwrap() error { return ErrParse }
