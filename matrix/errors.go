// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set and error classes.
// Every message is prefixed with "matrix: ..." for grepping across logs.
// Callers match sentinels with errors.Is; context is added with
// fmt.Errorf("ctx: %w", ErrX) at the detection site.
//
// ERROR CLASSES
// -------------
// Two class sentinels partition every failure in the module:
//   - ErrValidation: the input or configuration cannot be used as given.
//   - ErrInvariant:  an internal contract between stages was breached.
//
// Sentinels created with NewValidation/NewInvariant unwrap to their class,
// so errors.Is(err, ErrValidation) holds for any wrapped descendant.
// Structural sentinels below (ErrNonSquare, ErrAsymmetry, ...) carry no class
// on purpose: the consumer decides whether the breach is the user's input or
// an upstream bug, and wraps accordingly.

package matrix

import "errors"

var (
	// ErrValidation classifies errors caused by unusable input or configuration.
	ErrValidation = errors.New("validation error")

	// ErrInvariant classifies errors caused by an internal contract breach.
	// It indicates a programmer error upstream and is never retried.
	ErrInvariant = errors.New("invariant violation")
)

// classError is a sentinel bound to one error class.
type classError struct {
	class error  // ErrValidation or ErrInvariant
	msg   string // full message, already prefixed by the owning package
}

func (e *classError) Error() string { return e.msg }
func (e *classError) Unwrap() error { return e.class }

// NewValidation returns a new sentinel of class ErrValidation.
// Intended for package-level var blocks: each call yields a distinct identity.
func NewValidation(msg string) error { return &classError{class: ErrValidation, msg: msg} }

// NewInvariant returns a new sentinel of class ErrInvariant.
func NewInvariant(msg string) error { return &classError{class: ErrInvariant, msg: msg} }

// IsValidation reports whether err belongs to the validation class.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

// IsInvariant reports whether err belongs to the invariant class.
func IsInvariant(err error) bool { return errors.Is(err, ErrInvariant) }

// Constructor and labelling errors: always caused by the caller's input.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = NewValidation("matrix: dimensions must be > 0")

	// ErrRagged indicates rows of different length were supplied for one table.
	ErrRagged = NewValidation("matrix: rows have different lengths")

	// ErrLabelCount indicates the number of labels does not match the axis length.
	ErrLabelCount = NewValidation("matrix: label count does not match dimension")

	// ErrEmptyLabel indicates an empty row or column name.
	ErrEmptyLabel = NewValidation("matrix: empty label")

	// ErrDuplicateLabel indicates the same column name appears twice.
	ErrDuplicateLabel = NewValidation("matrix: duplicate label")

	// ErrDegenerateColumn indicates a constant column where a correlation needs variance.
	ErrDegenerateColumn = NewValidation("matrix: column has zero variance")
)

// Structural errors: classified by the consumer.
var (
	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry beyond the given tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within tolerance")

	// ErrDiagonal signals a diagonal entry different from the required value.
	ErrDiagonal = errors.New("matrix: unexpected diagonal value")

	// ErrNegative signals a negative entry where only non-negative values are legal.
	ErrNegative = errors.New("matrix: negative entry")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
