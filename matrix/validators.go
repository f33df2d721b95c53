// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for structural checks on
//    pairwise matrices (square, symmetric, fixed diagonal, non-negative, finite).
//  - Return wrapped sentinels tagged with the validator name; consumers
//    classify them (validation vs invariant) at their own boundary.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.
//  - The first violation in row-major order is reported, with coordinates.
//
// AI-Hints:
//  - Check finiteness first: comparisons against NaN are always false and
//    would let later checks pass silently.

package matrix

import (
	"fmt"
	"math"
)

// Validator tags used in error wrappers.
const (
	tagNotNil      = "ValidateNotNil"
	tagSquare      = "ValidateSquare"
	tagFinite      = "ValidateFinite"
	tagSymmetric   = "ValidateSymmetric"
	tagDiagonal    = "ValidateDiagonal"
	tagNonNegative = "ValidateNonNegative"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// cellErrorf wraps err with the validator tag, the coordinates and the value found.
func cellErrorf(tag string, i, j int, v float64, err error) error {
	return fmt.Errorf("%s: (%d,%d)=%g: %w", tag, i, j, v, err)
}

// checkTol rejects a NaN, infinite or negative tolerance.
func checkTol(tag string, tol float64) error {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		return validatorErrorf(tag, fmt.Errorf("tolerance %g: %w", tol, ErrNaNInf))
	}

	return nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf(tagNotNil, ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf(tagSquare, err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf(tagSquare, fmt.Errorf("%dx%d: %w", m.Rows(), m.Cols(), ErrNonSquare))
	}

	return nil
}

// ValidateFinite checks that every element of m is finite.
// Errors: ErrNilMatrix, ErrNaNInf (first offending cell in row-major order).
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf(tagFinite, err)
	}
	var i, j int
	var v float64
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j) // indices are in range by construction
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return cellErrorf(tagFinite, i, j, v, ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateSymmetric checks |A[i,j] - A[j,i]| ≤ tol for all i<j.
// MAIN DESCRIPTION:
//   - Square check, then a scan over the strict upper triangle.
//
// Inputs:
//   - m: matrix to check.
//   - tol: absolute tolerance (finite, ≥ 0). Use 0 for exact symmetry.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf (bad tol), ErrAsymmetry with the first offending pair.
//
// Complexity:
//   - Time O(n²), Space O(1).
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf(tagSymmetric, err)
	}
	if err := checkTol(tagSymmetric, tol); err != nil {
		return err
	}

	n := m.Rows()
	var i, j int
	var aij, aji float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij, _ = m.At(i, j)
			aji, _ = m.At(j, i)
			// A NaN difference also fails: !(NaN <= tol).
			if !(math.Abs(aij-aji) <= tol) {
				return fmt.Errorf("%s: (%d,%d)=%g vs (%d,%d)=%g: %w", tagSymmetric, i, j, aij, j, i, aji, ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateDiagonal checks |A[i,i] - want| ≤ tol for every i.
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaNInf (bad tol), ErrDiagonal.
// Complexity: O(n).
func ValidateDiagonal(m Matrix, want, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf(tagDiagonal, err)
	}
	if err := checkTol(tagDiagonal, tol); err != nil {
		return err
	}
	var v float64
	for i := 0; i < m.Rows(); i++ {
		v, _ = m.At(i, i)
		if !(math.Abs(v-want) <= tol) {
			return cellErrorf(tagDiagonal, i, i, v, fmt.Errorf("want %g: %w", want, ErrDiagonal))
		}
	}

	return nil
}

// ValidateNonNegative checks that no element of m is below zero.
// Errors: ErrNilMatrix, ErrNegative (first offending cell in row-major order).
// Complexity: O(r*c).
func ValidateNonNegative(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf(tagNonNegative, err)
	}
	var i, j int
	var v float64
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j)
			if v < 0 {
				return cellErrorf(tagNonNegative, i, j, v, ErrNegative)
			}
		}
	}

	return nil
}
