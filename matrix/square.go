// SPDX-License-Identifier: MIT

// Package matrix - Square: a labelled n×n pairwise matrix.
//
// Purpose:
//   - Carry correlation and distance matrices between pipeline stages with the
//     column names of the originating Table on both axes.
//   - Enforce the finite-only numeric policy: every cell is a real number.
//
// Ownership:
//   - The producing stage fills the matrix, then hands it over. Consumers read
//     it; Reorder and Clone return new values instead of mutating.

package matrix

import (
	"fmt"
	"math"
)

// Square is an n×n finite matrix whose rows and columns share one label set.
type Square struct {
	d      *Dense   // n×n storage, finite-only policy
	labels []string // len == n, unique and non-empty
}

var _ Matrix = (*Square)(nil)

// NewSquare allocates an n×n zero matrix labelled by labels (n = len(labels)).
// Errors: ErrInvalidDimensions (no labels), ErrEmptyLabel, ErrDuplicateLabel.
// Complexity: O(n²).
func NewSquare(labels []string) (*Square, error) {
	n := len(labels)
	if err := validateLabels("square", labels, n); err != nil {
		return nil, fmt.Errorf("NewSquare: %w", err)
	}
	d, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("NewSquare: %w", err)
	}

	return &Square{d: d, labels: cloneStrings(labels)}, nil
}

// NewSquareFrom builds a Square from a row-major buffer of len(labels)² values.
// Errors: those of NewSquare and NewDenseFrom (ErrDimensionMismatch, ErrNaNInf).
func NewSquareFrom(labels []string, values []float64) (*Square, error) {
	n := len(labels)
	if err := validateLabels("square", labels, n); err != nil {
		return nil, fmt.Errorf("NewSquareFrom: %w", err)
	}
	d, err := NewDenseFrom(n, n, values)
	if err != nil {
		return nil, fmt.Errorf("NewSquareFrom: %w", err)
	}

	return &Square{d: d, labels: cloneStrings(labels)}, nil
}

// Size returns n.
func (s *Square) Size() int { return s.d.r }

// Rows returns n.
func (s *Square) Rows() int { return s.d.r }

// Cols returns n.
func (s *Square) Cols() int { return s.d.c }

// At returns cell (i, j).
func (s *Square) At(i, j int) (float64, error) { return s.d.At(i, j) }

// Set writes cell (i, j) only. Prefer SetSym for symmetric results.
func (s *Square) Set(i, j int, v float64) error { return s.d.Set(i, j, v) }

// SetSym writes v into (i, j) and (j, i), so the matrix stays exactly symmetric.
// Errors: ErrOutOfRange, ErrNaNInf.
func (s *Square) SetSym(i, j int, v float64) error {
	if err := s.d.Set(i, j, v); err != nil {
		return err
	}

	return s.d.Set(j, i, v)
}

// Clone returns a deep copy as a Matrix.
func (s *Square) Clone() Matrix { return s.clone() }

func (s *Square) clone() *Square {
	return &Square{d: s.d.clone(), labels: cloneStrings(s.labels)}
}

// Label returns the name of entity i, or "" when i is out of range.
func (s *Square) Label(i int) string {
	if i < 0 || i >= len(s.labels) {
		return ""
	}

	return s.labels[i]
}

// Labels returns a copy of the axis labels.
func (s *Square) Labels() []string { return cloneStrings(s.labels) }

// Values returns a row-major copy of all n² cells.
func (s *Square) Values() []float64 { return s.d.Values() }

// Dense returns an independent copy of the storage.
func (s *Square) Dense() *Dense { return s.d.clone() }

// String renders the matrix for diagnostics.
func (s *Square) String() string { return s.d.String() }

// MinMax returns the smallest and largest cell, diagonal included.
// MAIN DESCRIPTION:
//   - Single deterministic pass over the flat buffer.
//
// Complexity:
//   - Time O(n²), Space O(1).
func (s *Square) MinMax() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range s.d.data {
		lo = min(lo, v)
		hi = max(hi, v)
	}

	return lo, hi
}

// Reorder returns a copy with both axes permuted: out[i][j] = s[order[i]][order[j]].
// MAIN DESCRIPTION:
//   - Applies a leaf order (e.g. from clustering) to rows, columns and labels.
//
// Implementation:
//   - Stage 1: check that order is a permutation of 0..n-1.
//   - Stage 2: Dense.Induced(order, order) and permute labels alike.
//
// Errors:
//   - ErrDimensionMismatch (wrong length), ErrOutOfRange (index outside 0..n-1
//     or repeated index).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func (s *Square) Reorder(order []int) (*Square, error) {
	n := s.Size()
	if err := checkPermutation(order, n); err != nil {
		return nil, fmt.Errorf("Square.Reorder: %w", err)
	}
	d, err := s.d.Induced(order, order)
	if err != nil {
		return nil, fmt.Errorf("Square.Reorder: %w", err)
	}
	labels := make([]string, n)
	for i, k := range order {
		labels[i] = s.labels[k]
	}

	return &Square{d: d, labels: labels}, nil
}

// checkPermutation reports whether order is a permutation of 0..n-1.
// Errors: ErrDimensionMismatch (wrong length), ErrOutOfRange (index outside
// 0..n-1 or repeated index).
func checkPermutation(order []int, n int) error {
	if len(order) != n {
		return fmt.Errorf("order of %d for size %d: %w", len(order), n, ErrDimensionMismatch)
	}
	seen := make([]bool, n)
	for _, k := range order {
		if k < 0 || k >= n || seen[k] {
			return fmt.Errorf("index %d is not part of a permutation: %w", k, ErrOutOfRange)
		}
		seen[k] = true
	}

	return nil
}
