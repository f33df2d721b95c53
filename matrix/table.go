// SPDX-License-Identifier: MIT

// Package matrix - Table: the labelled sample-by-feature input.
//
// Purpose:
//   - Hold a rectangular r×c block of observations with named rows (samples)
//     and named columns (features). Columns are the entities compared downstream.
//   - Preserve row and column order exactly as supplied.
//   - Stay read-only after construction: no Set, accessors return copies.
//
// Numeric policy:
//   - Non-finite cells are accepted here on purpose. The similarity stage
//     reports them with the offending column name before any computation.

package matrix

import (
	"fmt"
	"math"
)

// Table is an immutable labelled matrix with named rows and columns.
type Table struct {
	d        *Dense   // r×c storage, non-finite policy off
	rowNames []string // len == r
	colNames []string // len == c, unique and non-empty
}

// NewTable builds a Table from row slices.
// MAIN DESCRIPTION:
//   - Validates rectangularity and labels, then copies rows into row-major storage.
//
// Implementation:
//   - Stage 1: reject empty input and ragged rows (ErrRagged names the row).
//   - Stage 2: validate column labels; rowNames == nil yields "1".."r".
//   - Stage 3: copy values; NaN/Inf are kept as-is.
//
// Errors:
//   - ErrInvalidDimensions, ErrRagged, ErrLabelCount, ErrEmptyLabel, ErrDuplicateLabel.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewTable(rowNames, colNames []string, rows [][]float64) (*Table, error) {
	r, c := len(rows), len(colNames)
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("NewTable(%d rows, %d cols): %w", r, c, ErrInvalidDimensions)
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("NewTable: row %d has %d values, header has %d: %w", i, len(row), c, ErrRagged)
		}
	}
	if err := validateLabels("column", colNames, c); err != nil {
		return nil, fmt.Errorf("NewTable: %w", err)
	}
	if rowNames == nil {
		rowNames = NumberedLabels(r)
	} else if len(rowNames) != r {
		return nil, fmt.Errorf("NewTable: %d row labels for %d rows: %w", len(rowNames), r, ErrLabelCount)
	}

	d, err := NewDense(r, c, WithNoValidateNaNInf())
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		copy(d.data[i*c:(i+1)*c], row)
	}

	return &Table{d: d, rowNames: cloneStrings(rowNames), colNames: cloneStrings(colNames)}, nil
}

// Rows returns the number of samples.
func (t *Table) Rows() int { return t.d.r }

// Cols returns the number of features (the entities being compared).
func (t *Table) Cols() int { return t.d.c }

// At returns cell (i, j).
func (t *Table) At(i, j int) (float64, error) { return t.d.At(i, j) }

// Col returns a copy of column j.
func (t *Table) Col(j int) ([]float64, error) { return t.d.Col(j) }

// Row returns a copy of row i.
func (t *Table) Row(i int) ([]float64, error) { return t.d.Row(i) }

// ColName returns the name of column j, or "" when j is out of range.
func (t *Table) ColName(j int) string {
	if j < 0 || j >= len(t.colNames) {
		return ""
	}

	return t.colNames[j]
}

// ColNames returns a copy of the column names in order.
func (t *Table) ColNames() []string { return cloneStrings(t.colNames) }

// RowNames returns a copy of the row names in order.
func (t *Table) RowNames() []string { return cloneStrings(t.rowNames) }

// Dense returns an independent copy of the numeric block.
// Complexity: O(r*c).
func (t *Table) Dense() *Dense { return t.d.clone() }

// Select returns a new Table keeping only the listed columns, in the given order.
// Errors: ErrInvalidDimensions (empty list), ErrOutOfRange, ErrDuplicateLabel (repeated index).
// Complexity: O(r*len(cols)).
func (t *Table) Select(cols []int) (*Table, error) {
	sub, err := t.d.Induced(identity(t.d.r), cols)
	if err != nil {
		return nil, fmt.Errorf("Table.Select: %w", err)
	}
	names := make([]string, len(cols))
	for k, j := range cols {
		names[k] = t.colNames[j] // Induced already bounds-checked j
	}
	if err = validateLabels("column", names, len(names)); err != nil {
		return nil, fmt.Errorf("Table.Select: %w", err)
	}

	return &Table{d: sub, rowNames: cloneStrings(t.rowNames), colNames: names}, nil
}

// Map returns a new Table whose cells are f(i, j, v). Labels are kept.
// Complexity: O(r*c).
func (t *Table) Map(f func(i, j int, v float64) float64) (*Table, error) {
	d := t.d.clone()
	if err := d.Apply(f); err != nil {
		return nil, fmt.Errorf("Table.Map: %w", err)
	}

	return &Table{d: d, rowNames: cloneStrings(t.rowNames), colNames: cloneStrings(t.colNames)}, nil
}

// MinMax returns the smallest and largest cell. NaN cells are skipped; a
// table without a number returns (+Inf, -Inf).
// Complexity: O(r*c).
func (t *Table) MinMax() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range t.d.data {
		if math.IsNaN(v) {
			continue
		}
		lo = min(lo, v)
		hi = max(hi, v)
	}

	return lo, hi
}

// Transpose returns the c×r table whose columns are the rows of t, so that
// column statistics compare samples instead of features.
// Errors: ErrEmptyLabel, ErrDuplicateLabel when row names cannot serve as
// column names.
// Complexity: O(r*c).
func (t *Table) Transpose() (*Table, error) {
	if err := validateLabels("row", t.rowNames, t.d.r); err != nil {
		return nil, fmt.Errorf("Table.Transpose: %w", err)
	}
	r, c := t.d.r, t.d.c
	d, err := NewDense(c, r, WithNoValidateNaNInf())
	if err != nil {
		return nil, fmt.Errorf("Table.Transpose: %w", err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			d.data[j*r+i] = t.d.data[i*c+j]
		}
	}

	return &Table{d: d, rowNames: cloneStrings(t.colNames), colNames: cloneStrings(t.rowNames)}, nil
}

// Reorder returns a copy with rows and columns permuted:
// out[i][j] = t[rows[i]][cols[j]]. A nil order keeps that axis as it is.
// Errors: ErrDimensionMismatch, ErrOutOfRange (not a permutation).
// Complexity: O(r*c).
func (t *Table) Reorder(rows, cols []int) (*Table, error) {
	if rows == nil {
		rows = identity(t.d.r)
	}
	if cols == nil {
		cols = identity(t.d.c)
	}
	if err := checkPermutation(rows, t.d.r); err != nil {
		return nil, fmt.Errorf("Table.Reorder: rows: %w", err)
	}
	if err := checkPermutation(cols, t.d.c); err != nil {
		return nil, fmt.Errorf("Table.Reorder: cols: %w", err)
	}
	d, err := t.d.Induced(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("Table.Reorder: %w", err)
	}
	rowNames := make([]string, len(rows))
	for k, i := range rows {
		rowNames[k] = t.rowNames[i]
	}
	colNames := make([]string, len(cols))
	for k, j := range cols {
		colNames[k] = t.colNames[j]
	}

	return &Table{d: d, rowNames: rowNames, colNames: colNames}, nil
}

func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}
