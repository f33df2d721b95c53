// SPDX-License-Identifier: MIT

package similarity

import (
	"fmt"
	"math"

	"github.com/katalvlaran/simmap/matrix"
	"github.com/katalvlaran/simmap/metric"
)

// minColumns is the smallest number of entities that admits a pairwise comparison.
const minColumns = 2

// minRows is the smallest number of observations for which a correlation exists.
const minRows = 2

// Compute returns the pairwise matrix of the columns of t under method m.
//
// Correlation methods yield a correlation matrix: symmetric, unit diagonal,
// values in [-1, 1]. Distance methods yield a distance matrix: symmetric,
// zero diagonal, values ≥ 0. Labels are the column names of t, in order.
//
// Errors (all matrix.ErrValidation): metric.ErrUnsupportedMethod, ErrNilInput,
// ErrTooFewColumns, ErrNonFinite, ErrTooFewRows, ErrZeroVariance, ErrOverflow,
// ErrBadOption. Every message carries the method and the table dimensions.
func Compute(t *matrix.Table, m metric.Method, opts ...Option) (*matrix.Square, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("Compute(%s): %w", m, err)
	}
	if err = checkInput(t, m); err != nil {
		return nil, fmt.Errorf("Compute(%s): %w", m, err)
	}

	var sq *matrix.Square
	if m.IsCorrelation() {
		sq, err = correlate(t, m)
	} else {
		sq, err = distance(t, m, o)
	}
	if err != nil {
		return nil, fmt.Errorf("Compute(%s) on %dx%d: %w", m, t.Rows(), t.Cols(), err)
	}

	return sq, nil
}

// Distance returns the dissimilarity matrix used for clustering.
//
// Distance methods behave exactly as in Compute. Correlation methods return
// the pseudo-metric 1 - corr with every cell clamped at 0, so the result is
// always non-negative with an exact zero diagonal.
func Distance(t *matrix.Table, m metric.Method, opts ...Option) (*matrix.Square, error) {
	sq, err := Compute(t, m, opts...)
	if err != nil || !m.IsCorrelation() {
		return sq, err
	}

	return OneMinus(sq)
}

// OneMinus converts a correlation matrix into the distance 1 - corr.
// Cells are clamped at 0 and the diagonal is set to exactly 0.
func OneMinus(corr *matrix.Square) (*matrix.Square, error) {
	n := corr.Size()
	vals := corr.Values()
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				vals[i*n+j] = 0

				continue
			}
			vals[i*n+j] = math.Max(0, 1-vals[i*n+j])
		}
	}
	out, err := matrix.NewSquareFrom(corr.Labels(), vals)
	if err != nil {
		return nil, fmt.Errorf("OneMinus: %w", err)
	}

	return out, nil
}

// checkInput validates t for method m before any computation starts.
// Order: method, nil, column count, finiteness, then correlation-only checks.
func checkInput(t *matrix.Table, m metric.Method) error {
	if !m.Valid() {
		return fmt.Errorf("%w %q (supported methods: %s)", metric.ErrUnsupportedMethod, m.String(), metric.SupportedString())
	}
	if t == nil {
		return ErrNilInput
	}
	r, c := t.Rows(), t.Cols()
	if c < minColumns {
		return fmt.Errorf("%w: input is %dx%d", ErrTooFewColumns, r, c)
	}

	d := t.Dense()
	var i, j int
	var v float64
	for j = 0; j < c; j++ { // column-major scan: the first bad column is reported
		for i = 0; i < r; i++ {
			v, _ = d.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: column %q, row %d: %v", ErrNonFinite, t.ColName(j), i+1, v)
			}
		}
	}

	if !m.IsCorrelation() {
		return nil
	}
	if r < minRows {
		return fmt.Errorf("%w: input is %dx%d", ErrTooFewRows, r, c)
	}
	if cc := matrix.ConstantColumns(d); len(cc) > 0 {
		return fmt.Errorf("%w: column %q", ErrZeroVariance, t.ColName(cc[0]))
	}

	return nil
}

// columns extracts every column of t once, in order.
func columns(t *matrix.Table) [][]float64 {
	out := make([][]float64, t.Cols())
	for j := range out {
		out[j], _ = t.Col(j) // j is in range
	}

	return out
}

// pairwise fills a Square by calling f on every unordered column pair (i<j).
// The diagonal is set to diag. Determinism: fixed i→j order.
func pairwise(t *matrix.Table, diag float64, f func(x, y []float64) float64) (*matrix.Square, error) {
	cols := columns(t)
	sq, err := matrix.NewSquare(t.ColNames())
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = range cols {
		if err = sq.Set(i, i, diag); err != nil {
			return nil, err
		}
		for j = i + 1; j < len(cols); j++ {
			v = f(cols[i], cols[j])
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: %q vs %q", ErrOverflow, t.ColName(i), t.ColName(j))
			}
			if err = sq.SetSym(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return sq, nil
}
