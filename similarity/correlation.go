// SPDX-License-Identifier: MIT

package similarity

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/simmap/matrix"
	"github.com/katalvlaran/simmap/metric"
)

// correlate dispatches a correlation method. Inputs are already validated.
func correlate(t *matrix.Table, m metric.Method) (*matrix.Square, error) {
	switch m {
	case metric.Pearson:
		return pearson(t.Dense(), t.ColNames())
	case metric.Spearman:
		ranked, err := rankColumns(t)
		if err != nil {
			return nil, err
		}

		return pearson(ranked, t.ColNames())
	case metric.Kendall:
		return pairwise(t, 1, kendallTauB)
	default:
		return nil, fmt.Errorf("%w: %s is not a correlation", metric.ErrUnsupportedMethod, m)
	}
}

// pearson correlates the columns of d and labels the result.
func pearson(d *matrix.Dense, labels []string) (*matrix.Square, error) {
	corr, err := matrix.Correlation(d)
	if errors.Is(err, matrix.ErrNaNInf) {
		return nil, fmt.Errorf("%w: %w", ErrOverflow, err)
	}
	if err != nil {
		return nil, err
	}

	return matrix.NewSquareFrom(labels, corr.Values())
}

// rankColumns returns a Dense where every column of t is replaced by its ranks.
func rankColumns(t *matrix.Table) (*matrix.Dense, error) {
	out, err := matrix.NewDense(t.Rows(), t.Cols())
	if err != nil {
		return nil, err
	}
	for j := 0; j < t.Cols(); j++ {
		col, _ := t.Col(j)
		for i, v := range Rank(col) {
			if err = out.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// kendallTauB returns Kendall's tau-b between x and y.
//
//	tau_b = (C - D) / sqrt((n0 - n1)(n0 - n2))
//
// where C and D count concordant and discordant pairs, n0 = n(n-1)/2, and n1,
// n2 count the pairs tied in x and in y. Neither column is constant (checked
// upstream), so both factors of the denominator are positive.
// Complexity: O(n²).
func kendallTauB(x, y []float64) float64 {
	n := len(x)
	var conc, disc, tiesX, tiesY int64
	var i, j int
	var dx, dy float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			dx = x[i] - x[j]
			dy = y[i] - y[j]
			switch {
			case dx == 0 && dy == 0:
				tiesX++
				tiesY++
			case dx == 0:
				tiesX++
			case dy == 0:
				tiesY++
			case (dx > 0) == (dy > 0):
				conc++
			default:
				disc++
			}
		}
	}
	n0 := int64(n) * int64(n-1) / 2
	den := math.Sqrt(float64(n0-tiesX) * float64(n0-tiesY))

	return matrix.Clamp(float64(conc-disc)/den, -1, 1)
}
