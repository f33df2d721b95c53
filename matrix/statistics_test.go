// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simmap/matrix"
)

func TestCorrelationKnownValues(t *testing.T) {
	t.Parallel()

	corr, err := matrix.Correlation(sampleTable(t).Dense())
	require.NoError(t, err)

	want := [][]float64{
		{1, 1, -1, 0.8},
		{1, 1, -1, 0.8},
		{-1, -1, 1, -0.8},
		{0.8, 0.8, -0.8, 1},
	}
	for i := range want {
		assert.Equal(t, 1.0, MustAt(t, corr, i, i), "diagonal must be exactly 1")
		for j := range want[i] {
			v := MustAt(t, corr, i, j)
			assert.InDelta(t, want[i][j], v, tol, "(%d,%d)", i, j)
			assert.Equal(t, v, MustAt(t, corr, j, i), "exact symmetry at (%d,%d)", i, j)
			assert.LessOrEqual(t, math.Abs(v), 1.0)
		}
	}
}

func TestCorrelationRejectsDegenerateInput(t *testing.T) {
	t.Parallel()

	_, err := matrix.Correlation(NewFilledDense(t, 3, 2, []float64{1, 7, 2, 7, 3, 7}))
	require.ErrorIs(t, err, matrix.ErrDegenerateColumn)
	assert.Contains(t, err.Error(), "column 1")

	_, err = matrix.Correlation(NewFilledDense(t, 1, 2, []float64{1, 2}))
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.Correlation(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestCovariance(t *testing.T) {
	t.Parallel()

	cov, err := matrix.Covariance(sampleTable(t).Dense())
	require.NoError(t, err)
	assert.InDelta(t, 2.5, MustAt(t, cov, 0, 0), tol)
	assert.InDelta(t, 5.0, MustAt(t, cov, 0, 1), tol)
	assert.InDelta(t, -2.5, MustAt(t, cov, 2, 0), tol)
}

func TestConstantColumnsAndClamp(t *testing.T) {
	t.Parallel()

	d := NewFilledDense(t, 2, 3, []float64{1, 0.1, 4, 1, 0.1, 5})
	assert.Equal(t, []int{0, 1}, matrix.ConstantColumns(d))

	assert.Equal(t, 1.0, matrix.Clamp(1.0000000000000002, -1, 1))
	assert.Equal(t, -1.0, matrix.Clamp(-3, -1, 1))
	assert.Equal(t, 0.5, matrix.Clamp(0.5, -1, 1))
}

func TestCorrelationNearFloatLimit(t *testing.T) {
	t.Parallel()

	// Column 0 squares to +Inf unless it is scaled first.
	d := NewFilledDense(t, 3, 3, []float64{
		1e300, 1, 2,
		-1e300, -1, 1,
		1e300, 1, 5,
	})
	corr, err := matrix.Correlation(d)
	require.NoError(t, err)

	want := 30 / math.Sqrt(1872)
	assert.InDelta(t, want, MustAt(t, corr, 0, 2), tol)
	assert.InDelta(t, want, MustAt(t, corr, 1, 2), tol)
	assert.InDelta(t, 1, MustAt(t, corr, 0, 1), tol)
	assert.Equal(t, 1.0, MustAt(t, corr, 0, 0))
}

func TestCovarianceOverflowIsReported(t *testing.T) {
	t.Parallel()

	_, err := matrix.Covariance(NewFilledDense(t, 2, 2, []float64{1e300, 1, -1e300, 2}))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
