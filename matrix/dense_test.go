// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simmap/matrix"
)

func TestNewDenseInvalidDimensions(t *testing.T) {
	t.Parallel()

	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-1, 3}} {
		_, err := matrix.NewDense(dims[0], dims[1])
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
		assert.True(t, matrix.IsValidation(err))
	}
}

func TestDenseAtSet(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	require.NoError(t, m.Set(1, 2, 4.5))
	assert.Equal(t, 4.5, MustAt(t, m, 1, 2))

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.Contains(t, err.Error(), "Dense.At(2,0)")
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
}

func TestDenseNaNPolicy(t *testing.T) {
	t.Parallel()

	strict, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	require.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, strict.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)

	loose, err := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, loose.Set(0, 0, math.Inf(1)))

	_, err = matrix.NewDenseFrom(1, 2, []float64{1, math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	assert.Contains(t, err.Error(), "(0,1)")
}

func TestNewDenseFromLength(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestDenseCloneIndependence(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	cp := m.Clone()
	require.NoError(t, cp.Set(0, 0, 100))
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0))
	assert.Equal(t, 100.0, MustAt(t, cp, 0, 0))
}

func TestDenseRowColValues(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	col, err := m.Col(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 5}, col)
	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6}, row)

	col[0] = 99 // copies never alias storage
	assert.Equal(t, 2.0, MustAt(t, m, 0, 1))
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, m.Values())

	_, err = m.Col(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Row(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDenseMatSharesStorage(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	g := m.Mat()
	r, c := g.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 3.0, g.At(1, 0))
}

func TestDenseInduced(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 3, 3, []float64{
		0, 1, 2,
		10, 11, 12,
		20, 21, 22,
	})
	sub, err := m.Induced([]int{2, 0}, []int{1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{21, 21, 1, 1}, sub.Values())

	_, err = m.Induced([]int{3}, []int{0})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Induced(nil, []int{0})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDenseDoApplyString(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	var visited int
	m.Do(func(_, _ int, v float64) bool {
		visited++

		return v < 2 // stop after the second element
	})
	assert.Equal(t, 2, visited)

	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return v * 10 }))
	assert.Equal(t, "[10, 20]\n[30, 40]\n", m.String())

	err := m.Apply(func(_, _ int, _ float64) float64 { return math.Inf(1) })
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
