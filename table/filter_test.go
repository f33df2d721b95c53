// SPDX-License-Identifier: MIT

package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simmap/matrix"
	"github.com/katalvlaran/simmap/table"
)

// fractions has four samples of four cell types.
func fractions(t *testing.T) *matrix.Table {
	t.Helper()
	tb, err := matrix.NewTable(nil, []string{"T", "B", "NK", "Mono"}, [][]float64{
		{0.50, 0.00, 0.02, 0.10},
		{0.40, 0.00, 0.01, 0.30},
		{0.20, 0.00, 0.20, 0.30},
		{0.60, 0.00, 0.01, 0.30},
	})
	require.NoError(t, err)

	return tb
}

func TestFilterAbundance(t *testing.T) {
	t.Parallel()

	// NK reaches 0.05 in one of four samples only.
	out, removed, err := table.FilterAbundance(fractions(t), 0.05, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []string{"T", "Mono"}, out.ColNames())
	assert.Equal(t, []string{"B", "NK"}, removed)

	out, removed, err = table.FilterAbundance(fractions(t), 0.05, 0.25)
	require.NoError(t, err)
	assert.Equal(t, []string{"T", "NK", "Mono"}, out.ColNames())
	assert.Equal(t, []string{"B"}, removed)

	_, _, err = table.FilterAbundance(fractions(t), 0.9, 1)
	require.ErrorIs(t, err, table.ErrNoColumns)

	_, _, err = table.FilterAbundance(fractions(t), 1.5, 0)
	require.ErrorIs(t, err, table.ErrBadFilter)
	_, _, err = table.FilterAbundance(fractions(t), 0, -0.1)
	require.ErrorIs(t, err, table.ErrBadFilter)
}

func TestDropZeroColumns(t *testing.T) {
	t.Parallel()

	out, removed, err := table.DropZeroColumns(fractions(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"T", "NK", "Mono"}, out.ColNames())
	assert.Equal(t, []string{"B"}, removed)
	assert.Equal(t, 4, out.Rows())
}

func TestRescaleMinMax(t *testing.T) {
	t.Parallel()

	out, err := table.RescaleMinMax(fractions(t))
	require.NoError(t, err)
	tcol, err := out.Col(0)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.75, 0.5, 0, 1}, tcol, 1e-12)
	bcol, err := out.Col(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0}, bcol, "constant column maps to 0")
}

func TestPrepare(t *testing.T) {
	t.Parallel()

	out, dropped, err := table.Prepare(fractions(t), table.Filters{
		MinAbundance:      0.05,
		MinSampleFraction: 0.5,
		DropZero:          true,
		Rescale:           true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"T", "Mono"}, out.ColNames())
	assert.Equal(t, []string{"B", "NK"}, dropped.Abundance)
	assert.Empty(t, dropped.Zero)
	mono, err := out.Col(1)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 1, 1, 1}, mono, 1e-12)

	same, dropped, err := table.Prepare(fractions(t), table.Filters{})
	require.NoError(t, err)
	assert.Equal(t, 4, same.Cols())
	assert.Empty(t, dropped.Abundance)

	_, _, err = table.Prepare(fractions(t), table.Filters{MinAbundance: 2})
	require.ErrorIs(t, err, table.ErrBadFilter)
	assert.True(t, matrix.IsValidation(err))
}
