// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities for matrix tests.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simmap/matrix"
)

// tol is the comparison tolerance for values produced by floating-point kernels.
const tol = 1e-12

// NewFilledDense allocates an r×c Dense holding data (row-major) or fails the test.
func NewFilledDense(t *testing.T, r, c int, data []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, data)
	require.NoError(t, err)

	return m
}

// MustAt reads (i, j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// sampleTable is the 5×4 fixture used across tests:
// B = 2A (perfect positive), C reversed A (perfect negative), D noisy.
func sampleTable(t *testing.T) *matrix.Table {
	t.Helper()
	tb, err := matrix.NewTable(
		[]string{"s1", "s2", "s3", "s4", "s5"},
		[]string{"A", "B", "C", "D"},
		[][]float64{
			{1, 2, 5, 2},
			{2, 4, 4, 1},
			{3, 6, 3, 4},
			{4, 8, 2, 3},
			{5, 10, 1, 5},
		},
	)
	require.NoError(t, err)

	return tb
}
