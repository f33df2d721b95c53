// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide column statistics (constant-column detection, covariance, Pearson
//     correlation) over a Dense whose columns are the variables.
//   - Delegate the covariance kernel to gonum/stat and post-process the result
//     into an exact pairwise matrix: mirrored, unit diagonal, clamped range.
//
// Exposed API:
//   - ConstantColumns(X) -> []int           // columns with zero variance
//   - Covariance(X)      -> (Cov, error)    // sample covariance of columns, (r-1) denominator
//   - Correlation(X)     -> (Corr, error)   // Pearson correlation of columns
//
// Determinism & Performance:
//   - gonum computes each entry with a fixed summation order, so repeated calls
//     on the same input are bit-identical.
//   - X is handed to gonum through the zero-copy Mat() view; it is never written.
//
// AI-Hints:
//   - Correlation of ranks is Spearman; pass a rank-transformed Dense.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Operation name constants for unified error wrapping.
const (
	opCovariance  = "Covariance"
	opCorrelation = "Correlation"
)

// Correlation range and diagonal.
const (
	corrMin  = -1.0
	corrMax  = 1.0
	corrDiag = 1.0
)

// minObservations is the smallest row count for which a sample statistic exists.
const minObservations = 2

// matrixErrorf wraps err with an operation tag.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// ConstantColumns returns, in ascending order, the columns whose values are all equal.
// Exact equality is used: a column with any two differing values has variance.
// Complexity: O(r*c).
func ConstantColumns(X *Dense) []int {
	var out []int
	var i, j int
	var first float64
	for j = 0; j < X.c; j++ {
		first = X.data[j]
		constant := true
		for i = 1; i < X.r; i++ {
			if X.data[i*X.c+j] != first {
				constant = false

				break
			}
		}
		if constant {
			out = append(out, j)
		}
	}

	return out
}

// checkStatInput applies the shared preconditions of column statistics.
func checkStatInput(op string, X *Dense) error {
	if X == nil {
		return matrixErrorf(op, ErrNilMatrix)
	}
	if X.r < minObservations {
		return matrixErrorf(op, fmt.Errorf("%d rows, need %d: %w", X.r, minObservations, ErrInvalidDimensions))
	}
	if err := ValidateFinite(X); err != nil {
		return matrixErrorf(op, err)
	}

	return nil
}

// Covariance returns the c×c sample covariance matrix of the columns of X.
// MAIN DESCRIPTION:
//   - Cov[i,j] = Σ_k (X[k,i]-μ_i)(X[k,j]-μ_j) / (r-1).
//
// Implementation:
//   - Stage 1: nil, row count (r ≥ 2) and finiteness checks.
//   - Stage 2: stat.CovarianceMatrix over the zero-copy view.
//   - Stage 3: copy the symmetric result into a Dense, mirroring exactly.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrNaNInf.
//
// Complexity:
//   - Time O(r*c²), Space O(c²).
func Covariance(X *Dense) (*Dense, error) {
	if err := checkStatInput(opCovariance, X); err != nil {
		return nil, err
	}
	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, X.Mat(), nil)

	return symToDense(&cov, func(_, _ int, v float64) float64 { return v })
}

// Correlation returns the c×c Pearson correlation matrix of the columns of X.
// MAIN DESCRIPTION:
//   - Corr[i,j] = Cov[i,j] / (σ_i σ_j); the linear correlation coefficient.
//
// Implementation:
//   - Stage 1: nil, row count and finiteness checks; constant columns are
//     rejected because σ = 0 leaves the coefficient undefined.
//   - Stage 2: divide every column by its largest absolute value. The
//     coefficient is scale-invariant, and unit-scaled columns keep the sums
//     of squares finite for inputs near the float64 limit.
//   - Stage 3: Covariance of the scaled columns; every variance must be
//     finite and positive.
//   - Stage 4: Cov[i,j] / (σ_i σ_j) over the upper triangle, diagonal set to
//     exactly 1, off-diagonal clamped into [-1, 1], mirrored into the lower one.
//
// Behavior highlights:
//   - Output is exactly symmetric with an exact unit diagonal, whatever the
//     rounding of the kernel.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrNaNInf, ErrDegenerateColumn (with index).
//
// Complexity:
//   - Time O(r*c²), Space O(r*c + c²).
//
// AI-Hints:
//   - Columns are variables; transpose first to correlate rows.
func Correlation(X *Dense) (*Dense, error) {
	if err := checkStatInput(opCorrelation, X); err != nil {
		return nil, err
	}
	if cc := ConstantColumns(X); len(cc) > 0 {
		return nil, matrixErrorf(opCorrelation, fmt.Errorf("column %d: %w", cc[0], ErrDegenerateColumn))
	}
	cov, err := Covariance(unitScaled(X))
	if err != nil {
		return nil, matrixErrorf(opCorrelation, err)
	}

	n := cov.r
	sd := make([]float64, n)
	var v float64
	for j := range sd {
		v = cov.data[j*n+j]
		if !(v > 0) || math.IsInf(v, 0) {
			return nil, matrixErrorf(opCorrelation, fmt.Errorf("column %d: variance %g: %w", j, v, ErrNaNInf))
		}
		sd[j] = math.Sqrt(v)
	}
	var i, j int
	for i = 0; i < n; i++ {
		cov.data[i*n+i] = corrDiag
		for j = i + 1; j < n; j++ {
			v = cov.data[i*n+j] / sd[i] / sd[j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, matrixErrorf(opCorrelation, denseErrorf(ctxSet, i, j, ErrNaNInf))
			}
			v = Clamp(v, corrMin, corrMax)
			cov.data[i*n+j] = v
			cov.data[j*n+i] = v
		}
	}

	return cov, nil
}

// unitScaled returns a copy of X with every column divided by its largest
// absolute value. All-zero columns are left as they are.
func unitScaled(X *Dense) *Dense {
	peak := make([]float64, X.c)
	X.Do(func(_, j int, v float64) bool {
		peak[j] = max(peak[j], math.Abs(v))

		return true
	})
	out := X.clone()
	for k, v := range out.data {
		if p := peak[k%X.c]; p > 0 {
			out.data[k] = v / p
		}
	}

	return out
}

// symToDense copies the upper triangle of s into a new n×n Dense, transformed
// by f and mirrored so that out[i,j] == out[j,i] bit for bit.
func symToDense(s *mat.SymDense, f func(i, j int, v float64) float64) (*Dense, error) {
	n := s.SymmetricDim()
	out, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			v = f(i, j, s.At(i, j))
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, denseErrorf(ctxSet, i, j, ErrNaNInf)
			}
			out.data[i*n+j] = v
			out.data[j*n+i] = v
		}
	}

	return out, nil
}

// Clamp limits v to [lo, hi]. NaN is returned unchanged.
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
