// SPDX-License-Identifier: MIT

package similarity

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/simmap/matrix"
	"github.com/katalvlaran/simmap/metric"
)

// Orders of the Lp norms backed by floats.Distance.
const (
	orderManhattan = 1.0
	orderEuclidean = 2.0
)

// distance dispatches a distance method. Inputs are already validated.
func distance(t *matrix.Table, m metric.Method, o Options) (*matrix.Square, error) {
	f, err := kernel(m, o)
	if err != nil {
		return nil, err
	}

	return pairwise(t, 0, f)
}

// kernel returns the column-pair function of a distance method.
func kernel(m metric.Method, o Options) (func(x, y []float64) float64, error) {
	switch m {
	case metric.Euclidean:
		return lp(orderEuclidean), nil
	case metric.Manhattan:
		return lp(orderManhattan), nil
	case metric.Maximum:
		return lp(math.Inf(1)), nil
	case metric.Minkowski:
		return lp(o.MinkowskiP), nil
	case metric.Canberra:
		return Canberra, nil
	case metric.Binary:
		return Binary, nil
	default:
		return nil, fmt.Errorf("%w: %s is not a distance", metric.ErrUnsupportedMethod, m)
	}
}

// lp binds floats.Distance to order p (p = +Inf is the maximum norm).
func lp(p float64) func(x, y []float64) float64 {
	return func(x, y []float64) float64 { return floats.Distance(x, y, p) }
}

// Canberra returns Σ |x_k - y_k| / (|x_k| + |y_k|), skipping the terms where
// both values are zero. Each term lies in [0, 1].
func Canberra(x, y []float64) float64 {
	var sum, den float64
	for k := range x {
		den = math.Abs(x[k]) + math.Abs(y[k])
		if den == 0 {
			continue
		}
		sum += math.Abs(x[k]-y[k]) / den
	}

	return sum
}

// Binary treats non-zero values as "on" and returns the share of positions
// where exactly one value is on, among positions where at least one is on.
// Two all-zero vectors are at distance 0.
func Binary(x, y []float64) float64 {
	var either, differ int
	var xOn, yOn bool
	for k := range x {
		xOn, yOn = x[k] != 0, y[k] != 0
		if xOn || yOn {
			either++
		}
		if xOn != yOn {
			differ++
		}
	}
	if either == 0 {
		return 0
	}

	return float64(differ) / float64(either)
}
