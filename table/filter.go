// SPDX-License-Identifier: MIT

package table

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/simmap/matrix"
)

// Filters selects the column preparation applied before analysis.
// The zero value applies nothing.
type Filters struct {
	MinAbundance      float64 `yaml:"min_abundance" toml:"min_abundance"`             // value a cell must reach, in [0, 1]
	MinSampleFraction float64 `yaml:"min_sample_fraction" toml:"min_sample_fraction"` // share of rows that must reach it, in [0, 1]
	DropZero          bool    `yaml:"drop_zero" toml:"drop_zero"`
	Rescale           bool    `yaml:"rescale" toml:"rescale"`
}

// Validate checks that both thresholds lie in [0, 1].
func (f Filters) Validate() error {
	return checkThresholds(f.MinAbundance, f.MinSampleFraction)
}

// Dropped lists the columns removed by Prepare, per filter.
type Dropped struct {
	Abundance []string
	Zero      []string
}

// Prepare applies the filters of f to t in order: abundance, zero columns,
// rescaling. The abundance filter is skipped when both thresholds are 0.
// Errors: ErrBadFilter, ErrNoColumns.
func Prepare(t *matrix.Table, f Filters) (*matrix.Table, Dropped, error) {
	var dropped Dropped
	if err := f.Validate(); err != nil {
		return nil, dropped, fmt.Errorf("Prepare: %w", err)
	}
	var err error
	if f.MinAbundance > 0 || f.MinSampleFraction > 0 {
		if t, dropped.Abundance, err = FilterAbundance(t, f.MinAbundance, f.MinSampleFraction); err != nil {
			return nil, dropped, fmt.Errorf("Prepare: %w", err)
		}
	}
	if f.DropZero {
		if t, dropped.Zero, err = DropZeroColumns(t); err != nil {
			return nil, dropped, fmt.Errorf("Prepare: %w", err)
		}
	}
	if f.Rescale {
		if t, err = RescaleMinMax(t); err != nil {
			return nil, dropped, fmt.Errorf("Prepare: %w", err)
		}
	}

	return t, dropped, nil
}

// FilterAbundance keeps the columns in which at least minFraction of the rows
// hold a value ≥ minValue, and returns the names of the removed ones.
// Errors: ErrBadFilter, ErrNoColumns.
func FilterAbundance(t *matrix.Table, minValue, minFraction float64) (*matrix.Table, []string, error) {
	if err := checkThresholds(minValue, minFraction); err != nil {
		return nil, nil, fmt.Errorf("FilterAbundance: %w", err)
	}

	return keepColumns("FilterAbundance", t, func(col []float64) bool {
		hits := 0
		for _, v := range col {
			if v >= minValue {
				hits++
			}
		}

		return float64(hits)/float64(len(col)) >= minFraction
	})
}

// DropZeroColumns removes the columns whose values are all 0 and returns their names.
// Errors: ErrNoColumns.
func DropZeroColumns(t *matrix.Table) (*matrix.Table, []string, error) {
	return keepColumns("DropZeroColumns", t, func(col []float64) bool {
		for _, v := range col {
			if v != 0 {
				return true
			}
		}

		return false
	})
}

// RescaleMinMax maps every column linearly onto [0, 1]: (v - min) / (max - min).
// A constant column maps to 0.
func RescaleMinMax(t *matrix.Table) (*matrix.Table, error) {
	lo := make([]float64, t.Cols())
	span := make([]float64, t.Cols())
	for j := range lo {
		col, err := t.Col(j)
		if err != nil {
			return nil, fmt.Errorf("RescaleMinMax: %w", err)
		}
		lo[j] = floats.Min(col)
		span[j] = floats.Max(col) - lo[j]
	}
	out, err := t.Map(func(_, j int, v float64) float64 {
		if span[j] == 0 {
			return 0
		}

		return (v - lo[j]) / span[j]
	})
	if err != nil {
		return nil, fmt.Errorf("RescaleMinMax: %w", err)
	}

	return out, nil
}

// keepColumns returns t restricted to the columns accepted by keep, plus the
// names of the rejected ones in column order.
func keepColumns(op string, t *matrix.Table, keep func(col []float64) bool) (*matrix.Table, []string, error) {
	var kept []int
	var removed []string
	for j := 0; j < t.Cols(); j++ {
		col, err := t.Col(j)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", op, err)
		}
		if keep(col) {
			kept = append(kept, j)
		} else {
			removed = append(removed, t.ColName(j))
		}
	}
	if len(kept) == 0 {
		return nil, removed, fmt.Errorf("%s: all %d columns removed: %w", op, t.Cols(), ErrNoColumns)
	}
	if len(removed) == 0 {
		return t, nil, nil
	}
	out, err := t.Select(kept)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, removed, nil
}

func checkThresholds(minValue, minFraction float64) error {
	if !(minValue >= 0 && minValue <= 1) {
		return fmt.Errorf("%w: min abundance %g", ErrBadFilter, minValue)
	}
	if !(minFraction >= 0 && minFraction <= 1) {
		return fmt.Errorf("%w: min sample fraction %g", ErrBadFilter, minFraction)
	}

	return nil
}
