// SPDX-License-Identifier: MIT

package scale

import (
	"fmt"
	"math"

	"github.com/katalvlaran/simmap/matrix"
)

// Policy selects how bounds are derived.
type Policy int

const (
	Default Policy = iota
	Tight
	Focus
)

// Fixed bounds of the default policy.
const (
	DefaultLow  = -1.0
	DefaultHigh = 1.0
)

var policyNames = [...]string{Default: "default", Tight: "tight", Focus: "focus"}

// String returns the policy name.
func (p Policy) String() string {
	if p < 0 || int(p) >= len(policyNames) {
		return fmt.Sprintf("Policy(%d)", int(p))
	}

	return policyNames[p]
}

// ParsePolicy resolves a policy name (case-sensitive).
func ParsePolicy(name string) (Policy, error) {
	for p, n := range policyNames {
		if n == name {
			return Policy(p), nil
		}
	}

	return 0, fmt.Errorf("%w %q (supported: default, tight, focus)", ErrUnknownPolicy, name)
}

// Config is the immutable scale setting of a run.
// FocusMin and FocusMax are only read under the Focus policy.
type Config struct {
	Policy   Policy
	FocusMin float64
	FocusMax float64
}

// Validate checks the configuration. Under Focus both thresholds must be
// finite and FocusMin ≤ FocusMax.
func (c Config) Validate() error {
	switch c.Policy {
	case Default, Tight:
		return nil
	case Focus:
		if !finite(c.FocusMin) || !finite(c.FocusMax) {
			return fmt.Errorf("%w: focus bounds must be finite, got min=%v max=%v", ErrFocusBounds, c.FocusMin, c.FocusMax)
		}
		if c.FocusMin > c.FocusMax {
			return fmt.Errorf("%w: focus min %g > focus max %g", ErrFocusBounds, c.FocusMin, c.FocusMax)
		}

		return nil
	default:
		return fmt.Errorf("%w %s", ErrUnknownPolicy, c.Policy)
	}
}

// Bounds are rendering parameters: Low ≤ Mid ≤ High. Mid is meaningful only
// when HasMid is set (focus policy).
type Bounds struct {
	Low    float64
	Mid    float64
	High   float64
	HasMid bool
}

// Midpoint returns Mid when set, else the centre of [Low, High].
func (b Bounds) Midpoint() float64 {
	if b.HasMid {
		return b.Mid
	}

	return b.Low + (b.High-b.Low)/2
}

// Norm maps v to [0, 1], piecewise linear around Midpoint (which maps to 0.5).
// Values outside [Low, High] are clipped; a degenerate half maps to its end.
func (b Bounds) Norm(v float64) float64 {
	mid := b.Midpoint()
	switch {
	case v <= b.Low:
		return 0
	case v >= b.High:
		return 1
	case v < mid:
		return 0.5 * (v - b.Low) / (mid - b.Low)
	case v > mid:
		return 0.5 + 0.5*(v-mid)/(b.High-mid)
	default:
		return 0.5
	}
}

// String renders the bounds for logs.
func (b Bounds) String() string {
	if b.HasMid {
		return fmt.Sprintf("(%g, %g, %g)", b.Low, b.Mid, b.High)
	}

	return fmt.Sprintf("(%g, %g)", b.Low, b.High)
}

// Compute derives the bounds of sq under cfg.
//
//	default: (-1, 1)
//	tight:   (min, max) over all cells, diagonal included
//	focus:   (min(actual min, FocusMin), FocusMin, FocusMax)
//
// Under focus the low end is lowered to FocusMin when the whole matrix lies
// above it, so Low ≤ Mid always holds. Data above FocusMax is clipped by Norm.
// Errors: ErrNilMatrix, and those of Config.Validate.
func Compute(sq *matrix.Square, cfg Config) (Bounds, error) {
	if err := cfg.Validate(); err != nil {
		return Bounds{}, err
	}
	if sq == nil {
		return Bounds{}, ErrNilMatrix
	}

	return derive(cfg, sq.MinMax), nil
}

// ComputeTable derives the bounds of the cells of t under cfg, with the same
// rules as Compute. NaN cells are ignored.
// Errors: ErrNilMatrix, and those of Config.Validate.
func ComputeTable(t *matrix.Table, cfg Config) (Bounds, error) {
	if err := cfg.Validate(); err != nil {
		return Bounds{}, err
	}
	if t == nil {
		return Bounds{}, ErrNilMatrix
	}

	return derive(cfg, t.MinMax), nil
}

// derive applies a validated cfg to the data range reported by minMax.
func derive(cfg Config, minMax func() (lo, hi float64)) Bounds {
	switch cfg.Policy {
	case Tight:
		lo, hi := minMax()

		return Bounds{Low: lo, High: hi}
	case Focus:
		lo, _ := minMax()

		return Bounds{Low: math.Min(lo, cfg.FocusMin), Mid: cfg.FocusMin, High: cfg.FocusMax, HasMid: true}
	default:
		return Bounds{Low: DefaultLow, High: DefaultHigh}
	}
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
