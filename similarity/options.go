// SPDX-License-Identifier: MIT

package similarity

import (
	"fmt"
	"math"
)

// DefaultMinkowskiP is the order of the Minkowski distance unless overridden.
const DefaultMinkowskiP = 2.0

// minMinkowskiP is the smallest order for which the Lp norm is a metric.
const minMinkowskiP = 1.0

// Options holds tuning knobs of the calculator.
type Options struct {
	MinkowskiP float64
}

// Option mutates Options.
type Option func(*Options)

// WithMinkowskiP sets the order p of the minkowski method. p must be finite and ≥ 1.
func WithMinkowskiP(p float64) Option {
	return func(o *Options) { o.MinkowskiP = p }
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{MinkowskiP: DefaultMinkowskiP}
}

// gatherOptions applies opts over the defaults and validates the result.
func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.Validate()
}

// Validate checks every knob against its domain.
// Errors: ErrBadOption.
func (o Options) Validate() error {
	if math.IsNaN(o.MinkowskiP) || math.IsInf(o.MinkowskiP, 0) || o.MinkowskiP < minMinkowskiP {
		return fmt.Errorf("%w: minkowski p = %g, want finite >= %g", ErrBadOption, o.MinkowskiP, minMinkowskiP)
	}

	return nil
}
