// SPDX-License-Identifier: MIT

package cluster

import (
	"fmt"
	"math"

	"github.com/katalvlaran/simmap/matrix"
)

// Linkage selects the inter-cluster distance rule.
type Linkage int

const (
	Average Linkage = iota
	Single
	Complete
)

var linkageNames = [...]string{Average: "average", Single: "single", Complete: "complete"}

// String returns the linkage name.
func (l Linkage) String() string {
	if l < 0 || int(l) >= len(linkageNames) {
		return fmt.Sprintf("Linkage(%d)", int(l))
	}

	return linkageNames[l]
}

// ParseLinkage resolves a linkage name (case-sensitive).
func ParseLinkage(name string) (Linkage, error) {
	for l, n := range linkageNames {
		if n == name {
			return Linkage(l), nil
		}
	}

	return 0, fmt.Errorf("%w %q (supported: average, single, complete)", ErrUnknownLinkage, name)
}

// Options tunes Cluster.
type Options struct {
	Linkage   Linkage
	Tolerance float64 // absolute tolerance of the symmetry and zero-diagonal checks
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns average linkage with matrix.DefaultEpsilon tolerance.
func DefaultOptions() Options {
	return Options{Linkage: Average, Tolerance: matrix.DefaultEpsilon}
}

// WithLinkage selects the linkage rule.
func WithLinkage(l Linkage) Option { return func(o *Options) { o.Linkage = l } }

// WithTolerance sets the structural tolerance (finite, ≥ 0).
func WithTolerance(tol float64) Option { return func(o *Options) { o.Tolerance = tol } }

func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.Linkage < Average || o.Linkage > Complete {
		return o, fmt.Errorf("%w %s", ErrUnknownLinkage, o.Linkage)
	}
	if math.IsNaN(o.Tolerance) || math.IsInf(o.Tolerance, 0) || o.Tolerance < 0 {
		return o, fmt.Errorf("%w: tolerance %g", ErrBadOption, o.Tolerance)
	}

	return o, nil
}
