// SPDX-License-Identifier: MIT

package pipeline

import (
	"errors"
	"time"

	"github.com/katalvlaran/simmap/metric"
	"github.com/katalvlaran/simmap/scale"
)

// Result is the outcome of one method.
type Result struct {
	Method   metric.Method
	Files    []string     // paths written, in order
	Bounds   scale.Bounds // colour bounds of the heatmap
	Order    []string     // entity labels in plot order
	RowOrder []string     // sample labels in plot order, value mode with clustered rows only
	Duration time.Duration
	Err      error // nil on success; wrapped with the method name
}

// Summary holds one Result per requested method, in request order.
type Summary struct {
	Results []Result
}

// Succeeded returns the results without error.
func (s *Summary) Succeeded() []Result { return s.filter(false) }

// Failed returns the results with an error.
func (s *Summary) Failed() []Result { return s.filter(true) }

func (s *Summary) filter(failed bool) []Result {
	var out []Result
	for _, r := range s.Results {
		if (r.Err != nil) == failed {
			out = append(out, r)
		}
	}

	return out
}

// Err joins the errors of all failed methods, or returns nil.
func (s *Summary) Err() error {
	var errs []error
	for _, r := range s.Results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}

	return errors.Join(errs...)
}
