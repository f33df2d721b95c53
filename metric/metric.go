// SPDX-License-Identifier: MIT

package metric

import (
	"fmt"
	"strings"
)

// Family groups methods by the kind of matrix they produce.
type Family int

const (
	// Unsupported is the family of any name outside the registry.
	Unsupported Family = iota
	// Correlation methods produce a symmetric matrix with unit diagonal in [-1, 1].
	Correlation
	// Distance methods produce a symmetric non-negative matrix with zero diagonal.
	Distance
)

// String returns the lower-case family name.
func (f Family) String() string {
	switch f {
	case Correlation:
		return "correlation"
	case Distance:
		return "distance"
	default:
		return "unsupported"
	}
}

// Method is a supported comparison method. The zero value is invalid.
type Method int

const (
	Pearson Method = iota + 1
	Spearman
	Kendall
	Euclidean
	Maximum
	Manhattan
	Canberra
	Binary
	Minkowski
)

// registry lists every method in its canonical order: correlations first.
var registry = [...]struct {
	method Method
	name   string
	family Family
}{
	{Pearson, "pearson", Correlation},
	{Spearman, "spearman", Correlation},
	{Kendall, "kendall", Correlation},
	{Euclidean, "euclidean", Distance},
	{Maximum, "maximum", Distance},
	{Manhattan, "manhattan", Distance},
	{Canberra, "canberra", Distance},
	{Binary, "binary", Distance},
	{Minkowski, "minkowski", Distance},
}

// supportedSep joins names in SupportedString.
const supportedSep = ", "

// String returns the registered name, or "Method(n)" for invalid values.
func (m Method) String() string {
	for _, e := range registry {
		if e.method == m {
			return e.name
		}
	}

	return fmt.Sprintf("Method(%d)", int(m))
}

// Family returns the family of m, Unsupported for invalid values.
func (m Method) Family() Family {
	for _, e := range registry {
		if e.method == m {
			return e.family
		}
	}

	return Unsupported
}

// IsCorrelation reports whether m belongs to the correlation family.
func (m Method) IsCorrelation() bool { return m.Family() == Correlation }

// Valid reports whether m is a registered method.
func (m Method) Valid() bool { return m.Family() != Unsupported }

// Classify returns the family of a method name. Matching is case-sensitive.
func Classify(name string) Family {
	m, err := Parse(name)
	if err != nil {
		return Unsupported
	}

	return m.Family()
}

// Parse resolves a method name.
// Errors: ErrUnsupportedMethod, naming the input and the supported set.
func Parse(name string) (Method, error) {
	for _, e := range registry {
		if e.name == name {
			return e.method, nil
		}
	}

	return 0, fmt.Errorf("%w %q (supported methods: %s)", ErrUnsupportedMethod, name, SupportedString())
}

// ParseAll resolves a method list, preserving its order.
// Errors: ErrNoMethods, ErrUnsupportedMethod, ErrDuplicateMethod.
func ParseAll(names []string) ([]Method, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("%w (supported methods: %s)", ErrNoMethods, SupportedString())
	}
	out := make([]Method, 0, len(names))
	seen := make(map[Method]bool, len(names))
	for _, name := range names {
		m, err := Parse(name)
		if err != nil {
			return nil, err
		}
		if seen[m] {
			return nil, fmt.Errorf("%w %q", ErrDuplicateMethod, name)
		}
		seen[m] = true
		out = append(out, m)
	}

	return out, nil
}

// Supported returns all method names in canonical order.
func Supported() []string {
	out := make([]string, len(registry))
	for i, e := range registry {
		out[i] = e.name
	}

	return out
}

// SupportedString returns the supported set as one comma-separated string.
func SupportedString() string { return strings.Join(Supported(), supportedSep) }

// CorrelationMethods returns the correlation family in canonical order.
func CorrelationMethods() []Method { return byFamily(Correlation) }

// DistanceMethods returns the distance family in canonical order.
func DistanceMethods() []Method { return byFamily(Distance) }

func byFamily(f Family) []Method {
	var out []Method
	for _, e := range registry {
		if e.family == f {
			out = append(out, e.method)
		}
	}

	return out
}
