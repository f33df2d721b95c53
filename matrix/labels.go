// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strconv"
)

// validateLabels checks that labels has length n, with no empty or repeated entries.
// Complexity: O(n) time, O(n) space for the seen-set.
func validateLabels(axis string, labels []string, n int) error {
	if len(labels) != n {
		return fmt.Errorf("%s labels: got %d, want %d: %w", axis, len(labels), n, ErrLabelCount)
	}
	seen := make(map[string]int, n)
	for i, l := range labels {
		if l == "" {
			return fmt.Errorf("%s label %d: %w", axis, i, ErrEmptyLabel)
		}
		if prev, dup := seen[l]; dup {
			return fmt.Errorf("%s label %q at %d and %d: %w", axis, l, prev, i, ErrDuplicateLabel)
		}
		seen[l] = i
	}

	return nil
}

// NumberedLabels returns "1".."n", the labels given to unnamed rows.
func NumberedLabels(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = strconv.Itoa(i + 1)
	}

	return out
}

// cloneStrings copies s so callers never alias internal label slices.
func cloneStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)

	return out
}
