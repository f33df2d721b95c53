// SPDX-License-Identifier: MIT

// Package scale derives the colour-scale bounds of a heatmap from a pairwise
// matrix and a policy.
//
// Policies:
//
//	default  (-1, 1) whatever the data, so plots of one method stay comparable
//	tight    (min, max) of the matrix, for maximum contrast in a single plot
//	focus    (min, FocusMin, FocusMax): FocusMin is the midpoint of a
//	         three-colour gradient, so everything below it renders pale
//
// Focus thresholds are checked by Config.Validate at configuration time; a
// FocusMin above FocusMax never reaches rendering. Compute never mutates the
// matrix it reads.
package scale
