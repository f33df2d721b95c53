// SPDX-License-Identifier: MIT

// Package matrix provides the numeric containers shared by every stage of a
// similarity map.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 buffer with safe accessors and an optional
//     finite-only write policy, bridged to gonum without copying (Mat).
//   - Table: the labelled sample-by-feature input. Columns are the entities
//     compared downstream; row and column order is preserved.
//   - Square: a labelled n×n pairwise matrix (correlation or distance) with
//     MinMax and axis Reorder.
//   - Validators for square, symmetric, diagonal, non-negative and finite
//     structure, reporting the first offending cell.
//   - Column statistics (Covariance, Correlation) built on gonum/stat.
//   - The two error classes of the module, ErrValidation and ErrInvariant.
//
// All operations are deterministic and never panic on user input; they
// return sentinel errors wrapped with the operation and coordinates.
package matrix
