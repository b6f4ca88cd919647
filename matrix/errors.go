// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinels. Every message is prefixed with
// "matrix: ..." and chained to one fault category, so callers can match either.
// Call sites wrap with an operation tag and the offending values:
//
//	fmt.Errorf("Add: ValidateSameShape: expected 2x3, got 3x3: %w", ErrDimensionMismatch)
//
// No kernel panics on user-triggered conditions.

package matrix

import "github.com/katalvlaran/exactla/fault"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive
	// or that row data is empty.
	ErrInvalidDimensions = fault.Argument("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside [1, Rows()] / [1, Cols()].
	ErrOutOfRange = fault.Argument("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Add on different
	// shapes, Mul with a.Cols != b.Rows, or a ragged row slice.
	ErrDimensionMismatch = fault.Argument("matrix: dimension mismatch")

	// ErrNonSquare signals that a square receiver was required (Trace, Determinant).
	ErrNonSquare = fault.State("matrix: matrix is not square")

	// ErrTooSmall signals a Minor request on a matrix with a single row or column.
	ErrTooSmall = fault.State("matrix: minor needs at least 2 rows and 2 columns")

	// ErrIncomplete is returned by Build when at least one cell is unassigned.
	ErrIncomplete = fault.State("matrix: builder is incomplete")

	// ErrBuilderConsumed is returned by any builder call after a successful Build.
	ErrBuilderConsumed = fault.State("matrix: builder already built")
)
