// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// Every sentinel carries its category from package fault, so callers may match either
// the specific condition or the category with errors.Is.

package vector

import "github.com/katalvlaran/exactla/fault"

var (
	// ErrInvalidDimensions is returned when a builder is requested with size <= 0.
	ErrInvalidDimensions = fault.Argument("vector: size must be > 0")

	// ErrOutOfRange indicates an index outside [1, Size()].
	ErrOutOfRange = fault.Argument("vector: index out of range")

	// ErrDimensionMismatch indicates operands of different sizes.
	ErrDimensionMismatch = fault.Argument("vector: dimension mismatch")

	// ErrBuilderFull is returned by PutNext when every position is already assigned.
	ErrBuilderFull = fault.State("vector: builder is full")

	// ErrIncomplete is returned by Build when at least one position is unassigned.
	ErrIncomplete = fault.State("vector: builder is incomplete")

	// ErrBuilderConsumed is returned by any builder call after a successful Build.
	ErrBuilderConsumed = fault.State("vector: builder already built")
)
