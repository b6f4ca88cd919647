// SPDX-License-Identifier: MIT
// Package fault declares the two error categories shared by every exactla package.
//
// Purpose:
//   - Give callers one place to branch on the KIND of failure, independently of the
//     package that detected it.
//   - Package-specific sentinels (matrix.ErrDimensionMismatch, bigsqrt.ErrNegativeInput, ...)
//     chain to exactly one category via %w, so both errors.Is checks hold.
//
// Categories:
//   - ErrIllegalArgument: caller passed something unusable (nil, wrong shape, bad index,
//     non-positive size, precision outside (0,1), unknown rounding mode). Reported before
//     any computation.
//   - ErrIllegalState: the receiver does not satisfy an invariant the operation needs
//     (determinant of a non-square matrix, Build on an incomplete builder).
//
// Neither category is transient: the engine performs no I/O, so a failing call fails the
// same way every time. Never retry.
package fault

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalArgument marks precondition violations on arguments.
	ErrIllegalArgument = errors.New("illegal argument")

	// ErrIllegalState marks operations invoked on a receiver in the wrong state.
	ErrIllegalState = errors.New("illegal state")
)

// Argument returns a sentinel that reports msg and matches ErrIllegalArgument.
func Argument(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrIllegalArgument)
}

// State returns a sentinel that reports msg and matches ErrIllegalState.
func State(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrIllegalState)
}
