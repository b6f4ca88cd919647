// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - One source of truth for index and size guards.
//   - Validators return wrapped sentinels tagged with the validator name; facades add
//     the operation tag on top, so messages read "Add: ValidateSameSize: ...".
//
// Determinism & Performance:
//   - All checks are O(1) and allocate only on failure.

package vector

import "fmt"

// validatorErrorf wraps err with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSize ensures a requested vector size is positive.
// Errors: ErrInvalidDimensions.
func ValidateSize(n int) error {
	if n <= 0 {
		return validatorErrorf("ValidateSize", fmt.Errorf("size %d: %w", n, ErrInvalidDimensions))
	}

	return nil
}

// ValidateIndex ensures 1 <= i <= n.
// Errors: ErrOutOfRange.
func ValidateIndex(i, n int) error {
	if i < 1 || i > n {
		return validatorErrorf("ValidateIndex", fmt.Errorf("index %d not in [1, %d]: %w", i, n, ErrOutOfRange))
	}

	return nil
}

// ValidateSameSize ensures two operand sizes agree; want is the receiver size.
// Errors: ErrDimensionMismatch, with both sizes in the message.
func ValidateSameSize(want, got int) error {
	if want != got {
		return validatorErrorf("ValidateSameSize", fmt.Errorf("expected size %d, got %d: %w", want, got, ErrDimensionMismatch))
	}

	return nil
}
