// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for shape and index checks.
//   - Keep kernels minimal by delegating guards here; kernels add their op tag.
//
// Determinism & Performance:
//   - All checks are O(1) and allocate only when they fail.
//
// Note:
//   - Messages always carry expected vs actual values ("expected 2x3, got 3x3").
//   - Validators take plain ints so the builder and the kernels share them.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateShape – Ensures requested dimensions are positive.
//
// Errors: ErrInvalidDimensions.
// Complexity: O(1).
func ValidateShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return validatorErrorf("ValidateShape", fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimensions))
	}

	return nil
}

// ValidateCell – Ensures 1 <= i <= rows and 1 <= j <= cols.
//
// Errors: ErrOutOfRange.
// Complexity: O(1).
func ValidateCell(i, j, rows, cols int) error {
	if i < 1 || i > rows {
		return validatorErrorf("ValidateCell", fmt.Errorf("row %d not in [1, %d]: %w", i, rows, ErrOutOfRange))
	}
	if j < 1 || j > cols {
		return validatorErrorf("ValidateCell", fmt.Errorf("column %d not in [1, %d]: %w", j, cols, ErrOutOfRange))
	}

	return nil
}

// ValidateSameShape – Ensures operand b has the receiver's shape.
//
// Inputs: receiver shape (r1, c1), operand shape (r2, c2).
// Errors: ErrDimensionMismatch.
// AI-Hints: Use for Add/Sub.
func ValidateSameShape(r1, c1, r2, c2 int) error {
	if r1 != r2 || c1 != c2 {
		return validatorErrorf("ValidateSameShape",
			fmt.Errorf("expected %dx%d, got %dx%d: %w", r1, c1, r2, c2, ErrDimensionMismatch))
	}

	return nil
}

// ValidateMulShape – Ensures the inner dimensions of a product agree.
//
// Errors: ErrDimensionMismatch.
func ValidateMulShape(leftCols, rightRows int) error {
	if leftCols != rightRows {
		return validatorErrorf("ValidateMulShape",
			fmt.Errorf("expected %d rows on the right, got %d: %w", leftCols, rightRows, ErrDimensionMismatch))
	}

	return nil
}

// ValidateVecLen – Ensures a vector operand has exactly n entries.
//
// Errors: ErrDimensionMismatch.
func ValidateVecLen(size, n int) error {
	if size != n {
		return validatorErrorf("ValidateVecLen",
			fmt.Errorf("expected vector size %d, got %d: %w", n, size, ErrDimensionMismatch))
	}

	return nil
}

// ValidateSquare – Ensures rows == cols.
//
// Errors: ErrNonSquare (the receiver state, not an argument, is at fault).
func ValidateSquare(rows, cols int) error {
	if rows != cols {
		return validatorErrorf("ValidateSquare", fmt.Errorf("got %dx%d: %w", rows, cols, ErrNonSquare))
	}

	return nil
}
