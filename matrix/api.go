// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Thin, intention-revealing constructors over Builder for callers that already hold
//     the entries (identity, zeros, rows, vectors, literals).
//   - Domain aliases so call sites can name IntMatrix instead of the two-parameter form.
//
// Determinism & Policy:
//   - Facades validate shape up front and delegate storage to Builder.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/exactla/scalar"
	"github.com/katalvlaran/exactla/vector"
)

// Domain aliases.
type (
	IntMatrix            = Matrix[scalar.Int, scalar.Int]
	FractionMatrix       = Matrix[scalar.Fraction, scalar.Fraction]
	DecimalMatrix        = Matrix[scalar.Decimal, scalar.Decimal]
	GaussianMatrix       = Matrix[scalar.GaussianInt, scalar.Decimal]
	ComplexDecimalMatrix = Matrix[scalar.ComplexDecimal, scalar.Decimal]
)

// NewZeros returns the rows×cols zero matrix.
// Errors: ErrInvalidDimensions.
// Complexity: O(rows*cols).
func NewZeros[T scalar.Element[T, N], N scalar.Norm[N]](rows, cols int) (Matrix[T, N], error) {
	if err := ValidateShape(rows, cols); err != nil {
		return Matrix[T, N]{}, matrixErrorf(opNewZeros, err)
	}
	var zero T

	return generate[T, N](rows, cols, func(_, _ int) T { return zero.Zero() }), nil
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Errors: ErrInvalidDimensions.
// AI-Hints: Use as the neutral element of Mul.
func NewIdentity[T scalar.Element[T, N], N scalar.Norm[N]](n int) (Matrix[T, N], error) {
	if err := ValidateShape(n, n); err != nil {
		return Matrix[T, N]{}, matrixErrorf(opNewIdentity, err)
	}
	var t T
	zero, one := t.Zero(), t.One()

	return generate[T, N](n, n, func(i, j int) T {
		if i == j {
			return one
		}
		return zero
	}), nil
}

// FromRows returns a matrix holding a copy of rows.
// Errors: ErrInvalidDimensions (no rows or empty first row), ErrDimensionMismatch
// (ragged rows; the message names the first offending row).
func FromRows[T scalar.Element[T, N], N scalar.Norm[N]](rows [][]T) (Matrix[T, N], error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	b, err := NewBuilder[T, N](r, c)
	if err != nil {
		return Matrix[T, N]{}, matrixErrorf(opFromRows, err)
	}
	for i, row := range rows {
		if err = b.PutRow(i+1, row...); err != nil {
			return Matrix[T, N]{}, matrixErrorf(opFromRows, fmt.Errorf("row %d: %w", i+1, err))
		}
	}

	return b.Build()
}

// FromVectorRows returns the matrix whose i-th row is rows[i].
// Errors: ErrInvalidDimensions, ErrDimensionMismatch.
func FromVectorRows[T scalar.Element[T, N], N scalar.Norm[N]](rows ...vector.Vector[T, N]) (Matrix[T, N], error) {
	raw := make([][]T, len(rows))
	for i, v := range rows {
		raw[i] = v.Entries()
	}
	m, err := FromRows[T, N](raw)
	if err != nil {
		return Matrix[T, N]{}, matrixErrorf(opFromVecRows, err)
	}

	return m, nil
}

// ColumnVector returns v as a Size()×1 matrix.
// Errors: ErrInvalidDimensions for the zero Vector.
func ColumnVector[T scalar.Element[T, N], N scalar.Norm[N]](v vector.Vector[T, N]) (Matrix[T, N], error) {
	x := v.Entries()
	if err := ValidateShape(len(x), 1); err != nil {
		return Matrix[T, N]{}, matrixErrorf(opColumnVector, err)
	}

	return generate[T, N](len(x), 1, func(i, _ int) T { return x[i-1] }), nil
}

// Ints returns an IntMatrix of the given rows.
func Ints(rows [][]int64) (IntMatrix, error) {
	raw := make([][]scalar.Int, len(rows))
	for i, row := range rows {
		raw[i] = make([]scalar.Int, len(row))
		for j, x := range row {
			raw[i][j] = scalar.NewInt(x)
		}
	}

	return FromRows[scalar.Int, scalar.Int](raw)
}

// Decimals parses every literal and returns a DecimalMatrix.
// Errors: scalar.ErrParse plus the FromRows errors.
func Decimals(rows [][]string) (DecimalMatrix, error) {
	raw := make([][]scalar.Decimal, len(rows))
	for i, row := range rows {
		raw[i] = make([]scalar.Decimal, len(row))
		for j, s := range row {
			d, err := scalar.ParseDecimal(s)
			if err != nil {
				return DecimalMatrix{}, matrixErrorf(opParse, fmt.Errorf("cell (%d,%d): %w", i+1, j+1, err))
			}
			raw[i][j] = d
		}
	}

	return FromRows[scalar.Decimal, scalar.Decimal](raw)
}

// Fractions parses every literal ("1/2", "3", "0.25") and returns a FractionMatrix.
// Errors: scalar.ErrParse plus the FromRows errors.
func Fractions(rows [][]string) (FractionMatrix, error) {
	raw := make([][]scalar.Fraction, len(rows))
	for i, row := range rows {
		raw[i] = make([]scalar.Fraction, len(row))
		for j, s := range row {
			f, err := scalar.ParseFraction(s)
			if err != nil {
				return FractionMatrix{}, matrixErrorf(opParse, fmt.Errorf("cell (%d,%d): %w", i+1, j+1, err))
			}
			raw[i][j] = f
		}
	}

	return FromRows[scalar.Fraction, scalar.Fraction](raw)
}
