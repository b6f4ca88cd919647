// SPDX-License-Identifier: MIT
// Package vector: facades and domain aliases.
//
// The facades are thin wrappers over Builder for callers that already hold all entries.

package vector

import (
	"github.com/katalvlaran/exactla/scalar"
)

// Domain aliases.
type (
	IntVector            = Vector[scalar.Int, scalar.Int]
	FractionVector       = Vector[scalar.Fraction, scalar.Fraction]
	DecimalVector        = Vector[scalar.Decimal, scalar.Decimal]
	GaussianVector       = Vector[scalar.GaussianInt, scalar.Decimal]
	ComplexDecimalVector = Vector[scalar.ComplexDecimal, scalar.Decimal]
)

// FromEntries returns a vector holding a copy of entries.
// Errors: ErrInvalidDimensions when entries is empty.
// Complexity: O(n).
func FromEntries[T scalar.Element[T, N], N scalar.Norm[N]](entries []T) (Vector[T, N], error) {
	b, err := NewBuilder[T, N](len(entries))
	if err != nil {
		return Vector[T, N]{}, vectorErrorf(opFromEntries, err)
	}
	for i, x := range entries {
		if err = b.Put(i+1, x); err != nil {
			return Vector[T, N]{}, vectorErrorf(opFromEntries, err)
		}
	}

	return b.Build()
}

// Zeros returns the zero vector of the given size.
// Errors: ErrInvalidDimensions.
func Zeros[T scalar.Element[T, N], N scalar.Norm[N]](size int) (Vector[T, N], error) {
	b, err := NewBuilder[T, N](size)
	if err != nil {
		return Vector[T, N]{}, err
	}
	var zero T
	if err = b.PutAll(zero.Zero()); err != nil {
		return Vector[T, N]{}, err
	}

	return b.Build()
}

// Ints returns an IntVector of the given values.
func Ints(xs ...int64) (IntVector, error) {
	entries := make([]scalar.Int, len(xs))
	for i, x := range xs {
		entries[i] = scalar.NewInt(x)
	}

	return FromEntries[scalar.Int, scalar.Int](entries)
}

// Decimals parses each literal and returns a DecimalVector.
// Errors: scalar.ErrParse, ErrInvalidDimensions.
func Decimals(xs ...string) (DecimalVector, error) {
	entries := make([]scalar.Decimal, len(xs))
	for i, s := range xs {
		d, err := scalar.ParseDecimal(s)
		if err != nil {
			return DecimalVector{}, vectorErrorf(opFromEntries, err)
		}
		entries[i] = d
	}

	return FromEntries[scalar.Decimal, scalar.Decimal](entries)
}

// Fractions parses each literal ("1/2", "3", "0.25") and returns a FractionVector.
// Errors: scalar.ErrParse, ErrInvalidDimensions.
func Fractions(xs ...string) (FractionVector, error) {
	entries := make([]scalar.Fraction, len(xs))
	for i, s := range xs {
		f, err := scalar.ParseFraction(s)
		if err != nil {
			return FractionVector{}, vectorErrorf(opFromEntries, err)
		}
		entries[i] = f
	}

	return FromEntries[scalar.Fraction, scalar.Fraction](entries)
}
