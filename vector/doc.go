// SPDX-License-Identifier: MIT

// Package vector provides immutable, 1-indexed vectors generic over the scalar domains
// of package scalar.
//
// A Vector[T, N] is parameterized by its element type T and the norm codomain N
// (N == T for Int, Fraction and Decimal; N == scalar.Decimal for the complex domains).
// Vectors are created only through a Builder, which guarantees that every position is
// assigned before the value becomes visible:
//
//	b, _ := vector.NewBuilder[scalar.Int, scalar.Int](2)
//	_ = b.PutNext(scalar.NewInt(3))
//	_ = b.PutNext(scalar.NewInt(4))
//	v, _ := b.Build()
//	v.TaxicabNorm()       // 7
//	v.EuclideanNormPow2() // 25
//
// Every operation returns a new vector; the receiver is never modified, so built
// vectors are safe for concurrent reads. Operations on two vectors fail fast with
// ErrDimensionMismatch before any arithmetic is done.
//
// Errors:
//   - ErrInvalidDimensions, ErrOutOfRange, ErrDimensionMismatch (illegal argument).
//   - ErrBuilderFull, ErrIncomplete, ErrBuilderConsumed (illegal state).
//
// Both categories are matchable with errors.Is against fault.ErrIllegalArgument and
// fault.ErrIllegalState.
package vector
