// SPDX-License-Identifier: MIT
// Package vector: algebraic kernels (elementwise sum and difference, scaling, negation,
// dot product).
//
// Notes:
//   - Binary kernels validate sizes through ValidateSameSize before touching any entry.
//   - Results are produced by generate, i.e. through a fresh Builder.

package vector

import "fmt"

// Operation tags used by vectorErrorf.
const (
	opAt           = "At"
	opAdd          = "Add"
	opSub          = "Sub"
	opDot          = "Dot"
	opNewBuilder   = "NewBuilder"
	opPut          = "Put"
	opPutNext      = "PutNext"
	opPutAll       = "PutAll"
	opPutRemaining = "PutRemaining"
	opBuild        = "Build"
	opFromEntries  = "FromEntries"
	opEuclidean    = "EuclideanNorm"
	opTaxicabDist  = "TaxicabDistance"
	opMaxDist      = "MaxDistance"
	opEuclidPow2D  = "EuclideanDistancePow2"
	opEuclidDist   = "EuclideanDistance"
)

// vectorErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with err != nil.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add returns v + w.
// Errors: ErrDimensionMismatch.
// Complexity: O(n).
func (v Vector[T, N]) Add(w Vector[T, N]) (Vector[T, N], error) {
	if err := ValidateSameSize(v.Size(), w.Size()); err != nil {
		return Vector[T, N]{}, vectorErrorf(opAdd, err)
	}

	return generate[T, N](v.Size(), func(k int) T { return v.data[k].Add(w.data[k]) }), nil
}

// Sub returns v − w.
// Errors: ErrDimensionMismatch.
// Complexity: O(n).
func (v Vector[T, N]) Sub(w Vector[T, N]) (Vector[T, N], error) {
	if err := ValidateSameSize(v.Size(), w.Size()); err != nil {
		return Vector[T, N]{}, vectorErrorf(opSub, err)
	}

	return v.sub(w), nil
}

// sub is Sub without the size check.
func (v Vector[T, N]) sub(w Vector[T, N]) Vector[T, N] {
	return generate[T, N](v.Size(), func(k int) T { return v.data[k].Sub(w.data[k]) })
}

// Scale returns alpha·v.
// Complexity: O(n).
func (v Vector[T, N]) Scale(alpha T) Vector[T, N] {
	return generate[T, N](v.Size(), func(k int) T { return alpha.Mul(v.data[k]) })
}

// Neg returns −v (equivalently Scale(−1)).
func (v Vector[T, N]) Neg() Vector[T, N] {
	return generate[T, N](v.Size(), func(k int) T { return v.data[k].Neg() })
}

// Dot returns Σ v_k·w_k. No conjugation is applied for complex domains.
// Errors: ErrDimensionMismatch.
// Complexity: O(n).
func (v Vector[T, N]) Dot(w Vector[T, N]) (T, error) {
	var acc T
	if err := ValidateSameSize(v.Size(), w.Size()); err != nil {
		return acc, vectorErrorf(opDot, err)
	}
	acc = acc.Zero()
	for k := range v.data {
		acc = acc.Add(v.data[k].Mul(w.data[k]))
	}

	return acc, nil
}
