// SPDX-License-Identifier: MIT
// Package vector: norms and distances.
//
// Purpose:
//   - Taxicab (L1), max (L∞) and Euclidean (L2) norms in the norm codomain N.
//   - The squared Euclidean norm stays exact; only EuclideanNorm takes a square root,
//     configured with bigsqrt options.
//   - Each distance is the matching norm of v − w.

package vector

import (
	"github.com/katalvlaran/exactla/bigsqrt"
	"github.com/katalvlaran/exactla/scalar"
)

// TaxicabNorm returns Σ |v_k|.
func (v Vector[T, N]) TaxicabNorm() N {
	var acc N
	acc = acc.Zero()
	for _, x := range v.data {
		acc = acc.Add(x.Abs())
	}

	return acc
}

// MaxNorm returns max |v_k|.
func (v Vector[T, N]) MaxNorm() N {
	var best N
	best = best.Zero()
	for _, x := range v.data {
		if a := x.Abs(); a.Cmp(best) > 0 {
			best = a
		}
	}

	return best
}

// EuclideanNormPow2 returns Σ |v_k|², i.e. v·v for real domains and Σ v_k·conj(v_k)
// for complex ones. The result is exact.
func (v Vector[T, N]) EuclideanNormPow2() N {
	var acc N
	acc = acc.Zero()
	for _, x := range v.data {
		acc = acc.Add(x.AbsSquared())
	}

	return acc
}

// EuclideanNorm returns sqrt(EuclideanNormPow2()) as a Decimal.
//
// With no options the bigsqrt defaults apply (precision 1e-20, scale 20, HALF_UP).
// bigsqrt.WithPrecision and bigsqrt.WithScale select the precision, scale+rounding and
// combined variants.
//
// Errors: the bigsqrt option errors (ErrInvalidPrecision, ErrInvalidScale,
// ErrInvalidRoundingMode) and ErrRoundingNecessary under RoundUnnecessary.
func (v Vector[T, N]) EuclideanNorm(opts ...bigsqrt.Option) (scalar.Decimal, error) {
	r, err := v.EuclideanNormPow2().Decimal().Sqrt(opts...)
	if err != nil {
		return scalar.Decimal{}, vectorErrorf(opEuclidean, err)
	}

	return r, nil
}

// TaxicabDistance returns ‖v − w‖₁.
// Errors: ErrDimensionMismatch.
func (v Vector[T, N]) TaxicabDistance(w Vector[T, N]) (N, error) {
	if err := ValidateSameSize(v.Size(), w.Size()); err != nil {
		var zero N
		return zero, vectorErrorf(opTaxicabDist, err)
	}

	return v.sub(w).TaxicabNorm(), nil
}

// MaxDistance returns ‖v − w‖∞.
// Errors: ErrDimensionMismatch.
func (v Vector[T, N]) MaxDistance(w Vector[T, N]) (N, error) {
	if err := ValidateSameSize(v.Size(), w.Size()); err != nil {
		var zero N
		return zero, vectorErrorf(opMaxDist, err)
	}

	return v.sub(w).MaxNorm(), nil
}

// EuclideanDistancePow2 returns ‖v − w‖₂².
// Errors: ErrDimensionMismatch.
func (v Vector[T, N]) EuclideanDistancePow2(w Vector[T, N]) (N, error) {
	if err := ValidateSameSize(v.Size(), w.Size()); err != nil {
		var zero N
		return zero, vectorErrorf(opEuclidPow2D, err)
	}

	return v.sub(w).EuclideanNormPow2(), nil
}

// EuclideanDistance returns ‖v − w‖₂ under opts (see EuclideanNorm).
// Errors: ErrDimensionMismatch and the EuclideanNorm errors.
func (v Vector[T, N]) EuclideanDistance(w Vector[T, N], opts ...bigsqrt.Option) (scalar.Decimal, error) {
	if err := ValidateSameSize(v.Size(), w.Size()); err != nil {
		return scalar.Decimal{}, vectorErrorf(opEuclidDist, err)
	}
	r, err := v.sub(w).EuclideanNorm(opts...)
	if err != nil {
		return scalar.Decimal{}, vectorErrorf(opEuclidDist, err)
	}

	return r, nil
}
