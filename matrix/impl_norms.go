// SPDX-License-Identifier: MIT
// Package matrix: matrix norms.
//
// All norms except FrobeniusNorm are exact values of the norm codomain N.

package matrix

import (
	"github.com/katalvlaran/exactla/bigsqrt"
	"github.com/katalvlaran/exactla/scalar"
)

// MaxAbsColumnSumNorm returns max_j Σ_i |m(i,j)| (the induced 1-norm).
// Complexity: O(r*c).
func (m Matrix[T, N]) MaxAbsColumnSumNorm() N {
	var best N
	best = best.Zero()
	for j := 1; j <= m.c; j++ {
		var sum N
		sum = sum.Zero()
		for i := 1; i <= m.r; i++ {
			sum = sum.Add(m.at(i, j).Abs())
		}
		if sum.Cmp(best) > 0 {
			best = sum
		}
	}

	return best
}

// MaxAbsRowSumNorm returns max_i Σ_j |m(i,j)| (the induced ∞-norm).
// Complexity: O(r*c).
func (m Matrix[T, N]) MaxAbsRowSumNorm() N {
	var best N
	best = best.Zero()
	for i := 1; i <= m.r; i++ {
		var sum N
		sum = sum.Zero()
		for j := 1; j <= m.c; j++ {
			sum = sum.Add(m.at(i, j).Abs())
		}
		if sum.Cmp(best) > 0 {
			best = sum
		}
	}

	return best
}

// FrobeniusNormPow2 returns Σ |m(i,j)|², exactly.
func (m Matrix[T, N]) FrobeniusNormPow2() N {
	var acc N
	acc = acc.Zero()
	for _, x := range m.data {
		acc = acc.Add(x.AbsSquared())
	}

	return acc
}

// FrobeniusNorm returns sqrt(FrobeniusNormPow2()) under opts; with no options the
// bigsqrt defaults apply.
// Errors: bigsqrt option errors and ErrRoundingNecessary.
func (m Matrix[T, N]) FrobeniusNorm(opts ...bigsqrt.Option) (scalar.Decimal, error) {
	r, err := m.FrobeniusNormPow2().Decimal().Sqrt(opts...)
	if err != nil {
		return scalar.Decimal{}, matrixErrorf(opFrobenius, err)
	}

	return r, nil
}

// MaxNorm returns max |m(i,j)|.
func (m Matrix[T, N]) MaxNorm() N {
	var best N
	best = best.Zero()
	for _, x := range m.data {
		if a := x.Abs(); a.Cmp(best) > 0 {
			best = a
		}
	}

	return best
}
