// SPDX-License-Identifier: MIT
// Package gonumview: float64 -> exact import.
//
// Every float is first taken at its shortest round-trip decimal representation
// (0.1 imports as 0.1, not 0.1000000000000000055...), then rounded HALF_UP.

package gonumview

import (
	"fmt"
	"math"
	"math/big"

	"github.com/cockroachdb/apd/v3"
	"github.com/katalvlaran/exactla/bigsqrt"
	"github.com/katalvlaran/exactla/matrix"
	"github.com/katalvlaran/exactla/scalar"
	"github.com/katalvlaran/exactla/vector"
	"gonum.org/v1/gonum/mat"
)

// FromDense returns a decimal matrix whose entries are the entries of a rounded to scale
// fractional digits.
// Errors: ErrNilMatrix, ErrNotFinite (naming the cell), bigsqrt.ErrInvalidScale.
// Complexity: O(r*c).
func FromDense(a mat.Matrix, scale int32) (matrix.DecimalMatrix, error) {
	if a == nil {
		return matrix.DecimalMatrix{}, viewErrorf(opFromDense, ErrNilMatrix)
	}
	r, c := a.Dims()
	b, err := matrix.NewBuilder[scalar.Decimal, scalar.Decimal](r, c)
	if err != nil {
		return matrix.DecimalMatrix{}, viewErrorf(opFromDense, err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			d, err := floatToDecimal(a.At(i, j), scale)
			if err != nil {
				return matrix.DecimalMatrix{}, viewErrorf(opFromDense, fmt.Errorf("cell (%d,%d): %w", i+1, j+1, err))
			}
			_ = b.Put(i+1, j+1, d) // in range by construction
		}
	}

	return b.Build()
}

// FromDenseRounded returns an integer matrix of the entries of a rounded half away from
// zero.
// Errors: ErrNilMatrix, ErrNotFinite.
func FromDenseRounded(a mat.Matrix) (matrix.IntMatrix, error) {
	if a == nil {
		return matrix.IntMatrix{}, viewErrorf(opFromDenseRounded, ErrNilMatrix)
	}
	r, c := a.Dims()
	b, err := matrix.NewBuilder[scalar.Int, scalar.Int](r, c)
	if err != nil {
		return matrix.IntMatrix{}, viewErrorf(opFromDenseRounded, err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			x, err := floatToInt(a.At(i, j))
			if err != nil {
				return matrix.IntMatrix{}, viewErrorf(opFromDenseRounded, fmt.Errorf("cell (%d,%d): %w", i+1, j+1, err))
			}
			_ = b.Put(i+1, j+1, x)
		}
	}

	return b.Build()
}

// FromVecDense returns a decimal vector of the entries of v rounded to scale digits.
// Errors: ErrNilMatrix, ErrNotFinite, bigsqrt.ErrInvalidScale.
func FromVecDense(v *mat.VecDense, scale int32) (vector.DecimalVector, error) {
	if v == nil {
		return vector.DecimalVector{}, viewErrorf(opFromVecDense, ErrNilMatrix)
	}
	b, err := vector.NewBuilder[scalar.Decimal, scalar.Decimal](v.Len())
	if err != nil {
		return vector.DecimalVector{}, viewErrorf(opFromVecDense, err)
	}
	for k := 0; k < v.Len(); k++ {
		d, err := floatToDecimal(v.AtVec(k), scale)
		if err != nil {
			return vector.DecimalVector{}, viewErrorf(opFromVecDense, fmt.Errorf("entry %d: %w", k+1, err))
		}
		_ = b.PutNext(d)
	}

	return b.Build()
}

func floatToDecimal(f float64, scale int32) (scalar.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return scalar.Decimal{}, fmt.Errorf("%v: %w", f, ErrNotFinite)
	}
	x, err := new(apd.Decimal).SetFloat64(f)
	if err != nil {
		return scalar.Decimal{}, fmt.Errorf("%v: %w", f, ErrNotFinite)
	}
	d, err := scalar.DecimalFromAPD(x)
	if err != nil {
		return scalar.Decimal{}, err
	}

	return d.Quantize(scale, bigsqrt.RoundHalfUp)
}

func floatToInt(f float64) (scalar.Int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return scalar.Int{}, fmt.Errorf("%v: %w", f, ErrNotFinite)
	}
	z, _ := new(big.Float).SetFloat64(math.Round(f)).Int(nil)

	return scalar.IntFromBig(z)
}
