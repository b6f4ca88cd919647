// SPDX-License-Identifier: MIT
// Package gonumview: exact -> float64 export.

package gonumview

import (
	"github.com/katalvlaran/exactla/matrix"
	"github.com/katalvlaran/exactla/scalar"
	"github.com/katalvlaran/exactla/vector"
	"gonum.org/v1/gonum/mat"
)

// Real is a scalar domain with a float64 view (Int, Fraction, Decimal).
type Real[T any, N scalar.Norm[N]] interface {
	scalar.Element[T, N]
	Float64() float64
}

// Complex is a scalar domain with a complex128 view (GaussianInt, ComplexDecimal).
type Complex[T any, N scalar.Norm[N]] interface {
	scalar.Element[T, N]
	Complex128() complex128
}

// ToDense returns m as a gonum dense matrix of nearest float64 values.
// Like mat.NewDense it panics on the zero-value Matrix, which has no cells.
// Complexity: O(r*c).
func ToDense[T Real[T, N], N scalar.Norm[N]](m matrix.Matrix[T, N]) *mat.Dense {
	r, c := m.Rows(), m.Cols()
	data := make([]float64, 0, r*c)
	for _, row := range m.ToRows() {
		for _, x := range row {
			data = append(data, x.Float64())
		}
	}

	return mat.NewDense(r, c, data)
}

// ToCDense returns m as a gonum complex dense matrix.
func ToCDense[T Complex[T, N], N scalar.Norm[N]](m matrix.Matrix[T, N]) *mat.CDense {
	r, c := m.Rows(), m.Cols()
	data := make([]complex128, 0, r*c)
	for _, row := range m.ToRows() {
		for _, x := range row {
			data = append(data, x.Complex128())
		}
	}

	return mat.NewCDense(r, c, data)
}

// ToVecDense returns v as a gonum column vector.
func ToVecDense[T Real[T, N], N scalar.Norm[N]](v vector.Vector[T, N]) *mat.VecDense {
	entries := v.Entries()
	data := make([]float64, len(entries))
	for k, x := range entries {
		data[k] = x.Float64()
	}

	return mat.NewVecDense(len(data), data)
}

// Det returns gonum's LU-based float64 determinant of m, for comparison with the exact
// Matrix.Determinant.
// Errors: matrix.ErrNonSquare.
func Det[T Real[T, N], N scalar.Norm[N]](m matrix.Matrix[T, N]) (float64, error) {
	if err := matrix.ValidateSquare(m.Rows(), m.Cols()); err != nil {
		return 0, viewErrorf(opDet, err)
	}

	return mat.Det(ToDense(m)), nil
}
