// SPDX-License-Identifier: MIT
// Package matrix: algebraic kernels.
//
// Purpose:
//   - Elementwise Add/Sub, scaling and negation, the matrix product, the matrix-vector
//     product, transpose, minors and the trace.
//   - Define operation tags shared by every error wrapper in the package.
//
// Notes:
//   - Every binary kernel validates shapes before reading any entry.
//   - Results are produced through generate (a fresh Builder); operands are never mutated.
//   - Loop order is fixed (i then j, k innermost) so results are reproducible.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/exactla/vector"
)

// Operation name constants for unified error wrapping.
const (
	opAt            = "At"
	opRow           = "Row"
	opCol           = "Col"
	opAdd           = "Add"
	opSub           = "Sub"
	opMul           = "Mul"
	opMulVec        = "MulVec"
	opMinor         = "Minor"
	opTrace         = "Trace"
	opDeterminant   = "Determinant"
	opLeibniz       = "DeterminantLeibniz"
	opFrobenius     = "FrobeniusNorm"
	opNewBuilder    = "NewBuilder"
	opPut           = "Put"
	opPutRow        = "PutRow"
	opPutAll        = "PutAll"
	opPutRemaining  = "PutRemaining"
	opBuild         = "Build"
	opFromRows      = "FromRows"
	opFromVecRows   = "FromVectorRows"
	opNewIdentity   = "NewIdentity"
	opNewZeros      = "NewZeros"
	opColumnVector  = "ColumnVector"
	opParse         = "Parse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The result formats as "<tag>: <underlying>" and still matches errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add returns m + o.
// Errors: ErrDimensionMismatch.
// Complexity: O(r*c).
func (m Matrix[T, N]) Add(o Matrix[T, N]) (Matrix[T, N], error) {
	if err := ValidateSameShape(m.r, m.c, o.r, o.c); err != nil {
		return Matrix[T, N]{}, matrixErrorf(opAdd, err)
	}

	return generate[T, N](m.r, m.c, func(i, j int) T { return m.at(i, j).Add(o.at(i, j)) }), nil
}

// Sub returns m − o.
// Errors: ErrDimensionMismatch.
// Complexity: O(r*c).
func (m Matrix[T, N]) Sub(o Matrix[T, N]) (Matrix[T, N], error) {
	if err := ValidateSameShape(m.r, m.c, o.r, o.c); err != nil {
		return Matrix[T, N]{}, matrixErrorf(opSub, err)
	}

	return generate[T, N](m.r, m.c, func(i, j int) T { return m.at(i, j).Sub(o.at(i, j)) }), nil
}

// Scale returns alpha·m.
func (m Matrix[T, N]) Scale(alpha T) Matrix[T, N] {
	return generate[T, N](m.r, m.c, func(i, j int) T { return alpha.Mul(m.at(i, j)) })
}

// Neg returns −m.
func (m Matrix[T, N]) Neg() Matrix[T, N] {
	return generate[T, N](m.r, m.c, func(i, j int) T { return m.at(i, j).Neg() })
}

// multiplyRowWithColumn returns Σ_k m(i,k)·o(k,j).
func (m Matrix[T, N]) multiplyRowWithColumn(o Matrix[T, N], i, j int) T {
	var acc T
	acc = acc.Zero()
	for k := 1; k <= m.c; k++ {
		acc = acc.Add(m.at(i, k).Mul(o.at(k, j)))
	}

	return acc
}

// Mul returns the matrix product m·o (r×o.c).
//
// Implementation:
//   - Stage 1: ValidateMulShape(m.Cols(), o.Rows()).
//   - Stage 2: each output cell is multiplyRowWithColumn(i, j).
//
// Errors: ErrDimensionMismatch.
// Complexity: O(r * c * o.c) scalar multiplications.
func (m Matrix[T, N]) Mul(o Matrix[T, N]) (Matrix[T, N], error) {
	if err := ValidateMulShape(m.c, o.r); err != nil {
		return Matrix[T, N]{}, matrixErrorf(opMul, err)
	}

	return generate[T, N](m.r, o.c, func(i, j int) T { return m.multiplyRowWithColumn(o, i, j) }), nil
}

// MulVec returns m·v, whose i-th entry is row i dotted with v.
// Errors: ErrDimensionMismatch if v.Size() != Cols().
// Complexity: O(r*c).
func (m Matrix[T, N]) MulVec(v vector.Vector[T, N]) (vector.Vector[T, N], error) {
	if err := ValidateVecLen(v.Size(), m.c); err != nil {
		return vector.Vector[T, N]{}, matrixErrorf(opMulVec, err)
	}
	x := v.Entries()
	out := make([]T, m.r)
	for i := 1; i <= m.r; i++ {
		var acc T
		acc = acc.Zero()
		for j := 1; j <= m.c; j++ {
			acc = acc.Add(m.at(i, j).Mul(x[j-1]))
		}
		out[i-1] = acc
	}

	return vector.FromEntries[T, N](out)
}

// Transpose returns mᵀ (c×r).
func (m Matrix[T, N]) Transpose() Matrix[T, N] {
	return generate[T, N](m.c, m.r, func(i, j int) T { return m.at(j, i) })
}

// Minor returns the (r−1)×(c−1) submatrix without row i and column j; the remaining
// rows and columns are renumbered contiguously.
// Errors: ErrOutOfRange, ErrTooSmall.
func (m Matrix[T, N]) Minor(i, j int) (Matrix[T, N], error) {
	if err := ValidateCell(i, j, m.r, m.c); err != nil {
		return Matrix[T, N]{}, matrixErrorf(opMinor, err)
	}
	if m.r < 2 || m.c < 2 {
		return Matrix[T, N]{}, matrixErrorf(opMinor, fmt.Errorf("got %dx%d: %w", m.r, m.c, ErrTooSmall))
	}

	return m.minor(i, j), nil
}

// minor is Minor without checks.
func (m Matrix[T, N]) minor(i, j int) Matrix[T, N] {
	return generate[T, N](m.r-1, m.c-1, func(p, q int) T {
		if p >= i {
			p++
		}
		if q >= j {
			q++
		}

		return m.at(p, q)
	})
}

// Trace returns Σ m(k,k).
// Errors: ErrNonSquare.
func (m Matrix[T, N]) Trace() (T, error) {
	var acc T
	if err := ValidateSquare(m.r, m.c); err != nil {
		return acc, matrixErrorf(opTrace, err)
	}
	acc = acc.Zero()
	for k := 1; k <= m.r; k++ {
		acc = acc.Add(m.at(k, k))
	}

	return acc, nil
}
