// SPDX-License-Identifier: MIT
// Package: exactla/random
//
// aggregates.go - vectors and matrices assembled through the public builders.
//
// Every function takes the element source as a plain func() T (typically a Generator
// method value such as g.Int), so the same shapes serve every scalar domain.
// Draw order is row-major and fixed, so a seed fully determines the output.

package random

import (
	"github.com/katalvlaran/exactla/matrix"
	"github.com/katalvlaran/exactla/scalar"
	"github.com/katalvlaran/exactla/vector"
)

// Vector returns a vector of the given size with entries drawn from draw.
// Errors: vector.ErrInvalidDimensions.
func Vector[T scalar.Element[T, N], N scalar.Norm[N]](size int, draw func() T) (vector.Vector[T, N], error) {
	b, err := vector.NewBuilder[T, N](size)
	if err != nil {
		return vector.Vector[T, N]{}, err
	}
	for k := 0; k < size; k++ {
		if err = b.PutNext(draw()); err != nil {
			return vector.Vector[T, N]{}, err
		}
	}

	return b.Build()
}

// Matrix returns a rows×cols matrix with entries drawn from draw.
// Errors: matrix.ErrInvalidDimensions.
func Matrix[T scalar.Element[T, N], N scalar.Norm[N]](rows, cols int, draw func() T) (matrix.Matrix[T, N], error) {
	return fill[T, N](rows, cols, func(_, _ int) (T, bool) { return draw(), true })
}

// UpperTriangular returns an n×n matrix that is zero strictly below the diagonal.
func UpperTriangular[T scalar.Element[T, N], N scalar.Norm[N]](n int, draw func() T) (matrix.Matrix[T, N], error) {
	return fill[T, N](n, n, func(i, j int) (T, bool) {
		if i > j {
			var zero T
			return zero, false
		}
		return draw(), true
	})
}

// LowerTriangular returns an n×n matrix that is zero strictly above the diagonal.
func LowerTriangular[T scalar.Element[T, N], N scalar.Norm[N]](n int, draw func() T) (matrix.Matrix[T, N], error) {
	return fill[T, N](n, n, func(i, j int) (T, bool) {
		if i < j {
			var zero T
			return zero, false
		}
		return draw(), true
	})
}

// Symmetric returns an n×n matrix built with Put(i,j,v) and Put(j,i,v) for every pair.
func Symmetric[T scalar.Element[T, N], N scalar.Norm[N]](n int, draw func() T) (matrix.Matrix[T, N], error) {
	return mirrored[T, N](n, draw, func(v T) T { return v }, false)
}

// SkewSymmetric returns an n×n matrix built with Put(i,j,v) and Put(j,i,−v) for every
// pair i < j and a zero diagonal.
func SkewSymmetric[T scalar.Element[T, N], N scalar.Norm[N]](n int, draw func() T) (matrix.Matrix[T, N], error) {
	return mirrored[T, N](n, draw, func(v T) T { return v.Neg() }, true)
}

// fill drives a matrix.Builder: cell (i, j) receives f's value when f reports true; the
// remaining cells are completed with zero by PutRemaining.
func fill[T scalar.Element[T, N], N scalar.Norm[N]](rows, cols int, f func(i, j int) (T, bool)) (matrix.Matrix[T, N], error) {
	b, err := matrix.NewBuilder[T, N](rows, cols)
	if err != nil {
		return matrix.Matrix[T, N]{}, err
	}
	for i := 1; i <= rows; i++ {
		for j := 1; j <= cols; j++ {
			if v, ok := f(i, j); ok {
				if err = b.Put(i, j, v); err != nil {
					return matrix.Matrix[T, N]{}, err
				}
			}
		}
	}
	var zero T
	if err = b.PutRemaining(zero.Zero()); err != nil {
		return matrix.Matrix[T, N]{}, err
	}

	return b.Build()
}

// mirrored fills the upper triangle from draw and the lower one through mirror.
func mirrored[T scalar.Element[T, N], N scalar.Norm[N]](n int, draw func() T, mirror func(T) T, zeroDiagonal bool) (matrix.Matrix[T, N], error) {
	b, err := matrix.NewBuilder[T, N](n, n)
	if err != nil {
		return matrix.Matrix[T, N]{}, err
	}
	var zero T
	for i := 1; i <= n; i++ {
		for j := i; j <= n; j++ {
			if i == j {
				v := draw()
				if zeroDiagonal {
					v = zero.Zero()
				}
				if err = b.Put(i, i, v); err != nil {
					return matrix.Matrix[T, N]{}, err
				}
				continue
			}
			v := draw()
			if err = b.Put(i, j, v); err != nil {
				return matrix.Matrix[T, N]{}, err
			}
			if err = b.Put(j, i, mirror(v)); err != nil {
				return matrix.Matrix[T, N]{}, err
			}
		}
	}

	return b.Build()
}
