// SPDX-License-Identifier: MIT
// Package matrix: Builder, the two-phase construction path of every Matrix.
//
// Purpose:
//   - Stage cell assignments in a private arena (values + filled mask).
//   - Freeze the arena into an immutable Matrix once every cell is assigned.
//
// Lifecycle:
//
//	NewBuilder(r, c) -> Put / PutRow / PutAll / PutRemaining (any order, overwrite allowed) -> Build
//
// After a successful Build every call returns ErrBuilderConsumed.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/exactla/scalar"
)

// Builder stages the cells of an r×c matrix. It is not safe for concurrent use.
type Builder[T scalar.Element[T, N], N scalar.Norm[N]] struct {
	r, c     int
	data     []T
	filled   []bool
	count    int
	consumed bool
}

// NewBuilder returns an empty builder for a rows×cols matrix.
// Errors: ErrInvalidDimensions if rows <= 0 or cols <= 0.
// Complexity: O(rows*cols).
func NewBuilder[T scalar.Element[T, N], N scalar.Norm[N]](rows, cols int) (*Builder[T, N], error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(opNewBuilder, err)
	}

	return newBuilder[T, N](rows, cols), nil
}

func newBuilder[T scalar.Element[T, N], N scalar.Norm[N]](rows, cols int) *Builder[T, N] {
	return &Builder[T, N]{r: rows, c: cols, data: make([]T, rows*cols), filled: make([]bool, rows*cols)}
}

// Rows returns the declared row count.
func (b *Builder[T, N]) Rows() int { return b.r }

// Cols returns the declared column count.
func (b *Builder[T, N]) Cols() int { return b.c }

// Filled returns the number of cells assigned so far.
func (b *Builder[T, N]) Filled() int { return b.count }

func (b *Builder[T, N]) checkLive(op string) error {
	if b.consumed {
		return matrixErrorf(op, ErrBuilderConsumed)
	}

	return nil
}

func (b *Builder[T, N]) set(k int, v T) {
	if !b.filled[k] {
		b.filled[k] = true
		b.count++
	}
	b.data[k] = v
}

// Put assigns v at 1-based (i, j), overwriting any earlier value.
// Errors: ErrOutOfRange, ErrBuilderConsumed.
func (b *Builder[T, N]) Put(i, j int, v T) error {
	if err := b.checkLive(opPut); err != nil {
		return err
	}
	if err := ValidateCell(i, j, b.r, b.c); err != nil {
		return matrixErrorf(opPut, err)
	}
	b.set((i-1)*b.c+(j-1), v)

	return nil
}

// PutRow assigns the whole row i; len(values) must equal Cols().
// Errors: ErrOutOfRange, ErrDimensionMismatch, ErrBuilderConsumed.
func (b *Builder[T, N]) PutRow(i int, values ...T) error {
	if err := b.checkLive(opPutRow); err != nil {
		return err
	}
	if err := ValidateCell(i, 1, b.r, b.c); err != nil {
		return matrixErrorf(opPutRow, err)
	}
	if err := ValidateVecLen(len(values), b.c); err != nil {
		return matrixErrorf(opPutRow, err)
	}
	base := (i - 1) * b.c
	for j, v := range values {
		b.set(base+j, v)
	}

	return nil
}

// PutAll assigns v to every cell, overwriting earlier values.
// Errors: ErrBuilderConsumed.
func (b *Builder[T, N]) PutAll(v T) error {
	if err := b.checkLive(opPutAll); err != nil {
		return err
	}
	for k := range b.data {
		b.set(k, v)
	}

	return nil
}

// PutRemaining assigns v to every cell not assigned yet.
// Errors: ErrBuilderConsumed.
func (b *Builder[T, N]) PutRemaining(v T) error {
	if err := b.checkLive(opPutRemaining); err != nil {
		return err
	}
	for k, ok := range b.filled {
		if !ok {
			b.set(k, v)
		}
	}

	return nil
}

// Build freezes the staged cells into a Matrix and consumes the builder.
//
// Implementation:
//   - Stage 1: reject a consumed builder.
//   - Stage 2: scan row-major for the first unassigned cell; report it with the fill count.
//   - Stage 3: transfer the arena to the matrix and drop every builder reference to it.
//
// Errors: ErrIncomplete, ErrBuilderConsumed.
// Complexity: O(r*c) worst case for the scan; O(1) when complete.
func (b *Builder[T, N]) Build() (Matrix[T, N], error) {
	if err := b.checkLive(opBuild); err != nil {
		return Matrix[T, N]{}, err
	}
	if b.count != len(b.data) {
		for k, ok := range b.filled {
			if !ok {
				return Matrix[T, N]{}, matrixErrorf(opBuild, fmt.Errorf("cell (%d,%d) of %dx%d unassigned (%d/%d filled): %w",
					k/b.c+1, k%b.c+1, b.r, b.c, b.count, len(b.data), ErrIncomplete))
			}
		}
	}

	m := Matrix[T, N]{r: b.r, c: b.c, data: b.data}
	b.data, b.filled, b.consumed = nil, nil, true

	return m, nil
}

// generate builds a rows×cols matrix whose cell (i, j) is f(i, j), both 1-based.
// Every kernel produces its result this way.
func generate[T scalar.Element[T, N], N scalar.Norm[N]](rows, cols int, f func(i, j int) T) Matrix[T, N] {
	b := newBuilder[T, N](rows, cols)
	for i := 1; i <= rows; i++ {
		for j := 1; j <= cols; j++ {
			b.set((i-1)*cols+(j-1), f(i, j))
		}
	}
	m, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("matrix: generate: %v", err)) // unreachable: every cell set above
	}

	return m
}
