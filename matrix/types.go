// SPDX-License-Identifier: MIT

// Package matrix: the Matrix value type and its read-only accessors.
// Storage is a flat row-major slice: entry (i, j) lives at data[(i-1)*c + (j-1)].
package matrix

import (
	"strings"

	"github.com/katalvlaran/exactla/scalar"
	"github.com/katalvlaran/exactla/vector"
)

// Matrix is an immutable r×c matrix of scalars of type T with norm codomain N.
//
// Complexity notes: accessors are O(1) except Row/Col/Diagonal/ToRows (O(r), O(c) or
// O(r*c) copies) and String (O(r*c)).
type Matrix[T scalar.Element[T, N], N scalar.Norm[N]] struct {
	r, c int // number of rows and columns
	data []T // flat backing storage, len(data) == r*c, never modified after Build
}

// Rows returns the number of rows.
func (m Matrix[T, N]) Rows() int { return m.r }

// Cols returns the number of columns.
func (m Matrix[T, N]) Cols() int { return m.c }

// at reads the 1-based cell (i, j) without bounds checks.
func (m Matrix[T, N]) at(i, j int) T { return m.data[(i-1)*m.c+(j-1)] }

// At returns the entry at 1-based (i, j).
// Returns ErrOutOfRange if either index is outside its range.
func (m Matrix[T, N]) At(i, j int) (T, error) {
	if err := ValidateCell(i, j, m.r, m.c); err != nil {
		var zero T
		return zero, matrixErrorf(opAt, err)
	}

	return m.at(i, j), nil
}

// Row returns row i as a vector.
// Errors: ErrOutOfRange.
func (m Matrix[T, N]) Row(i int) (vector.Vector[T, N], error) {
	if err := ValidateCell(i, 1, m.r, m.c); err != nil {
		return vector.Vector[T, N]{}, matrixErrorf(opRow, err)
	}

	return vector.FromEntries[T, N](m.data[(i-1)*m.c : i*m.c])
}

// Col returns column j as a vector.
// Errors: ErrOutOfRange.
func (m Matrix[T, N]) Col(j int) (vector.Vector[T, N], error) {
	if err := ValidateCell(1, j, m.r, m.c); err != nil {
		return vector.Vector[T, N]{}, matrixErrorf(opCol, err)
	}
	col := make([]T, m.r)
	for i := 1; i <= m.r; i++ {
		col[i-1] = m.at(i, j)
	}

	return vector.FromEntries[T, N](col)
}

// Diagonal returns the entries (k, k) for k = 1..min(r, c).
func (m Matrix[T, N]) Diagonal() vector.Vector[T, N] {
	n := min(m.r, m.c)
	diag := make([]T, n)
	for k := 1; k <= n; k++ {
		diag[k-1] = m.at(k, k)
	}
	v, _ := vector.FromEntries[T, N](diag) // only the zero Matrix has n == 0; it yields the empty vector

	return v
}

// ToRows returns a copy of the entries as a slice of rows.
func (m Matrix[T, N]) ToRows() [][]T {
	out := make([][]T, m.r)
	for i := range out {
		out[i] = make([]T, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Equal reports equal shape and structurally equal entries.
func (m Matrix[T, N]) Equal(o Matrix[T, N]) bool {
	if m.r != o.r || m.c != o.c {
		return false
	}
	for k := range m.data {
		if !m.data[k].Equal(o.data[k]) {
			return false
		}
	}

	return true
}

// String renders one "[a, b, c]" line per row, each terminated by a newline.
func (m Matrix[T, N]) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(m.data[i*m.c+j].String())
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
