// SPDX-License-Identifier: MIT

package vector

import (
	"strings"

	"github.com/katalvlaran/exactla/scalar"
)

// Vector is an immutable 1-indexed sequence of n >= 1 scalars of type T with norm
// codomain N. Values are obtained from a Builder (or the facades built on it).
type Vector[T scalar.Element[T, N], N scalar.Norm[N]] struct {
	data []T // owned exclusively; len(data) == size, never modified after Build
}

// Size returns the number of entries.
// Complexity: O(1).
func (v Vector[T, N]) Size() int { return len(v.data) }

// At returns the entry at 1-based position i.
// Returns ErrOutOfRange if i < 1 or i > Size().
// Complexity: O(1).
func (v Vector[T, N]) At(i int) (T, error) {
	if err := ValidateIndex(i, len(v.data)); err != nil {
		var zero T
		return zero, vectorErrorf(opAt, err)
	}

	return v.data[i-1], nil
}

// Entries returns a copy of the entries in order.
// Complexity: O(n).
func (v Vector[T, N]) Entries() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)

	return out
}

// Equal reports equal size and structurally equal entries.
func (v Vector[T, N]) Equal(w Vector[T, N]) bool {
	if len(v.data) != len(w.data) {
		return false
	}
	for i := range v.data {
		if !v.data[i].Equal(w.data[i]) {
			return false
		}
	}

	return true
}

// String renders the vector as "[a, b, c]".
func (v Vector[T, N]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range v.data {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(x.String())
	}
	sb.WriteByte(']')

	return sb.String()
}
