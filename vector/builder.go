// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/katalvlaran/exactla/scalar"
)

// Builder stages the entries of a vector of fixed size. It is the only way to obtain a
// Vector: Build succeeds only once every position has been assigned, and afterwards the
// builder rejects every call with ErrBuilderConsumed.
//
// A Builder is not safe for concurrent use.
type Builder[T scalar.Element[T, N], N scalar.Norm[N]] struct {
	data     []T
	filled   []bool
	count    int  // number of assigned positions
	cursor   int  // 0-based lower bound of the next unfilled position for PutNext
	consumed bool // set by a successful Build
}

// NewBuilder returns an empty builder for a vector of the given size.
// Errors: ErrInvalidDimensions if size <= 0.
// Complexity: O(size).
func NewBuilder[T scalar.Element[T, N], N scalar.Norm[N]](size int) (*Builder[T, N], error) {
	if err := ValidateSize(size); err != nil {
		return nil, vectorErrorf(opNewBuilder, err)
	}

	return &Builder[T, N]{data: make([]T, size), filled: make([]bool, size)}, nil
}

// Size returns the declared size.
func (b *Builder[T, N]) Size() int { return len(b.data) }

// Filled returns the number of positions assigned so far.
func (b *Builder[T, N]) Filled() int { return b.count }

func (b *Builder[T, N]) checkLive(op string) error {
	if b.consumed {
		return vectorErrorf(op, ErrBuilderConsumed)
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

// Put assigns v at 1-based position i, overwriting any earlier value.
// Errors: ErrOutOfRange, ErrBuilderConsumed.
func (b *Builder[T, N]) Put(i int, v T) error {
	if err := b.checkLive(opPut); err != nil {
		return err
	}
	if err := ValidateIndex(i, len(b.data)); err != nil {
		return vectorErrorf(opPut, err)
	}
	b.set(i-1, v)

	return nil
}

// PutNext assigns v at the lowest unassigned position.
// Errors: ErrBuilderFull, ErrBuilderConsumed.
// Complexity: amortized O(1) over a sequence of PutNext calls.
func (b *Builder[T, N]) PutNext(v T) error {
	if err := b.checkLive(opPutNext); err != nil {
		return err
	}
	for b.cursor < len(b.data) && b.filled[b.cursor] {
		b.cursor++
	}
	if b.cursor == len(b.data) {
		return vectorErrorf(opPutNext, fmt.Errorf("size %d: %w", len(b.data), ErrBuilderFull))
	}
	b.set(b.cursor, v)

	return nil
}

// PutAll assigns v to every position, overwriting earlier values.
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

// PutRemaining assigns v to every position not assigned yet.
// Errors: ErrBuilderConsumed.
func (b *Builder[T, N]) PutRemaining(v T) error {
	if err := b.checkLive(opPutRemaining); err != nil {
		return err
	}
	for k := range b.data {
		if !b.filled[k] {
			b.set(k, v)
		}
	}

	return nil
}

// Build returns the vector and consumes the builder.
//
// Implementation:
//   - Stage 1: reject consumed builders.
//   - Stage 2: report the first unassigned position if coverage is incomplete.
//   - Stage 3: hand the staged slice to the vector and drop the builder's references.
//
// Errors: ErrIncomplete, ErrBuilderConsumed.
// Complexity: O(size) for the coverage scan.
func (b *Builder[T, N]) Build() (Vector[T, N], error) {
	if err := b.checkLive(opBuild); err != nil {
		return Vector[T, N]{}, err
	}
	if b.count != len(b.data) {
		for k, ok := range b.filled {
			if !ok {
				return Vector[T, N]{}, vectorErrorf(opBuild,
					fmt.Errorf("position %d of %d unassigned (%d/%d filled): %w", k+1, len(b.data), b.count, len(b.data), ErrIncomplete))
			}
		}
	}

	v := Vector[T, N]{data: b.data}
	b.data, b.filled, b.consumed = nil, nil, true

	return v, nil
}

// generate builds a vector of size n whose k-th (0-based) entry is f(k).
// n must be positive; every vector operation produces its result this way.
func generate[T scalar.Element[T, N], N scalar.Norm[N]](n int, f func(k int) T) Vector[T, N] {
	b := &Builder[T, N]{data: make([]T, n), filled: make([]bool, n)}
	for k := 0; k < n; k++ {
		b.set(k, f(k))
	}
	v, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("vector: generate: %v", err)) // unreachable: every position set above
	}

	return v
}
