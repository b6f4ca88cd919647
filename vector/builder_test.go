// SPDX-License-Identifier: MIT
package vector_test

import (
	"testing"

	"github.com/katalvlaran/exactla/fault"
	"github.com/katalvlaran/exactla/scalar"
	"github.com/katalvlaran/exactla/vector"
	"github.com/stretchr/testify/require"
)

type intBuilder = vector.Builder[scalar.Int, scalar.Int]

func newIntBuilder(t *testing.T, n int) *intBuilder {
	t.Helper()
	b, err := vector.NewBuilder[scalar.Int, scalar.Int](n)
	require.NoError(t, err)

	return b
}

func TestNewBuilder_InvalidSize(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, -3} {
		_, err := vector.NewBuilder[scalar.Int, scalar.Int](n)
		require.ErrorIs(t, err, vector.ErrInvalidDimensions)
		require.ErrorIs(t, err, fault.ErrIllegalArgument)
	}
}

func TestBuilder_PutNextFillsInOrder(t *testing.T) {
	t.Parallel()

	b := newIntBuilder(t, 3)
	require.NoError(t, b.Put(2, scalar.NewInt(20)))
	require.NoError(t, b.PutNext(scalar.NewInt(10)))
	require.NoError(t, b.PutNext(scalar.NewInt(30)))
	require.Equal(t, 3, b.Filled())

	err := b.PutNext(scalar.NewInt(40))
	require.ErrorIs(t, err, vector.ErrBuilderFull)
	require.ErrorIs(t, err, fault.ErrIllegalState)

	v, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, "[10, 20, 30]", v.String())
}

func TestBuilder_IncompleteBuild(t *testing.T) {
	t.Parallel()

	b := newIntBuilder(t, 4)
	require.NoError(t, b.Put(1, scalar.NewInt(1)))
	require.NoError(t, b.Put(2, scalar.NewInt(2)))
	require.NoError(t, b.Put(4, scalar.NewInt(4)))

	_, err := b.Build()
	require.ErrorIs(t, err, vector.ErrIncomplete)
	require.ErrorIs(t, err, fault.ErrIllegalState)
	require.Contains(t, err.Error(), "position 3 of 4")

	// A failed Build leaves the builder usable.
	require.NoError(t, b.Put(3, scalar.NewInt(3)))
	v, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, "[1, 2, 3, 4]", v.String())
}

func TestBuilder_PutAllAndPutRemaining(t *testing.T) {
	t.Parallel()

	b := newIntBuilder(t, 3)
	require.NoError(t, b.Put(2, scalar.NewInt(7)))
	require.NoError(t, b.PutRemaining(scalar.NewInt(0)))
	v, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, "[0, 7, 0]", v.String())

	b = newIntBuilder(t, 3)
	require.NoError(t, b.Put(2, scalar.NewInt(7)))
	require.NoError(t, b.PutAll(scalar.NewInt(1)))
	v, err = b.Build()
	require.NoError(t, err)
	require.Equal(t, "[1, 1, 1]", v.String())
}

func TestBuilder_OverwriteAndRange(t *testing.T) {
	t.Parallel()

	b := newIntBuilder(t, 1)
	require.NoError(t, b.Put(1, scalar.NewInt(5)))
	require.NoError(t, b.Put(1, scalar.NewInt(6)))
	require.Equal(t, 1, b.Filled())

	for _, i := range []int{0, 2} {
		err := b.Put(i, scalar.NewInt(0))
		require.ErrorIs(t, err, vector.ErrOutOfRange, "Put(%d)", i)
	}

	v, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, "[6]", v.String())
}

func TestBuilder_ConsumedAfterBuild(t *testing.T) {
	t.Parallel()

	b := newIntBuilder(t, 1)
	require.NoError(t, b.PutNext(scalar.NewInt(1)))
	v, err := b.Build()
	require.NoError(t, err)

	calls := map[string]func() error{
		"Put":          func() error { return b.Put(1, scalar.NewInt(2)) },
		"PutNext":      func() error { return b.PutNext(scalar.NewInt(2)) },
		"PutAll":       func() error { return b.PutAll(scalar.NewInt(2)) },
		"PutRemaining": func() error { return b.PutRemaining(scalar.NewInt(2)) },
		"Build":        func() error { _, err := b.Build(); return err },
	}
	for name, f := range calls {
		err := f()
		require.ErrorIs(t, err, vector.ErrBuilderConsumed, name)
		require.ErrorIs(t, err, fault.ErrIllegalState, name)
	}
	require.Equal(t, "[1]", v.String(), "built vector is unaffected by later builder calls")
}

func TestZeros(t *testing.T) {
	t.Parallel()

	z, err := vector.Zeros[scalar.Fraction, scalar.Fraction](3)
	require.NoError(t, err)
	require.Equal(t, "[0, 0, 0]", z.String())
	require.True(t, z.TaxicabNorm().IsZero())

	_, err = vector.Zeros[scalar.Fraction, scalar.Fraction](0)
	require.ErrorIs(t, err, vector.ErrInvalidDimensions)
}
