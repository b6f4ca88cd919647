// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/exactla/fault"
	"github.com/katalvlaran/exactla/matrix"
	"github.com/katalvlaran/exactla/scalar"
	"github.com/katalvlaran/exactla/vector"
	"github.com/stretchr/testify/require"
)

func newIntBuilder(t *testing.T, r, c int) *matrix.Builder[scalar.Int, scalar.Int] {
	t.Helper()
	b, err := matrix.NewBuilder[scalar.Int, scalar.Int](r, c)
	require.NoError(t, err)

	return b
}

func TestNewBuilder_InvalidDimensions(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ r, c int }{{0, 1}, {1, 0}, {-1, 3}, {0, 0}} {
		_, err := matrix.NewBuilder[scalar.Int, scalar.Int](tc.r, tc.c)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions, "%dx%d", tc.r, tc.c)
		require.ErrorIs(t, err, fault.ErrIllegalArgument)
	}
}

func TestBuilder_Completeness(t *testing.T) {
	t.Parallel()

	b := newIntBuilder(t, 2, 3)
	require.NoError(t, b.PutRow(1, scalar.NewInt(1), scalar.NewInt(2), scalar.NewInt(3)))
	require.NoError(t, b.Put(2, 1, scalar.NewInt(4)))
	require.NoError(t, b.Put(2, 3, scalar.NewInt(6)))
	require.Equal(t, 5, b.Filled())

	_, err := b.Build()
	require.ErrorIs(t, err, matrix.ErrIncomplete)
	require.ErrorIs(t, err, fault.ErrIllegalState)
	require.Contains(t, err.Error(), "cell (2,2) of 2x3")

	require.NoError(t, b.Put(2, 2, scalar.NewInt(5)))
	m, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, "[1, 2, 3]\n[4, 5, 6]\n", m.String())

	// Shape invariant: every cell in [1,r]x[1,c] is defined.
	for i := 1; i <= m.Rows(); i++ {
		for j := 1; j <= m.Cols(); j++ {
			_, err = m.At(i, j)
			require.NoError(t, err)
		}
	}
}

func TestBuilder_PutAllPutRemaining(t *testing.T) {
	t.Parallel()

	b := newIntBuilder(t, 2, 2)
	require.NoError(t, b.Put(1, 2, scalar.NewInt(9)))
	require.NoError(t, b.PutRemaining(scalar.NewInt(0)))
	m, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, "[0, 9]\n[0, 0]\n", m.String())

	b = newIntBuilder(t, 2, 2)
	require.NoError(t, b.Put(1, 2, scalar.NewInt(9)))
	require.NoError(t, b.PutAll(scalar.NewInt(1)))
	m, err = b.Build()
	require.NoError(t, err)
	require.Equal(t, "[1, 1]\n[1, 1]\n", m.String())
}

func TestBuilder_ArgumentErrors(t *testing.T) {
	t.Parallel()

	b := newIntBuilder(t, 2, 2)
	for _, tc := range []struct{ i, j int }{{0, 1}, {3, 1}, {1, 0}, {1, 3}} {
		err := b.Put(tc.i, tc.j, scalar.NewInt(1))
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "(%d,%d)", tc.i, tc.j)
	}
	err := b.PutRow(1, scalar.NewInt(1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "expected vector size 2, got 1")
	require.ErrorIs(t, b.PutRow(3, scalar.NewInt(1), scalar.NewInt(2)), matrix.ErrOutOfRange)
	require.Zero(t, b.Filled())
}

func TestBuilder_ConsumedAfterBuild(t *testing.T) {
	t.Parallel()

	b := newIntBuilder(t, 1, 1)
	require.NoError(t, b.PutAll(scalar.NewInt(1)))
	m, err := b.Build()
	require.NoError(t, err)

	for name, f := range map[string]func() error{
		"Put":          func() error { return b.Put(1, 1, scalar.NewInt(2)) },
		"PutRow":       func() error { return b.PutRow(1, scalar.NewInt(2)) },
		"PutAll":       func() error { return b.PutAll(scalar.NewInt(2)) },
		"PutRemaining": func() error { return b.PutRemaining(scalar.NewInt(2)) },
		"Build":        func() error { _, err := b.Build(); return err },
	} {
		err := f()
		require.ErrorIs(t, err, matrix.ErrBuilderConsumed, name)
		require.ErrorIs(t, err, fault.ErrIllegalState, name)
	}
	require.Equal(t, "[1]\n", m.String())
}

func TestFacades(t *testing.T) {
	t.Parallel()

	id, err := matrix.NewIdentity[scalar.Fraction, scalar.Fraction](3)
	require.NoError(t, err)
	require.True(t, id.IsIdentity())

	z, err := matrix.NewZeros[scalar.Decimal, scalar.Decimal](2, 3)
	require.NoError(t, err)
	require.Equal(t, "[0, 0, 0]\n[0, 0, 0]\n", z.String())
	require.True(t, z.MaxNorm().IsZero())

	_, err = matrix.NewIdentity[scalar.Int, scalar.Int](0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.Ints([][]int64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "row 2")

	_, err = matrix.Ints(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.Decimals([][]string{{"1", "x"}})
	require.ErrorIs(t, err, scalar.ErrParse)
	require.Contains(t, err.Error(), "cell (1,2)")

	r1, _ := vector.Ints(1, 2)
	r2, _ := vector.Ints(3, 4)
	m, err := matrix.FromVectorRows(r1, r2)
	require.NoError(t, err)
	require.True(t, m.Equal(MustInts(t, [][]int64{{1, 2}, {3, 4}})))

	col, err := matrix.ColumnVector(r1)
	require.NoError(t, err)
	require.Equal(t, "[1]\n[2]\n", col.String())

	rows := m.ToRows()
	rows[0][0] = scalar.NewInt(100)
	x, _ := m.At(1, 1)
	require.Equal(t, "1", x.String(), "ToRows must return a copy")
}
