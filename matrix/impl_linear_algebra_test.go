// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the algebraic kernels.
package matrix_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/exactla/fault"
	"github.com/katalvlaran/exactla/matrix"
	"github.com/katalvlaran/exactla/random"
	"github.com/katalvlaran/exactla/scalar"
	"github.com/katalvlaran/exactla/vector"
	"github.com/stretchr/testify/require"
)

func TestTwoByTwoScenario(t *testing.T) {
	t.Parallel()

	m := MustInts(t, [][]int64{{1, 2}, {3, 4}})

	det, err := m.Determinant()
	require.NoError(t, err)
	require.Equal(t, "-2", det.String())

	tr, err := m.Trace()
	require.NoError(t, err)
	require.Equal(t, "5", tr.String())

	require.True(t, m.Transpose().Equal(MustInts(t, [][]int64{{1, 3}, {2, 4}})))
	require.False(t, m.IsTriangular())
	require.False(t, m.IsSymmetric())
	require.False(t, m.IsInvertible(), "det -2 is not a unit of Z")
}

func TestAccessors(t *testing.T) {
	t.Parallel()

	m := MustInts(t, [][]int64{{1, 2, 3}, {4, 5, 6}})
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	x, err := m.At(2, 3)
	require.NoError(t, err)
	require.Equal(t, "6", x.String())

	for _, tc := range []struct{ i, j int }{{0, 1}, {3, 1}, {1, 0}, {1, 4}} {
		_, err = m.At(tc.i, tc.j)
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
		require.ErrorIs(t, err, fault.ErrIllegalArgument)
	}

	row, err := m.Row(2)
	require.NoError(t, err)
	require.Equal(t, "[4, 5, 6]", row.String())
	col, err := m.Col(3)
	require.NoError(t, err)
	require.Equal(t, "[3, 6]", col.String())
	require.Equal(t, "[1, 5]", m.Diagonal().String())

	_, err = m.Row(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestAlgebra(t *testing.T) {
	t.Parallel()

	a := MustInts(t, [][]int64{{1, 2}, {3, 4}})
	b := MustInts(t, [][]int64{{5, 6}, {7, 8}})

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, "[6, 8]\n[10, 12]\n", sum.String())

	diff, err := a.Sub(b)
	require.NoError(t, err)
	require.Equal(t, "[-4, -4]\n[-4, -4]\n", diff.String())

	prod, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, "[19, 22]\n[43, 50]\n", prod.String())

	require.Equal(t, "[3, 6]\n[9, 12]\n", a.Scale(scalar.NewInt(3)).String())
	require.Equal(t, "[-1, -2]\n[-3, -4]\n", a.Neg().String())

	v, _ := vector.Ints(1, -1)
	mv, err := a.MulVec(v)
	require.NoError(t, err)
	require.Equal(t, "[-1, -1]", mv.String())
}

func TestNonSquareProduct(t *testing.T) {
	t.Parallel()

	a := MustInts(t, [][]int64{{1, 2, 3}, {4, 5, 6}}) // 2x3
	b := MustInts(t, [][]int64{{1}, {0}, {-1}})       // 3x1

	p, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, 2, p.Rows())
	require.Equal(t, 1, p.Cols())
	require.Equal(t, "[-2]\n[-2]\n", p.String())

	_, err = b.Mul(b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "expected 1 rows on the right, got 3")

	_, err = a.Add(b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "expected 2x3, got 3x1")

	w, _ := vector.Ints(1, 2)
	_, err = a.MulVec(w)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = a.Trace()
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	require.ErrorIs(t, err, fault.ErrIllegalState)
}

func TestMinor(t *testing.T) {
	t.Parallel()

	m := MustInts(t, [][]int64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	for _, tc := range []struct {
		i, j int
		want string
	}{
		{1, 1, "[5, 6]\n[8, 9]\n"},
		{2, 2, "[1, 3]\n[7, 9]\n"},
		{3, 1, "[2, 3]\n[5, 6]\n"},
		{1, 3, "[4, 5]\n[7, 8]\n"},
	} {
		mi, err := m.Minor(tc.i, tc.j)
		require.NoError(t, err)
		require.Equal(t, tc.want, mi.String(), "Minor(%d,%d)", tc.i, tc.j)
	}

	_, err := m.Minor(4, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	row := MustInts(t, [][]int64{{1, 2, 3}})
	_, err = row.Minor(1, 1)
	require.ErrorIs(t, err, matrix.ErrTooSmall)
}

func TestAlgebraicIdentities(t *testing.T) {
	t.Parallel()

	g := random.New(random.WithSeed(11), random.WithBound(20))
	for _, shape := range []struct{ r, c int }{{1, 1}, {2, 3}, {4, 4}, {5, 2}} {
		t.Run(fmt.Sprintf("%dx%d", shape.r, shape.c), func(t *testing.T) {
			a, err := random.Matrix[scalar.Fraction, scalar.Fraction](shape.r, shape.c, g.Fraction)
			require.NoError(t, err)
			b, err := random.Matrix[scalar.Fraction, scalar.Fraction](shape.r, shape.c, g.Fraction)
			require.NoError(t, err)

			sum, err := a.Add(b)
			require.NoError(t, err)
			back, err := sum.Sub(b)
			require.NoError(t, err)
			require.True(t, back.Equal(a), "A+B-B == A")

			require.True(t, a.Neg().Neg().Equal(a), "-(-A) == A")
			require.True(t, a.Scale(scalar.Fraction{}.One()).Equal(a), "1*A == A")
			require.True(t, a.Transpose().Transpose().Equal(a), "(A^T)^T == A")

			id, err := matrix.NewIdentity[scalar.Fraction, scalar.Fraction](shape.c)
			require.NoError(t, err)
			ai, err := a.Mul(id)
			require.NoError(t, err)
			require.True(t, ai.Equal(a), "A*I == A")
		})
	}
}

func TestDecimalAlgebraKeepsScale(t *testing.T) {
	t.Parallel()

	a := MustDecimals(t, [][]string{{"1.5", "0.25"}, {"2", "-1.0"}})
	b := MustDecimals(t, [][]string{{"0.5", "0.75"}, {"1", "1.0"}})

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, "[2.0, 1.00]\n[3, 0.0]\n", sum.String())

	p, err := a.Mul(b)
	require.NoError(t, err)
	// (1,1): 1.5*0.5 + 0.25*1 = 0.75 + 0.25 = 1.00
	require.Equal(t, "[1.00, 1.375]\n[0.0, 0.50]\n", p.String())
}

func TestConcurrentReads(t *testing.T) {
	t.Parallel()

	g := random.New(random.WithSeed(5), random.WithBound(3))
	m, err := random.Matrix[scalar.Int, scalar.Int](5, 5, g.Int)
	require.NoError(t, err)
	want, err := m.Determinant()
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]scalar.Int, 16)
	for k := range results {
		wg.Add(1)
		go func(k int) {
			defer wg.Done()
			d, _ := m.Determinant()
			_ = m.Transpose()
			_ = m.FrobeniusNormPow2()
			results[k] = d
		}(k)
	}
	wg.Wait()
	for _, d := range results {
		require.True(t, d.Equal(want))
	}
}
