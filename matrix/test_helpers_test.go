// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the kernels.
//   • Fail fast (t.Fatal via require) on fixture construction errors.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/exactla/matrix"
	"github.com/katalvlaran/exactla/scalar"
	"github.com/stretchr/testify/require"
)

// MustInts builds an IntMatrix from literal rows or fails the test.
func MustInts(t testing.TB, rows [][]int64) matrix.IntMatrix {
	t.Helper()
	m, err := matrix.Ints(rows)
	require.NoError(t, err)

	return m
}

// MustDecimals builds a DecimalMatrix from literal rows or fails the test.
func MustDecimals(t testing.TB, rows [][]string) matrix.DecimalMatrix {
	t.Helper()
	m, err := matrix.Decimals(rows)
	require.NoError(t, err)

	return m
}

// MustFractions builds a FractionMatrix from literal rows or fails the test.
func MustFractions(t testing.TB, rows [][]string) matrix.FractionMatrix {
	t.Helper()
	m, err := matrix.Fractions(rows)
	require.NoError(t, err)

	return m
}

// mustDec parses a decimal literal or fails the test.
func mustDec(t testing.TB, s string) scalar.Decimal {
	t.Helper()
	d, err := scalar.ParseDecimal(s)
	require.NoError(t, err)

	return d
}

// requireClose asserts |got − want| <= tol.
func requireClose(t testing.TB, got scalar.Decimal, want, tol string) {
	t.Helper()
	diff := got.Sub(mustDec(t, want)).Abs()
	require.LessOrEqual(t, diff.Cmp(mustDec(t, tol)), 0, "got %s, want %s ± %s", got, want, tol)
}
