// SPDX-License-Identifier: MIT

// Package matrix provides immutable, 1-indexed dense matrices generic over the scalar
// domains of package scalar, with exact algebra, structural predicates, norms and an
// exact determinant.
//
// A Matrix[T, N] stores r×c entries row-major in a flat slice. It is obtained only from
// a Builder (or a facade built on it), and every operation returns a fresh matrix:
//
//	m, _ := matrix.Ints([][]int64{{1, 2}, {3, 4}})
//	det, _ := m.Determinant() // -2
//	tr, _ := m.Trace()        // 5
//	m.Transpose()             // [1, 3] / [2, 4]
//
// Determinant strategy (exact in every domain, no floating-point elimination):
//
//	triangular          product of the diagonal               O(n)
//	n == 1, n == 2      closed form                           O(1)
//	n == 3              rule of Sarrus                        O(1)
//	n > 3               Leibniz formula over all permutations O(n·n!)
//
// For decimal-backed domains (scalar.ScaleAligner) the Sarrus result is reported at the
// scale of entry (1,1) with HALF_UP rounding.
//
// Errors are sentinels declared in errors.go; each matches either fault.ErrIllegalArgument
// (bad index, shape mismatch, size <= 0) or fault.ErrIllegalState (non-square receiver,
// incomplete or consumed builder).
//
// Built matrices are safe for concurrent reads. Builders are not.
package matrix
