// SPDX-License-Identifier: MIT

// Package random produces bounded pseudo-random scalars, vectors and matrices for tests,
// benchmarks and demos.
//
// Generators are deterministic for a given seed (WithSeed) and never bypass the
// construction contract: every vector and matrix is assembled through vector.Builder or
// matrix.Builder, so a generated value is indistinguishable from a hand-built one.
//
//	g := random.New(random.WithSeed(7), random.WithBound(9))
//	m, _ := random.Matrix[scalar.Int, scalar.Int](4, 4, g.Int)
//	u, _ := random.UpperTriangular[scalar.Int, scalar.Int](5, g.Int)
//
// A Generator is not safe for concurrent use (it owns a *rand.Rand).
package random
