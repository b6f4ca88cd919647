// Package exactla is a small engine for exact linear algebra over several scalar
// domains: arbitrary-precision integers, fractions, decimals, Gaussian integers and
// complex decimals.
//
// What is in the box?
//
//	A generic, immutable Vector and Matrix type driven by one scalar contract:
//		• Algebra: add, subtract, scale, negate, multiply, transpose, minors
//		• Structure: triangular, diagonal, identity, symmetric, skew-symmetric
//		• Exact determinants: triangular product, Sarrus, Leibniz (no division)
//		• Norms: taxicab, max, Euclidean and Frobenius (exact squares, rounded roots)
//		• Square roots of big decimals under explicit precision, scale and rounding
//
// Layout:
//
//	scalar/    - the Ring/Norm/Element contract and the five domains
//	vector/    - 1-indexed vectors, Builder, norms and distances
//	matrix/    - 1-indexed matrices, Builder, predicates, determinant, norms
//	bigsqrt/   - Newton square roots for apd decimals and big integers
//	fault/     - the two error categories (illegal argument, illegal state)
//	random/    - seeded generators for scalars and structured matrices
//	gonumview/ - float64 export/import through gonum/mat
//	examples/  - runnable tour with structured logging
//
// Quick example:
//
//	m, _ := matrix.Ints([][]int64{{1, 2}, {3, 4}})
//	det, _ := m.Determinant() // -2
//	m.IsInvertible()          // false: -2 is not a unit of Z
//
//	f, _ := matrix.Fractions([][]string{{"1/2", "1/3"}, {"1/4", "1/5"}})
//	fd, _ := f.Determinant()  // 1/60, exactly
//
// Every aggregate is obtained from a Builder and never changes afterwards, so built
// values are safe to share between goroutines.
//
//	go get github.com/katalvlaran/exactla
package exactla
