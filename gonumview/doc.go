// SPDX-License-Identifier: MIT

// Package gonumview bridges exact matrices and vectors to gonum's float64 types.
//
// Export is lossy by nature: every entry goes through its Float64 (or Complex128) view,
// so large integers and long fractions are rounded to the nearest float64. Import goes the
// other way and rounds each float to a chosen decimal scale (FromDense) or to the nearest
// integer (FromDenseRounded).
//
//	m, _ := matrix.Fractions([][]string{{"1/2", "1/3"}, {"1/4", "1/5"}})
//	a := gonumview.ToDense(m)   // *mat.Dense for gonum's solvers
//	approx := mat.Det(a)        // ≈ 0.016666...
//	exact, _ := m.Determinant() // 1/60
//
// The package never mutates its inputs and returns freshly allocated gonum values.
package gonumview
