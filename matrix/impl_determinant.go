// SPDX-License-Identifier: MIT
// Package matrix: exact determinant.
//
// Purpose:
//   - Pick the cheapest exact formula for the receiver: triangular product, closed forms
//     for n <= 3, and the Leibniz permutation sum otherwise.
//   - Never divide, so the result is exact in rings (Int, GaussianInt) as well as fields.
//
// AI-Hints:
//   - Leibniz is O(n·n!) with O(n²) inversion counting per permutation; n = 10 already
//     visits 3,628,800 permutations. Keep large inputs triangular where possible.
//   - DeterminantLeibniz is exported so the shortcuts can be checked against it.

package matrix

import "github.com/katalvlaran/exactla/scalar"

// Determinant returns det(m).
//
// Implementation:
//   - Stage 1: ValidateSquare.
//   - Stage 2: triangular -> product of the diagonal.
//   - Stage 3: n == 1 -> m(1,1); n == 2 -> ad − bc.
//   - Stage 4: n == 3 -> rule of Sarrus; decimal-backed domains are then aligned to the
//     scale of m(1,1) with HALF_UP (see scalar.ScaleAligner).
//   - Stage 5: n > 3 -> Leibniz formula.
//
// Errors: ErrNonSquare.
func (m Matrix[T, N]) Determinant() (T, error) {
	if err := ValidateSquare(m.r, m.c); err != nil {
		var zero T
		return zero, matrixErrorf(opDeterminant, err)
	}

	switch {
	case m.IsTriangular():
		return m.diagonalProduct(), nil
	case m.r == 1:
		return m.at(1, 1), nil
	case m.r == 2:
		return m.at(1, 1).Mul(m.at(2, 2)).Sub(m.at(1, 2).Mul(m.at(2, 1))), nil
	case m.r == 3:
		return m.sarrus(), nil
	default:
		return m.leibniz(), nil
	}
}

// DeterminantLeibniz returns det(m) by the Leibniz formula regardless of structure.
// Errors: ErrNonSquare.
// Complexity: O(n·n!) multiplications plus O(n²·n!) comparisons.
func (m Matrix[T, N]) DeterminantLeibniz() (T, error) {
	if err := ValidateSquare(m.r, m.c); err != nil {
		var zero T
		return zero, matrixErrorf(opLeibniz, err)
	}

	return m.leibniz(), nil
}

// diagonalProduct returns ∏ m(k,k).
func (m Matrix[T, N]) diagonalProduct() T {
	var p T
	p = p.One()
	for k := 1; k <= m.r; k++ {
		p = p.Mul(m.at(k, k))
	}

	return p
}

// sarrus applies the rule of Sarrus to a 3×3 matrix: the three forward diagonal triples
// minus the three backward ones.
func (m Matrix[T, N]) sarrus() T {
	a, b, c := m.at(1, 1), m.at(1, 2), m.at(1, 3)
	d, e, f := m.at(2, 1), m.at(2, 2), m.at(2, 3)
	g, h, i := m.at(3, 1), m.at(3, 2), m.at(3, 3)

	det := a.Mul(e).Mul(i).
		Add(b.Mul(f).Mul(g)).
		Add(c.Mul(d).Mul(h)).
		Sub(c.Mul(e).Mul(g)).
		Sub(a.Mul(f).Mul(h)).
		Sub(b.Mul(d).Mul(i))

	if sa, ok := any(det).(scalar.ScaleAligner[T]); ok {
		return sa.AlignScale(a)
	}

	return det
}

// leibniz returns Σ_σ sign(σ) · ∏_i m(σ(i), i), with σ enumerated by Heap's algorithm.
func (m Matrix[T, N]) leibniz() T {
	n := m.r
	perm := make([]int, n) // 0-based σ
	for k := range perm {
		perm[k] = k
	}

	var sum, one T
	sum, one = sum.Zero(), one.One()
	visit := func() {
		term := one
		for col, row := range perm {
			x := m.data[row*n+col]
			if x.IsZero() {
				return
			}
			term = term.Mul(x)
		}
		if inversions(perm)%2 == 1 {
			term = term.Neg()
		}
		sum = sum.Add(term)
	}

	// Iterative Heap's algorithm: one swap between consecutive permutations.
	visit()
	ctr := make([]int, n)
	for k := 1; k < n; {
		if ctr[k] < k {
			if k%2 == 0 {
				perm[0], perm[k] = perm[k], perm[0]
			} else {
				perm[ctr[k]], perm[k] = perm[k], perm[ctr[k]]
			}
			visit()
			ctr[k]++
			k = 1
		} else {
			ctr[k] = 0
			k++
		}
	}

	return sum
}

// inversions counts pairs i < j with perm[i] > perm[j].
func inversions(perm []int) int {
	inv := 0
	for i := 0; i < len(perm); i++ {
		for j := i + 1; j < len(perm); j++ {
			if perm[i] > perm[j] {
				inv++
			}
		}
	}

	return inv
}
