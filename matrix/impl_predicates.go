// SPDX-License-Identifier: MIT
// Package matrix: structural predicates.
//
// All predicates are read-only and derived from the current entries. Zero and one tests
// are numeric (IsZero/IsOne), so a decimal 0.00 counts as zero; symmetry compares
// entries structurally with Equal. A non-square matrix is never triangular, diagonal,
// identity, symmetric, skew-symmetric or invertible.

package matrix

// IsSquare reports Rows() == Cols().
func (m Matrix[T, N]) IsSquare() bool { return m.r == m.c }

// IsUpperTriangular reports that every entry strictly below the diagonal is zero.
func (m Matrix[T, N]) IsUpperTriangular() bool {
	if !m.IsSquare() {
		return false
	}
	for i := 2; i <= m.r; i++ {
		for j := 1; j < i; j++ {
			if !m.at(i, j).IsZero() {
				return false
			}
		}
	}

	return true
}

// IsLowerTriangular reports that every entry strictly above the diagonal is zero.
func (m Matrix[T, N]) IsLowerTriangular() bool {
	if !m.IsSquare() {
		return false
	}
	for i := 1; i < m.r; i++ {
		for j := i + 1; j <= m.c; j++ {
			if !m.at(i, j).IsZero() {
				return false
			}
		}
	}

	return true
}

// IsTriangular reports upper or lower triangularity.
func (m Matrix[T, N]) IsTriangular() bool { return m.IsUpperTriangular() || m.IsLowerTriangular() }

// IsDiagonal reports upper and lower triangularity.
func (m Matrix[T, N]) IsDiagonal() bool { return m.IsUpperTriangular() && m.IsLowerTriangular() }

// IsIdentity reports a diagonal matrix whose diagonal entries are all one.
func (m Matrix[T, N]) IsIdentity() bool {
	if !m.IsDiagonal() {
		return false
	}
	for k := 1; k <= m.r; k++ {
		if !m.at(k, k).IsOne() {
			return false
		}
	}

	return true
}

// IsSymmetric reports m == mᵀ.
func (m Matrix[T, N]) IsSymmetric() bool {
	if !m.IsSquare() {
		return false
	}
	for i := 1; i <= m.r; i++ {
		for j := i + 1; j <= m.c; j++ {
			if !m.at(i, j).Equal(m.at(j, i)) {
				return false
			}
		}
	}

	return true
}

// IsSkewSymmetric reports m == −mᵀ (which forces a zero diagonal).
func (m Matrix[T, N]) IsSkewSymmetric() bool {
	if !m.IsSquare() {
		return false
	}
	for i := 1; i <= m.r; i++ {
		for j := i; j <= m.c; j++ {
			if !m.at(i, j).Equal(m.at(j, i).Neg()) {
				return false
			}
		}
	}

	return true
}

// IsInvertible reports whether the determinant is a unit of the scalar domain:
// ±1 for Int, ±1 and ±i for GaussianInt, any nonzero value for Fraction, Decimal and
// ComplexDecimal.
// Complexity: that of Determinant.
func (m Matrix[T, N]) IsInvertible() bool {
	det, err := m.Determinant()
	if err != nil {
		return false
	}

	return det.IsUnit()
}
