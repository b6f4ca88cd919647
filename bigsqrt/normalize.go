// SPDX-License-Identifier: MIT
// Package bigsqrt - scientific-notation normalization.
//
// Newton's iteration behaves best when the radicand is small and the seed is close to the
// root. Instead of dividing by 100 in a loop, the decimal exponent is shifted directly:
// x = c·10^E has floor(log10 x) = digits(c)+E−1, so the number of hundreds to divide out is
// half of that, rounded down. The shift is exact (no division is performed).

package bigsqrt

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// Normalize returns (mantissa, exponent) with x = mantissa · 100^exponent,
// mantissa ∈ [0, 100) and exponent >= 0 (the number of times 100 was divided out).
// x must be non-nil and non-negative. x is not mutated.
// Complexity: O(d) copy of the coefficient.
func Normalize(x *apd.Decimal) (*apd.Decimal, int64, error) {
	if x == nil {
		return nil, 0, fmt.Errorf("Normalize: %w", ErrNilInput)
	}
	if x.Sign() < 0 {
		return nil, 0, fmt.Errorf("Normalize: x=%s: %w", x.String(), ErrNegativeInput)
	}

	m, exp := normalize(x)
	if exp <= 0 {
		// x < 100 already; nothing to divide out.
		return new(apd.Decimal).Set(x), 0, nil
	}

	return m, exp, nil
}

// normalize is the signed variant used by the iteration: for x > 0 the mantissa
// lies in [1, 100) and exp may be negative (x < 1). Zero maps to (0, 0).
func normalize(x *apd.Decimal) (*apd.Decimal, int64) {
	m := new(apd.Decimal).Set(x)
	if x.IsZero() {
		return m, 0
	}

	adjusted := x.NumDigits() + int64(x.Exponent) - 1 // floor(log10 x)
	exp := floorDiv2(adjusted)
	m.Exponent -= int32(2 * exp)

	return m, exp
}

// floorDiv2 returns floor(n / 2) for any sign of n.
func floorDiv2(n int64) int64 {
	if n >= 0 {
		return n / 2
	}

	return -((-n + 1) / 2)
}
