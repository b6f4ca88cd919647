// SPDX-License-Identifier: MIT
// Package bigsqrt - rounding modes and the scale-fixing step shared with scalar.Decimal.

package bigsqrt

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// RoundingMode selects how a value is fixed to a decimal scale.
// The eight modes mirror the classic half-adjustment set.
type RoundingMode uint8

const (
	// RoundUp rounds away from zero.
	RoundUp RoundingMode = iota
	// RoundDown truncates toward zero.
	RoundDown
	// RoundCeiling rounds toward +Inf.
	RoundCeiling
	// RoundFloor rounds toward -Inf.
	RoundFloor
	// RoundHalfUp rounds to nearest, ties away from zero.
	RoundHalfUp
	// RoundHalfDown rounds to nearest, ties toward zero.
	RoundHalfDown
	// RoundHalfEven rounds to nearest, ties to the even neighbour.
	RoundHalfEven
	// RoundUnnecessary asserts the value already fits the scale; it fails otherwise.
	RoundUnnecessary
)

var roundingNames = [...]string{
	RoundUp:          "UP",
	RoundDown:        "DOWN",
	RoundCeiling:     "CEILING",
	RoundFloor:       "FLOOR",
	RoundHalfUp:      "HALF_UP",
	RoundHalfDown:    "HALF_DOWN",
	RoundHalfEven:    "HALF_EVEN",
	RoundUnnecessary: "UNNECESSARY",
}

// Valid reports whether m is one of the eight enumerated modes.
func (m RoundingMode) Valid() bool { return m <= RoundUnnecessary }

// String returns the conventional upper-case name of the mode.
func (m RoundingMode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("RoundingMode(%d)", uint8(m))
	}

	return roundingNames[m]
}

// rounder maps a mode onto the apd rounder. RoundUnnecessary truncates and is
// checked for exactness by the caller.
func (m RoundingMode) rounder() apd.Rounder {
	switch m {
	case RoundUp:
		return apd.RoundUp
	case RoundCeiling:
		return apd.RoundCeiling
	case RoundFloor:
		return apd.RoundFloor
	case RoundHalfUp:
		return apd.RoundHalfUp
	case RoundHalfDown:
		return apd.RoundHalfDown
	case RoundHalfEven:
		return apd.RoundHalfEven
	default:
		return apd.RoundDown
	}
}

// Quantize returns x fixed to scale fractional digits under mode.
//
// Implementation:
//   - Stage 1: validate x, scale and mode (ErrNilInput / ErrInvalidScale / ErrInvalidRoundingMode).
//   - Stage 2: size a context so the quantized coefficient always fits (no InvalidOperation).
//   - Stage 3: quantize to exponent -scale; RoundUnnecessary additionally demands equality.
//
// x is never mutated; the result is a fresh value.
// Complexity: O(d) in the number of digits of x.
func Quantize(x *apd.Decimal, scale int32, mode RoundingMode) (*apd.Decimal, error) {
	if x == nil {
		return nil, fmt.Errorf("Quantize: %w", ErrNilInput)
	}
	if scale < 0 {
		return nil, fmt.Errorf("Quantize: scale=%d: %w", scale, ErrInvalidScale)
	}
	if !mode.Valid() {
		return nil, fmt.Errorf("Quantize: mode=%d: %w", uint8(mode), ErrInvalidRoundingMode)
	}

	// integer digits of |x| bound the coefficient size together with the scale;
	// one extra digit absorbs a carry from rounding up.
	intDigits := x.NumDigits() + int64(x.Exponent)
	if intDigits < 0 {
		intDigits = 0
	}
	ctx := apd.Context{
		Precision:   uint32(intDigits + int64(scale) + 2),
		MaxExponent: apd.MaxExponent,
		MinExponent: apd.MinExponent,
		Traps:       apd.DefaultTraps,
		Rounding:    mode.rounder(),
	}

	d := new(apd.Decimal)
	if _, err := ctx.Quantize(d, x, -scale); err != nil {
		return nil, fmt.Errorf("Quantize: %w", err)
	}
	if mode == RoundUnnecessary && d.Cmp(x) != 0 {
		return nil, fmt.Errorf("Quantize: %s at scale %d: %w", x.String(), scale, ErrRoundingNecessary)
	}

	return d, nil
}
