// SPDX-License-Identifier: MIT
// Package bigsqrt: sentinel error set.
// Every sentinel chains to a fault category; match with errors.Is.

package bigsqrt

import "github.com/katalvlaran/exactla/fault"

var (
	// ErrNilInput is returned when a nil *big.Int or *apd.Decimal is passed.
	ErrNilInput = fault.Argument("bigsqrt: nil input")

	// ErrNegativeInput is returned for x < 0 under every mode.
	ErrNegativeInput = fault.Argument("bigsqrt: negative input")

	// ErrNotPerfectSquare is returned by Int when x has no exact integer root.
	ErrNotPerfectSquare = fault.Argument("bigsqrt: not a perfect square")

	// ErrInvalidPrecision is returned when eps is nil or outside the open interval (0, 1).
	ErrInvalidPrecision = fault.Argument("bigsqrt: precision must lie in (0, 1)")

	// ErrInvalidScale is returned for a negative output scale.
	ErrInvalidScale = fault.Argument("bigsqrt: scale must be >= 0")

	// ErrInvalidRoundingMode is returned for a RoundingMode outside the eight enumerated modes.
	ErrInvalidRoundingMode = fault.Argument("bigsqrt: unknown rounding mode")

	// ErrRoundingNecessary is returned by RoundUnnecessary when the value does not fit the scale.
	ErrRoundingNecessary = fault.Argument("bigsqrt: rounding necessary")
)
