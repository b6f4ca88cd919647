// SPDX-License-Identifier: MIT
// Package scalar: sentinel error set.

package scalar

import "github.com/katalvlaran/exactla/fault"

var (
	// ErrParse is returned when a textual scalar cannot be parsed.
	ErrParse = fault.Argument("scalar: cannot parse value")

	// ErrZeroDenominator is returned when a Fraction is built with denominator 0.
	ErrZeroDenominator = fault.Argument("scalar: zero denominator")

	// ErrNilValue is returned when a nil big value is passed to a constructor.
	ErrNilValue = fault.Argument("scalar: nil value")
)
