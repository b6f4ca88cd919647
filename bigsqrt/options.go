// SPDX-License-Identifier: MIT

// Package bigsqrt: functional configuration of the Newton iteration.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants and constructors),
//   - WithX constructors,
//   - gatherOptions helper (internal) that validates and resolves the termination mode.
//
// Design goals:
//   - Deterministic behavior: no global mutable state.
//   - Invalid values never panic here; they surface as sentinel errors from the
//     entry point that consumed the options, before any computation.
//   - Last-writer-wins: repeating an option overrides the earlier value.
package bigsqrt

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPrecisionDigits gives DefaultPrecision = 10^-DefaultPrecisionDigits.
	DefaultPrecisionDigits = 20

	// DefaultScale is the number of fractional digits of a default-mode result.
	DefaultScale int32 = 20

	// DefaultRounding is the rounding mode of a default-mode result.
	DefaultRounding = RoundHalfUp

	// DefaultWorkingDigits is the minimum number of significant digits carried by
	// the iteration (and by exact→decimal conversions elsewhere in the module).
	DefaultWorkingDigits = 34

	// MaxIterations bounds every Newton loop.
	MaxIterations = 512

	// guardDigits are carried past the requested tolerance.
	guardDigits = 4
)

// DefaultPrecision returns a fresh copy of the library-wide precision 10^-20.
func DefaultPrecision() *apd.Decimal { return Epsilon(DefaultPrecisionDigits) }

// Epsilon returns 10^-digits, a convenient precision argument for WithPrecision.
func Epsilon(digits int32) *apd.Decimal { return apd.New(1, -digits) }

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option and resolve them
// via gatherOptions.
type Options struct {
	eps          *apd.Decimal // nil unless WithPrecision
	hasPrecision bool
	scale        int32
	rounding     RoundingMode
	hasScale     bool
}

// WithPrecision selects precision mode: iterate until |next − estimate| < eps.
// eps must lie in (0, 1); it is copied, later mutation by the caller has no effect.
//
// AI-Hints:
//   - Use Epsilon(k) for eps = 10^-k.
//   - Combine with WithScale to fix the output digits after convergence.
func WithPrecision(eps *apd.Decimal) Option {
	var c *apd.Decimal
	if eps != nil {
		c = new(apd.Decimal).Set(eps)
	}

	return func(o *Options) {
		o.eps = c
		o.hasPrecision = true
	}
}

// WithScale selects scale+rounding mode: the result carries exactly scale fractional
// digits, rounded under mode. scale must be >= 0 and mode must be Valid.
func WithScale(scale int32, mode RoundingMode) Option {
	return func(o *Options) {
		o.scale = scale
		o.rounding = mode
		o.hasScale = true
	}
}

// HasPrecision reports whether precision mode is active.
func (o Options) HasPrecision() bool { return o.hasPrecision }

// HasScale reports whether the result is fixed to a scale.
func (o Options) HasScale() bool { return o.hasScale }

// Scale returns the output scale (meaningful only when HasScale).
func (o Options) Scale() int32 { return o.scale }

// Rounding returns the output rounding mode (meaningful only when HasScale).
func (o Options) Rounding() RoundingMode { return o.rounding }

// NewOptions resolves opts the same way Decimal does and reports invalid values.
func NewOptions(opts ...Option) (Options, error) {
	return gatherOptions(opts...)
}

// gatherOptions applies setters in order and resolves the termination mode.
// Implementation:
//   - Stage 1: apply setters (last-writer-wins).
//   - Stage 2: validate eps ∈ (0,1), scale >= 0, mode valid.
//   - Stage 3: no option at all ⇒ default mode (DefaultPrecision + DefaultScale/DefaultRounding).
//
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) (Options, error) {
	var o Options
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	if o.hasPrecision {
		if o.eps == nil || o.eps.Sign() <= 0 || o.eps.Cmp(decimalOne) >= 0 {
			return Options{}, fmt.Errorf("eps=%v, expected (0, 1): %w", o.eps, ErrInvalidPrecision)
		}
	}
	if o.hasScale {
		if o.scale < 0 {
			return Options{}, fmt.Errorf("scale=%d, expected >= 0: %w", o.scale, ErrInvalidScale)
		}
		if !o.rounding.Valid() {
			return Options{}, fmt.Errorf("mode=%d, expected 0..%d: %w",
				uint8(o.rounding), uint8(RoundUnnecessary), ErrInvalidRoundingMode)
		}
	}

	finalizeOptions(&o)

	return o, nil
}

// finalizeOptions enforces the default-mode invariant in exactly one place.
func finalizeOptions(o *Options) {
	if !o.hasPrecision && !o.hasScale {
		o.eps = DefaultPrecision()
		o.hasPrecision = true
		o.scale = DefaultScale
		o.rounding = DefaultRounding
		o.hasScale = true
	}
}

var decimalOne = apd.New(1, 0)
