// SPDX-License-Identifier: MIT
// Package bigsqrt - entry points and the Newton–Raphson kernel.

package bigsqrt

import (
	"fmt"
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

// Operation name constants for unified error wrapping.
const (
	opInt     = "Int"
	opBigInt  = "BigInt"
	opDecimal = "Decimal"
)

var decimalTwo = apd.New(2, 0)

// Int returns the exact square root of a perfect square.
// Errors: ErrNilInput, ErrNegativeInput, ErrNotPerfectSquare.
// Complexity: one big.Int.Sqrt plus one multiplication.
func Int(x *big.Int) (*big.Int, error) {
	if x == nil {
		return nil, fmt.Errorf("%s: %w", opInt, ErrNilInput)
	}
	if x.Sign() < 0 {
		return nil, fmt.Errorf("%s: x=%s: %w", opInt, x.String(), ErrNegativeInput)
	}

	r, ok := exactRoot(x)
	if !ok {
		return nil, fmt.Errorf("%s: x=%s: %w", opInt, x.String(), ErrNotPerfectSquare)
	}

	return r, nil
}

// BigInt returns the decimal square root of an integer under opts.
// Perfect squares take the exact fast path (then the requested scale is applied).
func BigInt(x *big.Int, opts ...Option) (*apd.Decimal, error) {
	if x == nil {
		return nil, fmt.Errorf("%s: %w", opBigInt, ErrNilInput)
	}
	if x.Sign() < 0 {
		return nil, fmt.Errorf("%s: x=%s: %w", opBigInt, x.String(), ErrNegativeInput)
	}
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBigInt, err)
	}

	if r, ok := exactRoot(x); ok {
		return finish(apd.NewWithBigInt(new(apd.BigInt).SetMathBigInt(r), 0), nil, o, opBigInt)
	}

	return sqrtDecimal(apd.NewWithBigInt(new(apd.BigInt).SetMathBigInt(x), 0), o, opBigInt)
}

// Decimal returns the non-negative square root of x under opts.
//
// Implementation:
//   - Stage 1: validate options and input (nil, negative) before any arithmetic.
//   - Stage 2: zero short-circuits to zero (rescaled when a scale is requested).
//   - Stage 3: normalize x = m·100^e, iterate on m with the tolerance shifted by 10^-e.
//   - Stage 4: shift the root by 10^e and apply the scale+rounding step if requested.
//
// Errors: ErrNilInput, ErrNegativeInput, ErrInvalidPrecision, ErrInvalidScale,
// ErrInvalidRoundingMode, ErrRoundingNecessary.
//
// Complexity: O(k · M(d)) where k ≤ MaxIterations and M(d) is the cost of a d-digit division.
func Decimal(x *apd.Decimal, opts ...Option) (*apd.Decimal, error) {
	if x == nil {
		return nil, fmt.Errorf("%s: %w", opDecimal, ErrNilInput)
	}
	if x.Sign() < 0 {
		return nil, fmt.Errorf("%s: x=%s: %w", opDecimal, x.String(), ErrNegativeInput)
	}
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDecimal, err)
	}

	return sqrtDecimal(x, o, opDecimal)
}

func sqrtDecimal(x *apd.Decimal, o Options, op string) (*apd.Decimal, error) {
	if x.IsZero() {
		return finish(new(apd.Decimal), nil, o, op)
	}

	m, exp := normalize(x)
	tol := tolerance(o)
	tol.Exponent -= int32(exp) // error on root(m) is scaled by 10^exp afterwards

	root, err := newton(m, tol)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	root.Exponent += int32(exp)

	return finish(root, x, o, op)
}

// tolerance returns the stopping threshold in result units: eps in precision mode,
// 10^-(scale+2) in scale mode, the smaller of both when combined.
func tolerance(o Options) *apd.Decimal {
	var byScale *apd.Decimal
	if o.hasScale {
		byScale = apd.New(1, -(o.scale + 2))
	}
	switch {
	case o.hasPrecision && byScale != nil:
		if byScale.Cmp(o.eps) < 0 {
			return byScale
		}
		return new(apd.Decimal).Set(o.eps)
	case o.hasPrecision:
		return new(apd.Decimal).Set(o.eps)
	default:
		return byScale
	}
}

// finish applies the scale+rounding step when one is configured.
// radicand is nil when root is already exact; otherwise root is only an estimate and
// the rounding is decided on exact squares by roundRoot.
func finish(root, radicand *apd.Decimal, o Options, op string) (*apd.Decimal, error) {
	if !o.hasScale {
		return root, nil
	}
	if radicand == nil {
		q, err := Quantize(root, o.scale, o.rounding)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return q, nil
	}

	q, err := roundRoot(root, radicand, o.scale, o.rounding)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return q, nil
}

// roundRoot returns √x at scale digits under mode, given an estimate within a few units
// in the last place. It brackets the root as f ≤ √x < f+ulp with exact squares, then
// decides directed modes on f² == x and half modes on the square of the midpoint.
// x must be positive.
func roundRoot(est, x *apd.Decimal, scale int32, mode RoundingMode) (*apd.Decimal, error) {
	f, err := Quantize(est, scale, RoundDown)
	if err != nil {
		return nil, err
	}
	ulp := apd.New(1, -scale)
	sq, next := new(apd.Decimal), new(apd.Decimal)

	for square(sq, f).Cmp(x) > 0 {
		if _, err = apd.BaseContext.Sub(f, f, ulp); err != nil {
			return nil, err
		}
	}
	for {
		if _, err = apd.BaseContext.Add(next, f, ulp); err != nil {
			return nil, err
		}
		if square(sq, next).Cmp(x) > 0 {
			break
		}
		f.Set(next)
	}
	// f ≤ √x < next = f+ulp
	if square(sq, f).Cmp(x) == 0 {
		return f, nil
	}

	switch mode {
	case RoundDown, RoundFloor:
		return f, nil
	case RoundUp, RoundCeiling:
		return next, nil
	case RoundUnnecessary:
		return nil, fmt.Errorf("root of %s at scale %d: %w", x.String(), scale, ErrRoundingNecessary)
	}

	mid := new(apd.Decimal)
	if _, err = apd.BaseContext.Add(mid, f, apd.New(5, -(scale + 1))); err != nil {
		return nil, err
	}
	switch c := square(sq, mid).Cmp(x); {
	case c > 0:
		return f, nil
	case c < 0:
		return next, nil
	}
	// exact tie: √x is the midpoint itself, so quantizing it applies the mode's tie rule
	return Quantize(mid, scale, mode)
}

// square sets d = x·x exactly and returns d.
func square(d, x *apd.Decimal) *apd.Decimal {
	if _, err := apd.BaseContext.Mul(d, x, x); err != nil {
		panic(fmt.Sprintf("bigsqrt: exact square failed: %v", err)) // unreachable: exponents stay in range
	}

	return d
}

// newton iterates next = (e + m/e)/2 from the seed (m+1)/2 ≥ √m.
// m must lie in [1, 100). The sequence decreases monotonically in exact arithmetic, so
// the loop stops at the first of: step < tol, no further decrease at the working
// precision, MaxIterations.
func newton(m, tol *apd.Decimal) (*apd.Decimal, error) {
	ctx := apd.BaseContext.WithPrecision(workingDigits(tol))

	e := new(apd.Decimal)
	if _, err := ctx.Add(e, m, decimalOne); err != nil {
		return nil, err
	}
	if _, err := ctx.Quo(e, e, decimalTwo); err != nil {
		return nil, err
	}

	var (
		q    = new(apd.Decimal)
		next = new(apd.Decimal)
		step = new(apd.Decimal)
	)
	for i := 0; i < MaxIterations; i++ {
		if _, err := ctx.Quo(q, m, e); err != nil {
			return nil, err
		}
		if _, err := ctx.Add(next, e, q); err != nil {
			return nil, err
		}
		if _, err := ctx.Quo(next, next, decimalTwo); err != nil {
			return nil, err
		}
		if next.Cmp(e) >= 0 {
			break // stalled at the working precision
		}
		if _, err := ctx.Sub(step, e, next); err != nil {
			return nil, err
		}
		e.Set(next)
		if step.Cmp(tol) < 0 {
			break
		}
	}

	return e, nil
}

// workingDigits returns the significant digits needed to resolve tol on a root in [1, 10).
func workingDigits(tol *apd.Decimal) uint32 {
	frac := -(int64(tol.Exponent) + tol.NumDigits() - 1) // ≈ −log10(tol)
	digits := 1 + frac + guardDigits
	if digits < DefaultWorkingDigits {
		return DefaultWorkingDigits
	}

	return uint32(digits)
}

// exactRoot returns (√x, true) when x is a perfect square.
func exactRoot(x *big.Int) (*big.Int, bool) {
	r := new(big.Int).Sqrt(x)
	sq := new(big.Int).Mul(r, r)

	return r, sq.Cmp(x) == 0
}
