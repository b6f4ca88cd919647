// SPDX-License-Identifier: MIT

package scalar

import (
	"fmt"
	"math/big"

	"github.com/cockroachdb/apd/v3"
	"github.com/katalvlaran/exactla/bigsqrt"
)

// Decimal is an immutable arbitrary-precision decimal: an integer coefficient and a
// scale (digits after the point). Add, Sub and Mul are exact; the scale of a sum is the
// larger operand scale, the scale of a product is the sum of the operand scales.
// The zero value is 0 with scale 0.
type Decimal struct {
	d *apd.Decimal // never mutated after construction; nil means 0
}

var (
	_ Element[Decimal, Decimal] = Decimal{}
	_ Norm[Decimal]             = Decimal{}
	_ ScaleAligner[Decimal]     = Decimal{}

	apdZero = apd.New(0, 0)
	apdOne  = apd.New(1, 0)
)

// NewDecimal returns unscaled·10^-scale, e.g. NewDecimal(125, 2) = 1.25.
func NewDecimal(unscaled int64, scale int32) Decimal {
	return Decimal{d: apd.New(unscaled, -scale)}
}

// DecimalFromBig returns unscaled·10^-scale for an arbitrary-precision coefficient.
func DecimalFromBig(unscaled *big.Int, scale int32) (Decimal, error) {
	if unscaled == nil {
		return Decimal{}, fmt.Errorf("DecimalFromBig: %w", ErrNilValue)
	}

	return Decimal{d: apd.NewWithBigInt(new(apd.BigInt).SetMathBigInt(unscaled), -scale)}, nil
}

// ParseDecimal parses a decimal literal ("1.25", "-3", "1E-7").
func ParseDecimal(s string) (Decimal, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil || d.Form != apd.Finite {
		return Decimal{}, fmt.Errorf("ParseDecimal(%q): %w", s, ErrParse)
	}

	return Decimal{d: canon(d)}, nil
}

// DecimalFromAPD returns a copy of x as a Decimal.
func DecimalFromAPD(x *apd.Decimal) (Decimal, error) {
	if x == nil {
		return Decimal{}, fmt.Errorf("DecimalFromAPD: %w", ErrNilValue)
	}
	if x.Form != apd.Finite {
		return Decimal{}, fmt.Errorf("DecimalFromAPD(%s): %w", x.String(), ErrParse)
	}

	return Decimal{d: canon(new(apd.Decimal).Set(x))}, nil
}

func (a Decimal) dec() *apd.Decimal {
	if a.d == nil {
		return apdZero
	}

	return a.d
}

// APD returns a copy of the underlying apd value.
func (a Decimal) APD() *apd.Decimal { return new(apd.Decimal).Set(a.dec()) }

// Scale returns the number of digits after the decimal point (may be negative for
// values like 1E+3).
func (a Decimal) Scale() int32 { return -a.dec().Exponent }

// exact runs an unrounded apd operation (BaseContext has rounding disabled).
// It panics only when the exponent leaves apd's range, far beyond any practical value.
func exact(op func(d, x, y *apd.Decimal) (apd.Condition, error), x, y *apd.Decimal) Decimal {
	d := new(apd.Decimal)
	if _, err := op(d, x, y); err != nil {
		panic(fmt.Sprintf("scalar: exact decimal arithmetic failed: %v", err))
	}

	return Decimal{d: canon(d)}
}

// canon clears the sign of a zero so that -0 never leaks into String.
func canon(d *apd.Decimal) *apd.Decimal {
	if d.IsZero() {
		d.Negative = false
	}

	return d
}

func (a Decimal) Add(b Decimal) Decimal { return exact(apd.BaseContext.Add, a.dec(), b.dec()) }
func (a Decimal) Sub(b Decimal) Decimal { return exact(apd.BaseContext.Sub, a.dec(), b.dec()) }
func (a Decimal) Mul(b Decimal) Decimal { return exact(apd.BaseContext.Mul, a.dec(), b.dec()) }
func (a Decimal) Neg() Decimal          { return Decimal{d: new(apd.Decimal).Neg(a.dec())} }
func (Decimal) Zero() Decimal           { return Decimal{} }
func (Decimal) One() Decimal            { return Decimal{d: apdOne} }

func (a Decimal) IsZero() bool { return a.dec().IsZero() }
func (a Decimal) IsOne() bool  { return a.dec().Cmp(apdOne) == 0 }

// IsUnit reports a ≠ 0 (decimals form a field for this purpose).
func (a Decimal) IsUnit() bool { return !a.IsZero() }

// Equal reports equal value AND equal scale: 1.0 and 1.00 differ.
func (a Decimal) Equal(b Decimal) bool {
	x, y := a.dec(), b.dec()
	return x.Exponent == y.Exponent && x.Cmp(y) == 0
}

// Cmp compares numerically, ignoring scale.
func (a Decimal) Cmp(b Decimal) int { return a.dec().Cmp(b.dec()) }
func (a Decimal) Sign() int         { return a.dec().Sign() }

// String renders the value in plain notation (no exponent).
func (a Decimal) String() string { return a.dec().Text('f') }

func (a Decimal) Abs() Decimal        { return Decimal{d: new(apd.Decimal).Abs(a.dec())} }
func (a Decimal) AbsSquared() Decimal { return a.Mul(a) }

// Decimal returns a itself.
func (a Decimal) Decimal() Decimal { return a }

// Float64 returns the nearest float64.
func (a Decimal) Float64() float64 {
	f, _ := a.dec().Float64()
	return f
}

// Quantize returns a fixed to scale fractional digits under mode.
func (a Decimal) Quantize(scale int32, mode bigsqrt.RoundingMode) (Decimal, error) {
	q, err := bigsqrt.Quantize(a.dec(), scale, mode)
	if err != nil {
		return Decimal{}, err
	}

	return Decimal{d: canon(q)}, nil
}

// AlignScale returns a fixed to ref's scale with HALF_UP rounding (negative reference
// scales are treated as 0).
func (a Decimal) AlignScale(ref Decimal) Decimal {
	scale := ref.Scale()
	if scale < 0 {
		scale = 0
	}
	q, err := a.Quantize(scale, bigsqrt.RoundHalfUp)
	if err != nil {
		panic(fmt.Sprintf("scalar: AlignScale: %v", err)) // unreachable: scale >= 0 and mode valid
	}

	return q
}

// Sqrt returns the non-negative square root of a (see bigsqrt.Decimal for opts).
func (a Decimal) Sqrt(opts ...bigsqrt.Option) (Decimal, error) {
	r, err := bigsqrt.Decimal(a.dec(), opts...)
	if err != nil {
		return Decimal{}, err
	}

	return Decimal{d: r}, nil
}

// mustSqrt is Sqrt under default options for values known to be non-negative.
func (a Decimal) mustSqrt() Decimal {
	r, err := a.Sqrt()
	if err != nil {
		panic(fmt.Sprintf("scalar: sqrt of non-negative value failed: %v", err))
	}

	return r
}
