// SPDX-License-Identifier: MIT

package scalar

import (
	"fmt"
	"math/big"

	"github.com/cockroachdb/apd/v3"
	"github.com/katalvlaran/exactla/bigsqrt"
)

// Fraction is an immutable exact rational number, always reduced with a positive
// denominator (big.Rat normal form). The zero value is 0/1.
type Fraction struct {
	r *big.Rat // never mutated after construction; nil means 0
}

var (
	_ Element[Fraction, Fraction] = Fraction{}
	_ Norm[Fraction]              = Fraction{}

	ratZero = new(big.Rat)
	ratOne  = big.NewRat(1, 1)
)

// NewFraction returns num/den in lowest terms. den must be nonzero.
func NewFraction(num, den int64) (Fraction, error) {
	if den == 0 {
		return Fraction{}, fmt.Errorf("NewFraction(%d/%d): %w", num, den, ErrZeroDenominator)
	}

	return Fraction{r: big.NewRat(num, den)}, nil
}

// FractionFromInt returns the integer x as x/1.
func FractionFromInt(x Int) Fraction {
	return Fraction{r: new(big.Rat).SetInt(x.big())}
}

// FractionFromRat returns a copy of x as a Fraction.
func FractionFromRat(x *big.Rat) (Fraction, error) {
	if x == nil {
		return Fraction{}, fmt.Errorf("FractionFromRat: %w", ErrNilValue)
	}

	return Fraction{r: new(big.Rat).Set(x)}, nil
}

// ParseFraction parses "a/b", an integer or a decimal literal ("0.75").
func ParseFraction(s string) (Fraction, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Fraction{}, fmt.Errorf("ParseFraction(%q): %w", s, ErrParse)
	}

	return Fraction{r: r}, nil
}

func (a Fraction) rat() *big.Rat {
	if a.r == nil {
		return ratZero
	}

	return a.r
}

// Rat returns a copy of the underlying value.
func (a Fraction) Rat() *big.Rat { return new(big.Rat).Set(a.rat()) }

// Num returns the numerator (sign carrier).
func (a Fraction) Num() Int { return Int{v: new(big.Int).Set(a.rat().Num())} }

// Denom returns the positive denominator.
func (a Fraction) Denom() Int { return Int{v: new(big.Int).Set(a.rat().Denom())} }

func (a Fraction) Add(b Fraction) Fraction { return Fraction{r: new(big.Rat).Add(a.rat(), b.rat())} }
func (a Fraction) Sub(b Fraction) Fraction { return Fraction{r: new(big.Rat).Sub(a.rat(), b.rat())} }
func (a Fraction) Mul(b Fraction) Fraction { return Fraction{r: new(big.Rat).Mul(a.rat(), b.rat())} }
func (a Fraction) Neg() Fraction           { return Fraction{r: new(big.Rat).Neg(a.rat())} }
func (Fraction) Zero() Fraction            { return Fraction{} }
func (Fraction) One() Fraction             { return Fraction{r: ratOne} }

// Inv returns 1/a; a must be nonzero.
func (a Fraction) Inv() (Fraction, error) {
	if a.IsZero() {
		return Fraction{}, fmt.Errorf("Inv: %w", ErrZeroDenominator)
	}

	return Fraction{r: new(big.Rat).Inv(a.rat())}, nil
}

func (a Fraction) IsZero() bool { return a.rat().Sign() == 0 }
func (a Fraction) IsOne() bool  { return a.rat().Cmp(ratOne) == 0 }

// IsUnit reports a ≠ 0 (rationals form a field).
func (a Fraction) IsUnit() bool { return !a.IsZero() }

func (a Fraction) Equal(b Fraction) bool { return a.rat().Cmp(b.rat()) == 0 }
func (a Fraction) Cmp(b Fraction) int    { return a.rat().Cmp(b.rat()) }
func (a Fraction) Sign() int             { return a.rat().Sign() }

// String renders "n" for integers and "n/d" otherwise.
func (a Fraction) String() string { return a.rat().RatString() }

func (a Fraction) Abs() Fraction        { return Fraction{r: new(big.Rat).Abs(a.rat())} }
func (a Fraction) AbsSquared() Fraction { return a.Mul(a) }

// Decimal returns num/den rounded to bigsqrt.DefaultWorkingDigits significant digits
// (exact when the denominator divides a power of ten within that precision).
func (a Fraction) Decimal() Decimal {
	r := a.rat()
	num := apd.NewWithBigInt(new(apd.BigInt).SetMathBigInt(r.Num()), 0)
	if r.IsInt() {
		return Decimal{d: num}
	}
	den := apd.NewWithBigInt(new(apd.BigInt).SetMathBigInt(r.Denom()), 0)

	d := new(apd.Decimal)
	ctx := apd.BaseContext.WithPrecision(bigsqrt.DefaultWorkingDigits)
	if _, err := ctx.Quo(d, num, den); err != nil {
		panic(fmt.Sprintf("scalar: fraction to decimal: %v", err)) // den > 0 by construction
	}

	return Decimal{d: canon(d)}
}

// Float64 returns the nearest float64.
func (a Fraction) Float64() float64 {
	f, _ := a.rat().Float64()
	return f
}
