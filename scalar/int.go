// SPDX-License-Identifier: MIT

package scalar

import (
	"fmt"
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

// Int is an immutable arbitrary-precision integer. The zero value is 0.
type Int struct {
	v *big.Int // never mutated after construction; nil means 0
}

var (
	_ Element[Int, Int] = Int{}
	_ Norm[Int]         = Int{}

	bigZero = new(big.Int)
	bigOne  = big.NewInt(1)
)

// NewInt returns x as an Int.
func NewInt(x int64) Int { return Int{v: big.NewInt(x)} }

// IntFromBig returns a copy of x as an Int.
func IntFromBig(x *big.Int) (Int, error) {
	if x == nil {
		return Int{}, fmt.Errorf("IntFromBig: %w", ErrNilValue)
	}

	return Int{v: new(big.Int).Set(x)}, nil
}

// ParseInt parses a base-10 integer.
func ParseInt(s string) (Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Int{}, fmt.Errorf("ParseInt(%q): %w", s, ErrParse)
	}

	return Int{v: v}, nil
}

func (a Int) big() *big.Int {
	if a.v == nil {
		return bigZero
	}

	return a.v
}

// BigInt returns a copy of the underlying value.
func (a Int) BigInt() *big.Int { return new(big.Int).Set(a.big()) }

func (a Int) Add(b Int) Int { return Int{v: new(big.Int).Add(a.big(), b.big())} }
func (a Int) Sub(b Int) Int { return Int{v: new(big.Int).Sub(a.big(), b.big())} }
func (a Int) Mul(b Int) Int { return Int{v: new(big.Int).Mul(a.big(), b.big())} }
func (a Int) Neg() Int      { return Int{v: new(big.Int).Neg(a.big())} }
func (Int) Zero() Int       { return Int{} }
func (Int) One() Int        { return Int{v: bigOne} }

func (a Int) IsZero() bool { return a.big().Sign() == 0 }
func (a Int) IsOne() bool  { return a.big().Cmp(bigOne) == 0 }

// IsUnit reports a ∈ {−1, +1}.
func (a Int) IsUnit() bool { return a.big().CmpAbs(bigOne) == 0 }

func (a Int) Equal(b Int) bool { return a.big().Cmp(b.big()) == 0 }
func (a Int) Cmp(b Int) int    { return a.big().Cmp(b.big()) }
func (a Int) Sign() int        { return a.big().Sign() }
func (a Int) String() string   { return a.big().String() }

func (a Int) Abs() Int        { return Int{v: new(big.Int).Abs(a.big())} }
func (a Int) AbsSquared() Int { return a.Mul(a) }

// Decimal returns a as an exact Decimal with scale 0.
func (a Int) Decimal() Decimal {
	return Decimal{d: apd.NewWithBigInt(new(apd.BigInt).SetMathBigInt(a.big()), 0)}
}

// Float64 returns the nearest float64.
func (a Int) Float64() float64 {
	f, _ := new(big.Float).SetInt(a.big()).Float64()
	return f
}
