// SPDX-License-Identifier: MIT

package random

import (
	"math/big"

	"github.com/katalvlaran/exactla/scalar"
)

// Generator draws bounded scalars from a seeded stream.
type Generator struct {
	cfg config
}

// New returns a Generator configured by opts (see config.go for defaults).
func New(opts ...Option) *Generator {
	return &Generator{cfg: newConfig(opts...)}
}

// Bound returns the configured magnitude bound.
func (g *Generator) Bound() int64 { return g.cfg.bound }

// Scale returns the configured decimal scale.
func (g *Generator) Scale() int32 { return g.cfg.scale }

// uniform returns a uniform integer in [-limit, limit].
func (g *Generator) uniform(limit *big.Int) *big.Int {
	span := new(big.Int).Lsh(limit, 1)
	span.Add(span, bigOne)
	x := new(big.Int).Rand(g.cfg.rng, span)

	return x.Sub(x, limit)
}

var bigOne = big.NewInt(1)

// Int returns an integer in [-bound, bound].
func (g *Generator) Int() scalar.Int {
	x, _ := scalar.IntFromBig(g.uniform(big.NewInt(g.cfg.bound)))
	return x
}

// NonZeroInt returns an integer in [-bound, bound] \ {0}.
func (g *Generator) NonZeroInt() scalar.Int {
	for {
		if x := g.Int(); !x.IsZero() {
			return x
		}
	}
}

// Fraction returns n/d with n in [-bound, bound] and d in [1, bound].
func (g *Generator) Fraction() scalar.Fraction {
	bound := big.NewInt(g.cfg.bound)
	num := g.uniform(bound)
	den := new(big.Int).Rand(g.cfg.rng, bound)
	den.Add(den, bigOne)
	f, _ := scalar.FractionFromRat(new(big.Rat).SetFrac(num, den)) // den >= 1

	return f
}

// Decimal returns a decimal with exactly Scale() fractional digits and magnitude at
// most bound.
func (g *Generator) Decimal() scalar.Decimal {
	limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(g.cfg.scale)), nil)
	limit.Mul(limit, big.NewInt(g.cfg.bound))
	d, _ := scalar.DecimalFromBig(g.uniform(limit), g.cfg.scale)

	return d
}

// GaussianInt returns a + bi with both parts in [-bound, bound].
func (g *Generator) GaussianInt() scalar.GaussianInt {
	return scalar.GaussianIntFrom(g.Int(), g.Int())
}

// ComplexDecimal returns a + bi with both parts drawn by Decimal.
func (g *Generator) ComplexDecimal() scalar.ComplexDecimal {
	return scalar.NewComplexDecimal(g.Decimal(), g.Decimal())
}
