// SPDX-License-Identifier: MIT
// Package scalar_test contains unit tests for the exact number domains.
package scalar_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/exactla/bigsqrt"
	"github.com/katalvlaran/exactla/fault"
	"github.com/katalvlaran/exactla/scalar"
	"github.com/stretchr/testify/require"
)

func dec(t *testing.T, s string) scalar.Decimal {
	t.Helper()
	d, err := scalar.ParseDecimal(s)
	require.NoError(t, err)

	return d
}

func frac(t *testing.T, num, den int64) scalar.Fraction {
	t.Helper()
	f, err := scalar.NewFraction(num, den)
	require.NoError(t, err)

	return f
}

func TestZeroValuesAreZero(t *testing.T) {
	t.Parallel()

	var (
		i  scalar.Int
		f  scalar.Fraction
		d  scalar.Decimal
		g  scalar.GaussianInt
		cd scalar.ComplexDecimal
	)
	require.True(t, i.IsZero())
	require.True(t, f.IsZero())
	require.True(t, d.IsZero())
	require.True(t, g.IsZero())
	require.True(t, cd.IsZero())

	require.True(t, i.One().IsOne())
	require.True(t, f.One().IsOne())
	require.True(t, d.One().IsOne())
	require.True(t, g.One().IsOne())
	require.True(t, cd.One().IsOne())

	require.Equal(t, "0", i.String())
	require.Equal(t, "0", f.String())
	require.Equal(t, "0", d.String())
	require.Equal(t, "0", g.String())
	require.Equal(t, "0", cd.String())
}

func TestInt_Arithmetic(t *testing.T) {
	t.Parallel()

	a, b := scalar.NewInt(7), scalar.NewInt(-3)
	require.Equal(t, "4", a.Add(b).String())
	require.Equal(t, "10", a.Sub(b).String())
	require.Equal(t, "-21", a.Mul(b).String())
	require.Equal(t, "3", b.Neg().String())
	require.Equal(t, "3", b.Abs().String())
	require.Equal(t, "9", b.AbsSquared().String())
	require.Equal(t, 1, a.Cmp(b))

	huge, err := scalar.ParseInt("123456789012345678901234567890")
	require.NoError(t, err)
	require.Equal(t, "15241578753238836750495351562536198787501905199875019052100", huge.Mul(huge).String())
	require.Equal(t, "123456789012345678901234567890", huge.Decimal().String())

	for _, tc := range []struct {
		v    int64
		unit bool
	}{{1, true}, {-1, true}, {0, false}, {2, false}, {-2, false}} {
		require.Equal(t, tc.unit, scalar.NewInt(tc.v).IsUnit(), "IsUnit(%d)", tc.v)
	}
}

func TestInt_Errors(t *testing.T) {
	t.Parallel()

	_, err := scalar.ParseInt("12x")
	require.ErrorIs(t, err, scalar.ErrParse)
	require.ErrorIs(t, err, fault.ErrIllegalArgument)

	_, err = scalar.IntFromBig(nil)
	require.ErrorIs(t, err, scalar.ErrNilValue)

	src := big.NewInt(5)
	x, err := scalar.IntFromBig(src)
	require.NoError(t, err)
	src.SetInt64(6)
	require.Equal(t, "5", x.String(), "IntFromBig must copy its input")
}

func TestFraction_NormalForm(t *testing.T) {
	t.Parallel()

	f := frac(t, 2, -4)
	require.Equal(t, "-1/2", f.String())
	require.Equal(t, "-1", f.Num().String())
	require.Equal(t, "2", f.Denom().String())

	require.True(t, frac(t, 3, 6).Equal(frac(t, 1, 2)))
	require.Equal(t, "5/6", frac(t, 1, 2).Add(frac(t, 1, 3)).String())
	require.Equal(t, "1/6", frac(t, 1, 2).Sub(frac(t, 1, 3)).String())
	require.Equal(t, "1", frac(t, 2, 3).Mul(frac(t, 3, 2)).String())
	require.Equal(t, "1/4", f.AbsSquared().String())
	require.Equal(t, "1/2", f.Abs().String())

	inv, err := frac(t, -2, 5).Inv()
	require.NoError(t, err)
	require.Equal(t, "-5/2", inv.String())

	p, err := scalar.ParseFraction("0.75")
	require.NoError(t, err)
	require.Equal(t, "3/4", p.String())
}

func TestFraction_Errors(t *testing.T) {
	t.Parallel()

	_, err := scalar.NewFraction(1, 0)
	require.ErrorIs(t, err, scalar.ErrZeroDenominator)
	require.ErrorIs(t, err, fault.ErrIllegalArgument)

	_, err = scalar.Fraction{}.Inv()
	require.ErrorIs(t, err, scalar.ErrZeroDenominator)

	_, err = scalar.ParseFraction("1/x")
	require.ErrorIs(t, err, scalar.ErrParse)
}

func TestFraction_Decimal(t *testing.T) {
	t.Parallel()

	require.Zero(t, frac(t, 1, 4).Decimal().Cmp(dec(t, "0.25")))
	require.Equal(t, "7", frac(t, 7, 1).Decimal().String())

	third := frac(t, 1, 3).Decimal()
	require.Equal(t, 1, third.Cmp(dec(t, "0.3333333333")))
	require.Equal(t, -1, third.Cmp(dec(t, "0.3333333334")))
	require.True(t, frac(t, 1, 3).IsUnit())
}

func TestDecimal_ScaleRules(t *testing.T) {
	t.Parallel()

	require.Equal(t, "1.25", scalar.NewDecimal(125, 2).String())
	require.Equal(t, "3.75", dec(t, "1.5").Add(dec(t, "2.25")).String())
	require.Equal(t, "-0.75", dec(t, "1.5").Sub(dec(t, "2.25")).String())
	require.Equal(t, "0.30", dec(t, "1.5").Mul(dec(t, "0.2")).String())
	require.Equal(t, int32(2), dec(t, "0.30").Scale())
	require.Equal(t, "0", dec(t, "-1").Mul(dec(t, "0")).String())
	require.Equal(t, "0.00", scalar.NewDecimal(0, 2).Neg().String())
	require.Equal(t, "0.0000001", dec(t, "1E-7").String())
}

func TestDecimal_EqualityIsStructural(t *testing.T) {
	t.Parallel()

	one, oneDotZero := dec(t, "1"), dec(t, "1.0")
	require.False(t, one.Equal(oneDotZero))
	require.Zero(t, one.Cmp(oneDotZero))
	require.True(t, oneDotZero.IsOne())
	require.True(t, dec(t, "0.000").IsZero())
	require.False(t, dec(t, "0.000").IsUnit())
}

func TestDecimal_QuantizeAndAlign(t *testing.T) {
	t.Parallel()

	q, err := dec(t, "1.25").Quantize(1, bigsqrt.RoundHalfUp)
	require.NoError(t, err)
	require.Equal(t, "1.3", q.String())

	q, err = dec(t, "1.25").Quantize(1, bigsqrt.RoundHalfEven)
	require.NoError(t, err)
	require.Equal(t, "1.2", q.String())

	_, err = dec(t, "1.25").Quantize(1, bigsqrt.RoundUnnecessary)
	require.ErrorIs(t, err, bigsqrt.ErrRoundingNecessary)

	require.Equal(t, "2.35", dec(t, "2.345").AlignScale(dec(t, "1.00")).String())
	require.Equal(t, "2", dec(t, "2.345").AlignScale(dec(t, "1E+3")).String())
	require.Equal(t, "4.000", dec(t, "4").AlignScale(dec(t, "0.001")).String())
}

func TestDecimal_SqrtAndErrors(t *testing.T) {
	t.Parallel()

	r, err := dec(t, "2.25").Sqrt(bigsqrt.WithScale(2, bigsqrt.RoundUnnecessary))
	require.NoError(t, err)
	require.Equal(t, "1.50", r.String())

	_, err = dec(t, "-4").Sqrt()
	require.ErrorIs(t, err, bigsqrt.ErrNegativeInput)

	for _, s := range []string{"abc", "NaN", "Infinity", ""} {
		_, err = scalar.ParseDecimal(s)
		require.ErrorIs(t, err, scalar.ErrParse, "ParseDecimal(%q)", s)
	}

	_, err = scalar.DecimalFromAPD(nil)
	require.ErrorIs(t, err, scalar.ErrNilValue)
}

func TestGaussianInt(t *testing.T) {
	t.Parallel()

	z, w := scalar.NewGaussianInt(1, 2), scalar.NewGaussianInt(3, -1)
	require.Equal(t, "5+5i", z.Mul(w).String())
	require.Equal(t, "4+1i", z.Add(w).String())
	require.Equal(t, "-2+3i", z.Sub(w).String())
	require.Equal(t, "1-2i", z.Conj().String())
	require.Equal(t, "5", z.Mul(z.Conj()).String())

	for _, tc := range []struct {
		re, im int64
		want   string
	}{{7, 0, "7"}, {0, 4, "4i"}, {2, -3, "2-3i"}, {0, -1, "-1i"}, {-5, 1, "-5+1i"}} {
		require.Equal(t, tc.want, scalar.NewGaussianInt(tc.re, tc.im).String())
	}

	for _, tc := range []struct {
		re, im int64
		unit   bool
	}{{1, 0, true}, {-1, 0, true}, {0, 1, true}, {0, -1, true}, {1, 1, false}, {2, 0, false}, {0, 0, false}} {
		require.Equal(t, tc.unit, scalar.NewGaussianInt(tc.re, tc.im).IsUnit(), "IsUnit(%d%+di)", tc.re, tc.im)
	}

	g := scalar.NewGaussianInt(3, 4)
	require.Equal(t, "25", g.AbsSquared().String())
	require.Zero(t, g.Abs().Cmp(dec(t, "5")))
	require.Equal(t, "7", scalar.NewGaussianInt(0, -7).Abs().String())
	require.Equal(t, complex(3, 4), g.Complex128())
}

func TestComplexDecimal(t *testing.T) {
	t.Parallel()

	z := scalar.NewComplexDecimal(dec(t, "1.5"), dec(t, "2"))
	require.Equal(t, "1.5+2i", z.String())
	require.Equal(t, "6.25", z.Mul(z.Conj()).String())
	require.Equal(t, "6.25", z.AbsSquared().String())
	require.Equal(t, "1.5-2i", z.Conj().String())
	require.True(t, z.IsUnit())
	require.False(t, scalar.ComplexDecimal{}.IsUnit())

	unit, err := scalar.ParseComplexDecimal("0.6", "0.8")
	require.NoError(t, err)
	require.Zero(t, unit.Abs().Cmp(dec(t, "1")))
	require.Equal(t, "2.5", scalar.NewComplexDecimal(dec(t, "-2.5"), scalar.Decimal{}).Abs().String())

	aligned := scalar.NewComplexDecimal(dec(t, "1.25"), dec(t, "-3.1415")).
		AlignScale(scalar.NewComplexDecimal(dec(t, "0.0"), dec(t, "1.00")))
	require.Equal(t, "1.3-3.14i", aligned.String())

	_, err = scalar.ParseComplexDecimal("1", "i")
	require.ErrorIs(t, err, scalar.ErrParse)
}
