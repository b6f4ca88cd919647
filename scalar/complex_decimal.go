// SPDX-License-Identifier: MIT

package scalar

// ComplexDecimal is an immutable complex number a + bi with Decimal parts.
type ComplexDecimal struct {
	re, im Decimal
}

var (
	_ Element[ComplexDecimal, Decimal] = ComplexDecimal{}
	_ ScaleAligner[ComplexDecimal]     = ComplexDecimal{}
)

// NewComplexDecimal returns re + im·i.
func NewComplexDecimal(re, im Decimal) ComplexDecimal { return ComplexDecimal{re: re, im: im} }

// ParseComplexDecimal parses the two parts separately, e.g. ("1.5", "-2").
func ParseComplexDecimal(re, im string) (ComplexDecimal, error) {
	r, err := ParseDecimal(re)
	if err != nil {
		return ComplexDecimal{}, err
	}
	i, err := ParseDecimal(im)
	if err != nil {
		return ComplexDecimal{}, err
	}

	return ComplexDecimal{re: r, im: i}, nil
}

func (z ComplexDecimal) Re() Decimal { return z.re }
func (z ComplexDecimal) Im() Decimal { return z.im }

// Conj returns a − bi.
func (z ComplexDecimal) Conj() ComplexDecimal { return ComplexDecimal{re: z.re, im: z.im.Neg()} }

func (z ComplexDecimal) Add(w ComplexDecimal) ComplexDecimal {
	return ComplexDecimal{re: z.re.Add(w.re), im: z.im.Add(w.im)}
}

func (z ComplexDecimal) Sub(w ComplexDecimal) ComplexDecimal {
	return ComplexDecimal{re: z.re.Sub(w.re), im: z.im.Sub(w.im)}
}

func (z ComplexDecimal) Mul(w ComplexDecimal) ComplexDecimal {
	return ComplexDecimal{
		re: z.re.Mul(w.re).Sub(z.im.Mul(w.im)),
		im: z.re.Mul(w.im).Add(z.im.Mul(w.re)),
	}
}

func (z ComplexDecimal) Neg() ComplexDecimal { return ComplexDecimal{re: z.re.Neg(), im: z.im.Neg()} }
func (ComplexDecimal) Zero() ComplexDecimal  { return ComplexDecimal{} }
func (ComplexDecimal) One() ComplexDecimal   { return ComplexDecimal{re: Decimal{}.One()} }

func (z ComplexDecimal) IsZero() bool { return z.re.IsZero() && z.im.IsZero() }
func (z ComplexDecimal) IsOne() bool  { return z.re.IsOne() && z.im.IsZero() }

// IsUnit reports z ≠ 0.
func (z ComplexDecimal) IsUnit() bool { return !z.IsZero() }

// Equal is structural on both parts (scales included).
func (z ComplexDecimal) Equal(w ComplexDecimal) bool {
	return z.re.Equal(w.re) && z.im.Equal(w.im)
}

func (z ComplexDecimal) String() string {
	return complexString(z.re.String(), z.im.String(), z.im.Sign())
}

// AbsSquared returns a² + b² exactly.
func (z ComplexDecimal) AbsSquared() Decimal { return z.re.AbsSquared().Add(z.im.AbsSquared()) }

// Abs returns sqrt(a² + b²) under the default square-root options; a purely real or
// purely imaginary value returns the magnitude of that part unchanged.
func (z ComplexDecimal) Abs() Decimal {
	switch {
	case z.im.IsZero():
		return z.re.Abs()
	case z.re.IsZero():
		return z.im.Abs()
	}

	return z.AbsSquared().mustSqrt()
}

// AlignScale fixes each part to the scale of the matching part of ref (HALF_UP).
func (z ComplexDecimal) AlignScale(ref ComplexDecimal) ComplexDecimal {
	return ComplexDecimal{re: z.re.AlignScale(ref.re), im: z.im.AlignScale(ref.im)}
}

// Complex128 returns the nearest complex128.
func (z ComplexDecimal) Complex128() complex128 {
	return complex(z.re.Float64(), z.im.Float64())
}
