// SPDX-License-Identifier: MIT

package scalar

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/exactla/bigsqrt"
)

// GaussianInt is an immutable complex number a + bi with arbitrary-precision integer
// parts. Its norm codomain is Decimal because |z| is generally irrational.
type GaussianInt struct {
	re, im Int
}

var _ Element[GaussianInt, Decimal] = GaussianInt{}

// NewGaussianInt returns re + im·i.
func NewGaussianInt(re, im int64) GaussianInt {
	return GaussianInt{re: NewInt(re), im: NewInt(im)}
}

// GaussianIntFrom assembles a Gaussian integer from two Int parts.
func GaussianIntFrom(re, im Int) GaussianInt { return GaussianInt{re: re, im: im} }

// Re returns the real part.
func (z GaussianInt) Re() Int { return z.re }

// Im returns the imaginary part.
func (z GaussianInt) Im() Int { return z.im }

// Conj returns a − bi.
func (z GaussianInt) Conj() GaussianInt { return GaussianInt{re: z.re, im: z.im.Neg()} }

func (z GaussianInt) Add(w GaussianInt) GaussianInt {
	return GaussianInt{re: z.re.Add(w.re), im: z.im.Add(w.im)}
}

func (z GaussianInt) Sub(w GaussianInt) GaussianInt {
	return GaussianInt{re: z.re.Sub(w.re), im: z.im.Sub(w.im)}
}

// Mul returns (ac − bd) + (ad + bc)i.
func (z GaussianInt) Mul(w GaussianInt) GaussianInt {
	return GaussianInt{
		re: z.re.Mul(w.re).Sub(z.im.Mul(w.im)),
		im: z.re.Mul(w.im).Add(z.im.Mul(w.re)),
	}
}

func (z GaussianInt) Neg() GaussianInt { return GaussianInt{re: z.re.Neg(), im: z.im.Neg()} }
func (GaussianInt) Zero() GaussianInt  { return GaussianInt{} }
func (GaussianInt) One() GaussianInt   { return GaussianInt{re: Int{}.One()} }

func (z GaussianInt) IsZero() bool { return z.re.IsZero() && z.im.IsZero() }
func (z GaussianInt) IsOne() bool  { return z.re.IsOne() && z.im.IsZero() }

// IsUnit reports z ∈ {1, −1, i, −i}, the units of the Gaussian integers.
func (z GaussianInt) IsUnit() bool {
	return (z.re.IsUnit() && z.im.IsZero()) || (z.re.IsZero() && z.im.IsUnit())
}

func (z GaussianInt) Equal(w GaussianInt) bool { return z.re.Equal(w.re) && z.im.Equal(w.im) }

// String renders "a", "bi" or "a+bi" / "a-bi".
func (z GaussianInt) String() string { return complexString(z.re.String(), z.im.String(), z.im.Sign()) }

// AbsSquared returns a² + b² exactly.
func (z GaussianInt) AbsSquared() Decimal {
	return z.re.AbsSquared().Add(z.im.AbsSquared()).Decimal()
}

// Abs returns sqrt(a² + b²) under the default square-root options; perfect squares
// such as |3+4i| = 5 are exact.
func (z GaussianInt) Abs() Decimal {
	if z.im.IsZero() {
		return z.re.Abs().Decimal()
	}
	if z.re.IsZero() {
		return z.im.Abs().Decimal()
	}

	r, err := bigsqrt.BigInt(z.re.AbsSquared().Add(z.im.AbsSquared()).big())
	if err != nil {
		panic(fmt.Sprintf("scalar: sqrt of non-negative value failed: %v", err))
	}

	return Decimal{d: r}
}

// Complex128 returns the nearest complex128.
func (z GaussianInt) Complex128() complex128 {
	return complex(z.re.Float64(), z.im.Float64())
}

// complexString formats re/im text the same way for every complex domain.
func complexString(re, im string, imSign int) string {
	if imSign == 0 {
		return re
	}
	var sb strings.Builder
	if !isZeroText(re) {
		sb.WriteString(re)
		if imSign > 0 {
			sb.WriteByte('+')
		}
	}
	sb.WriteString(im)
	sb.WriteByte('i')

	return sb.String()
}

// isZeroText reports whether a plain-notation number renders a zero ("0", "0.00").
func isZeroText(s string) bool {
	return strings.Trim(s, "0.") == ""
}

