// SPDX-License-Identifier: MIT

// Package scalar defines the element contract of the vector and matrix engines and the
// five exact number domains that satisfy it.
//
//	domain          norm codomain  backing
//	Int             Int            *big.Int
//	Fraction        Fraction       *big.Rat
//	Decimal         Decimal        *apd.Decimal (coefficient + exponent)
//	GaussianInt     Decimal        two Int parts
//	ComplexDecimal  Decimal        two Decimal parts
//
// All values are immutable and their zero Go value is the number zero, so `var x T`
// is always a valid operand. Add, Sub and Mul never round. Only the magnitude of a
// complex value (a square root) and Fraction.Decimal (a division) are approximate;
// both use the defaults of package bigsqrt.
//
// Values are safe for concurrent use.
package scalar
