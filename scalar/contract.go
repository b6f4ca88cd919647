// SPDX-License-Identifier: MIT
// Package scalar - the scalar contract.
//
// Purpose:
//   - Describe, once, what the vector and matrix engines need from an element type.
//   - Keep the norm codomain as a separate type parameter: it equals the element type for
//     real domains and is Decimal for complex domains.
//
// Contract notes:
//   - Every method is pure: receivers and arguments are never mutated.
//   - Zero and One are callable on the zero Go value (`var t T; t.Zero()`), which is how
//     generic code obtains identities without a separate domain object.
//   - Equal is structural; IsZero/IsOne/Cmp are numeric. For Decimal this means
//     Equal(1.0, 1) is false while (1.0).IsOne() is true.

package scalar

// Ring is the arithmetic part of the contract.
type Ring[T any] interface {
	// Add returns a + b.
	Add(b T) T
	// Sub returns a − b.
	Sub(b T) T
	// Mul returns a · b.
	Mul(b T) T
	// Neg returns −a.
	Neg() T

	// Zero returns the additive identity.
	Zero() T
	// One returns the multiplicative identity.
	One() T

	// IsZero reports a == 0 numerically.
	IsZero() bool
	// IsOne reports a == 1 numerically.
	IsOne() bool
	// IsUnit reports whether a has a multiplicative inverse inside the domain
	// (±1 for integers, nonzero for fields).
	IsUnit() bool
	// Equal reports structural equality.
	Equal(b T) bool

	String() string
}

// Norm is the contract of a norm codomain: an ordered ring that can be lifted into
// Decimal for square roots.
type Norm[N any] interface {
	Ring[N]

	// Cmp returns -1, 0 or +1 as a <, ==, > b.
	Cmp(b N) int
	// Decimal converts the value into a Decimal (exactly where possible).
	Decimal() Decimal
}

// Element is the full contract of a vector/matrix element with norm codomain N.
type Element[T any, N Norm[N]] interface {
	Ring[T]

	// Abs returns |a| in the norm codomain.
	Abs() N
	// AbsSquared returns |a|² in the norm codomain (a·a for real domains, a·conj(a) for complex).
	AbsSquared() N
}

// ScaleAligner is implemented by decimal-backed domains whose closed-form results are
// reported at the scale of a reference operand.
type ScaleAligner[T any] interface {
	// AlignScale returns the receiver fixed to the scale of ref with HALF_UP rounding.
	AlignScale(ref T) T
}
