// SPDX-License-Identifier: MIT

// Package bigsqrt computes non-negative square roots of arbitrary-precision values.
//
// Two input domains are supported:
//
//   - *big.Int: Int returns the exact root of a perfect square (and fails otherwise);
//     BigInt returns a decimal approximation, taking the perfect-square fast path first.
//   - *apd.Decimal: Decimal runs a Newton–Raphson iteration
//
//     next = (e + x/e) / 2
//
//     on the scientific mantissa of x (see Normalize), then shifts the root back.
//
// Termination is configured with functional options:
//
//	WithPrecision(eps)      stop when |next − e| < eps            (precision mode)
//	WithScale(s, mode)      converge past 10^-(s+2), then round   (scale+rounding mode)
//	both                    precision mode, then rounding          (combined mode)
//	none                    DefaultPrecision + DefaultScale/DefaultRounding
//
// Every mode is bounded: the iteration also stops when the sequence stops decreasing at
// the working precision and, as a last guard, after MaxIterations steps.
//
// All entry points are pure and safe for concurrent use.
package bigsqrt
