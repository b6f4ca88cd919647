// SPDX-License-Identifier: MIT
// Package gonumview: sentinel error set.

package gonumview

import (
	"fmt"

	"github.com/katalvlaran/exactla/fault"
)

var (
	// ErrNotFinite is returned when an imported float is NaN or ±Inf.
	ErrNotFinite = fault.Argument("gonumview: value is not finite")

	// ErrNilMatrix is returned when a nil gonum value is imported.
	ErrNilMatrix = fault.Argument("gonumview: nil matrix")
)

const (
	opFromDense        = "FromDense"
	opFromDenseRounded = "FromDenseRounded"
	opFromVecDense     = "FromVecDense"
	opDet              = "Det"
)

// viewErrorf wraps err with the operation tag.
func viewErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
