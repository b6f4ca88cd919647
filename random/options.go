// SPDX-License-Identifier: MIT
// Package: exactla/random
//
// options.go - functional options for Generator.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs; the draws
//     themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package random

import (
	"fmt"
	"math/rand"
)

// Option customizes a Generator before its first draw.
type Option func(*config)

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("random: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithBound sets the inclusive magnitude bound of integer draws. Panics if bound <= 0.
func WithBound(bound int64) Option {
	if bound <= 0 {
		panic(fmt.Sprintf("random: WithBound(%d): bound must be > 0", bound))
	}
	return func(c *config) {
		c.bound = bound
	}
}

// WithScale sets the number of fractional digits of decimal draws. Panics if scale < 0.
func WithScale(scale int32) Option {
	if scale < 0 {
		panic(fmt.Sprintf("random: WithScale(%d): scale must be >= 0", scale))
	}
	return func(c *config) {
		c.scale = scale
	}
}
