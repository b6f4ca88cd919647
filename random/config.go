// SPDX-License-Identifier: MIT
// Package: exactla/random
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • config is the single source of truth for all generator knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng   = rand.New(rand.NewSource(DefaultSeed))
//   • bound = DefaultBound   (integer parts drawn from [-bound, bound])
//   • scale = DefaultScale   (digits after the point for decimals)
//
// AI-Hints:
//   • Keep bound small (<= 10) when the result feeds a Leibniz determinant: entries
//     of n! products grow quickly even though the arithmetic stays exact.
//   • WithRand shares one stream across several generators; WithSeed isolates them.

package random

import "math/rand"

// Deterministic defaults (named, no magic numbers).
const (
	DefaultSeed  int64 = 1
	DefaultBound int64 = 10
	DefaultScale int32 = 2
)

// config aggregates all knobs used by Generator.
type config struct {
	rng   *rand.Rand // never nil after newConfig
	bound int64      // > 0
	scale int32      // >= 0
}

// newConfig constructs a config with deterministic defaults and applies all options
// in order; last-writer-wins.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{bound: DefaultBound, scale: DefaultScale}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(DefaultSeed))
	}

	return cfg
}
