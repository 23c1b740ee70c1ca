// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all generator knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng    = nil            (pure/deterministic unless seeded)
//   • radius = DefaultRadius
//   • turns  = DefaultTurns
//   • height = DefaultHeight
//   • noise  = DefaultNoise

package builder

import (
	"math/rand" // RNG for additive noise
)

// builderConfig aggregates all knobs used by generators.
// It is passed by VALUE to generators (immutable to callers).
type builderConfig struct {
	// RNG for noise; nil means “no randomness”.
	rng *rand.Rand

	radius float64 // > 0, helix and circle
	turns  float64 // > 0, helix
	height float64 // > 0, swiss roll
	noise  float64 // >= 0, Gaussian sigma added to every coordinate
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:    nil,
		radius: DefaultRadius,
		turns:  DefaultTurns,
		height: DefaultHeight,
		noise:  DefaultNoise,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
