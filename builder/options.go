// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"math"
	"math/rand" // RNG source for noisy generators
)

// BuilderOption customizes a generator by mutating a builderConfig instance
// before sampling begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for noise.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithNoise sets the Gaussian noise sigma (>= 0) added to every coordinate.
// Panics if sigma is negative or not finite. Noise draws come from the RNG
// set by WithSeed/WithRand.
func WithNoise(sigma float64) BuilderOption {
	if !(sigma >= 0) || math.IsInf(sigma, 1) {
		panic("builder: WithNoise(sigma<0)")
	}
	return func(c *builderConfig) {
		c.noise = sigma
	}
}

// WithRadius sets the helix/circle radius (> 0). Panics otherwise.
func WithRadius(r float64) BuilderOption {
	if !(r > 0) || math.IsInf(r, 1) {
		panic("builder: WithRadius(r<=0)")
	}
	return func(c *builderConfig) {
		c.radius = r
	}
}

// WithTurns sets the number of helix turns (> 0). Panics otherwise.
func WithTurns(turns float64) BuilderOption {
	if !(turns > 0) || math.IsInf(turns, 1) {
		panic("builder: WithTurns(turns<=0)")
	}
	return func(c *builderConfig) {
		c.turns = turns
	}
}

// WithHeight sets the swiss-roll width (> 0). Panics otherwise.
func WithHeight(h float64) BuilderOption {
	if !(h > 0) || math.IsInf(h, 1) {
		panic("builder: WithHeight(h<=0)")
	}
	return func(c *builderConfig) {
		c.height = h
	}
}
