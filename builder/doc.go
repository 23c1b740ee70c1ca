// Package builder generates deterministic point clouds for tests, examples,
// benchmarks and the command-line tool.
//
// Every generator samples a one-parameter curve (or a two-parameter surface)
// at evenly spaced parameter values and returns an n×d *matrix.Dense with one
// point per row, in parameter order. Row i therefore has a known intrinsic
// coordinate, which is what a diffusion map should recover.
//
// The package offers:
//
//   - Generators:
//     – Helix:     (r·cos s, r·sin s, s/(π·turns) - 1), s ∈ [0, 2π·turns].
//     – Circle:    (r·cos s, r·sin s), s ∈ [0, 2π) without the endpoint.
//     – SwissRoll: (s·cos s, h, s·sin s), s ∈ [1.5π, 4.5π], h from a
//       low-discrepancy sequence in [0, height).
//     – Generate:  name-based dispatch ("helix", "circle", "swissroll") for
//       configuration edges.
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – WithSeed/WithRand: RNG for additive Gaussian noise.
//     – WithNoise, WithRadius, WithTurns, WithHeight.
//
// Guarantees:
//
//   - Determinism: same (n, options, seed) ⇒ bit-identical output.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     generators themselves return sentinel errors and never panic.
//   - O(n·d) time and memory per call.
package builder
