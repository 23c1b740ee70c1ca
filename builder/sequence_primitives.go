// SPDX-License-Identifier: MIT
// Package: builder
//
// sequence_primitives.go - shared parameter sequences and noise for generators.
//
// Purpose:
//   - Produce evenly spaced curve parameters (gonum floats.Span).
//   - Produce a deterministic low-discrepancy sequence for surface axes.
//   - Apply optional Gaussian noise from the configured RNG.
//
// Contract:
//   - Pure helpers (no global state).

package builder

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Tiny numeric named constants.
const (
	tau = 2.0 * math.Pi // τ = 2π

	// goldenConj is φ-1; frac(i·(φ-1)) fills [0,1) with minimal gaps.
	goldenConj = 0.6180339887498949
)

// span returns n evenly spaced values over the closed interval [lo, hi].
// n must be >= 2.
func span(n int, lo, hi float64) []float64 {
	return floats.Span(make([]float64, n), lo, hi)
}

// openSpan returns n evenly spaced values over [lo, hi) (endpoint excluded),
// which avoids a duplicated point on closed curves.
func openSpan(n int, lo, hi float64) []float64 {
	out := make([]float64, n)
	step := (hi - lo) / float64(n)
	for i := range out {
		out[i] = lo + float64(i)*step
	}

	return out
}

// golden returns frac(i·(φ-1)) for i in [0, n).
func golden(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		_, out[i] = math.Modf(float64(i) * goldenConj)
	}

	return out
}

// addNoise adds N(0, cfg.noise²) to every value in place. A zero sigma is a
// no-op and draws nothing from the RNG.
func addNoise(data []float64, cfg builderConfig) {
	if cfg.noise == 0 {
		return
	}
	for i := range data {
		data[i] += cfg.noise * cfg.rng.NormFloat64()
	}
}
