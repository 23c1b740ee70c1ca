// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_helix.go - deterministic 3-D helix.
//
// Model:
//   - s_i = 2π·turns·i/(n-1), i = 0..n-1   (evenly spaced, both ends included)
//   - p_i = (r·cos s_i, r·sin s_i, s_i/(π·turns) - 1)
//
// With the defaults (r = 1, 4 turns) this is the classic diffusion-map
// benchmark: s ∈ [0, 8π] and z = s/(4π) - 1 ∈ [-1, 1]. The curve is a
// one-dimensional manifold, so its first diffusion coordinate is monotonic
// in i.

package builder

import (
	"math"

	"github.com/katalvlaran/diffmaps/matrix"
)

// helixDim is the ambient dimension of the helix.
const helixDim = 3

// Helix returns n points on a helix, one per row, in parameter order.
//
// Errors:
//   - ErrTooFewPoints if n < MinCloudPoints.
//   - ErrNeedRandSource if WithNoise is set without WithSeed/WithRand.
//
// Complexity: O(n) time and memory.
func Helix(n int, opts ...BuilderOption) (*matrix.Dense, error) {
	if err := validateMin(MethodHelix, n, MinCloudPoints); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	if err := validateNoise(MethodHelix, cfg); err != nil {
		return nil, err
	}

	s := HelixParameters(n, opts...)
	data := make([]float64, n*helixDim)
	for i, si := range s {
		row := data[i*helixDim : (i+1)*helixDim]
		row[0] = cfg.radius * math.Cos(si)
		row[1] = cfg.radius * math.Sin(si)
		row[2] = si/(math.Pi*cfg.turns) - 1
	}
	addNoise(data, cfg)

	return matrix.NewDenseFromData(n, helixDim, data)
}

// HelixParameters returns the curve parameters s_i that Helix samples with
// the same options. It returns nil for n < MinCloudPoints.
func HelixParameters(n int, opts ...BuilderOption) []float64 {
	if n < MinCloudPoints {
		return nil
	}
	cfg := newBuilderConfig(opts...)

	return span(n, 0, tau*cfg.turns)
}
