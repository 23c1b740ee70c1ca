// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_circle.go - deterministic planar circle.
//
// Model:
//   - s_i = 2π·i/n, i = 0..n-1   (endpoint excluded: the curve is closed)
//   - p_i = (r·cos s_i, r·sin s_i)
//
// The circle has no boundary, so its leading non-trivial diffusion
// eigenvalue is doubled (a cos/sin pair).

package builder

import (
	"math"

	"github.com/katalvlaran/diffmaps/matrix"
)

// circleDim is the ambient dimension of the circle.
const circleDim = 2

// Circle returns n points evenly spaced on a circle, one per row.
//
// Errors:
//   - ErrTooFewPoints if n < MinCloudPoints.
//   - ErrNeedRandSource if WithNoise is set without WithSeed/WithRand.
//
// Complexity: O(n) time and memory.
func Circle(n int, opts ...BuilderOption) (*matrix.Dense, error) {
	if err := validateMin(MethodCircle, n, MinCloudPoints); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	if err := validateNoise(MethodCircle, cfg); err != nil {
		return nil, err
	}

	data := make([]float64, n*circleDim)
	for i, si := range openSpan(n, 0, tau) {
		data[i*circleDim] = cfg.radius * math.Cos(si)
		data[i*circleDim+1] = cfg.radius * math.Sin(si)
	}
	addNoise(data, cfg)

	return matrix.NewDenseFromData(n, circleDim, data)
}
