// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_swissroll.go - deterministic swiss roll surface.
//
// Model:
//   - s_i = 1.5π + 3π·i/(n-1)            (the rolled axis, evenly spaced)
//   - h_i = height·frac(i·(φ-1))           (the flat axis, golden-ratio sequence)
//   - p_i = (s_i·cos s_i, h_i, s_i·sin s_i)
//
// Rows are ordered by s, so the rolled coordinate is recoverable from the
// row index while the flat coordinate is spread without any RNG.

package builder

import (
	"math"

	"github.com/katalvlaran/diffmaps/matrix"
)

const (
	swissRollDim = 3
	swissRollLo  = 1.5 * math.Pi
	swissRollHi  = 4.5 * math.Pi
)

// SwissRoll returns n points on a swiss roll, one per row, ordered along the
// rolled axis.
//
// Errors:
//   - ErrTooFewPoints if n < MinCloudPoints.
//   - ErrNeedRandSource if WithNoise is set without WithSeed/WithRand.
//
// Complexity: O(n) time and memory.
func SwissRoll(n int, opts ...BuilderOption) (*matrix.Dense, error) {
	if err := validateMin(MethodSwissRoll, n, MinCloudPoints); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	if err := validateNoise(MethodSwissRoll, cfg); err != nil {
		return nil, err
	}

	s := span(n, swissRollLo, swissRollHi)
	h := golden(n)
	data := make([]float64, n*swissRollDim)
	for i, si := range s {
		row := data[i*swissRollDim : (i+1)*swissRollDim]
		row[0] = si * math.Cos(si)
		row[1] = cfg.height * h[i]
		row[2] = si * math.Sin(si)
	}
	addNoise(data, cfg)

	return matrix.NewDenseFromData(n, swissRollDim, data)
}
