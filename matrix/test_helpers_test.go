// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for Dense and Sparse tests.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/diffmaps/matrix"
)

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(tb, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(tb testing.TB, m matrix.Matrix, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// MustSparse assembles an n×n Sparse or fails the test.
func MustSparse(tb testing.TB, n int, triples []matrix.Triple, opts ...matrix.Option) *matrix.Sparse {
	tb.Helper()
	s, err := matrix.NewSparse(n, triples, opts...)
	require.NoError(tb, err)

	return s
}

// randomSymmetricTriples builds a reproducible symmetric pattern with a full
// diagonal and roughly density·n² off-diagonal entries.
func randomSymmetricTriples(n int, density float64, seed int64) []matrix.Triple {
	rng := rand.New(rand.NewSource(seed))
	out := make([]matrix.Triple, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, matrix.Triple{Row: i, Col: i, Value: 1})
		for j := 0; j < i; j++ {
			if rng.Float64() < density {
				v := rng.Float64()
				out = append(out,
					matrix.Triple{Row: i, Col: j, Value: v},
					matrix.Triple{Row: j, Col: i, Value: v},
				)
			}
		}
	}

	return out
}

// pathTriples is the symmetric path graph 0-1-2-...-(n-1) with unit weights
// and a unit diagonal.
func pathTriples(n int) []matrix.Triple {
	out := make([]matrix.Triple, 0, 3*n)
	for i := 0; i < n; i++ {
		out = append(out, matrix.Triple{Row: i, Col: i, Value: 1})
		if i+1 < n {
			out = append(out,
				matrix.Triple{Row: i, Col: i + 1, Value: 1},
				matrix.Triple{Row: i + 1, Col: i, Value: 1},
			)
		}
	}

	return out
}
