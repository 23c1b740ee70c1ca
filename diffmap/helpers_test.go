package diffmap_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/diffmaps/builder"
	"github.com/katalvlaran/diffmaps/diffmap"
	"github.com/katalvlaran/diffmaps/kernel"
	"github.com/katalvlaran/diffmaps/matrix"
)

// helix returns the n-point default helix.
func helix(tb testing.TB, n int) *matrix.Dense {
	tb.Helper()
	m, err := builder.Helix(n)
	require.NoError(tb, err)

	return m
}

// sigmaKernel returns a Gaussian spec with the given bandwidth.
func sigmaKernel(tb testing.TB, sigma float64) kernel.Spec {
	tb.Helper()
	g, err := kernel.GaussianSigma(sigma)
	require.NoError(tb, err)

	return g
}

// bufferLogger captures text records at Debug level.
func bufferLogger() (*diffmap.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	return diffmap.NewLogger(h), &buf
}

// column copies column c of m.
func column(tb testing.TB, m *matrix.Dense, c int) []float64 {
	tb.Helper()
	col, err := m.Col(c)
	require.NoError(tb, err)

	return col
}

// strictlyMonotonic reports whether x is strictly increasing or strictly
// decreasing.
func strictlyMonotonic(x []float64) bool {
	inc, dec := true, true
	for i := 1; i < len(x); i++ {
		if x[i] <= x[i-1] {
			inc = false
		}
		if x[i] >= x[i-1] {
			dec = false
		}
	}

	return inc || dec
}
