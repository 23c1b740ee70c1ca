package affinity_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/diffmaps/affinity"
	"github.com/katalvlaran/diffmaps/kernel"
	"github.com/katalvlaran/diffmaps/matrix"
)

// lineData places n points on the x-axis with unit spacing.
func lineData(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = []float64{float64(i), 0}
	}
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// spiralData is a deterministic 3-D point cloud with varied distances.
func spiralData(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	rows := make([][]float64, n)
	for i := range rows {
		s := float64(i) * 0.05
		rows[i] = []float64{math.Cos(s), math.Sin(s), s / 10}
	}
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

func gaussian(t testing.TB, gamma float64, dim int) kernel.Evaluator {
	t.Helper()
	g, err := kernel.GaussianGamma(gamma)
	require.NoError(t, err)
	ev, err := g.Bind(dim)
	require.NoError(t, err)

	return ev
}

func TestBuildThresholdAndSymmetry(t *testing.T) {
	// gamma = 1: neighbours at distance 1 → e^-1 ≈ 0.368, distance 2 → e^-4 ≈ 0.018.
	data := lineData(t, 5)
	K, err := affinity.Build(context.Background(), data, gaussian(t, 1, 2), 0.1)
	require.NoError(t, err)

	require.Equal(t, 5+2*4, K.NNZ(), "diagonal plus the tridiagonal band")
	require.True(t, K.IsSymmetric(0))
	require.Equal(t, []float64{1, 1, 1, 1, 1}, K.Diagonal())

	v, err := K.At(2, 3)
	require.NoError(t, err)
	require.InDelta(t, math.Exp(-1), v, 1e-15)
	require.False(t, K.Has(0, 2))
}

func TestBuildKeepsValueEqualToEpsilon(t *testing.T) {
	data := lineData(t, 3)
	ev := gaussian(t, 1, 2)
	eps := ev.Affinity(data.RowView(0), data.RowView(1))

	K, err := affinity.Build(context.Background(), data, ev, eps)
	require.NoError(t, err)
	require.True(t, K.Has(0, 1), "value == epsilon must be retained")
	require.True(t, K.Has(1, 0))
}

func TestBuildLargeEpsilonGivesDiagonal(t *testing.T) {
	data := spiralData(t, 40)
	K, err := affinity.Build(context.Background(), data, gaussian(t, 0.5, 3), 0.999999999)
	require.NoError(t, err)
	require.True(t, K.IsDiagonal())
	require.Equal(t, 40, K.NNZ())
}

func TestBuildIndependentOfWorkers(t *testing.T) {
	data := spiralData(t, 300)
	ev := gaussian(t, 2, 3)

	serial, err := affinity.Build(context.Background(), data, ev, 1e-6, affinity.WithWorkers(1))
	require.NoError(t, err)
	for _, w := range []int{2, 3, 8} {
		par, err := affinity.Build(context.Background(), data, ev, 1e-6,
			affinity.WithWorkers(w), affinity.WithMinRowsPerShard(1))
		require.NoError(t, err)
		require.Equal(t, serial.Triples(), par.Triples(), "workers=%d", w)
	}
	require.True(t, serial.IsSymmetric(0))
}

func TestBuildErrors(t *testing.T) {
	ctx := context.Background()
	data := lineData(t, 3)
	ev := gaussian(t, 1, 2)

	_, err := affinity.Build(ctx, nil, ev, 0.1)
	assert.ErrorIs(t, err, affinity.ErrNilInput)
	_, err = affinity.Build(ctx, data, nil, 0.1)
	assert.ErrorIs(t, err, affinity.ErrNilInput)

	_, err = affinity.Build(ctx, data, gaussian(t, 1, 3), 0.1)
	assert.ErrorIs(t, err, affinity.ErrDimensionMismatch)

	for _, eps := range []float64{-1e-9, math.NaN(), math.Inf(1)} {
		_, err = affinity.Build(ctx, data, ev, eps)
		assert.ErrorIs(t, err, affinity.ErrInvalidEpsilon, "eps=%g", eps)
	}
}

func TestBuildCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := affinity.Build(ctx, spiralData(t, 100), gaussian(t, 1, 3), 1e-6)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOptionPanics(t *testing.T) {
	assert.PanicsWithValue(t, "affinity: WithWorkers: workers must be >= 0", func() { affinity.WithWorkers(-1) })
	assert.PanicsWithValue(t, "affinity: WithMinRowsPerShard: rows must be >= 1", func() { affinity.WithMinRowsPerShard(0) })
}
