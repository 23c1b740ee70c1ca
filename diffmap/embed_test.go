package diffmap_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/diffmaps/builder"
	"github.com/katalvlaran/diffmaps/diffmap"
	"github.com/katalvlaran/diffmaps/eigen"
	"github.com/katalvlaran/diffmaps/kernel"
	"github.com/katalvlaran/diffmaps/matrix"
	"github.com/katalvlaran/diffmaps/normalize"
)

func TestEmbedHelixIsMonotonic(t *testing.T) {
	if testing.Short() {
		t.Skip("1000-point helix")
	}
	data := helix(t, 1000)

	emb, det, err := diffmap.EmbedWithDetails(context.Background(), data, 1, sigmaKernel(t, 0.1), 1, diffmap.WithSeed(1))
	require.NoError(t, err)
	r, c := emb.Shape()
	require.Equal(t, 1000, r)
	require.Equal(t, 1, c)
	coord := column(t, emb, 0)
	require.True(t, strictlyMonotonic(coord), "the first diffusion coordinate must unroll the helix")
	require.Greater(t, math.Abs(stat.Correlation(coord, builder.HelixParameters(1000), nil)), 0.95)

	require.Len(t, det.Eigenvalues, 2)
	require.InDelta(t, 1.0, det.Eigenvalues[0], 1e-6, "trivial eigenvalue")
	require.Greater(t, det.Eigenvalues[0], det.Eigenvalues[1])
	require.Equal(t, 1, det.Components)
}

func TestEmbedEigenvaluesDescending(t *testing.T) {
	_, det, err := diffmap.EmbedWithDetails(context.Background(), helix(t, 150), 4, sigmaKernel(t, 0.5), 1, diffmap.WithSeed(3))
	require.NoError(t, err)
	require.Len(t, det.Eigenvalues, 5)
	for i := 1; i < len(det.Eigenvalues); i++ {
		require.GreaterOrEqual(t, det.Eigenvalues[i-1], det.Eigenvalues[i])
	}
	require.InDelta(t, 1.0, det.Eigenvalues[0], 1e-6)
	require.Len(t, det.Degrees, 150)
	require.Positive(t, det.NNZ)
}

func TestEmbedTimeZeroIsRescaledEigenvectors(t *testing.T) {
	ctx := context.Background()
	data := helix(t, 120)
	spec := sigmaKernel(t, 0.4)

	zero, det0, err := diffmap.EmbedWithDetails(ctx, data, 2, spec, 0, diffmap.WithSeed(5))
	require.NoError(t, err)
	two, det2, err := diffmap.EmbedWithDetails(ctx, data, 2, spec, 2, diffmap.WithSeed(5))
	require.NoError(t, err)
	require.Equal(t, det0.Eigenvalues, det2.Eigenvalues)

	// ψ(t=2)[i][c] = λ_c² · ψ(t=0)[i][c].
	for c := 0; c < 2; c++ {
		lambda := det0.Eigenvalues[c+1]
		z, w := column(t, zero, c), column(t, two, c)
		for i := range z {
			require.InDelta(t, lambda*lambda*z[i], w[i], 1e-12)
		}
	}

	// t = 0 columns are unit eigenvectors of P' divided by sqrt(degree).
	inv := normalize.InvSqrt(det0.Degrees)
	var norm float64
	for i, v := range column(t, zero, 0) {
		u := v / inv[i]
		norm += u * u
	}
	require.InDelta(t, 1.0, norm, 1e-9)
}

func TestEmbedDeterministic(t *testing.T) {
	ctx := context.Background()
	data := helix(t, 200)
	spec := sigmaKernel(t, 0.3)

	a, err := diffmap.Embed(ctx, data, 2, spec, 1, diffmap.WithSeed(11), diffmap.WithWorkers(1))
	require.NoError(t, err)
	b, err := diffmap.Embed(ctx, data, 2, spec, 1, diffmap.WithSeed(11), diffmap.WithWorkers(4))
	require.NoError(t, err)
	require.Equal(t, a.ToRows(), b.ToRows(), "same seed must give the same embedding for any worker count")
}

func TestEmbedLargeEpsilonGivesDiagonalAffinity(t *testing.T) {
	log, buf := bufferLogger()
	data := helix(t, 30)

	emb, det, err := diffmap.EmbedWithDetails(context.Background(), data, 2, sigmaKernel(t, 0.1), 1,
		diffmap.WithKernelEpsilon(0.9999999), diffmap.WithSeed(2), diffmap.WithLogger(log))
	require.NoError(t, err)
	require.Equal(t, 30, det.NNZ, "only the diagonal survives")
	require.Equal(t, 30, det.Components)
	require.Equal(t, 30, emb.Rows())
	require.InDeltaSlice(t, []float64{1, 1, 1}, det.Eigenvalues, 1e-9)
	require.Contains(t, buf.String(), "affinity graph is disconnected")
}

func TestEmbedDegenerateDegree(t *testing.T) {
	// A threshold above 1 removes even the self-affinities.
	_, err := diffmap.Embed(context.Background(), helix(t, 20), 1, sigmaKernel(t, 0.1), 1, diffmap.WithKernelEpsilon(2))
	assert.ErrorIs(t, err, diffmap.ErrDegenerateInput)
	assert.ErrorIs(t, err, normalize.ErrDegenerateDegree)
}

func TestEmbedConvergenceFailure(t *testing.T) {
	_, err := diffmap.Embed(context.Background(), helix(t, 100), 2, sigmaKernel(t, 0.3), 1,
		diffmap.WithEigMaxIterations(3), diffmap.WithSeed(1))
	assert.ErrorIs(t, err, diffmap.ErrConvergence)
	assert.ErrorIs(t, err, eigen.ErrNotConverged)
}

func TestEmbedInvalidArguments(t *testing.T) {
	ctx := context.Background()
	data := helix(t, 10)
	spec := sigmaKernel(t, 0.5)

	cases := []struct {
		name string
		run  func() error
		want error
	}{
		{"nil data", func() error {
			_, err := diffmap.Embed(ctx, nil, 1, spec, 1)
			return err
		}, diffmap.ErrInvalidShape},
		{"empty data", func() error {
			_, err := diffmap.Embed(ctx, &matrix.Dense{}, 1, spec, 1)
			return err
		}, diffmap.ErrInvalidShape},
		{"components n-1", func() error {
			_, err := diffmap.Embed(ctx, data, 9, spec, 1)
			return err
		}, diffmap.ErrInvalidArgument},
		{"components 0", func() error {
			_, err := diffmap.Embed(ctx, data, 0, spec, 1)
			return err
		}, diffmap.ErrInvalidArgument},
		{"nil spec", func() error {
			_, err := diffmap.Embed(ctx, data, 1, nil, 1)
			return err
		}, diffmap.ErrInvalidArgument},
		{"negative time", func() error {
			_, err := diffmap.Embed(ctx, data, 1, spec, -0.5)
			return err
		}, diffmap.ErrInvalidArgument},
		{"nan time", func() error {
			_, err := diffmap.Embed(ctx, data, 1, spec, math.NaN())
			return err
		}, diffmap.ErrInvalidArgument},
		{"negative epsilon", func() error {
			_, err := diffmap.Embed(ctx, data, 1, spec, 1, diffmap.WithKernelEpsilon(-1))
			return err
		}, diffmap.ErrInvalidArgument},
		{"zero tolerance", func() error {
			_, err := diffmap.Embed(ctx, data, 1, spec, 1, diffmap.WithEigTolerance(0))
			return err
		}, diffmap.ErrInvalidArgument},
		{"subspace too small", func() error {
			_, err := diffmap.Embed(ctx, data, 2, spec, 1, diffmap.WithEigSubspaceDim(2))
			return err
		}, diffmap.ErrInvalidArgument},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.run(), tc.want)
		})
	}

	// n_components = n-2 is the largest accepted value.
	_, err := diffmap.Embed(ctx, data, 8, spec, 1, diffmap.WithSeed(1))
	assert.NoError(t, err)
}

func TestParseKernel(t *testing.T) {
	gamma, sigma := 1.0, 0.5

	_, err := diffmap.ParseKernel("gaussian", kernel.Params{Gamma: &gamma, Sigma: &sigma})
	assert.ErrorIs(t, err, diffmap.ErrInvalidArgument)
	assert.ErrorIs(t, err, kernel.ErrConflictingParams)

	_, err = diffmap.ParseKernel("epanechnikov", kernel.Params{})
	assert.ErrorIs(t, err, diffmap.ErrInvalidArgument)
	assert.ErrorIs(t, err, kernel.ErrUnknownKernel)

	negative := -1.0
	_, err = diffmap.ParseKernel("gaussian", kernel.Params{Sigma: &negative})
	assert.ErrorIs(t, err, diffmap.ErrInvalidArgument)

	spec, err := diffmap.ParseKernel("gaussian", kernel.Params{Sigma: &sigma})
	require.NoError(t, err)
	require.Equal(t, kernel.KindGaussian, spec.Kind())
}

func TestEmbedCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := diffmap.Embed(ctx, helix(t, 50), 1, sigmaKernel(t, 0.3), 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEmbedLogsStages(t *testing.T) {
	log, buf := bufferLogger()
	_, err := diffmap.Embed(context.Background(), helix(t, 60), 1, sigmaKernel(t, 0.5), 1,
		diffmap.WithSeed(4), diffmap.WithLogger(log))
	require.NoError(t, err)

	out := buf.String()
	for _, stage := range []string{diffmap.StageAffinity, diffmap.StageNormalize, diffmap.StageEigen, diffmap.StageAssemble} {
		assert.Contains(t, out, "stage="+stage)
	}
	assert.Contains(t, out, "points=60")
	assert.NotContains(t, out, "level=WARN")
}
