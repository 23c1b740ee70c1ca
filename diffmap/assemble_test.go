package diffmap_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/diffmaps/diffmap"
)

func TestAssembleDropsTrivialAndOrders(t *testing.T) {
	// Pairs arrive unordered; 1 is the trivial mode.
	values := []float64{0.5, 1, 0.8}
	vectors := [][]float64{
		{1, 2},
		{0.6, 0.8},
		{3, -4},
	}
	degree := []float64{4, 1}

	emb, err := diffmap.Assemble(values, vectors, degree, 2)
	require.NoError(t, err)
	r, c := emb.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)

	// Column 0 comes from λ=0.8, column 1 from λ=0.5.
	want := [][]float64{
		{0.64 * 3 / 2, 0.25 * 1 / 2},
		{0.64 * -4 / 1, 0.25 * 2 / 1},
	}
	got := emb.ToRows()
	for i := range want {
		require.InDeltaSlice(t, want[i], got[i], 1e-15)
	}
}

func TestAssembleTimeZero(t *testing.T) {
	emb, err := diffmap.Assemble(
		[]float64{1, 0.3},
		[][]float64{{1, 1, 1}, {2, -2, 6}},
		[]float64{4, 4, 9},
		0,
	)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, -1, 2}, column(t, emb, 0), 1e-15)
}

func TestAssembleNegativeEigenvalue(t *testing.T) {
	values := []float64{1, -0.25}
	vectors := [][]float64{{1, 0}, {0, 1}}
	degree := []float64{1, 1}

	emb, err := diffmap.Assemble(values, vectors, degree, 2)
	require.NoError(t, err)
	require.InDelta(t, 0.0625, column(t, emb, 0)[1], 1e-15, "integer powers keep the sign rule")

	_, err = diffmap.Assemble(values, vectors, degree, 0.5)
	assert.ErrorIs(t, err, diffmap.ErrInvalidArgument)
}

func TestAssembleErrors(t *testing.T) {
	vec := [][]float64{{1, 0}, {0, 1}}
	deg := []float64{1, 1}

	_, err := diffmap.Assemble([]float64{1}, vec[:1], deg, 1)
	assert.ErrorIs(t, err, diffmap.ErrInvalidShape, "one pair")

	_, err = diffmap.Assemble([]float64{1, 0.5}, vec[:1], deg, 1)
	assert.ErrorIs(t, err, diffmap.ErrInvalidShape, "count mismatch")

	_, err = diffmap.Assemble([]float64{1, 0.5}, [][]float64{{1, 0}, {1}}, deg, 1)
	assert.ErrorIs(t, err, diffmap.ErrInvalidShape, "short vector")

	_, err = diffmap.Assemble([]float64{1, 0.5}, vec, nil, 1)
	assert.ErrorIs(t, err, diffmap.ErrInvalidShape, "empty degree")

	_, err = diffmap.Assemble([]float64{1, 0.5}, vec, deg, -1)
	assert.ErrorIs(t, err, diffmap.ErrInvalidArgument, "negative t")

	_, err = diffmap.Assemble([]float64{1, 0.5}, vec, deg, math.Inf(1))
	assert.ErrorIs(t, err, diffmap.ErrInvalidArgument, "infinite t")

	_, err = diffmap.Assemble([]float64{1, 0.5}, vec, []float64{1, 0}, 1)
	assert.ErrorIs(t, err, diffmap.ErrInvalidArgument, "zero degree")
}
