package shard_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/diffmaps/internal/shard"
)

// covers asserts that ranges tile [0, n) without gaps or overlaps.
func covers(t *testing.T, rs []shard.Range, n int) {
	t.Helper()
	lo := 0
	for _, r := range rs {
		require.Equal(t, lo, r.Lo, "ranges must be contiguous")
		require.Greater(t, r.Hi, r.Lo, "ranges must be non-empty")
		lo = r.Hi
	}
	require.Equal(t, n, lo, "ranges must end at n")
}

func TestEven(t *testing.T) {
	for _, tc := range []struct{ n, parts, minLen, want int }{
		{10, 3, 1, 3},
		{10, 20, 1, 10},
		{10, 4, 5, 2},
		{1, 8, 1, 1},
	} {
		rs := shard.Even(tc.n, tc.parts, tc.minLen)
		require.Len(t, rs, tc.want)
		covers(t, rs, tc.n)
	}
	require.Nil(t, shard.Even(0, 4, 1))
}

func TestTriangularBalancesPairs(t *testing.T) {
	const n = 1000
	rs := shard.Triangular(n, 4, 1)
	covers(t, rs, n)

	// Each range should hold close to a quarter of the n(n+1)/2 pairs.
	total := n * (n + 1) / 2
	for _, r := range rs {
		pairs := 0
		for i := r.Lo; i < r.Hi; i++ {
			pairs += i + 1
		}
		require.InDelta(t, float64(total)/4, float64(pairs), float64(total)*0.02)
	}
}

func TestTriangularSmallInputs(t *testing.T) {
	covers(t, shard.Triangular(3, 8, 1), 3)
	covers(t, shard.Triangular(5, 2, 4), 5)
	require.Nil(t, shard.Triangular(0, 2, 1))
}

func TestWorkers(t *testing.T) {
	require.Equal(t, 3, shard.Workers(3))
	require.GreaterOrEqual(t, shard.Workers(0), 1)
}
