// SPDX-License-Identifier: MIT

// Package shard partitions row ranges into contiguous work units for the
// parallel kernels (affinity evaluation, normalization, sparse MulVec).
//
// Partitions are pure functions of their inputs: the same (n, parts) always
// yields the same ranges, which keeps merged results independent of the
// goroutine schedule.
package shard

import (
	"math"
	"runtime"
)

// Range is a half-open row interval [Lo, Hi).
type Range struct {
	Lo, Hi int
}

// Len returns the number of rows covered by r.
func (r Range) Len() int { return r.Hi - r.Lo }

// Workers resolves a requested worker count: w <= 0 means GOMAXPROCS.
func Workers(w int) int {
	if w <= 0 {
		return runtime.GOMAXPROCS(0)
	}

	return w
}

// Even splits [0, n) into at most parts ranges of near-equal length,
// never producing ranges shorter than minLen (except when n < minLen).
// Empty input yields nil.
func Even(n, parts, minLen int) []Range {
	if n <= 0 {
		return nil
	}
	if minLen < 1 {
		minLen = 1
	}
	if parts < 1 {
		parts = 1
	}
	if maxParts := (n + minLen - 1) / minLen; parts > maxParts {
		parts = maxParts
	}

	out := make([]Range, 0, parts)
	base, rem := n/parts, n%parts
	lo := 0
	for p := 0; p < parts; p++ {
		size := base
		if p < rem {
			size++
		}
		out = append(out, Range{Lo: lo, Hi: lo + size})
		lo += size
	}

	return out
}

// Triangular splits [0, n) for a lower-triangular sweep where row i costs
// i+1 units, so that every range covers roughly the same number of (i, j)
// pairs with j <= i. Boundaries follow the inverse of the cumulative cost
// (i+1)(i+2)/2.
func Triangular(n, parts, minLen int) []Range {
	if n <= 0 {
		return nil
	}
	if minLen < 1 {
		minLen = 1
	}
	if parts < 1 {
		parts = 1
	}
	if maxParts := (n + minLen - 1) / minLen; parts > maxParts {
		parts = maxParts
	}

	total := float64(n) * float64(n+1) / 2
	out := make([]Range, 0, parts)
	lo := 0
	for p := 1; p <= parts && lo < n; p++ {
		hi := n
		if p < parts {
			// Solve h(h+1)/2 = total*p/parts for h.
			target := total * float64(p) / float64(parts)
			hi = int(math.Ceil((math.Sqrt(1+8*target) - 1) / 2))
			if hi < lo+minLen {
				hi = lo + minLen
			}
			if hi > n {
				hi = n
			}
		}
		out = append(out, Range{Lo: lo, Hi: hi})
		lo = hi
	}

	return out
}
