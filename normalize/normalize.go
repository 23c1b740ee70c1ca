// SPDX-License-Identifier: MIT

package normalize

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/diffmaps/matrix"
)

// ErrDegenerateDegree is returned when a row of the affinity matrix sums to
// zero, a negative value or a non-finite value.
var ErrDegenerateDegree = errors.New("normalize: degenerate degree")

// ErrNilMatrix is returned for a nil affinity matrix.
var ErrNilMatrix = errors.New("normalize: nil matrix")

const (
	opDegrees   = "normalize.Degrees"
	opSymmetric = "normalize.Symmetric"
)

// Option configures Symmetric.
type Option func(*options)

type options struct {
	checkSymmetry bool
	symmetryTol   float64
}

// WithSymmetryCheck makes Symmetric verify that K is symmetric within tol
// before scaling. Matrices from affinity.Build are symmetric by construction
// and skip the check by default. Panics on negative or NaN tol.
func WithSymmetryCheck(tol float64) Option {
	if !(tol >= 0) {
		panic("normalize: WithSymmetryCheck: tol must be >= 0")
	}

	return func(o *options) { o.checkSymmetry, o.symmetryTol = true, tol }
}

// Degrees returns the row sums of K.
//
// Errors:
//   - ErrNilMatrix for nil K.
//   - ErrDegenerateDegree (wrapped with the first bad row) when a sum is not
//     finite and strictly positive.
func Degrees(K *matrix.Sparse) ([]float64, error) {
	if K == nil {
		return nil, fmt.Errorf("%s: %w", opDegrees, ErrNilMatrix)
	}
	degree := K.RowSums()
	for i, d := range degree {
		if !(d > 0) || math.IsInf(d, 1) {
			return nil, fmt.Errorf("%s: row %d has degree %g: %w", opDegrees, i, d, ErrDegenerateDegree)
		}
	}

	return degree, nil
}

// InvSqrt returns d_i^(-1/2) for every entry of degree. Entries are assumed
// to have passed Degrees.
func InvSqrt(degree []float64) []float64 {
	out := make([]float64, len(degree))
	for i, d := range degree {
		out[i] = 1 / math.Sqrt(d)
	}

	return out
}

// Symmetric computes P' = D^(-1/2)·K·D^(-1/2) and returns it with the degree
// vector. K is not modified; P' shares K's sparsity pattern and worker
// configuration, and the scaling pass runs row-parallel.
//
// Errors:
//   - ErrNilMatrix, ErrDegenerateDegree, matrix.ErrAsymmetry (with
//     WithSymmetryCheck), ctx.Err().
func Symmetric(ctx context.Context, K *matrix.Sparse, opts ...Option) (*matrix.Sparse, []float64, error) {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	if K == nil {
		return nil, nil, fmt.Errorf("%s: %w", opSymmetric, ErrNilMatrix)
	}
	if o.checkSymmetry {
		if err := matrix.ValidateSymmetric(K, o.symmetryTol); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", opSymmetric, err)
		}
	}

	degree, err := Degrees(K)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opSymmetric, err)
	}
	if err = ctx.Err(); err != nil {
		return nil, nil, err
	}

	P, err := K.ScaleSymmetric(InvSqrt(degree))
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opSymmetric, err)
	}

	return P, degree, nil
}
