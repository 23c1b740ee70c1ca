// SPDX-License-Identifier: MIT

package diffmap

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/diffmaps/matrix"
	"github.com/katalvlaran/diffmaps/normalize"
)

const opAssemble = "diffmap.Assemble"

// Assemble converts eigenpairs of the symmetric diffusion operator into
// diffusion coordinates.
//
// The pair with the largest eigenvalue is taken as the trivial mode and
// dropped. Every other pair c becomes column ψ_c[i] = λ_c^t · v_c[i] / sqrt(d_i);
// columns are ordered by descending eigenvalue. values and vectors may come
// in any order; the result has len(values)-1 columns.
//
// Precondition: the largest eigenvalue belongs to the trivial mode. That
// holds for the operator produced by normalize.Symmetric on a connected
// affinity graph; Embed logs a warning when it cannot be trusted.
//
// t = 0 yields the degree-rescaled eigenvectors themselves.
//
// Errors:
//   - ErrInvalidShape: fewer than two pairs, mismatched lengths, empty degree.
//   - ErrInvalidArgument: negative or non-finite t, non-positive or
//     non-finite degree, a negative eigenvalue raised to a fractional power.
func Assemble(values []float64, vectors [][]float64, degree []float64, t float64) (*matrix.Dense, error) {
	n := len(degree)
	switch {
	case len(values) < 2 || len(values) != len(vectors):
		return nil, fmt.Errorf("%s: %d values, %d vectors: %w", opAssemble, len(values), len(vectors), ErrInvalidShape)
	case n == 0:
		return nil, fmt.Errorf("%s: empty degree vector: %w", opAssemble, ErrInvalidShape)
	case math.IsNaN(t) || t < 0 || math.IsInf(t, 1):
		return nil, invalidArgf(opAssemble, "diffusion time %g must be finite and >= 0", t)
	}
	for c, v := range vectors {
		if len(v) != n {
			return nil, fmt.Errorf("%s: vector %d has length %d, want %d: %w", opAssemble, c, len(v), n, ErrInvalidShape)
		}
	}
	for i, d := range degree {
		if !(d > 0) || math.IsInf(d, 1) {
			return nil, invalidArgf(opAssemble, "degree[%d]=%g must be finite and > 0", i, d)
		}
	}

	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int { return cmp.Compare(values[b], values[a]) })
	order = order[1:] // drop the trivial mode

	k := len(order)
	weights := make([]float64, k)
	for c, id := range order {
		w := math.Pow(values[id], t)
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, invalidArgf(opAssemble, "eigenvalue %g cannot be raised to t=%g", values[id], t)
		}
		weights[c] = w
	}

	inv := normalize.InvSqrt(degree)
	data := make([]float64, n*k)
	for i := 0; i < n; i++ {
		row := data[i*k : (i+1)*k]
		for c, id := range order {
			row[c] = weights[c] * vectors[id][i] * inv[i]
		}
	}

	emb, err := matrix.NewDenseFromData(n, k, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opAssemble, translateError(err))
	}

	return emb, nil
}
