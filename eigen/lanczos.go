// SPDX-License-Identifier: MIT

package eigen

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	opSolve = "eigen.Solve"

	// breakdownRel: a residual shorter than this fraction of ‖A·v_j‖ means the
	// basis spans an invariant subspace.
	breakdownRel = 1e-12

	// minRitzScale keeps the relative convergence test meaningful for Ritz
	// values at (or near) zero.
	minRitzScale = 1e-12

	// injectAttempts bounds the retries when a random direction happens to be
	// nearly inside the current basis.
	injectAttempts = 5

	// seedMix decorrelates the two PCG state words derived from one seed.
	seedMix = 0x9e3779b97f4a7c15
)

// Solve returns the k eigenpairs of the symmetric operator op whose
// eigenvalues are nearest to the shift (1 by default).
//
// Implementation:
//   - Stage 1: validate k and the options; pick the subspace size m.
//   - Stage 2: extend the Lanczos basis to m vectors with full
//     re-orthogonalization, accumulating T = VᵀAV.
//   - Stage 3: Rayleigh–Ritz on T (mat.EigenSym); accept when the k wanted
//     residual estimates meet the tolerance.
//   - Stage 4: otherwise keep l = k+(m-k)/3 Ritz vectors plus the residual
//     direction and go back to Stage 2.
//
// Behavior highlights:
//   - Values are descending; ties keep a deterministic order.
//   - Each vector has unit norm and its largest-magnitude entry is positive.
//   - ctx is checked once per Lanczos step.
//
// Errors:
//   - ErrNilOperator, ErrInvalidK (k outside [1, n-1]), ErrInvalidOption,
//     ErrNotConverged (budget exhausted), ctx.Err().
//
// Complexity:
//   - Per cycle O(m·nnz) for the products plus O(m²·n) for the
//     re-orthogonalization and O(m³) for the projected problem.
func Solve(ctx context.Context, op Operator, k int, opts ...Option) (Result, error) {
	if op == nil {
		return Result{}, fmt.Errorf("%s: %w", opSolve, ErrNilOperator)
	}
	n := op.Dim()
	if k < 1 || k > n-1 {
		return Result{}, fmt.Errorf("%s: k=%d with n=%d: %w", opSolve, k, n, ErrInvalidK)
	}

	o := gatherOptions(opts...)
	if err := validateOptions(o, k); err != nil {
		return Result{}, fmt.Errorf("%s: %w", opSolve, err)
	}

	m := o.subspace
	if m == 0 {
		m = max(2*k+1, MinAutoSubspaceDim)
	}
	m = min(m, n)

	lz := newLanczos(op, n, m, o)

	return lz.run(ctx, k)
}

func validateOptions(o Options, k int) error {
	switch {
	case !(o.tol > 0) || math.IsInf(o.tol, 1):
		return fmt.Errorf("tolerance %g: %w", o.tol, ErrInvalidOption)
	case o.maxIter < 1:
		return fmt.Errorf("max iterations %d: %w", o.maxIter, ErrInvalidOption)
	case o.maxRestarts < 0:
		return fmt.Errorf("max restarts %d: %w", o.maxRestarts, ErrInvalidOption)
	case o.subspace != 0 && o.subspace < k+1:
		return fmt.Errorf("subspace %d for k=%d: %w", o.subspace, k, ErrInvalidOption)
	case math.IsNaN(o.shift) || math.IsInf(o.shift, 0):
		return fmt.Errorf("shift %g: %w", o.shift, ErrInvalidOption)
	}

	return nil
}

// lanczos is the state of one Solve call.
type lanczos struct {
	op   Operator
	n, m int
	o    Options
	rng  *rand.Rand

	basis []float64 // (m+1)×n row-major; row j is v_j, row m the residual direction
	t     []float64 // m×m backing of the projected matrix
	w     []float64 // scratch A·v_j
	h     []float64 // scratch orthogonalization coefficients

	iterations int
	restarts   int
}

func newLanczos(op Operator, n, m int, o Options) *lanczos {
	var src rand.Source
	if o.seeded {
		src = rand.NewPCG(o.seed, o.seed^seedMix)
	} else {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}

	return &lanczos{
		op:    op,
		n:     n,
		m:     m,
		o:     o,
		rng:   rand.New(src),
		basis: make([]float64, (m+1)*n),
		t:     make([]float64, m*m),
		w:     make([]float64, n),
		h:     make([]float64, m),
	}
}

// v returns basis row j.
func (lz *lanczos) v(j int) []float64 { return lz.basis[j*lz.n : (j+1)*lz.n] }

// run drives the extend / Rayleigh–Ritz / restart cycle.
func (lz *lanczos) run(ctx context.Context, k int) (Result, error) {
	T := mat.NewSymDense(lz.m, lz.t)
	lz.randomUnit(0)
	l := 0 // vectors kept from the previous cycle

	for {
		beta, err := lz.extend(ctx, T, l)
		if err != nil {
			return Result{}, err
		}

		var es mat.EigenSym
		if !es.Factorize(T, true) {
			return Result{}, fmt.Errorf("%s: projected eigenproblem failed after %d iterations: %w",
				opSolve, lz.iterations, ErrNotConverged)
		}
		theta := es.Values(nil)
		var S mat.Dense
		es.VectorsTo(&S)

		order := lz.byShift(theta)
		worst := 0.0
		converged := true
		for _, idx := range order[:k] {
			res := math.Abs(beta * S.At(lz.m-1, idx))
			bound := lz.o.tol * math.Max(math.Abs(theta[idx]), minRitzScale)
			if res > bound {
				converged = false
			}
			worst = math.Max(worst, res/math.Max(math.Abs(theta[idx]), minRitzScale))
		}

		lz.o.logger.Debug("lanczos cycle",
			"restart", lz.restarts,
			"iterations", lz.iterations,
			"subspace", lz.m,
			"worst_residual", worst,
			"ritz_nearest", theta[order[0]],
		)

		if converged {
			return lz.result(theta, &S, order[:k]), nil
		}
		if lz.restarts >= lz.o.maxRestarts {
			return Result{}, fmt.Errorf("%s: %d iterations, %d restarts, worst residual %.3g: %w",
				opSolve, lz.iterations, lz.restarts, worst, ErrNotConverged)
		}

		l = k + (lz.m-k)/3
		l = min(l, lz.m-1)
		lz.restart(T, theta, &S, order[:l])
		lz.restarts++
	}
}

// extend grows the basis from v_l to v_{m-1}, filling T column by column, and
// returns β_m = ‖r_m‖. On return row m of the basis holds the next direction.
func (lz *lanczos) extend(ctx context.Context, T *mat.SymDense, l int) (float64, error) {
	var beta float64
	for j := l; j < lz.m; j++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if lz.iterations >= lz.o.maxIter {
			return 0, fmt.Errorf("%s: iteration budget %d exhausted after %d restarts: %w",
				opSolve, lz.o.maxIter, lz.restarts, ErrNotConverged)
		}

		vj := lz.v(j)
		lz.op.MulVec(lz.w, vj)
		lz.iterations++
		normAv := floats.Norm(lz.w, 2)

		h := lz.h[:j+1]
		clear(h)
		lz.orthogonalize(lz.w, j+1, h)
		lz.orthogonalize(lz.w, j+1, h)
		for i := 0; i <= j; i++ {
			T.SetSym(i, j, h[i])
		}

		next := lz.v(j + 1)
		if j+1 == lz.n {
			// Full basis: the Krylov space is all of R^n.
			beta = 0
			clear(next)
			break
		}
		beta = floats.Norm(lz.w, 2)
		if beta <= breakdownRel*normAv || beta == 0 {
			beta = 0
			lz.inject(j + 1)
			continue
		}
		floats.ScaleTo(next, 1/beta, lz.w)
	}

	return beta, nil
}

// orthogonalize removes from x its components along v_0..v_{cnt-1} (one
// classical Gram–Schmidt pass) and accumulates the coefficients into h.
func (lz *lanczos) orthogonalize(x []float64, cnt int, h []float64) {
	for i := 0; i < cnt; i++ {
		vi := lz.v(i)
		c := floats.Dot(vi, x)
		floats.AddScaled(x, -c, vi)
		if h != nil {
			h[i] += c
		}
	}
}

// randomUnit fills basis row j with a random unit vector orthogonal to rows
// 0..j-1 and reports whether it succeeded.
func (lz *lanczos) randomUnit(j int) bool {
	x := lz.v(j)
	for attempt := 0; attempt < injectAttempts; attempt++ {
		for i := range x {
			x[i] = lz.rng.NormFloat64()
		}
		before := floats.Norm(x, 2)
		lz.orthogonalize(x, j, nil)
		lz.orthogonalize(x, j, nil)
		nrm := floats.Norm(x, 2)
		if nrm > breakdownRel*before && nrm > 0 {
			floats.Scale(1/nrm, x)
			return true
		}
	}

	return false
}

// inject continues an exhausted Krylov sequence with a fresh direction. If no
// direction can be found the row is zeroed, which leaves T unaffected.
func (lz *lanczos) inject(j int) {
	if !lz.randomUnit(j) {
		clear(lz.v(j))
	}
}

// byShift orders Ritz indices by distance to the shift, larger values first
// on ties, then by index.
func (lz *lanczos) byShift(theta []float64) []int {
	order := make([]int, len(theta))
	for i := range order {
		order[i] = i
	}
	shift := lz.o.shift
	slices.SortStableFunc(order, func(a, b int) int {
		if c := cmp.Compare(math.Abs(theta[a]-shift), math.Abs(theta[b]-shift)); c != 0 {
			return c
		}
		return cmp.Compare(theta[b], theta[a])
	})

	return order
}

// ritz returns the Ritz vectors V·S[:, idx] as rows.
func (lz *lanczos) ritz(S *mat.Dense, idx []int) *mat.Dense {
	sel := mat.NewDense(lz.m, len(idx), nil)
	for c, id := range idx {
		for r := 0; r < lz.m; r++ {
			sel.Set(r, c, S.At(r, id))
		}
	}
	V := mat.NewDense(lz.m, lz.n, lz.basis[:lz.m*lz.n])

	var Y mat.Dense
	Y.Mul(sel.T(), V)

	return &Y
}

// restart compresses the basis to the Ritz vectors idx followed by the
// residual direction and resets T to the matching arrowhead seed diag(θ).
func (lz *lanczos) restart(T *mat.SymDense, theta []float64, S *mat.Dense, idx []int) {
	Y := lz.ritz(S, idx)
	l := len(idx)
	for i := 0; i < l; i++ {
		copy(lz.v(i), Y.RawRowView(i))
	}
	copy(lz.v(l), lz.v(lz.m))

	clear(lz.t)
	for i, id := range idx {
		T.SetSym(i, i, theta[id])
	}
}

// result assembles the accepted pairs in descending order with fixed signs.
func (lz *lanczos) result(theta []float64, S *mat.Dense, idx []int) Result {
	desc := slices.Clone(idx)
	slices.SortStableFunc(desc, func(a, b int) int { return cmp.Compare(theta[b], theta[a]) })

	Y := lz.ritz(S, desc)
	res := Result{
		Values:     make([]float64, len(desc)),
		Vectors:    make([][]float64, len(desc)),
		Iterations: lz.iterations,
		Restarts:   lz.restarts,
	}
	for i, id := range desc {
		y := mat.Row(nil, i, Y)
		if nrm := floats.Norm(y, 2); nrm > 0 {
			floats.Scale(1/nrm, y)
		}
		orient(y)
		res.Values[i] = theta[id]
		res.Vectors[i] = y
	}

	return res
}

// orient flips x so that its first largest-magnitude entry is positive.
func orient(x []float64) {
	best, at := -1.0, 0
	for i, v := range x {
		if a := math.Abs(v); a > best {
			best, at = a, i
		}
	}
	if len(x) > 0 && x[at] < 0 {
		floats.Scale(-1, x)
	}
}
