// SPDX-License-Identifier: MIT

package diffmap

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/diffmaps/affinity"
	"github.com/katalvlaran/diffmaps/eigen"
	"github.com/katalvlaran/diffmaps/kernel"
	"github.com/katalvlaran/diffmaps/matrix"
	"github.com/katalvlaran/diffmaps/normalize"
)

const opEmbed = "diffmap.Embed"

// Stage names used in log records.
const (
	StageAffinity  = "affinity"
	StageNormalize = "normalize"
	StageEigen     = "eigen"
	StageAssemble  = "assemble"
)

// Details reports intermediate results of one EmbedWithDetails call.
type Details struct {
	// Eigenvalues are all returned eigenvalues, trivial mode included, in
	// descending order.
	Eigenvalues []float64

	// Degrees is the row-sum vector of the affinity matrix.
	Degrees []float64

	// NNZ is the number of stored affinity entries.
	NNZ int

	// Components is the number of connected components of the affinity graph.
	Components int

	// Iterations and Restarts are the eigensolver counters.
	Iterations int
	Restarts   int
}

// Embed computes the nComponents-dimensional diffusion map of data.
//
// data is an n×d point set (one point per row) and is only read, so it may be
// shared between concurrent calls. spec selects the kernel; diffusionTime t
// weights coordinate c by λ_c^t.
//
// Errors (match with errors.Is):
//   - ErrInvalidShape: nil or empty data.
//   - ErrInvalidArgument: nComponents outside [1, n-2], nil spec, invalid
//     kernel parameters, negative or non-finite t, invalid Config, NaN/Inf
//     in data.
//   - ErrDegenerateInput: a point with zero total affinity.
//   - ErrConvergence: the eigensolver ran out of budget.
//   - ctx.Err() when ctx is cancelled.
func Embed(ctx context.Context, data *matrix.Dense, nComponents int, spec kernel.Spec, diffusionTime float64, opts ...Option) (*matrix.Dense, error) {
	emb, _, err := EmbedWithDetails(ctx, data, nComponents, spec, diffusionTime, opts...)

	return emb, err
}

// EmbedWithDetails is Embed that also returns pipeline diagnostics.
//
// Implementation:
//   - Stage 0: validate every argument before any kernel evaluation.
//   - Stage 1: sparse affinity matrix (parallel, thresholded).
//   - Stage 2: degree vector and P' = D^(-1/2)·K·D^(-1/2).
//   - Stage 3: nComponents+1 eigenpairs of P' nearest to 1.
//   - Stage 4: diffusion coordinates.
//
// ctx is checked between stages and inside the parallel and iterative ones.
func EmbedWithDetails(ctx context.Context, data *matrix.Dense, nComponents int, spec kernel.Spec, diffusionTime float64, opts ...Option) (*matrix.Dense, Details, error) {
	var det Details
	s := gatherSettings(opts...)

	ev, err := validate(data, nComponents, spec, diffusionTime, s.cfg)
	if err != nil {
		return nil, det, err
	}
	n, dim := data.Shape()
	log := s.logger.WithPoints(n, dim).WithComponents(nComponents)
	log.DebugContext(ctx, "embedding started", "kernel", spec, "config", s.cfg, "time", diffusionTime)

	// Stage 1.
	started := time.Now()
	K, err := affinity.Build(ctx, data, ev, s.cfg.KernelEpsilon, affinity.WithWorkers(s.cfg.Workers))
	if err != nil {
		log.LogStage(ctx, StageAffinity, started, err)
		return nil, det, fmt.Errorf("%s: %w", opEmbed, translateError(err))
	}
	det.NNZ = K.NNZ()
	det.Components, _ = K.Components()
	log.LogStage(ctx, StageAffinity, started, nil, "nnz", det.NNZ, "graph_components", det.Components)
	if det.Components > 1 {
		log.WarnContext(ctx, "affinity graph is disconnected; eigenvalue 1 is repeated and the trivial mode is not unique",
			"graph_components", det.Components, "kernel_epsilon", s.cfg.KernelEpsilon)
	}

	// Stage 2.
	started = time.Now()
	P, degree, err := normalize.Symmetric(ctx, K)
	if err != nil {
		log.LogStage(ctx, StageNormalize, started, err)
		return nil, det, fmt.Errorf("%s: %w", opEmbed, translateError(err))
	}
	det.Degrees = degree
	log.LogStage(ctx, StageNormalize, started, nil)

	// Stage 3.
	started = time.Now()
	res, err := eigen.Solve(ctx, P, nComponents+1, eigenOptions(s)...)
	if err != nil {
		log.LogStage(ctx, StageEigen, started, err)
		return nil, det, fmt.Errorf("%s: %w", opEmbed, translateError(err))
	}
	det.Eigenvalues = res.Values
	det.Iterations, det.Restarts = res.Iterations, res.Restarts
	log.LogStage(ctx, StageEigen, started, nil,
		"eigenvalues", res.Values, "iterations", res.Iterations, "restarts", res.Restarts)
	if dev := math.Abs(res.Values[0] - 1); dev > math.Sqrt(s.cfg.EigTolerance) {
		log.WarnContext(ctx, "largest eigenvalue deviates from 1; the dropped mode may not be trivial",
			"largest_eigenvalue", res.Values[0], "deviation", dev)
	}
	if err = ctx.Err(); err != nil {
		return nil, det, err
	}

	// Stage 4.
	started = time.Now()
	emb, err := Assemble(res.Values, res.Vectors, degree, diffusionTime)
	log.LogStage(ctx, StageAssemble, started, err)
	if err != nil {
		return nil, det, fmt.Errorf("%s: %w", opEmbed, err)
	}

	return emb, det, nil
}

// validate checks every argument and binds the kernel to the data dimension.
func validate(data *matrix.Dense, nComponents int, spec kernel.Spec, t float64, cfg Config) (kernel.Evaluator, error) {
	if data == nil || data.Rows() < 1 || data.Cols() < 1 {
		return nil, fmt.Errorf("%s: data must be a non-empty n×d matrix: %w", opEmbed, ErrInvalidShape)
	}
	if err := matrix.ValidateDenseFinite(data); err != nil {
		return nil, fmt.Errorf("%s: %w", opEmbed, translateError(err))
	}
	n, dim := data.Shape()
	if nComponents < 1 || nComponents > n-2 {
		return nil, invalidArgf(opEmbed, "n_components=%d outside [1, %d] for %d points", nComponents, n-2, n)
	}
	if spec == nil {
		return nil, invalidArgf(opEmbed, "nil kernel spec")
	}
	if math.IsNaN(t) || t < 0 || math.IsInf(t, 1) {
		return nil, invalidArgf(opEmbed, "diffusion time %g must be finite and >= 0", t)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", opEmbed, err)
	}

	ev, err := spec.Bind(dim)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opEmbed, translateError(err))
	}

	return ev, nil
}

func eigenOptions(s settings) []eigen.Option {
	opts := []eigen.Option{
		eigen.WithTolerance(s.cfg.EigTolerance),
		eigen.WithMaxIterations(s.cfg.EigMaxIterations),
		eigen.WithMaxRestarts(s.cfg.EigMaxRestarts),
		eigen.WithSubspaceDim(s.cfg.EigSubspaceDim),
		eigen.WithLogger(s.logger.Logger),
	}
	if s.cfg.Seed != nil {
		opts = append(opts, eigen.WithSeed(*s.cfg.Seed))
	}

	return opts
}
