// SPDX-License-Identifier: MIT

// Package diffmap: configuration.
//
// Config is the single configuration structure of the pipeline. It carries
// yaml tags so it can be embedded in a configuration file; Options override
// individual fields per call. Validation happens in Embed (or Validate) and
// reports ErrInvalidArgument, never panics.
package diffmap

import (
	"fmt"
	"math"

	"github.com/katalvlaran/diffmaps/eigen"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultKernelEpsilon is the affinity threshold below which entries are
	// dropped from the sparse affinity matrix.
	DefaultKernelEpsilon = 1e-6

	// DefaultEigTolerance is the relative residual tolerance of the solver.
	DefaultEigTolerance = eigen.DefaultTolerance

	// DefaultEigMaxIterations caps matrix-vector products in the solver.
	DefaultEigMaxIterations = eigen.DefaultMaxIterations

	// DefaultEigMaxRestarts caps solver restarts.
	DefaultEigMaxRestarts = eigen.DefaultMaxRestarts

	// DefaultEigSubspaceDim of 0 lets the solver size its Krylov subspace.
	DefaultEigSubspaceDim = eigen.DefaultSubspaceDim

	// DefaultWorkers of 0 uses GOMAXPROCS goroutines for parallel stages.
	DefaultWorkers = 0
)

// Config holds the numeric knobs of Embed.
type Config struct {
	// KernelEpsilon: affinities below this value are discarded (>= 0).
	KernelEpsilon float64 `yaml:"kernel_epsilon"`

	// EigTolerance: relative residual tolerance of the eigensolver (> 0).
	EigTolerance float64 `yaml:"eig_tolerance"`

	// EigMaxIterations: matrix-vector product budget (>= 1).
	EigMaxIterations int `yaml:"eig_max_iterations"`

	// EigMaxRestarts: restart budget (>= 0).
	EigMaxRestarts int `yaml:"eig_max_restarts"`

	// EigSubspaceDim: Krylov subspace size; 0 = automatic.
	EigSubspaceDim int `yaml:"eig_subspace_dim"`

	// Seed makes the eigensolver start vector reproducible; nil = random.
	Seed *uint64 `yaml:"seed,omitempty"`

	// Workers bounds goroutines in the parallel stages; 0 = GOMAXPROCS.
	Workers int `yaml:"workers"`
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		KernelEpsilon:    DefaultKernelEpsilon,
		EigTolerance:     DefaultEigTolerance,
		EigMaxIterations: DefaultEigMaxIterations,
		EigMaxRestarts:   DefaultEigMaxRestarts,
		EigSubspaceDim:   DefaultEigSubspaceDim,
		Workers:          DefaultWorkers,
	}
}

// Validate reports the first out-of-range field as ErrInvalidArgument.
func (c Config) Validate() error {
	const op = "Config.Validate"
	switch {
	case math.IsNaN(c.KernelEpsilon) || c.KernelEpsilon < 0 || math.IsInf(c.KernelEpsilon, 1):
		return invalidArgf(op, "kernel_epsilon=%g must be finite and >= 0", c.KernelEpsilon)
	case !(c.EigTolerance > 0) || math.IsInf(c.EigTolerance, 1):
		return invalidArgf(op, "eig_tolerance=%g must be finite and > 0", c.EigTolerance)
	case c.EigMaxIterations < 1:
		return invalidArgf(op, "eig_max_iterations=%d must be >= 1", c.EigMaxIterations)
	case c.EigMaxRestarts < 0:
		return invalidArgf(op, "eig_max_restarts=%d must be >= 0", c.EigMaxRestarts)
	case c.EigSubspaceDim < 0:
		return invalidArgf(op, "eig_subspace_dim=%d must be >= 0", c.EigSubspaceDim)
	case c.Workers < 0:
		return invalidArgf(op, "workers=%d must be >= 0", c.Workers)
	}

	return nil
}

// String renders the configuration for logs.
func (c Config) String() string {
	seed := "random"
	if c.Seed != nil {
		seed = fmt.Sprint(*c.Seed)
	}

	return fmt.Sprintf("eps=%g tol=%g max_iter=%d max_restarts=%d subspace=%d seed=%s workers=%d",
		c.KernelEpsilon, c.EigTolerance, c.EigMaxIterations, c.EigMaxRestarts, c.EigSubspaceDim, seed, c.Workers)
}
