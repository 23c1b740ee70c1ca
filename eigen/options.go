// SPDX-License-Identifier: MIT

// Package eigen: functional configuration for Solve.
//
// Numeric values are validated by Solve and reported as ErrInvalidOption so
// that configuration read at run time surfaces as an error; only a nil logger
// panics here.
package eigen

import (
	"log/slog"
)

const (
	// DefaultTolerance is the relative residual bound for a converged Ritz pair.
	DefaultTolerance = 1e-6

	// DefaultMaxIterations caps the number of operator applications.
	DefaultMaxIterations = 10000

	// DefaultMaxRestarts caps the number of thick restarts.
	DefaultMaxRestarts = 10

	// DefaultShift is the target the wanted eigenvalues are nearest to.
	DefaultShift = 1.0

	// DefaultSubspaceDim selects the subspace size automatically:
	// max(2k+1, MinAutoSubspaceDim), capped at the operator dimension.
	DefaultSubspaceDim = 0

	// MinAutoSubspaceDim is the smallest automatically chosen subspace.
	// Diffusion operators of long, thin manifolds have eigenvalues packed
	// within 1e-4 of each other near 1 and need long Krylov sequences.
	MinAutoSubspaceDim = 200
)

const panicNilLogger = "eigen: WithLogger: nil logger"

// Option mutates Options.
type Option func(*Options)

// Options is the effective Solve configuration.
type Options struct {
	tol         float64
	maxIter     int
	maxRestarts int
	subspace    int
	shift       float64
	seed        uint64
	seeded      bool
	logger      *slog.Logger
}

// WithTolerance sets the relative residual tolerance (> 0, finite).
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.tol = tol }
}

// WithMaxIterations caps operator applications (>= 1).
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.maxIter = n }
}

// WithMaxRestarts caps thick restarts (>= 0; 0 allows a single cycle).
func WithMaxRestarts(n int) Option {
	return func(o *Options) { o.maxRestarts = n }
}

// WithSubspaceDim fixes the Krylov subspace size m (>= k+1; values above the
// operator dimension are capped). 0 restores the automatic choice.
func WithSubspaceDim(m int) Option {
	return func(o *Options) { o.subspace = m }
}

// WithShift sets the value the wanted eigenvalues are nearest to.
func WithShift(shift float64) Option {
	return func(o *Options) { o.shift = shift }
}

// WithSeed makes the start vector reproducible. Without it every Solve draws
// an unseeded random start.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.seed, o.seeded = seed, true }
}

// WithLogger receives one Debug record per restart. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		tol:         DefaultTolerance,
		maxIter:     DefaultMaxIterations,
		maxRestarts: DefaultMaxRestarts,
		subspace:    DefaultSubspaceDim,
		shift:       DefaultShift,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
