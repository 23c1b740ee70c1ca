// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for sparse kernels.
// This file defines:
//   - Option (functional options over an internal Options struct),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical programmer values),
//   - gatherOptions helper that applies defaults first.
//
// Design goals:
//   - Deterministic behavior: parallel kernels partition rows with pure
//     functions and each row is reduced sequentially, so the worker count never
//     changes a result bit.
//   - No global state: every Sparse carries its own resolved Options.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers is the worker count used by parallel kernels.
	// 0 means runtime.GOMAXPROCS(0) at call time.
	DefaultWorkers = 0

	// DefaultParallelNNZ is the number of stored entries below which MulVec and
	// the scaling kernels stay on the calling goroutine. Spawning goroutines
	// for tiny matrices costs more than it saves.
	DefaultParallelNNZ = 1 << 15

	// DefaultSymmetryTol is the absolute tolerance used by IsSymmetric when
	// none is given explicitly.
	DefaultSymmetryTol = 0.0
)

// ---------- Internal panic messages ----------

const (
	panicWorkersInvalid     = "matrix: WithWorkers: workers must be >= 0"
	panicParallelNNZInvalid = "matrix: WithParallelNNZ: threshold must be >= 0"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	workers     int // >= 0; 0 = GOMAXPROCS
	parallelNNZ int // >= 0
}

// WithWorkers bounds the number of goroutines used by parallel kernels.
// 0 selects runtime.GOMAXPROCS(0). Panics on negative values.
func WithWorkers(workers int) Option {
	if workers < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = workers }
}

// WithParallelNNZ sets the nnz threshold above which kernels run in parallel.
// 0 forces the parallel path for every size (useful in tests).
func WithParallelNNZ(threshold int) Option {
	if threshold < 0 {
		panic(panicParallelNNZInvalid)
	}

	return func(o *Options) { o.parallelNNZ = threshold }
}

// gatherOptions applies defaults, then user options in order.
func gatherOptions(opts ...Option) Options {
	o := Options{
		workers:     DefaultWorkers,
		parallelNNZ: DefaultParallelNNZ,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
