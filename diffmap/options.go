// SPDX-License-Identifier: MIT

package diffmap

const panicNilLogger = "diffmap: WithLogger: nil logger"

// Option customizes one Embed call.
type Option func(*settings)

// settings is the resolved per-call configuration.
type settings struct {
	cfg    Config
	logger *Logger
}

// WithConfig replaces the whole Config. Options after it still apply.
func WithConfig(cfg Config) Option {
	return func(s *settings) { s.cfg = cfg }
}

// WithKernelEpsilon sets the affinity threshold.
func WithKernelEpsilon(eps float64) Option {
	return func(s *settings) { s.cfg.KernelEpsilon = eps }
}

// WithEigTolerance sets the eigensolver tolerance.
func WithEigTolerance(tol float64) Option {
	return func(s *settings) { s.cfg.EigTolerance = tol }
}

// WithEigMaxIterations sets the matrix-vector product budget.
func WithEigMaxIterations(n int) Option {
	return func(s *settings) { s.cfg.EigMaxIterations = n }
}

// WithEigMaxRestarts sets the restart budget.
func WithEigMaxRestarts(n int) Option {
	return func(s *settings) { s.cfg.EigMaxRestarts = n }
}

// WithEigSubspaceDim fixes the Krylov subspace size (0 = automatic).
func WithEigSubspaceDim(m int) Option {
	return func(s *settings) { s.cfg.EigSubspaceDim = m }
}

// WithSeed makes the result reproducible.
func WithSeed(seed uint64) Option {
	return func(s *settings) { s.cfg.Seed = &seed }
}

// WithWorkers bounds goroutines for the affinity, normalization and
// matrix-vector stages (0 = GOMAXPROCS).
func WithWorkers(n int) Option {
	return func(s *settings) { s.cfg.Workers = n }
}

// WithLogger routes pipeline logs to l. Panics on nil.
func WithLogger(l *Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(s *settings) { s.logger = l }
}

func gatherSettings(opts ...Option) settings {
	s := settings{cfg: DefaultConfig(), logger: NoopLogger()}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}

	return s
}
