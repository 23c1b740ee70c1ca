// SPDX-License-Identifier: MIT

package affinity

const (
	// DefaultWorkers is the number of concurrent shards; 0 means GOMAXPROCS.
	DefaultWorkers = 0

	// DefaultMinRowsPerShard keeps tiny inputs on a single goroutine.
	DefaultMinRowsPerShard = 32

	// cancelCheckRows is how many rows a shard processes between context checks.
	cancelCheckRows = 16
)

const (
	panicWorkersInvalid = "affinity: WithWorkers: workers must be >= 0"
	panicMinRowsInvalid = "affinity: WithMinRowsPerShard: rows must be >= 1"
)

// Option configures Build.
type Option func(*options)

type options struct {
	workers int
	minRows int
}

// WithWorkers bounds the number of concurrent shards (0 = GOMAXPROCS).
// The resulting matrix inherits the same bound for its own kernels.
// Panics on negative values.
func WithWorkers(workers int) Option {
	if workers < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) { o.workers = workers }
}

// WithMinRowsPerShard sets the smallest shard height. Panics when rows < 1.
func WithMinRowsPerShard(rows int) Option {
	if rows < 1 {
		panic(panicMinRowsInvalid)
	}

	return func(o *options) { o.minRows = rows }
}

func gatherOptions(opts ...Option) options {
	o := options{workers: DefaultWorkers, minRows: DefaultMinRowsPerShard}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
