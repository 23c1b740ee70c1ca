// Package affinity builds the sparse symmetric affinity matrix of a data set.
//
// For n points and a bound kernel.Evaluator, Build evaluates k(x_i, x_j) for
// every pair with i >= j (the diagonal included), keeps the value when it is
// at least epsilon and mirrors it across the diagonal. The result is a CSR
// *matrix.Sparse that is exactly symmetric by construction.
//
// Work is split into contiguous row shards balanced on the area of the lower
// triangle (row i costs i+1 evaluations). Every shard fills a private triple
// buffer; buffers are concatenated in shard order and CSR assembly sorts each
// row, so the matrix does not depend on the number of workers or on the
// goroutine schedule.
//
//	ev, _ := spec.Bind(data.Cols())
//	K, err := affinity.Build(ctx, data, ev, 1e-6, affinity.WithWorkers(8))
package affinity
