// Package matrix offers the storage types of the diffusion-map pipeline.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix for data sets (n points × d features)
//     and embeddings (n points × components), with finite-only ingestion.
//   - Sparse, an immutable CSR matrix for affinity and normalized diffusion
//     matrices, assembled from COO triples and exposing a row-parallel MulVec.
//   - Validators and sentinel errors shared by the other packages.
//
// Sparse kernels split rows across goroutines (golang.org/x/sync/errgroup)
// but reduce each row sequentially, so results are bit-identical for any
// worker count.
package matrix
