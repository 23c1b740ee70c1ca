// Package diffmaps is a pure-Go toolkit for diffusion-map embeddings of point
// clouds: from kernel affinities to the leading eigenvectors of the diffusion
// operator and the final low-dimensional coordinates.
//
// 🚀 What is in the box?
//
//	• Kernels: Gaussian affinities with gamma/sigma parameterization
//	• Sparse affinity matrices built in parallel, thresholded and exactly symmetric
//	• Symmetric normalization D^(-1/2)·K·D^(-1/2) with degree diagnostics
//	• Thick-restart Lanczos eigensolver on top of gonum, plus a power method
//	• Diffusion coordinates λ^t·v/sqrt(d) with configurable diffusion time
//	• Synthetic manifolds (helix, circle, swiss roll) and a CLI
//
// ✨ Why diffmaps?
//
//   - Deterministic – a fixed seed gives bit-identical output for any worker count
//   - Sparse end to end – the n×n kernel matrix is never stored densely
//   - One error taxonomy – every failure matches a diffmap sentinel via errors.Is
//   - Context-aware – long stages stop promptly on cancellation
//
// Packages:
//
//	diffmap/   - Embed, EmbedWithDetails, Assemble, Config, Logger, error taxonomy
//	kernel/    - kernel specs (Gaussian) and evaluators
//	affinity/  - parallel sparse affinity matrix
//	normalize/ - degrees and the symmetric diffusion operator
//	eigen/     - Lanczos and power-iteration eigensolvers
//	matrix/    - Dense and CSR Sparse storage, validators
//	builder/   - helix, circle and swiss-roll point clouds
//	cmd/diffmap - command-line front end (cobra, YAML config, CSV I/O)
//
// Quick example (unroll a helix):
//
//	data, _ := builder.Helix(1000)
//	spec, _ := kernel.GaussianSigma(0.1)
//	emb, err := diffmap.Embed(ctx, data, 1, spec, 1, diffmap.WithSeed(42))
//	// emb is 1000×1 and monotonic along the helix.
//
//	go install github.com/katalvlaran/diffmaps/cmd/diffmap@latest
package diffmaps
