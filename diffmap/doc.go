// Package diffmap computes diffusion-map embeddings.
//
// What is a diffusion map?
//
//	Given n points in a feature space, a kernel turns pairwise distances
//	into affinities, the affinities define a random walk on the points and
//	the leading eigenvectors of that walk become new coordinates. Points
//	that are well connected through many short paths land close together,
//	which recovers the intrinsic geometry of curved manifolds (a helix is
//	unrolled into a line).
//
// Pipeline (Embed):
//
//	data ─► kernel.Evaluator ─► affinity.Build ─► normalize.Symmetric
//	     ─► eigen.Solve (k = components+1 pairs nearest to 1) ─► Assemble
//
// Assemble drops the trivial eigenpair (eigenvalue 1, constant after
// rescaling), weights every remaining eigenvector by λ^t and undoes the
// degree normalization: ψ_c[i] = λ_c^t · v_c[i] / sqrt(d_i).
//
// Errors:
//
//	Every failure matches exactly one of ErrInvalidShape, ErrInvalidArgument,
//	ErrDegenerateInput or ErrConvergence with errors.Is; the sentinel of the
//	package that detected the problem stays matchable as well.
//
// Configuration:
//
//	Defaults live in DefaultConfig(); Config carries yaml tags so the same
//	struct can be read from a file (see cmd/diffmap). Options override it
//	per call. Logging goes through Logger (log/slog); the default discards.
//
// Example:
//
//	spec, _ := kernel.GaussianSigma(0.1)
//	emb, err := diffmap.Embed(ctx, data, 2, spec, 1,
//		diffmap.WithSeed(7), diffmap.WithLogger(diffmap.NewTextLogger(slog.LevelDebug)))
package diffmap
