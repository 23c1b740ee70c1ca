// Package eigen computes a few eigenpairs of a large symmetric linear
// operator.
//
// What & Why:
//
//	Diffusion maps need only the handful of eigenvalues of the normalized
//	affinity matrix that lie closest to 1. A full decomposition would cost
//	O(n³); Solve instead runs a thick-restart Lanczos iteration that touches
//	the matrix only through matrix-vector products.
//
// Algorithm (Solve):
//
//	Each cycle extends an orthonormal Krylov basis V to m vectors with full
//	re-orthogonalization (two Gram–Schmidt passes), so T = VᵀAV is formed
//	from the orthogonalization coefficients. The small projected problem is
//	solved with gonum's mat.EigenSym and the k Ritz values nearest to the
//	shift are tested against the residual bound |β_m·s_{m,i}| ≤ tol·|θ_i|.
//	When they have not converged, the basis is compressed to the best Ritz
//	vectors plus the last residual direction and the cycle repeats.
//	A vanishing residual (invariant subspace) is continued with a fresh
//	random direction, so even the identity matrix is handled.
//
// Determinism:
//
//	With WithSeed the start vector and every injected direction come from a
//	seeded PCG source and the output is reproducible. Eigenvalues are
//	returned in descending order and every eigenvector is oriented so that
//	its largest-magnitude entry is positive.
//
// PowerIteration is the classic symmetric power method for the dominant
// eigenpair, kept as a small, dependency-free reference solver.
package eigen
