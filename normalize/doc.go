// Package normalize turns an affinity matrix K into the symmetric diffusion
// operator P' = D^(-1/2)·K·D^(-1/2), where D = diag(degree) and
// degree[i] = Σ_j K[i,j].
//
// P' is similar to the random-walk matrix D^(-1)·K, so both share their
// eigenvalues (the largest being 1), while P' stays symmetric and can be
// handled by a symmetric Krylov solver. Eigenvectors of the random walk are
// recovered as D^(-1/2)·v; InvSqrt exposes that scaling to the assembler.
//
// A zero, negative or non-finite degree makes the normalization undefined and
// is reported as ErrDegenerateDegree with the offending row.
package normalize
