// Package kernel evaluates pairwise affinities between feature vectors.
//
// What is a kernel here?
//
//	A kernel maps two points of the same feature space to a non-negative
//	similarity score. Diffusion maps build their Markov-like matrix from
//	these scores, so every kernel must be symmetric (k(x,y) == k(y,x)) and
//	self-affine (k(x,x) == 1).
//
// Specs and evaluators:
//
//	A Spec is a closed, validated description of a kernel variant and its
//	parameters. It may leave parameters that depend on the data dimension
//	unresolved; Bind(d) turns it into an Evaluator for d-dimensional points.
//
//	spec, err := kernel.GaussianSigma(0.1)   // gamma = 1/(2·0.1²)
//	ev, err := spec.Bind(3)
//	a := ev.Affinity(x, y)
//
// Variants:
//   - Gaussian: exp(-gamma·‖x-y‖²). Configure with WithGamma or WithSigma
//     (sigma gives gamma = 1/(2σ²)); giving both is an error; giving neither
//     defaults gamma to 1/d at Bind time.
//
// Names ("gaussian") are only resolved at configuration edges (CLI, YAML)
// through ParseKind / Parse.
package kernel
