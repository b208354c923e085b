// Package kernel provides the smoothing-kernel function family used by
// kernel-weighted local regression.
//
// Available kernels, grouped by support:
//
//   - Bounded, support [-1, 1]: [Epanechnikov], [Uniform], [Triangular],
//     [Quartic], [Triweight], [Tricube], [Cosine]
//   - Unbounded, support ℝ: [Gaussian], [Logistic], [Sigmoid], [Silverman]
//
// All kernels are stateless tags; [Weight] evaluates the closed-form
// weight at a scaled distance. Bounded kernels return exactly 0 outside
// [-1, 1] and the closed-form value on the boundary itself. [Info]
// returns static metadata and [Analyze] computes integral properties
// (second moment, roughness, relative efficiency) numerically.
package kernel
