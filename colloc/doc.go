// Package colloc estimates smoothed values and first derivatives of
// discretely sampled multi-channel time series, without integrating a
// differential equation.
//
// The core path, [Collocate], runs a kernel-weighted local linear
// regression: for every query time a degree-1 polynomial is fitted to
// the samples under a kernel weighting, the intercept giving the
// smoothed value and the slope the derivative. The kernel family lives
// in the kernel subpackage; the bandwidth defaults to a scale-adaptive
// rule via [DefaultBandwidth].
//
// For noise-free data, [CollocateInterp] instead delegates to an
// externally supplied interpolation method (anything satisfying
// [Interpolant], e.g. the fittable predictors of gonum's interp
// package via [FitPredictor]) and evaluates the interpolant's analytic
// derivative.
//
// Data is addressed as a d×n matrix (d channels, n samples) through the
// [Table] interface and timestamps through [Grid]; gonum's *mat.Dense
// and *mat.VecDense satisfy the required element-access capabilities,
// and [Times] adapts a plain slice. Storage without direct scalar
// element access (for example device-resident buffers) is rejected with
// [ErrCapability] before any numeric work.
//
// All calls are synchronous and deterministic, treat their inputs as
// read-only and share no state, so any number of calls may run
// concurrently without locking.
package colloc
