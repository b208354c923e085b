// Package testutil generates deterministic sample trajectories for
// collocation tests.
package testutil

import (
	"math"
	"math/rand"
)

// UniformGrid returns n timestamps evenly spaced over [t0, t1].
func UniformGrid(t0, t1 float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = t0 + (t1-t0)*float64(i)/float64(n-1)
	}
	return out
}

// ExpDecay samples u(t) = u0*exp(p*t), the solution of u' = p*u, on the
// given grid.
func ExpDecay(u0, p float64, ts []float64) []float64 {
	out := make([]float64, len(ts))
	for i, t := range ts {
		out[i] = u0 * math.Exp(p*t)
	}
	return out
}

// Sine samples amplitude*sin(omega*t) on the given grid.
func Sine(amplitude, omega float64, ts []float64) []float64 {
	out := make([]float64, len(ts))
	for i, t := range ts {
		out[i] = amplitude * math.Sin(omega*t)
	}
	return out
}

// WithNoise returns a copy of ys perturbed by uniform noise in
// [-amplitude, amplitude] with a fixed seed for reproducibility.
func WithNoise(seed int64, amplitude float64, ys []float64) []float64 {
	out := make([]float64, len(ys))
	rng := rand.New(rand.NewSource(seed))
	for i, y := range ys {
		out[i] = y + (rng.Float64()*2-1)*amplitude
	}
	return out
}
