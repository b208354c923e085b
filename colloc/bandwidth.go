package colloc

import "math"

// DefaultBandwidth returns the smoothing bandwidth used when the caller
// supplies none: span(tpoints) * n^(-1/5), floored at twice the largest
// adjacent gap so bounded kernels always cover at least two samples on
// near-uniform grids. Returns 0 for fewer than two samples.
func DefaultBandwidth(tpoints GridAccessor) float64 {
	n := tpoints.Len()
	if n < 2 {
		return 0
	}

	span := tpoints.AtVec(n-1) - tpoints.AtVec(0)
	h := span * math.Pow(float64(n), -0.2)

	maxGap := 0.0
	for i := 1; i < n; i++ {
		if g := tpoints.AtVec(i) - tpoints.AtVec(i-1); g > maxGap {
			maxGap = g
		}
	}

	if floor := 2 * maxGap; h < floor {
		h = floor
	}

	return h
}
