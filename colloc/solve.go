package colloc

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-colloc/colloc/kernel"
)

// maxCond is the conditioning threshold beyond which the weighted
// normal-equations matrix is treated as singular.
const maxCond = 1e12

// solver carries the per-call scratch state of the local linear
// regression. The weighted normal-equations system XᵀWX depends only on
// the query time, so it is factorized once per query point and reused
// across all channels. The regression runs in the scaled distance
// z = (t_j - t*)/h, which keeps the conditioning check independent of
// the absolute time scale; the slope is rescaled by 1/h afterwards.
type solver struct {
	kern kernel.Type
	h    float64
	ts   GridAccessor
	d, n int

	w   []float64 // kernel weights
	dt  []float64 // (t_j - t*)/h
	wdt []float64 // w_j (t_j - t*)/h
	y   []float64 // one channel's observations
	wy  []float64 // w_j y_j

	ntm  *mat.Dense // 2×2 XᵀWX
	rhs  *mat.VecDense
	beta *mat.VecDense
	qr   mat.QR
}

func newSolver(kern kernel.Type, h float64, data TableAccessor, ts GridAccessor) *solver {
	d, n := data.Dims()

	return &solver{
		kern: kern,
		h:    h,
		ts:   ts,
		d:    d,
		n:    n,
		w:    make([]float64, n),
		dt:   make([]float64, n),
		wdt:  make([]float64, n),
		y:    make([]float64, n),
		wy:   make([]float64, n),
		ntm:  mat.NewDense(2, 2, nil),
		rhs:  mat.NewVecDense(2, nil),
		beta: mat.NewVecDense(2, nil),
	}
}

// solveAt fills column q of deriv and smooth with the local linear
// estimates at query time t for every channel.
func (s *solver) solveAt(q int, t float64, data TableAccessor, deriv, smooth *mat.Dense) error {
	live := 0

	for j := 0; j < s.n; j++ {
		z := (s.ts.AtVec(j) - t) / s.h
		s.dt[j] = z

		w := kernel.Weight(s.kern, z)
		s.w[j] = w

		if w != 0 {
			live++
		}
	}

	if live < 2 {
		return fmt.Errorf("query %d (t=%g): bandwidth %g leaves fewer than two weighted samples: %w",
			q, t, s.h, ErrSingular)
	}

	vecmath.MulBlock(s.wdt, s.w, s.dt)

	s0 := vecmath.Sum(s.w)
	s1 := vecmath.Sum(s.wdt)
	s2 := vecmath.DotProduct(s.wdt, s.dt)

	s.ntm.Set(0, 0, s0)
	s.ntm.Set(0, 1, s1)
	s.ntm.Set(1, 0, s1)
	s.ntm.Set(1, 1, s2)

	s.qr.Factorize(s.ntm)

	if c := s.qr.Cond(); math.IsNaN(c) || c > maxCond {
		return fmt.Errorf("query %d (t=%g): normal-equations condition %.3g exceeds %.3g: %w",
			q, t, c, float64(maxCond), ErrSingular)
	}

	for i := 0; i < s.d; i++ {
		for j := 0; j < s.n; j++ {
			s.y[j] = data.At(i, j)
		}

		vecmath.MulBlock(s.wy, s.w, s.y)

		s.rhs.SetVec(0, vecmath.Sum(s.wy))
		s.rhs.SetVec(1, vecmath.DotProduct(s.wy, s.dt))

		if err := s.qr.SolveVecTo(s.beta, false, s.rhs); err != nil {
			return fmt.Errorf("query %d (t=%g) channel %d: %v: %w", q, t, i, err, ErrSingular)
		}

		smooth.Set(i, q, s.beta.AtVec(0))
		// The fitted slope is per unit of scaled distance.
		deriv.Set(i, q, s.beta.AtVec(1)/s.h)
	}

	return nil
}
