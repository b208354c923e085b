package precise

import (
	"fmt"
	"math/big"

	"github.com/ALTree/bigfloat"

	"github.com/cwbudde/algo-colloc/colloc"
	"github.com/cwbudde/algo-colloc/colloc/kernel"
)

// guardBits is extra working precision for the per-query accumulators.
const guardBits = 32

// relTol is the relative determinant threshold below which the weighted
// normal equations are treated as singular. It mirrors the float64
// path's conditioning threshold: singularity here is structural (too
// few weighted samples), not a precision artifact.
var relTol = new(big.Float).SetMantExp(big.NewFloat(1), -40)

// Option configures an extended-precision collocation call.
type Option func(*config)

type config struct {
	kernel    kernel.Type
	bandwidth *big.Float
	query     []*big.Float
}

// WithKernel selects the smoothing kernel. The default is Triangular.
func WithKernel(t kernel.Type) Option {
	return func(c *config) {
		c.kernel = t
	}
}

// WithBandwidth supplies the smoothing bandwidth; it must be strictly
// positive. When omitted, DefaultBandwidth of the sample grid is used.
func WithBandwidth(h *big.Float) Option {
	return func(c *config) {
		c.bandwidth = h
	}
}

// WithQueryGrid selects the times at which estimates are produced.
// The default is the sample grid itself.
func WithQueryGrid(ts []*big.Float) Option {
	return func(c *config) {
		c.query = ts
	}
}

// DefaultBandwidth is the extended-precision counterpart of
// colloc.DefaultBandwidth: span * n^(-1/5), floored at twice the
// largest adjacent gap. Returns zero for fewer than two samples.
func DefaultBandwidth(tpoints []*big.Float) *big.Float {
	n := len(tpoints)
	if n < 2 {
		return new(big.Float)
	}

	prec := maxPrec(tpoints)

	span := new(big.Float).SetPrec(prec).Sub(tpoints[n-1], tpoints[0])

	exp := bigfloat.Pow(
		new(big.Float).SetPrec(prec).SetInt64(int64(n)),
		big.NewFloat(-0.2).SetPrec(prec))

	h := new(big.Float).SetPrec(prec).Mul(span, exp)

	maxGap := new(big.Float).SetPrec(prec)
	gap := new(big.Float).SetPrec(prec)

	for i := 1; i < n; i++ {
		gap.Sub(tpoints[i], tpoints[i-1])
		if gap.Cmp(maxGap) > 0 {
			maxGap.Set(gap)
		}
	}

	if floor := maxGap.Mul(maxGap, two(prec)); h.Cmp(floor) < 0 {
		h.Set(floor)
	}

	return h
}

// Collocate is the extended-precision counterpart of colloc.Collocate:
// kernel-weighted local linear regression over d×n big.Float data. All
// arithmetic is carried out at the largest input precision and both
// returned matrices hold freshly allocated values of that precision.
func Collocate(data [][]*big.Float, tpoints []*big.Float, opts ...Option) (deriv, smooth [][]*big.Float, err error) {
	cfg := config{kernel: kernel.Triangular}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	d := len(data)
	n := len(tpoints)

	if d < 1 {
		return nil, nil, fmt.Errorf("need at least 1 channel, got %d: %w", d, colloc.ErrShapeMismatch)
	}

	if n < 2 {
		return nil, nil, fmt.Errorf("need at least 2 samples, got %d: %w", n, colloc.ErrShapeMismatch)
	}

	for i, row := range data {
		if len(row) != n {
			return nil, nil, fmt.Errorf("channel %d has %d samples but tpoints has %d: %w",
				i, len(row), n, colloc.ErrShapeMismatch)
		}
	}

	if !kernel.Valid(cfg.kernel) {
		return nil, nil, fmt.Errorf("kernel tag %d: %w", cfg.kernel, kernel.ErrUnknown)
	}

	for i := 1; i < n; i++ {
		if tpoints[i].Cmp(tpoints[i-1]) <= 0 {
			return nil, nil, fmt.Errorf("tpoints[%d] is not above tpoints[%d]: %w",
				i, i-1, colloc.ErrUnordered)
		}
	}

	h := cfg.bandwidth
	if h != nil {
		if h.Sign() <= 0 {
			return nil, nil, fmt.Errorf("got %v: %w", h, colloc.ErrBandwidth)
		}
	} else {
		h = DefaultBandwidth(tpoints)
	}

	query := cfg.query
	if query == nil {
		query = tpoints
	}

	m := len(query)
	if m == 0 {
		return nil, nil, fmt.Errorf("query grid is empty: %w", colloc.ErrShapeMismatch)
	}

	prec := maxPrec(tpoints)
	for _, row := range data {
		if p := maxPrec(row); p > prec {
			prec = p
		}
	}

	deriv = newMatrix(d, m, prec)
	smooth = newMatrix(d, m, prec)

	s := newBigSolver(cfg.kernel, h, tpoints, prec)
	for q, t := range query {
		if err := s.solveAt(q, t, data, deriv, smooth); err != nil {
			return nil, nil, err
		}
	}

	return deriv, smooth, nil
}

// bigSolver mirrors the float64 solver: the weighted normal-equations
// sums depend only on the query time, so they are accumulated once per
// query point and reused across channels.
type bigSolver struct {
	kern kernel.Type
	h    *big.Float
	ts   []*big.Float
	prec uint
	work uint

	w  []*big.Float // kernel weights
	dt []*big.Float // t_j - t*

	s0, s1, s2, det    *big.Float
	b0, b1, beta0      *big.Float
	beta1, scratch, wy *big.Float
}

func newBigSolver(kern kernel.Type, h *big.Float, ts []*big.Float, prec uint) *bigSolver {
	work := prec + guardBits
	n := len(ts)

	s := &bigSolver{
		kern: kern,
		h:    h,
		ts:   ts,
		prec: prec,
		work: work,
		w:    make([]*big.Float, n),
		dt:   make([]*big.Float, n),
	}

	for j := range s.w {
		s.w[j] = new(big.Float).SetPrec(work)
		s.dt[j] = new(big.Float).SetPrec(work)
	}

	s.s0 = new(big.Float).SetPrec(work)
	s.s1 = new(big.Float).SetPrec(work)
	s.s2 = new(big.Float).SetPrec(work)
	s.det = new(big.Float).SetPrec(work)
	s.b0 = new(big.Float).SetPrec(work)
	s.b1 = new(big.Float).SetPrec(work)
	s.beta0 = new(big.Float).SetPrec(work)
	s.beta1 = new(big.Float).SetPrec(work)
	s.scratch = new(big.Float).SetPrec(work)
	s.wy = new(big.Float).SetPrec(work)

	return s
}

func (s *bigSolver) solveAt(q int, t *big.Float, data [][]*big.Float, deriv, smooth [][]*big.Float) error {
	live := 0

	s.s0.SetInt64(0)
	s.s1.SetInt64(0)
	s.s2.SetInt64(0)

	for j, tj := range s.ts {
		s.dt[j].Sub(tj, t)

		x := new(big.Float).SetPrec(s.work).Quo(s.dt[j], s.h)
		s.w[j].Set(Weight(s.kern, x))

		if s.w[j].Sign() != 0 {
			live++
		}

		s.s0.Add(s.s0, s.w[j])

		s.scratch.Mul(s.w[j], s.dt[j])
		s.s1.Add(s.s1, s.scratch)

		s.scratch.Mul(s.scratch, s.dt[j])
		s.s2.Add(s.s2, s.scratch)
	}

	if live < 2 {
		return fmt.Errorf("query %d (t=%v): bandwidth %v leaves fewer than two weighted samples: %w",
			q, t, s.h, colloc.ErrSingular)
	}

	// det = s0·s2 - s1², rejected when small relative to its terms.
	s.det.Mul(s.s0, s.s2)
	s.scratch.Mul(s.s1, s.s1)

	mag := new(big.Float).SetPrec(s.work).Abs(s.det)
	mag.Add(mag, s.scratch.Abs(s.scratch))

	s.scratch.Mul(s.s1, s.s1)
	s.det.Sub(s.det, s.scratch)

	bound := new(big.Float).SetPrec(s.work).Mul(mag, relTol)
	if s.det.Sign() == 0 || new(big.Float).Abs(s.det).Cmp(bound) <= 0 {
		return fmt.Errorf("query %d (t=%v): weighted normal equations near singular: %w",
			q, t, colloc.ErrSingular)
	}

	for i, row := range data {
		s.b0.SetInt64(0)
		s.b1.SetInt64(0)

		for j, y := range row {
			s.wy.Mul(s.w[j], y)
			s.b0.Add(s.b0, s.wy)

			s.wy.Mul(s.wy, s.dt[j])
			s.b1.Add(s.b1, s.wy)
		}

		// β0 = (s2·b0 - s1·b1)/det, β1 = (s0·b1 - s1·b0)/det
		s.beta0.Mul(s.s2, s.b0)
		s.scratch.Mul(s.s1, s.b1)
		s.beta0.Sub(s.beta0, s.scratch)
		s.beta0.Quo(s.beta0, s.det)

		s.beta1.Mul(s.s0, s.b1)
		s.scratch.Mul(s.s1, s.b0)
		s.beta1.Sub(s.beta1, s.scratch)
		s.beta1.Quo(s.beta1, s.det)

		smooth[i][q].Set(s.beta0)
		deriv[i][q].Set(s.beta1)
	}

	return nil
}

func newMatrix(d, m int, prec uint) [][]*big.Float {
	out := make([][]*big.Float, d)
	for i := range out {
		out[i] = make([]*big.Float, m)
		for q := range out[i] {
			out[i][q] = new(big.Float).SetPrec(prec)
		}
	}

	return out
}

func maxPrec(xs []*big.Float) uint {
	prec := uint(0)
	for _, x := range xs {
		if p := x.Prec(); p > prec {
			prec = p
		}
	}

	return prec
}
