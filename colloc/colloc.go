package colloc

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-colloc/colloc/kernel"
)

// Collocate estimates, for every channel of data and every query time,
// a smoothed value and a first derivative by kernel-weighted local
// linear regression over (tpoints, data).
//
// data is d×n (one row per channel), tpoints is the length-n strictly
// increasing sample grid. By default estimates are produced at the
// sample times themselves with the Triangular kernel and the
// DefaultBandwidth of the grid; see WithQueryGrid, WithKernel and
// WithBandwidth.
//
// The returned matrices are freshly allocated and d×m, where m is the
// query grid length. No partial result is returned on error.
func Collocate(data Table, tpoints Grid, opts ...Option) (deriv, smooth *mat.Dense, err error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	d, n := data.Dims()
	if err := validateShape(d, n, tpoints.Len()); err != nil {
		return nil, nil, err
	}

	if !kernel.Valid(cfg.kernel) {
		return nil, nil, fmt.Errorf("kernel tag %d: %w", cfg.kernel, kernel.ErrUnknown)
	}

	acc, err := tableAccess("data", data)
	if err != nil {
		return nil, nil, err
	}

	ts, err := gridAccess("tpoints", tpoints)
	if err != nil {
		return nil, nil, err
	}

	query := cfg.query
	if query == nil {
		query = tpoints
	}

	qs, err := gridAccess("query grid", query)
	if err != nil {
		return nil, nil, err
	}

	m := qs.Len()
	if m == 0 {
		return nil, nil, fmt.Errorf("query grid is empty: %w", ErrShapeMismatch)
	}

	if err := validateOrdered(ts); err != nil {
		return nil, nil, err
	}

	h := cfg.bandwidth
	if cfg.hasBandwidth {
		if h <= 0 {
			return nil, nil, fmt.Errorf("got %g: %w", h, ErrBandwidth)
		}
	} else {
		h = DefaultBandwidth(ts)
	}

	deriv = mat.NewDense(d, m, nil)
	smooth = mat.NewDense(d, m, nil)

	s := newSolver(cfg.kernel, h, acc, ts)
	for q := 0; q < m; q++ {
		if err := s.solveAt(q, qs.AtVec(q), acc, deriv, smooth); err != nil {
			return nil, nil, err
		}
	}

	return deriv, smooth, nil
}
