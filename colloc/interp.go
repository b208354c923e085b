package colloc

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Interpolant evaluates an interpolating function and its analytic
// first derivative at arbitrary points.
type Interpolant interface {
	Predict(x float64) float64
	PredictDerivative(x float64) float64
}

// InterpBuilder constructs an Interpolant over one channel's samples.
// It is supplied by the caller; the engine never implements
// interpolation itself.
type InterpBuilder func(xs, ys []float64) (Interpolant, error)

// FittableDerivativePredictor matches interpolation methods in the
// style of gonum's interp package: fit once over (xs, ys), then predict
// values and derivatives. *interp.AkimaSpline and *interp.FritschButland
// satisfy it; value-only predictors such as *interp.PiecewiseLinear need
// a wrapper supplying the derivative.
type FittableDerivativePredictor interface {
	Fit(xs, ys []float64) error
	Predict(x float64) float64
	PredictDerivative(x float64) float64
}

// FitPredictor adapts a fittable-predictor factory into an
// InterpBuilder. newPredictor is called once per channel.
func FitPredictor(newPredictor func() FittableDerivativePredictor) InterpBuilder {
	return func(xs, ys []float64) (Interpolant, error) {
		p := newPredictor()
		if err := p.Fit(xs, ys); err != nil {
			return nil, err
		}

		return p, nil
	}
}

// CollocateInterp estimates values and derivatives by exact
// interpolation instead of regression, for near-noise-free data: one
// interpolant is built per channel over (tpoints, row) and evaluated,
// with its analytic derivative, at every query time.
//
// Failures of the external interpolation method are wrapped with the
// channel that triggered them and returned unmodified underneath.
func CollocateInterp(data Table, tpoints, queryTimes Grid, build InterpBuilder) (deriv, smooth *mat.Dense, err error) {
	if build == nil {
		return nil, nil, errors.New("interpolation builder must not be nil")
	}

	d, n := data.Dims()
	if err := validateShape(d, n, tpoints.Len()); err != nil {
		return nil, nil, err
	}

	acc, err := tableAccess("data", data)
	if err != nil {
		return nil, nil, err
	}

	ts, err := gridAccess("tpoints", tpoints)
	if err != nil {
		return nil, nil, err
	}

	qs, err := gridAccess("query grid", queryTimes)
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

	xs := make([]float64, n)
	for j := 0; j < n; j++ {
		xs[j] = ts.AtVec(j)
	}

	deriv = mat.NewDense(d, m, nil)
	smooth = mat.NewDense(d, m, nil)

	ys := make([]float64, n)

	for i := 0; i < d; i++ {
		for j := 0; j < n; j++ {
			ys[j] = acc.At(i, j)
		}

		ip, err := build(xs, ys)
		if err != nil {
			return nil, nil, fmt.Errorf("channel %d: interpolation: %w", i, err)
		}

		for q := 0; q < m; q++ {
			t := qs.AtVec(q)
			smooth.Set(i, q, ip.Predict(t))
			deriv.Set(i, q, ip.PredictDerivative(t))
		}
	}

	return deriv, smooth, nil
}
