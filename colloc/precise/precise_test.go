package precise

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-colloc/colloc"
	"github.com/cwbudde/algo-colloc/colloc/kernel"
)

const testPrec = 200

func bigAt(v float64, prec uint) *big.Float {
	return new(big.Float).SetPrec(prec).SetFloat64(v)
}

func TestWeightPrecisionAllKernels(t *testing.T) {
	for _, typ := range kernel.Types() {
		t.Run(kernel.Info(typ).Name, func(t *testing.T) {
			for _, x := range []float64{-1.5, -1, -0.3, 0, 0.3, 0.77, 1, 1.5} {
				w := Weight(typ, bigAt(x, testPrec))

				if got := w.Prec(); got != testPrec {
					t.Fatalf("Weight(%g) precision %d, want %d", x, got, testPrec)
				}

				want := kernel.Weight(typ, x)
				got, _ := w.Float64()

				if math.Abs(got-want) > 1e-14 {
					t.Fatalf("Weight(%g)=%v, float64 path gives %v", x, got, want)
				}
			}
		})
	}
}

func TestWeightPeaks(t *testing.T) {
	for _, typ := range kernel.Types() {
		got, _ := Weight(typ, bigAt(0, testPrec)).Float64()
		if want := kernel.Info(typ).Peak; math.Abs(got-want) > 1e-15 {
			t.Fatalf("%s: Weight(0)=%v, want %v", kernel.Info(typ).Name, got, want)
		}
	}
}

func TestWeightBoundedOutsideSupport(t *testing.T) {
	for _, typ := range kernel.Types() {
		if !kernel.Info(typ).Bounded {
			continue
		}

		for _, x := range []float64{-2, -1.0001, 1.0001, 2} {
			if w := Weight(typ, bigAt(x, testPrec)); w.Sign() != 0 {
				t.Fatalf("%s: Weight(%g)=%v, want exactly 0", kernel.Info(typ).Name, x, w)
			}
		}
	}
}

func expGridBig(n int, prec uint) ([][]*big.Float, []*big.Float) {
	ts := make([]*big.Float, n)
	row := make([]*big.Float, n)

	for j := 0; j < n; j++ {
		tf := 10 * float64(j) / float64(n-1)
		ts[j] = bigAt(tf, prec)
		row[j] = bigAt(math.Exp(-0.001*tf), prec)
	}

	return [][]*big.Float{row}, ts
}

func TestCollocatePrecisionPreserved(t *testing.T) {
	for _, typ := range kernel.Types() {
		t.Run(kernel.Info(typ).Name, func(t *testing.T) {
			data, ts := expGridBig(20, testPrec)

			deriv, smooth, err := Collocate(data, ts, WithKernel(typ))
			if err != nil {
				t.Fatalf("Collocate: %v", err)
			}

			for _, out := range [][][]*big.Float{deriv, smooth} {
				if len(out) != 1 || len(out[0]) != 20 {
					t.Fatalf("output is %d×%d, want 1×20", len(out), len(out[0]))
				}

				for q, v := range out[0] {
					if v.Prec() != testPrec {
						t.Fatalf("output[0][%d] precision %d, want %d", q, v.Prec(), testPrec)
					}
				}
			}
		})
	}
}

func TestCollocateMatchesFloat64Path(t *testing.T) {
	const n = 30

	data, ts := expGridBig(n, testPrec)

	fdata := mat.NewDense(1, n, nil)
	fts := make(colloc.Times, n)

	for j := 0; j < n; j++ {
		fts[j], _ = ts[j].Float64()
		v, _ := data[0][j].Float64()
		fdata.Set(0, j, v)
	}

	h := 2.0

	for _, typ := range kernel.Types() {
		t.Run(kernel.Info(typ).Name, func(t *testing.T) {
			bderiv, bsmooth, err := Collocate(data, ts, WithKernel(typ), WithBandwidth(bigAt(h, testPrec)))
			if err != nil {
				t.Fatalf("precise: %v", err)
			}

			fderiv, fsmooth, err := colloc.Collocate(fdata, fts, colloc.WithKernel(typ), colloc.WithBandwidth(h))
			if err != nil {
				t.Fatalf("float64: %v", err)
			}

			for q := 0; q < n; q++ {
				bs, _ := bsmooth[0][q].Float64()
				if fs := fsmooth.At(0, q); math.Abs(bs-fs) > 1e-9 {
					t.Fatalf("smooth[%d]: big=%v float64=%v", q, bs, fs)
				}

				bd, _ := bderiv[0][q].Float64()
				if fd := fderiv.At(0, q); math.Abs(bd-fd) > 1e-9 {
					t.Fatalf("deriv[%d]: big=%v float64=%v", q, bd, fd)
				}
			}
		})
	}
}

func TestCollocateLinearExact(t *testing.T) {
	// Affine data: β0 and β1 are exact up to the working precision,
	// far beyond float64.
	const n = 10

	ts := make([]*big.Float, n)
	row := make([]*big.Float, n)

	for j := 0; j < n; j++ {
		ts[j] = bigAt(float64(j), testPrec)
		row[j] = bigAt(2*float64(j)+1, testPrec)
	}

	deriv, smooth, err := Collocate([][]*big.Float{row}, ts,
		WithKernel(kernel.Epanechnikov), WithBandwidth(bigAt(3, testPrec)))
	if err != nil {
		t.Fatalf("Collocate: %v", err)
	}

	bound := new(big.Float).SetMantExp(big.NewFloat(1), -150)

	for q := 0; q < n; q++ {
		dv := new(big.Float).Sub(smooth[0][q], row[q])
		if dv.Abs(dv).Cmp(bound) > 0 {
			t.Fatalf("smooth[%d] off by %v, want < 2^-150", q, dv)
		}

		ds := new(big.Float).Sub(deriv[0][q], bigAt(2, testPrec))
		if ds.Abs(ds).Cmp(bound) > 0 {
			t.Fatalf("deriv[%d] off by %v, want < 2^-150", q, ds)
		}
	}
}

func TestCollocateSingular(t *testing.T) {
	data, ts := expGridBig(100, testPrec)

	_, _, err := Collocate(data, ts,
		WithKernel(kernel.Epanechnikov),
		WithBandwidth(bigAt(0.001, testPrec)))
	if !errors.Is(err, colloc.ErrSingular) {
		t.Fatalf("err=%v, want colloc.ErrSingular", err)
	}
}

func TestCollocateValidation(t *testing.T) {
	data, ts := expGridBig(10, testPrec)

	if _, _, err := Collocate(data, ts[:9]); !errors.Is(err, colloc.ErrShapeMismatch) {
		t.Fatalf("short tpoints: err=%v, want ErrShapeMismatch", err)
	}

	if _, _, err := Collocate(data, ts, WithBandwidth(bigAt(0, testPrec))); !errors.Is(err, colloc.ErrBandwidth) {
		t.Fatalf("zero bandwidth: err=%v, want ErrBandwidth", err)
	}

	swapped := append([]*big.Float(nil), ts...)
	swapped[3], swapped[4] = swapped[4], swapped[3]

	if _, _, err := Collocate(data, swapped); !errors.Is(err, colloc.ErrUnordered) {
		t.Fatalf("unordered: err=%v, want ErrUnordered", err)
	}

	if _, _, err := Collocate(data, ts, WithKernel(kernel.Type(42))); !errors.Is(err, kernel.ErrUnknown) {
		t.Fatalf("unknown kernel: err=%v, want kernel.ErrUnknown", err)
	}
}

func TestDefaultBandwidthMatchesFloat64(t *testing.T) {
	_, ts := expGridBig(100, testPrec)

	fts := make(colloc.Times, len(ts))
	for j, v := range ts {
		fts[j], _ = v.Float64()
	}

	got, _ := DefaultBandwidth(ts).Float64()
	want := colloc.DefaultBandwidth(fts)

	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("DefaultBandwidth=%v, float64 path gives %v", got, want)
	}
}
