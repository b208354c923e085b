package precise

import (
	"math/big"

	"github.com/ALTree/bigfloat"

	"github.com/cwbudde/algo-colloc/colloc/kernel"
	"github.com/cwbudde/algo-colloc/internal/bigmath"
)

// Weight evaluates the kernel at the scaled distance x, carried out at
// x's precision. Bounded kernels return exactly 0 for |x| > 1, matching
// colloc's float64 Weight.
func Weight(t kernel.Type, x *big.Float) *big.Float {
	prec := x.Prec()

	switch t {
	case kernel.Epanechnikov, kernel.Uniform, kernel.Triangular,
		kernel.Quartic, kernel.Triweight, kernel.Tricube, kernel.Cosine:
		ax := new(big.Float).SetPrec(prec).Abs(x)
		if ax.Cmp(oneAt(prec)) > 0 {
			return zeroAt(prec)
		}

		return boundedAt(t, x, ax, prec)
	case kernel.Gaussian:
		// exp(-x²/2) / √(2π)
		e := new(big.Float).SetPrec(prec).Mul(x, x)
		e.Quo(e, two(prec))
		e.Neg(e)

		den := new(big.Float).SetPrec(prec).Mul(two(prec), bigmath.Pi(prec))
		den.Sqrt(den)

		return new(big.Float).SetPrec(prec).Quo(bigfloat.Exp(e), den)
	case kernel.Logistic:
		// 1 / (eˣ + 2 + e⁻ˣ)
		den := expSum(x, prec)
		den.Add(den, two(prec))

		return new(big.Float).SetPrec(prec).Quo(oneAt(prec), den)
	case kernel.Sigmoid:
		// (2/π) / (eˣ + e⁻ˣ)
		den := expSum(x, prec)
		den.Mul(den, bigmath.Pi(prec))

		return new(big.Float).SetPrec(prec).Quo(two(prec), den)
	case kernel.Silverman:
		// ½ e⁻ᵃ sin(a + π/4), a = |x|/√2
		a := new(big.Float).SetPrec(prec).Abs(x)
		a.Quo(a, sqrt2(prec))

		arg := new(big.Float).SetPrec(prec).Quo(bigmath.Pi(prec), four(prec))
		arg.Add(arg, a)

		w := bigmath.Sin(arg)
		w.Mul(w, bigfloat.Exp(new(big.Float).SetPrec(prec).Neg(a)))
		w.Quo(w, two(prec))

		return w.SetPrec(prec)
	default:
		return zeroAt(prec)
	}
}

func boundedAt(t kernel.Type, x, ax *big.Float, prec uint) *big.Float {
	switch t {
	case kernel.Epanechnikov:
		// ¾ (1 - x²)
		u := oneMinusSquare(x, prec)

		return u.Mul(u, big.NewFloat(0.75).SetPrec(prec))
	case kernel.Uniform:
		return big.NewFloat(0.5).SetPrec(prec)
	case kernel.Triangular:
		return new(big.Float).SetPrec(prec).Sub(oneAt(prec), ax)
	case kernel.Quartic:
		// 15/16 (1 - x²)²
		u := oneMinusSquare(x, prec)
		w := new(big.Float).SetPrec(prec).Mul(u, u)

		return w.Mul(w, big.NewFloat(15.0/16.0).SetPrec(prec))
	case kernel.Triweight:
		// 35/32 (1 - x²)³
		u := oneMinusSquare(x, prec)
		w := new(big.Float).SetPrec(prec).Mul(u, u)
		w.Mul(w, u)

		return w.Mul(w, big.NewFloat(35.0/32.0).SetPrec(prec))
	case kernel.Tricube:
		// 70/81 (1 - |x|³)³
		u := new(big.Float).SetPrec(prec).Mul(ax, ax)
		u.Mul(u, ax)
		u.Sub(oneAt(prec), u)

		w := new(big.Float).SetPrec(prec).Mul(u, u)
		w.Mul(w, u)

		c := new(big.Float).SetPrec(prec).Quo(
			new(big.Float).SetPrec(prec).SetInt64(70),
			new(big.Float).SetPrec(prec).SetInt64(81))

		return w.Mul(w, c)
	case kernel.Cosine:
		// π/4 cos(πx/2)
		arg := new(big.Float).SetPrec(prec).Mul(bigmath.Pi(prec), x)
		arg.Quo(arg, two(prec))

		w := bigmath.Cos(arg)
		w.Mul(w, bigmath.Pi(prec))

		return w.Quo(w, four(prec)).SetPrec(prec)
	default:
		return zeroAt(prec)
	}
}

// expSum returns eˣ + e⁻ˣ at prec.
func expSum(x *big.Float, prec uint) *big.Float {
	px := new(big.Float).SetPrec(prec).Set(x)
	nx := new(big.Float).SetPrec(prec).Neg(x)

	return new(big.Float).SetPrec(prec).Add(bigfloat.Exp(px), bigfloat.Exp(nx))
}

// oneMinusSquare returns 1 - x² at prec.
func oneMinusSquare(x *big.Float, prec uint) *big.Float {
	u := new(big.Float).SetPrec(prec).Mul(x, x)

	return u.Sub(oneAt(prec), u)
}

func zeroAt(prec uint) *big.Float { return new(big.Float).SetPrec(prec) }

func oneAt(prec uint) *big.Float { return big.NewFloat(1).SetPrec(prec) }

func two(prec uint) *big.Float { return big.NewFloat(2).SetPrec(prec) }

func four(prec uint) *big.Float { return big.NewFloat(4).SetPrec(prec) }

func sqrt2(prec uint) *big.Float {
	s := two(prec)

	return s.Sqrt(s)
}
