// Package bigmath provides the few big.Float elementary functions the
// extended-precision collocation path needs and math/big does not ship:
// π, sine and cosine. Results are accurate to the operand precision for
// precisions up to 640 bits (the stored π constant has 200 decimal
// digits).
package bigmath

import (
	"math/big"
)

// guardBits is extra working precision used during argument reduction
// and series summation.
const guardBits = 64

const piDigits = "3.14159265358979323846264338327950288419716939937510" +
	"58209749445923078164062862089986280348253421170679" +
	"82148086513282306647093844609550582231725359408128" +
	"48111745028410270193852110555964462294895493038196"

// Pi returns π rounded to prec bits.
func Pi(prec uint) *big.Float {
	p, _, err := big.ParseFloat(piDigits, 10, prec, big.ToNearestEven)
	if err != nil {
		panic("bigmath: invalid pi constant: " + err.Error())
	}

	return p
}

// Sin returns sin(x) at x's precision.
func Sin(x *big.Float) *big.Float {
	prec := x.Prec()
	work := prec + guardBits

	r := reduce(x, work)

	// Taylor series around 0; |r| <= π so terms decay rapidly.
	sum := new(big.Float).SetPrec(work).Set(r)
	term := new(big.Float).SetPrec(work).Set(r)
	r2 := new(big.Float).SetPrec(work).Mul(r, r)
	den := new(big.Float).SetPrec(work)

	for m := 1; m < 1000; m++ {
		term.Mul(term, r2)
		term.Quo(term, den.SetInt64(int64(2*m)*int64(2*m+1)))
		term.Neg(term)

		if term.Sign() == 0 {
			break
		}

		sum.Add(sum, term)

		if sum.Sign() != 0 && term.MantExp(nil) < sum.MantExp(nil)-int(work) {
			break
		}
	}

	return sum.SetPrec(prec)
}

// Cos returns cos(x) at x's precision.
func Cos(x *big.Float) *big.Float {
	prec := x.Prec()
	work := prec + guardBits

	halfPi := Pi(work)
	halfPi.Quo(halfPi, big.NewFloat(2))

	shifted := new(big.Float).SetPrec(work).Add(x, halfPi)

	return Sin(shifted).SetPrec(prec)
}

// reduce maps x into [-π, π] modulo 2π at work precision.
func reduce(x *big.Float, work uint) *big.Float {
	pi := Pi(work)
	twoPi := new(big.Float).SetPrec(work).Add(pi, pi)

	r := new(big.Float).SetPrec(work).Set(x)

	q := new(big.Float).SetPrec(work).Quo(r, twoPi)
	if qi, _ := q.Int(nil); qi.Sign() != 0 {
		k := new(big.Float).SetPrec(work).SetInt(qi)
		k.Mul(k, twoPi)
		r.Sub(r, k)
	}

	if r.Cmp(pi) > 0 {
		r.Sub(r, twoPi)
	}

	if negPi := new(big.Float).SetPrec(work).Neg(pi); r.Cmp(negPi) < 0 {
		r.Add(r, twoPi)
	}

	return r
}
