package kernel

import "math"

// Type identifies a smoothing kernel.
type Type int

const (
	Epanechnikov Type = iota
	Uniform
	Triangular
	Quartic
	Triweight
	Tricube
	Cosine
	Gaussian
	Logistic
	Sigmoid
	Silverman
)

// Metadata holds static properties of a kernel type.
type Metadata struct {
	Name string
	// Bounded reports whether the support is exactly [-1, 1].
	Bounded bool
	// Peak is the closed-form weight at x = 0.
	Peak float64
}

var metadataByType = map[Type]Metadata{
	Epanechnikov: {Name: "Epanechnikov", Bounded: true, Peak: 0.75},
	Uniform:      {Name: "Uniform", Bounded: true, Peak: 0.5},
	Triangular:   {Name: "Triangular", Bounded: true, Peak: 1},
	Quartic:      {Name: "Quartic", Bounded: true, Peak: 15.0 / 16.0},
	Triweight:    {Name: "Triweight", Bounded: true, Peak: 35.0 / 32.0},
	Tricube:      {Name: "Tricube", Bounded: true, Peak: 70.0 / 81.0},
	Cosine:       {Name: "Cosine", Bounded: true, Peak: math.Pi / 4},
	Gaussian:     {Name: "Gaussian", Bounded: false, Peak: 1 / math.Sqrt(2*math.Pi)},
	Logistic:     {Name: "Logistic", Bounded: false, Peak: 0.25},
	Sigmoid:      {Name: "Sigmoid", Bounded: false, Peak: 1 / math.Pi},
	Silverman:    {Name: "Silverman", Bounded: false, Peak: 1 / (2 * math.Sqrt2)},
}

// Valid reports whether t is a known kernel type.
func Valid(t Type) bool {
	_, ok := metadataByType[t]
	return ok
}

// Info returns static metadata for a kernel type.
func Info(t Type) Metadata {
	if m, ok := metadataByType[t]; ok {
		return m
	}

	return Metadata{}
}

// Types returns all known kernel types, bounded kernels first.
func Types() []Type {
	return []Type{
		Epanechnikov, Uniform, Triangular, Quartic, Triweight, Tricube, Cosine,
		Gaussian, Logistic, Sigmoid, Silverman,
	}
}

// Weight evaluates the kernel at the scaled distance x, typically
// (t_sample - t_query) / bandwidth. Bounded kernels return exactly 0
// for |x| > 1; the boundary value at |x| = 1 comes from the closed-form
// formula itself.
func Weight(t Type, x float64) float64 {
	switch t {
	case Epanechnikov, Uniform, Triangular, Quartic, Triweight, Tricube, Cosine:
		ax := math.Abs(x)
		if ax > 1 {
			return 0
		}

		return boundedAt(t, x, ax)
	case Gaussian:
		return math.Exp(-0.5*x*x) / math.Sqrt(2*math.Pi)
	case Logistic:
		return 1 / (math.Exp(x) + 2 + math.Exp(-x))
	case Sigmoid:
		return 2 / (math.Pi * (math.Exp(x) + math.Exp(-x)))
	case Silverman:
		a := math.Abs(x) / math.Sqrt2

		return 0.5 * math.Exp(-a) * math.Sin(a+math.Pi/4)
	default:
		return 0
	}
}

func boundedAt(t Type, x, ax float64) float64 {
	switch t {
	case Epanechnikov:
		return 0.75 * (1 - x*x)
	case Uniform:
		return 0.5
	case Triangular:
		return 1 - ax
	case Quartic:
		u := 1 - x*x

		return 15.0 / 16.0 * u * u
	case Triweight:
		u := 1 - x*x

		return 35.0 / 32.0 * u * u * u
	case Tricube:
		u := 1 - ax*ax*ax

		return 70.0 / 81.0 * u * u * u
	case Cosine:
		return math.Pi / 4 * math.Cos(math.Pi/2*x)
	default:
		return 0
	}
}
