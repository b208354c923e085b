package colloc

import "github.com/cwbudde/algo-colloc/colloc/kernel"

// Table is the minimal read-only view of a d×n sample block
// (d channels, n time samples).
type Table interface {
	Dims() (d, n int)
}

// TableAccessor extends Table with direct scalar element access, the
// capability the regression engine requires. gonum's mat.Matrix
// implementations satisfy it.
type TableAccessor interface {
	Table
	At(i, j int) float64
}

// Grid is the minimal read-only view of a timestamp sequence.
type Grid interface {
	Len() int
}

// GridAccessor extends Grid with direct scalar element access.
// gonum's mat.Vector implementations satisfy it.
type GridAccessor interface {
	Grid
	AtVec(i int) float64
}

// Times adapts a plain slice of timestamps to GridAccessor.
type Times []float64

func (ts Times) Len() int { return len(ts) }

func (ts Times) AtVec(i int) float64 { return ts[i] }

// Option configures a collocation call.
type Option func(*config)

type config struct {
	kernel       kernel.Type
	bandwidth    float64
	hasBandwidth bool
	query        Grid
}

func defaultConfig() config {
	return config{kernel: kernel.Triangular}
}

// WithKernel selects the smoothing kernel. The default is Triangular.
func WithKernel(t kernel.Type) Option {
	return func(c *config) {
		c.kernel = t
	}
}

// WithBandwidth supplies the smoothing bandwidth. It must be strictly
// positive; when omitted, DefaultBandwidth of the sample grid is used.
func WithBandwidth(h float64) Option {
	return func(c *config) {
		c.bandwidth = h
		c.hasBandwidth = true
	}
}

// WithQueryGrid selects the times at which estimates are produced.
// The default is the sample grid itself.
func WithQueryGrid(g Grid) Option {
	return func(c *config) {
		c.query = g
	}
}
