package colloc

import (
	"testing"

	"github.com/cwbudde/algo-colloc/colloc/kernel"
)

func BenchmarkCollocate(b *testing.B) {
	data, ts := expGrid(200)

	for _, typ := range []kernel.Type{kernel.Triangular, kernel.Epanechnikov, kernel.Gaussian} {
		b.Run(kernel.Info(typ).Name, func(b *testing.B) {
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				if _, _, err := Collocate(data, ts, WithKernel(typ)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkCollocateInterp(b *testing.B) {
	data, ts, query := sinGrid()
	build := linearBuilder()

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, _, err := CollocateInterp(data, ts, query, build); err != nil {
			b.Fatal(err)
		}
	}
}
