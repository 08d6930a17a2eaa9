package sparkline

import (
	"math"
	"testing"
)

func BenchmarkRender(b *testing.B) {
	samples := make([]float64, 10_000)
	for i := range samples {
		samples[i] = math.Sin(float64(i)/50) + float64(i%7)/10
	}

	for _, mode := range ModeNames() {
		c, err := New(Options{Width: 60, Mode: mode})
		if err != nil {
			b.Fatal(err)
		}
		b.Run(mode, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = c.Render(samples)
			}
		})
	}
}
