package density

import (
	"math/rand"
	"testing"
)

func BenchmarkRender(b *testing.B) {
	sizes := []struct {
		name    string
		samples int
		width   int64
	}{
		{"Small", 100, 20},
		{"Medium", 10_000, 40},
		{"Large", 1_000_000, 80},
	}

	for _, sz := range sizes {
		rng := rand.New(rand.NewSource(42))
		samples := make([]float64, sz.samples)
		for i := range samples {
			samples[i] = rng.NormFloat64()
		}
		opts := DefaultOptions()
		opts.Width = sz.width
		c, err := New(opts)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(sz.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = c.Render(samples)
			}
		})
	}
}
