package sparkline

import (
	"math"
	"sort"

	"github.com/arthur-debert/textplot/pkg/glyph"
	"github.com/arthur-debert/textplot/pkg/palette"
)

// epsilon separates "no change" from a real move.
const epsilon = 1e-10

// Absolute averages the samples mapped onto each of width slots and
// quantizes the average against the series range. Flat data renders the
// middle glyph. Slots whose samples are all NaN render the first glyph.
func Absolute(samples []float64, width int64, p palette.Palette) string {
	if len(samples) == 0 || width <= 0 || len(p) == 0 {
		return ""
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range samples {
		if !math.IsNaN(s) {
			lo = math.Min(lo, s)
			hi = math.Max(hi, s)
		}
	}
	if lo == hi {
		return glyph.Repeat(p.Middle(), width)
	}

	// a range wider than MaxFloat64 is measured at half scale
	scale := 1.0
	if math.IsInf(hi-lo, 0) {
		scale = 0.5
	}
	lo, hi = lo*scale, hi*scale

	n := len(samples)
	step := float64(n) / float64(width)
	top := len(p) - 1
	out := make([]string, width)
	for i := range out {
		start := int(float64(i) * step)
		end := int(float64(i+1) * step)
		if end <= start {
			end = start + 1
		}
		start, end = min(start, n-1), min(end, n)

		avg, count := mean(samples[start:end], scale)
		norm := (avg - lo) / (hi - lo)
		if count == 0 || math.IsNaN(norm) {
			out[i] = p.First()
			continue
		}
		level := int(math.Round(norm * float64(top)))
		out[i] = p[min(max(level, 0), top)]
	}
	return glyph.Join(out)
}

// mean averages the non-NaN samples multiplied by scale. When the plain sum
// overflows it falls back to a running mean, which stays within the range.
func mean(samples []float64, scale float64) (float64, int) {
	sum, n := 0.0, 0
	for _, s := range samples {
		if !math.IsNaN(s) {
			sum += s * scale
			n++
		}
	}
	if n == 0 || !math.IsInf(sum, 0) {
		return sum / float64(n), n
	}

	avg, k := 0.0, 0
	for _, s := range samples {
		if !math.IsNaN(s) {
			k++
			avg += (s*scale - avg) / float64(k)
		}
	}
	return avg, n
}

// Delta maps each slot onto a pair of neighbouring samples and emits
// p[0], p[1] or p[2] for a fall, no change or a rise. It needs at least two
// samples and three glyphs.
func Delta(samples []float64, width int64, p palette.Palette) string {
	n := len(samples)
	if n < 2 || width <= 0 || len(p) < palette.Delta.MinLength() {
		return ""
	}

	step := float64(n-1) / float64(width)
	out := make([]string, width)
	for i := range out {
		idx := min(int(float64(i)*step), n-2)
		change := samples[idx+1] - samples[idx]
		switch {
		case change < -epsilon:
			out[i] = p[0]
		case change > epsilon:
			out[i] = p[2]
		default:
			out[i] = p[1]
		}
	}
	return glyph.Join(out)
}

// Trend maps each slot onto one change between neighbouring samples and
// classifies it into five buckets: large fall, small fall, flat, small rise,
// large rise. A move is large when its magnitude exceeds the median
// magnitude of all non-zero changes. It needs at least two samples and five
// glyphs.
func Trend(samples []float64, width int64, p palette.Palette) string {
	n := len(samples)
	if n < 2 || width <= 0 || len(p) < palette.Trend.MinLength() {
		return ""
	}

	changes := make([]float64, n-1)
	var moves []float64
	for j := range changes {
		changes[j] = samples[j+1] - samples[j]
		if a := math.Abs(changes[j]); a > epsilon {
			moves = append(moves, a)
		}
	}
	threshold := medianMove(moves)

	step := float64(len(changes)) / float64(width)
	out := make([]string, width)
	for i := range out {
		change := changes[min(int(float64(i)*step), len(changes)-1)]
		large := math.Abs(change) > threshold
		switch {
		case change <= -epsilon && large:
			out[i] = p[0]
		case change <= -epsilon:
			out[i] = p[1]
		case change >= epsilon && large:
			out[i] = p[4]
		case change >= epsilon:
			out[i] = p[3]
		default:
			out[i] = p[2]
		}
	}
	return glyph.Join(out)
}

// medianMove returns the upper median of moves, or 0 when there are none.
func medianMove(moves []float64) float64 {
	if len(moves) == 0 {
		return 0
	}
	sort.Float64s(moves)
	return moves[len(moves)/2]
}
