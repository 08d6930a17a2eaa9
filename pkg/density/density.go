// Package density draws a sample sequence as a fixed-width histogram strip.
package density

import (
	"math"

	"github.com/arthur-debert/textplot/pkg/glyph"
	"github.com/arthur-debert/textplot/pkg/logging"
	"github.com/arthur-debert/textplot/pkg/palette"
)

// flatEpsilon is the tolerance for matching the marker value on flat data.
const flatEpsilon = 1e-10

// Options are the caller-facing density settings. A non-empty Glyphs list
// takes precedence over Style.
type Options struct {
	Width       int64    `mapstructure:"width"`
	Style       string   `mapstructure:"style"`
	Glyphs      []string `mapstructure:"graph_chars"`
	Marker      string   `mapstructure:"marker"`
	MarkerValue *float64 `mapstructure:"marker_value"`
}

// DefaultOptions returns a 20 wide strip in the shaded style.
func DefaultOptions() Options {
	return Options{
		Width: 20,
		Style: palette.Default(palette.Density),
	}
}

// Config is an immutable, validated density configuration.
type Config struct {
	width  int64
	style  string
	glyphs palette.Palette

	marker      string
	markerValue float64
	hasMarker   bool
}

// New resolves the glyph set for opts.
func New(opts Options) (*Config, error) {
	if err := glyph.CheckWidth(opts.Width); err != nil {
		return nil, err
	}
	c := &Config{width: opts.Width}

	if len(opts.Glyphs) > 0 {
		c.glyphs = make(palette.Palette, len(opts.Glyphs))
		copy(c.glyphs, opts.Glyphs)
	} else {
		c.style = opts.Style
		if c.style == "" {
			c.style = palette.Default(palette.Density)
		}
		p, err := palette.Lookup(palette.Density, c.style)
		if err != nil {
			return nil, err
		}
		c.glyphs = p
	}

	if opts.Marker != "" && opts.MarkerValue != nil && !math.IsNaN(*opts.MarkerValue) {
		c.marker = opts.Marker
		c.markerValue = *opts.MarkerValue
		c.hasMarker = true
	}

	logger := logging.GetLogger("density")
	logger.Debug().
		Int64("width", c.width).
		Str("style", c.style).
		Int("levels", len(c.glyphs)).
		Bool("marker", c.hasMarker).
		Msg("Density configured")

	return c, nil
}

// Width returns the number of glyphs Render emits.
func (c *Config) Width() int64 { return c.width }

// Style returns the named style, or "" when an explicit glyph list is used.
func (c *Config) Style() string { return c.style }

// Glyphs returns a copy of the intensity glyphs, lowest first.
func (c *Config) Glyphs() palette.Palette {
	out := make(palette.Palette, len(c.glyphs))
	copy(out, c.glyphs)
	return out
}

// Render draws samples as Width glyphs. Empty input, a non-positive width or
// an empty glyph set yield "". Non-finite samples are ignored.
func (c *Config) Render(samples []float64) string {
	if c.width <= 0 || len(c.glyphs) == 0 {
		return ""
	}

	lo, hi, ok := bounds(samples)
	if !ok {
		return ""
	}

	if lo == hi {
		if c.hasMarker && math.Abs(lo-c.markerValue) < flatEpsilon {
			return glyph.Repeat(c.marker, c.width)
		}
		return glyph.Repeat(c.glyphs.Last(), c.width)
	}

	counts := histogram(samples, c.width, lo, hi)
	maxCount := 0
	for _, n := range counts {
		maxCount = max(maxCount, n)
	}
	if maxCount == 0 {
		return glyph.Repeat(c.glyphs.First(), c.width)
	}

	markerBin := -1
	if c.hasMarker && c.markerValue >= lo && c.markerValue <= hi {
		markerBin = binIndex(c.markerValue, lo, hi, c.width)
	}

	top := len(c.glyphs) - 1
	out := make([]string, len(counts))
	for i, n := range counts {
		if i == markerBin {
			out[i] = c.marker
			continue
		}
		level := int(math.Round(float64(n) / float64(maxCount) * float64(top)))
		out[i] = c.glyphs[min(max(level, 0), top)]
	}
	return glyph.Join(out)
}

// Histogram bins samples into width equal-width bins spanning their range.
// Non-finite samples are skipped. Flat data lands in the first bin. It
// returns nil when width <= 0 or no sample is finite.
func Histogram(samples []float64, width int64) []int {
	if width <= 0 {
		return nil
	}
	lo, hi, ok := bounds(samples)
	if !ok {
		return nil
	}
	if lo == hi {
		counts := make([]int, width)
		for _, s := range samples {
			if finite(s) {
				counts[0]++
			}
		}
		return counts
	}
	return histogram(samples, width, lo, hi)
}

func histogram(samples []float64, width int64, lo, hi float64) []int {
	counts := make([]int, width)
	for _, s := range samples {
		if finite(s) {
			counts[binIndex(s, lo, hi, width)]++
		}
	}
	return counts
}

// binIndex places v in [lo, hi]; the top edge belongs to the last bin.
func binIndex(v, lo, hi float64, width int64) int {
	if math.IsInf(hi-lo, 0) {
		// the range is wider than MaxFloat64; halving keeps every term finite
		v, lo, hi = v/2, lo/2, hi/2
	}
	binWidth := (hi - lo) / float64(width)
	i := int64(math.Floor((v - lo) / binWidth))
	return int(min(max(i, 0), width-1))
}

func bounds(samples []float64) (lo, hi float64, ok bool) {
	for _, s := range samples {
		if !finite(s) {
			continue
		}
		if !ok {
			lo, hi, ok = s, s, true
			continue
		}
		lo = math.Min(lo, s)
		hi = math.Max(hi, s)
	}
	return lo, hi, ok
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
