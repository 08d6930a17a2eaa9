// Package bar renders a scalar as a fixed-width horizontal bar.
//
// A Config is built once from Options with New, which resolves every glyph the
// bar can emit. Render is then a pure function of the value: it never fails
// and is safe for concurrent use.
package bar

import (
	"math"
	"strings"

	"github.com/arthur-debert/textplot/pkg/glyph"
	"github.com/arthur-debert/textplot/pkg/logging"
	"github.com/arthur-debert/textplot/pkg/palette"
	"github.com/arthur-debert/textplot/pkg/threshold"
)

const (
	defaultOnColor  = "red"
	defaultOffColor = "white"
)

// Options are the caller-facing bar settings.
type Options struct {
	Min        float64               `mapstructure:"min"`
	Max        float64               `mapstructure:"max"`
	Width      int64                 `mapstructure:"width"`
	On         string                `mapstructure:"on"`
	Off        string                `mapstructure:"off"`
	OnColor    string                `mapstructure:"on_color"`
	OffColor   string                `mapstructure:"off_color"`
	Shape      string                `mapstructure:"shape"`
	Filled     bool                  `mapstructure:"filled"`
	Thresholds []threshold.Threshold `mapstructure:"thresholds"`
}

// DefaultOptions returns a 10 wide red-on-white square bar over [0, 1].
func DefaultOptions() Options {
	return Options{
		Min:      0,
		Max:      1,
		Width:    10,
		OnColor:  defaultOnColor,
		OffColor: defaultOffColor,
		Shape:    palette.Square.String(),
		Filled:   true,
	}
}

// Config is an immutable, validated bar configuration.
type Config struct {
	min, max   float64
	width      int64
	filled     bool
	shape      palette.Shape
	thresholds threshold.List

	offGlyph string
	onGlyph  string
	// onGlyphs parallels thresholds when the on glyph depends on the value
	onGlyphs []string
}

// New validates opts and resolves its glyphs. Unknown shapes, colors and
// malformed thresholds are reported here so that Render cannot fail.
func New(opts Options) (*Config, error) {
	logger := logging.GetLogger("bar")

	if err := glyph.CheckWidth(opts.Width); err != nil {
		return nil, err
	}

	shape, err := palette.ParseShape(opts.Shape)
	if err != nil {
		return nil, err
	}

	thresholds, err := threshold.NewList(opts.Thresholds)
	if err != nil {
		return nil, err
	}

	c := &Config{
		min:        opts.Min,
		max:        opts.Max,
		width:      opts.Width,
		filled:     opts.Filled,
		shape:      shape,
		thresholds: thresholds,
	}

	c.offGlyph = opts.Off
	if c.offGlyph == "" {
		if c.offGlyph, err = palette.ShapeGlyph(shape, orDefault(opts.OffColor, defaultOffColor)); err != nil {
			return nil, err
		}
	}

	switch {
	case opts.On != "":
		c.onGlyph = opts.On
	case len(thresholds) == 0:
		if c.onGlyph, err = palette.ShapeGlyph(shape, orDefault(opts.OnColor, defaultOnColor)); err != nil {
			return nil, err
		}
	default:
		c.onGlyphs = make([]string, len(thresholds))
		for i, t := range thresholds {
			if c.onGlyphs[i], err = palette.ShapeGlyph(shape, t.Color); err != nil {
				return nil, err
			}
		}
	}

	logger.Debug().
		Float64("min", c.min).
		Float64("max", c.max).
		Int64("width", c.width).
		Str("shape", shape.String()).
		Bool("filled", c.filled).
		Int("thresholds", len(thresholds)).
		Msg("Bar configured")

	return c, nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// Width returns the number of glyphs Render emits.
func (c *Config) Width() int64 { return c.width }

// Range returns the configured min and max.
func (c *Config) Range() (float64, float64) { return c.min, c.max }

// Filled reports whether the bar fills up to the value or only marks it.
func (c *Config) Filled() bool { return c.filled }

// Shape returns the glyph family.
func (c *Config) Shape() palette.Shape { return c.shape }

// Thresholds returns a copy of the sorted threshold list.
func (c *Config) Thresholds() threshold.List {
	out := make(threshold.List, len(c.thresholds))
	copy(out, c.thresholds)
	return out
}

// Proportion maps value into [0, 1] against the configured range.
//
// A NaN value maps to 0. When min == max the range is a single point and the
// result is a step: 1 at or above max, 0 below it.
func (c *Config) Proportion(value float64) float64 {
	if math.IsNaN(value) {
		return 0
	}
	if c.max == c.min {
		if value >= c.max {
			return 1
		}
		return 0
	}
	p := (value - c.min) / (c.max - c.min)
	switch {
	case math.IsNaN(p):
		return 0
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// FilledCount is the number of "on" cells for value, rounded half away from
// zero.
func (c *Config) FilledCount(value float64) int64 {
	if c.width <= 0 {
		return 0
	}
	return int64(math.Round(float64(c.width) * c.Proportion(value)))
}

func (c *Config) on(value float64) string {
	if c.onGlyphs == nil {
		return c.onGlyph
	}
	return c.onGlyphs[threshold.Index(value, c.thresholds)]
}

// Render draws value as exactly Width glyphs. Width <= 0 yields "".
func (c *Config) Render(value float64) string {
	if c.width <= 0 {
		return ""
	}

	filled := c.FilledCount(value)
	on := c.on(value)

	var b strings.Builder
	b.Grow(int(c.width) * max(len(on), len(c.offGlyph)))
	for i := int64(0); i < c.width; i++ {
		lit := i < filled
		if !c.filled {
			lit = filled > 0 && i == filled-1
		}
		if lit {
			b.WriteString(on)
		} else {
			b.WriteString(c.offGlyph)
		}
	}
	return b.String()
}
