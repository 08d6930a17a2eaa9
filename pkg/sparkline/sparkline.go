// Package sparkline quantizes data over time into a fixed-width glyph strip.
//
// Three readings are supported. Absolute averages the samples falling in each
// output slot and maps the average to an intensity glyph. Delta shows whether
// the series goes down, stays or goes up at each slot. Trend does the same
// with five buckets, splitting moves into small and large around the median
// absolute change.
package sparkline

import (
	"github.com/arthur-debert/textplot/pkg/glyph"
	"github.com/arthur-debert/textplot/pkg/logging"
	"github.com/arthur-debert/textplot/pkg/palette"
)

// Options are the caller-facing sparkline settings. An empty Theme selects the
// mode's default palette.
type Options struct {
	Width int64  `mapstructure:"width"`
	Mode  string `mapstructure:"mode"`
	Theme string `mapstructure:"theme"`
}

// DefaultOptions returns a 20 wide absolute sparkline.
func DefaultOptions() Options {
	return Options{
		Width: 20,
		Mode:  ModeAbsolute.String(),
	}
}

// Config is an immutable, validated sparkline configuration.
type Config struct {
	width   int64
	mode    Mode
	theme   string
	palette palette.Palette
	draw    func([]float64, int64, palette.Palette) string
}

// New resolves the mode and its theme.
func New(opts Options) (*Config, error) {
	if err := glyph.CheckWidth(opts.Width); err != nil {
		return nil, err
	}

	mode, err := ParseMode(opts.Mode)
	if err != nil {
		return nil, err
	}

	theme := opts.Theme
	if theme == "" {
		theme = palette.Default(mode.Namespace())
	}
	p, err := palette.Lookup(mode.Namespace(), theme)
	if err != nil {
		return nil, err
	}

	c := &Config{
		width:   opts.Width,
		mode:    mode,
		theme:   theme,
		palette: p,
	}
	switch mode {
	case ModeDelta:
		c.draw = Delta
	case ModeTrend:
		c.draw = Trend
	default:
		c.draw = Absolute
	}

	logger := logging.GetLogger("sparkline")
	logger.Debug().
		Int64("width", c.width).
		Str("mode", mode.String()).
		Str("theme", theme).
		Msg("Sparkline configured")

	return c, nil
}

// Width returns the number of glyphs Render emits.
func (c *Config) Width() int64 { return c.width }

// Mode returns the resolved mode.
func (c *Config) Mode() Mode { return c.mode }

// Theme returns the resolved theme name.
func (c *Config) Theme() string { return c.theme }

// Palette returns a copy of the resolved palette.
func (c *Config) Palette() palette.Palette {
	out := make(palette.Palette, len(c.palette))
	copy(out, c.palette)
	return out
}

// Render draws samples. It returns "" when the mode's preconditions on sample
// count, width or palette size are not met.
func (c *Config) Render(samples []float64) string {
	if c.draw == nil {
		return ""
	}
	return c.draw(samples, c.width, c.palette)
}
