package sparkline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/textplot/pkg/errors"
	"github.com/arthur-debert/textplot/pkg/glyph"
	"github.com/arthur-debert/textplot/pkg/palette"
)

func mustNew(t *testing.T, opts Options) *Config {
	t.Helper()
	c, err := New(opts)
	require.NoError(t, err)
	return c
}

func theme(t *testing.T, ns palette.Namespace, name string) palette.Palette {
	t.Helper()
	p, err := palette.Lookup(ns, name)
	require.NoError(t, err)
	return p
}

func TestAbsoluteFlatUsesMiddleGlyph(t *testing.T) {
	c := mustNew(t, Options{Width: 4, Theme: "utf8_blocks"})
	assert.Equal(t, "▄▄▄▄", c.Render([]float64{5, 5, 5}))

	// multi-byte glyphs are repeated whole
	hearts := theme(t, palette.Absolute, "hearts")
	assert.Equal(t, "💛💛", Absolute([]float64{1, 1}, 2, hearts))
}

func TestAbsolute(t *testing.T) {
	blocks := theme(t, palette.Absolute, "utf8_blocks")
	ramp := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8}

	tests := []struct {
		name    string
		samples []float64
		width   int64
		want    string
	}{
		{"one sample per slot", ramp, 9, " ▁▂▃▄▅▆▇█"},
		{"downsampled", ramp, 3, "▁▄▇"},
		{"upsampled", []float64{0, 10}, 4, "  ██"},
		{"single slot", []float64{0, 10}, 1, "▄"},
		{"range wider than MaxFloat64", []float64{-1e308, 1e308, 0}, 3, " █▄"},
		{"slot sum overflows", []float64{1e308, 1e308, 1e308, 1e308, -1e308, -1e308, -1e308, -1e308}, 2, "█ "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Absolute(tt.samples, tt.width, blocks))
		})
	}
}

func TestDelta(t *testing.T) {
	c := mustNew(t, Options{Width: 3, Mode: "delta", Theme: "ascii_arrows"})
	assert.Equal(t, "^v-", c.Render([]float64{1, 2, 1, 1}))

	arrows := theme(t, palette.Delta, "ascii_arrows")
	assert.Equal(t, "^^^^", Delta([]float64{1, 2}, 4, arrows))
	assert.Equal(t, "-", Delta([]float64{1, 1 + 1e-12}, 1, arrows))
}

func TestTrend(t *testing.T) {
	ascii := theme(t, palette.Trend, "ascii")

	// changes 1, 2, 0, -3; median move 2
	assert.Equal(t, "^^-V", Trend([]float64{0, 1, 3, 3, 0}, 4, ascii))
	// a lone change is never larger than itself
	assert.Equal(t, "^^^", Trend([]float64{1, 2}, 3, ascii))
	assert.Equal(t, "-----", Trend([]float64{4, 4, 4}, 5, ascii))
	// changes -1, -5, 1, 5; median move 5
	assert.Equal(t, "vv^^", Trend([]float64{10, 9, 4, 5, 10}, 4, ascii))
	// changes 1, 1, 1, 4; median move 1
	assert.Equal(t, "^^^A", Trend([]float64{0, 1, 2, 3, 7}, 4, ascii))
}

func TestTrendMultiCharGlyphs(t *testing.T) {
	slopes := theme(t, palette.Trend, "slopes")
	assert.Equal(t, "//\\\\", Trend([]float64{0, 1, 3, 0}, 3, slopes))
}

func TestPreconditions(t *testing.T) {
	blocks := theme(t, palette.Absolute, "utf8_blocks")
	arrows := theme(t, palette.Delta, "arrows")
	trend := theme(t, palette.Trend, "arrows")

	assert.Equal(t, "", Absolute(nil, 4, blocks))
	assert.Equal(t, "", Absolute([]float64{1, 2}, 0, blocks))
	assert.Equal(t, "", Absolute([]float64{1, 2}, 4, nil))

	assert.Equal(t, "", Delta([]float64{1}, 4, arrows))
	assert.Equal(t, "", Delta([]float64{1, 2}, 0, arrows))
	assert.Equal(t, "", Delta([]float64{1, 2}, 4, arrows[:2]))

	assert.Equal(t, "", Trend([]float64{1}, 4, trend))
	assert.Equal(t, "", Trend([]float64{1, 2}, -1, trend))
	assert.Equal(t, "", Trend([]float64{1, 2}, 4, trend[:4]))

	var zero Config
	assert.Equal(t, "", zero.Render([]float64{1, 2, 3}))
}

func TestNaNSamples(t *testing.T) {
	blocks := theme(t, palette.Absolute, "utf8_blocks")
	assert.Equal(t, " ▄", Absolute([]float64{math.NaN(), 0, 8}, 2, blocks))
	assert.Equal(t, glyph.Count(" █"), glyph.Count(Absolute([]float64{0, math.NaN(), 8}, 2, blocks)))
}

func TestOutputWidth(t *testing.T) {
	samples := []float64{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5, 8, 9, 7}
	for _, mode := range ModeNames() {
		m, err := ParseMode(mode)
		require.NoError(t, err)
		for _, name := range palette.Names(m.Namespace()) {
			p := theme(t, m.Namespace(), name)
			for _, width := range []int64{1, 5, 14, 30} {
				c := mustNew(t, Options{Width: width, Mode: mode, Theme: name})
				out := c.Render(samples)
				// slopes and intensity carry two-character glyphs
				assert.NotEmpty(t, out)
				assert.Equal(t, out, c.Render(samples), "mode=%s theme=%s", mode, name)
				if singleGrapheme(p) {
					assert.Equal(t, int(width), glyph.Count(out), "mode=%s theme=%s width=%d", mode, name, width)
				}
			}
		}
	}
}

func singleGrapheme(p palette.Palette) bool {
	for _, g := range p {
		if glyph.Count(g) != 1 {
			return false
		}
	}
	return true
}

func TestDefaultThemes(t *testing.T) {
	tests := map[string]string{
		"":         "utf8_blocks",
		"absolute": "utf8_blocks",
		"delta":    "arrows",
		"trend":    "arrows",
	}
	for mode, want := range tests {
		c := mustNew(t, Options{Width: 5, Mode: mode})
		assert.Equal(t, want, c.Theme(), "mode=%q", mode)
	}

	c := mustNew(t, Options{Width: 5, Mode: "trend"})
	assert.Len(t, c.Palette(), 5)
	assert.Equal(t, ModeTrend, c.Mode())
}

func TestConfigErrors(t *testing.T) {
	_, err := New(Options{Width: 5, Mode: "sideways"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownMode))
	assert.True(t, errors.IsConfigError(err))

	// names are scoped per mode
	_, err = New(Options{Width: 5, Mode: "delta", Theme: "utf8_blocks"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownTheme))
	assert.Contains(t, err.Error(), "arrows, ascii_arrows, faces, math, simple, thumbs, trends, triangles")

	_, err = New(Options{Width: 5, Mode: "trend", Theme: "ascii"})
	assert.NoError(t, err)

	_, err = New(Options{Width: math.MaxInt64 / 2})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))

	c := mustNew(t, Options{Width: glyph.MaxWidth})
	assert.Equal(t, glyph.MaxWidth, glyph.Count(c.Render([]float64{1, 2})))
}
