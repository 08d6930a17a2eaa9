package textplot

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/textplot/pkg/errors"
	"github.com/arthur-debert/textplot/pkg/functions"
	"github.com/arthur-debert/textplot/pkg/testutil"
	"github.com/arthur-debert/textplot/pkg/ui/display"
)

func TestBarCommand(t *testing.T) {
	isolate(t)

	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"one line per value", "", []string{"bar", "-w", "4", "--on", "#", "--off", ".", "0.5", "1"}, "##..\n####\n"},
		{"config defaults", "", []string{"bar", "0.5"}, "🟥🟥🟥🟥🟥⬜⬜⬜⬜⬜\n"},
		{"values from stdin", "0.25\n0.75\n", []string{"bar", "-w", "4", "--on", "#", "--off", "."}, "#...\n###.\n"},
		{"comma separated", "", []string{"bar", "-w", "2", "--on", "#", "--off", ".", "0,1"}, "..\n##\n"},
		{"outline", "", []string{"bar", "-w", "4", "--filled=false", "--shape", "circle", "0.5"}, "⚪🔴⚪⚪\n"},
		{
			"thresholds",
			"",
			[]string{"bar", "-w", "4", "--max", "100", "-t", "90:red", "-t", "50:yellow", "-t", "0:green", "95", "60", "10"},
			"🟥🟥🟥🟥\n🟨🟨⬜⬜\n⬜⬜⬜⬜\n",
		},
		{"preset", "", []string{"bar", "--preset", "percent", "-w", "4", "75"}, "🟨🟨🟨⬜\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestDensityCommand(t *testing.T) {
	isolate(t)

	out, err := run(t, "", "density", "-w", "3", "--style", "ascii", "0", "0", "9")
	require.NoError(t, err)
	assert.Equal(t, "@ +\n", out)

	out, err = run(t, "", "density", "-w", "2", "--graph-chars", " .:#", "1", "1", "1", "2")
	require.NoError(t, err)
	assert.Equal(t, "#.\n", out)

	out, err = run(t, "", "density", "-w", "2", "-s", "ascii", "--marker", "|", "--marker-value", "2", "1", "1", "1", "2")
	require.NoError(t, err)
	assert.Equal(t, "@|\n", out)

	out, err = run(t, "", "--format", "json", "density", "-w", "3", "--style", "ascii", "0", "0", "9")
	require.NoError(t, err)
	var result display.PlotResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "density", result.Function)
	assert.Equal(t, int64(3), result.Width)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, 3, result.Rows[0].Samples)
	assert.Equal(t, "@ +", result.Rows[0].Plot)
}

func TestSparklineCommand(t *testing.T) {
	isolate(t)

	t.Run("stdin forms one series", func(t *testing.T) {
		out, err := run(t, "1 2 3\n4 5\n", "sparkline", "-m", "delta", "--theme", "ascii_arrows", "-w", "4")
		require.NoError(t, err)
		assert.Equal(t, "^^^^\n", out)
	})

	t.Run("rows", func(t *testing.T) {
		out, err := run(t, "1 2\n# comment\n\n2 1\n", "--rows", "--workers", "2",
			"sparkline", "-m", "delta", "--theme", "ascii_arrows", "-w", "1")
		require.NoError(t, err)
		assert.Equal(t, "^\nv\n", out)
	})

	t.Run("trend", func(t *testing.T) {
		out, err := run(t, "", "sparkline", "-m", "trend", "--theme", "ascii", "-w", "4", "1", "2", "3", "10", "10")
		require.NoError(t, err)
		assert.Equal(t, "^^A-\n", out)
	})
}

func TestPlotLayering(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteConfig("config.toml", `
[sparkline]
mode = "delta"
theme = "ascii_arrows"
width = 3
`)

	out, err := run(t, "", "sparkline", "1", "2", "1", "1")
	require.NoError(t, err)
	assert.Equal(t, "^v-\n", out, "file beats defaults")

	env.Setenv("sparkline_theme", "math")
	out, err = run(t, "", "sparkline", "1", "2", "1", "1")
	require.NoError(t, err)
	assert.Equal(t, "+-=\n", out, "env beats file")

	out, err = run(t, "", "sparkline", "--theme", "triangles", "-w", "2", "1", "2", "1", "1")
	require.NoError(t, err)
	assert.Equal(t, "▲▼\n", out, "flags beat env")
}

func TestExplicitConfigFlag(t *testing.T) {
	isolate(t)
	path := testutil.WriteFile(t, filepath.Join(t.TempDir(), "plots.yaml"), "density:\n  style: ascii\n  width: 2\n")

	out, err := run(t, "", "--config", path, "density", "1", "1", "1", "2")
	require.NoError(t, err)
	assert.Equal(t, "@:\n", out)

	_, err = run(t, "", "--config", filepath.Join(t.TempDir(), "missing.toml"), "density", "1")
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestPlotErrors(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
		code errors.ErrorCode
	}{
		{"bad value", []string{"bar", "abc"}, errors.ErrInputParse},
		{"unknown theme", []string{"sparkline", "--theme", "nope", "1", "2"}, errors.ErrUnknownTheme},
		{"unknown mode", []string{"sparkline", "-m", "sideways", "1", "2"}, errors.ErrUnknownMode},
		{"unknown style", []string{"density", "-s", "nope", "1"}, errors.ErrUnknownStyle},
		{"unknown color", []string{"bar", "--on-color", "pink", "1"}, errors.ErrUnknownColor},
		{"unknown shape", []string{"bar", "--shape", "star", "1"}, errors.ErrUnknownShape},
		{"bad threshold", []string{"bar", "-t", "high", "1"}, errors.ErrOptionType},
		{"preset for another function", []string{"density", "--preset", "percent", "1"}, errors.ErrConfigValid},
		{"unknown preset", []string{"bar", "--preset", "nope", "1"}, errors.ErrUnknownPreset},
		{"bad format", []string{"--format", "xml", "bar", "1"}, errors.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, "", tt.args...)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}

func TestOptionArgsOnlyChangedFlags(t *testing.T) {
	f := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.Int64("width", 0, "")
	f.Float64("max", 1, "")
	f.String("on-color", "red", "")
	f.Bool("filled", true, "")
	f.StringArray("threshold", nil, "")
	f.Bool("fit", false, "")
	markOptions(f, map[string]string{
		"width": "width", "max": "max", "on-color": "on_color",
		"filled": "filled", "threshold": "thresholds",
	})

	require.NoError(t, f.Parse([]string{"--width", "7", "--filled=false", "--threshold=1:red", "--threshold", "0:blue", "--fit"}))
	args, err := optionArgs(f)
	require.NoError(t, err)
	assert.Equal(t, functions.Args{
		"width":      int64(7),
		"filled":     false,
		"thresholds": []string{"1:red", "0:blue"},
	}, args)
}

func TestFitWidth(t *testing.T) {
	assert.Equal(t, int64(40), fitWidth("bar", functions.Args{}, 80))
	assert.Equal(t, int64(80), fitWidth("bar", functions.Args{"on": "#"}, 80))
	assert.Equal(t, int64(1), fitWidth("bar", functions.Args{}, 1))
	assert.Equal(t, int64(80), fitWidth("sparkline", functions.Args{}, 80))
}

func TestFitWithoutTerminal(t *testing.T) {
	isolate(t)
	out, err := run(t, "", "density", "--fit", "-w", "3", "-s", "ascii", "0", "0", "9")
	require.NoError(t, err)
	assert.Equal(t, "@ +\n", out)

	// not a terminal: width stays at the configured default
	out, err = run(t, "", "density", "--fit", "-s", "ascii", "5")
	require.NoError(t, err)
	assert.Equal(t, "@@@@@@@@@@@@@@@@@@@@\n", out)
}
