package textplot

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/textplot/pkg/errors"
	"github.com/arthur-debert/textplot/pkg/testutil"
	"github.com/arthur-debert/textplot/pkg/ui/display"
	"github.com/arthur-debert/textplot/pkg/ui/styles"
)

// isolate points the config and state directories at temp dirs and
// returns the textplot config directory.
func isolate(t *testing.T) string {
	t.Helper()
	return testutil.NewTestEnvironment(t).ConfigDir
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommandStructure(t *testing.T) {
	cmd := NewRootCmd()
	assert.Equal(t, "textplot", cmd.Name())

	want := map[string]string{
		"bar":        "plot",
		"density":    "plot",
		"sparkline":  "plot",
		"palettes":   "misc",
		"config":     "misc",
		"topics":     "misc",
		"version":    "misc",
		"completion": "misc",
	}
	found := map[string]*cobra.Command{}
	for _, c := range cmd.Commands() {
		found[c.Name()] = c
	}
	for name, group := range want {
		require.Contains(t, found, name)
		assert.Equal(t, group, found[name].GroupID, name)
	}
	assert.Contains(t, found, "help")
}

func TestNoCommand(t *testing.T) {
	isolate(t)
	out, err := run(t, "")
	require.Error(t, err)
	assert.Equal(t, MsgErrNoCommand, err.Error())
	assert.Contains(t, out, "PLOTS:")
}

func TestVersion(t *testing.T) {
	isolate(t)
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "textplot dev (commit unknown, built unknown)\n", out)
}

func TestCompletion(t *testing.T) {
	isolate(t)
	out, err := run(t, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "textplot")

	_, err = run(t, "", "completion", "tcsh")
	assert.Error(t, err)
}

func TestHelpTopics(t *testing.T) {
	isolate(t)

	out, err := run(t, "", "topics")
	require.NoError(t, err)
	for _, topic := range []string{"config", "modes", "palettes", "thresholds"} {
		assert.Contains(t, out, "  "+topic+"\n")
	}

	out, err = run(t, "", "help", "thresholds")
	require.NoError(t, err)
	assert.Contains(t, out, "Thresholds")

	out, err = run(t, "", "help", "bar")
	require.NoError(t, err)
	assert.Contains(t, out, "textplot bar [values...]")
}

func TestPalettesCommand(t *testing.T) {
	isolate(t)

	out, err := run(t, "", "palettes", "delta")
	require.NoError(t, err)
	assert.Contains(t, out, "ascii_arrows  v-^\n")
	assert.Contains(t, out, "(default)")

	out, err = run(t, "", "--format", "json", "palettes", "bar")
	require.NoError(t, err)
	var list display.PaletteList
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	assert.Equal(t, "bar", list.Namespace)
	assert.Len(t, list.Palettes, 3)

	_, err = run(t, "", "palettes", "pie")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestConfigCommands(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.toml")

	out, err := run(t, "", "config", "path")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)

	out, err = run(t, "", "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, path)
	_, err = os.Stat(path)
	require.NoError(t, err)

	_, err = run(t, "", "config", "init")
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
	_, err = run(t, "", "config", "init", "--force")
	assert.NoError(t, err)

	out, err = run(t, "", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "[sparkline]")

	out, err = run(t, "", "--format", "json", "config", "show")
	require.NoError(t, err)
	var view map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, []interface{}{path}, view["sources"])
	output := view["settings"].(map[string]interface{})["output"].(map[string]interface{})
	assert.Equal(t, "json", output["format"], "global flags override the file")
}

func TestBrokenConfigFile(t *testing.T) {
	dir := isolate(t)
	testutil.WriteFile(t, filepath.Join(dir, "config.toml"), "[bar\n")

	_, err := run(t, "", "bar", "0.5")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))

	// listing palettes does not need the config
	_, err = run(t, "", "palettes", "trend")
	assert.NoError(t, err)
}

func TestCustomStyles(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	t.Cleanup(styles.Reset)

	path := testutil.WriteFile(t, filepath.Join(t.TempDir(), "styles.yaml"), `
styles:
  Error:
    underline: true
`)
	env.WriteConfig("config.toml", "[output]\nstyles = \""+path+"\"\n")

	_, err := run(t, "", "bar", "0.5")
	require.NoError(t, err)
	assert.True(t, styles.GetStyle("Error").GetUnderline())
	assert.False(t, styles.GetStyle("Error").GetBold())

	env.Setenv("output_styles", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err = run(t, "", "bar", "0.5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load styles")
}

func TestRenderError(t *testing.T) {
	plotErr := errors.New(errors.ErrUnknownTheme, "unknown theme 'x'")

	t.Run("json", func(t *testing.T) {
		buf := &bytes.Buffer{}
		(&app{format: "json"}).renderError(buf, plotErr)

		var got map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "UNKNOWN_THEME", got["code"])
	})

	t.Run("text", func(t *testing.T) {
		buf := &bytes.Buffer{}
		(&app{format: "text"}).renderError(buf, plotErr)
		assert.Equal(t, "Error: [UNKNOWN_THEME] unknown theme 'x'\n", buf.String())
	})

	t.Run("bad format falls back", func(t *testing.T) {
		buf := &bytes.Buffer{}
		(&app{format: "xml"}).renderError(buf, plotErr)
		assert.Contains(t, buf.String(), "unknown theme 'x'")
	})
}
