package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTestEnvironment(t *testing.T) {
	t.Setenv("TEXTPLOT_DENSITY_STYLE", "moon")

	t.Run("isolates", func(t *testing.T) {
		env := NewTestEnvironment(t)

		assert.Equal(t, env.ConfigHome, os.Getenv("XDG_CONFIG_HOME"))
		assert.Equal(t, env.StateHome, os.Getenv("XDG_STATE_HOME"))
		assert.Equal(t, filepath.Join(env.ConfigHome, "textplot"), env.ConfigDir)

		_, ok := os.LookupEnv("TEXTPLOT_DENSITY_STYLE")
		assert.False(t, ok)
		assert.NoDirExists(t, env.ConfigDir)
	})

	// restored after the subtest
	assert.Equal(t, "moon", os.Getenv("TEXTPLOT_DENSITY_STYLE"))
}

func TestSetenv(t *testing.T) {
	env := NewTestEnvironment(t)
	env.Setenv("sparkline_theme", "math")
	assert.Equal(t, "math", os.Getenv("TEXTPLOT_SPARKLINE_THEME"))
}

func TestWriteConfig(t *testing.T) {
	env := NewTestEnvironment(t)

	path := env.WriteConfig("config.toml", "[bar]\nwidth = 4\n")
	assert.Equal(t, filepath.Join(env.ConfigDir, "config.toml"), path)
	AssertFileExists(t, path)
	AssertFileContains(t, path, "width = 4")
	AssertNoFile(t, filepath.Join(env.ConfigDir, "config.yaml"))
}

func TestWriteFileNested(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "plots.yaml")
	WriteFile(t, path, "bar:\n  width: 2\n")
	AssertFileContains(t, path, "width: 2")
}
