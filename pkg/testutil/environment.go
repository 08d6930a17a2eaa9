package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// appDir is the directory textplot uses under the XDG bases.
const appDir = "textplot"

// envPrefix marks the variables the config layer reads.
const envPrefix = "TEXTPLOT_"

// TestEnvironment isolates a test from the user's config, state and
// environment overrides.
type TestEnvironment struct {
	// XDG bases
	ConfigHome string
	StateHome  string

	// ConfigDir is the textplot directory inside ConfigHome. It is not
	// created until a file is written to it.
	ConfigDir string

	t *testing.T
}

// NewTestEnvironment points the XDG directories at fresh temp dirs and
// unsets any TEXTPLOT_* variable. Everything is restored on cleanup.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{
		ConfigHome: t.TempDir(),
		StateHome:  t.TempDir(),
		t:          t,
	}
	env.ConfigDir = filepath.Join(env.ConfigHome, appDir)

	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_STATE_HOME", env.StateHome)

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, envPrefix) {
			// Setenv registers the restore, Unsetenv makes it absent
			t.Setenv(key, "")
			require.NoError(t, os.Unsetenv(key))
		}
	}
	return env
}

// Setenv sets a TEXTPLOT_* override for the rest of the test.
func (env *TestEnvironment) Setenv(key, value string) {
	env.t.Helper()
	env.t.Setenv(envPrefix+strings.ToUpper(key), value)
}

// WriteConfig writes a user config file into ConfigDir and returns its path.
func (env *TestEnvironment) WriteConfig(name, content string) string {
	env.t.Helper()
	return WriteFile(env.t, filepath.Join(env.ConfigDir, name), content)
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
