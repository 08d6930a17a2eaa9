package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/textplot/pkg/logging"
)

// userConfigNames are tried in order inside the config directory.
var userConfigNames = []string{"config.toml", "config.yaml", "config.yml"}

// Dir returns the textplot config directory.
func Dir() string {
	// xdg caches its paths at init, so check the variable first
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = xdg.ConfigHome
	}
	return filepath.Join(base, logging.AppName)
}

// DefaultPath is where `config init` writes the user file.
func DefaultPath() string {
	return filepath.Join(Dir(), userConfigNames[0])
}

// FindUserConfig returns the first existing user config file, or "".
func FindUserConfig() string {
	dir := Dir()
	for _, name := range userConfigNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}
