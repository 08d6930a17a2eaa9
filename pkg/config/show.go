package config

import (
	"os"
	"path/filepath"

	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/textplot/pkg/errors"
)

// Settings returns the effective configuration as a nested map.
func (c *Config) Settings() map[string]interface{} {
	if c.k == nil {
		return map[string]interface{}{}
	}
	return c.k.Raw()
}

// Marshal renders the effective configuration as TOML.
func (c *Config) Marshal() ([]byte, error) {
	if c.k == nil {
		return nil, errors.New(errors.ErrInternal, "configuration was not loaded")
	}
	out, err := gotoml.Marshal(c.k.Raw())
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return out, nil
}

// WriteDefaults writes the embedded defaults to path, creating its
// directory. An existing file is only replaced when force is set.
func WriteDefaults(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.Newf(errors.ErrAlreadyExists, "config file %s already exists", path).
			WithDetail("path", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "cannot create %s", filepath.Dir(path))
	}
	if err := os.WriteFile(path, defaultConfig, 0o644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "cannot write %s", path).
			WithDetail("path", path)
	}
	return nil
}
