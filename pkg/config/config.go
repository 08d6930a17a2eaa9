package config

import (
	"sort"
	"strings"

	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/textplot/pkg/errors"
	"github.com/arthur-debert/textplot/pkg/functions"
)

// Formats lists the accepted output.format values.
var Formats = []string{"auto", "term", "text", "json"}

// Config is the effective textplot configuration.
type Config struct {
	Output    Output                            `koanf:"output"`
	Bar       map[string]interface{}            `koanf:"bar"`
	Density   map[string]interface{}            `koanf:"density"`
	Sparkline map[string]interface{}            `koanf:"sparkline"`
	Presets   map[string]map[string]interface{} `koanf:"presets"`

	// Sources lists the files that were loaded, lowest precedence first.
	Sources []string `koanf:"-"`

	k *koanf.Koanf
}

// Output holds presentation settings.
type Output struct {
	Format  string `koanf:"format"`
	Workers int    `koanf:"workers"`
	Styles  string `koanf:"styles"`
}

// Defaults returns the option defaults configured for function.
func (c *Config) Defaults(function string) functions.Args {
	var section map[string]interface{}
	switch function {
	case "bar":
		section = c.Bar
	case "density":
		section = c.Density
	case "sparkline":
		section = c.Sparkline
	}
	return functions.Args(section).Merge(nil)
}

// PresetNames returns the configured preset names in sorted order.
func (c *Config) PresetNames() []string {
	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset returns the function a preset targets and its options.
func (c *Config) Preset(name string) (string, functions.Args, error) {
	raw, ok := c.Presets[name]
	if !ok {
		return "", nil, errors.Newf(errors.ErrUnknownPreset, "unknown preset '%s', available are <%s>",
			name, strings.Join(c.PresetNames(), ", ")).
			WithDetail("preset", name)
	}

	function, _ := raw["function"].(string)
	if function == "" {
		return "", nil, errors.Newf(errors.ErrConfigValid, "preset '%s' does not name a function", name).
			WithDetail("preset", name)
	}
	if _, err := functions.Lookup(function); err != nil {
		return "", nil, errors.Wrapf(err, errors.ErrUnknownFunction, "preset '%s'", name).
			WithDetail("preset", name)
	}

	args := make(functions.Args, len(raw))
	for k, v := range raw {
		if k != "function" {
			args[k] = v
		}
	}
	return function, args, nil
}

func (c *Config) validate() error {
	valid := false
	for _, f := range Formats {
		if c.Output.Format == f {
			valid = true
			break
		}
	}
	if !valid {
		return errors.Newf(errors.ErrConfigValid, "output.format must be one of <%s>, got '%s'",
			strings.Join(Formats, ", "), c.Output.Format).
			WithDetail("key", "output.format")
	}
	if c.Output.Workers < 0 {
		return errors.Newf(errors.ErrConfigValid, "output.workers must not be negative, got %d", c.Output.Workers).
			WithDetail("key", "output.workers")
	}
	return nil
}
