// Package configure implements the config show, path and init commands.
package configure

import (
	"fmt"
	"os"

	"github.com/arthur-debert/textplot/pkg/config"
	"github.com/arthur-debert/textplot/pkg/errors"
	"github.com/arthur-debert/textplot/pkg/logging"
	"github.com/arthur-debert/textplot/pkg/ui/display"
)

// ShowConfig renders the effective configuration.
func ShowConfig(cfg *config.Config) (*display.ConfigView, error) {
	if cfg == nil {
		return nil, errors.New(errors.ErrInternal, "config show called without a configuration")
	}
	content, err := cfg.Marshal()
	if err != nil {
		return nil, err
	}
	return &display.ConfigView{
		Sources:  cfg.Sources,
		Settings: cfg.Settings(),
		Content:  string(content),
	}, nil
}

// ConfigPath reports the user config file in effect. explicit is the
// --config flag value, if any. With no user file the location `config
// init` would write to is reported instead.
func ConfigPath(explicit string) *display.PathResult {
	path := explicit
	if path == "" {
		path = config.FindUserConfig()
	}
	if path == "" {
		return &display.PathResult{Path: config.DefaultPath()}
	}
	_, err := os.Stat(path)
	return &display.PathResult{Path: path, Exists: err == nil}
}

// InitConfigOptions holds options for the config init command
type InitConfigOptions struct {
	// Path defaults to config.DefaultPath()
	Path  string
	Force bool
}

// InitConfig writes the default configuration to a user file.
func InitConfig(opts InitConfigOptions) (*display.PathResult, error) {
	logger := logging.GetLogger("commands.configure")

	path := opts.Path
	if path == "" {
		path = config.DefaultPath()
	}
	if err := config.WriteDefaults(path, opts.Force); err != nil {
		return nil, err
	}

	logger.Info().Str("path", path).Bool("force", opts.Force).Msg("Written config file")
	return &display.PathResult{
		Path:    path,
		Exists:  true,
		Message: fmt.Sprintf("Wrote default configuration to %s", path),
	}, nil
}
