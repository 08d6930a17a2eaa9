// Package commands provides high-level command implementations for textplot.
//
// This package contains the command orchestration layer that sits between
// the CLI interface and the plotting packages. Commands take plain option
// structs and return result types from pkg/ui/display, which the CLI hands
// to a renderer.
//
// Each command is implemented in its own subdirectory:
//   - plot/      - bar, density and sparkline over one or many rows
//   - palettes/  - ListPalettes command
//   - configure/ - config show, path and init
//
// This file re-exports the command functions so callers need a single import.
package commands

import (
	"context"

	"github.com/arthur-debert/textplot/pkg/commands/configure"
	"github.com/arthur-debert/textplot/pkg/commands/palettes"
	"github.com/arthur-debert/textplot/pkg/commands/plot"
	"github.com/arthur-debert/textplot/pkg/config"
	"github.com/arthur-debert/textplot/pkg/ui/display"
)

// Plot binds a plot function once and renders every row with it.
type PlotOptions = plot.PlotOptions

func Plot(ctx context.Context, opts PlotOptions) (*display.PlotResult, error) {
	return plot.Plot(ctx, opts)
}

// ListPalettes lists the named glyph sets of one namespace or all of them.
type ListPalettesOptions = palettes.ListPalettesOptions

func ListPalettes(opts ListPalettesOptions) (*display.PaletteList, error) {
	return palettes.ListPalettes(opts)
}

// PaletteNamespaces returns the namespaces ListPalettes accepts.
func PaletteNamespaces() []string {
	return palettes.Namespaces()
}

// ShowConfig renders the effective configuration.
func ShowConfig(cfg *config.Config) (*display.ConfigView, error) {
	return configure.ShowConfig(cfg)
}

// ConfigPath reports the user config file in effect.
func ConfigPath(explicit string) *display.PathResult {
	return configure.ConfigPath(explicit)
}

// InitConfig writes the default configuration to a user file.
type InitConfigOptions = configure.InitConfigOptions

func InitConfig(opts InitConfigOptions) (*display.PathResult, error) {
	return configure.InitConfig(opts)
}
