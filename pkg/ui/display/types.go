// Package display holds the result types commands hand to renderers.
package display

import (
	"github.com/arthur-debert/textplot/pkg/glyph"
)

// PlotResult is the output of a bar, density or sparkline command.
type PlotResult struct {
	Function string    `json:"function"`
	Preset   string    `json:"preset,omitempty"`
	Width    int64     `json:"width"`
	Rows     []PlotRow `json:"rows"`
}

// PlotRow is one rendered input row. Samples is the number of values the
// row held; the values themselves are not echoed since they may be NaN.
type PlotRow struct {
	Samples int    `json:"samples"`
	Plot    string `json:"plot"`
}

// Lines returns the rendered plots in row order.
func (r *PlotResult) Lines() []string {
	out := make([]string, len(r.Rows))
	for i, row := range r.Rows {
		out[i] = row.Plot
	}
	return out
}

// PaletteList is the output of the palettes command.
type PaletteList struct {
	// Namespace is set when a single namespace was requested
	Namespace string         `json:"namespace,omitempty"`
	Palettes  []PaletteEntry `json:"palettes"`
}

// PaletteEntry describes one named glyph set.
type PaletteEntry struct {
	Namespace string   `json:"namespace"`
	Name      string   `json:"name"`
	Glyphs    []string `json:"glyphs"`
	Default   bool     `json:"default,omitempty"`
}

// Label is the entry name, qualified by namespace when the list mixes
// namespaces.
func (e PaletteEntry) Label(qualified bool) string {
	if qualified {
		return e.Namespace + "/" + e.Name
	}
	return e.Name
}

// Preview joins the glyphs into a single strip.
func (e PaletteEntry) Preview() string {
	return glyph.Join(e.Glyphs)
}

// ConfigView is the output of `config show`.
type ConfigView struct {
	Sources  []string               `json:"sources"`
	Settings map[string]interface{} `json:"settings"`
	// Content is the TOML rendering of Settings
	Content string `json:"-"`
}

// PathResult reports a single filesystem location, as `config path` and
// `config init` do.
type PathResult struct {
	Path    string `json:"path"`
	Exists  bool   `json:"exists"`
	Message string `json:"message,omitempty"`
}
