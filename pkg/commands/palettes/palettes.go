// Package palettes lists the glyph sets textplot can draw with.
package palettes

import (
	"strings"

	"github.com/arthur-debert/textplot/pkg/errors"
	"github.com/arthur-debert/textplot/pkg/logging"
	"github.com/arthur-debert/textplot/pkg/palette"
	"github.com/arthur-debert/textplot/pkg/ui/display"
)

// BarNamespace lists bar shapes, one entry per shape with a glyph per color.
const BarNamespace = "bar"

// ListPalettesOptions holds options for the palettes command
type ListPalettesOptions struct {
	// Namespace restricts the listing; empty lists everything
	Namespace string
}

// Namespaces returns the names ListPalettes accepts.
func Namespaces() []string {
	out := make([]string, 0, len(palette.Namespaces())+1)
	for _, ns := range palette.Namespaces() {
		out = append(out, ns.String())
	}
	return append(out, BarNamespace)
}

// ListPalettes returns the palettes of one namespace, or of all of them.
func ListPalettes(opts ListPalettesOptions) (*display.PaletteList, error) {
	logger := logging.GetLogger("commands.palettes")

	result := &display.PaletteList{Namespace: opts.Namespace}
	switch opts.Namespace {
	case "":
		for _, ns := range palette.Namespaces() {
			entries, err := namespaceEntries(ns)
			if err != nil {
				return nil, err
			}
			result.Palettes = append(result.Palettes, entries...)
		}
		shapes, err := shapeEntries()
		if err != nil {
			return nil, err
		}
		result.Palettes = append(result.Palettes, shapes...)
	case BarNamespace:
		shapes, err := shapeEntries()
		if err != nil {
			return nil, err
		}
		result.Palettes = shapes
	default:
		ns, err := palette.ParseNamespace(opts.Namespace)
		if err != nil {
			return nil, errors.Newf(errors.ErrInvalidInput, "unknown palette namespace '%s', available are <%s>",
				opts.Namespace, strings.Join(Namespaces(), ", ")).
				WithDetail("namespace", opts.Namespace)
		}
		entries, err := namespaceEntries(ns)
		if err != nil {
			return nil, err
		}
		result.Palettes = entries
	}

	logger.Debug().
		Str("namespace", opts.Namespace).
		Int("count", len(result.Palettes)).
		Msg("Listed palettes")
	return result, nil
}

func namespaceEntries(ns palette.Namespace) ([]display.PaletteEntry, error) {
	names := palette.Names(ns)
	entries := make([]display.PaletteEntry, 0, len(names))
	for _, name := range names {
		p, err := palette.Lookup(ns, name)
		if err != nil {
			return nil, err
		}
		entries = append(entries, display.PaletteEntry{
			Namespace: ns.String(),
			Name:      name,
			Glyphs:    p,
			Default:   name == palette.Default(ns),
		})
	}
	return entries, nil
}

func shapeEntries() ([]display.PaletteEntry, error) {
	colors := palette.Colors()
	entries := make([]display.PaletteEntry, 0, len(palette.ShapeNames()))
	for _, name := range palette.ShapeNames() {
		shape, err := palette.ParseShape(name)
		if err != nil {
			return nil, err
		}
		glyphs := make([]string, 0, len(colors))
		for _, color := range colors {
			g, err := palette.ShapeGlyph(shape, color)
			if err != nil {
				return nil, err
			}
			glyphs = append(glyphs, g)
		}
		entries = append(entries, display.PaletteEntry{
			Namespace: BarNamespace,
			Name:      name,
			Glyphs:    glyphs,
			Default:   shape == palette.Square,
		})
	}
	return entries, nil
}
