// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/textplot/pkg/glyph"
	"github.com/arthur-debert/textplot/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.PlotResult:
		for _, line := range v.Lines() {
			if _, err := fmt.Fprintln(r.output, line); err != nil {
				return err
			}
		}
		return nil
	case *display.PaletteList:
		return r.renderPalettes(v)
	case *display.ConfigView:
		_, err := io.WriteString(r.output, v.Content)
		return err
	case *display.PathResult:
		if v.Message != "" {
			_, err := fmt.Fprintln(r.output, v.Message)
			return err
		}
		_, err := fmt.Fprintln(r.output, v.Path)
		return err
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderPalettes(list *display.PaletteList) error {
	qualified := list.Namespace == ""
	width := 0
	for _, e := range list.Palettes {
		width = max(width, glyph.Width(e.Label(qualified)))
	}
	for _, e := range list.Palettes {
		line := glyph.PadRight(e.Label(qualified), width) + "  " + e.Preview()
		if e.Default {
			line += "  (default)"
		}
		if _, err := fmt.Fprintln(r.output, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
