// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/arthur-debert/textplot/pkg/ui/display"
	"github.com/arthur-debert/textplot/pkg/ui/styles"
)

// Renderer provides rich terminal output using lipgloss styles
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.PlotResult:
		// plots are glyph art and are never styled
		for _, line := range v.Lines() {
			if _, err := fmt.Fprintln(r.output, line); err != nil {
				return err
			}
		}
		return nil
	case *display.PaletteList:
		_, err := fmt.Fprintln(r.output, PaletteTable(v))
		return err
	case *display.ConfigView:
		return r.renderConfig(v)
	case *display.PathResult:
		msg := v.Message
		if msg == "" {
			msg = v.Path
		}
		_, err := fmt.Fprintln(r.output, styles.GetStyle("Info").Render(msg))
		return err
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

// PaletteTable lays a palette list out as a table.
func PaletteTable(list *display.PaletteList) string {
	qualified := list.Namespace == ""
	rows := make([][]string, 0, len(list.Palettes))
	for _, e := range list.Palettes {
		def := ""
		if e.Default {
			def = "default"
		}
		rows = append(rows, []string{e.Label(qualified), e.Preview(), strconv.Itoa(len(e.Glyphs)), def})
	}

	header := styles.GetStyle("TableHeader")
	cell := styles.GetStyle("TableCell")
	return table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("NAME", "GLYPHS", "LEVELS", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case col == 3:
				return styles.MergeStyles("TableCell", "Default")
			case col == 2:
				return styles.MergeStyles("TableCell", "Muted")
			default:
				return cell
			}
		}).
		String()
}

func (r *Renderer) renderConfig(v *display.ConfigView) error {
	var b strings.Builder
	muted := styles.GetStyle("Muted")
	if len(v.Sources) == 0 {
		b.WriteString(muted.Render("# built-in defaults only"))
	} else {
		b.WriteString(muted.Render("# loaded from " + strings.Join(v.Sources, ", ")))
	}
	b.WriteString("\n")
	b.WriteString(v.Content)
	_, err := io.WriteString(r.output, b.String())
	return err
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintln(r.output, styles.GetStyle("Error").Render(fmt.Sprintf("Error: %v", err)))
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, styles.GetStyle("Info").Render(msg))
	return err
}
