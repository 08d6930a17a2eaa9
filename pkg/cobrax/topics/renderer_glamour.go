package topics

import (
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
)

// markdownExts are the topic extensions glamour renders.
var markdownExts = map[string]bool{".md": true, ".markdown": true}

// GlamourRenderer renders markdown topics with glamour and passes anything
// else through. A topic that fails to render is printed as written.
type GlamourRenderer struct {
	// Style is a glamour style name ("dark", "light", "notty") or a path to
	// a JSON style file. "" or "auto" follows the terminal background.
	Style string
	// Width wraps words at this column; 0 keeps glamour's default.
	Width int
}

// NewGlamourRenderer picks the style from the terminal, or "notty" when
// NO_COLOR is set so topics stay free of escape codes.
func NewGlamourRenderer() *GlamourRenderer {
	r := &GlamourRenderer{Style: "auto"}
	if os.Getenv("NO_COLOR") != "" {
		r.Style = "notty"
	}
	return r
}

// Render formats a markdown topic for the terminal.
func (r *GlamourRenderer) Render(content string, ext string) string {
	if !markdownExts[strings.ToLower(ext)] {
		return content
	}

	opts := []glamour.TermRendererOption{r.styleOption()}
	if r.Width > 0 {
		opts = append(opts, glamour.WithWordWrap(r.Width))
	}

	tr, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return content
	}
	out, err := tr.Render(content)
	if err != nil {
		return content
	}
	return out
}

func (r *GlamourRenderer) styleOption() glamour.TermRendererOption {
	if r.Style == "" || r.Style == "auto" {
		return glamour.WithAutoStyle()
	}
	return glamour.WithStylePath(r.Style)
}
