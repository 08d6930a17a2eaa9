// Package glyph holds the primitives shared by every renderer. A glyph is an
// opaque symbol: it may span several runes (emoji with variation selectors,
// multi-character ASCII art such as "//"), so strips are built by
// concatenating whole glyphs and measured in grapheme clusters, never bytes.
package glyph

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/arthur-debert/textplot/pkg/errors"
)

// MaxWidth is the widest strip a renderer can be configured for.
const MaxWidth = 1 << 16

// CheckWidth rejects widths above MaxWidth. Widths <= 0 are accepted and
// render as "".
func CheckWidth(width int64) error {
	if width > MaxWidth {
		return errors.Newf(errors.ErrConfigValid, "width %d exceeds the maximum of %d", width, MaxWidth).
			WithDetail("width", width)
	}
	return nil
}

// Join concatenates glyphs without separators.
func Join(glyphs []string) string {
	n := 0
	for _, g := range glyphs {
		n += len(g)
	}
	var b strings.Builder
	b.Grow(n)
	for _, g := range glyphs {
		b.WriteString(g)
	}
	return b.String()
}

// Repeat returns g repeated n times. n <= 0 yields "".
func Repeat(g string, n int64) string {
	if n <= 0 || g == "" {
		return ""
	}
	return strings.Repeat(g, int(n))
}

// Count returns the number of user-perceived characters in s.
func Count(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// Split breaks s into grapheme clusters. It is how a compact glyph string such
// as " .:+#@" becomes a palette.
func Split(s string) []string {
	out := make([]string, 0, len(s))
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		out = append(out, gr.Str())
	}
	return out
}

// Width returns the number of terminal cells s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// PadRight pads s with spaces up to the given display width.
func PadRight(s string, width int) string {
	w := Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
