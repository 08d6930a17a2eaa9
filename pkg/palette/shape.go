package palette

import (
	"sort"
	"strings"

	"github.com/arthur-debert/textplot/pkg/errors"
)

// Shape is the glyph family used by bars.
type Shape int

const (
	Square Shape = iota
	Circle
	Heart
)

var shapeNames = []string{"square", "circle", "heart"}

// String returns the shape name
func (s Shape) String() string {
	if int(s) >= 0 && int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return "unknown"
}

// ParseShape resolves a shape name. The empty string selects Square.
func ParseShape(s string) (Shape, error) {
	if s == "" {
		return Square, nil
	}
	for i, name := range shapeNames {
		if name == s {
			return Shape(i), nil
		}
	}
	return Square, errors.Newf(errors.ErrUnknownShape,
		"'shape' must be one of 'square', 'circle', or 'heart', got '%s'", s).
		WithDetail("shape", s)
}

// ShapeNames returns the valid shape names.
func ShapeNames() []string {
	out := make([]string, len(shapeNames))
	copy(out, shapeNames)
	return out
}

var shapeGlyphs = map[Shape]map[string]string{
	Square: {
		"red": "🟥", "orange": "🟧", "yellow": "🟨", "green": "🟩", "blue": "🟦",
		"purple": "🟪", "brown": "🟫", "black": "⬛", "white": "⬜",
	},
	Circle: {
		"red": "🔴", "orange": "🟠", "yellow": "🟡", "green": "🟢", "blue": "🔵",
		"purple": "🟣", "brown": "🟤", "black": "⚫", "white": "⚪",
	},
	Heart: {
		"red": "❤️", "orange": "🧡", "yellow": "💛", "green": "💚", "blue": "💙",
		"purple": "💜", "brown": "🤎", "black": "🖤", "white": "🤍",
	},
}

// Colors returns the sorted color names every shape supports.
func Colors() []string {
	out := make([]string, 0, len(shapeGlyphs[Square]))
	for c := range shapeGlyphs[Square] {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// ShapeGlyph returns the glyph for color in shape.
func ShapeGlyph(shape Shape, color string) (string, error) {
	table, ok := shapeGlyphs[shape]
	if !ok {
		return "", errors.Newf(errors.ErrUnknownShape, "unknown shape %d", int(shape))
	}
	g, ok := table[color]
	if !ok {
		return "", errors.Newf(errors.ErrUnknownColor, "unknown color value '%s', available are <%s>",
			color, strings.Join(Colors(), ", ")).
			WithDetail("color", color).
			WithDetail("shape", shape.String())
	}
	return g, nil
}
