package palette

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/textplot/pkg/errors"
	"github.com/arthur-debert/textplot/pkg/registry"
)

// Palette is an ordered list of glyphs, lowest intensity first.
type Palette []string

// First returns the lowest-intensity glyph, or "" for an empty palette.
func (p Palette) First() string {
	if len(p) == 0 {
		return ""
	}
	return p[0]
}

// Last returns the highest-intensity glyph, or "" for an empty palette.
func (p Palette) Last() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Middle returns the glyph at len/2, or "" for an empty palette.
func (p Palette) Middle() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)/2]
}

// Namespace selects which family of palettes a name is resolved in.
type Namespace int

const (
	// Density holds histogram styles
	Density Namespace = iota
	// Absolute holds sparkline themes for absolute values
	Absolute
	// Delta holds three-glyph down/same/up themes
	Delta
	// Trend holds five-glyph themes with change magnitude
	Trend
)

var namespaceNames = map[Namespace]string{
	Density:  "density",
	Absolute: "absolute",
	Delta:    "delta",
	Trend:    "trend",
}

// String returns the namespace name
func (n Namespace) String() string {
	if s, ok := namespaceNames[n]; ok {
		return s
	}
	return fmt.Sprintf("namespace(%d)", int(n))
}

// Namespaces returns every namespace in declaration order.
func Namespaces() []Namespace {
	return []Namespace{Density, Absolute, Delta, Trend}
}

// ParseNamespace resolves a namespace by name.
func ParseNamespace(s string) (Namespace, error) {
	for _, ns := range Namespaces() {
		if ns.String() == s {
			return ns, nil
		}
	}
	return 0, errors.Newf(errors.ErrInvalidInput, "unknown palette namespace '%s' must be one of <density, absolute, delta, trend>", s)
}

// MinLength is the smallest palette a namespace's renderer can use.
func (n Namespace) MinLength() int {
	switch n {
	case Delta:
		return 3
	case Trend:
		return 5
	default:
		return 1
	}
}

var (
	namespaces = map[Namespace]registry.Registry[Palette]{}
	defaults   = map[Namespace]string{
		Density:  "shaded",
		Absolute: "utf8_blocks",
		Delta:    "arrows",
		Trend:    "arrows",
	}
)

func init() {
	for ns, table := range map[Namespace]map[string]Palette{
		Density:  densityStyles,
		Absolute: absoluteThemes,
		Delta:    deltaThemes,
		Trend:    trendThemes,
	} {
		reg := registry.New[Palette]()
		for name, p := range table {
			registry.MustRegister(reg, name, p)
		}
		reg.Freeze()
		namespaces[ns] = reg
	}
}

// Lookup returns a copy of the named palette in ns. An unknown name yields
// ErrUnknownStyle for density and ErrUnknownTheme for sparkline namespaces;
// the message lists the valid names.
func Lookup(ns Namespace, name string) (Palette, error) {
	reg, ok := namespaces[ns]
	if !ok {
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown palette namespace %s", ns)
	}

	p, err := reg.Get(name)
	if err != nil {
		code, kind := errors.ErrUnknownTheme, "theme"
		if ns == Density {
			code, kind = errors.ErrUnknownStyle, "style"
		}
		return nil, errors.Wrapf(err, code, "unknown %s '%s' for %s, available are <%s>",
			kind, name, ns, strings.Join(reg.List(), ", ")).
			WithDetail("namespace", ns.String()).
			WithDetail("name", name)
	}

	out := make(Palette, len(p))
	copy(out, p)
	return out, nil
}

// Names returns the sorted palette names of ns.
func Names(ns Namespace) []string {
	reg, ok := namespaces[ns]
	if !ok {
		return nil
	}
	return reg.List()
}

// Default returns the name used when no palette is requested for ns.
func Default(ns Namespace) string {
	return defaults[ns]
}
