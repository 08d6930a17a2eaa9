package functions

import (
	"strings"

	"github.com/arthur-debert/textplot/pkg/errors"
	"github.com/arthur-debert/textplot/pkg/registry"
)

// Plotter renders one row of values.
type Plotter interface {
	Plot(values []float64) string
	// Width is the number of glyphs each plot spans
	Width() int64
}

type plotter struct {
	width int64
	plot  func(values []float64) string
}

func (p plotter) Plot(values []float64) string { return p.plot(values) }

func (p plotter) Width() int64 { return p.width }

// Binder turns named options into a Plotter.
type Binder func(args Args) (Plotter, error)

var binders = registry.New[Binder]()

func init() {
	registry.MustRegister(binders, "bar", func(args Args) (Plotter, error) {
		c, err := BindBar(args)
		if err != nil {
			return nil, err
		}
		// a bar plots a scalar; rows of any other length are left blank
		return plotter{width: c.Width(), plot: func(values []float64) string {
			if len(values) != 1 {
				return ""
			}
			return c.Render(values[0])
		}}, nil
	})
	registry.MustRegister(binders, "density", func(args Args) (Plotter, error) {
		c, err := BindDensity(args)
		if err != nil {
			return nil, err
		}
		return plotter{width: c.Width(), plot: c.Render}, nil
	})
	registry.MustRegister(binders, "sparkline", func(args Args) (Plotter, error) {
		c, err := BindSparkline(args)
		if err != nil {
			return nil, err
		}
		return plotter{width: c.Width(), plot: c.Render}, nil
	})
	binders.Freeze()
}

// Names returns the registered function names.
func Names() []string {
	return binders.List()
}

// Lookup returns the binder registered under name.
func Lookup(name string) (Binder, error) {
	b, err := binders.Get(name)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrUnknownFunction, "unknown function '%s', available are <%s>",
			name, strings.Join(binders.List(), ", ")).
			WithDetail("function", name)
	}
	return b, nil
}

// Bind looks name up and binds args in one step.
func Bind(name string, args Args) (Plotter, error) {
	b, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return b(args)
}
