// Package functions exposes the three plotting operations as named-option
// calls: an Args map is bound once into a validated configuration, which is
// then applied to any number of rows.
package functions

import (
	"sort"

	"github.com/arthur-debert/textplot/pkg/bar"
	"github.com/arthur-debert/textplot/pkg/density"
	"github.com/arthur-debert/textplot/pkg/sparkline"
)

// Args holds named options as they arrive from a config file, flags or code.
type Args map[string]interface{}

// Names returns the option names in sorted order.
func (a Args) Names() []string {
	out := make([]string, 0, len(a))
	for k := range a {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Merge returns a new Args holding a's entries overlaid with over's.
func (a Args) Merge(over Args) Args {
	out := make(Args, len(a)+len(over))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range over {
		out[k] = v
	}
	return out
}

// BindBar builds a bar configuration from args on top of bar.DefaultOptions.
func BindBar(args Args) (*bar.Config, error) {
	opts := bar.DefaultOptions()
	if err := decode("bar", args, &opts); err != nil {
		return nil, err
	}
	return bar.New(opts)
}

// BindDensity builds a density configuration from args on top of
// density.DefaultOptions.
func BindDensity(args Args) (*density.Config, error) {
	opts := density.DefaultOptions()
	if err := decode("density", args, &opts); err != nil {
		return nil, err
	}
	return density.New(opts)
}

// BindSparkline builds a sparkline configuration from args on top of
// sparkline.DefaultOptions.
func BindSparkline(args Args) (*sparkline.Config, error) {
	opts := sparkline.DefaultOptions()
	if err := decode("sparkline", args, &opts); err != nil {
		return nil, err
	}
	return sparkline.New(opts)
}
