package plot

import (
	"context"

	"github.com/arthur-debert/textplot/pkg/batch"
	"github.com/arthur-debert/textplot/pkg/config"
	"github.com/arthur-debert/textplot/pkg/errors"
	"github.com/arthur-debert/textplot/pkg/functions"
	"github.com/arthur-debert/textplot/pkg/logging"
	"github.com/arthur-debert/textplot/pkg/ui/display"
)

// PlotOptions holds options for the bar, density and sparkline commands
type PlotOptions struct {
	// Function is the plot to draw. It may be left empty when Preset names
	// the function.
	Function string
	// Preset names an option set from the [presets] config section
	Preset string
	// Args are explicit options; they override presets and config defaults
	Args functions.Args
	// Rows are plotted independently, one output line each
	Rows [][]float64
	// Workers bounds the row pool; 0 falls back to output.workers
	Workers int

	Config *config.Config
}

// Plot binds the requested function once and renders every row with it.
func Plot(ctx context.Context, opts PlotOptions) (*display.PlotResult, error) {
	logger := logging.GetLogger("commands.plot")
	defer logging.LogOperationStart(logger, "plot")()

	function, args, err := Resolve(opts)
	if err != nil {
		return nil, err
	}

	plotter, err := functions.Bind(function, args)
	if err != nil {
		return nil, err
	}

	workers := opts.Workers
	if workers <= 0 && opts.Config != nil {
		workers = opts.Config.Output.Workers
	}

	rows, err := batch.Map(ctx, opts.Rows, workers, func(values []float64) display.PlotRow {
		return display.PlotRow{Samples: len(values), Plot: plotter.Plot(values)}
	})
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("function", function).
		Int("rows", len(rows)).
		Msg("Plotted rows")

	return &display.PlotResult{
		Function: function,
		Preset:   opts.Preset,
		Width:    plotter.Width(),
		Rows:     rows,
	}, nil
}

// Resolve works out the function to call and its options, layering config
// defaults, then the preset, then explicit args.
func Resolve(opts PlotOptions) (string, functions.Args, error) {
	cfg := opts.Config
	if cfg == nil {
		return "", nil, errors.New(errors.ErrInternal, "plot called without a configuration")
	}

	function := opts.Function
	var presetArgs functions.Args
	if opts.Preset != "" {
		presetFunction, args, err := cfg.Preset(opts.Preset)
		if err != nil {
			return "", nil, err
		}
		if function == "" {
			function = presetFunction
		}
		if function != presetFunction {
			return "", nil, errors.Newf(errors.ErrConfigValid, "preset '%s' is for %s, not %s",
				opts.Preset, presetFunction, function).
				WithDetail("preset", opts.Preset)
		}
		presetArgs = args
	}

	if function == "" {
		return "", nil, errors.New(errors.ErrInvalidInput, "no plot function given")
	}
	if _, err := functions.Lookup(function); err != nil {
		return "", nil, err
	}

	return function, cfg.Defaults(function).Merge(presetArgs).Merge(opts.Args), nil
}
