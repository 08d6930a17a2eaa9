package textplot

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/arthur-debert/textplot/pkg/commands"
	"github.com/arthur-debert/textplot/pkg/functions"
	"github.com/arthur-debert/textplot/pkg/input"
	"github.com/arthur-debert/textplot/pkg/logging"
	"github.com/arthur-debert/textplot/pkg/palette"
	"github.com/arthur-debert/textplot/pkg/sparkline"
)

// optionAnnotation marks a flag as a plot option and carries its option name
const optionAnnotation = "textplot_option"

func newBarCmd(a *app) *cobra.Command {
	cmd := newPlotCmd(a, "bar", MsgBarShort, MsgBarLong, MsgBarExample)
	f := cmd.Flags()
	f.Float64("min", 0, MsgFlagMin)
	f.Float64("max", 1, MsgFlagMax)
	f.String("on", "", MsgFlagOn)
	f.String("off", "", MsgFlagOff)
	f.String("on-color", "red", MsgFlagOnColor)
	f.String("off-color", "white", MsgFlagOffColor)
	f.String("shape", "square", MsgFlagShape)
	f.Bool("filled", true, MsgFlagFilled)
	f.StringArrayP("threshold", "t", nil, MsgFlagThreshold)
	markOptions(f, map[string]string{
		"min": "min", "max": "max", "on": "on", "off": "off",
		"on-color": "on_color", "off-color": "off_color",
		"shape": "shape", "filled": "filled", "threshold": "thresholds",
	})

	_ = cmd.RegisterFlagCompletionFunc("shape", fixedCompletion(palette.ShapeNames()))
	_ = cmd.RegisterFlagCompletionFunc("on-color", fixedCompletion(palette.Colors()))
	_ = cmd.RegisterFlagCompletionFunc("off-color", fixedCompletion(palette.Colors()))
	return cmd
}

func newDensityCmd(a *app) *cobra.Command {
	cmd := newPlotCmd(a, "density", MsgDensityShort, MsgDensityLong, MsgDensityExample)
	f := cmd.Flags()
	f.StringP("style", "s", "shaded", MsgFlagStyle)
	f.String("graph-chars", "", MsgFlagGraphChars)
	f.String("marker", "", MsgFlagMarker)
	f.Float64("marker-value", 0, MsgFlagMarkerValue)
	markOptions(f, map[string]string{
		"style": "style", "graph-chars": "graph_chars",
		"marker": "marker", "marker-value": "marker_value",
	})

	_ = cmd.RegisterFlagCompletionFunc("style", fixedCompletion(palette.Names(palette.Density)))
	return cmd
}

func newSparklineCmd(a *app) *cobra.Command {
	cmd := newPlotCmd(a, "sparkline", MsgSparklineShort, MsgSparklineLong, MsgSparklineExample)
	f := cmd.Flags()
	f.StringP("mode", "m", "absolute", MsgFlagMode)
	f.String("theme", "", MsgFlagTheme)
	markOptions(f, map[string]string{"mode": "mode", "theme": "theme"})

	_ = cmd.RegisterFlagCompletionFunc("mode", fixedCompletion(sparkline.ModeNames()))
	_ = cmd.RegisterFlagCompletionFunc("theme", themeCompletion)
	return cmd
}

// newPlotCmd builds the flags and run logic the three plot commands share.
func newPlotCmd(a *app, function, short, long, example string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     function + " [values...]",
		Short:   short,
		Long:    long,
		Example: example,
		GroupID: "plot",
		RunE: func(cmd *cobra.Command, values []string) error {
			return a.runPlot(cmd, function, values)
		},
	}

	f := cmd.Flags()
	f.Int64P("width", "w", 0, MsgFlagWidth)
	f.StringP("preset", "p", "", MsgFlagPreset)
	f.Bool("fit", false, MsgFlagFit)
	markOptions(f, map[string]string{"width": "width"})

	_ = cmd.RegisterFlagCompletionFunc("preset", a.presetCompletion(function))
	return cmd
}

func (a *app) runPlot(cmd *cobra.Command, function string, values []string) error {
	logger := logging.GetLogger("cmd." + function)

	cfg, err := a.config()
	if err != nil {
		return err
	}

	args, err := optionArgs(cmd.Flags())
	if err != nil {
		return err
	}

	if fit, _ := cmd.Flags().GetBool("fit"); fit && !cmd.Flags().Changed("width") {
		if cols, ok := terminalWidth(cmd.OutOrStdout()); ok {
			args["width"] = fitWidth(function, args, cols)
		} else {
			logger.Warn().Msg(MsgFitIgnored)
		}
	}

	rows, err := a.readRows(cmd, function, values)
	if err != nil {
		return err
	}

	preset, _ := cmd.Flags().GetString("preset")
	logger.Info().
		Str("preset", preset).
		Strs("options", args.Names()).
		Int("rows", len(rows)).
		Msg("Plotting")

	result, err := commands.Plot(cmd.Context(), commands.PlotOptions{
		Function: function,
		Preset:   preset,
		Args:     args,
		Rows:     rows,
		Workers:  a.workers,
		Config:   cfg,
	})
	if err != nil {
		return err
	}
	return a.render(cmd, result)
}

// readRows takes values from the command line, or from stdin when none are
// given. Without --rows all input forms a single series. A bar draws each
// value on its own line.
func (a *app) readRows(cmd *cobra.Command, function string, values []string) ([][]float64, error) {
	var rows [][]float64
	if len(values) > 0 {
		row, err := input.ParseArgs(values)
		if err != nil {
			return nil, fmt.Errorf(MsgErrReadInput, err)
		}
		rows = [][]float64{row}
	} else {
		read, err := input.ReadRows(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf(MsgErrReadInput, err)
		}
		rows = read
		if !a.rows {
			rows = [][]float64{input.Flatten(read)}
		}
	}

	if function != "bar" {
		return rows, nil
	}
	flat := input.Flatten(rows)
	scalars := make([][]float64, len(flat))
	for i, v := range flat {
		scalars[i] = []float64{v}
	}
	return scalars, nil
}

// markOptions tags flags with the option name they set.
func markOptions(f *pflag.FlagSet, names map[string]string) {
	for flag, option := range names {
		_ = f.SetAnnotation(flag, optionAnnotation, []string{option})
	}
}

// optionArgs collects the option flags the user actually set, so unset
// flags never mask config defaults or presets.
func optionArgs(f *pflag.FlagSet) (functions.Args, error) {
	args := functions.Args{}
	var err error
	f.Visit(func(fl *pflag.Flag) {
		names, ok := fl.Annotations[optionAnnotation]
		if !ok || err != nil {
			return
		}
		var v interface{}
		switch fl.Value.Type() {
		case "float64":
			v, err = f.GetFloat64(fl.Name)
		case "int64":
			v, err = f.GetInt64(fl.Name)
		case "bool":
			v, err = f.GetBool(fl.Name)
		case "stringArray":
			v, err = f.GetStringArray(fl.Name)
		default:
			v = fl.Value.String()
		}
		args[names[0]] = v
	})
	return args, err
}

func terminalWidth(w io.Writer) (int, bool) {
	file, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return 0, false
	}
	cols, _, err := term.GetSize(int(file.Fd()))
	if err != nil || cols <= 0 {
		return 0, false
	}
	return cols, true
}

// fitWidth converts terminal columns into a glyph count. Shaped bar glyphs
// are emoji and take two columns each.
func fitWidth(function string, args functions.Args, cols int) int64 {
	if function == "bar" {
		if _, custom := args["on"]; !custom {
			return int64(max(cols/2, 1))
		}
	}
	return int64(cols)
}

func (a *app) presetCompletion(function string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		cfg, err := a.config()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		var names []string
		for _, name := range cfg.PresetNames() {
			if target, _, err := cfg.Preset(name); err == nil && target == function {
				names = append(names, name)
			}
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	}
}

// themeCompletion offers the themes of the mode already on the command line,
// or of every mode.
func themeCompletion(cmd *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	modes := sparkline.ModeNames()
	if cmd.Flags().Changed("mode") {
		m, _ := cmd.Flags().GetString("mode")
		modes = []string{m}
	}
	seen := map[string]bool{}
	var names []string
	for _, name := range modes {
		mode, err := sparkline.ParseMode(name)
		if err != nil {
			continue
		}
		for _, theme := range palette.Names(mode.Namespace()) {
			if !seen[theme] {
				seen[theme] = true
				names = append(names, theme)
			}
		}
	}
	sort.Strings(names)
	return names, cobra.ShellCompDirectiveNoFileComp
}
