package textplot

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/textplot/internal/version"
	"github.com/arthur-debert/textplot/pkg/cobrax/topics"
	"github.com/arthur-debert/textplot/pkg/config"
	"github.com/arthur-debert/textplot/pkg/logging"
	"github.com/arthur-debert/textplot/pkg/ui"
	"github.com/arthur-debert/textplot/pkg/ui/styles"
)

//go:embed topics
var topicsFS embed.FS

// app holds the global flag values and the lazily loaded configuration
// shared by every subcommand.
type app struct {
	verbosity  int
	format     string
	configPath string
	workers    int
	rows       bool

	cfg *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{})
}

// Execute runs the CLI with args and returns the process exit code. Errors
// are rendered to stderr in the selected output format.
func Execute(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := &app{}
	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		a.renderError(os.Stderr, err)
		return 1
	}
	return 0
}

func newRootCmd(a *app) *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:     logging.AppName,
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLoggerWithWriter(cmd.ErrOrStderr(), a.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return errors.New(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVar(&a.format, "format", "", MsgFlagFormat)
	flags.StringVar(&a.configPath, "config", "", MsgFlagConfig)
	flags.IntVar(&a.workers, "workers", 0, MsgFlagWorkers)
	flags.BoolVar(&a.rows, "rows", false, MsgFlagRows)
	_ = rootCmd.RegisterFlagCompletionFunc("format", fixedCompletion(config.Formats))

	rootCmd.AddGroup(&cobra.Group{
		ID:    "plot",
		Title: "PLOTS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newBarCmd(a))
	rootCmd.AddCommand(newDensityCmd(a))
	rootCmd.AddCommand(newSparklineCmd(a))
	rootCmd.AddCommand(newPalettesCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	opts := topics.Options{
		Extensions: []string{".md", ".txt"},
		Renderer:   topics.NewGlamourRenderer(),
	}
	if err := topics.InitializeWithOptions(rootCmd, topicsFS, "topics", opts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// config loads the configuration on first use so that commands which do not
// need it keep working with a broken config file.
func (a *app) config() (*config.Config, error) {
	if a.cfg == nil {
		cfg, err := config.LoadWithOverrides(a.configPath, a.overrides())
		if err != nil {
			return nil, fmt.Errorf(MsgErrLoadConfig, err)
		}
		if cfg.Output.Styles != "" {
			if err := styles.LoadStyles(cfg.Output.Styles); err != nil {
				return nil, fmt.Errorf(MsgErrLoadStyles, err)
			}
		}
		a.cfg = cfg
	}
	return a.cfg, nil
}

// overrides maps the global flags that mirror config keys.
func (a *app) overrides() map[string]interface{} {
	o := map[string]interface{}{}
	// an unknown --format is reported when rendering
	if f, err := ui.ParseFormat(a.format); a.format != "" && err == nil {
		o["output.format"] = f.String()
	}
	if a.workers > 0 {
		o["output.workers"] = a.workers
	}
	return o
}

// outputFormat prefers --format, then output.format from a loaded config.
func (a *app) outputFormat() (ui.Format, error) {
	name := a.format
	if name == "" && a.cfg != nil {
		name = a.cfg.Output.Format
	}
	return ui.ParseFormat(name)
}

func (a *app) render(cmd *cobra.Command, result interface{}) error {
	format, err := a.outputFormat()
	if err != nil {
		return err
	}
	renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	return renderer.RenderResult(result)
}

func (a *app) renderError(w io.Writer, err error) {
	format, ferr := a.outputFormat()
	if ferr != nil {
		format = ui.FormatAuto
	}
	renderer, rerr := ui.NewRenderer(format, w)
	if rerr == nil {
		rerr = renderer.RenderError(err)
	}
	if rerr != nil {
		_, _ = fmt.Fprintln(w, styles.GetStyle("Error").Render(fmt.Sprintf("Error: %v", err)))
	}
}

func fixedCompletion(values []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}
