package textplot

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Draw bars, histograms and sparklines as text"
	MsgBarShort        = "Draw a proportional bar for each value"
	MsgDensityShort    = "Draw a histogram strip of the values"
	MsgSparklineShort  = "Draw a sparkline of the values"
	MsgPalettesShort   = "List glyph palettes, themes and bar shapes"
	MsgConfigShort     = "Inspect or create the configuration file"
	MsgConfigShowShort = "Print the effective configuration"
	MsgConfigPathShort = "Print the path of the user configuration file"
	MsgConfigInitShort = "Write the default configuration to the user file"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Error messages
	MsgErrLoadStyles = "failed to load styles: %w"
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrReadInput  = "failed to read values: %w"
	MsgErrNoCommand  = "no command specified"
	MsgErrNoHelp     = "help command not found"

	// Global flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat  = "Output format: auto, term, text or json"
	MsgFlagConfig  = "Config file (default is $XDG_CONFIG_HOME/textplot/config.toml)"
	MsgFlagWorkers = "Rows plotted in parallel (0 uses output.workers, then one per CPU)"
	MsgFlagRows    = "Treat each input line as a separate row"

	// Plot flag descriptions
	MsgFlagPreset      = "Apply a named option set from the [presets] config section"
	MsgFlagFit         = "Make the plot as wide as the terminal"
	MsgFlagWidth       = "Number of glyphs in the plot"
	MsgFlagMin         = "Value drawn as an empty bar"
	MsgFlagMax         = "Value drawn as a full bar"
	MsgFlagOn          = "Glyph for filled cells (overrides shape and color)"
	MsgFlagOff         = "Glyph for empty cells (overrides shape and color)"
	MsgFlagOnColor     = "Color of filled cells"
	MsgFlagOffColor    = "Color of empty cells"
	MsgFlagShape       = "Bar glyph shape: square, circle or heart"
	MsgFlagFilled      = "Draw empty cells; --filled=false draws an outline bar"
	MsgFlagThreshold   = "Color filled cells by value, as value:color (repeatable)"
	MsgFlagStyle       = "Density style, see 'textplot palettes density'"
	MsgFlagGraphChars  = "Explicit density glyphs, lowest first (overrides style)"
	MsgFlagMarker      = "Glyph drawn in the bin holding --marker-value"
	MsgFlagMarkerValue = "Value whose bin is marked"
	MsgFlagMode        = "Sparkline mode: absolute, delta or trend"
	MsgFlagTheme       = "Glyph theme for the mode, see 'textplot palettes'"
	MsgFlagForce       = "Overwrite an existing configuration file"

	// Status messages
	MsgFitIgnored = "--fit ignored, output is not a terminal"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/bar-long.txt
	msgBarLongRaw string
	MsgBarLong    = strings.TrimSpace(msgBarLongRaw)

	//go:embed msgs/bar-example.txt
	msgBarExampleRaw string
	MsgBarExample    = strings.TrimRight(msgBarExampleRaw, "\n")

	//go:embed msgs/density-long.txt
	msgDensityLongRaw string
	MsgDensityLong    = strings.TrimSpace(msgDensityLongRaw)

	//go:embed msgs/density-example.txt
	msgDensityExampleRaw string
	MsgDensityExample    = strings.TrimRight(msgDensityExampleRaw, "\n")

	//go:embed msgs/sparkline-long.txt
	msgSparklineLongRaw string
	MsgSparklineLong    = strings.TrimSpace(msgSparklineLongRaw)

	//go:embed msgs/sparkline-example.txt
	msgSparklineExampleRaw string
	MsgSparklineExample    = strings.TrimRight(msgSparklineExampleRaw, "\n")

	//go:embed msgs/palettes-long.txt
	msgPalettesLongRaw string
	MsgPalettesLong    = strings.TrimSpace(msgPalettesLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
