package textplot

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/textplot/pkg/commands"
)

func newPalettesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "palettes [namespace]",
		Short:     MsgPalettesShort,
		Long:      MsgPalettesLong,
		Example:   "  textplot palettes\n  textplot palettes trend",
		GroupID:   "misc",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: commands.PaletteNamespaces(),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := commands.ListPalettesOptions{}
			if len(args) == 1 {
				opts.Namespace = args[0]
			}
			result, err := commands.ListPalettes(opts)
			if err != nil {
				return err
			}
			// output.format is honoured when the config loads; a broken
			// file must not hide the listing
			_, _ = a.config()
			return a.render(cmd, result)
		},
	}
}
