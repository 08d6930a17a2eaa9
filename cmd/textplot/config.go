package textplot

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/textplot/pkg/commands"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: MsgConfigShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}
			result, err := commands.ShowConfig(cfg)
			if err != nil {
				return err
			}
			return a.render(cmd, result)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: MsgConfigPathShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.render(cmd, commands.ConfigPath(a.configPath))
		},
	})

	initCmd := &cobra.Command{
		Use:   "init",
		Short: MsgConfigInitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			result, err := commands.InitConfig(commands.InitConfigOptions{
				Path:  a.configPath,
				Force: force,
			})
			if err != nil {
				return err
			}
			return a.render(cmd, result)
		},
	}
	initCmd.Flags().BoolP("force", "f", false, MsgFlagForce)
	cmd.AddCommand(initCmd)

	return cmd
}
