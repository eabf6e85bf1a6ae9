package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/sorokit/internal/cli/render"
)

// NewConfigCmd creates the config command
func NewConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration",
		Long: `Show the configuration sorokit runs with, merged from sorokit.toml,
.env files, SOROKIT_* environment variables and flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ShowConfig.Run(cmd.Context())
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.WriteJSON(cmd.OutOrStdout(), result.Config)
			}
			return render.NewConfigRenderer(cmd.OutOrStdout()).Render(result)
		},
	}
}
