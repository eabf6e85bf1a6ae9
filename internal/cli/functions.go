package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/sorokit/internal/cli/render"
	"github.com/trebuchet-org/sorokit/internal/usecase"
)

// NewFunctionsCmd creates the functions command
func NewFunctionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "functions [filter]",
		Aliases: []string{"fns", "ls"},
		Short:   "List the functions of a contract interface",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ListFunctionsParams{Schema: app.Config.Schema}
			if len(args) > 0 {
				params.Filter = args[0]
			}

			result, err := app.ListFunctions.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.WriteJSON(cmd.OutOrStdout(), result.Functions)
			}
			return render.NewFunctionsRenderer(cmd.OutOrStdout()).Render(result)
		},
	}
}
