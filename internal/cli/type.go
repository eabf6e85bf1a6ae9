package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/sorokit/internal/cli/render"
)

// NewTypeCmd creates the type command
func NewTypeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "type <type-expression>",
		Short: "Show how a type expression is parsed and encoded",
		Long: `Parse a type expression such as Map<Symbol, Vec<Option<I128>>> and show
the wire type each node encodes as. Names with no wire type are custom
types that need a contract interface.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.InspectType.Run(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.WriteJSON(cmd.OutOrStdout(), result.Tree)
			}
			return render.NewTypeTreeRenderer(cmd.OutOrStdout()).Render(result)
		},
	}
}
