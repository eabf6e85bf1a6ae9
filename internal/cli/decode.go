package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/sorokit/internal/cli/render"
	"github.com/trebuchet-org/sorokit/internal/usecase"
)

// NewDecodeCmd creates the decode command
func NewDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <function> [xdr]",
		Short: "Render a function's XDR return value",
		Long: `Render the base64 XDR ScVal returned by a contract function, using the
function's declared output type. The value is read from stdin when it is
omitted or given as "-".

Examples:
  sorokit decode balance AAAACgAAAAAAAAAAAAAAAAAAA+g=
  soroban contract invoke ... | sorokit decode get_order -`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			value := "-"
			if len(args) == 2 {
				value = args[1]
			}
			if value == "-" {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read stdin: %w", err)
				}
				value = string(data)
			}

			result, err := app.DecodeResult.Run(cmd.Context(), usecase.DecodeResultParams{
				Schema:   app.Config.Schema,
				Function: args[0],
				XDR:      value,
			})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.WriteJSON(cmd.OutOrStdout(), render.NewDecodeJSON(result))
			}
			return render.NewDecodeRenderer(cmd.OutOrStdout()).Render(result)
		},
	}
}
