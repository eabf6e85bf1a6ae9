package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/sorokit/internal/cli/render"
	"github.com/trebuchet-org/sorokit/internal/usecase"
)

// NewEncodeCmd creates the encode command
func NewEncodeCmd() *cobra.Command {
	var argsFile string
	var argFlags []string
	var raw bool

	cmd := &cobra.Command{
		Use:   "encode [function]",
		Short: "Encode call arguments as ScVal XDR",
		Long: `Encode the arguments of a contract function as base64 XDR ScVal values.

Values come from an arguments file (JSON or YAML), from --arg flags, which
override the file, and from interactive prompts for anything still missing.
Composite values (vectors, maps, structs, enums) are written as JSON.

Examples:
  sorokit encode transfer --arg from=GA... --arg to=CA... --arg amount=1000
  sorokit encode place --schema orders --args order.yaml
  sorokit encode swap --arg 'path=["CA...","CB..."]' --raw`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			values, err := parseArgFlags(argFlags)
			if err != nil {
				return err
			}

			params := usecase.EncodeArgumentsParams{
				Schema:   app.Config.Schema,
				ArgsFile: argsFile,
				Values:   values,
			}
			if len(args) > 0 {
				params.Function = args[0]
			}

			result, err := app.EncodeArguments.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.WriteJSON(cmd.OutOrStdout(), render.NewEncodeJSON(result))
			}
			return render.NewEncodeRenderer(cmd.OutOrStdout(), raw).Render(result)
		},
	}

	cmd.Flags().StringVarP(&argsFile, "args", "a", "", "JSON or YAML file of argument values keyed by name")
	cmd.Flags().StringArrayVar(&argFlags, "arg", nil, "Argument value as name=value (repeatable)")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print only the base64 values, one per line")

	return cmd
}
