package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/sorokit/internal/config"
)

// NewVersionCmd creates the version command
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of sorokit",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sorokit version %s\n", config.VersionString())
		},
	}
}
