package main

import (
	"fmt"
	"os"

	"github.com/trebuchet-org/sorokit/internal/cli"
	"github.com/trebuchet-org/sorokit/internal/cli/render"
)

func main() {
	rootCmd := cli.NewRootCmd()
	rootCmd.SilenceErrors = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, render.FormatError(err.Error()))
		os.Exit(1)
	}
}
