package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// This is set at build time with -ldflags.
var version = "0.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "spendlens %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
