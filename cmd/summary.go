package cmd

import (
	"fmt"

	"github.com/spendlens/backend/internal/tui"
	"github.com/spf13/cobra"
)

var flagWidth int

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the summary of the latest statement with charts",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().IntVarP(&flagWidth, "width", "w", 72, "Width of the charts")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	cfg, c, err := loadClient()
	if err != nil {
		return err
	}

	view, err := tui.RenderSummary(c.FetchSummary(cmd.Context()), tui.NewFormatter(cfg.Locale), flagWidth)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), view)
	return nil
}
