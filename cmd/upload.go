package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var uploadCmd = &cobra.Command{
	Use:   "upload FILE",
	Short: "Upload a bank statement CSV",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpload,
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	_, c, err := loadClient()
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	if err := c.Upload(cmd.Context(), filepath.Base(args[0]), f); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Uploaded %s\n", filepath.Base(args[0]))
	return nil
}
