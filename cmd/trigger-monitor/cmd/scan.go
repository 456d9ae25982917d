package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Enqueue every due trigger once and exit",
	RunE:  runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.close()

	res, err := a.newScanner().Scan(cmd.Context())
	if err != nil {
		return fmt.Errorf("scanning triggers: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "due: %d  enqueued: %d  skipped: %d\n",
		res.Due, res.Enqueued, res.Skipped)
	return nil
}
