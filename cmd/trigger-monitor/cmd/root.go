// Package cmd implements the CLI commands for trigger-monitor.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "trigger-monitor",
	Short: "Watch vendor prices and alert when they reach a target",
	Long: "Scans user price triggers on a schedule, queues due checks, resolves vendor " +
		"quotes, and records a notification for every vendor priced within the threshold.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
