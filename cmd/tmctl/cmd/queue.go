package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	domain "github.com/donaldgifford/price-trigger-monitor/pkg/types"
)

func queueCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "queue",
		Short: "Inspect the price check queue",
	}
	root.AddCommand(queueStatsCmd(), queueJobsCmd())
	return root
}

func queueStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show job counts per status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := newClient().QueueStats(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), stats)
			}
			return printQueueStats(cmd.OutOrStdout(), stats)
		},
	}
}

func queueJobsCmd() *cobra.Command {
	var (
		status string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "List queued jobs, newest first",
		Example: `  tmctl queue jobs --status failed
  tmctl queue jobs --limit 100 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			jobs, err := newClient().ListQueueJobs(cmd.Context(), domain.JobStatus(status), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, jobs)
			}
			if len(jobs) == 0 {
				fmt.Fprintln(out, "No jobs found.")
				return nil
			}
			return printQueueJobsTable(out, jobs)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by status (pending, processing, done, failed)")
	cmd.Flags().IntVar(&limit, "limit", 50, "maximum number of jobs")
	return cmd
}
