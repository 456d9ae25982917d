package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	domain "github.com/donaldgifford/price-trigger-monitor/pkg/types"
)

func jobsCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "jobs",
		Short: "View scheduler job history",
		Long: "View the execution history of scheduled jobs (scan, reap, purge).\n" +
			"Each run records status, rows affected, and any error.",
	}
	root.AddCommand(jobsListCmd(), jobsHistoryCmd())
	return root
}

func jobsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List latest run per job",
		Example: `  tmctl jobs list
  tmctl jobs list --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runs, err := newClient().ListJobRuns(cmd.Context())
			if err != nil {
				return err
			}
			return renderJobRuns(cmd, runs, "No job runs found.")
		},
	}
}

func jobsHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history <job_name>",
		Short: "Show run history for a job",
		Args:  cobra.ExactArgs(1),
		Example: `  tmctl jobs history scan
  tmctl jobs history reap --limit 5 --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := newClient().GetJobHistory(cmd.Context(), args[0], limit)
			if err != nil {
				return err
			}
			return renderJobRuns(cmd, runs, fmt.Sprintf("No runs found for job %q.", args[0]))
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of runs")
	return cmd
}

func renderJobRuns(cmd *cobra.Command, runs []domain.JobRun, empty string) error {
	out := cmd.OutOrStdout()
	if jsonOutput() {
		return outputJSON(out, runs)
	}
	if len(runs) == 0 {
		fmt.Fprintln(out, empty)
		return nil
	}
	return printJobRunsTable(out, runs)
}
