package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func notificationsCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"alerts"},
		Short:   "Read price alerts",
	}
	root.AddCommand(notificationsListCmd(), notificationsReadCmd())
	return root
}

func notificationsListCmd() *cobra.Command {
	var (
		unread bool
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the user's alerts, newest first",
		Example: `  tmctl notifications list --user u1
  tmctl notifications list --user u1 --unread --limit 10`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			u, err := userID()
			if err != nil {
				return err
			}
			ns, err := newClient().ListNotifications(cmd.Context(), u, unread, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, ns)
			}
			if len(ns) == 0 {
				fmt.Fprintln(out, "No notifications found.")
				return nil
			}
			return printNotificationsTable(out, ns)
		},
	}

	cmd.Flags().BoolVar(&unread, "unread", false, "only unread alerts")
	cmd.Flags().IntVar(&limit, "limit", 50, "maximum number of alerts")
	return cmd
}

func notificationsReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <id>",
		Short: "Mark an alert as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := userID()
			if err != nil {
				return err
			}
			if err := newClient().MarkNotificationRead(cmd.Context(), args[0], u); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Notification %s marked read.\n", args[0])
			return nil
		},
	}
}

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the user's trigger and alert summary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			u, err := userID()
			if err != nil {
				return err
			}
			d, err := newClient().Dashboard(cmd.Context(), u)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), d)
			}
			return printDashboard(cmd.OutOrStdout(), d)
		},
	}
}
