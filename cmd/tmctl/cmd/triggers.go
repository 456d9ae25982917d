package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/price-trigger-monitor/internal/api/client"
	domain "github.com/donaldgifford/price-trigger-monitor/pkg/types"
)

func triggersCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "triggers",
		Aliases: []string{"trigger"},
		Short:   "Manage price triggers",
		Long: "Manage price triggers. A trigger watches one product (mobile) or route\n" +
			"(flight) and records an alert when a vendor's price is within the\n" +
			"configured threshold of the expected price.",
	}

	root.AddCommand(
		triggersListCmd(),
		triggersTrackedCmd(),
		triggersGetCmd(),
		triggersCreateCmd(),
		triggersDeleteCmd(),
		triggersTrackCmd(true),
		triggersTrackCmd(false),
		triggersCheckCmd(),
	)
	return root
}

func triggersListCmd() *cobra.Command {
	var (
		eventType string
		active    string
		limit     int
		offset    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List triggers",
		Example: `  tmctl triggers list --user u1
  tmctl triggers list --user u1 --active true --type flight --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := apiclient.TriggerFilter{
				EventType: domain.EventType(eventType),
				Limit:     limit,
				Offset:    offset,
			}
			if u, err := userID(); err == nil {
				f.UserID = u
			}
			switch active {
			case "":
			case "true", "false":
				v := active == "true"
				f.Active = &v
			default:
				return fmt.Errorf("--active must be true or false")
			}

			triggers, err := newClient().ListTriggers(cmd.Context(), f)
			if err != nil {
				return err
			}
			return renderTriggers(cmd, triggers)
		},
	}

	cmd.Flags().StringVar(&eventType, "type", "", "filter by event type (mobile, flight)")
	cmd.Flags().StringVar(&active, "active", "", "filter by active status (true, false)")
	cmd.Flags().IntVar(&limit, "limit", 50, "maximum number of triggers")
	cmd.Flags().IntVar(&offset, "offset", 0, "pagination offset")
	return cmd
}

func triggersTrackedCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "tracked",
		Short:   "List the user's tracked mobile triggers",
		Example: `  tmctl triggers tracked --user u1`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			u, err := userID()
			if err != nil {
				return err
			}
			triggers, err := newClient().TrackedTriggers(cmd.Context(), u)
			if err != nil {
				return err
			}
			return renderTriggers(cmd, triggers)
		},
	}
}

func renderTriggers(cmd *cobra.Command, triggers []domain.Trigger) error {
	out := cmd.OutOrStdout()
	if jsonOutput() {
		return outputJSON(out, triggers)
	}
	if len(triggers) == 0 {
		fmt.Fprintln(out, "No triggers found.")
		return nil
	}
	return printTriggersTable(out, triggers)
}

func triggersGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show trigger details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := newClient().GetTrigger(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), t)
			}
			return printTriggerDetail(cmd.OutOrStdout(), t)
		},
	}
}

func triggersCreateCmd() *cobra.Command {
	var (
		eventType  string
		expected   float64
		duration   string
		tracked    bool
		configArgs []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a trigger",
		Long: "Create a trigger. Product or route details are passed as repeated\n" +
			"--config key=value flags; numeric values are sent as numbers. The first\n" +
			"check runs after --after (ISO 8601 or Go duration).",
		Example: `  # Alert when a Galaxy S24 is within the threshold of 74999
  tmctl triggers create --user u1 --type mobile --expected 74999 --after PT10M \
    --config brand_name=Samsung --config model_name="Galaxy S24" \
    --config ram=8192 --config rom=262144

  # Watch a flight route
  tmctl triggers create --user u1 --type flight --expected 5200 --after 1h \
    --config origin=BLR --config destination=DEL --config departure_date=2026-12-01`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			u, err := userID()
			if err != nil {
				return err
			}
			cfg, err := parseConfigArgs(configArgs)
			if err != nil {
				return err
			}

			t, err := newClient().CreateTrigger(cmd.Context(), &apiclient.CreateTriggerRequest{
				UserID:        u,
				EventType:     domain.EventType(eventType),
				Config:        cfg,
				ExpectedPrice: expected,
				TimeDuration:  duration,
				IsTracked:     tracked,
			})
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), t)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created trigger %s (first check %s)\n",
				t.ID, t.NextCheck.Local().Format(timeLayout))
			return nil
		},
	}

	cmd.Flags().StringVar(&eventType, "type", "", "event type (mobile, flight)")
	cmd.Flags().Float64Var(&expected, "expected", 0, "expected price")
	cmd.Flags().StringVar(&duration, "after", "PT0S", "delay before the first check")
	cmd.Flags().BoolVar(&tracked, "tracked", false, "add to the tracked list")
	cmd.Flags().StringArrayVar(&configArgs, "config", nil, "config entry as key=value (repeatable)")
	cobra.CheckErr(cmd.MarkFlagRequired("type"))
	cobra.CheckErr(cmd.MarkFlagRequired("expected"))
	return cmd
}

func triggersDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Deactivate a trigger",
		Long:  "Deactivate a trigger. The trigger and its alerts are kept; it is no longer scanned.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := userID()
			if err != nil {
				return err
			}
			if err := newClient().DeleteTrigger(cmd.Context(), args[0], u); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Trigger %s deactivated.\n", args[0])
			return nil
		},
	}
}

func triggersTrackCmd(tracked bool) *cobra.Command {
	use, short, verb := "track <id>", "Add a trigger to the tracked list", "tracked"
	if !tracked {
		use, short, verb = "untrack <id>", "Remove a trigger from the tracked list", "untracked"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := userID()
			if err != nil {
				return err
			}
			if err := newClient().SetTracked(cmd.Context(), args[0], u, tracked); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Trigger %s %s.\n", args[0], verb)
			return nil
		},
	}
}

func triggersCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <id>",
		Short: "Queue an immediate price check",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := newClient().EnqueueTrigger(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), job)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Queued job %s for trigger %s.\n", job.ID, args[0])
			return nil
		},
	}
}
