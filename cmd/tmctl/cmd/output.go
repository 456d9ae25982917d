package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	domain "github.com/donaldgifford/price-trigger-monitor/pkg/types"
)

const timeLayout = "2006-01-02 15:04:05"

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

// describeConfig renders a trigger config as sorted key=value pairs.
func describeConfig(cfg map[string]any) string {
	keys := make([]string, 0, len(cfg))
	for k := range cfg {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, cfg[k]))
	}
	return strings.Join(parts, " ")
}

func lastPrice(t *domain.Trigger) string {
	if t.LastFetchedPrice == nil || t.LastFetchedPrice.Price == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f (%s)", *t.LastFetchedPrice.Price, t.LastFetchedPrice.Vendor)
}

func printTriggersTable(w io.Writer, triggers []domain.Trigger) error {
	tw := newTabWriter(w)
	tw.writef("ID\tUSER\tTYPE\tEXPECTED\tACTIVE\tTRACKED\tNEXT CHECK\tSTATUS\n")
	for i := range triggers {
		t := &triggers[i]
		tw.writef("%s\t%s\t%s\t%.2f\t%v\t%v\t%s\t%s\n",
			t.ID,
			t.UserID,
			t.EventType,
			t.ExpectedPrice,
			t.IsActive,
			t.IsTracked,
			t.NextCheck.Local().Format(timeLayout),
			orDash(string(t.CheckStatus)),
		)
	}
	return tw.finish()
}

func printTriggerDetail(w io.Writer, t *domain.Trigger) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%s\n", t.ID)
	tw.writef("User:\t%s\n", t.UserID)
	tw.writef("Type:\t%s\n", t.EventType)
	tw.writef("Config:\t%s\n", describeConfig(t.Config))
	tw.writef("Expected:\t%.2f\n", t.ExpectedPrice)
	tw.writef("Duration:\t%s\n", orDash(t.TimeDuration))
	tw.writef("Active:\t%v\n", t.IsActive)
	tw.writef("Tracked:\t%v\n", t.IsTracked)
	tw.writef("Next Check:\t%s\n", t.NextCheck.Local().Format(timeLayout))
	tw.writef("Status:\t%s\n", orDash(string(t.CheckStatus)))
	tw.writef("Last Price:\t%s\n", lastPrice(t))
	tw.writef("Created:\t%s\n", t.CreatedAt.Local().Format(timeLayout))
	return tw.finish()
}

func printNotificationsTable(w io.Writer, ns []domain.Notification) error {
	tw := newTabWriter(w)
	tw.writef("ID\tTRIGGER\tVENDOR\tPRICE\tREAD\tCREATED\tMESSAGE\n")
	for i := range ns {
		n := &ns[i]
		tw.writef("%s\t%s\t%s\t%.2f\t%v\t%s\t%s\n",
			n.ID,
			n.TriggerID,
			n.Vendor,
			n.Price,
			n.Read,
			n.CreatedAt.Local().Format(timeLayout),
			truncate(n.Message, 50),
		)
	}
	return tw.finish()
}

func printDashboard(w io.Writer, d *domain.Dashboard) error {
	tw := newTabWriter(w)
	tw.writef("Triggers:\t%d\n", d.TotalTriggers)
	tw.writef("Active:\t%d\n", d.ActiveTriggers)
	tw.writef("Inactive:\t%d\n", d.InactiveTriggers)
	tw.writef("Tracked:\t%d\n", d.TrackedTriggers)
	tw.writef("Unread Alerts:\t%d\n", d.UnreadAlerts)
	if err := tw.finish(); err != nil {
		return err
	}
	if len(d.RecentAlerts) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "\nRecent alerts:"); err != nil {
		return err
	}
	return printNotificationsTable(w, d.RecentAlerts)
}

func printJobRunsTable(w io.Writer, runs []domain.JobRun) error {
	tw := newTabWriter(w)
	tw.writef("JOB\tSTATUS\tSTARTED\tCOMPLETED\tROWS\tERROR\n")
	for i := range runs {
		r := &runs[i]
		completed := "-"
		if r.CompletedAt != nil {
			completed = r.CompletedAt.Local().Format(timeLayout)
		}
		rows := "-"
		if r.RowsAffected != nil {
			rows = fmt.Sprintf("%d", *r.RowsAffected)
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\n",
			r.JobName,
			r.Status,
			r.StartedAt.Local().Format(timeLayout),
			completed,
			rows,
			truncate(r.ErrorText, 40),
		)
	}
	return tw.finish()
}

func printQueueStats(w io.Writer, s *domain.QueueStats) error {
	tw := newTabWriter(w)
	tw.writef("Pending:\t%d\n", s.Pending)
	tw.writef("Processing:\t%d\n", s.Processing)
	tw.writef("Done:\t%d\n", s.Done)
	tw.writef("Failed:\t%d\n", s.Failed)
	return tw.finish()
}

func printQueueJobsTable(w io.Writer, jobs []domain.Job) error {
	tw := newTabWriter(w)
	tw.writef("ID\tTRIGGER\tSTATUS\tATTEMPT\tCREATED\tERROR\n")
	for i := range jobs {
		j := &jobs[i]
		tw.writef("%s\t%s\t%s\t%d\t%s\t%s\n",
			j.ID,
			j.TriggerID,
			j.Status,
			j.Attempt,
			j.CreatedAt.Local().Format(timeLayout),
			truncate(j.Error, 40),
		)
	}
	return tw.finish()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// parseConfigArgs turns key=value pairs into a trigger config. Values that
// parse as numbers are sent as numbers.
func parseConfigArgs(args []string) (map[string]any, error) {
	cfg := make(map[string]any, len(args))
	for _, a := range args {
		k, v, ok := strings.Cut(a, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("config %q must be key=value", a)
		}
		var n json.Number
		if err := json.Unmarshal([]byte(v), &n); err == nil {
			if f, err := n.Float64(); err == nil {
				cfg[k] = f
				continue
			}
		}
		cfg[k] = v
	}
	return cfg, nil
}
