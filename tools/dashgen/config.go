package main

import "errors"

// KnownMetrics is the set of metric names exported by price-trigger-monitor
// plus recording rule names referenced in dashboards and alerts. Histograms
// are listed by base name.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"ptm_http_request_duration_seconds": true,
	"ptm_http_requests_total":           true,

	// Health metrics.
	"ptm_healthz_up": true,
	"ptm_readyz_up":  true,

	// Scanner metrics.
	"ptm_scans_total":                 true,
	"ptm_scan_duration_seconds":       true,
	"ptm_scan_due_triggers_total":     true,
	"ptm_scan_enqueued_total":         true,
	"ptm_scan_claim_conflicts_total":  true,
	"ptm_scan_errors_total":           true,

	// Scheduler metrics.
	"ptm_scheduler_job_duration_seconds": true,

	// Queue metrics.
	"ptm_queue_operations_total":  true,
	"ptm_queue_redelivered_total": true,
	"ptm_queue_expired_total":     true,
	"ptm_queue_jobs":              true,

	// Worker and resolver metrics.
	"ptm_worker_jobs_total":           true,
	"ptm_worker_job_duration_seconds": true,
	"ptm_resolver_duration_seconds":   true,
	"ptm_resolver_errors_total":       true,
	"ptm_resolver_unresolved_total":   true,
	"ptm_resolver_daily_usage":        true,

	"ptm_resolver_daily_limit_hits_total": true,

	// Notification metrics.
	"ptm_notifications_created_total":   true,
	"ptm_notification_duration_seconds": true,
	"ptm_notification_failures_total":   true,

	// Recording rules.
	"ptm:http_requests:rate5m":         true,
	"ptm:http_errors:rate5m":           true,
	"ptm:scan_due:rate5m":              true,
	"ptm:scan_enqueued:rate5m":         true,
	"ptm:scan_errors:rate5m":           true,
	"ptm:worker_jobs:rate5m":           true,
	"ptm:resolver_errors:rate5m":       true,
	"ptm:notifications_created:rate5m": true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
