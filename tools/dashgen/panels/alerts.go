package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// NotificationsRate charts recorded price alerts.
func NotificationsRate() *timeseries.PanelBuilder {
	return series("Alerts Recorded", "Notifications recorded per second for vendors within the threshold").
		WithTarget(PromQuery("ptm:notifications_created:rate5m", "alerts/s", "A"))
}

// NotificationLatency charts p95 chat push latency per backend.
func NotificationLatency() *timeseries.PanelBuilder {
	return series("Push Latency (p95)", "95th percentile Discord and Slack webhook latency").
		WithTarget(PromQuery(Quantile(0.95, "ptm_notification_duration_seconds", "backend"), "{{backend}}", "A")).
		Unit("s").
		Thresholds(ThresholdsGreenYellowRed(1, 5))
}

// NotificationFailures shows chat push failures over the past day. The
// stored notification is unaffected by a failed push.
func NotificationFailures() *stat.PanelBuilder {
	return single("Push Failures (24h)", "Failed chat pushes in the last 24 hours",
		"increase("+Sel("ptm_notification_failures_total")+"[24h])").
		Height(TSHeight).
		Span(FullWidth).
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		GraphMode(common.BigValueGraphModeArea)
}
