package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
)

func upStat(title, description, metric string) *stat.PanelBuilder {
	return single(title, description, Sel(metric)).
		Thresholds(ThresholdsRedGreen(1)).
		GraphMode(common.BigValueGraphModeNone).
		TextMode(common.BigValueTextModeValue)
}

// HealthzStat returns a stat panel showing the health check status.
func HealthzStat() *stat.PanelBuilder {
	return upStat("Healthz", "Health check status (1 = ok, 0 = failing)", "ptm_healthz_up")
}

// ReadyzStat returns a stat panel showing the readiness check status.
func ReadyzStat() *stat.PanelBuilder {
	return upStat("Readyz", "Readiness check status (1 = ready, 0 = store or queue unreachable)", "ptm_readyz_up")
}

// BacklogStat returns a stat panel showing the number of pending jobs.
func BacklogStat() *stat.PanelBuilder {
	return single("Queue Backlog", "Jobs waiting for a worker, sampled at each reap",
		Sel("ptm_queue_jobs", `status="pending"`)).
		Thresholds(ThresholdsGreenYellowRed(100, 1000)).
		GraphMode(common.BigValueGraphModeArea)
}

// UptimeStat returns a stat panel showing process uptime.
func UptimeStat() *stat.PanelBuilder {
	return single("Uptime", "Time since process start", "time() - "+Sel("process_start_time_seconds")).
		Unit("s").
		Thresholds(ThresholdsGreenOnly()).
		ColorMode(common.BigValueColorModeValue).
		GraphMode(common.BigValueGraphModeNone)
}
