package panels

import "github.com/grafana/grafana-foundation-sdk/go/timeseries"

// ScanThroughput compares due triggers found with jobs enqueued.
func ScanThroughput() *timeseries.PanelBuilder {
	return series("Scan Throughput", "Due triggers found and jobs enqueued per second").
		WithTarget(PromQuery("ptm:scan_due:rate5m", "due", "A")).
		WithTarget(PromQuery("ptm:scan_enqueued:rate5m", "enqueued", "B")).
		Unit("ops").
		Legend(TableLegend("mean", "max"))
}

// ScanDuration charts the p95 duration of one scan.
func ScanDuration() *timeseries.PanelBuilder {
	return series("Scan Duration (p95)", "95th percentile duration of a due-trigger scan").
		WithTarget(PromQuery(Quantile(0.95, "ptm_scan_duration_seconds"), "p95", "A")).
		Unit("s").
		Thresholds(ThresholdsGreenYellowRed(10, 30))
}

// ScanProblems charts claim conflicts next to per-trigger scan errors.
// A steady conflict rate means two schedulers are racing.
func ScanProblems() *timeseries.PanelBuilder {
	return series("Scan Conflicts & Errors",
		"Triggers claimed by a concurrent scan, and triggers the scan failed to claim or enqueue").
		Span(FullWidth).
		WithTarget(PromQuery(Rate("ptm_scan_claim_conflicts_total"), "conflicts", "A")).
		WithTarget(PromQuery("ptm:scan_errors:rate5m", "errors", "B")).
		Unit("ops")
}
