package panels

import "github.com/grafana/grafana-foundation-sdk/go/timeseries"

// QueueDepth charts jobs per status.
func QueueDepth() *timeseries.PanelBuilder {
	return series("Queue Depth", "Jobs per status, sampled at each reap").
		WithTarget(PromQuery("sum("+Sel("ptm_queue_jobs")+") by (status)", "{{status}}", "A")).
		Legend(TableLegend("last", "max"))
}

// LeaseExpiries charts leases that ran out and the jobs redelivered for them.
func LeaseExpiries() *timeseries.PanelBuilder {
	return series("Lease Expiries", "Leases that expired before ack or fail, and jobs redelivered as a result").
		WithTarget(PromQuery("increase("+Sel("ptm_queue_expired_total")+"[1h])", "expired", "A")).
		WithTarget(PromQuery("increase("+Sel("ptm_queue_redelivered_total")+"[1h])", "redelivered", "B"))
}

// JobOutcomes charts processed jobs by outcome.
func JobOutcomes() *timeseries.PanelBuilder {
	return series("Job Outcomes", "Processed jobs per second by outcome").
		WithTarget(PromQuery("ptm:worker_jobs:rate5m", "{{outcome}}", "A")).
		Unit("ops").
		Legend(TableLegend("mean", "max"))
}

// JobDuration charts p50 and p95 time per job.
func JobDuration() *timeseries.PanelBuilder {
	const h = "ptm_worker_job_duration_seconds"
	return series("Job Duration", "Time to process one job, including the price lookup").
		WithTarget(PromQuery(Quantile(0.50, h), "p50", "A")).
		WithTarget(PromQuery(Quantile(0.95, h), "p95", "B")).
		Unit("s")
}

// ResolverLatency charts p95 lookup latency per resolver.
func ResolverLatency() *timeseries.PanelBuilder {
	return series("Resolver Latency (p95)", "95th percentile price lookup latency per resolver").
		WithTarget(PromQuery(Quantile(0.95, "ptm_resolver_duration_seconds", "resolver"), "{{resolver}}", "A")).
		Unit("s").
		Thresholds(ThresholdsGreenYellowRed(10, 30))
}

// ResolverFailures charts resolver errors, lookups where no vendor had a
// price, and lookups refused by the daily quota.
func ResolverFailures() *timeseries.PanelBuilder {
	return series("Resolver Failures", "Failed or empty resolver lookups, plus daily quota rejections").
		WithTarget(PromQuery("ptm:resolver_errors:rate5m", "{{resolver}} errors", "A")).
		WithTarget(PromQuery(Rate("ptm_resolver_unresolved_total"), "unresolved", "B")).
		WithTarget(PromQuery(Rate("ptm_resolver_daily_limit_hits_total"), "quota rejected", "C")).
		Unit("ops")
}
