// Package metrics defines Prometheus metrics for price-trigger-monitor.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ptm"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "1 when the liveness check last succeeded.",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "1 when the readiness check last succeeded, 0 otherwise.",
	})
)

// Scanner metrics.
var (
	ScansTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scans_total",
		Help:      "Total number of due-trigger scans.",
	})

	ScanDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "scan_duration_seconds",
		Help:      "Duration of due-trigger scans in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	ScanDueTriggersTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scan_due_triggers_total",
		Help:      "Total number of due triggers found by scans.",
	})

	ScanEnqueuedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scan_enqueued_total",
		Help:      "Total number of jobs enqueued by scans.",
	})

	ScanClaimConflictsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scan_claim_conflicts_total",
		Help:      "Total number of due triggers skipped because another scan claimed them.",
	})

	ScanErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scan_errors_total",
		Help:      "Total number of per-trigger scan errors.",
	})
)

// Queue metrics.
var (
	QueueOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "queue_operations_total",
		Help:      "Total number of queue operations by operation and result.",
	}, []string{"op", "result"})

	QueueRedeliveredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "queue_redelivered_total",
		Help:      "Total number of jobs redelivered after their lease expired.",
	})

	QueueExpiredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "queue_expired_total",
		Help:      "Total number of leases that expired before ack or fail.",
	})

	QueueDepth = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "queue_jobs",
		Help:      "Current number of jobs per status.",
	}, []string{"status"})
)

// Worker metrics.
var (
	WorkerJobsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "worker_jobs_total",
		Help:      "Total number of processed jobs by outcome.",
	}, []string{"outcome"})

	WorkerJobDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "worker_job_duration_seconds",
		Help:      "Duration of job processing in seconds.",
		Buckets:   prometheus.DefBuckets,
	})
)

// Resolver metrics.
var (
	ResolverDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "resolver_duration_seconds",
		Help:      "Duration of price resolver calls in seconds.",
		Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 20, 30, 60},
	}, []string{"resolver"})

	ResolverErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resolver_errors_total",
		Help:      "Total number of failed price resolver calls.",
	}, []string{"resolver"})

	ResolverUnresolvedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resolver_unresolved_total",
		Help:      "Total number of checks where no vendor returned a price.",
	})

	ResolverDailyUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "resolver_daily_usage",
		Help:      "Resolver lookups made in the current 24h quota window.",
	})

	ResolverDailyLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resolver_daily_limit_hits_total",
		Help:      "Total number of lookups rejected by the daily resolver quota.",
	})
)

// Notification metrics.
var (
	NotificationsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_created_total",
		Help:      "Total number of notifications recorded for matched prices.",
	})

	NotificationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "notification_duration_seconds",
		Help:      "Duration of chat notification pushes in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"backend"})

	NotificationFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_failures_total",
		Help:      "Total number of chat notification push failures.",
	})
)

// Scheduler metrics.
var (
	SchedulerNextScanTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "scheduler_next_scan_timestamp",
		Help:      "Unix timestamp of the next scheduled scan.",
	})

	SchedulerNextReapTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "scheduler_next_reap_timestamp",
		Help:      "Unix timestamp of the next scheduled lease reap.",
	})

	SchedulerJobDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "scheduler_job_duration_seconds",
		Help:      "Duration of scheduled job runs in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"job"})
)
