package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HealthzUp)
	assert.NotNil(t, ReadyzUp)
	assert.NotNil(t, ScansTotal)
	assert.NotNil(t, ScanDuration)
	assert.NotNil(t, ScanDueTriggersTotal)
	assert.NotNil(t, ScanEnqueuedTotal)
	assert.NotNil(t, ScanClaimConflictsTotal)
	assert.NotNil(t, ScanErrorsTotal)
	assert.NotNil(t, QueueOperationsTotal)
	assert.NotNil(t, QueueRedeliveredTotal)
	assert.NotNil(t, QueueExpiredTotal)
	assert.NotNil(t, QueueDepth)
	assert.NotNil(t, WorkerJobsTotal)
	assert.NotNil(t, WorkerJobDuration)
	assert.NotNil(t, ResolverDuration)
	assert.NotNil(t, ResolverErrorsTotal)
	assert.NotNil(t, ResolverUnresolvedTotal)
	assert.NotNil(t, ResolverDailyUsage)
	assert.NotNil(t, ResolverDailyLimitHits)
	assert.NotNil(t, NotificationsCreatedTotal)
	assert.NotNil(t, NotificationDuration)
	assert.NotNil(t, NotificationFailuresTotal)
	assert.NotNil(t, SchedulerNextScanTimestamp)
	assert.NotNil(t, SchedulerNextReapTimestamp)
	assert.NotNil(t, SchedulerJobDuration)
}

func TestQueueDepthLabels(t *testing.T) {
	t.Parallel()

	QueueDepth.WithLabelValues("test_status").Set(7)
	assert.InDelta(t, 7.0, testutil.ToFloat64(QueueDepth.WithLabelValues("test_status")), 0)
}
