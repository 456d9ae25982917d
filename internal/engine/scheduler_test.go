package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/price-trigger-monitor/internal/metrics"
	"github.com/donaldgifford/price-trigger-monitor/internal/queue"
	queueMocks "github.com/donaldgifford/price-trigger-monitor/internal/queue/mocks"
	storeMocks "github.com/donaldgifford/price-trigger-monitor/internal/store/mocks"
	domain "github.com/donaldgifford/price-trigger-monitor/pkg/types"
)

func newTestScheduler(
	t *testing.T,
	retention time.Duration,
) (*Scheduler, *storeMocks.MockStore, *queueMocks.MockQueue) {
	t.Helper()

	ms := storeMocks.NewMockStore(t)
	mq := queueMocks.NewMockQueue(t)
	sc := newTestScanner(ms, mq)

	sched, err := NewScheduler(sc, mq, ms, 10*time.Minute, time.Minute, retention, quietLogger())
	require.NoError(t, err)
	return sched, ms, mq
}

func TestNewScheduler(t *testing.T) {
	t.Parallel()

	sched, _, _ := newTestScheduler(t, 168*time.Hour)

	entries := sched.Entries()
	assert.Len(t, entries, 3)
	assert.NotZero(t, sched.scanEntryID)
	assert.NotZero(t, sched.reapEntryID)
	assert.NotZero(t, sched.purgeEntryID)
}

func TestNewScheduler_WithoutPurge(t *testing.T) {
	t.Parallel()

	sched, _, _ := newTestScheduler(t, 0)

	assert.Len(t, sched.Entries(), 2)
	assert.Zero(t, sched.purgeEntryID)
}

func TestScheduler_StartStop(t *testing.T) {
	t.Parallel()

	sched, _, _ := newTestScheduler(t, 0)

	sched.Start()
	for _, e := range sched.Entries() {
		assert.False(t, e.Next.IsZero())
	}
	<-sched.Stop().Done()
}

func TestScheduler_RunJob_Success(t *testing.T) {
	t.Parallel()

	sched, ms, _ := newTestScheduler(t, 0)

	ms.EXPECT().
		AcquireSchedulerLock(mock.Anything, "test-job", mock.Anything, 5*time.Minute).
		Return(true, nil).Once()
	ms.EXPECT().InsertJobRun(mock.Anything, "test-job").Return("run-id-1", nil).Once()
	ms.EXPECT().
		CompleteJobRun(mock.Anything, "run-id-1", "succeeded", "", 7).
		Return(nil).Once()
	ms.EXPECT().
		ReleaseSchedulerLock(mock.Anything, "test-job", mock.Anything).
		Return(nil).Once()

	called := false
	err := sched.runJob(context.Background(), "test-job", 5*time.Minute, func(_ context.Context) (int, error) {
		called = true
		return 7, nil
	})

	require.NoError(t, err)
	assert.True(t, called)
}

func TestScheduler_RunJob_Failure(t *testing.T) {
	t.Parallel()

	sched, ms, _ := newTestScheduler(t, 0)
	jobErr := errors.New("something went wrong")

	ms.EXPECT().
		AcquireSchedulerLock(mock.Anything, "fail-job", mock.Anything, mock.Anything).
		Return(true, nil).Once()
	ms.EXPECT().InsertJobRun(mock.Anything, "fail-job").Return("run-id-2", nil).Once()
	ms.EXPECT().
		CompleteJobRun(mock.Anything, "run-id-2", "failed", jobErr.Error(), 0).
		Return(nil).Once()
	ms.EXPECT().
		ReleaseSchedulerLock(mock.Anything, "fail-job", mock.Anything).
		Return(nil).Once()

	err := sched.runJob(context.Background(), "fail-job", 5*time.Minute, func(_ context.Context) (int, error) {
		return 0, jobErr
	})

	require.ErrorIs(t, err, jobErr)
}

func TestScheduler_RunJob_LockedElsewhere(t *testing.T) {
	t.Parallel()

	sched, ms, _ := newTestScheduler(t, 0)

	ms.EXPECT().
		AcquireSchedulerLock(mock.Anything, "busy-job", mock.Anything, mock.Anything).
		Return(false, nil).Once()

	err := sched.runJob(context.Background(), "busy-job", time.Minute, func(_ context.Context) (int, error) {
		t.Fatal("job must not run without the lock")
		return 0, nil
	})
	require.NoError(t, err)
}

func TestScheduler_RunJob_JobRunInsertFailsStillRuns(t *testing.T) {
	t.Parallel()

	sched, ms, _ := newTestScheduler(t, 0)

	ms.EXPECT().AcquireSchedulerLock(mock.Anything, "job", mock.Anything, mock.Anything).Return(true, nil).Once()
	ms.EXPECT().InsertJobRun(mock.Anything, "job").Return("", errors.New("insert failed")).Once()
	ms.EXPECT().ReleaseSchedulerLock(mock.Anything, "job", mock.Anything).Return(nil).Once()

	called := false
	err := sched.runJob(context.Background(), "job", time.Minute, func(_ context.Context) (int, error) {
		called = true
		return 0, nil
	})
	require.NoError(t, err)
	assert.True(t, called)
}

func TestScheduler_RunJob_LockError(t *testing.T) {
	t.Parallel()

	sched, ms, _ := newTestScheduler(t, 0)

	ms.EXPECT().
		AcquireSchedulerLock(mock.Anything, "job", mock.Anything, mock.Anything).
		Return(false, errors.New("db down")).Once()

	err := sched.runJob(context.Background(), "job", time.Minute, func(_ context.Context) (int, error) {
		return 0, nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "acquiring job lock")
}

func TestScheduler_RunScan(t *testing.T) {
	t.Parallel()

	sched, ms, mq := newTestScheduler(t, 0)

	ms.EXPECT().AcquireSchedulerLock(mock.Anything, JobScan, mock.Anything, 10*time.Minute).Return(true, nil).Once()
	ms.EXPECT().InsertJobRun(mock.Anything, JobScan).Return("run-scan", nil).Once()
	ms.EXPECT().ListDueTriggers(mock.Anything, testNow, 500).Return(dueTriggers("t1"), nil).Once()
	ms.EXPECT().ClaimTrigger(mock.Anything, "t1", mock.Anything, mock.Anything).Return(true, nil).Once()
	mq.EXPECT().Enqueue(mock.Anything, mock.Anything).Return(&domain.Job{ID: "j1"}, nil).Once()
	ms.EXPECT().CompleteJobRun(mock.Anything, "run-scan", "succeeded", "", 1).Return(nil).Once()
	ms.EXPECT().ReleaseSchedulerLock(mock.Anything, JobScan, mock.Anything).Return(nil).Once()

	require.NoError(t, sched.RunScan(context.Background()))
}

func TestScheduler_Reap(t *testing.T) {
	sched, _, mq := newTestScheduler(t, 0)

	mq.EXPECT().RequeueExpired(mock.Anything, mock.Anything).
		Return(queue.ReapResult{Expired: 2, Redelivered: 1}, nil).Once()
	mq.EXPECT().Stats(mock.Anything).
		Return(domain.QueueStats{Pending: 4, Processing: 1, Done: 10, Failed: 3}, nil).Once()

	expiredBefore := ptestutil.ToFloat64(metrics.QueueExpiredTotal)
	redeliveredBefore := ptestutil.ToFloat64(metrics.QueueRedeliveredTotal)

	res, err := sched.Reap(context.Background())
	require.NoError(t, err)

	assert.Equal(t, queue.ReapResult{Expired: 2, Redelivered: 1}, res)
	assert.InDelta(t, expiredBefore+2, ptestutil.ToFloat64(metrics.QueueExpiredTotal), 0)
	assert.InDelta(t, redeliveredBefore+1, ptestutil.ToFloat64(metrics.QueueRedeliveredTotal), 0)
	assert.InDelta(t, 4.0, ptestutil.ToFloat64(metrics.QueueDepth.WithLabelValues("pending")), 0)
	assert.InDelta(t, 3.0, ptestutil.ToFloat64(metrics.QueueDepth.WithLabelValues("failed")), 0)
}

func TestScheduler_Reap_Error(t *testing.T) {
	t.Parallel()

	sched, _, mq := newTestScheduler(t, 0)

	mq.EXPECT().RequeueExpired(mock.Anything, mock.Anything).
		Return(queue.ReapResult{}, errors.New("redis: connection refused")).Once()

	_, err := sched.Reap(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requeueing expired jobs")
}

func TestScheduler_Purge(t *testing.T) {
	t.Parallel()

	sched, _, mq := newTestScheduler(t, 24*time.Hour)

	mq.EXPECT().
		Purge(mock.Anything, mock.MatchedBy(func(before time.Time) bool {
			age := time.Since(before)
			return age > 23*time.Hour && age < 25*time.Hour
		})).
		Return(5, nil).Once()

	n, err := sched.Purge(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestScheduler_RecoverStaleJobs(t *testing.T) {
	t.Parallel()

	sched, ms, _ := newTestScheduler(t, 0)

	ms.EXPECT().
		RecoverStaleJobRuns(mock.Anything, 2*time.Hour).
		Return(3, nil).Once()

	sched.RecoverStaleJobRuns(context.Background())
}

func TestScheduler_SyncNextRunTimestamps(t *testing.T) {
	sched, _, _ := newTestScheduler(t, 0)

	sched.Start()
	defer sched.Stop()

	sched.SyncNextRunTimestamps()
	assert.Greater(t, ptestutil.ToFloat64(metrics.SchedulerNextScanTimestamp), float64(time.Now().Unix()))
	assert.Greater(t, ptestutil.ToFloat64(metrics.SchedulerNextReapTimestamp), float64(time.Now().Unix()))
}
