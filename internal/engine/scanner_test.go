package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/price-trigger-monitor/internal/queue"
	queueMocks "github.com/donaldgifford/price-trigger-monitor/internal/queue/mocks"
	storeMocks "github.com/donaldgifford/price-trigger-monitor/internal/store/mocks"
	domain "github.com/donaldgifford/price-trigger-monitor/pkg/types"
)

func newTestScanner(ms *storeMocks.MockStore, mq *queueMocks.MockQueue, opts ...Option) *Scanner {
	base := []Option{
		WithLogger(quietLogger()),
		WithClock(fixedClock()),
		WithRescheduleInterval(10 * time.Minute),
	}
	return NewScanner(ms, mq, append(base, opts...)...)
}

func dueTriggers(ids ...string) []domain.Trigger {
	out := make([]domain.Trigger, len(ids))
	for i, id := range ids {
		out[i] = *mobileTrigger(id, 1000)
		out[i].NextCheck = testNow.Add(-time.Duration(len(ids)-i) * time.Minute)
	}
	return out
}

func TestScanner_Scan_EnqueuesEachDueTriggerOnce(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mq := queueMocks.NewMockQueue(t)
	due := dueTriggers("t1", "t2", "t3")

	ms.EXPECT().ListDueTriggers(mock.Anything, testNow, 500).Return(due, nil).Once()
	for _, tr := range due {
		ms.EXPECT().
			ClaimTrigger(mock.Anything, tr.ID, tr.NextCheck, testNow.Add(10*time.Minute)).
			Return(true, nil).Once()
	}

	var enqueued []queue.Message
	mq.EXPECT().Enqueue(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, msg queue.Message) (*domain.Job, error) {
			enqueued = append(enqueued, msg)
			return &domain.Job{ID: "job-" + msg.TriggerID, TriggerID: msg.TriggerID}, nil
		}).Times(3)

	res, err := newTestScanner(ms, mq).Scan(context.Background())
	require.NoError(t, err)

	assert.Equal(t, ScanResult{Due: 3, Enqueued: 3}, res)
	require.Len(t, enqueued, 3)
	for i, msg := range enqueued {
		assert.Equal(t, due[i].ID, msg.TriggerID)
		require.NotNil(t, msg.ObservedNextCheck)
		assert.Equal(t, due[i].NextCheck, *msg.ObservedNextCheck)
	}
}

func TestScanner_Scan_DeduplicatesWithinScan(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mq := queueMocks.NewMockQueue(t)
	due := dueTriggers("t1", "t2")
	due = append(due, due[0])

	ms.EXPECT().ListDueTriggers(mock.Anything, testNow, 500).Return(due, nil).Once()
	ms.EXPECT().ClaimTrigger(mock.Anything, "t1", mock.Anything, mock.Anything).Return(true, nil).Once()
	ms.EXPECT().ClaimTrigger(mock.Anything, "t2", mock.Anything, mock.Anything).Return(true, nil).Once()
	mq.EXPECT().Enqueue(mock.Anything, mock.Anything).Return(&domain.Job{ID: "j"}, nil).Times(2)

	res, err := newTestScanner(ms, mq).Scan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ScanResult{Due: 3, Enqueued: 2, Skipped: 1}, res)
}

func TestScanner_Scan_ClaimConflictSkipsEnqueue(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mq := queueMocks.NewMockQueue(t)
	due := dueTriggers("t1", "t2")

	ms.EXPECT().ListDueTriggers(mock.Anything, testNow, 500).Return(due, nil).Once()
	ms.EXPECT().ClaimTrigger(mock.Anything, "t1", mock.Anything, mock.Anything).Return(false, nil).Once()
	ms.EXPECT().ClaimTrigger(mock.Anything, "t2", mock.Anything, mock.Anything).Return(true, nil).Once()
	mq.EXPECT().
		Enqueue(mock.Anything, mock.MatchedBy(func(m queue.Message) bool { return m.TriggerID == "t2" })).
		Return(&domain.Job{ID: "j2"}, nil).Once()

	res, err := newTestScanner(ms, mq).Scan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ScanResult{Due: 2, Enqueued: 1, Skipped: 1}, res)
}

func TestScanner_Scan_SecondScanDoesNotRematchClaimedTrigger(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mq := queueMocks.NewMockQueue(t)
	due := dueTriggers("t1")

	// The first scan claims t1; the second sees it due (stale read) but the
	// compare-and-swap on next_check fails.
	ms.EXPECT().ListDueTriggers(mock.Anything, testNow, 500).Return(due, nil).Twice()
	ms.EXPECT().ClaimTrigger(mock.Anything, "t1", due[0].NextCheck, mock.Anything).Return(true, nil).Once()
	ms.EXPECT().ClaimTrigger(mock.Anything, "t1", due[0].NextCheck, mock.Anything).Return(false, nil).Once()
	mq.EXPECT().Enqueue(mock.Anything, mock.Anything).Return(&domain.Job{ID: "j1"}, nil).Once()

	sc := newTestScanner(ms, mq)

	first, err := sc.Scan(context.Background())
	require.NoError(t, err)
	second, err := sc.Scan(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, first.Enqueued)
	assert.Equal(t, 0, second.Enqueued)
	assert.Equal(t, 1, second.Skipped)
}

func TestScanner_Scan_PartialFailureIsolation(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mq := queueMocks.NewMockQueue(t)
	due := dueTriggers("t1", "t2", "t3")
	claimErr := errors.New("deadlock detected")
	enqueueErr := errors.New("queue full")

	ms.EXPECT().ListDueTriggers(mock.Anything, testNow, 500).Return(due, nil).Once()
	ms.EXPECT().ClaimTrigger(mock.Anything, "t1", mock.Anything, mock.Anything).Return(false, claimErr).Once()
	ms.EXPECT().ClaimTrigger(mock.Anything, "t2", mock.Anything, mock.Anything).Return(true, nil).Once()
	ms.EXPECT().ClaimTrigger(mock.Anything, "t3", mock.Anything, mock.Anything).Return(true, nil).Once()
	mq.EXPECT().
		Enqueue(mock.Anything, mock.MatchedBy(func(m queue.Message) bool { return m.TriggerID == "t2" })).
		Return(nil, enqueueErr).Once()
	mq.EXPECT().
		Enqueue(mock.Anything, mock.MatchedBy(func(m queue.Message) bool { return m.TriggerID == "t3" })).
		Return(&domain.Job{ID: "j3"}, nil).Once()

	res, err := newTestScanner(ms, mq).Scan(context.Background())
	require.Error(t, err)

	assert.Equal(t, ScanResult{Due: 3, Enqueued: 1}, res)
	require.ErrorIs(t, err, claimErr)
	require.ErrorIs(t, err, enqueueErr)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 2)
}

func TestScanner_Scan_ListError(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mq := queueMocks.NewMockQueue(t)

	ms.EXPECT().ListDueTriggers(mock.Anything, testNow, 500).
		Return(nil, errors.New("connection refused")).Once()

	res, err := newTestScanner(ms, mq).Scan(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing due triggers")
	assert.Equal(t, ScanResult{}, res)
}

func TestScanner_Scan_NothingDue(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mq := queueMocks.NewMockQueue(t)

	ms.EXPECT().ListDueTriggers(mock.Anything, testNow, 25).Return(nil, nil).Once()

	res, err := newTestScanner(ms, mq, WithBatchSize(25)).Scan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ScanResult{}, res)
}

func TestScanner_Scan_StopsOnCancelledContext(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mq := queueMocks.NewMockQueue(t)

	ctx, cancel := context.WithCancel(context.Background())
	ms.EXPECT().ListDueTriggers(mock.Anything, testNow, 500).
		RunAndReturn(func(context.Context, time.Time, int) ([]domain.Trigger, error) {
			cancel()
			return dueTriggers("t1", "t2"), nil
		}).Once()

	res, err := newTestScanner(ms, mq).Scan(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, res.Enqueued)
}
