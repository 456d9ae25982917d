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
	"github.com/donaldgifford/price-trigger-monitor/internal/notify"
	notifyMocks "github.com/donaldgifford/price-trigger-monitor/internal/notify/mocks"
	"github.com/donaldgifford/price-trigger-monitor/internal/queue"
	queueMocks "github.com/donaldgifford/price-trigger-monitor/internal/queue/mocks"
	"github.com/donaldgifford/price-trigger-monitor/internal/store"
	storeMocks "github.com/donaldgifford/price-trigger-monitor/internal/store/mocks"
	"github.com/donaldgifford/price-trigger-monitor/pkg/resolver"
	resolverMocks "github.com/donaldgifford/price-trigger-monitor/pkg/resolver/mocks"
	domain "github.com/donaldgifford/price-trigger-monitor/pkg/types"
)

type workerMocks struct {
	store    *storeMocks.MockStore
	queue    *queueMocks.MockQueue
	resolver *resolverMocks.MockResolver
	notifier *notifyMocks.MockNotifier
}

func newWorkerMocks(t *testing.T) workerMocks {
	t.Helper()
	m := workerMocks{
		store:    storeMocks.NewMockStore(t),
		queue:    queueMocks.NewMockQueue(t),
		resolver: resolverMocks.NewMockResolver(t),
		notifier: notifyMocks.NewMockNotifier(t),
	}
	m.resolver.EXPECT().Name().Return("mock").Maybe()
	return m
}

func newTestWorker(m workerMocks, opts ...Option) *Worker {
	base := []Option{
		WithLogger(quietLogger()),
		WithClock(fixedClock()),
		WithRescheduleInterval(10 * time.Minute),
		WithHolder("test-holder"),
	}
	return NewWorker(m.store, m.queue, m.resolver, m.notifier, append(base, opts...)...)
}

func testLease(triggerID string) *queue.Lease {
	return &queue.Lease{
		Job: domain.Job{
			ID:        "job-" + triggerID,
			TriggerID: triggerID,
			Status:    domain.JobProcessing,
			Attempt:   1,
		},
		Deadline: testNow.Add(5 * time.Minute),
	}
}

// recordNotes stands in for a committed completion: it assigns ids to the
// notifications it is handed and records them.
func recordNotes(
	created *[]domain.Notification,
) func(context.Context, string, *domain.VendorQuote, domain.CheckStatus, time.Time, []domain.Notification) error {
	return func(_ context.Context, _ string, _ *domain.VendorQuote, _ domain.CheckStatus, _ time.Time, notes []domain.Notification) error {
		for i := range notes {
			notes[i].ID = "n-" + notes[i].Vendor
		}
		*created = append(*created, notes...)
		return nil
	}
}

func TestWorker_Process_OneMatchLowestPriceWins(t *testing.T) {
	t.Parallel()

	m := newWorkerMocks(t)
	trig := mobileTrigger("t1", 20000)
	lease := testLease("t1")

	m.store.EXPECT().GetTrigger(mock.Anything, "t1").Return(trig, nil).Once()
	m.resolver.EXPECT().Resolve(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, req resolver.Request) (domain.Quotes, error) {
			assert.Equal(t, "t1", req.TriggerID)
			assert.Equal(t, domain.EventMobile, req.EventType)
			assert.InDelta(t, 20000.0, req.ExpectedPrice, 0)
			assert.Equal(t, "Samsung", req.Config["brand_name"])
			return domain.Quotes{
				"amazon":   quote("amazon", ptr(19500.0)),
				"flipkart": quote("flipkart", ptr(21000.0)),
			}, nil
		}).Once()

	var created []domain.Notification

	var stored *domain.VendorQuote
	m.store.EXPECT().
		CompleteTriggerCheck(mock.Anything, "t1", mock.Anything, domain.CheckOK, testNow.Add(10*time.Minute), mock.Anything).
		RunAndReturn(func(
			ctx context.Context,
			id string,
			q *domain.VendorQuote,
			status domain.CheckStatus,
			next time.Time,
			notes []domain.Notification,
		) error {
			stored = q
			return recordNotes(&created)(ctx, id, q, status, next, notes)
		}).Once()
	m.queue.EXPECT().Ack(mock.Anything, lease).Return(nil).Once()
	m.notifier.EXPECT().SendAlert(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, a *notify.AlertPayload) error {
			assert.Equal(t, "amazon", a.Vendor)
			assert.Equal(t, "n-amazon", a.NotificationID)
			assert.Equal(t, "Samsung Galaxy S24", a.Label)
			assert.Equal(t, "https://amazon.example/item", a.Reference)
			return nil
		}).Once()

	// A 500 threshold admits amazon (diff 500) and rejects flipkart (diff 1000).
	out := newTestWorker(m, WithThreshold(500)).Process(context.Background(), lease)

	require.Equal(t, OutcomeDone, out.Kind, "err: %v", out.Err)
	require.NoError(t, out.Err)
	require.Len(t, created, 1)
	assert.Equal(t, "amazon", created[0].Vendor)
	assert.InDelta(t, 19500.0, created[0].Price, 0)
	assert.Equal(t, "user-1", created[0].UserID)
	assert.Equal(t, "t1", created[0].TriggerID)

	require.NotNil(t, stored)
	assert.Equal(t, "amazon", stored.Vendor)
	assert.InDelta(t, 19500.0, *stored.Price, 0)

	assert.Equal(t, testNow.Add(10*time.Minute), out.NextCheck)
	assert.True(t, out.NextCheck.After(trig.NextCheck))
}

func TestWorker_Process_AbsentPriceNeverSelected(t *testing.T) {
	t.Parallel()

	m := newWorkerMocks(t)
	trig := mobileTrigger("t1", 20000)
	lease := testLease("t1")

	m.store.EXPECT().GetTrigger(mock.Anything, "t1").Return(trig, nil).Once()
	m.resolver.EXPECT().Resolve(mock.Anything, mock.Anything).Return(domain.Quotes{
		"amazon":   quote("amazon", nil),
		"flipkart": quote("flipkart", ptr(18000.0)),
	}, nil).Once()

	var created []domain.Notification
	m.store.EXPECT().
		CompleteTriggerCheck(mock.Anything, "t1",
			mock.MatchedBy(func(q *domain.VendorQuote) bool {
				return q.Vendor == "flipkart" && q.Price != nil && *q.Price == 18000
			}),
			domain.CheckOK, mock.Anything, mock.Anything).
		RunAndReturn(recordNotes(&created)).Once()
	m.queue.EXPECT().Ack(mock.Anything, lease).Return(nil).Once()
	m.notifier.EXPECT().SendAlert(mock.Anything, mock.Anything).Return(nil).Once()

	out := newTestWorker(m).Process(context.Background(), lease)

	require.Equal(t, OutcomeDone, out.Kind)
	require.Len(t, created, 1, "diff of exactly 2000 qualifies")
	assert.Equal(t, "flipkart", created[0].Vendor)
}

func TestWorker_Process_ThresholdBoundary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		price float64
		want  int
	}{
		{name: "diff 2000 notifies", price: 18000, want: 1},
		{name: "diff 2001 does not notify", price: 17999, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := newWorkerMocks(t)
			lease := testLease("t1")

			m.store.EXPECT().GetTrigger(mock.Anything, "t1").Return(mobileTrigger("t1", 20000), nil).Once()
			m.resolver.EXPECT().Resolve(mock.Anything, mock.Anything).Return(domain.Quotes{
				"amazon": quote("amazon", ptr(tt.price)),
			}, nil).Once()

			var created []domain.Notification
			m.store.EXPECT().
				CompleteTriggerCheck(mock.Anything, "t1", mock.Anything, domain.CheckOK, mock.Anything, mock.Anything).
				RunAndReturn(recordNotes(&created)).Once()
			m.queue.EXPECT().Ack(mock.Anything, lease).Return(nil).Once()
			m.notifier.EXPECT().SendAlert(mock.Anything, mock.Anything).Return(nil).Maybe()

			out := newTestWorker(m).Process(context.Background(), lease)

			require.Equal(t, OutcomeDone, out.Kind)
			assert.Len(t, created, tt.want)
		})
	}
}

func TestWorker_Process_AllAbsentIsUnresolved(t *testing.T) {
	t.Parallel()

	m := newWorkerMocks(t)
	lease := testLease("t1")

	m.store.EXPECT().GetTrigger(mock.Anything, "t1").Return(mobileTrigger("t1", 20000), nil).Once()
	m.resolver.EXPECT().Resolve(mock.Anything, mock.Anything).Return(domain.Quotes{
		"amazon":   quote("amazon", nil),
		"flipkart": quote("flipkart", nil),
	}, nil).Once()
	m.store.EXPECT().
		CompleteTriggerCheck(mock.Anything, "t1",
			mock.MatchedBy(func(q *domain.VendorQuote) bool { return q.Price == nil }),
			domain.CheckUnresolved, testNow.Add(10*time.Minute), mock.Anything).
		Return(nil).Once()
	m.queue.EXPECT().Ack(mock.Anything, lease).Return(nil).Once()

	out := newTestWorker(m).Process(context.Background(), lease)

	require.Equal(t, OutcomeDone, out.Kind)
	assert.Equal(t, domain.CheckUnresolved, out.Status)
	assert.Empty(t, out.Notifications)
}

func TestWorker_Process_DuplicateNotificationsAcrossCycles(t *testing.T) {
	t.Parallel()

	// Known duplication risk: the same qualifying trigger processed twice
	// raises two separate notifications.
	m := newWorkerMocks(t)
	trig := mobileTrigger("t1", 20000)

	m.store.EXPECT().GetTrigger(mock.Anything, "t1").Return(trig, nil).Twice()
	m.resolver.EXPECT().Resolve(mock.Anything, mock.Anything).Return(domain.Quotes{
		"amazon":   quote("amazon", ptr(19500.0)),
		"flipkart": quote("flipkart", nil),
	}, nil).Twice()

	var created []domain.Notification
	m.store.EXPECT().
		CompleteTriggerCheck(mock.Anything, "t1", mock.Anything, domain.CheckOK, mock.Anything, mock.Anything).
		RunAndReturn(recordNotes(&created)).Twice()
	m.queue.EXPECT().Ack(mock.Anything, mock.Anything).Return(nil).Twice()
	m.notifier.EXPECT().SendAlert(mock.Anything, mock.Anything).Return(nil).Twice()

	w := newTestWorker(m)
	first := w.Process(context.Background(), testLease("t1"))
	second := w.Process(context.Background(), testLease("t1"))

	require.Equal(t, OutcomeDone, first.Kind)
	require.Equal(t, OutcomeDone, second.Kind)
	require.Len(t, created, 2)
	assert.Equal(t, created[0].Vendor, created[1].Vendor)
	assert.InDelta(t, created[0].Price, created[1].Price, 0)
}

func TestWorker_Process_TriggerNotFoundDiscards(t *testing.T) {
	t.Parallel()

	m := newWorkerMocks(t)
	lease := testLease("gone")

	m.store.EXPECT().GetTrigger(mock.Anything, "gone").Return(nil, store.ErrNotFound).Once()
	m.queue.EXPECT().Ack(mock.Anything, lease).Return(nil).Once()

	out := newTestWorker(m).Process(context.Background(), lease)

	assert.Equal(t, OutcomeDiscarded, out.Kind)
	assert.NoError(t, out.Err)
	assert.Equal(t, "gone", out.TriggerID)
	assert.Equal(t, "job-gone", out.JobID)
}

func TestWorker_Process_InactiveTriggerDiscards(t *testing.T) {
	t.Parallel()

	m := newWorkerMocks(t)
	lease := testLease("t1")
	trig := mobileTrigger("t1", 20000)
	trig.IsActive = false

	m.store.EXPECT().GetTrigger(mock.Anything, "t1").Return(trig, nil).Once()
	m.queue.EXPECT().Ack(mock.Anything, lease).Return(nil).Once()

	out := newTestWorker(m).Process(context.Background(), lease)
	assert.Equal(t, OutcomeDiscarded, out.Kind)
}

func TestWorker_Process_ResolverErrorIsJobFailure(t *testing.T) {
	t.Parallel()

	m := newWorkerMocks(t)
	lease := testLease("t1")
	resolveErr := errors.New("parsing llm/ollama answer: " + resolver.ErrUnparseable.Error())

	m.store.EXPECT().GetTrigger(mock.Anything, "t1").Return(mobileTrigger("t1", 20000), nil).Once()
	m.resolver.EXPECT().Resolve(mock.Anything, mock.Anything).Return(nil, resolveErr).Once()
	m.store.EXPECT().MarkTriggerUnresolved(mock.Anything, "t1").Return(nil).Once()
	m.queue.EXPECT().
		Fail(mock.Anything, lease, mock.MatchedBy(func(reason string) bool {
			return assert.Contains(t, reason, "resolving prices with mock")
		})).
		Return(nil).Once()

	out := newTestWorker(m).Process(context.Background(), lease)

	assert.Equal(t, OutcomeJobFailure, out.Kind)
	require.ErrorIs(t, out.Err, resolveErr)
	assert.Equal(t, domain.CheckUnresolved, out.Status)
}

func TestWorker_Process_ResolverTimeoutIsJobFailure(t *testing.T) {
	t.Parallel()

	m := newWorkerMocks(t)
	lease := testLease("t1")

	m.store.EXPECT().GetTrigger(mock.Anything, "t1").Return(mobileTrigger("t1", 20000), nil).Once()
	m.resolver.EXPECT().Resolve(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ resolver.Request) (domain.Quotes, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		}).Once()
	m.store.EXPECT().MarkTriggerUnresolved(mock.Anything, "t1").Return(nil).Once()
	m.queue.EXPECT().Fail(mock.Anything, lease, mock.Anything).Return(nil).Once()

	out := newTestWorker(m, WithResolveTimeout(10*time.Millisecond)).
		Process(context.Background(), lease)

	assert.Equal(t, OutcomeJobFailure, out.Kind)
	require.ErrorIs(t, out.Err, context.DeadlineExceeded)
}

func TestWorker_Process_CancelledDuringResolveLeavesJob(t *testing.T) {
	t.Parallel()

	m := newWorkerMocks(t)
	lease := testLease("t1")
	ctx, cancel := context.WithCancel(context.Background())

	m.store.EXPECT().GetTrigger(mock.Anything, "t1").Return(mobileTrigger("t1", 20000), nil).Once()
	m.resolver.EXPECT().Resolve(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ resolver.Request) (domain.Quotes, error) {
			cancel()
			return nil, ctx.Err()
		}).Once()

	out := newTestWorker(m).Process(ctx, lease)

	assert.Equal(t, OutcomeSystemicFailure, out.Kind)
	require.ErrorIs(t, out.Err, context.Canceled)
}

func TestWorker_Process_SystemicFailures(t *testing.T) {
	t.Parallel()

	dbErr := errors.New("connection reset by peer")

	tests := []struct {
		name  string
		setup func(m workerMocks, lease *queue.Lease)
	}{
		{
			name: "get trigger",
			setup: func(m workerMocks, _ *queue.Lease) {
				m.store.EXPECT().GetTrigger(mock.Anything, "t1").Return(nil, dbErr).Once()
			},
		},
		{
			name: "complete check with matches",
			setup: func(m workerMocks, _ *queue.Lease) {
				m.store.EXPECT().GetTrigger(mock.Anything, "t1").Return(mobileTrigger("t1", 20000), nil).Once()
				m.resolver.EXPECT().Resolve(mock.Anything, mock.Anything).Return(domain.Quotes{
					"amazon": quote("amazon", ptr(20000.0)),
				}, nil).Once()
				m.store.EXPECT().
					CompleteTriggerCheck(mock.Anything, "t1", mock.Anything, domain.CheckOK, mock.Anything,
						mock.MatchedBy(func(notes []domain.Notification) bool { return len(notes) == 1 })).
					Return(dbErr).Once()
			},
		},
		{
			name: "complete check",
			setup: func(m workerMocks, _ *queue.Lease) {
				m.store.EXPECT().GetTrigger(mock.Anything, "t1").Return(mobileTrigger("t1", 20000), nil).Once()
				m.resolver.EXPECT().Resolve(mock.Anything, mock.Anything).Return(domain.Quotes{
					"amazon": quote("amazon", nil),
				}, nil).Once()
				m.store.EXPECT().
					CompleteTriggerCheck(mock.Anything, "t1", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(dbErr).Once()
			},
		},
		{
			name: "ack",
			setup: func(m workerMocks, lease *queue.Lease) {
				m.store.EXPECT().GetTrigger(mock.Anything, "t1").Return(mobileTrigger("t1", 20000), nil).Once()
				m.resolver.EXPECT().Resolve(mock.Anything, mock.Anything).Return(domain.Quotes{
					"amazon": quote("amazon", nil),
				}, nil).Once()
				m.store.EXPECT().
					CompleteTriggerCheck(mock.Anything, "t1", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(nil).Once()
				m.queue.EXPECT().Ack(mock.Anything, lease).Return(dbErr).Once()
			},
		},
		{
			name: "mark unresolved",
			setup: func(m workerMocks, _ *queue.Lease) {
				m.store.EXPECT().GetTrigger(mock.Anything, "t1").Return(mobileTrigger("t1", 20000), nil).Once()
				m.resolver.EXPECT().Resolve(mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()
				m.store.EXPECT().MarkTriggerUnresolved(mock.Anything, "t1").Return(dbErr).Once()
			},
		},
		{
			name: "fail",
			setup: func(m workerMocks, lease *queue.Lease) {
				m.store.EXPECT().GetTrigger(mock.Anything, "t1").Return(mobileTrigger("t1", 20000), nil).Once()
				m.resolver.EXPECT().Resolve(mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()
				m.store.EXPECT().MarkTriggerUnresolved(mock.Anything, "t1").Return(nil).Once()
				m.queue.EXPECT().Fail(mock.Anything, lease, mock.Anything).Return(dbErr).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := newWorkerMocks(t)
			lease := testLease("t1")
			tt.setup(m, lease)

			out := newTestWorker(m).Process(context.Background(), lease)

			assert.Equal(t, OutcomeSystemicFailure, out.Kind)
			require.ErrorIs(t, out.Err, dbErr)
		})
	}
}

func TestWorker_Process_FailedCompletionRaisesNothing(t *testing.T) {
	t.Parallel()

	m := newWorkerMocks(t)
	lease := testLease("t1")
	dbErr := errors.New("deadlock detected")

	m.store.EXPECT().GetTrigger(mock.Anything, "t1").Return(mobileTrigger("t1", 20000), nil).Once()
	m.resolver.EXPECT().Resolve(mock.Anything, mock.Anything).Return(domain.Quotes{
		"amazon":   quote("amazon", ptr(19500.0)),
		"flipkart": quote("flipkart", ptr(19900.0)),
	}, nil).Once()

	// The notifications only reach the store inside the completion; when it
	// rolls back there is nothing to ack or push.
	var handed []domain.Notification
	m.store.EXPECT().
		CompleteTriggerCheck(mock.Anything, "t1", mock.Anything, domain.CheckOK, mock.Anything, mock.Anything).
		RunAndReturn(func(
			_ context.Context,
			_ string,
			_ *domain.VendorQuote,
			_ domain.CheckStatus,
			_ time.Time,
			notes []domain.Notification,
		) error {
			handed = notes
			return dbErr
		}).Once()

	out := newTestWorker(m).Process(context.Background(), lease)

	assert.Equal(t, OutcomeSystemicFailure, out.Kind)
	require.ErrorIs(t, out.Err, dbErr)
	assert.Empty(t, out.Notifications)
	require.Len(t, handed, 2)
	for _, n := range handed {
		assert.Empty(t, n.ID)
	}
	m.queue.AssertNotCalled(t, "Ack", mock.Anything, mock.Anything)
	m.notifier.AssertNotCalled(t, "SendAlert", mock.Anything, mock.Anything)
	m.notifier.AssertNotCalled(t, "SendBatchAlert", mock.Anything, mock.Anything, mock.Anything)
}

func TestWorker_Process_LeaseLostOnAckIsTolerated(t *testing.T) {
	t.Parallel()

	m := newWorkerMocks(t)
	lease := testLease("t1")

	m.store.EXPECT().GetTrigger(mock.Anything, "t1").Return(mobileTrigger("t1", 20000), nil).Once()
	m.resolver.EXPECT().Resolve(mock.Anything, mock.Anything).Return(domain.Quotes{
		"amazon": quote("amazon", nil),
	}, nil).Once()
	m.store.EXPECT().
		CompleteTriggerCheck(mock.Anything, "t1", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil).Once()
	m.queue.EXPECT().Ack(mock.Anything, lease).Return(queue.ErrLeaseLost).Once()

	out := newTestWorker(m).Process(context.Background(), lease)
	assert.Equal(t, OutcomeDone, out.Kind)
}

func TestWorker_Process_PushFailureDoesNotFailJob(t *testing.T) {
	m := newWorkerMocks(t)
	lease := testLease("t1")

	m.store.EXPECT().GetTrigger(mock.Anything, "t1").Return(mobileTrigger("t1", 20000), nil).Once()
	m.resolver.EXPECT().Resolve(mock.Anything, mock.Anything).Return(domain.Quotes{
		"amazon":   quote("amazon", ptr(19000.0)),
		"flipkart": quote("flipkart", ptr(20500.0)),
	}, nil).Once()
	var created []domain.Notification
	m.store.EXPECT().
		CompleteTriggerCheck(mock.Anything, "t1", mock.Anything, domain.CheckOK, mock.Anything, mock.Anything).
		RunAndReturn(recordNotes(&created)).Once()
	m.queue.EXPECT().Ack(mock.Anything, lease).Return(nil).Once()
	m.notifier.EXPECT().
		SendBatchAlert(mock.Anything, mock.Anything, "Samsung Galaxy S24").
		RunAndReturn(func(_ context.Context, alerts []notify.AlertPayload, _ string) error {
			assert.Len(t, alerts, 2)
			return errors.New("discord returned status 500")
		}).Once()

	before := ptestutil.ToFloat64(metrics.NotificationFailuresTotal)

	out := newTestWorker(m).Process(context.Background(), lease)

	assert.Equal(t, OutcomeDone, out.Kind)
	assert.Len(t, out.Notifications, 2)
	assert.InDelta(t, before+1, ptestutil.ToFloat64(metrics.NotificationFailuresTotal), 0)
}

func TestWorker_Run_LockHeldElsewhere(t *testing.T) {
	t.Parallel()

	m := newWorkerMocks(t)
	m.store.EXPECT().
		AcquireSchedulerLock(mock.Anything, WorkerLockName, "test-holder", 2*time.Minute).
		Return(false, nil).Once()

	err := newTestWorker(m).Run(context.Background())
	require.ErrorIs(t, err, ErrWorkerLockHeld)
}

func TestWorker_Run_StopsCleanlyOnCancel(t *testing.T) {
	t.Parallel()

	m := newWorkerMocks(t)
	ctx, cancel := context.WithCancel(context.Background())

	m.store.EXPECT().
		AcquireSchedulerLock(mock.Anything, WorkerLockName, "test-holder", mock.Anything).
		Return(true, nil)
	m.store.EXPECT().ReleaseSchedulerLock(mock.Anything, WorkerLockName, "test-holder").Return(nil).Once()

	lease := testLease("gone")
	m.queue.EXPECT().Dequeue(mock.Anything).Return(lease, nil).Once()
	m.store.EXPECT().GetTrigger(mock.Anything, "gone").Return(nil, store.ErrNotFound).Once()
	m.queue.EXPECT().Ack(mock.Anything, lease).Return(nil).Once()
	m.queue.EXPECT().Dequeue(mock.Anything).
		RunAndReturn(func(ctx context.Context) (*queue.Lease, error) {
			cancel()
			<-ctx.Done()
			return nil, ctx.Err()
		}).Once()

	err := newTestWorker(m).Run(ctx)
	require.NoError(t, err)
}

type captureReporter struct {
	errs []error
	tags []map[string]string
}

func (r *captureReporter) Capture(_ context.Context, err error, tags map[string]string) {
	r.errs = append(r.errs, err)
	r.tags = append(r.tags, tags)
}

func (*captureReporter) Flush(time.Duration) bool { return true }

func TestWorker_Run_SystemicFailureStopsAndReports(t *testing.T) {
	t.Parallel()

	m := newWorkerMocks(t)
	rep := &captureReporter{}
	dbErr := errors.New("database is shutting down")

	m.store.EXPECT().
		AcquireSchedulerLock(mock.Anything, WorkerLockName, "test-holder", mock.Anything).
		Return(true, nil)
	m.store.EXPECT().ReleaseSchedulerLock(mock.Anything, WorkerLockName, "test-holder").Return(nil).Once()

	lease := testLease("t1")
	m.queue.EXPECT().Dequeue(mock.Anything).Return(lease, nil).Once()
	m.store.EXPECT().GetTrigger(mock.Anything, "t1").Return(nil, dbErr).Once()

	err := newTestWorker(m, WithReporter(rep)).Run(context.Background())

	require.ErrorIs(t, err, dbErr)
	require.Len(t, rep.errs, 1)
	require.ErrorIs(t, rep.errs[0], dbErr)
	assert.Equal(t, "worker", rep.tags[0]["component"])
}

func TestWorker_Run_JobFailureContinues(t *testing.T) {
	t.Parallel()

	m := newWorkerMocks(t)
	ctx, cancel := context.WithCancel(context.Background())

	m.store.EXPECT().
		AcquireSchedulerLock(mock.Anything, WorkerLockName, "test-holder", mock.Anything).
		Return(true, nil)
	m.store.EXPECT().ReleaseSchedulerLock(mock.Anything, WorkerLockName, "test-holder").Return(nil).Once()

	bad := testLease("bad")
	good := testLease("good")
	m.queue.EXPECT().Dequeue(mock.Anything).Return(bad, nil).Once()
	m.queue.EXPECT().Dequeue(mock.Anything).Return(good, nil).Once()
	m.queue.EXPECT().Dequeue(mock.Anything).
		RunAndReturn(func(ctx context.Context) (*queue.Lease, error) {
			cancel()
			return nil, ctx.Err()
		}).Once()

	m.store.EXPECT().GetTrigger(mock.Anything, "bad").Return(mobileTrigger("bad", 1000), nil).Once()
	m.store.EXPECT().GetTrigger(mock.Anything, "good").Return(mobileTrigger("good", 1000), nil).Once()
	m.resolver.EXPECT().
		Resolve(mock.Anything, mock.MatchedBy(func(r resolver.Request) bool { return r.TriggerID == "bad" })).
		Return(nil, resolver.ErrUnparseable).Once()
	m.resolver.EXPECT().
		Resolve(mock.Anything, mock.MatchedBy(func(r resolver.Request) bool { return r.TriggerID == "good" })).
		Return(domain.Quotes{"amazon": quote("amazon", nil)}, nil).Once()

	m.store.EXPECT().MarkTriggerUnresolved(mock.Anything, "bad").Return(nil).Once()
	m.queue.EXPECT().Fail(mock.Anything, bad, mock.Anything).Return(nil).Once()
	m.store.EXPECT().
		CompleteTriggerCheck(mock.Anything, "good", mock.Anything, domain.CheckUnresolved, mock.Anything, mock.Anything).
		Return(nil).Once()
	m.queue.EXPECT().Ack(mock.Anything, good).Return(nil).Once()

	require.NoError(t, newTestWorker(m).Run(ctx))
}

func TestWorker_Run_LockLostStopsWorker(t *testing.T) {
	t.Parallel()

	m := newWorkerMocks(t)

	m.store.EXPECT().
		AcquireSchedulerLock(mock.Anything, WorkerLockName, "test-holder", 20*time.Millisecond).
		Return(true, nil).Once()
	m.store.EXPECT().
		AcquireSchedulerLock(mock.Anything, WorkerLockName, "test-holder", 20*time.Millisecond).
		Return(false, nil).Maybe()
	m.store.EXPECT().ReleaseSchedulerLock(mock.Anything, WorkerLockName, "test-holder").Return(nil).Once()
	m.queue.EXPECT().Dequeue(mock.Anything).
		RunAndReturn(func(ctx context.Context) (*queue.Lease, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		}).Once()

	err := newTestWorker(m, WithLockTTL(20*time.Millisecond)).Run(context.Background())
	require.ErrorIs(t, err, errWorkerLockLost)
}

func TestOutcomeKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "done", OutcomeDone.String())
	assert.Equal(t, "discarded", OutcomeDiscarded.String())
	assert.Equal(t, "job_failure", OutcomeJobFailure.String())
	assert.Equal(t, "systemic_failure", OutcomeSystemicFailure.String())
	assert.Equal(t, "unknown", OutcomeKind(42).String())
}
