package engine

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/price-trigger-monitor/internal/queue"
	"github.com/donaldgifford/price-trigger-monitor/pkg/resolver"
	domain "github.com/donaldgifford/price-trigger-monitor/pkg/types"
)

// memQueue backs the queue mock with a FIFO slice.
type memQueue struct {
	mu   sync.Mutex
	jobs []domain.Job
	seq  int
}

func (q *memQueue) enqueue(_ context.Context, msg queue.Message) (*domain.Job, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.seq++
	job := domain.Job{
		ID:                "job-" + strconv.Itoa(q.seq),
		TriggerID:         msg.TriggerID,
		ObservedNextCheck: msg.ObservedNextCheck,
		Status:            domain.JobPending,
		Attempt:           1,
	}
	q.jobs = append(q.jobs, job)
	return &job, nil
}

func (q *memQueue) dequeue(context.Context) (*queue.Lease, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	job := q.jobs[0]
	q.jobs = q.jobs[1:]
	job.Status = domain.JobProcessing
	return &queue.Lease{Job: job, Deadline: testNow.Add(5 * time.Minute)}, nil
}

func TestPipeline_ScanThenProcess(t *testing.T) {
	t.Parallel()

	m := newWorkerMocks(t)
	mq := &memQueue{}
	interval := 10 * time.Minute

	trig := mobileTrigger("t-999", 999)
	trig.NextCheck = testNow.Add(-time.Hour)

	// Scan: one due trigger, claimed and enqueued once.
	m.store.EXPECT().ListDueTriggers(mock.Anything, testNow, 500).
		Return([]domain.Trigger{*trig}, nil).Once()
	m.store.EXPECT().
		ClaimTrigger(mock.Anything, "t-999", trig.NextCheck, testNow.Add(interval)).
		RunAndReturn(func(_ context.Context, _ string, _, next time.Time) (bool, error) {
			trig.NextCheck = next
			return true, nil
		}).Once()
	m.queue.EXPECT().Enqueue(mock.Anything, mock.Anything).RunAndReturn(mq.enqueue).Once()
	m.queue.EXPECT().Dequeue(mock.Anything).RunAndReturn(mq.dequeue).Once()

	// Process: 980 is 19 away, 1050 is 51 away; a 50 threshold admits only
	// amazon.
	m.store.EXPECT().GetTrigger(mock.Anything, "t-999").Return(trig, nil).Once()
	m.resolver.EXPECT().Resolve(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, req resolver.Request) (domain.Quotes, error) {
			assert.InDelta(t, 999.0, req.ExpectedPrice, 0)
			return domain.Quotes{
				"amazon":   quote("amazon", ptr(980.0)),
				"flipkart": quote("flipkart", ptr(1050.0)),
			}, nil
		}).Once()

	var created []domain.Notification

	completedAt := testNow.Add(3 * time.Minute)
	clock := testNow
	var last *domain.VendorQuote
	m.store.EXPECT().
		CompleteTriggerCheck(mock.Anything, "t-999", mock.Anything, domain.CheckOK, mock.Anything, mock.Anything).
		RunAndReturn(func(
			ctx context.Context,
			id string,
			q *domain.VendorQuote,
			s domain.CheckStatus,
			next time.Time,
			notes []domain.Notification,
		) error {
			last = q
			if next.After(trig.NextCheck) {
				trig.NextCheck = next
			}
			trig.LastFetchedPrice = q
			trig.CheckStatus = s
			return recordNotes(&created)(ctx, id, q, s, next, notes)
		}).Once()
	m.queue.EXPECT().Ack(mock.Anything, mock.Anything).Return(nil).Once()
	m.notifier.EXPECT().SendAlert(mock.Anything, mock.Anything).Return(nil).Once()

	opts := []Option{
		WithLogger(quietLogger()),
		WithClock(func() time.Time { return clock }),
		WithRescheduleInterval(interval),
		WithThreshold(50),
		WithHolder("test-holder"),
	}
	sc := NewScanner(m.store, m.queue, opts...)
	w := NewWorker(m.store, m.queue, m.resolver, m.notifier, opts...)

	oldNext := trig.NextCheck

	res, err := sc.Scan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Enqueued)
	require.Len(t, mq.jobs, 1)

	lease, err := m.queue.Dequeue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "t-999", lease.Job.TriggerID)

	clock = completedAt
	out := w.Process(context.Background(), lease)
	require.Equal(t, OutcomeDone, out.Kind, "err: %v", out.Err)

	require.Len(t, created, 1)
	assert.Equal(t, "amazon", created[0].Vendor)
	assert.InDelta(t, 980.0, created[0].Price, 0)

	require.NotNil(t, last)
	assert.InDelta(t, 980.0, *trig.LastFetchedPrice.Price, 0)
	assert.Equal(t, completedAt.Add(interval), trig.NextCheck)
	assert.True(t, trig.NextCheck.After(oldNext))
	assert.Empty(t, mq.jobs)
}
