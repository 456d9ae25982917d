package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/price-trigger-monitor/internal/metrics"
	"github.com/donaldgifford/price-trigger-monitor/internal/notify"
	"github.com/donaldgifford/price-trigger-monitor/internal/queue"
	"github.com/donaldgifford/price-trigger-monitor/internal/store"
	"github.com/donaldgifford/price-trigger-monitor/pkg/resolver"
	domain "github.com/donaldgifford/price-trigger-monitor/pkg/types"
)

// WorkerLockName is the scheduler lock that keeps a single worker consuming
// the queue across processes.
const WorkerLockName = "worker"

// ErrWorkerLockHeld is returned by Run when another process holds the worker
// lock.
var ErrWorkerLockHeld = errors.New("worker lock held by another process")

// errWorkerLockLost is the cancel cause when a renewal finds the lock taken.
var errWorkerLockLost = errors.New("worker lock lost")

// OutcomeKind classifies how a job ended.
type OutcomeKind int

// Outcome kinds. Only SystemicFailure stops the worker.
const (
	// OutcomeDone means the prices were checked and the trigger rescheduled.
	OutcomeDone OutcomeKind = iota
	// OutcomeDiscarded means the trigger is gone or inactive; the job was
	// acknowledged without work.
	OutcomeDiscarded
	// OutcomeJobFailure means this job failed (resolver error, timeout or
	// unparseable answer). The job is marked failed and the trigger
	// unresolved.
	OutcomeJobFailure
	// OutcomeSystemicFailure means the store or queue failed. The job is left
	// to its lease and the worker stops.
	OutcomeSystemicFailure
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeDone:
		return "done"
	case OutcomeDiscarded:
		return "discarded"
	case OutcomeJobFailure:
		return "job_failure"
	case OutcomeSystemicFailure:
		return "systemic_failure"
	default:
		return "unknown"
	}
}

// Outcome is the result of processing one job.
type Outcome struct {
	Kind          OutcomeKind
	JobID         string
	TriggerID     string
	Quote         *domain.VendorQuote
	Status        domain.CheckStatus
	NextCheck     time.Time
	Notifications []domain.Notification
	Err           error
}

// Worker is the single sequential consumer of the job queue.
type Worker struct {
	store    store.Store
	queue    queue.Queue
	resolver resolver.Resolver
	notifier notify.Notifier
	cfg      settings
	log      *slog.Logger
}

// NewWorker creates a Worker.
func NewWorker(
	s store.Store,
	q queue.Queue,
	r resolver.Resolver,
	n notify.Notifier,
	opts ...Option,
) *Worker {
	cfg := newSettings(opts)
	return &Worker{
		store:    s,
		queue:    q,
		resolver: r,
		notifier: n,
		cfg:      cfg,
		log:      cfg.log,
	}
}

// DefaultHolder returns a lock holder identity unique to this process.
func DefaultHolder() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "unknown"
	}
	return host + "-" + uuid.NewString()[:8]
}

// Run takes the worker lock and processes jobs one at a time until ctx is
// cancelled (returns nil) or a systemic failure occurs (returns the error).
func (w *Worker) Run(ctx context.Context) error {
	ok, err := w.store.AcquireSchedulerLock(ctx, WorkerLockName, w.cfg.holder, w.cfg.lockTTL)
	if err != nil {
		return w.systemic(ctx, fmt.Errorf("acquiring worker lock: %w", err))
	}
	if !ok {
		return ErrWorkerLockHeld
	}
	defer w.releaseLock(ctx)

	runCtx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)
	go w.keepLock(runCtx, cancel)

	w.log.Info("worker started", "holder", w.cfg.holder, "resolver", w.resolver.Name())

	for {
		lease, err := w.queue.Dequeue(runCtx)
		if err != nil {
			if stop, cause := w.stopped(ctx, runCtx); stop {
				return cause
			}
			metrics.QueueOperationsTotal.WithLabelValues("dequeue", "error").Inc()
			return w.systemic(ctx, fmt.Errorf("dequeuing job: %w", err))
		}
		metrics.QueueOperationsTotal.WithLabelValues("dequeue", "ok").Inc()

		out := w.Process(runCtx, lease)
		if out.Kind == OutcomeSystemicFailure {
			if stop, cause := w.stopped(ctx, runCtx); stop {
				return cause
			}
			return w.systemic(ctx, out.Err)
		}
	}
}

// stopped reports whether the loop should end because a context was
// cancelled, and what Run should return in that case.
func (w *Worker) stopped(parent, runCtx context.Context) (bool, error) {
	if parent.Err() != nil {
		w.log.Info("worker stopping")
		return true, nil
	}
	if runCtx.Err() != nil {
		cause := context.Cause(runCtx)
		return true, w.systemic(parent, cause)
	}
	return false, nil
}

func (w *Worker) systemic(ctx context.Context, err error) error {
	w.log.Error("worker stopped on systemic failure", "error", err)
	w.cfg.reporter.Capture(ctx, err, map[string]string{
		"component": "worker",
		"holder":    w.cfg.holder,
	})
	return err
}

// keepLock renews the worker lock at half its TTL, covering both busy and
// idle periods. Losing the lock cancels the run.
func (w *Worker) keepLock(ctx context.Context, cancel context.CancelCauseFunc) {
	ticker := time.NewTicker(w.cfg.lockTTL / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			ok, err := w.store.AcquireSchedulerLock(ctx, WorkerLockName, w.cfg.holder, w.cfg.lockTTL)
			if ctx.Err() != nil {
				return
			}
			if err != nil {
				cancel(fmt.Errorf("renewing worker lock: %w", err))
				return
			}
			if !ok {
				cancel(errWorkerLockLost)
				return
			}
		}
	}
}

func (w *Worker) releaseLock(ctx context.Context) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := w.store.ReleaseSchedulerLock(ctx, WorkerLockName, w.cfg.holder); err != nil {
		w.log.Warn("releasing worker lock", "error", err)
	}
}

// Process runs one leased job to completion and reports the outcome. It never
// panics on bad input; systemic errors are returned in the outcome for Run
// to act on.
func (w *Worker) Process(ctx context.Context, lease *queue.Lease) Outcome {
	start := time.Now()
	job := lease.Job

	ctx, span := tracer.Start(ctx, "engine.ProcessJob", trace.WithAttributes(
		attribute.String("job.id", job.ID),
		attribute.String("trigger.id", job.TriggerID),
		attribute.Int("job.attempt", job.Attempt),
	))
	defer span.End()

	out := w.process(ctx, lease)
	out.JobID = job.ID
	out.TriggerID = job.TriggerID

	metrics.WorkerJobsTotal.WithLabelValues(out.Kind.String()).Inc()
	metrics.WorkerJobDuration.Observe(time.Since(start).Seconds())

	span.SetAttributes(
		attribute.String("job.outcome", out.Kind.String()),
		attribute.Int("job.notifications", len(out.Notifications)),
	)
	if out.Err != nil {
		span.RecordError(out.Err)
	}
	if out.Kind == OutcomeSystemicFailure {
		span.SetStatus(codes.Error, out.Err.Error())
	}
	return out
}

func (w *Worker) process(ctx context.Context, lease *queue.Lease) Outcome {
	job := lease.Job
	log := w.log.With("job_id", job.ID, "trigger_id", job.TriggerID, "attempt", job.Attempt)

	t, err := w.store.GetTrigger(ctx, job.TriggerID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		log.InfoContext(ctx, "trigger not found, discarding job")
		return w.discard(ctx, lease)
	case err != nil:
		return systemicOutcome(fmt.Errorf("loading trigger %s: %w", job.TriggerID, err))
	}
	if !t.IsActive {
		log.InfoContext(ctx, "trigger inactive, discarding job")
		return w.discard(ctx, lease)
	}

	quotes, err := w.resolve(ctx, t)
	if err != nil {
		if ctx.Err() != nil {
			// Shutting down; the lease expires and the job is redelivered.
			return systemicOutcome(fmt.Errorf("resolving trigger %s: %w", t.ID, ctx.Err()))
		}
		log.WarnContext(ctx, "price lookup failed", "error", err)
		return w.failJob(ctx, lease, t, err)
	}

	matches := MatchQuotes(quotes, t.ExpectedPrice, w.cfg.threshold)
	best := LowestQuote(quotes)
	status := domain.CheckOK
	if !best.HasPrice() {
		status = domain.CheckUnresolved
		metrics.ResolverUnresolvedTotal.Inc()
		log.InfoContext(ctx, "no vendor returned a price")
	}

	notes := make([]domain.Notification, 0, len(matches))
	for _, q := range matches {
		notes = append(notes, domain.Notification{
			UserID:    t.UserID,
			TriggerID: t.ID,
			Vendor:    q.Vendor,
			Price:     *q.Price,
			Message:   notificationMessage(t, q),
		})
	}

	// Notifications commit with the trigger update or not at all.
	next := w.cfg.now().Add(w.cfg.rescheduleInterval)
	if err := w.store.CompleteTriggerCheck(ctx, t.ID, &best, status, next, notes); err != nil {
		return systemicOutcome(fmt.Errorf("completing check for trigger %s: %w", t.ID, err))
	}
	metrics.NotificationsCreatedTotal.Add(float64(len(notes)))

	if err := w.settle(ctx, lease, "ack", func() error { return w.queue.Ack(ctx, lease) }); err != nil {
		return systemicOutcome(err)
	}

	log.InfoContext(ctx, "trigger checked",
		"status", status,
		"vendor", best.Vendor,
		"matches", len(notes),
		"next_check", next,
	)

	w.push(ctx, t, matches, notes)

	return Outcome{
		Kind:          OutcomeDone,
		Quote:         &best,
		Status:        status,
		NextCheck:     next,
		Notifications: notes,
	}
}

func (w *Worker) resolve(ctx context.Context, t *domain.Trigger) (domain.Quotes, error) {
	ctx, cancel := context.WithTimeout(ctx, w.cfg.resolveTimeout)
	defer cancel()

	name := w.resolver.Name()
	start := time.Now()
	quotes, err := w.resolver.Resolve(ctx, resolver.Request{
		TriggerID:     t.ID,
		EventType:     t.EventType,
		Config:        t.Config,
		ExpectedPrice: t.ExpectedPrice,
	})
	metrics.ResolverDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ResolverErrorsTotal.WithLabelValues(name).Inc()
		return nil, fmt.Errorf("resolving prices with %s: %w", name, err)
	}
	return quotes, nil
}

func (w *Worker) discard(ctx context.Context, lease *queue.Lease) Outcome {
	if err := w.settle(ctx, lease, "ack", func() error { return w.queue.Ack(ctx, lease) }); err != nil {
		return systemicOutcome(err)
	}
	return Outcome{Kind: OutcomeDiscarded}
}

func (w *Worker) failJob(ctx context.Context, lease *queue.Lease, t *domain.Trigger, cause error) Outcome {
	if err := w.store.MarkTriggerUnresolved(ctx, t.ID); err != nil {
		return systemicOutcome(fmt.Errorf("marking trigger %s unresolved: %w", t.ID, err))
	}
	if err := w.settle(ctx, lease, "fail", func() error {
		return w.queue.Fail(ctx, lease, cause.Error())
	}); err != nil {
		return systemicOutcome(err)
	}
	return Outcome{Kind: OutcomeJobFailure, Status: domain.CheckUnresolved, Err: cause}
}

// settle runs an ack or fail. A lost lease is logged and tolerated: the
// reaper already failed the job and may have queued another attempt.
func (w *Worker) settle(ctx context.Context, lease *queue.Lease, op string, fn func() error) error {
	err := fn()
	switch {
	case err == nil:
		metrics.QueueOperationsTotal.WithLabelValues(op, "ok").Inc()
		return nil
	case errors.Is(err, queue.ErrLeaseLost):
		metrics.QueueOperationsTotal.WithLabelValues(op, "lease_lost").Inc()
		w.log.WarnContext(ctx, "lease lost before settling job",
			"op", op, "job_id", lease.Job.ID, "trigger_id", lease.Job.TriggerID)
		return nil
	default:
		metrics.QueueOperationsTotal.WithLabelValues(op, "error").Inc()
		return fmt.Errorf("%s job %s: %w", op, lease.Job.ID, err)
	}
}

// push forwards created notifications to the chat notifier. Failures are
// logged only.
func (w *Worker) push(
	ctx context.Context,
	t *domain.Trigger,
	matches []domain.VendorQuote,
	notes []domain.Notification,
) {
	if w.notifier == nil || len(notes) == 0 {
		return
	}

	label := notify.TriggerLabel(t)
	alerts := make([]notify.AlertPayload, len(notes))
	for i := range notes {
		var ref string
		if matches[i].Reference != nil {
			ref = *matches[i].Reference
		}
		alerts[i] = notify.AlertPayload{
			NotificationID: notes[i].ID,
			TriggerID:      t.ID,
			UserID:         t.UserID,
			EventType:      t.EventType,
			Label:          label,
			Vendor:         notes[i].Vendor,
			Price:          notes[i].Price,
			ExpectedPrice:  t.ExpectedPrice,
			Reference:      ref,
			Message:        notes[i].Message,
		}
	}

	var err error
	if len(alerts) == 1 {
		err = w.notifier.SendAlert(ctx, &alerts[0])
	} else {
		err = w.notifier.SendBatchAlert(ctx, alerts, label)
	}
	if err != nil {
		metrics.NotificationFailuresTotal.Inc()
		w.log.WarnContext(ctx, "pushing alerts failed", "trigger_id", t.ID, "alerts", len(alerts), "error", err)
	}
}

func systemicOutcome(err error) Outcome {
	return Outcome{Kind: OutcomeSystemicFailure, Err: err}
}
