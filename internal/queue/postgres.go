package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/donaldgifford/price-trigger-monitor/pkg/types"
)

// PostgresQueue implements Queue on the trigger_jobs table. Blocked
// consumers wake on LISTEN/NOTIFY and fall back to polling.
type PostgresQueue struct {
	pool *pgxpool.Pool
	opts Options
	log  *slog.Logger
}

// NewPostgresQueue creates a queue backed by the given pool. The schema is
// owned by the store migrations.
func NewPostgresQueue(pool *pgxpool.Pool, opts ...Option) *PostgresQueue {
	o := newOptions(opts)
	return &PostgresQueue{pool: pool, opts: o, log: o.Logger}
}

// Enqueue appends a pending job and wakes any blocked consumer.
func (q *PostgresQueue) Enqueue(ctx context.Context, msg Message) (*domain.Job, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	attempt := max(msg.Attempt, 1)

	job := &domain.Job{}
	if err := scanJob(
		q.pool.QueryRow(ctx, queryEnqueueJob, msg.TriggerID, msg.ObservedNextCheck, attempt),
		job,
	); err != nil {
		return nil, fmt.Errorf("enqueuing job for trigger %s: %w", msg.TriggerID, err)
	}

	if _, err := q.pool.Exec(ctx, queryNotifyJob, job.ID); err != nil {
		// Consumers still find the job on their next poll.
		q.log.Warn("notifying job listeners", "job_id", job.ID, "error", err)
	}

	return job, nil
}

// Dequeue claims the oldest pending job, waiting until one exists.
func (q *PostgresQueue) Dequeue(ctx context.Context) (*Lease, error) {
	if lease, err := q.tryDequeue(ctx); lease != nil || err != nil {
		return lease, err
	}

	conn, err := q.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquiring listener connection: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+notifyChannel); err != nil {
		return nil, fmt.Errorf("listening for jobs: %w", err)
	}
	defer func() {
		_, _ = conn.Exec(context.WithoutCancel(ctx), "UNLISTEN "+notifyChannel)
	}()

	for {
		lease, err := q.tryDequeue(ctx)
		if lease != nil || err != nil {
			return lease, err
		}

		waitCtx, cancel := context.WithTimeout(ctx, q.opts.PollInterval)
		_, err = conn.Conn().WaitForNotification(waitCtx)
		cancel()

		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("waiting for jobs: %w", err)
		}
	}
}

func (q *PostgresQueue) tryDequeue(ctx context.Context) (*Lease, error) {
	next, err := Transition(domain.JobPending, EventDequeue)
	if err != nil {
		return nil, err
	}

	job := &domain.Job{}
	err = scanJob(
		q.pool.QueryRow(ctx, queryDequeueJob, string(next), q.opts.LeaseTTL.Seconds()),
		job,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("dequeuing job: %w", err)
	}

	lease := &Lease{Job: *job}
	if job.LeaseUntil != nil {
		lease.Deadline = *job.LeaseUntil
	}
	return lease, nil
}

// Ack completes a leased job.
func (q *PostgresQueue) Ack(ctx context.Context, lease *Lease) error {
	return q.settle(ctx, lease, EventAck, "")
}

// Fail marks a leased job failed with the given reason.
func (q *PostgresQueue) Fail(ctx context.Context, lease *Lease, reason string) error {
	return q.settle(ctx, lease, EventFail, reason)
}

func (q *PostgresQueue) settle(ctx context.Context, lease *Lease, event, reason string) error {
	if lease == nil || lease.Job.LockedAt == nil {
		return ErrLeaseLost
	}

	next, err := Transition(lease.Job.Status, event)
	if err != nil {
		return err
	}

	tag, err := q.pool.Exec(ctx, querySettleJob, lease.Job.ID, *lease.Job.LockedAt, string(next), reason)
	if err != nil {
		return fmt.Errorf("settling job %s: %w", lease.Job.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("settling job %s: %w", lease.Job.ID, ErrLeaseLost)
	}
	return nil
}

// RequeueExpired reaps expired leases and redelivers under the attempt limit.
func (q *PostgresQueue) RequeueExpired(ctx context.Context, now time.Time) (ReapResult, error) {
	var res ReapResult
	if err := q.pool.QueryRow(ctx, queryReapExpired, now, q.opts.MaxAttempts, leaseExpiredReason).
		Scan(&res.Expired, &res.Redelivered); err != nil {
		return ReapResult{}, fmt.Errorf("reaping expired leases: %w", err)
	}
	if res.Redelivered > 0 {
		if _, err := q.pool.Exec(ctx, queryNotifyJob, "redelivered"); err != nil {
			q.log.Warn("notifying job listeners", "error", err)
		}
	}
	return res, nil
}

// Purge deletes done jobs finished before the cutoff.
func (q *PostgresQueue) Purge(ctx context.Context, before time.Time) (int, error) {
	tag, err := q.pool.Exec(ctx, queryPurgeDone, before)
	if err != nil {
		return 0, fmt.Errorf("purging done jobs: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// Stats returns job counts per status.
func (q *PostgresQueue) Stats(ctx context.Context) (domain.QueueStats, error) {
	rows, err := q.pool.Query(ctx, queryJobStats)
	if err != nil {
		return domain.QueueStats{}, fmt.Errorf("querying job stats: %w", err)
	}
	defer rows.Close()

	var stats domain.QueueStats
	for rows.Next() {
		var (
			status string
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return domain.QueueStats{}, fmt.Errorf("scanning job stats: %w", err)
		}
		switch domain.JobStatus(status) {
		case domain.JobPending:
			stats.Pending = count
		case domain.JobProcessing:
			stats.Processing = count
		case domain.JobDone:
			stats.Done = count
		case domain.JobFailed:
			stats.Failed = count
		}
	}
	return stats, rows.Err()
}

// ListJobs returns jobs newest first, optionally filtered by status.
func (q *PostgresQueue) ListJobs(
	ctx context.Context,
	status domain.JobStatus,
	limit int,
) ([]domain.Job, error) {
	if err := validStatusFilter(status); err != nil {
		return nil, err
	}

	rows, err := q.pool.Query(ctx, queryListJobs, string(status), normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("querying jobs: %w", err)
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var j domain.Job
		if err := scanJob(rows, &j); err != nil {
			return nil, fmt.Errorf("scanning job: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// Ping verifies the database connection is alive.
func (q *PostgresQueue) Ping(ctx context.Context) error {
	return q.pool.Ping(ctx)
}

// Close is a no-op; the pool belongs to the store.
func (*PostgresQueue) Close() error {
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner, j *domain.Job) error {
	return row.Scan(
		&j.ID, &j.TriggerID, &j.ObservedNextCheck, &j.Status, &j.Attempt,
		&j.CreatedAt, &j.LockedAt, &j.LeaseUntil, &j.FinishedAt, &j.Error,
	)
}
