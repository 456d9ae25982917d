package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	domain "github.com/donaldgifford/price-trigger-monitor/pkg/types"
)

const defaultRedisPrefix = "ptm:jobs"

// RedisQueue implements Queue on Redis lists. Job bodies are JSON strings;
// pending and processing are lists, leases and finished jobs are sorted sets
// scored by time, and failed jobs form a dead-letter list.
type RedisQueue struct {
	rdb    *redis.Client
	prefix string
	opts   Options
	log    *slog.Logger
}

// NewRedisClient parses a redis:// URL and verifies the connection.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	return rdb, nil
}

// NewRedisQueue creates a queue on rdb with keys under prefix.
func NewRedisQueue(rdb *redis.Client, prefix string, opts ...Option) *RedisQueue {
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	o := newOptions(opts)
	return &RedisQueue{rdb: rdb, prefix: prefix, opts: o, log: o.Logger}
}

func (q *RedisQueue) pendingKey() string    { return q.prefix + ":pending" }
func (q *RedisQueue) processingKey() string { return q.prefix + ":processing" }
func (q *RedisQueue) leasesKey() string     { return q.prefix + ":leases" }
func (q *RedisQueue) doneKey() string       { return q.prefix + ":done" }
func (q *RedisQueue) failedKey() string     { return q.prefix + ":failed" }
func (q *RedisQueue) jobKey(id string) string {
	return q.prefix + ":job:" + id
}

// Enqueue stores the job body and pushes its id onto the pending list.
func (q *RedisQueue) Enqueue(ctx context.Context, msg Message) (*domain.Job, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	job := &domain.Job{
		ID:                uuid.NewString(),
		TriggerID:         msg.TriggerID,
		ObservedNextCheck: msg.ObservedNextCheck,
		Status:            domain.JobPending,
		Attempt:           max(msg.Attempt, 1),
		CreatedAt:         time.Now().UTC(),
	}

	body, err := json.Marshal(job)
	if err != nil {
		return nil, fmt.Errorf("encoding job: %w", err)
	}

	if _, err := q.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, q.jobKey(job.ID), body, 0)
		p.LPush(ctx, q.pendingKey(), job.ID)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("enqueuing job for trigger %s: %w", msg.TriggerID, err)
	}

	return job, nil
}

// claimScript moves the oldest pending id onto processing, stamps its body
// and records the lease in one step, so every claimed job has a lease the
// reaper can find. An id whose body is gone is dropped and reported with no
// body.
var claimScript = redis.NewScript(`
local id = redis.call('LMOVE', KEYS[1], KEYS[2], 'RIGHT', 'LEFT')
if not id then
  return false
end
local key = ARGV[1] .. id
local raw = redis.call('GET', key)
if not raw then
  redis.call('LREM', KEYS[2], 1, id)
  return {id}
end
local job = cjson.decode(raw)
job.status = ARGV[2]
job.locked_at = ARGV[3]
job.lease_until = ARGV[4]
local body = cjson.encode(job)
redis.call('SET', key, body)
redis.call('ZADD', KEYS[3], ARGV[5], id)
return {id, body}
`)

// Dequeue claims the oldest pending job, blocking until one is available.
func (q *RedisQueue) Dequeue(ctx context.Context) (*Lease, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		lease, err := q.claim(ctx)
		if err != nil || lease != nil {
			return lease, err
		}

		// Wait for work. Moving the tail onto the same end leaves the list
		// untouched; the claim itself happens in claimScript.
		_, err = q.rdb.BLMove(ctx, q.pendingKey(), q.pendingKey(), "RIGHT", "RIGHT", q.blockTimeout()).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			return nil, fmt.Errorf("waiting for jobs: %w", err)
		}
	}
}

// blockTimeout is the BLMOVE timeout. Redis blocks in whole seconds, so
// shorter poll intervals are raised to one second.
func (q *RedisQueue) blockTimeout() time.Duration {
	return max(q.opts.PollInterval, time.Second)
}

// claim runs claimScript once. It returns a nil lease when nothing is
// pending.
func (q *RedisQueue) claim(ctx context.Context) (*Lease, error) {
	next, err := Transition(domain.JobPending, EventDequeue)
	if err != nil {
		return nil, err
	}

	for {
		now := time.Now().UTC()
		deadline := now.Add(q.opts.LeaseTTL)

		res, err := claimScript.Run(ctx, q.rdb,
			[]string{q.pendingKey(), q.processingKey(), q.leasesKey()},
			q.jobKey(""),
			string(next),
			now.Format(time.RFC3339Nano),
			deadline.Format(time.RFC3339Nano),
			deadline.UnixMilli(),
		).Slice()
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			return nil, fmt.Errorf("claiming job: %w", err)
		}

		id, _ := res[0].(string)
		if len(res) < 2 {
			q.log.Warn("dropping job without body", "job_id", id)
			continue
		}

		body, _ := res[1].(string)
		var job domain.Job
		if err := json.Unmarshal([]byte(body), &job); err != nil {
			// The lease is recorded; the reaper expires it.
			return nil, fmt.Errorf("decoding job %s: %w", id, err)
		}
		return &Lease{Job: job, Deadline: deadline}, nil
	}
}

// Ack completes a leased job.
func (q *RedisQueue) Ack(ctx context.Context, lease *Lease) error {
	if lease == nil {
		return ErrLeaseLost
	}
	return q.settle(ctx, lease.Job.ID, lease.Job.LockedAt, EventAck, "")
}

// Fail marks a leased job failed and adds it to the dead-letter list.
func (q *RedisQueue) Fail(ctx context.Context, lease *Lease, reason string) error {
	if lease == nil {
		return ErrLeaseLost
	}
	return q.settle(ctx, lease.Job.ID, lease.Job.LockedAt, EventFail, reason)
}

// settle finishes a processing job under WATCH so a concurrent reaper and
// holder cannot both settle it. lockedAt, when non-nil, must match the lease.
func (q *RedisQueue) settle(
	ctx context.Context,
	id string,
	lockedAt *time.Time,
	event, reason string,
) error {
	key := q.jobKey(id)

	err := q.rdb.Watch(ctx, func(tx *redis.Tx) error {
		body, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return ErrLeaseLost
		}
		if err != nil {
			return err
		}

		var job domain.Job
		if err := json.Unmarshal(body, &job); err != nil {
			return fmt.Errorf("decoding job: %w", err)
		}
		if job.Status != domain.JobProcessing {
			return ErrLeaseLost
		}
		if lockedAt != nil && (job.LockedAt == nil || !job.LockedAt.Equal(*lockedAt)) {
			return ErrLeaseLost
		}

		next, err := Transition(job.Status, event)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		job.Status = next
		job.Error = reason
		job.FinishedAt = &now
		job.LeaseUntil = nil

		out, err := json.Marshal(&job)
		if err != nil {
			return fmt.Errorf("encoding job: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.Set(ctx, key, out, 0)
			p.LRem(ctx, q.processingKey(), 1, id)
			p.ZRem(ctx, q.leasesKey(), id)
			if next == domain.JobDone {
				p.ZAdd(ctx, q.doneKey(), redis.Z{Score: float64(now.UnixMilli()), Member: id})
			} else {
				p.LPush(ctx, q.failedKey(), id)
			}
			return nil
		})
		return err
	}, key)

	switch {
	case errors.Is(err, ErrLeaseLost), errors.Is(err, redis.TxFailedErr):
		return fmt.Errorf("settling job %s: %w", id, ErrLeaseLost)
	case err != nil:
		return fmt.Errorf("settling job %s: %w", id, err)
	}
	return nil
}

// RequeueExpired reaps expired leases and redelivers under the attempt limit.
func (q *RedisQueue) RequeueExpired(ctx context.Context, now time.Time) (ReapResult, error) {
	ids, err := q.rdb.ZRangeByScore(ctx, q.leasesKey(), &redis.ZRangeBy{
		Min: "-inf",
		Max: strconv.FormatInt(now.UnixMilli(), 10),
	}).Result()
	if err != nil {
		return ReapResult{}, fmt.Errorf("listing expired leases: %w", err)
	}

	var res ReapResult
	for _, id := range ids {
		job, err := q.loadJob(ctx, id)
		if errors.Is(err, redis.Nil) {
			q.rdb.ZRem(ctx, q.leasesKey(), id)
			continue
		}
		if err != nil {
			return res, err
		}

		err = q.settle(ctx, id, nil, EventFail, leaseExpiredReason)
		if errors.Is(err, ErrLeaseLost) {
			// Settled by its holder in the meantime.
			continue
		}
		if err != nil {
			return res, err
		}
		res.Expired++

		if job.Attempt >= q.opts.MaxAttempts {
			continue
		}
		if _, err := q.Enqueue(ctx, Message{
			TriggerID:         job.TriggerID,
			ObservedNextCheck: job.ObservedNextCheck,
			Attempt:           job.Attempt + 1,
		}); err != nil {
			return res, err
		}
		res.Redelivered++
	}

	return res, nil
}

// Purge deletes done jobs finished before the cutoff.
func (q *RedisQueue) Purge(ctx context.Context, before time.Time) (int, error) {
	ids, err := q.rdb.ZRangeByScore(ctx, q.doneKey(), &redis.ZRangeBy{
		Min: "-inf",
		Max: "(" + strconv.FormatInt(before.UnixMilli(), 10),
	}).Result()
	if err != nil {
		return 0, fmt.Errorf("listing done jobs: %w", err)
	}
	if len(ids) == 0 {
		return 0, nil
	}

	keys := make([]string, len(ids))
	members := make([]any, len(ids))
	for i, id := range ids {
		keys[i] = q.jobKey(id)
		members[i] = id
	}

	if _, err := q.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Del(ctx, keys...)
		p.ZRem(ctx, q.doneKey(), members...)
		return nil
	}); err != nil {
		return 0, fmt.Errorf("purging done jobs: %w", err)
	}
	return len(ids), nil
}

// Stats returns job counts per status.
func (q *RedisQueue) Stats(ctx context.Context) (domain.QueueStats, error) {
	var pending, processing, done, failed *redis.IntCmd
	if _, err := q.rdb.Pipelined(ctx, func(p redis.Pipeliner) error {
		pending = p.LLen(ctx, q.pendingKey())
		processing = p.LLen(ctx, q.processingKey())
		done = p.ZCard(ctx, q.doneKey())
		failed = p.LLen(ctx, q.failedKey())
		return nil
	}); err != nil {
		return domain.QueueStats{}, fmt.Errorf("reading queue stats: %w", err)
	}

	return domain.QueueStats{
		Pending:    int(pending.Val()),
		Processing: int(processing.Val()),
		Done:       int(done.Val()),
		Failed:     int(failed.Val()),
	}, nil
}

// ListJobs returns jobs newest first, optionally filtered by status.
func (q *RedisQueue) ListJobs(
	ctx context.Context,
	status domain.JobStatus,
	limit int,
) ([]domain.Job, error) {
	if err := validStatusFilter(status); err != nil {
		return nil, err
	}
	limit = normalizeLimit(limit)
	stop := int64(limit - 1)

	statuses := []domain.JobStatus{status}
	if status == "" {
		statuses = []domain.JobStatus{domain.JobPending, domain.JobProcessing, domain.JobFailed, domain.JobDone}
	}

	var ids []string
	for _, s := range statuses {
		var (
			got []string
			err error
		)
		switch s {
		case domain.JobPending:
			got, err = q.rdb.LRange(ctx, q.pendingKey(), 0, stop).Result()
		case domain.JobProcessing:
			got, err = q.rdb.LRange(ctx, q.processingKey(), 0, stop).Result()
		case domain.JobFailed:
			got, err = q.rdb.LRange(ctx, q.failedKey(), 0, stop).Result()
		case domain.JobDone:
			got, err = q.rdb.ZRevRange(ctx, q.doneKey(), 0, stop).Result()
		}
		if err != nil {
			return nil, fmt.Errorf("listing %s jobs: %w", s, err)
		}
		ids = append(ids, got...)
		if len(ids) >= limit {
			ids = ids[:limit]
			break
		}
	}

	jobs := make([]domain.Job, 0, len(ids))
	for _, id := range ids {
		job, err := q.loadJob(ctx, id)
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	return jobs, nil
}

// Ping verifies the Redis connection is alive.
func (q *RedisQueue) Ping(ctx context.Context) error {
	return q.rdb.Ping(ctx).Err()
}

// Close closes the Redis client.
func (q *RedisQueue) Close() error {
	return q.rdb.Close()
}

func (q *RedisQueue) loadJob(ctx context.Context, id string) (*domain.Job, error) {
	body, err := q.rdb.Get(ctx, q.jobKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, err
		}
		return nil, fmt.Errorf("loading job %s: %w", id, err)
	}

	var job domain.Job
	if err := json.Unmarshal(body, &job); err != nil {
		return nil, fmt.Errorf("decoding job %s: %w", id, err)
	}
	return &job, nil
}
