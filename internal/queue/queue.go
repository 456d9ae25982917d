// Package queue provides the durable FIFO job queue that decouples the due
// trigger scanner from the worker. Dequeue hands out a lease; a job is only
// finished once the lease is acknowledged or failed. Leases that are never
// settled expire and the job is redelivered as a fresh attempt.
package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	domain "github.com/donaldgifford/price-trigger-monitor/pkg/types"
)

// ErrLeaseLost is returned by Ack and Fail when the lease expired and the job
// was reaped (or settled) before the holder finished with it.
var ErrLeaseLost = errors.New("lease lost")

const (
	defaultLeaseTTL     = 5 * time.Minute
	defaultMaxAttempts  = 3
	defaultPollInterval = 5 * time.Second
	defaultListLimit    = 50

	leaseExpiredReason = "lease expired"
)

// Message is the payload placed on the queue for one trigger check.
type Message struct {
	TriggerID         string     `json:"trigger_id"`
	ObservedNextCheck *time.Time `json:"observed_next_check,omitempty"`
	Attempt           int        `json:"attempt,omitempty"`
}

// Validate checks the message carries a trigger reference.
func (m Message) Validate() error {
	if m.TriggerID == "" {
		return errors.New("message requires a trigger_id")
	}
	return nil
}

// Lease is a dequeued job that must be settled with Ack or Fail before
// Deadline.
type Lease struct {
	Job      domain.Job
	Deadline time.Time
}

// ReapResult reports what RequeueExpired did.
type ReapResult struct {
	Expired     int `json:"expired"`
	Redelivered int `json:"redelivered"`
}

// Queue is the durable job queue contract shared by all backends.
type Queue interface {
	// Enqueue appends a pending job to the tail. Duplicate messages for the
	// same trigger are accepted.
	Enqueue(ctx context.Context, msg Message) (*domain.Job, error)
	// Dequeue blocks until a job is available (or ctx is done), moves it to
	// processing, and returns its lease.
	Dequeue(ctx context.Context) (*Lease, error)
	// Ack completes a leased job.
	Ack(ctx context.Context, lease *Lease) error
	// Fail moves a leased job to failed, where it stays for inspection.
	Fail(ctx context.Context, lease *Lease, reason string) error
	// RequeueExpired fails every processing job whose lease ended before now
	// and enqueues a fresh attempt for those under the attempt limit.
	RequeueExpired(ctx context.Context, now time.Time) (ReapResult, error)
	// Purge deletes done jobs finished before the cutoff. Failed jobs are kept.
	Purge(ctx context.Context, before time.Time) (int, error)
	Stats(ctx context.Context) (domain.QueueStats, error)
	ListJobs(ctx context.Context, status domain.JobStatus, limit int) ([]domain.Job, error)
	Ping(ctx context.Context) error
	Close() error
}

// Options holds settings common to all backends.
type Options struct {
	LeaseTTL     time.Duration
	MaxAttempts  int
	PollInterval time.Duration
	Logger       *slog.Logger
}

// Option configures a queue backend.
type Option func(*Options)

// WithLeaseTTL sets how long a dequeued job may stay unsettled.
func WithLeaseTTL(d time.Duration) Option {
	return func(o *Options) { o.LeaseTTL = d }
}

// WithMaxAttempts bounds redelivery of jobs whose lease expired.
func WithMaxAttempts(n int) Option {
	return func(o *Options) { o.MaxAttempts = n }
}

// WithPollInterval sets how often a blocked Dequeue re-checks for work
// (and for context cancellation). The Redis backend blocks in whole seconds
// and treats anything shorter as one second.
func WithPollInterval(d time.Duration) Option {
	return func(o *Options) { o.PollInterval = d }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func newOptions(opts []Option) Options {
	o := Options{
		LeaseTTL:     defaultLeaseTTL,
		MaxAttempts:  defaultMaxAttempts,
		PollInterval: defaultPollInterval,
		Logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.LeaseTTL <= 0 {
		o.LeaseTTL = defaultLeaseTTL
	}
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = defaultMaxAttempts
	}
	if o.PollInterval <= 0 {
		o.PollInterval = defaultPollInterval
	}
	return o
}

func normalizeLimit(limit int) int {
	if limit <= 0 || limit > 500 {
		return defaultListLimit
	}
	return limit
}

func validStatusFilter(status domain.JobStatus) error {
	switch status {
	case "", domain.JobPending, domain.JobProcessing, domain.JobDone, domain.JobFailed:
		return nil
	default:
		return fmt.Errorf("unknown job status %q", status)
	}
}
