package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/donaldgifford/price-trigger-monitor/internal/metrics"
	"github.com/donaldgifford/price-trigger-monitor/internal/queue"
	"github.com/donaldgifford/price-trigger-monitor/internal/store"
)

// Scheduled job names, used for locks and job_runs rows.
const (
	JobScan  = "scan"
	JobReap  = "reap"
	JobPurge = "purge"
)

const (
	purgeInterval      = time.Hour
	staleJobRunTimeout = 2 * time.Hour
)

// Scheduler runs the scanner, the lease reaper and the done-job purge on
// fixed intervals.
type Scheduler struct {
	cron    *cron.Cron
	scanner *Scanner
	queue   queue.Queue
	store   store.Store
	log     *slog.Logger
	holder  string

	scanInterval time.Duration
	reapInterval time.Duration
	retention    time.Duration

	scanEntryID  cron.EntryID
	reapEntryID  cron.EntryID
	purgeEntryID cron.EntryID
}

// NewScheduler creates a Scheduler. A zero retention disables the purge job.
func NewScheduler(
	sc *Scanner,
	q queue.Queue,
	s store.Store,
	scanInterval time.Duration,
	reapInterval time.Duration,
	retention time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	c := cron.New()

	sched := &Scheduler{
		cron:         c,
		scanner:      sc,
		queue:        q,
		store:        s,
		log:          log,
		holder:       DefaultHolder(),
		scanInterval: scanInterval,
		reapInterval: reapInterval,
		retention:    retention,
	}

	var err error
	if sched.scanEntryID, err = c.AddFunc("@every "+scanInterval.String(), sched.runScan); err != nil {
		return nil, fmt.Errorf("scheduling scan: %w", err)
	}
	if sched.reapEntryID, err = c.AddFunc("@every "+reapInterval.String(), sched.runReap); err != nil {
		return nil, fmt.Errorf("scheduling reap: %w", err)
	}
	if retention > 0 {
		if sched.purgeEntryID, err = c.AddFunc("@every "+purgeInterval.String(), sched.runPurge); err != nil {
			return nil, fmt.Errorf("scheduling purge: %w", err)
		}
	}

	return sched, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started",
		"scan_interval", s.scanInterval,
		"reap_interval", s.reapInterval,
	)
	s.cron.Start()
	s.SyncNextRunTimestamps()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// SyncNextRunTimestamps publishes the next scan and reap times as gauges.
func (s *Scheduler) SyncNextRunTimestamps() {
	if next := s.cron.Entry(s.scanEntryID).Next; !next.IsZero() {
		metrics.SchedulerNextScanTimestamp.Set(float64(next.Unix()))
	}
	if next := s.cron.Entry(s.reapEntryID).Next; !next.IsZero() {
		metrics.SchedulerNextReapTimestamp.Set(float64(next.Unix()))
	}
}

// RecoverStaleJobRuns marks job runs left "running" by a crashed process.
func (s *Scheduler) RecoverStaleJobRuns(ctx context.Context) {
	n, err := s.store.RecoverStaleJobRuns(ctx, staleJobRunTimeout)
	if err != nil {
		s.log.Error("recovering stale job runs", "error", err)
		return
	}
	if n > 0 {
		s.log.Warn("marked stale job runs as crashed", "count", n)
	}
}

// RunScan runs one scan under the scan lock, as the cron job does.
func (s *Scheduler) RunScan(ctx context.Context) error {
	return s.runJob(ctx, JobScan, s.scanInterval, func(ctx context.Context) (int, error) {
		res, err := s.scanner.Scan(ctx)
		return res.Enqueued, err
	})
}

// Reap fails expired leases and redelivers them, then refreshes the queue
// depth gauges.
func (s *Scheduler) Reap(ctx context.Context) (queue.ReapResult, error) {
	res, err := s.queue.RequeueExpired(ctx, time.Now())
	if err != nil {
		return res, fmt.Errorf("requeueing expired jobs: %w", err)
	}
	metrics.QueueExpiredTotal.Add(float64(res.Expired))
	metrics.QueueRedeliveredTotal.Add(float64(res.Redelivered))
	if res.Expired > 0 {
		s.log.Warn("expired leases reaped",
			"expired", res.Expired,
			"redelivered", res.Redelivered,
		)
	}

	stats, err := s.queue.Stats(ctx)
	if err != nil {
		return res, fmt.Errorf("reading queue stats: %w", err)
	}
	metrics.QueueDepth.WithLabelValues("pending").Set(float64(stats.Pending))
	metrics.QueueDepth.WithLabelValues("processing").Set(float64(stats.Processing))
	metrics.QueueDepth.WithLabelValues("done").Set(float64(stats.Done))
	metrics.QueueDepth.WithLabelValues("failed").Set(float64(stats.Failed))
	return res, nil
}

// Purge deletes done jobs older than the retention window.
func (s *Scheduler) Purge(ctx context.Context) (int, error) {
	n, err := s.queue.Purge(ctx, time.Now().Add(-s.retention))
	if err != nil {
		return 0, fmt.Errorf("purging done jobs: %w", err)
	}
	if n > 0 {
		s.log.Info("purged done jobs", "count", n)
	}
	return n, nil
}

func (s *Scheduler) runScan() {
	defer s.SyncNextRunTimestamps()
	if err := s.RunScan(context.Background()); err != nil {
		s.log.Error("scheduled scan failed", "error", err)
	}
}

func (s *Scheduler) runReap() {
	defer s.SyncNextRunTimestamps()
	err := s.runJob(context.Background(), JobReap, s.reapInterval, func(ctx context.Context) (int, error) {
		res, err := s.Reap(ctx)
		return res.Expired, err
	})
	if err != nil {
		s.log.Error("scheduled reap failed", "error", err)
	}
}

func (s *Scheduler) runPurge() {
	if err := s.runJob(context.Background(), JobPurge, purgeInterval, s.Purge); err != nil {
		s.log.Error("scheduled purge failed", "error", err)
	}
}

// runJob executes fn under a distributed lock and records it in job_runs.
// When another instance holds the lock the run is skipped.
func (s *Scheduler) runJob(
	ctx context.Context,
	name string,
	lockTTL time.Duration,
	fn func(context.Context) (int, error),
) error {
	ok, err := s.store.AcquireSchedulerLock(ctx, name, s.holder, lockTTL)
	if err != nil {
		return fmt.Errorf("acquiring %s lock: %w", name, err)
	}
	if !ok {
		s.log.Debug("job locked by another instance, skipping", "job", name)
		return nil
	}
	defer func() {
		if err := s.store.ReleaseSchedulerLock(context.WithoutCancel(ctx), name, s.holder); err != nil {
			s.log.Warn("releasing scheduler lock", "job", name, "error", err)
		}
	}()

	runID, err := s.store.InsertJobRun(ctx, name)
	if err != nil {
		s.log.Warn("recording job run start", "job", name, "error", err)
	}

	start := time.Now()
	rows, jobErr := fn(ctx)
	metrics.SchedulerJobDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())

	if runID != "" {
		status, errText := "succeeded", ""
		if jobErr != nil {
			status, errText = "failed", jobErr.Error()
		}
		if err := s.store.CompleteJobRun(ctx, runID, status, errText, rows); err != nil {
			s.log.Warn("recording job run completion", "job", name, "error", err)
		}
	}

	return jobErr
}
