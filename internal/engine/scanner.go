package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hashicorp/go-multierror"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/donaldgifford/price-trigger-monitor/internal/metrics"
	"github.com/donaldgifford/price-trigger-monitor/internal/queue"
	"github.com/donaldgifford/price-trigger-monitor/internal/store"
)

// ScanResult summarizes one scan.
type ScanResult struct {
	Due      int `json:"due"`
	Enqueued int `json:"enqueued"`
	Skipped  int `json:"skipped"`
}

// Scanner finds due triggers, claims them and enqueues one job per claimed
// trigger.
type Scanner struct {
	store store.Store
	queue queue.Queue
	cfg   settings
	log   *slog.Logger
}

// NewScanner creates a Scanner.
func NewScanner(s store.Store, q queue.Queue, opts ...Option) *Scanner {
	cfg := newSettings(opts)
	return &Scanner{
		store: s,
		queue: q,
		cfg:   cfg,
		log:   cfg.log,
	}
}

// Scan claims every active trigger whose next_check has passed and enqueues
// a job for it. A claim moves next_check forward by the claim lease, so a
// trigger is enqueued at most once per scan and a later scan cannot pick it
// up again while its job is in flight. Per-trigger failures never stop the
// scan; they are collected into the returned error.
func (sc *Scanner) Scan(ctx context.Context) (ScanResult, error) {
	start := time.Now()
	metrics.ScansTotal.Inc()
	defer func() {
		metrics.ScanDuration.Observe(time.Since(start).Seconds())
	}()

	ctx, span := tracer.Start(ctx, "engine.Scan")
	defer span.End()

	now := sc.cfg.now()
	due, err := sc.store.ListDueTriggers(ctx, now, sc.cfg.batchSize)
	if err != nil {
		metrics.ScanErrorsTotal.Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "listing due triggers")
		return ScanResult{}, fmt.Errorf("listing due triggers: %w", err)
	}

	res := ScanResult{Due: len(due)}
	metrics.ScanDueTriggersTotal.Add(float64(len(due)))

	var errs *multierror.Error
	seen := make(map[string]struct{}, len(due))
	claimUntil := now.Add(sc.cfg.claimLease)

	for i := range due {
		if ctx.Err() != nil {
			errs = multierror.Append(errs, ctx.Err())
			break
		}

		t := &due[i]
		if _, dup := seen[t.ID]; dup {
			res.Skipped++
			continue
		}
		seen[t.ID] = struct{}{}

		claimed, err := sc.store.ClaimTrigger(ctx, t.ID, t.NextCheck, claimUntil)
		if err != nil {
			sc.log.ErrorContext(ctx, "claiming trigger failed", "trigger_id", t.ID, "error", err)
			metrics.ScanErrorsTotal.Inc()
			errs = multierror.Append(errs, fmt.Errorf("claiming trigger %s: %w", t.ID, err))
			continue
		}
		if !claimed {
			sc.log.DebugContext(ctx, "trigger claimed elsewhere", "trigger_id", t.ID)
			metrics.ScanClaimConflictsTotal.Inc()
			res.Skipped++
			continue
		}

		observed := t.NextCheck
		job, err := sc.queue.Enqueue(ctx, queue.Message{
			TriggerID:         t.ID,
			ObservedNextCheck: &observed,
		})
		if err != nil {
			// The claim stays in place; the trigger becomes due again once
			// the claim lease runs out.
			sc.log.ErrorContext(ctx, "enqueue failed", "trigger_id", t.ID, "error", err)
			metrics.QueueOperationsTotal.WithLabelValues("enqueue", "error").Inc()
			metrics.ScanErrorsTotal.Inc()
			errs = multierror.Append(errs, fmt.Errorf("enqueueing trigger %s: %w", t.ID, err))
			continue
		}

		metrics.QueueOperationsTotal.WithLabelValues("enqueue", "ok").Inc()
		metrics.ScanEnqueuedTotal.Inc()
		res.Enqueued++
		sc.log.DebugContext(ctx, "trigger enqueued", "trigger_id", t.ID, "job_id", job.ID)
	}

	span.SetAttributes(
		attribute.Int("scan.due", res.Due),
		attribute.Int("scan.enqueued", res.Enqueued),
		attribute.Int("scan.skipped", res.Skipped),
	)

	if err := errs.ErrorOrNil(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "scan finished with errors")
		return res, err
	}

	sc.log.InfoContext(ctx, "scan complete",
		"due", res.Due,
		"enqueued", res.Enqueued,
		"skipped", res.Skipped,
	)
	return res, nil
}
