// Package engine runs the trigger monitoring pipeline: the scanner that
// claims due triggers and enqueues them, the worker that consumes the queue,
// and the scheduler that drives the periodic jobs.
package engine

import (
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/donaldgifford/price-trigger-monitor/internal/errreport"
	"github.com/donaldgifford/price-trigger-monitor/internal/telemetry"
)

const (
	defaultRescheduleInterval = 10 * time.Minute
	defaultThreshold          = 2000
	defaultResolveTimeout     = 60 * time.Second
	defaultBatchSize          = 500
	defaultLockTTL            = 2 * time.Minute
)

var tracer = otel.Tracer(telemetry.InstrumentationName)

// settings is shared by the scanner and the worker so both read the same
// reschedule interval from one set of options.
type settings struct {
	log                *slog.Logger
	now                func() time.Time
	reporter           errreport.Reporter
	rescheduleInterval time.Duration
	claimLease         time.Duration
	threshold          float64
	resolveTimeout     time.Duration
	batchSize          int
	lockTTL            time.Duration
	holder             string
}

// Option configures a Scanner or a Worker.
type Option func(*settings)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		s.log = l
	}
}

// WithClock overrides time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *settings) {
		s.now = now
	}
}

// WithReporter sets where systemic failures are reported.
func WithReporter(r errreport.Reporter) Option {
	return func(s *settings) {
		s.reporter = r
	}
}

// WithRescheduleInterval sets how far next_check moves after a processed job.
func WithRescheduleInterval(d time.Duration) Option {
	return func(s *settings) {
		s.rescheduleInterval = d
	}
}

// WithClaimLease sets how far the scanner pushes next_check when it claims a
// trigger. Defaults to the reschedule interval.
func WithClaimLease(d time.Duration) Option {
	return func(s *settings) {
		s.claimLease = d
	}
}

// WithThreshold sets the maximum absolute price difference that counts as a
// match.
func WithThreshold(t float64) Option {
	return func(s *settings) {
		s.threshold = t
	}
}

// WithResolveTimeout bounds a single resolver call.
func WithResolveTimeout(d time.Duration) Option {
	return func(s *settings) {
		s.resolveTimeout = d
	}
}

// WithBatchSize caps the number of due triggers read per scan.
func WithBatchSize(n int) Option {
	return func(s *settings) {
		s.batchSize = n
	}
}

// WithLockTTL sets the TTL of the worker's single-consumer lock.
func WithLockTTL(d time.Duration) Option {
	return func(s *settings) {
		s.lockTTL = d
	}
}

// WithHolder sets the identity written into scheduler locks.
func WithHolder(h string) Option {
	return func(s *settings) {
		s.holder = h
	}
}

func newSettings(opts []Option) settings {
	s := settings{
		log:                slog.Default(),
		now:                time.Now,
		reporter:           errreport.Nop{},
		rescheduleInterval: defaultRescheduleInterval,
		threshold:          defaultThreshold,
		resolveTimeout:     defaultResolveTimeout,
		batchSize:          defaultBatchSize,
		lockTTL:            defaultLockTTL,
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.rescheduleInterval <= 0 {
		s.rescheduleInterval = defaultRescheduleInterval
	}
	if s.claimLease <= 0 {
		s.claimLease = s.rescheduleInterval
	}
	if s.resolveTimeout <= 0 {
		s.resolveTimeout = defaultResolveTimeout
	}
	if s.batchSize <= 0 {
		s.batchSize = defaultBatchSize
	}
	if s.lockTTL <= 0 {
		s.lockTTL = defaultLockTTL
	}
	if s.holder == "" {
		s.holder = DefaultHolder()
	}
	return s
}
