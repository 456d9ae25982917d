// Package errreport forwards systemic failures to Sentry.
package errreport

import (
	"context"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
)

// Reporter captures errors that stop a process.
type Reporter interface {
	Capture(ctx context.Context, err error, tags map[string]string)
	Flush(timeout time.Duration) bool
}

// Options configures a Sentry reporter.
type Options struct {
	DSN         string
	Environment string
	Release     string
	SampleRate  float64
}

// New returns a Sentry-backed Reporter, or a no-op Reporter when dsn is empty.
func New(opts Options) (Reporter, error) {
	if opts.DSN == "" {
		return Nop{}, nil
	}
	if opts.SampleRate <= 0 {
		opts.SampleRate = 1.0
	}

	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:              opts.DSN,
		Environment:      opts.Environment,
		Release:          opts.Release,
		SampleRate:       opts.SampleRate,
		AttachStacktrace: true,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing sentry: %w", err)
	}

	return &Sentry{hub: sentry.NewHub(client, sentry.NewScope())}, nil
}

// Sentry reports through a dedicated sentry hub.
type Sentry struct {
	hub *sentry.Hub
}

// NewSentry wraps an existing hub.
func NewSentry(hub *sentry.Hub) *Sentry {
	return &Sentry{hub: hub}
}

// Capture sends err at error level with the given tags.
func (s *Sentry) Capture(_ context.Context, err error, tags map[string]string) {
	if err == nil {
		return
	}
	s.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(sentry.LevelError)
		scope.SetTags(tags)
		s.hub.CaptureException(err)
	})
}

// Flush waits for buffered events to be sent.
func (s *Sentry) Flush(timeout time.Duration) bool {
	return s.hub.Flush(timeout)
}

// Nop discards every report.
type Nop struct{}

// Capture does nothing.
func (Nop) Capture(context.Context, error, map[string]string) {}

// Flush reports success immediately.
func (Nop) Flush(time.Duration) bool { return true }
