// Package store defines the datastore abstraction for the price trigger monitor.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"errors"
	"time"

	domain "github.com/donaldgifford/price-trigger-monitor/pkg/types"
)

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("not found")

// TriggerQuery defines optional filters for trigger listings.
type TriggerQuery struct {
	UserID    string
	Active    *bool
	Tracked   *bool
	EventType *domain.EventType
	Limit     int // default 50
	Offset    int
}

// Store defines all data access operations for the price trigger monitor.
type Store interface {
	// Triggers
	CreateTrigger(ctx context.Context, t *domain.Trigger) error
	GetTrigger(ctx context.Context, id string) (*domain.Trigger, error)
	ListTriggers(ctx context.Context, q *TriggerQuery) ([]domain.Trigger, error)
	ListDueTriggers(ctx context.Context, now time.Time, limit int) ([]domain.Trigger, error)
	ClaimTrigger(ctx context.Context, id string, observed, next time.Time) (bool, error)
	CompleteTriggerCheck(
		ctx context.Context,
		id string,
		quote *domain.VendorQuote,
		status domain.CheckStatus,
		next time.Time,
		notes []domain.Notification,
	) error
	MarkTriggerUnresolved(ctx context.Context, id string) error
	SetTriggerActive(ctx context.Context, id, userID string, active bool) error
	SetTriggerTracked(ctx context.Context, id, userID string, tracked bool) error

	// Notifications
	MarkNotificationRead(ctx context.Context, id, userID string) error
	ListNotifications(ctx context.Context, userID string, unreadOnly bool, limit int) ([]domain.Notification, error)

	// Dashboard
	GetDashboard(ctx context.Context, userID string, recent int) (*domain.Dashboard, error)

	// Scheduler
	InsertJobRun(ctx context.Context, jobName string) (id string, err error)
	CompleteJobRun(ctx context.Context, id string, status string, errText string, rowsAffected int) error
	ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error)
	ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error)
	RecoverStaleJobRuns(ctx context.Context, olderThan time.Duration) (int, error)
	AcquireSchedulerLock(ctx context.Context, jobName string, holder string, ttl time.Duration) (bool, error)
	ReleaseSchedulerLock(ctx context.Context, jobName string, holder string) error

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
