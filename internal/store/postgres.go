package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/donaldgifford/price-trigger-monitor/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Pool exposes the underlying pool so the Postgres job queue can share it.
func (s *PostgresStore) Pool() *pgxpool.Pool {
	return s.pool
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// CreateTrigger inserts a new trigger and fills in its generated fields.
func (s *PostgresStore) CreateTrigger(ctx context.Context, t *domain.Trigger) error {
	if t.Config == nil {
		t.Config = map[string]any{}
	}
	configJSON, err := json.Marshal(t.Config)
	if err != nil {
		return fmt.Errorf("marshaling trigger config: %w", err)
	}

	args := pgx.NamedArgs{
		"user_id":        t.UserID,
		"event_type":     string(t.EventType),
		"config":         configJSON,
		"expected_price": t.ExpectedPrice,
		"time_duration":  t.TimeDuration,
		"is_active":      t.IsActive,
		"is_tracked":     t.IsTracked,
		"next_check":     t.NextCheck,
	}

	if err := s.pool.QueryRow(ctx, queryCreateTrigger, args).Scan(
		&t.ID, &t.CheckStatus, &t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		return fmt.Errorf("creating trigger: %w", err)
	}
	return nil
}

// GetTrigger retrieves a trigger by its ID. Returns ErrNotFound when absent.
func (s *PostgresStore) GetTrigger(ctx context.Context, id string) (*domain.Trigger, error) {
	t := &domain.Trigger{}
	err := scanTrigger(s.pool.QueryRow(ctx, queryGetTrigger, id), t)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting trigger %s: %w", id, err)
	}
	return t, nil
}

// ListTriggers returns triggers matching the query, newest first.
func (s *PostgresStore) ListTriggers(ctx context.Context, q *TriggerQuery) ([]domain.Trigger, error) {
	if q == nil {
		q = &TriggerQuery{}
	}
	sql, args := q.ToSQL()
	return s.queryTriggers(ctx, sql, args...)
}

// ListDueTriggers returns active triggers whose next_check is at or before now,
// oldest due first.
func (s *PostgresStore) ListDueTriggers(
	ctx context.Context,
	now time.Time,
	limit int,
) ([]domain.Trigger, error) {
	if limit <= 0 {
		limit = maxLimit
	}
	return s.queryTriggers(ctx, queryListDueTriggers, now, limit)
}

// ClaimTrigger advances next_check from observed to next if and only if the
// row still holds observed. Returns false when another scanner (or a
// completed check) already moved it.
func (s *PostgresStore) ClaimTrigger(
	ctx context.Context,
	id string,
	observed, next time.Time,
) (bool, error) {
	var gotID string
	err := s.pool.QueryRow(ctx, queryClaimTrigger, id, observed, next).Scan(&gotID)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("claiming trigger %s: %w", id, err)
	}
	return true, nil
}

// CompleteTriggerCheck records the result of a processing cycle together
// with the notifications it raised, in one transaction. next_check never
// moves backwards. Inserted notifications get their ID, Read and CreatedAt
// filled in place; on error nothing is written.
func (s *PostgresStore) CompleteTriggerCheck(
	ctx context.Context,
	id string,
	quote *domain.VendorQuote,
	status domain.CheckStatus,
	next time.Time,
	notes []domain.Notification,
) error {
	var quoteJSON []byte
	if quote != nil {
		var err error
		quoteJSON, err = json.Marshal(quote)
		if err != nil {
			return fmt.Errorf("marshaling fetched price: %w", err)
		}
	}

	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		for i := range notes {
			if err := insertNotification(ctx, tx, &notes[i]); err != nil {
				return err
			}
		}

		tag, err := tx.Exec(ctx, queryCompleteTriggerCheck, id, quoteJSON, string(status), next)
		if err != nil {
			return fmt.Errorf("completing trigger check %s: %w", id, err)
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// MarkTriggerUnresolved flags a trigger whose last check could not resolve a price.
func (s *PostgresStore) MarkTriggerUnresolved(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, queryMarkTriggerUnresolved, id)
	if err != nil {
		return fmt.Errorf("marking trigger %s unresolved: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SetTriggerActive activates or soft-deletes a trigger owned by userID.
func (s *PostgresStore) SetTriggerActive(ctx context.Context, id, userID string, active bool) error {
	return s.execOwned(ctx, querySetTriggerActive, "setting trigger active", id, userID, active)
}

// SetTriggerTracked toggles whether a trigger is surfaced in tracking views.
func (s *PostgresStore) SetTriggerTracked(ctx context.Context, id, userID string, tracked bool) error {
	return s.execOwned(ctx, querySetTriggerTracked, "setting trigger tracked", id, userID, tracked)
}

func insertNotification(ctx context.Context, tx pgx.Tx, n *domain.Notification) error {
	args := pgx.NamedArgs{
		"user_id":    n.UserID,
		"trigger_id": n.TriggerID,
		"vendor":     n.Vendor,
		"price":      n.Price,
		"message":    n.Message,
	}

	if err := tx.QueryRow(ctx, queryCreateNotification, args).Scan(
		&n.ID, &n.Read, &n.CreatedAt,
	); err != nil {
		return fmt.Errorf("creating notification: %w", err)
	}
	return nil
}

// MarkNotificationRead sets read=true on a notification owned by userID.
// Marking an already-read notification is a no-op. Returns ErrNotFound when
// no notification with that id belongs to the user.
func (s *PostgresStore) MarkNotificationRead(ctx context.Context, id, userID string) error {
	tag, err := s.pool.Exec(ctx, queryMarkNotificationRead, id, userID)
	if err != nil {
		return fmt.Errorf("marking notification read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListNotifications returns a user's notifications, newest first.
func (s *PostgresStore) ListNotifications(
	ctx context.Context,
	userID string,
	unreadOnly bool,
	limit int,
) ([]domain.Notification, error) {
	if limit <= 0 || limit > maxLimit {
		limit = defaultLimit
	}

	rows, err := s.pool.Query(ctx, queryListNotifications, userID, unreadOnly, limit)
	if err != nil {
		return nil, fmt.Errorf("querying notifications: %w", err)
	}
	defer rows.Close()

	var out []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(
			&n.ID, &n.UserID, &n.TriggerID, &n.Vendor, &n.Price,
			&n.Message, &n.Read, &n.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning notification: %w", err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// GetDashboard returns trigger counts and the most recent alerts for a user.
func (s *PostgresStore) GetDashboard(
	ctx context.Context,
	userID string,
	recent int,
) (*domain.Dashboard, error) {
	d := &domain.Dashboard{}

	if err := s.pool.QueryRow(ctx, queryTriggerCounts, userID).Scan(
		&d.TotalTriggers, &d.ActiveTriggers, &d.InactiveTriggers, &d.TrackedTriggers,
	); err != nil {
		return nil, fmt.Errorf("counting triggers: %w", err)
	}

	if err := s.pool.QueryRow(ctx, queryCountUnreadNotifications, userID).Scan(&d.UnreadAlerts); err != nil {
		return nil, fmt.Errorf("counting unread notifications: %w", err)
	}

	alerts, err := s.ListNotifications(ctx, userID, false, recent)
	if err != nil {
		return nil, err
	}
	if alerts == nil {
		alerts = []domain.Notification{}
	}
	d.RecentAlerts = alerts

	return d, nil
}

// InsertJobRun records the start of a scheduled job and returns its UUID.
func (s *PostgresStore) InsertJobRun(ctx context.Context, jobName string) (string, error) {
	var id string
	if err := s.pool.QueryRow(ctx, queryInsertJobRun, jobName).Scan(&id); err != nil {
		return "", fmt.Errorf("inserting job run: %w", err)
	}
	return id, nil
}

// CompleteJobRun marks a job run as finished with the given status and metadata.
func (s *PostgresStore) CompleteJobRun(
	ctx context.Context,
	id string,
	status string,
	errText string,
	rowsAffected int,
) error {
	_, err := s.pool.Exec(ctx, queryCompleteJobRun, id, status, errText, rowsAffected)
	if err != nil {
		return fmt.Errorf("completing job run: %w", err)
	}
	return nil
}

// ListJobRuns returns the most recent runs for a specific job, newest first.
func (s *PostgresStore) ListJobRuns(
	ctx context.Context,
	jobName string,
	limit int,
) ([]domain.JobRun, error) {
	rows, err := s.pool.Query(ctx, queryListJobRuns, jobName, limit)
	if err != nil {
		return nil, fmt.Errorf("querying job runs: %w", err)
	}
	defer rows.Close()

	return scanJobRuns(rows)
}

// ListLatestJobRuns returns the single most recent run for each distinct job name.
func (s *PostgresStore) ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error) {
	rows, err := s.pool.Query(ctx, queryListLatestJobRuns)
	if err != nil {
		return nil, fmt.Errorf("querying latest job runs: %w", err)
	}
	defer rows.Close()

	return scanJobRuns(rows)
}

// RecoverStaleJobRuns marks any 'running' job rows older than olderThan as 'crashed',
// then deletes all rows older than 30 days. Returns the number of rows marked as crashed.
func (s *PostgresStore) RecoverStaleJobRuns(
	ctx context.Context,
	olderThan time.Duration,
) (int, error) {
	cutoff := time.Now().Add(-olderThan)

	tag, err := s.pool.Exec(ctx, queryMarkStaleJobRunsCrashed, cutoff)
	if err != nil {
		return 0, fmt.Errorf("marking stale job runs crashed: %w", err)
	}
	affected := int(tag.RowsAffected())

	if _, err := s.pool.Exec(ctx, queryDeleteOldJobRuns); err != nil {
		return affected, fmt.Errorf("deleting old job runs: %w", err)
	}

	return affected, nil
}

// AcquireSchedulerLock attempts to acquire (or extend) a distributed lock.
// Returns true if the caller holds the lock afterwards, false if another
// holder owns an unexpired lock.
func (s *PostgresStore) AcquireSchedulerLock(
	ctx context.Context,
	jobName string,
	holder string,
	ttl time.Duration,
) (bool, error) {
	expiresAt := time.Now().Add(ttl)

	var gotName string
	err := s.pool.QueryRow(ctx, queryAcquireSchedulerLock, jobName, holder, expiresAt).Scan(&gotName)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("acquiring scheduler lock: %w", err)
	}

	return true, nil
}

// ReleaseSchedulerLock deletes the lock row for the given job and holder.
func (s *PostgresStore) ReleaseSchedulerLock(
	ctx context.Context,
	jobName string,
	holder string,
) error {
	_, err := s.pool.Exec(ctx, queryReleaseSchedulerLock, jobName, holder)
	if err != nil {
		return fmt.Errorf("releasing scheduler lock: %w", err)
	}
	return nil
}

func (s *PostgresStore) execOwned(
	ctx context.Context,
	query, action, id, userID string,
	flag bool,
) error {
	tag, err := s.pool.Exec(ctx, query, id, userID, flag)
	if err != nil {
		return fmt.Errorf("%s: %w", action, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) queryTriggers(
	ctx context.Context,
	query string,
	args ...any,
) ([]domain.Trigger, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying triggers: %w", err)
	}
	defer rows.Close()

	var triggers []domain.Trigger
	for rows.Next() {
		var t domain.Trigger
		if err := scanTrigger(rows, &t); err != nil {
			return nil, fmt.Errorf("scanning trigger: %w", err)
		}
		triggers = append(triggers, t)
	}

	return triggers, rows.Err()
}

// scanJobRuns scans rows from a job_runs query into a slice.
func scanJobRuns(rows pgx.Rows) ([]domain.JobRun, error) {
	var runs []domain.JobRun
	for rows.Next() {
		var r domain.JobRun
		if err := rows.Scan(
			&r.ID, &r.JobName, &r.StartedAt, &r.CompletedAt,
			&r.Status, &r.ErrorText, &r.RowsAffected,
		); err != nil {
			return nil, fmt.Errorf("scanning job run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// scannable abstracts pgx.Row and pgx.Rows for reuse.
type scannable interface {
	Scan(dest ...any) error
}

// scanTrigger scans a full trigger row (triggerColumns order).
func scanTrigger(row scannable, t *domain.Trigger) error {
	var configJSON, quoteJSON []byte

	if err := row.Scan(
		&t.ID, &t.UserID, &t.EventType, &configJSON, &t.ExpectedPrice, &t.TimeDuration,
		&t.IsActive, &t.IsTracked, &t.NextCheck, &quoteJSON, &t.CheckStatus,
		&t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		return err
	}

	if len(configJSON) > 0 {
		if err := json.Unmarshal(configJSON, &t.Config); err != nil {
			return fmt.Errorf("unmarshaling trigger config: %w", err)
		}
	}

	if len(quoteJSON) > 0 {
		var q domain.VendorQuote
		if err := json.Unmarshal(quoteJSON, &q); err != nil {
			return fmt.Errorf("unmarshaling last fetched price: %w", err)
		}
		t.LastFetchedPrice = &q
	}

	return nil
}
