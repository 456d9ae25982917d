package store

const triggerColumns = `id, user_id, event_type, config, expected_price::float8, time_duration,
	is_active, is_tracked, next_check, last_fetched_price, check_status,
	created_at, updated_at`

// Trigger queries.
const (
	queryCreateTrigger = `
		INSERT INTO triggers (
			user_id, event_type, config, expected_price, time_duration,
			is_active, is_tracked, next_check
		) VALUES (
			@user_id, @event_type, @config, @expected_price, @time_duration,
			@is_active, @is_tracked, @next_check
		)
		RETURNING id, check_status, created_at, updated_at`

	queryGetTrigger = `SELECT ` + triggerColumns + `
		FROM triggers
		WHERE id = $1`

	queryListDueTriggers = `SELECT ` + triggerColumns + `
		FROM triggers
		WHERE is_active AND next_check <= $1
		ORDER BY next_check ASC
		LIMIT $2`

	// queryClaimTrigger is a compare-and-swap on next_check: the row only
	// advances when it still holds the value the scanner observed.
	queryClaimTrigger = `
		UPDATE triggers SET
			next_check = $3,
			updated_at = now()
		WHERE id = $1 AND is_active AND next_check = $2
		RETURNING id`

	queryCompleteTriggerCheck = `
		UPDATE triggers SET
			last_fetched_price = $2,
			check_status       = $3,
			next_check         = GREATEST(next_check, $4),
			updated_at         = now()
		WHERE id = $1`

	queryMarkTriggerUnresolved = `
		UPDATE triggers SET
			check_status = 'unresolved',
			updated_at   = now()
		WHERE id = $1`

	querySetTriggerActive = `
		UPDATE triggers SET is_active = $3, updated_at = now()
		WHERE id = $1 AND user_id = $2`

	querySetTriggerTracked = `
		UPDATE triggers SET is_tracked = $3, updated_at = now()
		WHERE id = $1 AND user_id = $2`

	queryTriggerCounts = `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE is_active),
			COUNT(*) FILTER (WHERE NOT is_active),
			COUNT(*) FILTER (WHERE is_tracked)
		FROM triggers
		WHERE user_id = $1`
)

// Notification queries.
const (
	queryCreateNotification = `
		INSERT INTO notifications (user_id, trigger_id, vendor, price, message)
		VALUES (@user_id, @trigger_id, @vendor, @price, @message)
		RETURNING id, read, created_at`

	// Marking an already-read row matches again, so the call is idempotent.
	queryMarkNotificationRead = `
		UPDATE notifications SET read = true
		WHERE id = $1 AND user_id = $2`

	queryListNotifications = `
		SELECT id, user_id, trigger_id, vendor, price::float8, message, read, created_at
		FROM notifications
		WHERE user_id = $1 AND (NOT $2 OR NOT read)
		ORDER BY created_at DESC
		LIMIT $3`

	queryCountUnreadNotifications = `
		SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND NOT read`
)

// Scheduler queries.
const (
	queryInsertJobRun = `
		INSERT INTO job_runs (job_name)
		VALUES ($1)
		RETURNING id`

	queryCompleteJobRun = `
		UPDATE job_runs SET
			completed_at  = now(),
			status        = $2,
			error_text    = $3,
			rows_affected = $4
		WHERE id = $1`

	queryListJobRuns = `
		SELECT id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		WHERE job_name = $1
		ORDER BY started_at DESC
		LIMIT $2`

	queryListLatestJobRuns = `
		SELECT DISTINCT ON (job_name)
			id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		ORDER BY job_name, started_at DESC`

	queryMarkStaleJobRunsCrashed = `
		UPDATE job_runs SET
			status       = 'crashed',
			completed_at = now()
		WHERE status = 'running' AND started_at < $1`

	queryDeleteOldJobRuns = `
		DELETE FROM job_runs WHERE started_at < now() - interval '30 days'`

	// Re-acquiring a lock the caller already holds extends it.
	queryAcquireSchedulerLock = `
		INSERT INTO scheduler_locks (job_name, lock_holder, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (job_name) DO UPDATE
			SET locked_at   = now(),
				lock_holder = EXCLUDED.lock_holder,
				expires_at  = EXCLUDED.expires_at
			WHERE scheduler_locks.expires_at < now()
				OR scheduler_locks.lock_holder = EXCLUDED.lock_holder
		RETURNING job_name`

	queryReleaseSchedulerLock = `
		DELETE FROM scheduler_locks WHERE job_name = $1 AND lock_holder = $2`
)
