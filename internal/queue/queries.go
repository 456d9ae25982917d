package queue

const notifyChannel = "trigger_jobs"

const jobColumns = `id, trigger_id, observed_next_check, status, attempt,
	created_at, locked_at, lease_until, finished_at, error`

// Queue queries.
const (
	queryEnqueueJob = `
		INSERT INTO trigger_jobs (trigger_id, observed_next_check, attempt)
		VALUES ($1, $2, $3)
		RETURNING ` + jobColumns

	queryNotifyJob = `SELECT pg_notify('` + notifyChannel + `', $1)`

	// SKIP LOCKED lets concurrent consumers claim without blocking each
	// other; (created_at, seq) keeps arrival order.
	queryDequeueJob = `
		WITH next AS (
			SELECT id FROM trigger_jobs
			WHERE status = 'pending'
			ORDER BY created_at ASC, seq ASC
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
		UPDATE trigger_jobs SET
			status      = $1,
			locked_at   = now(),
			lease_until = now() + make_interval(secs => $2)
		FROM next
		WHERE trigger_jobs.id = next.id
		RETURNING trigger_jobs.id, trigger_jobs.trigger_id, trigger_jobs.observed_next_check,
			trigger_jobs.status, trigger_jobs.attempt, trigger_jobs.created_at,
			trigger_jobs.locked_at, trigger_jobs.lease_until, trigger_jobs.finished_at,
			trigger_jobs.error`

	// The locked_at match ties the settle to the lease that was handed out.
	querySettleJob = `
		UPDATE trigger_jobs SET
			status      = $3,
			error       = $4,
			finished_at = now(),
			lease_until = NULL
		WHERE id = $1 AND status = 'processing' AND locked_at = $2`

	queryReapExpired = `
		WITH expired AS (
			UPDATE trigger_jobs SET
				status      = 'failed',
				error       = $3,
				finished_at = now(),
				lease_until = NULL
			WHERE status = 'processing' AND lease_until < $1
			RETURNING trigger_id, observed_next_check, attempt
		), redelivered AS (
			INSERT INTO trigger_jobs (trigger_id, observed_next_check, attempt)
			SELECT trigger_id, observed_next_check, attempt + 1
			FROM expired
			WHERE attempt < $2
			RETURNING id
		)
		SELECT (SELECT COUNT(*) FROM expired), (SELECT COUNT(*) FROM redelivered)`

	queryPurgeDone = `
		DELETE FROM trigger_jobs WHERE status = 'done' AND finished_at < $1`

	queryJobStats = `
		SELECT status, COUNT(*) FROM trigger_jobs GROUP BY status`

	queryListJobs = `
		SELECT ` + jobColumns + `
		FROM trigger_jobs
		WHERE $1 = '' OR status = $1
		ORDER BY created_at DESC, seq DESC
		LIMIT $2`
)
