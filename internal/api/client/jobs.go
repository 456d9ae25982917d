package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/price-trigger-monitor/pkg/types"
)

// ListJobRuns returns the most recent run for each scheduled job.
func (c *Client) ListJobRuns(ctx context.Context) ([]domain.JobRun, error) {
	var runs []domain.JobRun
	if err := c.get(ctx, "/api/v1/jobs/runs", nil, &runs); err != nil {
		return nil, err
	}
	return runs, nil
}

// GetJobHistory returns the run history for a scheduled job.
func (c *Client) GetJobHistory(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error) {
	var q map[string]string
	if limit > 0 {
		q = map[string]string{"limit": strconv.Itoa(limit)}
	}

	var runs []domain.JobRun
	if err := c.get(ctx, "/api/v1/jobs/runs/"+url.PathEscape(jobName), q, &runs); err != nil {
		return nil, err
	}
	return runs, nil
}

// QueueStats returns job counts per status.
func (c *Client) QueueStats(ctx context.Context) (*domain.QueueStats, error) {
	var stats domain.QueueStats
	if err := c.get(ctx, "/api/v1/queue/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// ListQueueJobs returns queued jobs, optionally filtered by status.
func (c *Client) ListQueueJobs(ctx context.Context, status domain.JobStatus, limit int) ([]domain.Job, error) {
	q := map[string]string{}
	if status != "" {
		q["status"] = string(status)
	}
	if limit > 0 {
		q["limit"] = strconv.Itoa(limit)
	}

	var jobs []domain.Job
	if err := c.get(ctx, "/api/v1/queue/jobs", q, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}
