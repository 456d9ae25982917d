package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/donaldgifford/price-trigger-monitor/pkg/types"
)

// QueueInspector is the read-only side of the job queue.
type QueueInspector interface {
	Stats(ctx context.Context) (domain.QueueStats, error)
	ListJobs(ctx context.Context, status domain.JobStatus, limit int) ([]domain.Job, error)
}

// QueueHandler exposes job queue depth and contents.
type QueueHandler struct {
	queue QueueInspector
}

// NewQueueHandler creates a new QueueHandler.
func NewQueueHandler(q QueueInspector) *QueueHandler {
	return &QueueHandler{queue: q}
}

// QueueStatsOutput is the per-status job count.
type QueueStatsOutput struct {
	Body domain.QueueStats
}

// ListQueueJobsInput filters queued jobs.
type ListQueueJobsInput struct {
	Status string `query:"status" doc:"Filter by job status"          enum:"pending,processing,done,failed,"`
	Limit  int    `query:"limit"  doc:"Number of jobs (default 50)"                                           minimum:"0" maximum:"500"`
}

// ListQueueJobsOutput is a list of queued jobs.
type ListQueueJobsOutput struct {
	Body []domain.Job
}

// Stats returns job counts per status.
func (h *QueueHandler) Stats(ctx context.Context, _ *struct{}) (*QueueStatsOutput, error) {
	stats, err := h.queue.Stats(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("reading queue stats failed: " + err.Error())
	}
	return &QueueStatsOutput{Body: stats}, nil
}

// ListJobs returns jobs, newest first. Failed jobs stay listed until an
// operator removes them.
func (h *QueueHandler) ListJobs(
	ctx context.Context,
	input *ListQueueJobsInput,
) (*ListQueueJobsOutput, error) {
	jobs, err := h.queue.ListJobs(ctx, domain.JobStatus(input.Status), input.Limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing queue jobs failed: " + err.Error())
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}
	return &ListQueueJobsOutput{Body: jobs}, nil
}

// RegisterQueueRoutes registers queue inspection endpoints.
func RegisterQueueRoutes(api huma.API, h *QueueHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-queue-stats",
		Method:      http.MethodGet,
		Path:        "/api/v1/queue/stats",
		Summary:     "Get queue depth",
		Tags:        []string{"queue"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.Stats)

	huma.Register(api, huma.Operation{
		OperationID: "list-queue-jobs",
		Method:      http.MethodGet,
		Path:        "/api/v1/queue/jobs",
		Summary:     "List queued jobs",
		Tags:        []string{"queue"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListJobs)
}
