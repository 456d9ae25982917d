package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/sosodev/duration"

	"github.com/donaldgifford/price-trigger-monitor/internal/queue"
	"github.com/donaldgifford/price-trigger-monitor/internal/store"
	domain "github.com/donaldgifford/price-trigger-monitor/pkg/types"
)

// Enqueuer places trigger checks on the job queue.
type Enqueuer interface {
	Enqueue(ctx context.Context, msg queue.Message) (*domain.Job, error)
}

// TriggerHandler handles trigger CRUD and manual check requests.
type TriggerHandler struct {
	store store.Store
	queue Enqueuer
	now   func() time.Time
}

// NewTriggerHandler creates a new TriggerHandler.
func NewTriggerHandler(s store.Store, q Enqueuer) *TriggerHandler {
	return &TriggerHandler{store: s, queue: q, now: time.Now}
}

// --- Input/Output types ---

// CreateTriggerInput is the request body for creating a trigger.
type CreateTriggerInput struct {
	Body struct {
		UserID        string         `json:"user_id"              doc:"Owning user"                                      minLength:"1"`
		EventType     string         `json:"event_type"           doc:"Provider config schema"                           enum:"mobile,flight"`
		Config        map[string]any `json:"config"               doc:"Event-specific product or route details"`
		ExpectedPrice float64        `json:"expected_price"       doc:"Target price"                                     minimum:"0"`
		TimeDuration  string         `json:"time_duration"        doc:"Delay before the first check (ISO 8601, e.g. PT10M)" minLength:"1"`
		IsTracked     bool           `json:"is_tracked,omitempty" doc:"Show on the tracked list"                                        required:"false"`
	}
}

// TriggerOutput wraps a single trigger.
type TriggerOutput struct {
	Body domain.Trigger
}

// ListTriggersInput filters the trigger listing.
type ListTriggersInput struct {
	UserID    string `query:"user_id"    doc:"Filter by owning user"`
	Active    string `query:"active"     doc:"Filter by active status"       enum:"true,false,"`
	EventType string `query:"event_type" doc:"Filter by event type"          enum:"mobile,flight,"`
	Limit     int    `query:"limit"      doc:"Number of results (default 50)"                    minimum:"0" maximum:"500"`
	Offset    int    `query:"offset"     doc:"Pagination offset"                                 minimum:"0"`
}

// ListTriggersOutput is the response for trigger listings.
type ListTriggersOutput struct {
	Body []domain.Trigger
}

// TrackedTriggersInput selects one user's tracked triggers.
type TrackedTriggersInput struct {
	UserID string `query:"user_id" doc:"Owning user" required:"true" minLength:"1"`
}

// TriggerIDInput addresses a single trigger.
type TriggerIDInput struct {
	ID string `path:"id" doc:"Trigger UUID"`
}

// DeleteTriggerInput soft-deletes a trigger owned by a user.
type DeleteTriggerInput struct {
	ID     string `path:"id"      doc:"Trigger UUID"`
	UserID string `query:"user_id" doc:"Owning user" required:"true" minLength:"1"`
}

// SetTrackedInput toggles the tracked flag.
type SetTrackedInput struct {
	ID   string `path:"id" doc:"Trigger UUID"`
	Body struct {
		UserID  string `json:"user_id" doc:"Owning user" minLength:"1"`
		Tracked bool   `json:"tracked" doc:"Whether the trigger is tracked"`
	}
}

// StatusOutput is a generic status response.
type StatusOutput struct {
	Body StatusResponse
}

// EnqueueOutput is the job created by a manual enqueue.
type EnqueueOutput struct {
	Body domain.Job
}

// --- Handlers ---

// Create validates and stores a new trigger. The first check is due after
// time_duration has elapsed.
func (h *TriggerHandler) Create(
	ctx context.Context,
	input *CreateTriggerInput,
) (*TriggerOutput, error) {
	eventType := domain.EventType(input.Body.EventType)
	if err := ValidateTriggerConfig(eventType, input.Body.Config); err != nil {
		return nil, huma.Error400BadRequest("validation failed: " + err.Error())
	}

	delay, err := ParseTimeDuration(input.Body.TimeDuration)
	if err != nil {
		return nil, huma.Error400BadRequest("validation failed: " + err.Error())
	}

	t := &domain.Trigger{
		UserID:        input.Body.UserID,
		EventType:     eventType,
		Config:        input.Body.Config,
		ExpectedPrice: input.Body.ExpectedPrice,
		TimeDuration:  input.Body.TimeDuration,
		IsActive:      true,
		IsTracked:     input.Body.IsTracked,
		NextCheck:     h.now().Add(delay),
	}
	if err := h.store.CreateTrigger(ctx, t); err != nil {
		return nil, huma.Error500InternalServerError("creating trigger failed: " + err.Error())
	}

	return &TriggerOutput{Body: *t}, nil
}

// List returns triggers matching the optional filters, newest first.
func (h *TriggerHandler) List(
	ctx context.Context,
	input *ListTriggersInput,
) (*ListTriggersOutput, error) {
	q := &store.TriggerQuery{
		UserID: input.UserID,
		Limit:  input.Limit,
		Offset: input.Offset,
	}
	if input.Active != "" {
		active := input.Active == "true"
		q.Active = &active
	}
	if input.EventType != "" {
		et := domain.EventType(input.EventType)
		q.EventType = &et
	}

	triggers, err := h.store.ListTriggers(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing triggers failed: " + err.Error())
	}
	if triggers == nil {
		triggers = []domain.Trigger{}
	}

	return &ListTriggersOutput{Body: triggers}, nil
}

// Tracked returns a user's tracked mobile triggers, newest first.
func (h *TriggerHandler) Tracked(
	ctx context.Context,
	input *TrackedTriggersInput,
) (*ListTriggersOutput, error) {
	tracked := true
	mobile := domain.EventMobile

	triggers, err := h.store.ListTriggers(ctx, &store.TriggerQuery{
		UserID:    input.UserID,
		Tracked:   &tracked,
		EventType: &mobile,
	})
	if err != nil {
		return nil, huma.Error500InternalServerError("listing tracked triggers failed: " + err.Error())
	}
	if triggers == nil {
		triggers = []domain.Trigger{}
	}

	return &ListTriggersOutput{Body: triggers}, nil
}

// Get returns a single trigger.
func (h *TriggerHandler) Get(
	ctx context.Context,
	input *TriggerIDInput,
) (*TriggerOutput, error) {
	t, err := h.store.GetTrigger(ctx, input.ID)
	if err != nil {
		return nil, storeError("getting trigger", "trigger", err)
	}
	return &TriggerOutput{Body: *t}, nil
}

// Delete deactivates a trigger. The row is kept so its notifications stay
// readable.
func (h *TriggerHandler) Delete(
	ctx context.Context,
	input *DeleteTriggerInput,
) (*struct{}, error) {
	if err := h.store.SetTriggerActive(ctx, input.ID, input.UserID, false); err != nil {
		return nil, storeError("deleting trigger", "trigger", err)
	}
	return nil, nil
}

// SetTracked updates the tracked flag.
func (h *TriggerHandler) SetTracked(
	ctx context.Context,
	input *SetTrackedInput,
) (*StatusOutput, error) {
	if err := h.store.SetTriggerTracked(ctx, input.ID, input.Body.UserID, input.Body.Tracked); err != nil {
		return nil, storeError("updating trigger", "trigger", err)
	}

	resp := &StatusOutput{}
	resp.Body.Status = "updated"
	return resp, nil
}

// Enqueue places an immediate check for an active trigger on the queue. The
// message carries no observed next_check, so the worker reschedules from
// whatever the row holds when it finishes.
func (h *TriggerHandler) Enqueue(
	ctx context.Context,
	input *TriggerIDInput,
) (*EnqueueOutput, error) {
	t, err := h.store.GetTrigger(ctx, input.ID)
	if err != nil {
		return nil, storeError("getting trigger", "trigger", err)
	}
	if !t.IsActive {
		return nil, huma.Error409Conflict("trigger is inactive")
	}

	job, err := h.queue.Enqueue(ctx, queue.Message{TriggerID: t.ID})
	if err != nil {
		return nil, huma.Error500InternalServerError("enqueueing trigger failed: " + err.Error())
	}

	return &EnqueueOutput{Body: *job}, nil
}

// RegisterTriggerRoutes registers trigger endpoints with the Huma API.
func RegisterTriggerRoutes(api huma.API, h *TriggerHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-trigger",
		Method:        http.MethodPost,
		Path:          "/api/v1/triggers",
		Summary:       "Create a trigger",
		Description:   "Validates the event-specific config and schedules the first check after time_duration.",
		Tags:          []string{"triggers"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.Create)

	huma.Register(api, huma.Operation{
		OperationID: "list-triggers",
		Method:      http.MethodGet,
		Path:        "/api/v1/triggers",
		Summary:     "List triggers",
		Description: "Returns triggers filtered by user, active status, and event type, newest first.",
		Tags:        []string{"triggers"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.List)

	// Registered ahead of /triggers/{id} so routers that match in order see
	// the static segment first.
	huma.Register(api, huma.Operation{
		OperationID: "list-tracked-triggers",
		Method:      http.MethodGet,
		Path:        "/api/v1/triggers/tracked",
		Summary:     "List tracked mobile triggers",
		Description: "Returns the user's tracked mobile triggers, newest first.",
		Tags:        []string{"triggers"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.Tracked)

	huma.Register(api, huma.Operation{
		OperationID: "get-trigger",
		Method:      http.MethodGet,
		Path:        "/api/v1/triggers/{id}",
		Summary:     "Get a trigger by ID",
		Tags:        []string{"triggers"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.Get)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-trigger",
		Method:        http.MethodDelete,
		Path:          "/api/v1/triggers/{id}",
		Summary:       "Deactivate a trigger",
		Description:   "Soft-deletes the trigger; it is never scanned again.",
		Tags:          []string{"triggers"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.Delete)

	huma.Register(api, huma.Operation{
		OperationID: "set-trigger-tracked",
		Method:      http.MethodPut,
		Path:        "/api/v1/triggers/{id}/tracked",
		Summary:     "Track or untrack a trigger",
		Tags:        []string{"triggers"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.SetTracked)

	huma.Register(api, huma.Operation{
		OperationID:   "enqueue-trigger",
		Method:        http.MethodPost,
		Path:          "/api/v1/triggers/{id}/enqueue",
		Summary:       "Check a trigger now",
		Description:   "Enqueues a job for the trigger without waiting for its next_check.",
		Tags:          []string{"triggers"},
		DefaultStatus: http.StatusAccepted,
		Errors:        []int{http.StatusNotFound, http.StatusConflict, http.StatusInternalServerError},
	}, h.Enqueue)
}

// ParseTimeDuration accepts an ISO 8601 duration ("PT10M", "P1D") or a Go
// duration string ("10m").
func ParseTimeDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("time_duration is required")
	}

	var d time.Duration
	if iso, err := duration.Parse(s); err == nil {
		d = iso.ToTimeDuration()
	} else {
		goDur, goErr := time.ParseDuration(s)
		if goErr != nil {
			return 0, fmt.Errorf("time_duration %q is not a valid duration", s)
		}
		d = goDur
	}

	if d < 0 {
		return 0, fmt.Errorf("time_duration %q must not be negative", s)
	}
	return d, nil
}

// storeError maps store errors to API errors.
func storeError(action, resource string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return huma.Error404NotFound(resource + " not found")
	}
	return huma.Error500InternalServerError(action + " failed: " + err.Error())
}
