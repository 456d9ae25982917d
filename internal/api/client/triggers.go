package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/price-trigger-monitor/pkg/types"
)

// CreateTriggerRequest is the body of POST /api/v1/triggers.
type CreateTriggerRequest struct {
	UserID        string           `json:"user_id"`
	EventType     domain.EventType `json:"event_type"`
	Config        map[string]any   `json:"config"`
	ExpectedPrice float64          `json:"expected_price"`
	TimeDuration  string           `json:"time_duration"`
	IsTracked     bool             `json:"is_tracked,omitempty"`
}

// TriggerFilter narrows ListTriggers. Zero values are not sent.
type TriggerFilter struct {
	UserID    string
	Active    *bool
	EventType domain.EventType
	Limit     int
	Offset    int
}

func (f TriggerFilter) query() map[string]string {
	q := map[string]string{}
	if f.UserID != "" {
		q["user_id"] = f.UserID
	}
	if f.Active != nil {
		q["active"] = strconv.FormatBool(*f.Active)
	}
	if f.EventType != "" {
		q["event_type"] = string(f.EventType)
	}
	if f.Limit > 0 {
		q["limit"] = strconv.Itoa(f.Limit)
	}
	if f.Offset > 0 {
		q["offset"] = strconv.Itoa(f.Offset)
	}
	return q
}

func triggerPath(id string) string {
	return "/api/v1/triggers/" + url.PathEscape(id)
}

// CreateTrigger creates a trigger and returns it as stored.
func (c *Client) CreateTrigger(ctx context.Context, req *CreateTriggerRequest) (*domain.Trigger, error) {
	var t domain.Trigger
	if err := c.request(ctx, http.MethodPost, "/api/v1/triggers", nil, req, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// ListTriggers returns triggers matching f.
func (c *Client) ListTriggers(ctx context.Context, f TriggerFilter) ([]domain.Trigger, error) {
	var triggers []domain.Trigger
	if err := c.get(ctx, "/api/v1/triggers", f.query(), &triggers); err != nil {
		return nil, err
	}
	return triggers, nil
}

// TrackedTriggers returns the user's tracked mobile triggers.
func (c *Client) TrackedTriggers(ctx context.Context, userID string) ([]domain.Trigger, error) {
	var triggers []domain.Trigger
	q := map[string]string{"user_id": userID}
	if err := c.get(ctx, "/api/v1/triggers/tracked", q, &triggers); err != nil {
		return nil, err
	}
	return triggers, nil
}

// GetTrigger returns a single trigger.
func (c *Client) GetTrigger(ctx context.Context, id string) (*domain.Trigger, error) {
	var t domain.Trigger
	if err := c.get(ctx, triggerPath(id), nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// DeleteTrigger deactivates a trigger owned by userID.
func (c *Client) DeleteTrigger(ctx context.Context, id, userID string) error {
	q := map[string]string{"user_id": userID}
	return c.request(ctx, http.MethodDelete, triggerPath(id), q, nil, nil)
}

// SetTracked adds or removes a trigger from the user's tracked list.
func (c *Client) SetTracked(ctx context.Context, id, userID string, tracked bool) error {
	body := map[string]any{"user_id": userID, "tracked": tracked}
	return c.request(ctx, http.MethodPut, triggerPath(id)+"/tracked", nil, body, nil)
}

// EnqueueTrigger queues an immediate check and returns the job.
func (c *Client) EnqueueTrigger(ctx context.Context, id string) (*domain.Job, error) {
	var job domain.Job
	if err := c.request(ctx, http.MethodPost, triggerPath(id)+"/enqueue", nil, nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}
