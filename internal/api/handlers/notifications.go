package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/price-trigger-monitor/internal/store"
	domain "github.com/donaldgifford/price-trigger-monitor/pkg/types"
)

// RecentAlertCount is how many notifications the dashboard embeds.
const RecentAlertCount = 5

// NotificationHandler serves a user's alerts and dashboard.
type NotificationHandler struct {
	store store.Store
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(s store.Store) *NotificationHandler {
	return &NotificationHandler{store: s}
}

// ListNotificationsInput filters a user's notifications.
type ListNotificationsInput struct {
	UserID string `query:"user_id" doc:"Owning user"                    required:"true" minLength:"1"`
	Unread bool   `query:"unread"  doc:"Only unread notifications"`
	Limit  int    `query:"limit"   doc:"Number of results (default 50)"                                 minimum:"0" maximum:"500"`
}

// ListNotificationsOutput is the response for notification listings.
type ListNotificationsOutput struct {
	Body []domain.Notification
}

// MarkReadInput marks one notification as read.
type MarkReadInput struct {
	ID     string `path:"id"      doc:"Notification UUID"`
	UserID string `query:"user_id" doc:"Owning user"      required:"true" minLength:"1"`
}

// DashboardInput selects the user whose dashboard is returned.
type DashboardInput struct {
	UserID string `query:"user_id" doc:"Owning user" required:"true" minLength:"1"`
}

// DashboardOutput is the dashboard summary.
type DashboardOutput struct {
	Body domain.Dashboard
}

// List returns a user's notifications, newest first.
func (h *NotificationHandler) List(
	ctx context.Context,
	input *ListNotificationsInput,
) (*ListNotificationsOutput, error) {
	notes, err := h.store.ListNotifications(ctx, input.UserID, input.Unread, input.Limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing notifications failed: " + err.Error())
	}
	if notes == nil {
		notes = []domain.Notification{}
	}
	return &ListNotificationsOutput{Body: notes}, nil
}

// MarkRead flags a notification as read. Marking an already-read
// notification succeeds.
func (h *NotificationHandler) MarkRead(
	ctx context.Context,
	input *MarkReadInput,
) (*StatusOutput, error) {
	if err := h.store.MarkNotificationRead(ctx, input.ID, input.UserID); err != nil {
		return nil, storeError("marking notification read", "notification", err)
	}

	resp := &StatusOutput{}
	resp.Body.Status = "read"
	return resp, nil
}

// Dashboard returns trigger counts and the most recent alerts for a user.
func (h *NotificationHandler) Dashboard(
	ctx context.Context,
	input *DashboardInput,
) (*DashboardOutput, error) {
	d, err := h.store.GetDashboard(ctx, input.UserID, RecentAlertCount)
	if err != nil {
		return nil, huma.Error500InternalServerError("loading dashboard failed: " + err.Error())
	}
	if d.RecentAlerts == nil {
		d.RecentAlerts = []domain.Notification{}
	}
	return &DashboardOutput{Body: *d}, nil
}

// RegisterNotificationRoutes registers notification and dashboard endpoints.
func RegisterNotificationRoutes(api huma.API, h *NotificationHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-notifications",
		Method:      http.MethodGet,
		Path:        "/api/v1/notifications",
		Summary:     "List notifications",
		Tags:        []string{"notifications"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID: "mark-notification-read",
		Method:      http.MethodPost,
		Path:        "/api/v1/notifications/{id}/read",
		Summary:     "Mark a notification read",
		Tags:        []string{"notifications"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.MarkRead)

	huma.Register(api, huma.Operation{
		OperationID: "get-dashboard",
		Method:      http.MethodGet,
		Path:        "/api/v1/dashboard",
		Summary:     "Get the user dashboard",
		Description: "Returns total, active, and inactive trigger counts with the five most recent notifications.",
		Tags:        []string{"notifications"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.Dashboard)
}
