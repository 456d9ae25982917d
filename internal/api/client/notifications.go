package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/price-trigger-monitor/pkg/types"
)

// ListNotifications returns the user's notifications, newest first.
func (c *Client) ListNotifications(
	ctx context.Context,
	userID string,
	unread bool,
	limit int,
) ([]domain.Notification, error) {
	q := map[string]string{"user_id": userID}
	if unread {
		q["unread"] = "true"
	}
	if limit > 0 {
		q["limit"] = strconv.Itoa(limit)
	}

	var ns []domain.Notification
	if err := c.get(ctx, "/api/v1/notifications", q, &ns); err != nil {
		return nil, err
	}
	return ns, nil
}

// MarkNotificationRead marks one of the user's notifications as read.
func (c *Client) MarkNotificationRead(ctx context.Context, id, userID string) error {
	path := "/api/v1/notifications/" + url.PathEscape(id) + "/read"
	return c.request(ctx, http.MethodPost, path, map[string]string{"user_id": userID}, nil, nil)
}

// Dashboard returns the user's trigger and alert summary.
func (c *Client) Dashboard(ctx context.Context, userID string) (*domain.Dashboard, error) {
	var d domain.Dashboard
	if err := c.get(ctx, "/api/v1/dashboard", map[string]string{"user_id": userID}, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
