// Package notify defines the notification interface and implementations
// for pushing price alerts to chat channels.
package notify

import (
	"context"
	"fmt"
	"strings"

	domain "github.com/donaldgifford/price-trigger-monitor/pkg/types"
)

// AlertPayload contains the data needed to push a price alert.
type AlertPayload struct {
	NotificationID string
	TriggerID      string
	UserID         string
	EventType      domain.EventType
	Label          string
	Vendor         string
	Price          float64
	ExpectedPrice  float64
	Reference      string
	Message        string
}

// Notifier defines the interface for pushing price alerts.
type Notifier interface {
	SendAlert(ctx context.Context, alert *AlertPayload) error
	SendBatchAlert(ctx context.Context, alerts []AlertPayload, label string) error
}

// TriggerLabel returns a short human description of a trigger's config,
// such as "Samsung Galaxy S24" or "BLR → DEL 2026-12-01".
func TriggerLabel(t *domain.Trigger) string {
	str := func(key string) string {
		if v, ok := t.Config[key].(string); ok {
			return strings.TrimSpace(v)
		}
		return ""
	}

	var label string
	switch t.EventType {
	case domain.EventMobile:
		label = strings.TrimSpace(str("brand_name") + " " + str("model_name"))
	case domain.EventFlight:
		if str("origin") != "" || str("destination") != "" {
			label = strings.TrimSpace(fmt.Sprintf("%s → %s %s",
				str("origin"), str("destination"), str("departure_date")))
		}
	}
	if label == "" {
		return fmt.Sprintf("%s trigger %s", t.EventType, t.ID)
	}
	return label
}

// FormatPrice renders a price in rupees with two decimals.
func FormatPrice(p float64) string {
	return fmt.Sprintf("₹%.2f", p)
}
