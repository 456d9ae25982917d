// Package domain defines the core business types for the price trigger monitor.
package domain

import (
	"math"
	"time"
)

// EventType selects which provider-specific config schema a trigger uses.
type EventType string

// Event type constants.
const (
	EventMobile EventType = "mobile"
	EventFlight EventType = "flight"
)

// Valid reports whether e is a known event type.
func (e EventType) Valid() bool {
	return e == EventMobile || e == EventFlight
}

// CheckStatus describes the outcome of the most recent price check for a trigger.
type CheckStatus string

// Check status constants.
const (
	CheckNeverChecked CheckStatus = "never_checked"
	CheckOK           CheckStatus = "ok"
	CheckUnresolved   CheckStatus = "unresolved"
)

// Trigger is a user-defined price monitoring rule.
type Trigger struct {
	ID               string         `json:"id"                           db:"id"`
	UserID           string         `json:"user_id"                      db:"user_id"`
	EventType        EventType      `json:"event_type"                   db:"event_type"`
	Config           map[string]any `json:"config"                       db:"config"`
	ExpectedPrice    float64        `json:"expected_price"               db:"expected_price"`
	TimeDuration     string         `json:"time_duration,omitempty"      db:"time_duration"`
	IsActive         bool           `json:"is_active"                    db:"is_active"`
	IsTracked        bool           `json:"is_tracked"                   db:"is_tracked"`
	NextCheck        time.Time      `json:"next_check"                   db:"next_check"`
	LastFetchedPrice *VendorQuote   `json:"last_fetched_price,omitempty" db:"last_fetched_price"`
	CheckStatus      CheckStatus    `json:"check_status"                 db:"check_status"`
	CreatedAt        time.Time      `json:"created_at"                   db:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"                   db:"updated_at"`
}

// VendorQuote is one vendor's answer for a trigger. Price and Reference are
// nil when the vendor returned nothing usable.
type VendorQuote struct {
	Vendor    string   `json:"vendor"`
	Price     *float64 `json:"price"`
	Reference *string  `json:"reference"`
}

// HasPrice reports whether the quote carries a price.
func (q VendorQuote) HasPrice() bool {
	return q.Price != nil && !math.IsNaN(*q.Price)
}

// PriceOrInf returns the quoted price, or +Inf when the price is absent.
func (q VendorQuote) PriceOrInf() float64 {
	if !q.HasPrice() {
		return math.Inf(1)
	}
	return *q.Price
}

// Quotes maps vendor name to the quote returned for that vendor.
type Quotes map[string]VendorQuote

// JobStatus is the lifecycle state of a queued job.
type JobStatus string

// Job status constants. Transitions only move forward:
// pending -> processing -> done | failed.
const (
	JobPending    JobStatus = "pending"
	JobProcessing JobStatus = "processing"
	JobDone       JobStatus = "done"
	JobFailed     JobStatus = "failed"
)

// Terminal reports whether no further transition is allowed from s.
func (s JobStatus) Terminal() bool {
	return s == JobDone || s == JobFailed
}

// Job is one unit of queued work referencing a trigger.
type Job struct {
	ID                string     `json:"id"                            db:"id"`
	TriggerID         string     `json:"trigger_id"                    db:"trigger_id"`
	ObservedNextCheck *time.Time `json:"observed_next_check,omitempty" db:"observed_next_check"`
	Status            JobStatus  `json:"status"                        db:"status"`
	Attempt           int        `json:"attempt"                       db:"attempt"`
	CreatedAt         time.Time  `json:"created_at"                    db:"created_at"`
	LockedAt          *time.Time `json:"locked_at,omitempty"           db:"locked_at"`
	LeaseUntil        *time.Time `json:"lease_until,omitempty"         db:"lease_until"`
	FinishedAt        *time.Time `json:"finished_at,omitempty"         db:"finished_at"`
	Error             string     `json:"error,omitempty"               db:"error"`
}

// QueueStats summarizes job counts per status.
type QueueStats struct {
	Pending    int `json:"pending"`
	Processing int `json:"processing"`
	Done       int `json:"done"`
	Failed     int `json:"failed"`
}

// Notification is a user-visible alert raised by a price match.
type Notification struct {
	ID        string    `json:"id"         db:"id"`
	UserID    string    `json:"user_id"    db:"user_id"`
	TriggerID string    `json:"trigger_id" db:"trigger_id"`
	Vendor    string    `json:"vendor"     db:"vendor"`
	Price     float64   `json:"price"      db:"price"`
	Message   string    `json:"message"    db:"message"`
	Read      bool      `json:"read"       db:"read"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Dashboard summarizes a user's triggers and recent alerts.
type Dashboard struct {
	TotalTriggers    int            `json:"total_triggers"`
	ActiveTriggers   int            `json:"active_triggers"`
	InactiveTriggers int            `json:"inactive_triggers"`
	TrackedTriggers  int            `json:"tracked_triggers"`
	UnreadAlerts     int            `json:"unread_alerts"`
	RecentAlerts     []Notification `json:"recent_alerts"`
}

// JobRun records a single execution of a scheduled job.
type JobRun struct {
	ID           string     `json:"id"                      db:"id"`
	JobName      string     `json:"job_name"                db:"job_name"`
	StartedAt    time.Time  `json:"started_at"              db:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"  db:"completed_at"`
	Status       string     `json:"status"                  db:"status"`
	ErrorText    string     `json:"error_text,omitempty"    db:"error_text"`
	RowsAffected *int       `json:"rows_affected,omitempty" db:"rows_affected"`
}
