package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

const baseTriggersSelect = `SELECT ` + triggerColumns + `
FROM triggers`

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for a trigger query
// and returns the statement with its positional parameters.
func (q *TriggerQuery) ToSQL() (string, []any) {
	var (
		conditions []string
		args       []any
	)
	paramIdx := 1

	if q.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", paramIdx))
		args = append(args, q.UserID)
		paramIdx++
	}

	if q.Active != nil {
		conditions = append(conditions, fmt.Sprintf("is_active = $%d", paramIdx))
		args = append(args, *q.Active)
		paramIdx++
	}

	if q.Tracked != nil {
		conditions = append(conditions, fmt.Sprintf("is_tracked = $%d", paramIdx))
		args = append(args, *q.Tracked)
		paramIdx++
	}

	if q.EventType != nil {
		conditions = append(conditions, fmt.Sprintf("event_type = $%d", paramIdx))
		args = append(args, string(*q.EventType))
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := max(q.Offset, 0)

	return fmt.Sprintf(
		"%s%s ORDER BY created_at DESC LIMIT %d OFFSET %d",
		baseTriggersSelect, whereClause, limit, offset,
	), args
}
