package handlers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	domain "github.com/donaldgifford/price-trigger-monitor/pkg/types"
)

const (
	minRAMMB = 256
	minROMMB = 1024
)

// ValidateTriggerConfig checks the config holds the fields its event type's
// resolver prompt needs. All problems are reported together.
func ValidateTriggerConfig(eventType domain.EventType, cfg map[string]any) error {
	if !eventType.Valid() {
		return fmt.Errorf("unknown event_type %q", eventType)
	}
	if cfg == nil {
		return errors.New("config is required")
	}

	var errs []error
	switch eventType {
	case domain.EventMobile:
		errs = append(errs,
			requireString(cfg, "brand_name"),
			requireString(cfg, "model_name"),
			requireMin(cfg, "ram", minRAMMB),
			requireMin(cfg, "rom", minROMMB),
		)
	case domain.EventFlight:
		errs = append(errs,
			requireString(cfg, "origin"),
			requireString(cfg, "destination"),
			requireDate(cfg, "departure_date"),
		)
	}
	return errors.Join(errs...)
}

func requireString(cfg map[string]any, key string) error {
	v, ok := cfg[key].(string)
	if !ok || strings.TrimSpace(v) == "" {
		return fmt.Errorf("config.%s is required", key)
	}
	return nil
}

func requireMin(cfg map[string]any, key string, minimum float64) error {
	var n float64
	switch v := cfg[key].(type) {
	case float64:
		n = v
	case int:
		n = float64(v)
	case int64:
		n = float64(v)
	default:
		return fmt.Errorf("config.%s must be a number", key)
	}
	if n < minimum {
		return fmt.Errorf("config.%s must be at least %.0f", key, minimum)
	}
	return nil
}

func requireDate(cfg map[string]any, key string) error {
	if err := requireString(cfg, key); err != nil {
		return err
	}
	if _, err := time.Parse(time.DateOnly, cfg[key].(string)); err != nil {
		return fmt.Errorf("config.%s must be YYYY-MM-DD", key)
	}
	return nil
}
