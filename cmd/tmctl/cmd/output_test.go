package cmd

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/price-trigger-monitor/pkg/types"
)

func TestParseConfigArgs(t *testing.T) {
	t.Parallel()

	got, err := parseConfigArgs([]string{
		"brand_name=Samsung",
		"model_name=Galaxy S24",
		"ram=8192",
		"departure_date=2026-12-01",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"brand_name":     "Samsung",
		"model_name":     "Galaxy S24",
		"ram":            float64(8192),
		"departure_date": "2026-12-01",
	}, got)

	_, err = parseConfigArgs([]string{"ram"})
	require.Error(t, err)
	_, err = parseConfigArgs([]string{"=5"})
	require.Error(t, err)
}

func TestDescribeConfig(t *testing.T) {
	t.Parallel()

	got := describeConfig(map[string]any{"origin": "BLR", "destination": "DEL"})
	assert.Equal(t, "destination=DEL origin=BLR", got)
	assert.Empty(t, describeConfig(nil))
}

func TestPrintTriggersTable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := printTriggersTable(&buf, []domain.Trigger{{
		ID:            "t1",
		UserID:        "u1",
		EventType:     domain.EventMobile,
		ExpectedPrice: 74999,
		IsActive:      true,
		NextCheck:     time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC),
	}})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "NEXT CHECK")
	assert.Contains(t, out, "t1")
	assert.Contains(t, out, "74999.00")
	assert.Contains(t, out, "-") // no check status yet
}

func TestPrintTriggerDetail_LastPrice(t *testing.T) {
	t.Parallel()

	price := 73500.0
	var buf bytes.Buffer
	err := printTriggerDetail(&buf, &domain.Trigger{
		ID:               "t1",
		Config:           map[string]any{"brand_name": "Samsung"},
		LastFetchedPrice: &domain.VendorQuote{Vendor: "amazon", Price: &price},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "73500.00 (amazon)")
	assert.Contains(t, buf.String(), "brand_name=Samsung")
}

func TestPrintDashboard(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, printDashboard(&buf, &domain.Dashboard{TotalTriggers: 2}))
	assert.NotContains(t, buf.String(), "Recent alerts")

	buf.Reset()
	require.NoError(t, printDashboard(&buf, &domain.Dashboard{
		UnreadAlerts: 1,
		RecentAlerts: []domain.Notification{{ID: "n1", Vendor: "flipkart", Price: 74000}},
	}))
	assert.Contains(t, buf.String(), "Recent alerts")
	assert.Contains(t, buf.String(), "flipkart")
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}
