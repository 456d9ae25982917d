package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/price-trigger-monitor/pkg/types"
)

// run executes the root command against args. Commands share package-level
// flag state, so these tests are not parallel.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestTriggersList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/triggers", r.URL.Path)
		assert.Equal(t, "u1", r.URL.Query().Get("user_id"))
		assert.Equal(t, "true", r.URL.Query().Get("active"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]domain.Trigger{{ID: "t1", UserID: "u1", EventType: domain.EventFlight}})
	}))
	defer srv.Close()

	out, err := run(t, "triggers", "list",
		"--server", srv.URL, "--user", "u1", "--output", "table", "--active", "true")
	require.NoError(t, err)
	assert.Contains(t, out, "t1")
	assert.Contains(t, out, "flight")
}

func TestTriggersCreate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "u1", body["user_id"])
		assert.Equal(t, "flight", body["event_type"])
		assert.Equal(t, "1h", body["time_duration"])
		assert.Equal(t, map[string]any{"origin": "BLR", "destination": "DEL"}, body["config"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(domain.Trigger{ID: "t-new"})
	}))
	defer srv.Close()

	out, err := run(t, "triggers", "create",
		"--server", srv.URL, "--user", "u1", "--output", "table",
		"--type", "flight", "--expected", "5200", "--after", "1h",
		"--config", "origin=BLR", "--config", "destination=DEL")
	require.NoError(t, err)
	assert.Contains(t, out, "Created trigger t-new")
}

func TestQueueStats_JSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(domain.QueueStats{Pending: 3})
	}))
	defer srv.Close()

	out, err := run(t, "queue", "stats", "--server", srv.URL, "--output", "json")
	require.NoError(t, err)

	var stats domain.QueueStats
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Equal(t, 3, stats.Pending)
}

func TestUserRequired(t *testing.T) {
	t.Setenv("TMCTL_USER", "")

	_, err := run(t, "notifications", "list", "--server", "http://127.0.0.1:1", "--user", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--user is required")
}
