package notify

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNoOpNotifier_SendAlert(t *testing.T) {
	t.Parallel()

	n := NewNoOpNotifier(slog.New(slog.NewTextHandler(io.Discard, nil)))
	alert := testAlert(999)
	require.NoError(t, n.SendAlert(context.Background(), &alert))
}

func TestNoOpNotifier_SendBatchAlert(t *testing.T) {
	t.Parallel()

	n := NewNoOpNotifier(nil)
	alerts := []AlertPayload{testAlert(999), testAlert(980)}

	require.NoError(t, n.SendBatchAlert(context.Background(), alerts, "Galaxy S24"))
	require.NoError(t, n.SendBatchAlert(context.Background(), nil, "empty"))
}

// compile-time interface checks.
var (
	_ Notifier = (*NoOpNotifier)(nil)
	_ Notifier = (*DiscordNotifier)(nil)
	_ Notifier = (*SlackNotifier)(nil)
	_ Notifier = (*MultiNotifier)(nil)
)
