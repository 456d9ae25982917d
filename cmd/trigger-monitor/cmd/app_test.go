package cmd

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/price-trigger-monitor/internal/config"
	"github.com/donaldgifford/price-trigger-monitor/internal/errreport"
	"github.com/donaldgifford/price-trigger-monitor/internal/notify"
	"github.com/donaldgifford/price-trigger-monitor/pkg/resolver"
)

func TestBuildResolver(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cfg      config.ResolverConfig
		wantName string
		wantErr  string
	}{
		{
			name:     "simulated",
			cfg:      config.ResolverConfig{Kind: config.ResolverKindSimulated},
			wantName: "simulated",
		},
		{
			name: "http",
			cfg: config.ResolverConfig{
				Kind: config.ResolverKindHTTP,
				HTTP: config.HTTPResolverConfig{BaseURL: "http://prices.local"},
			},
			wantName: "http",
		},
		{
			name: "llm ollama",
			cfg: config.ResolverConfig{
				Kind:    config.ResolverKindLLM,
				Backend: "ollama",
				Ollama:  config.OllamaConfig{Endpoint: "http://localhost:11434", Model: "mistral"},
			},
			wantName: "llm/ollama",
		},
		{
			name: "llm openai compat",
			cfg: config.ResolverConfig{
				Kind:         config.ResolverKindLLM,
				Backend:      "openai_compat",
				OpenAICompat: config.OpenAICompatConfig{Endpoint: "http://localhost:8000", Model: "m"},
			},
			wantName: "llm/openai_compat",
		},
		{
			name: "llm anthropic with tuning",
			cfg: config.ResolverConfig{
				Kind:        config.ResolverKindLLM,
				Backend:     "anthropic",
				Temperature: 0.2,
				MaxTokens:   256,
				Anthropic: config.AnthropicConfig{
					Endpoint: "http://localhost:9000/v1/messages",
					APIKey:   "test-key",
				},
			},
			wantName: "llm/anthropic",
		},
		{
			name:    "unknown kind",
			cfg:     config.ResolverConfig{Kind: "crystal_ball"},
			wantErr: `unknown resolver kind "crystal_ball"`,
		},
		{
			name:    "unknown llm backend",
			cfg:     config.ResolverConfig{Kind: config.ResolverKindLLM, Backend: "gpt-in-a-box"},
			wantErr: `unknown llm backend "gpt-in-a-box"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := buildResolver(tt.cfg, slog.New(slog.DiscardHandler))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, &resolver.RateLimited{}, res)
			assert.Equal(t, tt.wantName, res.Name())
		})
	}
}

func TestBuildNotifier(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.DiscardHandler)

	none := buildNotifier(config.NotificationsConfig{}, log)
	assert.IsType(t, &notify.NoOpNotifier{}, none)

	// Enabled without a URL is ignored.
	disabled := buildNotifier(config.NotificationsConfig{
		Discord: config.DiscordConfig{Enabled: true},
		Slack:   config.SlackConfig{Enabled: false, WebhookURL: "https://hooks.slack.com/x"},
	}, log)
	assert.IsType(t, &notify.NoOpNotifier{}, disabled)

	discord := buildNotifier(config.NotificationsConfig{
		Discord: config.DiscordConfig{Enabled: true, WebhookURL: "https://discord.com/api/webhooks/x"},
	}, log)
	assert.IsType(t, &notify.DiscordNotifier{}, discord)

	both := buildNotifier(config.NotificationsConfig{
		Discord: config.DiscordConfig{Enabled: true, WebhookURL: "https://discord.com/api/webhooks/x"},
		Slack:   config.SlackConfig{Enabled: true, WebhookURL: "https://hooks.slack.com/x"},
	}, log)
	assert.IsType(t, &notify.MultiNotifier{}, both)
}

func TestEngineOptions(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Scanner: config.ScannerConfig{BatchSize: 10, ClaimLease: time.Minute},
		Worker: config.WorkerConfig{
			RescheduleInterval: time.Hour,
			ResolveTimeout:     30 * time.Second,
			Threshold:          2000,
			LockTTL:            time.Minute,
		},
	}
	opts := engineOptions(cfg, slog.New(slog.DiscardHandler), errreport.Nop{})
	assert.Len(t, opts, 8)
}

func TestBuildQueue_UnknownBackend(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Queue: config.QueueConfig{Backend: "kafka"}}
	_, err := buildQueue(context.Background(), cfg, nil, slog.New(slog.DiscardHandler))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown queue backend "kafka"`)
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cmd := versionCommand()
	cmd.SetOut(&out)
	cmd.SetArgs(nil)
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "trigger-monitor "+Version+"\n", out.String())
}
