package resolver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/price-trigger-monitor/pkg/resolver"
)

func TestAnthropicBackend_Name(t *testing.T) {
	t.Parallel()
	b := resolver.NewAnthropicBackend()
	assert.Equal(t, "anthropic", b.Name())
}

func TestAnthropicBackend_Generate(t *testing.T) {
	t.Parallel()

	successResponse := `{
		"content": [{"type": "text", "text": "{\"amazon\":{\"price\":999,\"link\":null}}"}],
		"model": "claude-haiku-4-20250514",
		"usage": {"input_tokens": 10, "output_tokens": 5}
	}`

	tests := []struct {
		name       string
		apiKey     string
		handler    http.HandlerFunc
		req        resolver.GenerateRequest
		wantErr    bool
		wantErrMsg string
		wantResp   string
		wantUsage  int
	}{
		{
			name:   "successful generation",
			apiKey: "test-key",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
				assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))

				var body map[string]any
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, "quote this", body["messages"].([]any)[0].(map[string]any)["content"])
				assert.Equal(t, "be strict", body["system"])
				assert.InDelta(t, 50.0, body["max_tokens"], 0)

				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(successResponse))
			},
			req: resolver.GenerateRequest{
				Prompt:      "quote this",
				SystemMsg:   "be strict",
				Temperature: 0.1,
				MaxTokens:   50,
			},
			wantResp:  `{"amazon":{"price":999,"link":null}}`,
			wantUsage: 15,
		},
		{
			name:   "text block after a tool block",
			apiKey: "test-key",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(`{
					"content": [{"type": "tool_use"}, {"type": "text", "text": "{}"}],
					"usage": {"input_tokens": 3, "output_tokens": 1}
				}`))
			},
			req:       resolver.GenerateRequest{Prompt: "test"},
			wantResp:  "{}",
			wantUsage: 4,
		},
		{
			name:       "missing API key",
			apiKey:     "",
			handler:    func(_ http.ResponseWriter, _ *http.Request) {},
			req:        resolver.GenerateRequest{Prompt: "test"},
			wantErr:    true,
			wantErrMsg: "ANTHROPIC_API_KEY",
		},
		{
			name:   "rate limited 429",
			apiKey: "test-key",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{
					"error": {"type": "rate_limit_error", "message": "rate limit exceeded"}
				}`))
			},
			req:        resolver.GenerateRequest{Prompt: "test"},
			wantErr:    true,
			wantErrMsg: "rate_limit_error",
		},
		{
			name:   "server error without error body",
			apiKey: "test-key",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				_, _ = w.Write([]byte(`upstream down`))
			},
			req:        resolver.GenerateRequest{Prompt: "test"},
			wantErr:    true,
			wantErrMsg: "status 502",
		},
		{
			name:   "invalid JSON response",
			apiKey: "test-key",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(`not json`))
			},
			req:        resolver.GenerateRequest{Prompt: "test"},
			wantErr:    true,
			wantErrMsg: "decoding anthropic response",
		},
		{
			name:   "empty content array",
			apiKey: "test-key",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(`{"content":[],"model":"test","usage":{}}`))
			},
			req:        resolver.GenerateRequest{Prompt: "test"},
			wantErr:    true,
			wantErrMsg: "no text content",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			backend := resolver.NewAnthropicBackend(
				resolver.WithEndpoint(srv.URL),
				resolver.WithBackendHTTPClient(srv.Client()),
				resolver.WithAPIKey(tt.apiKey),
			)

			resp, err := backend.Generate(context.Background(), tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantResp, resp.Content)
			assert.Equal(t, tt.wantUsage, resp.Usage.TotalTokens)
		})
	}
}

func TestAnthropicBackend_ErrorCarriesProviderType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"type": "rate_limit_error", "message": "slow down"}}`))
	}))
	defer srv.Close()

	backend := resolver.NewAnthropicBackend(
		resolver.WithEndpoint(srv.URL),
		resolver.WithBackendHTTPClient(srv.Client()),
		resolver.WithAPIKey("test-key"),
	)
	_, err := backend.Generate(context.Background(), resolver.GenerateRequest{Prompt: "test"})

	var apiErr *resolver.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "anthropic", apiErr.Backend)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.Status)
	assert.Equal(t, "rate_limit_error", apiErr.Code)
	assert.Equal(t, "slow down", apiErr.Message)
}
