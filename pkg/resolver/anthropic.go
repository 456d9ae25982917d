package resolver

import (
	"context"
	"errors"
	"os"

	"github.com/go-resty/resty/v2"
)

const (
	anthropicDefaultURL   = "https://api.anthropic.com/v1/messages"
	anthropicDefaultModel = "claude-haiku-4-20250514"
	anthropicAPIVersion   = "2023-06-01"

	// The Messages API requires max_tokens.
	anthropicFallbackMaxTokens = 512
)

var errAnthropicNoKey = errors.New("anthropic: no API key (set ANTHROPIC_API_KEY or resolver.anthropic.api_key)")

// AnthropicBackend asks Claude for quotes through the Messages API. The key
// defaults to ANTHROPIC_API_KEY.
type AnthropicBackend struct {
	settings backendSettings
	client   *resty.Client
}

// NewAnthropicBackend creates an AnthropicBackend.
func NewAnthropicBackend(opts ...BackendOption) *AnthropicBackend {
	s := applyBackendOptions(backendSettings{
		endpoint: anthropicDefaultURL,
		model:    anthropicDefaultModel,
		apiKey:   os.Getenv("ANTHROPIC_API_KEY"),
	}, opts)

	client := newRestyClient(s.httpClient).SetHeader("anthropic-version", anthropicAPIVersion)
	if s.apiKey != "" {
		client.SetHeader("x-api-key", s.apiKey)
	}
	return &AnthropicBackend{settings: s, client: client}
}

// Name returns "anthropic".
func (*AnthropicBackend) Name() string { return "anthropic" }

type messagesRequest struct {
	Model       string        `json:"model"`
	MaxTokens   int           `json:"max_tokens"`
	System      string        `json:"system,omitempty"`
	Messages    []chatMessage `json:"messages"`
	Temperature *float64      `json:"temperature,omitempty"`
}

// chatMessage is a role/content turn, shared with the OpenAI wire format.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Model   string `json:"model"`
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Usage struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

// Generate sends one user turn and returns the first text block.
func (b *AnthropicBackend) Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error) {
	if b.settings.apiKey == "" {
		return GenerateResponse{}, errAnthropicNoKey
	}

	body := messagesRequest{
		Model:     b.settings.model,
		MaxTokens: req.MaxTokens,
		System:    req.SystemMsg,
		Messages:  []chatMessage{{Role: "user", Content: req.Prompt}},
	}
	if body.MaxTokens <= 0 {
		body.MaxTokens = anthropicFallbackMaxTokens
	}
	if req.Temperature > 0 {
		body.Temperature = &req.Temperature
	}

	var out messagesResponse
	if err := postJSON(ctx, b.client.R(), b.Name(), b.settings.endpoint, body, &out, decodeNestedError); err != nil {
		return GenerateResponse{}, err
	}

	for _, block := range out.Content {
		if block.Type == "" || block.Type == "text" {
			return GenerateResponse{
				Content: block.Text,
				Model:   out.Model,
				Usage:   newTokenUsage(out.Usage.InputTokens, out.Usage.OutputTokens),
			}, nil
		}
	}
	return GenerateResponse{}, errors.New("anthropic returned no text content")
}
