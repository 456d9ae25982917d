package resolver

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/go-resty/resty/v2"
)

// OpenAICompatBackend talks to any server exposing /v1/chat/completions,
// such as vLLM or LM Studio. The bearer token defaults to OPENAI_API_KEY and
// is omitted when empty.
type OpenAICompatBackend struct {
	settings backendSettings
	client   *resty.Client
}

// NewOpenAICompatBackend creates a backend for the server at endpoint.
func NewOpenAICompatBackend(endpoint, model string, opts ...BackendOption) *OpenAICompatBackend {
	s := applyBackendOptions(backendSettings{
		endpoint: endpoint,
		model:    model,
		apiKey:   os.Getenv("OPENAI_API_KEY"),
	}, opts)
	s.endpoint = strings.TrimRight(s.endpoint, "/")

	client := newRestyClient(s.httpClient)
	if s.apiKey != "" {
		client.SetAuthToken(s.apiKey)
	}
	return &OpenAICompatBackend{settings: s, client: client}
}

// Name returns "openai_compat".
func (*OpenAICompatBackend) Name() string { return "openai_compat" }

type completionRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    *float64        `json:"temperature,omitempty"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type completionResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}

// Generate sends the system and user turns and returns the first choice.
// JSON format maps to response_format json_object.
func (b *OpenAICompatBackend) Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error) {
	body := completionRequest{
		Model:     b.settings.model,
		MaxTokens: req.MaxTokens,
	}
	if req.SystemMsg != "" {
		body.Messages = append(body.Messages, chatMessage{Role: "system", Content: req.SystemMsg})
	}
	body.Messages = append(body.Messages, chatMessage{Role: "user", Content: req.Prompt})
	if req.Temperature > 0 {
		body.Temperature = &req.Temperature
	}
	if req.Format == FormatJSON {
		body.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	var out completionResponse
	url := b.settings.endpoint + "/v1/chat/completions"
	if err := postJSON(ctx, b.client.R(), b.Name(), url, body, &out, decodeNestedError); err != nil {
		return GenerateResponse{}, err
	}
	if len(out.Choices) == 0 {
		return GenerateResponse{}, errors.New("openai_compat returned no choices")
	}

	return GenerateResponse{
		Content: out.Choices[0].Message.Content,
		Model:   out.Model,
		Usage:   newTokenUsage(out.Usage.PromptTokens, out.Usage.CompletionTokens),
	}, nil
}
