package resolver

import (
	"context"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

// OllamaBackend runs non-streaming /api/generate calls against a local
// Ollama server.
type OllamaBackend struct {
	settings backendSettings
	client   *resty.Client
}

// NewOllamaBackend creates a backend for the server at endpoint.
func NewOllamaBackend(endpoint, model string, opts ...BackendOption) *OllamaBackend {
	s := applyBackendOptions(backendSettings{endpoint: endpoint, model: model}, opts)
	s.endpoint = strings.TrimRight(s.endpoint, "/")
	return &OllamaBackend{settings: s, client: newRestyClient(s.httpClient)}
}

// Name returns "ollama".
func (*OllamaBackend) Name() string { return "ollama" }

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	System  string          `json:"system,omitempty"`
	Format  string          `json:"format,omitempty"`
	Stream  bool            `json:"stream"`
	Options *samplingParams `json:"options,omitempty"`
}

// samplingParams is the subset of Ollama's model options the resolver tunes.
type samplingParams struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type generateResponse struct {
	Model           string `json:"model"`
	Response        string `json:"response"`
	PromptEvalCount int    `json:"prompt_eval_count"`
	EvalCount       int    `json:"eval_count"`
}

// decodeOllamaError reads Ollama's flat {"error": "..."} body.
func decodeOllamaError(body []byte) (code, message string) {
	var e struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &e) != nil {
		return "", ""
	}
	return "", e.Error
}

// Generate returns the model's full answer in one response.
func (b *OllamaBackend) Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error) {
	body := generateRequest{
		Model:  b.settings.model,
		Prompt: req.Prompt,
		System: req.SystemMsg,
	}
	if req.Format == FormatJSON {
		body.Format = FormatJSON
	}
	if req.Temperature > 0 || req.MaxTokens > 0 {
		body.Options = &samplingParams{Temperature: req.Temperature, NumPredict: req.MaxTokens}
	}

	var out generateResponse
	url := b.settings.endpoint + "/api/generate"
	if err := postJSON(ctx, b.client.R(), b.Name(), url, body, &out, decodeOllamaError); err != nil {
		return GenerateResponse{}, err
	}

	return GenerateResponse{
		Content: out.Response,
		Model:   out.Model,
		Usage:   newTokenUsage(out.PromptEvalCount, out.EvalCount),
	}, nil
}
