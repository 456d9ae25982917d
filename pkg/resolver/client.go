package resolver

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

const defaultHTTPTimeout = 60 * time.Second

// newRestyClient returns a resty client using go-json for bodies. A nil
// httpClient gets a default one with a 60s timeout.
func newRestyClient(httpClient *http.Client) *resty.Client {
	var c *resty.Client
	if httpClient != nil {
		c = resty.NewWithClient(httpClient)
	} else {
		c = resty.New().SetTimeout(defaultHTTPTimeout)
	}
	c.JSONMarshal = json.Marshal
	c.JSONUnmarshal = json.Unmarshal
	c.SetHeader("Content-Type", "application/json")
	return c
}

// BackendOption configures an LLM backend. Empty values keep the backend's
// default.
type BackendOption func(*backendSettings)

type backendSettings struct {
	endpoint   string
	model      string
	apiKey     string
	httpClient *http.Client
}

// WithEndpoint points the backend at a different URL.
func WithEndpoint(url string) BackendOption {
	return func(s *backendSettings) {
		if url != "" {
			s.endpoint = url
		}
	}
}

// WithModel selects the model.
func WithModel(name string) BackendOption {
	return func(s *backendSettings) {
		if name != "" {
			s.model = name
		}
	}
}

// WithAPIKey sets the credential, taking precedence over the environment.
func WithAPIKey(key string) BackendOption {
	return func(s *backendSettings) {
		if key != "" {
			s.apiKey = key
		}
	}
}

// WithBackendHTTPClient sets the HTTP client requests go through.
func WithBackendHTTPClient(c *http.Client) BackendOption {
	return func(s *backendSettings) {
		s.httpClient = c
	}
}

func applyBackendOptions(s backendSettings, opts []BackendOption) backendSettings {
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// APIError is a non-200 answer from an LLM backend.
type APIError struct {
	Backend string
	Status  int
	Code    string // provider error type, when the body names one
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: status %d: %s: %s", e.Backend, e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: status %d: %s", e.Backend, e.Status, e.Message)
}

// errorDecoder extracts the provider's code and message from an error body.
// An empty message means the body was not in the provider's format.
type errorDecoder func(body []byte) (code, message string)

// decodeNestedError reads {"error": {"type": ..., "message": ...}}, the shape
// shared by the Anthropic and OpenAI APIs.
func decodeNestedError(body []byte) (code, message string) {
	var e struct {
		Error struct {
			Type    string `json:"type"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal(body, &e) != nil {
		return "", ""
	}
	return e.Error.Type, e.Error.Message
}

// postJSON sends body to url and decodes a 200 answer into out. Any other
// status becomes an *APIError.
func postJSON(
	ctx context.Context,
	req *resty.Request,
	backend, url string,
	body, out any,
	decodeErr errorDecoder,
) error {
	resp, err := req.SetContext(ctx).SetBody(body).Post(url)
	if err != nil {
		return fmt.Errorf("%s request: %w", backend, err)
	}

	if resp.StatusCode() != http.StatusOK {
		apiErr := &APIError{
			Backend: backend,
			Status:  resp.StatusCode(),
			Message: strings.TrimSpace(resp.String()),
		}
		if decodeErr != nil {
			if code, msg := decodeErr(resp.Body()); msg != "" {
				apiErr.Code, apiErr.Message = code, msg
			}
		}
		return apiErr
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decoding %s response: %w", backend, err)
	}
	return nil
}
