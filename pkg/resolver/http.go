package resolver

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	domain "github.com/donaldgifford/price-trigger-monitor/pkg/types"
)

// HTTPResolver implements Resolver against a JSON price API. It issues
// GET {base}/quotes with the trigger's event type, expected price and config
// as query parameters and expects the same vendor object LLM backends answer
// with.
type HTTPResolver struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	client     *resty.Client
}

// HTTPResolverOption configures the HTTPResolver.
type HTTPResolverOption func(*HTTPResolver)

// WithHTTPResolverClient overrides the default HTTP client.
func WithHTTPResolverClient(c *http.Client) HTTPResolverOption {
	return func(r *HTTPResolver) {
		r.httpClient = c
	}
}

// WithHTTPResolverAPIKey sends key as a bearer token.
func WithHTTPResolverAPIKey(key string) HTTPResolverOption {
	return func(r *HTTPResolver) {
		r.apiKey = key
	}
}

// NewHTTPResolver creates a resolver for the price API at baseURL.
func NewHTTPResolver(baseURL string, opts ...HTTPResolverOption) *HTTPResolver {
	r := &HTTPResolver{baseURL: strings.TrimRight(baseURL, "/")}
	for _, opt := range opts {
		opt(r)
	}
	r.client = newRestyClient(r.httpClient).
		SetBaseURL(r.baseURL).
		SetHeader("Accept", "application/json")
	if r.apiKey != "" {
		r.client.SetAuthToken(r.apiKey)
	}
	return r
}

// Name returns the resolver name.
func (*HTTPResolver) Name() string {
	return "http"
}

// Resolve fetches quotes for req from the price API.
func (r *HTTPResolver) Resolve(ctx context.Context, req Request) (domain.Quotes, error) {
	params := map[string]string{
		"event_type":     string(req.EventType),
		"expected_price": strconv.FormatFloat(req.ExpectedPrice, 'f', -1, 64),
	}
	for k, v := range req.Config {
		if _, reserved := params[k]; reserved || v == nil {
			continue
		}
		params[k] = fmt.Sprint(v)
	}

	resp, err := r.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get("/quotes")
	if err != nil {
		return nil, fmt.Errorf("calling price API: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf(
			"price API error (status %d): %s",
			resp.StatusCode(),
			strings.TrimSpace(resp.String()),
		)
	}

	quotes, err := ParseQuotes(resp.String())
	if err != nil {
		return nil, fmt.Errorf("parsing price API answer: %w", err)
	}
	return quotes, nil
}
