// Package resolver looks up vendor price quotes for a trigger. The lookup
// itself belongs to an external provider; this package only adapts such
// providers (LLM backends, a JSON price API) behind the Resolver interface.
package resolver

import (
	"context"
	"errors"

	domain "github.com/donaldgifford/price-trigger-monitor/pkg/types"
)

// ErrUnparseable is returned when a provider answer cannot be decoded into
// quotes. Callers treat it as a failed check, never as a price.
var ErrUnparseable = errors.New("unparseable resolver response")

// Known vendors queried for every trigger.
const (
	VendorAmazon   = "amazon"
	VendorFlipkart = "flipkart"
)

// Vendors lists the vendors every resolver reports on.
var Vendors = []string{VendorAmazon, VendorFlipkart}

// Request is the input to a price lookup.
type Request struct {
	TriggerID     string
	EventType     domain.EventType
	Config        map[string]any
	ExpectedPrice float64
}

// Resolver returns vendor quotes for a trigger configuration. Absent or
// partial results are a normal outcome and come back as quotes with a nil
// price; errors mean the lookup itself failed.
type Resolver interface {
	Resolve(ctx context.Context, req Request) (domain.Quotes, error)
	Name() string
}

// FormatJSON is the format string for requesting JSON mode from LLM backends.
const FormatJSON = "json"

// GenerateRequest defines the input for an LLM generation call.
type GenerateRequest struct {
	Prompt      string
	SystemMsg   string
	Format      string // FormatJSON for JSON mode
	Temperature float64
	MaxTokens   int
}

// TokenUsage tracks LLM token consumption.
type TokenUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

func newTokenUsage(prompt, completion int) TokenUsage {
	return TokenUsage{PromptTokens: prompt, CompletionTokens: completion, TotalTokens: prompt + completion}
}

// GenerateResponse holds the result of an LLM generation call.
type GenerateResponse struct {
	Content string
	Model   string
	Usage   TokenUsage
}

// LLMBackend defines the interface for LLM text generation.
type LLMBackend interface {
	Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error)
	Name() string
}

// fillMissing ensures every known vendor has an entry, absent ones carrying
// no price.
func fillMissing(q domain.Quotes) domain.Quotes {
	if q == nil {
		q = domain.Quotes{}
	}
	for _, v := range Vendors {
		if _, ok := q[v]; !ok {
			q[v] = domain.VendorQuote{Vendor: v}
		}
	}
	return q
}
