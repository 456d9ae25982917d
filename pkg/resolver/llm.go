package resolver

import (
	"context"
	"fmt"

	domain "github.com/donaldgifford/price-trigger-monitor/pkg/types"
)

// LLMResolver implements Resolver by prompting an LLM backend for quotes.
type LLMResolver struct {
	backend     LLMBackend
	temperature float64
	maxTokens   int
}

// LLMResolverOption configures the LLMResolver.
type LLMResolverOption func(*LLMResolver)

// WithTemperature sets the LLM temperature.
func WithTemperature(t float64) LLMResolverOption {
	return func(r *LLMResolver) {
		r.temperature = t
	}
}

// WithMaxTokens sets the max tokens for LLM responses.
func WithMaxTokens(n int) LLMResolverOption {
	return func(r *LLMResolver) {
		r.maxTokens = n
	}
}

// NewLLMResolver creates a new LLMResolver.
func NewLLMResolver(backend LLMBackend, opts ...LLMResolverOption) *LLMResolver {
	r := &LLMResolver{
		backend:     backend,
		temperature: 0.1,
		maxTokens:   512,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Name returns the resolver name, including the backend.
func (r *LLMResolver) Name() string {
	return "llm/" + r.backend.Name()
}

// Resolve renders the quote prompt, asks the backend and parses its answer.
func (r *LLMResolver) Resolve(ctx context.Context, req Request) (domain.Quotes, error) {
	prompt, err := RenderQuotePrompt(req)
	if err != nil {
		return nil, err
	}

	resp, err := r.backend.Generate(ctx, GenerateRequest{
		Prompt:      prompt,
		SystemMsg:   systemMsg,
		Format:      FormatJSON,
		Temperature: r.temperature,
		MaxTokens:   r.maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("calling LLM for quotes: %w", err)
	}

	quotes, err := ParseQuotes(resp.Content)
	if err != nil {
		return nil, fmt.Errorf("parsing %s answer: %w", r.backend.Name(), err)
	}
	return quotes, nil
}
