package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/price-trigger-monitor/pkg/resolver"
	domain "github.com/donaldgifford/price-trigger-monitor/pkg/types"
)

func TestRenderQuotePrompt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		req         resolver.Request
		wantSubs    []string
		wantMissing []string
	}{
		{
			name: "mobile",
			req: resolver.Request{
				EventType: domain.EventMobile,
				Config: map[string]any{
					"brand_name": "Samsung",
					"model_name": "Galaxy S24",
					"ram":        float64(8192),
					"rom":        float64(262144),
				},
				ExpectedPrice: 60000,
			},
			wantSubs: []string{
				"Brand: Samsung",
				"Model: Galaxy S24",
				"RAM: 8192 MB",
				"Storage: 262144 MB",
				"Reference price from the user: 60000.00",
				`"amazon"`,
				`"flipkart"`,
				"STRICT JSON",
			},
		},
		{
			name: "mobile missing fields",
			req: resolver.Request{
				EventType: domain.EventMobile,
				Config:    map[string]any{"brand_name": ""},
			},
			wantSubs: []string{"Brand: unknown", "Model: unknown"},
		},
		{
			name: "flight",
			req: resolver.Request{
				EventType: domain.EventFlight,
				Config: map[string]any{
					"origin":         "BLR",
					"destination":    "DEL",
					"departure_date": "2026-12-01",
				},
				ExpectedPrice: 4500,
			},
			wantSubs:    []string{"Origin: BLR", "Destination: DEL", "Departure date: 2026-12-01"},
			wantMissing: []string{"Brand:"},
		},
		{
			name: "unknown event type uses sorted attributes",
			req: resolver.Request{
				EventType: domain.EventType("hotel"),
				Config:    map[string]any{"city": "Goa", "nights": float64(2)},
			},
			wantSubs: []string{"  - city: Goa\n  - nights: 2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			prompt, err := resolver.RenderQuotePrompt(tt.req)
			require.NoError(t, err)
			for _, sub := range tt.wantSubs {
				assert.Contains(t, prompt, sub)
			}
			for _, sub := range tt.wantMissing {
				assert.NotContains(t, prompt, sub)
			}
		})
	}
}
