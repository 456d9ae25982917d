package resolver_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/price-trigger-monitor/pkg/resolver"
	domain "github.com/donaldgifford/price-trigger-monitor/pkg/types"
)

func TestSimulatedResolver(t *testing.T) {
	t.Parallel()

	r := resolver.NewSimulatedResolver()
	assert.Equal(t, "simulated", r.Name())

	req := resolver.Request{TriggerID: "t-9", EventType: domain.EventMobile, ExpectedPrice: 1000}

	first, err := r.Resolve(context.Background(), req)
	require.NoError(t, err)
	second, err := r.Resolve(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assert.InDelta(t, 950.0, *first[resolver.VendorAmazon].Price, 0.001)
	assert.InDelta(t, 970.0, *first[resolver.VendorFlipkart].Price, 0.001)
	for vendor, q := range first {
		require.NotNil(t, q.Reference, vendor)
		assert.True(t, strings.HasPrefix(*q.Reference, resolver.SimulatedReferencePrefix), *q.Reference)
	}
}

func TestSimulatedResolver_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := resolver.NewSimulatedResolver().Resolve(ctx, resolver.Request{})
	require.ErrorIs(t, err, context.Canceled)
}
