package resolver

import (
	"context"
	"math"

	domain "github.com/donaldgifford/price-trigger-monitor/pkg/types"
)

// SimulatedReferencePrefix marks every reference produced by the SimulatedResolver.
const SimulatedReferencePrefix = "simulated:"

// simulatedDiscounts are the fixed fractions of the expected price each
// vendor quotes in demo mode.
var simulatedDiscounts = map[string]float64{
	VendorAmazon:   0.95,
	VendorFlipkart: 0.97,
}

// SimulatedResolver returns deterministic quotes derived from the expected
// price. It exists for demos and local runs and is only used when explicitly
// configured; its references are always prefixed with "simulated:".
type SimulatedResolver struct{}

// NewSimulatedResolver creates a SimulatedResolver.
func NewSimulatedResolver() *SimulatedResolver {
	return &SimulatedResolver{}
}

// Name returns the resolver name.
func (*SimulatedResolver) Name() string {
	return "simulated"
}

// Resolve returns one quote per vendor.
func (*SimulatedResolver) Resolve(ctx context.Context, req Request) (domain.Quotes, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	quotes := make(domain.Quotes, len(Vendors))
	for _, vendor := range Vendors {
		price := math.Round(req.ExpectedPrice*simulatedDiscounts[vendor]*100) / 100
		ref := SimulatedReferencePrefix + vendor + "/" + req.TriggerID
		quotes[vendor] = domain.VendorQuote{
			Vendor:    vendor,
			Price:     &price,
			Reference: &ref,
		}
	}
	return fillMissing(quotes), nil
}
