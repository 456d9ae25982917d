package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/donaldgifford/price-trigger-monitor/internal/notify"
	domain "github.com/donaldgifford/price-trigger-monitor/pkg/types"
)

// sortedQuotes returns the quotes ordered by vendor name, with Vendor filled
// from the map key when the resolver left it empty.
func sortedQuotes(quotes domain.Quotes) []domain.VendorQuote {
	out := make([]domain.VendorQuote, 0, len(quotes))
	for vendor, q := range quotes {
		if q.Vendor == "" {
			q.Vendor = vendor
		}
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Vendor < out[j].Vendor })
	return out
}

// WithinThreshold reports whether price is at most threshold away from
// expected. The bound is inclusive.
func WithinThreshold(price, expected, threshold float64) bool {
	return math.Abs(price-expected) <= threshold
}

// MatchQuotes returns every priced quote within threshold of expected,
// ordered by vendor name.
func MatchQuotes(quotes domain.Quotes, expected, threshold float64) []domain.VendorQuote {
	var matches []domain.VendorQuote
	for _, q := range sortedQuotes(quotes) {
		if !q.HasPrice() {
			continue
		}
		if WithinThreshold(*q.Price, expected, threshold) {
			matches = append(matches, q)
		}
	}
	return matches
}

// LowestQuote picks the quote with the lowest price, treating an absent price
// as +Inf. Ties go to the vendor that sorts first. When no vendor has a price
// the first vendor's quote is returned as the unresolved placeholder.
func LowestQuote(quotes domain.Quotes) domain.VendorQuote {
	sorted := sortedQuotes(quotes)
	if len(sorted) == 0 {
		return domain.VendorQuote{}
	}
	best := sorted[0]
	for _, q := range sorted[1:] {
		if q.PriceOrInf() < best.PriceOrInf() {
			best = q
		}
	}
	return best
}

func notificationMessage(t *domain.Trigger, q domain.VendorQuote) string {
	return fmt.Sprintf("%s is %s on %s (target %s)",
		notify.TriggerLabel(t),
		notify.FormatPrice(*q.Price),
		q.Vendor,
		notify.FormatPrice(t.ExpectedPrice),
	)
}
