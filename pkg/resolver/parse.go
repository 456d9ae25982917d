package resolver

import (
	"fmt"
	"math"
	"strings"

	"github.com/goccy/go-json"

	domain "github.com/donaldgifford/price-trigger-monitor/pkg/types"
)

// vendorAnswer is one vendor's entry in a provider answer.
type vendorAnswer struct {
	Price *float64 `json:"price"`
	Link  *string  `json:"link"`
}

// stripFences removes a surrounding markdown code fence, if any.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	// Drop the info string (e.g. "json") on the opening fence line.
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	} else {
		s = ""
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// ParseQuotes decodes a provider answer of the form
// {"amazon":{"price":..,"link":..},"flipkart":{...}} into quotes. Vendors
// missing from the answer come back with a nil price. Anything that is not
// such an object yields ErrUnparseable.
func ParseQuotes(raw string) (domain.Quotes, error) {
	body := stripFences(raw)
	if body == "" {
		return nil, fmt.Errorf("%w: empty answer", ErrUnparseable)
	}

	var answer map[string]*vendorAnswer
	if err := json.Unmarshal([]byte(body), &answer); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnparseable, err)
	}
	if answer == nil {
		return nil, fmt.Errorf("%w: null answer", ErrUnparseable)
	}

	quotes := make(domain.Quotes, len(Vendors))
	for _, vendor := range Vendors {
		q := domain.VendorQuote{Vendor: vendor}
		if a := answer[vendor]; a != nil {
			if a.Price != nil {
				p := *a.Price
				if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
					return nil, fmt.Errorf("%w: invalid %s price %v", ErrUnparseable, vendor, p)
				}
				q.Price = &p
			}
			if a.Link != nil && *a.Link != "" {
				link := *a.Link
				q.Reference = &link
			}
		}
		quotes[vendor] = q
	}
	return quotes, nil
}
