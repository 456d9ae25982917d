package resolver

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"text/template"

	domain "github.com/donaldgifford/price-trigger-monitor/pkg/types"
)

// systemMsg is sent with every quote prompt.
const systemMsg = `You are a price extraction and normalization assistant. ` +
	`You only answer with strict JSON and never invent prices.`

// outputSchema is shared by every quote prompt.
const outputSchema = `Output format:
Return STRICT JSON ONLY. No explanation. No markdown. No extra text.

{
  "amazon":   {"price": number | null, "link": string | null},
  "flipkart": {"price": number | null, "link": string | null}
}`

// mobileTmpl is the mobile quote prompt template.
const mobileTmpl = `Find the current selling price on Amazon India and Flipkart India
for the EXACT product matching ALL of the following:
  - Brand: {{.BrandName}}
  - Model: {{.ModelName}}
  - RAM: {{.RAM}} MB
  - Storage: {{.ROM}} MB

Rules:
1. Use the FINAL SELLING PRICE after discount. Ignore MRP, crossed prices,
   exchange offers, EMI prices and bank offers.
2. Prices are pure numbers in INR (no currency symbols, commas or text).
3. If multiple matching listings exist, choose the LOWEST valid price.
4. If the product is NOT FOUND on a vendor, set that vendor's price and link to null.

Reference price from the user: {{.ExpectedPrice}}

` + outputSchema

// flightTmpl is the flight quote prompt template.
const flightTmpl = `Find the lowest one-way economy fare sold through Amazon India and
Flipkart India for:
  - Origin: {{.Origin}}
  - Destination: {{.Destination}}
  - Departure date: {{.DepartureDate}}

Rules:
1. Use the total fare payable per adult in INR as a pure number.
2. If no fare is listed on a vendor, set that vendor's price and link to null.

Reference price from the user: {{.ExpectedPrice}}

` + outputSchema

// genericTmpl renders configs of event types without a dedicated template.
const genericTmpl = `Find the current lowest price on Amazon India and Flipkart India
for an item described by these attributes:
{{.Attributes}}

If the item is NOT FOUND on a vendor, set that vendor's price and link to null.

Reference price from the user: {{.ExpectedPrice}}

` + outputSchema

// PromptData holds the template variables for quote prompts.
type PromptData struct {
	BrandName     string
	ModelName     string
	RAM           string
	ROM           string
	Origin        string
	Destination   string
	DepartureDate string
	Attributes    string
	ExpectedPrice string
}

var templates = map[domain.EventType]*template.Template{
	domain.EventMobile: template.Must(template.New("mobile").Parse(mobileTmpl)),
	domain.EventFlight: template.Must(template.New("flight").Parse(flightTmpl)),
}

var genericTemplate = template.Must(template.New("generic").Parse(genericTmpl))

// RenderQuotePrompt renders the quote prompt for a request.
func RenderQuotePrompt(req Request) (string, error) {
	data := PromptData{
		BrandName:     configString(req.Config, "brand_name"),
		ModelName:     configString(req.Config, "model_name"),
		RAM:           configString(req.Config, "ram"),
		ROM:           configString(req.Config, "rom"),
		Origin:        configString(req.Config, "origin"),
		Destination:   configString(req.Config, "destination"),
		DepartureDate: configString(req.Config, "departure_date"),
		Attributes:    formatAttributes(req.Config),
		ExpectedPrice: fmt.Sprintf("%.2f", req.ExpectedPrice),
	}

	tmpl, ok := templates[req.EventType]
	if !ok {
		tmpl = genericTemplate
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering %s prompt: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}

// configString returns the config value for key formatted as text, or
// "unknown" when missing.
func configString(cfg map[string]any, key string) string {
	v, ok := cfg[key]
	if !ok || v == nil {
		return "unknown"
	}
	switch t := v.(type) {
	case string:
		if t == "" {
			return "unknown"
		}
		return t
	case float64:
		return fmt.Sprintf("%g", t)
	default:
		return fmt.Sprint(t)
	}
}

func formatAttributes(cfg map[string]any) string {
	if len(cfg) == 0 {
		return "  (none)"
	}
	keys := make([]string, 0, len(cfg))
	for k := range cfg {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "  - %s: %s", k, configString(cfg, k))
	}
	return b.String()
}
