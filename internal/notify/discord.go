package notify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"

	"github.com/donaldgifford/price-trigger-monitor/internal/metrics"
)

const (
	colorGreen  = 0x2ECC71 // at or below the expected price
	colorYellow = 0xF1C40F // above the expected price, within threshold
)

// discordMaxEmbeds is Discord's per-message embed limit.
const discordMaxEmbeds = 10

// DiscordNotifier posts price alerts as embeds to a Discord webhook.
type DiscordNotifier struct {
	webhookURL string
	username   string
	httpClient *http.Client
	rc         *resty.Client
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient sets the HTTP client the webhook is posted with.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) {
		d.httpClient = c
	}
}

// WithDiscordUsername overrides the webhook's display name.
func WithDiscordUsername(name string) DiscordOption {
	return func(d *DiscordNotifier) {
		d.username = name
	}
}

// NewDiscordNotifier creates a DiscordNotifier for webhookURL.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		username:   "Price Trigger Monitor",
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.httpClient == nil {
		d.httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	d.rc = resty.NewWithClient(d.httpClient).
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", "price-trigger-monitor")
	d.rc.JSONMarshal = json.Marshal
	d.rc.JSONUnmarshal = json.Unmarshal
	return d
}

type discordWebhookPayload struct {
	Username string         `json:"username,omitempty"`
	Embeds   []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	URL         string              `json:"url,omitempty"`
	Color       int                 `json:"color"`
	Description string              `json:"description,omitempty"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
	Footer      *discordFooter      `json:"footer,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type discordFooter struct {
	Text string `json:"text"`
}

// SendAlert posts one alert as a single embed.
func (d *DiscordNotifier) SendAlert(ctx context.Context, alert *AlertPayload) error {
	return d.post(ctx, []discordEmbed{alertEmbed(alert)})
}

// SendBatchAlert posts every alert for one trigger in a single message. Past
// Discord's embed limit the remainder is summarized in a final embed.
func (d *DiscordNotifier) SendBatchAlert(
	ctx context.Context,
	alerts []AlertPayload,
	label string,
) error {
	if len(alerts) == 0 {
		return nil
	}

	shown := min(len(alerts), discordMaxEmbeds-1)
	embeds := make([]discordEmbed, 0, shown+1)
	for i := range shown {
		embeds = append(embeds, alertEmbed(&alerts[i]))
	}
	if rest := len(alerts) - shown; rest > 0 {
		embeds = append(embeds, discordEmbed{
			Title:       fmt.Sprintf("... and %d more alerts for %s", rest, label),
			Color:       colorYellow,
			Description: "Run `tmctl notifications list` for the full list.",
		})
	}
	return d.post(ctx, embeds)
}

func alertEmbed(alert *AlertPayload) discordEmbed {
	color := colorYellow
	if alert.Price <= alert.ExpectedPrice {
		color = colorGreen
	}
	return discordEmbed{
		Title:       "Price Alert: " + alert.Label,
		URL:         alert.Reference,
		Color:       color,
		Description: alert.Message,
		Fields: []discordEmbedField{
			{Name: "Vendor", Value: alert.Vendor, Inline: true},
			{Name: "Price", Value: FormatPrice(alert.Price), Inline: true},
			{Name: "Expected", Value: FormatPrice(alert.ExpectedPrice), Inline: true},
			{Name: "Type", Value: string(alert.EventType), Inline: true},
		},
		Footer: &discordFooter{Text: "trigger " + alert.TriggerID},
	}
}

func (d *DiscordNotifier) post(ctx context.Context, embeds []discordEmbed) error {
	start := time.Now()
	defer func() {
		metrics.NotificationDuration.WithLabelValues("discord").Observe(time.Since(start).Seconds())
	}()

	resp, err := d.rc.R().
		SetContext(ctx).
		SetBody(discordWebhookPayload{Username: d.username, Embeds: embeds}).
		Post(d.webhookURL)
	if err != nil {
		return fmt.Errorf("sending discord webhook: %w", err)
	}

	switch code := resp.StatusCode(); {
	case code == http.StatusTooManyRequests:
		return fmt.Errorf("discord rate limited (429, retry after %q)", resp.Header().Get("Retry-After"))
	case code < 200 || code >= 300:
		return fmt.Errorf("discord returned %d: %s", code, resp.String())
	}
	return nil
}
