package notify

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/slack-go/slack"

	"github.com/donaldgifford/price-trigger-monitor/internal/metrics"
)

// slackMaxAlerts caps the alerts rendered into one Slack message.
const slackMaxAlerts = 20

// SlackNotifier implements Notifier via a Slack incoming webhook.
type SlackNotifier struct {
	webhookURL string
	client     *http.Client
}

// SlackOption configures a SlackNotifier.
type SlackOption func(*SlackNotifier)

// WithSlackHTTPClient sets a custom HTTP client.
func WithSlackHTTPClient(c *http.Client) SlackOption {
	return func(s *SlackNotifier) {
		s.client = c
	}
}

// NewSlackNotifier creates a new SlackNotifier.
func NewSlackNotifier(webhookURL string, opts ...SlackOption) *SlackNotifier {
	s := &SlackNotifier{
		webhookURL: webhookURL,
		client:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SendAlert posts a single alert.
func (s *SlackNotifier) SendAlert(ctx context.Context, alert *AlertPayload) error {
	blocks := []slack.Block{
		slack.NewHeaderBlock(
			slack.NewTextBlockObject(slack.PlainTextType, "Price Alert: "+alert.Label, false, false),
		),
	}
	blocks = append(blocks, alertBlocks(alert)...)

	return s.post(ctx, &slack.WebhookMessage{
		Text:   alertText(alert),
		Blocks: &slack.Blocks{BlockSet: blocks},
	})
}

// SendBatchAlert posts several alerts in one message.
func (s *SlackNotifier) SendBatchAlert(
	ctx context.Context,
	alerts []AlertPayload,
	label string,
) error {
	if len(alerts) == 0 {
		return nil
	}

	blocks := []slack.Block{
		slack.NewHeaderBlock(
			slack.NewTextBlockObject(
				slack.PlainTextType,
				fmt.Sprintf("%d price alerts: %s", len(alerts), label),
				false,
				false,
			),
		),
	}

	limit := min(len(alerts), slackMaxAlerts)
	lines := make([]string, 0, limit)
	for i := range limit {
		blocks = append(blocks, slack.NewDividerBlock())
		blocks = append(blocks, alertBlocks(&alerts[i])...)
		lines = append(lines, alertText(&alerts[i]))
	}
	if len(alerts) > limit {
		blocks = append(blocks, slack.NewContextBlock("",
			slack.NewTextBlockObject(slack.MarkdownType,
				fmt.Sprintf("... and %d more. Check the dashboard for the full list.", len(alerts)-limit),
				false, false),
		))
	}

	return s.post(ctx, &slack.WebhookMessage{
		Text:   strings.Join(lines, "\n"),
		Blocks: &slack.Blocks{BlockSet: blocks},
	})
}

func alertText(alert *AlertPayload) string {
	return fmt.Sprintf("%s: %s at %s (expected %s)",
		alert.Label, alert.Vendor, FormatPrice(alert.Price), FormatPrice(alert.ExpectedPrice))
}

func alertBlocks(alert *AlertPayload) []slack.Block {
	fields := []*slack.TextBlockObject{
		slack.NewTextBlockObject(slack.MarkdownType, "*Vendor*\n"+alert.Vendor, false, false),
		slack.NewTextBlockObject(slack.MarkdownType, "*Price*\n"+FormatPrice(alert.Price), false, false),
		slack.NewTextBlockObject(slack.MarkdownType, "*Expected*\n"+FormatPrice(alert.ExpectedPrice), false, false),
		slack.NewTextBlockObject(slack.MarkdownType, "*Type*\n"+string(alert.EventType), false, false),
	}

	text := alert.Message
	if alert.Reference != "" {
		text = fmt.Sprintf("%s\n<%s|View offer>", text, alert.Reference)
	}
	if text == "" {
		text = alertText(alert)
	}

	return []slack.Block{
		slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, text, false, false),
			fields,
			nil,
		),
	}
}

func (s *SlackNotifier) post(ctx context.Context, msg *slack.WebhookMessage) error {
	start := time.Now()
	defer func() {
		metrics.NotificationDuration.WithLabelValues("slack").Observe(time.Since(start).Seconds())
	}()

	if err := slack.PostWebhookCustomHTTPContext(ctx, s.webhookURL, s.client, msg); err != nil {
		return fmt.Errorf("posting slack webhook: %w", err)
	}
	return nil
}
