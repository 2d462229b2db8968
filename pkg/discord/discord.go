package discord

import (
	"context"
	"fmt"
	"time"

	pkghttp "mission-report-srv/pkg/http"
)

func newHTTPClient(cfg Config) pkghttp.IClient {
	return pkghttp.NewClient(pkghttp.ClientConfig{
		Timeout:   cfg.Timeout,
		Retries:   cfg.RetryCount,
		RetryWait: cfg.RetryDelay,
	})
}

// SendMessage posts plain content to the webhook.
func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	if len(content) > maxContentLength {
		content = content[:maxContentLength-3] + "..."
	}
	return d.send(ctx, WebhookPayload{
		Content:  content,
		Username: d.config.DefaultUsername,
	})
}

// SendEmbed posts a single embed built from options.
func (d *discordImpl) SendEmbed(ctx context.Context, options MessageOptions) error {
	ts := options.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	return d.send(ctx, WebhookPayload{
		Username: d.config.DefaultUsername,
		Embeds: []Embed{{
			Title:       options.Title,
			Description: options.Description,
			Color:       colorFor(options.Type),
			Timestamp:   ts.Format(time.RFC3339),
			Fields:      options.Fields,
		}},
	})
}

// SendError posts an error embed.
func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	fields := []EmbedField{}
	if err != nil {
		fields = append(fields, EmbedField{Name: "Error", Value: err.Error()})
	}
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeError,
		Title:       title,
		Description: description,
		Fields:      fields,
	})
}

// ReportBug posts an unexpected failure.
func (d *discordImpl) ReportBug(ctx context.Context, message string) error {
	return d.SendMessage(ctx, message)
}

// GetWebhookURL returns the webhook endpoint.
func (d *discordImpl) GetWebhookURL() string {
	return fmt.Sprintf("%s/%s/%s", d.base, d.webhook.ID, d.webhook.Token)
}

func (d *discordImpl) send(ctx context.Context, payload WebhookPayload) error {
	_, status, err := d.client.Post(ctx, d.GetWebhookURL(), payload, nil)
	if err == nil && status >= 300 {
		err = fmt.Errorf("discord: unexpected status %d", status)
	}
	if err != nil {
		d.l.Warnf(ctx, "pkg.discord.send: giving up: %v", err)
		return err
	}
	return nil
}

func colorFor(t MessageType) int {
	switch t {
	case MessageTypeError:
		return colorError
	case MessageTypeWarning:
		return colorWarning
	default:
		return colorInfo
	}
}
