package discord

import (
	"errors"
	"time"
)

const (
	defaultWebhookBase = "https://discord.com/api/webhooks"

	colorInfo    = 0x3498DB
	colorWarning = 0xF1C40F
	colorError   = 0xE74C3C

	// maxContentLength is the Discord limit for the content field.
	maxContentLength = 2000
)

var errWebhookRequired = errors.New("discord: webhook id and token are required")

// DefaultConfig returns the default Discord configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:         10 * time.Second,
		RetryCount:      2,
		RetryDelay:      500 * time.Millisecond,
		DefaultUsername: "mission-report-srv",
	}
}
