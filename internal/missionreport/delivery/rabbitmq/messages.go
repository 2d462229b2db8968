package rabbitmq

import "time"

const (
	ExchangeGenerationErrors = "mission_report.generation.errors"
)

// GenerationErrorMessage is broadcast when a generation fails.
type GenerationErrorMessage struct {
	UserID     string    `json:"user_id"`
	Sequence   uint64    `json:"sequence,omitempty"`
	Error      string    `json:"error"`
	OccurredAt time.Time `json:"occurred_at"`
}
