package kafka

import (
	"time"

	"mission-report-srv/internal/chart"
	"mission-report-srv/internal/model"
)

// GenerateRequestedMessage asks the service to run a generation for a user.
// Params override the saved report when both are present.
type GenerateRequestedMessage struct {
	UserID        string                  `json:"user_id"`
	SavedReportID string                  `json:"saved_report_id,omitempty"`
	Params        *model.ReportParameters `json:"params,omitempty"`
	RequestedAt   time.Time               `json:"requested_at"`
}

// ChartsPublishedMessage carries a chart list produced by the latest generation.
type ChartsPublishedMessage struct {
	UserID      string     `json:"user_id"`
	Sequence    uint64     `json:"sequence"`
	GeneratedAt time.Time  `json:"generated_at"`
	Charts      chart.List `json:"charts"`
}
