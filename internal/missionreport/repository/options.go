package repository

import (
	"time"

	"mission-report-srv/internal/chart"
)

// AggregateOptions is a resolved query window plus filters. From is inclusive, To exclusive.
type AggregateOptions struct {
	From  time.Time
	To    time.Time
	Repos []string

	ExcludeCategories      []string
	ExcludeGenres          []string
	ExcludeIngestProviders []string
	ExcludeStages          []string

	// Genres counted as the synthetic "results" category.
	ResultGenres []string
	// Size caps each record list. Zero means no cap.
	Size int
}

type ChartsEntry struct {
	UserID      string     `json:"user_id"`
	Sequence    uint64     `json:"sequence"`
	GeneratedAt time.Time  `json:"generated_at"`
	Charts      chart.List `json:"charts"`
}
