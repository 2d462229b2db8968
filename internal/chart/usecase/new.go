package usecase

import (
	"time"

	"mission-report-srv/internal/chart"
	"mission-report-srv/internal/metadata"
	"mission-report-srv/pkg/log"
)

// Config holds configuration for chart building.
type Config struct {
	// Location renders table timestamps and date subtitles. Defaults to UTC.
	Location *time.Location
	// Now is the clock used for date subtitles. Defaults to time.Now.
	Now func() time.Time
}

type implUseCase struct {
	l        log.Logger
	metadata metadata.UseCase
	config   Config
}

// New creates a new chart UseCase implementation.
func New(l log.Logger, metadataUC metadata.UseCase, cfg Config) chart.UseCase {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &implUseCase{
		l:        l,
		metadata: metadataUC,
		config:   cfg,
	}
}
