package repository

import (
	"context"
	"time"

	"mission-report-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	// Aggregate computes the mission report over the published items matching opts.
	Aggregate(ctx context.Context, opts AggregateOptions) (model.ReportResult, error)
}

//go:generate mockery --name RedisRepository
type RedisRepository interface {
	GetResult(ctx context.Context, key string) (model.ReportResult, error)
	SetResult(ctx context.Context, key string, result model.ReportResult, ttl time.Duration) error
	GetLatestCharts(ctx context.Context, userID string) (ChartsEntry, error)
	SetLatestCharts(ctx context.Context, entry ChartsEntry, ttl time.Duration) error
}
