package repository

import (
	"context"

	"mission-report-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	Create(ctx context.Context, opts CreateOptions) (model.SavedReport, error)
	GetByID(ctx context.Context, id string) (model.SavedReport, error)
	List(ctx context.Context, opts ListOptions) ([]model.SavedReport, error)
	Count(ctx context.Context, opts ListOptions) (int64, error)
	Update(ctx context.Context, opts UpdateOptions) (model.SavedReport, error)
	Delete(ctx context.Context, id string) error
}
