package savedreport

import (
	"context"

	"mission-report-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.SavedReport, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.SavedReport, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.SavedReport, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}
