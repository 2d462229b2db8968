package chart

import (
	"context"

	"mission-report-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// CreateChart maps a query result onto the ordered list of chart and table configs.
	CreateChart(ctx context.Context, result model.ReportResult, params model.ReportParameters) (List, error)
}
