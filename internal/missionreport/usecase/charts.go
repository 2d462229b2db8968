package usecase

import (
	"context"
	"errors"

	"mission-report-srv/internal/missionreport"
	"mission-report-srv/internal/missionreport/repository"
	"mission-report-srv/internal/model"
)

// GetCharts returns the last chart list published for the caller.
func (uc *implUseCase) GetCharts(ctx context.Context, sc model.Scope) (missionreport.ChartsOutput, error) {
	if sc.UserID == "" {
		return missionreport.ChartsOutput{}, missionreport.ErrUserRequired
	}

	entry, err := uc.repo.GetLatestCharts(ctx, sc.UserID)
	if errors.Is(err, repository.ErrCacheMiss) {
		return missionreport.ChartsOutput{}, missionreport.ErrChartsNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "missionreport.usecase.GetCharts: Failed to read charts: %v", err)
		return missionreport.ChartsOutput{}, err
	}

	return missionreport.ChartsOutput{
		Sequence:    entry.Sequence,
		GeneratedAt: entry.GeneratedAt,
		Charts:      entry.Charts,
	}, nil
}
