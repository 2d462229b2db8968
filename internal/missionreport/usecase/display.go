package usecase

import (
	"context"
	"time"

	"mission-report-srv/internal/chart"
	"mission-report-srv/internal/missionreport"
	"mission-report-srv/internal/missionreport/repository"
	"mission-report-srv/internal/model"
)

type chartStoreDisplay struct {
	repo repository.RedisRepository
	ttl  time.Duration
}

// NewChartStoreDisplay keeps the last published chart list of every user, read back by GetCharts.
func NewChartStoreDisplay(repo repository.RedisRepository, ttl time.Duration) missionreport.Display {
	if ttl <= 0 {
		ttl = defaultChartsTTL
	}
	return &chartStoreDisplay{repo: repo, ttl: ttl}
}

func (d *chartStoreDisplay) Publish(ctx context.Context, sc model.Scope, list chart.List) error {
	info, _ := missionreport.GenerationFromContext(ctx)
	return d.repo.SetLatestCharts(ctx, repository.ChartsEntry{
		UserID:      sc.UserID,
		Sequence:    info.Sequence,
		GeneratedAt: info.GeneratedAt,
		Charts:      list,
	}, d.ttl)
}
