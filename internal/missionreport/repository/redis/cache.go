package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"mission-report-srv/internal/missionreport/repository"
	"mission-report-srv/internal/model"
	"mission-report-srv/pkg/redis"
)

// GetResult - Read a cached query result. Returns ErrCacheMiss when absent or unreadable.
func (r *implRepository) GetResult(ctx context.Context, key string) (model.ReportResult, error) {
	raw, err := r.client.Get(ctx, resultKeyPrefix+key)
	if errors.Is(err, redis.ErrNil) {
		return model.ReportResult{}, repository.ErrCacheMiss
	}
	if err != nil {
		r.l.Warnf(ctx, "missionreport.repository.redis.GetResult: Failed to get: %v", err)
		return model.ReportResult{}, err
	}

	result, err := model.DecodeReportResult([]byte(raw))
	if err != nil {
		r.l.Warnf(ctx, "missionreport.repository.redis.GetResult: Corrupt cache entry: %v", err)
		return model.ReportResult{}, repository.ErrCacheMiss
	}
	return result, nil
}

func (r *implRepository) SetResult(ctx context.Context, key string, result model.ReportResult, ttl time.Duration) error {
	b, err := json.Marshal(result)
	if err != nil {
		return repository.ErrEncodeFailed
	}
	return r.client.Set(ctx, resultKeyPrefix+key, b, ttl)
}

// GetLatestCharts - Read the last chart list published for userID.
func (r *implRepository) GetLatestCharts(ctx context.Context, userID string) (repository.ChartsEntry, error) {
	raw, err := r.client.Get(ctx, chartsKeyPrefix+userID)
	if errors.Is(err, redis.ErrNil) {
		return repository.ChartsEntry{}, repository.ErrCacheMiss
	}
	if err != nil {
		r.l.Errorf(ctx, "missionreport.repository.redis.GetLatestCharts: Failed to get: %v", err)
		return repository.ChartsEntry{}, err
	}

	var entry repository.ChartsEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		r.l.Warnf(ctx, "missionreport.repository.redis.GetLatestCharts: Corrupt entry: %v", err)
		return repository.ChartsEntry{}, repository.ErrCacheMiss
	}
	return entry, nil
}

func (r *implRepository) SetLatestCharts(ctx context.Context, entry repository.ChartsEntry, ttl time.Duration) error {
	b, err := json.Marshal(entry)
	if err != nil {
		return repository.ErrEncodeFailed
	}
	return r.client.Set(ctx, chartsKeyPrefix+entry.UserID, b, ttl)
}
