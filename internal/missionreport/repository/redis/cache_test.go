package redis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mission-report-srv/internal/chart"
	"mission-report-srv/internal/missionreport/repository"
	"mission-report-srv/internal/model"
	"mission-report-srv/pkg/log"
	"mission-report-srv/pkg/redis"
)

type memRedis struct {
	redis.IRedis
	data map[string]string
	ttls map[string]time.Duration
	err  error
}

func newMemRedis() *memRedis {
	return &memRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (m *memRedis) Get(_ context.Context, key string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	v, ok := m.data[key]
	if !ok {
		return "", redis.ErrNil
	}
	return v, nil
}

func (m *memRedis) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	switch v := value.(type) {
	case []byte:
		m.data[key] = string(v)
	default:
		m.data[key] = fmt.Sprint(v)
	}
	m.ttls[key] = ttl
	return nil
}

func TestResultCache(t *testing.T) {
	client := newMemRedis()
	repo := New(client, log.NewNop())
	ctx := context.Background()

	_, err := repo.GetResult(ctx, "k")
	assert.ErrorIs(t, err, repository.ErrCacheMiss)

	want := model.ReportResult{TotalStories: 4, Rewrites: 1, SMSAlerts: 2}
	require.NoError(t, repo.SetResult(ctx, "k", want, time.Minute))
	assert.Equal(t, time.Minute, client.ttls[resultKeyPrefix+"k"])

	got, err := repo.GetResult(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResultCache_CorruptEntryIsMiss(t *testing.T) {
	client := newMemRedis()
	client.data[resultKeyPrefix+"k"] = "{not json"
	repo := New(client, log.NewNop())

	_, err := repo.GetResult(context.Background(), "k")
	assert.ErrorIs(t, err, repository.ErrCacheMiss)
}

func TestResultCache_BackendError(t *testing.T) {
	client := newMemRedis()
	client.err = assert.AnError
	repo := New(client, log.NewNop())

	_, err := repo.GetResult(context.Background(), "k")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestLatestCharts(t *testing.T) {
	client := newMemRedis()
	repo := New(client, log.NewNop())
	ctx := context.Background()

	_, err := repo.GetLatestCharts(ctx, "u1")
	assert.ErrorIs(t, err, repository.ErrCacheMiss)

	entry := repository.ChartsEntry{
		UserID:      "u1",
		Sequence:    3,
		GeneratedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		Charts:      chart.List{MultiChart: true, Charts: []chart.Config{}},
	}
	require.NoError(t, repo.SetLatestCharts(ctx, entry, time.Hour))
	_, stored := client.data[chartsKeyPrefix+"u1"]
	assert.True(t, stored)

	got, err := repo.GetLatestCharts(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, entry, got)
}
