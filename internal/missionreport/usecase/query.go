package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"mission-report-srv/internal/missionreport"
	"mission-report-srv/internal/missionreport/repository"
	"mission-report-srv/internal/model"
	"mission-report-srv/pkg/log"
)

// Genres whose new stories are counted under the synthetic results category.
var defaultResultGenres = []string{"Results (sport)", "Fields", "Comment", "Betting"}

// QueryConfig holds configuration for the query executor.
type QueryConfig struct {
	// Location decides where "yesterday" starts and ends.
	Location     *time.Location
	CacheTTL     time.Duration
	ResultGenres []string
	Now          func() time.Time
}

type implQueryExecutor struct {
	l      log.Logger
	repo   repository.PostgresRepository
	cache  repository.RedisRepository
	config QueryConfig
}

// NewQueryExecutor runs report queries against Postgres, caching results in Redis.
// cache may be nil.
func NewQueryExecutor(l log.Logger, repo repository.PostgresRepository, cache repository.RedisRepository, cfg QueryConfig) missionreport.QueryExecutor {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if len(cfg.ResultGenres) == 0 {
		cfg.ResultGenres = defaultResultGenres
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &implQueryExecutor{
		l:      l,
		repo:   repo,
		cache:  cache,
		config: cfg,
	}
}

func (e *implQueryExecutor) Run(ctx context.Context, params model.ReportParameters) (model.ReportResult, error) {
	opts := e.buildOptions(params)
	key := cacheKey(opts)

	if e.cache != nil && e.config.CacheTTL > 0 {
		result, err := e.cache.GetResult(ctx, key)
		if err == nil {
			resultCacheTotal.WithLabelValues("hit").Inc()
			return result, nil
		}
		if !errors.Is(err, repository.ErrCacheMiss) {
			e.l.Warnf(ctx, "missionreport.usecase.query.Run: Result cache read failed: %v", err)
		}
		resultCacheTotal.WithLabelValues("miss").Inc()
	}

	start := time.Now()
	result, err := e.repo.Aggregate(ctx, opts)
	queryDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return model.ReportResult{}, err
	}

	if e.cache != nil && e.config.CacheTTL > 0 {
		if err := e.cache.SetResult(ctx, key, result, e.config.CacheTTL); err != nil {
			e.l.Warnf(ctx, "missionreport.usecase.query.Run: Result cache write failed: %v", err)
		}
	}
	return result, nil
}

// buildOptions resolves the date filter into an absolute window.
func (e *implQueryExecutor) buildOptions(params model.ReportParameters) repository.AggregateOptions {
	now := e.config.Now().In(e.config.Location)

	var from, to time.Time
	switch params.Dates.Filter {
	case model.DateFilterRelative:
		to = now.Truncate(time.Minute)
		hours := params.Dates.Relative
		if hours <= 0 {
			hours = 24
		}
		from = to.Add(-time.Duration(hours) * time.Hour)
	default:
		to = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, e.config.Location)
		from = to.AddDate(0, 0, -1)
	}

	repos := params.EnabledRepos()
	if len(repos) == 0 {
		repos = []string{model.RepoPublished}
	}

	return repository.AggregateOptions{
		From:                   from,
		To:                     to,
		Repos:                  repos,
		ExcludeCategories:      params.MustNot[model.MustNotCategories],
		ExcludeGenres:          params.MustNot[model.MustNotGenre],
		ExcludeIngestProviders: params.MustNot[model.MustNotIngestProviders],
		ExcludeStages:          params.MustNot[model.MustNotStages],
		ResultGenres:           e.config.ResultGenres,
		Size:                   params.Size,
	}
}

func cacheKey(opts repository.AggregateOptions) string {
	b, _ := json.Marshal(opts)
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
