package usecase

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"mission-report-srv/internal/metadata"
	"mission-report-srv/internal/metadata/repository"
	"mission-report-srv/internal/model"
	"mission-report-srv/pkg/log"
)

const (
	defaultCacheTTL    = time.Hour
	defaultLoadTimeout = 30 * time.Second
)

// Config holds configuration for the metadata provider.
type Config struct {
	// VocabularyIDs are loaded on Initialize. Defaults to the category vocabulary.
	VocabularyIDs []string
	CacheTTL      time.Duration
	// RefreshInterval makes Initialize reload once the loaded data is older. Zero loads once.
	RefreshInterval time.Duration
	// LoadTimeout bounds a shared load, which does not follow any caller's cancellation.
	LoadTimeout time.Duration
	Now         func() time.Time
}

type implUseCase struct {
	l      log.Logger
	repo   repository.PostgresRepository
	cache  repository.RedisRepository
	config Config
	group  singleflight.Group

	mu           sync.RWMutex
	vocabularies map[string][]model.VocabularyItem
	loadedAt     time.Time
}

// New creates a new metadata UseCase implementation. cache may be nil.
func New(l log.Logger, repo repository.PostgresRepository, cache repository.RedisRepository, cfg Config) metadata.UseCase {
	if len(cfg.VocabularyIDs) == 0 {
		cfg.VocabularyIDs = []string{model.VocabularyCategories}
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	if cfg.LoadTimeout <= 0 {
		cfg.LoadTimeout = defaultLoadTimeout
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &implUseCase{
		l:      l,
		repo:   repo,
		cache:  cache,
		config: cfg,
	}
}
