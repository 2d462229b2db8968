package repository

import (
	"context"
	"time"

	"mission-report-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	ListVocabularyItems(ctx context.Context, opts ListVocabularyItemsOptions) (map[string][]model.VocabularyItem, error)
}

//go:generate mockery --name RedisRepository
type RedisRepository interface {
	GetVocabularies(ctx context.Context) (map[string][]model.VocabularyItem, error)
	SetVocabularies(ctx context.Context, vocabularies map[string][]model.VocabularyItem, ttl time.Duration) error
	DeleteVocabularies(ctx context.Context) error
}
