package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"mission-report-srv/internal/metadata/repository"
	"mission-report-srv/internal/model"
	"mission-report-srv/pkg/redis"
)

// GetVocabularies - Read the cached vocabularies. Returns ErrCacheMiss when nothing is cached.
func (r *implRepository) GetVocabularies(ctx context.Context) (map[string][]model.VocabularyItem, error) {
	raw, err := r.client.Get(ctx, vocabulariesKey)
	if errors.Is(err, redis.ErrNil) {
		return nil, repository.ErrCacheMiss
	}
	if err != nil {
		r.l.Warnf(ctx, "metadata.repository.redis.GetVocabularies: Failed to get: %v", err)
		return nil, err
	}

	var out map[string][]model.VocabularyItem
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		r.l.Warnf(ctx, "metadata.repository.redis.GetVocabularies: Corrupt cache entry: %v", err)
		return nil, repository.ErrCacheMiss
	}
	return out, nil
}

// SetVocabularies - Cache vocabularies for ttl.
func (r *implRepository) SetVocabularies(ctx context.Context, vocabularies map[string][]model.VocabularyItem, ttl time.Duration) error {
	b, err := json.Marshal(vocabularies)
	if err != nil {
		return repository.ErrVocabularyEncoded
	}
	return r.client.Set(ctx, vocabulariesKey, b, ttl)
}

func (r *implRepository) DeleteVocabularies(ctx context.Context) error {
	return r.client.Delete(ctx, vocabulariesKey)
}
