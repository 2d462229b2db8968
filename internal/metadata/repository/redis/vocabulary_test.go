package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mission-report-srv/internal/metadata/repository"
	"mission-report-srv/internal/model"
	"mission-report-srv/pkg/log"
	"mission-report-srv/pkg/redis"
)

type memRedis struct {
	redis.IRedis
	data map[string]string
}

func (m *memRedis) Get(_ context.Context, key string) (string, error) {
	v, ok := m.data[key]
	if !ok {
		return "", redis.ErrNil
	}
	return v, nil
}

func (m *memRedis) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	m.data[key] = string(value.([]byte))
	return nil
}

func (m *memRedis) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func TestVocabularies(t *testing.T) {
	client := &memRedis{data: map[string]string{}}
	repo := New(client, log.NewNop())
	ctx := context.Background()

	_, err := repo.GetVocabularies(ctx)
	assert.ErrorIs(t, err, repository.ErrCacheMiss)

	vocab := map[string][]model.VocabularyItem{
		"categories": {{QCode: "a", Name: "Domestic", IsActive: true}},
	}
	require.NoError(t, repo.SetVocabularies(ctx, vocab, time.Minute))

	got, err := repo.GetVocabularies(ctx)
	require.NoError(t, err)
	assert.Equal(t, vocab, got)

	require.NoError(t, repo.DeleteVocabularies(ctx))
	_, err = repo.GetVocabularies(ctx)
	assert.ErrorIs(t, err, repository.ErrCacheMiss)
}

func TestVocabularies_CorruptEntryIsMiss(t *testing.T) {
	client := &memRedis{data: map[string]string{vocabulariesKey: "[]x"}}
	repo := New(client, log.NewNop())

	_, err := repo.GetVocabularies(context.Background())
	assert.ErrorIs(t, err, repository.ErrCacheMiss)
}
