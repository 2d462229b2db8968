package metadata

import (
	"context"

	"mission-report-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Initialize loads the controlled vocabularies. It is idempotent and safe to call from
	// concurrent generations; callers share a single in-flight load.
	Initialize(ctx context.Context) error
	// Refresh reloads the vocabularies from the database, bypassing the cache.
	Refresh(ctx context.Context) error
	// Categories returns the loaded category vocabulary.
	Categories() []model.VocabularyItem
	// Vocabulary returns the loaded items of the vocabulary id.
	Vocabulary(id string) []model.VocabularyItem
}
