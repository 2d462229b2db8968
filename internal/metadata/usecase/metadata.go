package usecase

import (
	"context"
	"errors"
	"fmt"

	"mission-report-srv/internal/metadata"
	"mission-report-srv/internal/metadata/repository"
	"mission-report-srv/internal/model"
)

const (
	flightInitialize = "initialize"
	flightRefresh    = "refresh"
)

// Initialize loads vocabularies once, or again when the refresh interval has passed.
// A failed reload keeps serving the previously loaded data.
func (uc *implUseCase) Initialize(ctx context.Context) error {
	if uc.fresh() {
		return nil
	}

	// The flight outlives any single caller: a cancelled caller must not fail the others.
	ch := uc.group.DoChan(flightInitialize, func() (interface{}, error) {
		if uc.fresh() {
			return nil, nil
		}
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.config.LoadTimeout)
		defer cancel()
		return nil, uc.load(loadCtx, true)
	})

	var err error
	select {
	case <-ctx.Done():
		return ctx.Err()
	case res := <-ch:
		err = res.Err
	}
	if err != nil && uc.loaded() {
		uc.l.Warnf(ctx, "metadata.usecase.Initialize: Reload failed, serving stale vocabularies: %v", err)
		return nil
	}
	return err
}

// Refresh reloads vocabularies from the database and rewrites the cache.
func (uc *implUseCase) Refresh(ctx context.Context) error {
	_, err, _ := uc.group.Do(flightRefresh, func() (interface{}, error) {
		return nil, uc.load(ctx, false)
	})
	return err
}

func (uc *implUseCase) Categories() []model.VocabularyItem {
	return uc.Vocabulary(model.VocabularyCategories)
}

func (uc *implUseCase) Vocabulary(id string) []model.VocabularyItem {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	items := uc.vocabularies[id]
	return append([]model.VocabularyItem(nil), items...)
}

func (uc *implUseCase) load(ctx context.Context, useCache bool) error {
	if useCache && uc.cache != nil {
		cached, err := uc.cache.GetVocabularies(ctx)
		if err == nil && uc.complete(cached) {
			uc.store(cached)
			return nil
		}
		if err != nil && !errors.Is(err, repository.ErrCacheMiss) {
			uc.l.Warnf(ctx, "metadata.usecase.load: Cache read failed: %v", err)
		}
	}

	vocabularies, err := uc.repo.ListVocabularyItems(ctx, repository.ListVocabularyItemsOptions{
		VocabularyIDs: uc.config.VocabularyIDs,
		ActiveOnly:    true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "metadata.usecase.load: Failed to list vocabularies: %v", err)
		return fmt.Errorf("%w: %v", metadata.ErrLoadFailed, err)
	}
	uc.store(vocabularies)

	if uc.cache != nil {
		if err := uc.cache.SetVocabularies(ctx, vocabularies, uc.config.CacheTTL); err != nil {
			uc.l.Warnf(ctx, "metadata.usecase.load: Cache write failed: %v", err)
		}
	}
	return nil
}

func (uc *implUseCase) complete(vocabularies map[string][]model.VocabularyItem) bool {
	for _, id := range uc.config.VocabularyIDs {
		if _, ok := vocabularies[id]; !ok {
			return false
		}
	}
	return true
}

func (uc *implUseCase) store(vocabularies map[string][]model.VocabularyItem) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.vocabularies = vocabularies
	uc.loadedAt = uc.config.Now()
}

func (uc *implUseCase) loaded() bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.vocabularies != nil
}

func (uc *implUseCase) fresh() bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	if uc.vocabularies == nil {
		return false
	}
	if uc.config.RefreshInterval <= 0 {
		return true
	}
	return uc.config.Now().Sub(uc.loadedAt) < uc.config.RefreshInterval
}
