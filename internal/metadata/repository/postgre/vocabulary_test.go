package postgre

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mission-report-srv/internal/metadata/repository"
	"mission-report-srv/internal/model"
	"mission-report-srv/pkg/log"
)

func TestListVocabularyItems(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM vocabulary_items")).
		WithArgs(sqlmock.AnyArg(), true).
		WillReturnRows(sqlmock.NewRows([]string{"vocabulary_id", "qcode", "name", "is_active"}).
			AddRow("categories", "a", "Australian General News", true).
			AddRow("categories", "s", "Sport", true))

	repo := New(db, log.NewNop())
	got, err := repo.ListVocabularyItems(context.Background(), repository.ListVocabularyItemsOptions{
		VocabularyIDs: []string{model.VocabularyCategories, "genre"},
		ActiveOnly:    true,
	})
	require.NoError(t, err)

	assert.Equal(t, []model.VocabularyItem{
		{QCode: "a", Name: "Australian General News", IsActive: true},
		{QCode: "s", Name: "Sport", IsActive: true},
	}, got[model.VocabularyCategories])
	assert.Empty(t, got["genre"])
	assert.NotNil(t, got["genre"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListVocabularyItems_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM vocabulary_items")).WillReturnError(errors.New("boom"))

	repo := New(db, log.NewNop())
	_, err = repo.ListVocabularyItems(context.Background(), repository.ListVocabularyItemsOptions{
		VocabularyIDs: []string{model.VocabularyCategories},
	})
	assert.ErrorIs(t, err, repository.ErrVocabularyQuery)
}
