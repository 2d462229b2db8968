package postgre

import (
	"context"

	"github.com/lib/pq"

	"mission-report-srv/internal/metadata/repository"
	"mission-report-srv/internal/model"
)

const listVocabularyItemsQuery = `SELECT vocabulary_id, qcode, name, is_active
FROM vocabulary_items
WHERE vocabulary_id = ANY($1) AND (NOT $2 OR is_active)
ORDER BY vocabulary_id, sort_order, qcode`

// ListVocabularyItems - Load the items of the requested vocabularies keyed by vocabulary id.
func (r *implRepository) ListVocabularyItems(ctx context.Context, opts repository.ListVocabularyItemsOptions) (map[string][]model.VocabularyItem, error) {
	rows, err := r.db.QueryContext(ctx, listVocabularyItemsQuery, pq.Array(opts.VocabularyIDs), opts.ActiveOnly)
	if err != nil {
		r.l.Errorf(ctx, "metadata.repository.postgre.ListVocabularyItems: Failed to query: %v", err)
		return nil, repository.ErrVocabularyQuery
	}
	defer rows.Close()

	out := make(map[string][]model.VocabularyItem, len(opts.VocabularyIDs))
	for _, id := range opts.VocabularyIDs {
		out[id] = []model.VocabularyItem{}
	}
	for rows.Next() {
		var (
			vocabularyID string
			item         model.VocabularyItem
		)
		if err := rows.Scan(&vocabularyID, &item.QCode, &item.Name, &item.IsActive); err != nil {
			r.l.Errorf(ctx, "metadata.repository.postgre.ListVocabularyItems: Failed to scan: %v", err)
			return nil, repository.ErrVocabularyQuery
		}
		out[vocabularyID] = append(out[vocabularyID], item)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "metadata.repository.postgre.ListVocabularyItems: Rows failed: %v", err)
		return nil, repository.ErrVocabularyQuery
	}

	return out, nil
}
