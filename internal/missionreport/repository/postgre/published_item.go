package postgre

import (
	"context"
	"database/sql"
	"time"

	"mission-report-srv/internal/missionreport/repository"
	"mission-report-srv/internal/model"
)

// Aggregate - Count the published items of the window and list corrections, kills and takedowns.
func (r *implRepository) Aggregate(ctx context.Context, opts repository.AggregateOptions) (model.ReportResult, error) {
	w := buildWhere(opts)
	var result model.ReportResult

	q, args := buildCountsQuery(w)
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(
		&result.TotalStories,
		&result.NewStories.Count,
		&result.Rewrites,
		&result.SMSAlerts,
	); err != nil {
		r.l.Errorf(ctx, "missionreport.repository.postgre.Aggregate: Failed to count: %v", err)
		return model.ReportResult{}, repository.ErrAggregateFailed
	}

	categories, err := r.countCategories(ctx, w, opts.ResultGenres)
	if err != nil {
		return model.ReportResult{}, err
	}
	result.NewStories.Categories = categories

	if err := r.listRecords(ctx, w, opts.Size, &result); err != nil {
		return model.ReportResult{}, err
	}

	return result, nil
}

func (r *implRepository) countCategories(ctx context.Context, w *whereClause, resultGenres []string) (map[string]int, error) {
	q, args := buildCategoriesQuery(w, resultGenres)
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		r.l.Errorf(ctx, "missionreport.repository.postgre.countCategories: Failed to query: %v", err)
		return nil, repository.ErrAggregateFailed
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var (
			qcode string
			count int
		)
		if err := rows.Scan(&qcode, &count); err != nil {
			r.l.Errorf(ctx, "missionreport.repository.postgre.countCategories: Failed to scan: %v", err)
			return nil, repository.ErrAggregateFailed
		}
		if qcode == "" {
			continue
		}
		out[qcode] += count
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "missionreport.repository.postgre.countCategories: Rows failed: %v", err)
		return nil, repository.ErrAggregateFailed
	}
	return out, nil
}

func (r *implRepository) listRecords(ctx context.Context, w *whereClause, size int, result *model.ReportResult) error {
	q, args := buildRecordsQuery(w)
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		r.l.Errorf(ctx, "missionreport.repository.postgre.listRecords: Failed to query: %v", err)
		return repository.ErrAggregateFailed
	}
	defer rows.Close()

	result.Corrections = []model.StoryRecord{}
	result.Kills = []model.StoryRecord{}
	result.Takedowns = []model.StoryRecord{}

	for rows.Next() {
		var (
			state                              string
			versionCreated, updated            sql.NullTime
			slugline, takeKey, ednote, reasons sql.NullString
		)
		if err := rows.Scan(&state, &versionCreated, &updated, &slugline, &takeKey, &ednote, &reasons); err != nil {
			r.l.Errorf(ctx, "missionreport.repository.postgre.listRecords: Failed to scan: %v", err)
			return repository.ErrAggregateFailed
		}

		record := model.StoryRecord{
			VersionCreated: nullTime(versionCreated),
			Updated:        nullTime(updated),
			Slugline:       slugline.String,
			AnpaTakeKey:    takeKey.String,
			Ednote:         ednote.String,
			Reasons:        reasons.String,
		}

		var list *[]model.StoryRecord
		switch state {
		case stateCorrected:
			list = &result.Corrections
		case stateKilled:
			list = &result.Kills
		case stateRecalled:
			list = &result.Takedowns
		default:
			continue
		}
		if size > 0 && len(*list) >= size {
			continue
		}
		*list = append(*list, record)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "missionreport.repository.postgre.listRecords: Rows failed: %v", err)
		return repository.ErrAggregateFailed
	}
	return nil
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
