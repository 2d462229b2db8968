package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"mission-report-srv/internal/model"
	"mission-report-srv/internal/savedreport/repository"
)

const (
	insertSavedReportQuery = `INSERT INTO saved_reports (id, name, description, report, params, user_id, is_global, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
RETURNING ` + savedReportColumns

	getSavedReportQuery = `SELECT ` + savedReportColumns + ` FROM saved_reports WHERE id = $1`

	updateSavedReportQuery = `UPDATE saved_reports
SET name = $2, description = $3, params = $4, is_global = $5, updated_at = NOW()
WHERE id = $1
RETURNING ` + savedReportColumns

	deleteSavedReportQuery = `DELETE FROM saved_reports WHERE id = $1`
)

// Create - Insert a saved report.
func (r *implRepository) Create(ctx context.Context, opts repository.CreateOptions) (model.SavedReport, error) {
	params, err := json.Marshal(opts.Params)
	if err != nil {
		return model.SavedReport{}, repository.ErrCreateFailed
	}

	row := r.db.QueryRowContext(ctx, insertSavedReportQuery,
		opts.ID, opts.Name, opts.Description, opts.Report, params, opts.UserID, opts.IsGlobal)
	s, err := scanSavedReport(row)
	if err != nil {
		r.l.Errorf(ctx, "savedreport.repository.postgre.Create: Failed to insert: %v", err)
		return model.SavedReport{}, repository.ErrCreateFailed
	}
	return s, nil
}

// GetByID - Get a saved report by primary key.
func (r *implRepository) GetByID(ctx context.Context, id string) (model.SavedReport, error) {
	s, err := scanSavedReport(r.db.QueryRowContext(ctx, getSavedReportQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.SavedReport{}, repository.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "savedreport.repository.postgre.GetByID: Failed to get: %v", err)
		return model.SavedReport{}, repository.ErrQueryFailed
	}
	return s, nil
}

// List - List the saved reports visible with opts.
func (r *implRepository) List(ctx context.Context, opts repository.ListOptions) ([]model.SavedReport, error) {
	q, args := buildListQuery(opts)
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		r.l.Errorf(ctx, "savedreport.repository.postgre.List: Failed to query: %v", err)
		return nil, repository.ErrQueryFailed
	}
	defer rows.Close()

	out := []model.SavedReport{}
	for rows.Next() {
		s, err := scanSavedReport(rows)
		if err != nil {
			r.l.Errorf(ctx, "savedreport.repository.postgre.List: Failed to scan: %v", err)
			return nil, repository.ErrQueryFailed
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "savedreport.repository.postgre.List: Rows failed: %v", err)
		return nil, repository.ErrQueryFailed
	}
	return out, nil
}

// Count - Count the saved reports visible with opts, ignoring pagination.
func (r *implRepository) Count(ctx context.Context, opts repository.ListOptions) (int64, error) {
	q, args := buildCountQuery(opts)
	var total int64
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "savedreport.repository.postgre.Count: Failed to count: %v", err)
		return 0, repository.ErrQueryFailed
	}
	return total, nil
}

// Update - Replace the editable fields of a saved report.
func (r *implRepository) Update(ctx context.Context, opts repository.UpdateOptions) (model.SavedReport, error) {
	params, err := json.Marshal(opts.Params)
	if err != nil {
		return model.SavedReport{}, repository.ErrUpdateFailed
	}

	row := r.db.QueryRowContext(ctx, updateSavedReportQuery, opts.ID, opts.Name, opts.Description, params, opts.IsGlobal)
	s, err := scanSavedReport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.SavedReport{}, repository.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "savedreport.repository.postgre.Update: Failed to update: %v", err)
		return model.SavedReport{}, repository.ErrUpdateFailed
	}
	return s, nil
}

func (r *implRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteSavedReportQuery, id)
	if err != nil {
		r.l.Errorf(ctx, "savedreport.repository.postgre.Delete: Failed to delete: %v", err)
		return repository.ErrDeleteFailed
	}
	n, err := res.RowsAffected()
	if err != nil {
		return repository.ErrDeleteFailed
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
