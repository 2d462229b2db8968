package postgre

import (
	"encoding/json"
	"fmt"
	"strings"

	"mission-report-srv/internal/model"
	"mission-report-srv/internal/savedreport/repository"
)

const savedReportColumns = `id, name, description, report, params, user_id, is_global, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

// scanSavedReport - Scan one saved_reports row. The params column is JSONB.
func scanSavedReport(row rowScanner) (model.SavedReport, error) {
	var (
		s      model.SavedReport
		params []byte
	)
	if err := row.Scan(&s.ID, &s.Name, &s.Description, &s.Report, &params, &s.UserID, &s.IsGlobal, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return model.SavedReport{}, err
	}
	if len(params) > 0 {
		if err := json.Unmarshal(params, &s.Params); err != nil {
			return model.SavedReport{}, fmt.Errorf("decode params: %w", err)
		}
	}
	if s.Params.Dates.Filter == "" {
		s.Params.Dates.Filter = model.DateFilterYesterday
	}
	if s.Params.Size <= 0 {
		s.Params.Size = model.DefaultSize
	}
	return s, nil
}

// buildListFilter - Build the visibility filter shared by List and Count.
func buildListFilter(opts repository.ListOptions) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if opts.Report != "" {
		args = append(args, opts.Report)
		conds = append(conds, fmt.Sprintf("report = $%d", len(args)))
	}
	if opts.UserID != "" {
		args = append(args, opts.UserID)
		if opts.IncludeGlobal {
			conds = append(conds, fmt.Sprintf("(user_id = $%d OR is_global)", len(args)))
		} else {
			conds = append(conds, fmt.Sprintf("user_id = $%d", len(args)))
		}
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// buildListQuery - Build the filtered, paginated List query.
func buildListQuery(opts repository.ListOptions) (string, []any) {
	where, args := buildListFilter(opts)
	q := "SELECT " + savedReportColumns + " FROM saved_reports" + where + " ORDER BY name, created_at"
	if opts.Limit > 0 {
		args = append(args, opts.Limit)
		q += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if opts.Offset > 0 {
		args = append(args, opts.Offset)
		q += fmt.Sprintf(" OFFSET $%d", len(args))
	}
	return q, args
}

func buildCountQuery(opts repository.ListOptions) (string, []any) {
	where, args := buildListFilter(opts)
	return "SELECT COUNT(*) FROM saved_reports" + where, args
}
