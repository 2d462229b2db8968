package repository

import "mission-report-srv/internal/model"

type CreateOptions struct {
	ID          string
	Name        string
	Description string
	Report      string
	Params      model.ReportParameters
	UserID      string
	IsGlobal    bool
}

type ListOptions struct {
	Report        string
	UserID        string
	IncludeGlobal bool
	Limit         int64
	Offset        int64
}

type UpdateOptions struct {
	ID          string
	Name        string
	Description string
	Params      model.ReportParameters
	IsGlobal    bool
}
