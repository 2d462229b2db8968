package savedreport

import (
	"mission-report-srv/internal/model"
	"mission-report-srv/pkg/paginator"
)

const (
	RoleAdmin = "ADMIN"
	// RoleSystem is the role of generations triggered by other services and tooling.
	RoleSystem = "system"
)

type CreateInput struct {
	Name        string
	Description string
	Params      model.ReportParameters
	IsGlobal    bool
}

type ListInput struct {
	IncludeGlobal bool
	Paginate      paginator.PaginateQuery
}

type ListOutput struct {
	Reports   []model.SavedReport
	Paginator paginator.Paginator
}

type UpdateInput struct {
	ID          string
	Name        string
	Description string
	Params      model.ReportParameters
	IsGlobal    bool
}
