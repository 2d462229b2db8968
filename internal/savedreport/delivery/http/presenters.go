package http

import (
	"mission-report-srv/internal/model"
	"mission-report-srv/internal/savedreport"
	"mission-report-srv/pkg/paginator"
	"mission-report-srv/pkg/response"
)

type saveReportReq struct {
	Name        string                 `json:"name" binding:"required"`
	Description string                 `json:"description"`
	Params      model.ReportParameters `json:"params"`
	IsGlobal    bool                   `json:"is_global"`
}

func (r saveReportReq) toCreateInput() savedreport.CreateInput {
	return savedreport.CreateInput{
		Name:        r.Name,
		Description: r.Description,
		Params:      r.Params,
		IsGlobal:    r.IsGlobal,
	}
}

type updateReportReq struct {
	ID string
	saveReportReq
}

func (r updateReportReq) toInput() savedreport.UpdateInput {
	return savedreport.UpdateInput{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Params:      r.Params,
		IsGlobal:    r.IsGlobal,
	}
}

type listReq struct {
	IncludeGlobal bool  `form:"include_global"`
	Page          int   `form:"page"`
	Limit         int64 `form:"limit"`
}

func (r listReq) toInput() savedreport.ListInput {
	return savedreport.ListInput{
		IncludeGlobal: r.IncludeGlobal,
		Paginate: paginator.PaginateQuery{
			Page:  r.Page,
			Limit: r.Limit,
		},
	}
}

type savedReportResp struct {
	ID          string                 `json:"_id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	Report      string                 `json:"report"`
	Params      model.ReportParameters `json:"params"`
	UserID      string                 `json:"user_id"`
	IsGlobal    bool                   `json:"is_global"`
	CreatedAt   response.DateTime      `json:"created_at" swaggertype:"string"`
	UpdatedAt   response.DateTime      `json:"updated_at" swaggertype:"string"`
}

type listResp struct {
	Items     []savedReportResp           `json:"items"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func (h *handler) newSavedReportResp(s model.SavedReport) savedReportResp {
	return savedReportResp{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Report:      s.Report,
		Params:      s.Params,
		UserID:      s.UserID,
		IsGlobal:    s.IsGlobal,
		CreatedAt:   response.DateTime(s.CreatedAt),
		UpdatedAt:   response.DateTime(s.UpdatedAt),
	}
}

func (h *handler) newListResp(o savedreport.ListOutput) listResp {
	out := listResp{
		Items:     make([]savedReportResp, 0, len(o.Reports)),
		Paginator: o.Paginator.ToResponse(),
	}
	for _, s := range o.Reports {
		out.Items = append(out.Items, h.newSavedReportResp(s))
	}
	return out
}
