package http

import (
	"mission-report-srv/internal/model"
	"mission-report-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processCreateRequest(c *gin.Context) (saveReportReq, model.Scope, error) {
	var req saveReportReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "savedreport.delivery.http.processCreateRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, errWrongBody
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processUpdateRequest(c *gin.Context) (updateReportReq, model.Scope, error) {
	req := updateReportReq{ID: c.Param("id")}

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req.saveReportReq); err != nil {
		h.l.Errorf(ctx, "savedreport.delivery.http.processUpdateRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, errWrongBody
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processListRequest(c *gin.Context) (listReq, model.Scope, error) {
	var req listReq

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "savedreport.delivery.http.processListRequest: ShouldBindQuery failed: %v", err)
		return req, model.Scope{}, errWrongBody
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processIDRequest(c *gin.Context) (string, model.Scope) {
	return c.Param("id"), scope.GetScopeFromContext(c.Request.Context())
}
