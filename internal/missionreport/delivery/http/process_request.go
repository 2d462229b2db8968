package http

import (
	"mission-report-srv/internal/model"
	"mission-report-srv/internal/savedreport"
	"mission-report-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processScope(c *gin.Context) model.Scope {
	return scope.GetScopeFromContext(c.Request.Context())
}

func (h *handler) processUpdateParametersRequest(c *gin.Context) (updateParametersReq, model.Scope, error) {
	var req updateParametersReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "missionreport.delivery.http.processUpdateParametersRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, errWrongBody
	}

	return req, scope.GetScopeFromContext(ctx), nil
}

func (h *handler) processSelectReportRequest(c *gin.Context) (selectReportReq, model.Scope, error) {
	var req selectReportReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "missionreport.delivery.http.processSelectReportRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, errWrongBody
	}

	return req, scope.GetScopeFromContext(ctx), nil
}

// processInternalGenerateRequest builds a system scope acting for the requested user.
func (h *handler) processInternalGenerateRequest(c *gin.Context) (internalGenerateReq, model.Scope, error) {
	var req internalGenerateReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "missionreport.delivery.http.processInternalGenerateRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, errWrongBody
	}

	sc := model.Scope{
		UserID: req.UserID,
		Role:   savedreport.RoleSystem,
	}
	return req, sc, nil
}
