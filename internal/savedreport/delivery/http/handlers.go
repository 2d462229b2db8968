package http

import (
	pkgErrors "mission-report-srv/pkg/errors"
	"mission-report-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Save a report
// @Description Persist the given mission report parameters under a name
// @Tags SavedReport
// @Accept json
// @Produce json
// @Param body body saveReportReq true "Saved report"
// @Success 200 {object} savedReportResp
// @Failure 400 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Router /api/v1/mission-report/saved-reports [post]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processCreateRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Create(ctx, sc, req.toCreateInput())
	if err != nil {
		h.l.Errorf(ctx, "savedreport.delivery.http.Create: usecase Create failed: %v", err)
		if fields := pkgErrors.ValidationErrors(err); fields != nil {
			response.ValidationFailed(c, fields)
			return
		}
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newSavedReportResp(o))
}

// @Summary List saved reports
// @Tags SavedReport
// @Produce json
// @Param include_global query bool false "Include reports shared globally"
// @Param page query int false "Page number, starting at 1"
// @Param limit query int false "Page size"
// @Success 200 {object} listResp
// @Router /api/v1/mission-report/saved-reports [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "savedreport.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListResp(o))
}

// @Summary Get a saved report
// @Tags SavedReport
// @Produce json
// @Param id path string true "Saved report ID"
// @Success 200 {object} savedReportResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/mission-report/saved-reports/{id} [get]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()
	id, sc := h.processIDRequest(c)

	o, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "savedreport.delivery.http.Detail: usecase Detail failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newSavedReportResp(o))
}

// @Summary Update a saved report
// @Tags SavedReport
// @Accept json
// @Produce json
// @Param id path string true "Saved report ID"
// @Param body body saveReportReq true "Saved report"
// @Success 200 {object} savedReportResp
// @Failure 400 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/mission-report/saved-reports/{id} [put]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processUpdateRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "savedreport.delivery.http.Update: usecase Update failed: %v", err)
		if fields := pkgErrors.ValidationErrors(err); fields != nil {
			response.ValidationFailed(c, fields)
			return
		}
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newSavedReportResp(o))
}

// @Summary Delete a saved report
// @Tags SavedReport
// @Produce json
// @Param id path string true "Saved report ID"
// @Success 200 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/mission-report/saved-reports/{id} [delete]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id, sc := h.processIDRequest(c)

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "savedreport.delivery.http.Delete: usecase Delete failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}
