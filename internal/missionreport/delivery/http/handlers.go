package http

import (
	pkgErrors "mission-report-srv/pkg/errors"
	"mission-report-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Reset report parameters
// @Description Restore the default mission report parameters for the current session
// @Tags MissionReport
// @Produce json
// @Success 200 {object} reportResp
// @Router /api/v1/mission-report/params/reset [post]
func (h *handler) ResetParameters(c *gin.Context) {
	ctx := c.Request.Context()
	sc := h.processScope(c)

	o, err := h.uc.ResetParameters(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "missionreport.delivery.http.ResetParameters: usecase ResetParameters failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newReportResp(o))
}

// @Summary Get report parameters
// @Tags MissionReport
// @Produce json
// @Success 200 {object} reportResp
// @Router /api/v1/mission-report/params [get]
func (h *handler) GetParameters(c *gin.Context) {
	ctx := c.Request.Context()
	sc := h.processScope(c)

	o, err := h.uc.GetParameters(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "missionreport.delivery.http.GetParameters: usecase GetParameters failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newReportResp(o))
}

// @Summary Update report parameters
// @Tags MissionReport
// @Accept json
// @Produce json
// @Param body body updateParametersReq true "Parameters"
// @Success 200 {object} reportResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/mission-report/params [put]
func (h *handler) UpdateParameters(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processUpdateParametersRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.UpdateParameters(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "missionreport.delivery.http.UpdateParameters: usecase UpdateParameters failed: %v", err)
		if fields := pkgErrors.ValidationErrors(err); fields != nil {
			response.ValidationFailed(c, fields)
			return
		}
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newReportResp(o))
}

// @Summary Select a saved report
// @Description Load a saved report into the session. An empty id selects the default report.
// @Tags MissionReport
// @Accept json
// @Produce json
// @Param body body selectReportReq true "Selection"
// @Success 200 {object} reportResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/mission-report/selection [put]
func (h *handler) SelectReport(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processSelectReportRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.SelectReport(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "missionreport.delivery.http.SelectReport: usecase SelectReport failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newReportResp(o))
}

// @Summary Generate the mission report
// @Description Start an asynchronous generation. Poll /charts for the result.
// @Tags MissionReport
// @Produce json
// @Success 202 {object} generateResp
// @Router /api/v1/mission-report/generate [post]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()
	sc := h.processScope(c)

	o, err := h.uc.Generate(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "missionreport.delivery.http.Generate: usecase Generate failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.Accepted(c, h.newGenerateResp(o))
}

// @Summary Get the latest charts
// @Tags MissionReport
// @Produce json
// @Success 200 {object} chartsResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/mission-report/charts [get]
func (h *handler) GetCharts(c *gin.Context) {
	ctx := c.Request.Context()
	sc := h.processScope(c)

	o, err := h.uc.GetCharts(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "missionreport.delivery.http.GetCharts: usecase GetCharts failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newChartsResp(o))
}

// @Summary Export the latest charts
// @Description Write the latest charts to an XLSX workbook and return a download URL
// @Tags MissionReport
// @Produce json
// @Success 200 {object} exportResp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/mission-report/charts/export [post]
func (h *handler) ExportCharts(c *gin.Context) {
	ctx := c.Request.Context()
	sc := h.processScope(c)

	o, err := h.uc.ExportCharts(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "missionreport.delivery.http.ExportCharts: usecase ExportCharts failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newExportResp(o))
}

// @Summary Generate on behalf of a user
// @Tags Internal
// @Accept json
// @Produce json
// @Param body body internalGenerateReq true "Generation request"
// @Success 202 {object} generateResp
// @Router /internal/v1/mission-report/generate [post]
func (h *handler) GenerateInternal(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processInternalGenerateRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.GenerateRequested(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "missionreport.delivery.http.GenerateInternal: usecase GenerateRequested failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.Accepted(c, h.newGenerateResp(o))
}
