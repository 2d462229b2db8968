package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mission-report-srv/internal/chart"
	"mission-report-srv/internal/missionreport"
	"mission-report-srv/internal/model"
	"mission-report-srv/internal/savedreport"
	"mission-report-srv/pkg/log"
	"mission-report-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUseCase struct {
	missionreport.UseCase

	scope     model.Scope
	update    missionreport.UpdateParametersInput
	selected  missionreport.SelectReportInput
	requested missionreport.GenerateRequestInput
	err       error
}

func (f *fakeUseCase) GetParameters(ctx context.Context, sc model.Scope) (missionreport.ReportOutput, error) {
	f.scope = sc
	return missionreport.ReportOutput{Report: model.DefaultReport()}, f.err
}

func (f *fakeUseCase) UpdateParameters(ctx context.Context, sc model.Scope, input missionreport.UpdateParametersInput) (missionreport.ReportOutput, error) {
	f.scope = sc
	f.update = input
	if f.err != nil {
		return missionreport.ReportOutput{}, f.err
	}
	r := model.DefaultReport()
	r.Params = input.Params
	return missionreport.ReportOutput{Report: r, IsDirty: true}, nil
}

func (f *fakeUseCase) SelectReport(ctx context.Context, sc model.Scope, input missionreport.SelectReportInput) (missionreport.ReportOutput, error) {
	f.selected = input
	return missionreport.ReportOutput{}, f.err
}

func (f *fakeUseCase) Generate(ctx context.Context, sc model.Scope) (missionreport.GenerateOutput, error) {
	f.scope = sc
	return missionreport.GenerateOutput{Sequence: 3, Status: missionreport.StatusAccepted}, f.err
}

func (f *fakeUseCase) GenerateRequested(ctx context.Context, sc model.Scope, input missionreport.GenerateRequestInput) (missionreport.GenerateOutput, error) {
	f.scope = sc
	f.requested = input
	return missionreport.GenerateOutput{Sequence: 1, Status: missionreport.StatusAccepted}, f.err
}

func (f *fakeUseCase) GetCharts(ctx context.Context, sc model.Scope) (missionreport.ChartsOutput, error) {
	if f.err != nil {
		return missionreport.ChartsOutput{}, f.err
	}
	return missionreport.ChartsOutput{
		Sequence:    2,
		GeneratedAt: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		Charts:      chart.List{Charts: []chart.Config{{ID: chart.IDSummary}}},
	}, nil
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func newTestRouter(uc missionreport.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &handler{l: log.NewNop(), uc: uc}

	r := gin.New()
	withUser := func(c *gin.Context) {
		ctx := scope.SetScopeToContext(c.Request.Context(), model.Scope{UserID: "u1", Role: "USER"})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
	api := r.Group("/api/v1/mission-report", withUser)
	api.GET("/params", h.GetParameters)
	api.PUT("/params", h.UpdateParameters)
	api.PUT("/selection", h.SelectReport)
	api.POST("/generate", h.Generate)
	api.GET("/charts", h.GetCharts)
	r.POST("/internal/v1/mission-report/generate", h.GenerateInternal)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetParameters(t *testing.T) {
	uc := &fakeUseCase{}
	w := do(newTestRouter(uc), http.MethodGet, "/api/v1/mission-report/params", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", uc.scope.UserID)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var resp reportResp
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, model.ReportName, resp.Report)
	assert.False(t, resp.IsDirty)
}

func TestUpdateParameters(t *testing.T) {
	uc := &fakeUseCase{}
	w := do(newTestRouter(uc), http.MethodPut, "/api/v1/mission-report/params", `{"params":{"size":7}}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 7, uc.update.Params.Size)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var resp reportResp
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.True(t, resp.IsDirty)
}

func TestUpdateParameters_WrongBody(t *testing.T) {
	w := do(newTestRouter(&fakeUseCase{}), http.MethodPut, "/api/v1/mission-report/params", `{`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateParameters_Invalid(t *testing.T) {
	uc := &fakeUseCase{err: missionreport.ErrInvalidParameters}
	w := do(newTestRouter(uc), http.MethodPut, "/api/v1/mission-report/params", `{"params":{"size":0}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateParameters_FieldErrors(t *testing.T) {
	p := model.DefaultParameters()
	p.Size = 0
	uc := &fakeUseCase{err: fmt.Errorf("%w: %w", missionreport.ErrInvalidParameters, p.Validate())}
	w := do(newTestRouter(uc), http.MethodPut, "/api/v1/mission-report/params", `{"params":{"size":0}}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var body struct {
		Errors []struct {
			Field string `json:"field"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "size", body.Errors[0].Field)
}

func TestSelectReport_NotFound(t *testing.T) {
	uc := &fakeUseCase{err: missionreport.ErrSavedReportNotFound}
	w := do(newTestRouter(uc), http.MethodPut, "/api/v1/mission-report/selection", `{"saved_report_id":"missing"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "missing", uc.selected.SavedReportID)
}

func TestGenerate(t *testing.T) {
	w := do(newTestRouter(&fakeUseCase{}), http.MethodPost, "/api/v1/mission-report/generate", "")

	require.Equal(t, http.StatusAccepted, w.Code)
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var resp generateResp
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, uint64(3), resp.Sequence)
	assert.Equal(t, missionreport.StatusAccepted, resp.Status)
}

func TestGetCharts(t *testing.T) {
	w := do(newTestRouter(&fakeUseCase{}), http.MethodGet, "/api/v1/mission-report/charts", "")

	require.Equal(t, http.StatusOK, w.Code)
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var resp struct {
		Sequence uint64     `json:"sequence"`
		Charts   chart.List `json:"charts"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, uint64(2), resp.Sequence)
	require.Len(t, resp.Charts.Charts, 1)
}

func TestGetCharts_NotFound(t *testing.T) {
	w := do(newTestRouter(&fakeUseCase{err: missionreport.ErrChartsNotFound}), http.MethodGet, "/api/v1/mission-report/charts", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGenerateInternal(t *testing.T) {
	uc := &fakeUseCase{}
	w := do(newTestRouter(uc), http.MethodPost, "/internal/v1/mission-report/generate", `{"user_id":"u9","saved_report_id":"r1"}`)

	require.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "u9", uc.scope.UserID)
	assert.Equal(t, savedreport.RoleSystem, uc.scope.Role)
	assert.Equal(t, "r1", uc.requested.SavedReportID)
	assert.Nil(t, uc.requested.Params)
}

func TestGenerateInternal_MissingUser(t *testing.T) {
	w := do(newTestRouter(&fakeUseCase{}), http.MethodPost, "/internal/v1/mission-report/generate", `{"saved_report_id":"r1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
