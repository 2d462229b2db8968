package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mission-report-srv/internal/chart"
	"mission-report-srv/internal/missionreport"
	"mission-report-srv/internal/missionreport/repository"
	"mission-report-srv/internal/model"
	"mission-report-srv/pkg/log"
)

func newTestUseCase(exec missionreport.QueryExecutor, cache *fakeCache, saved map[string]model.SavedReport) *implUseCase {
	uc := New(
		log.NewNop(),
		fakeChart{},
		&fakeSavedReports{reports: saved},
		exec,
		cache,
		nil,
		[]missionreport.Display{NewChartStoreDisplay(cache, time.Hour)},
		[]missionreport.Notifier{NewLogNotifier(log.NewNop())},
		Config{},
	)
	return uc.(*implUseCase)
}

func overnightReport() model.SavedReport {
	r := model.DefaultReport()
	r.ID = "r1"
	r.Name = "Overnight"
	r.Params.Dates = model.DatesFilter{Filter: model.DateFilterRelative, Relative: 12}
	return r
}

func TestSession_RequiresUser(t *testing.T) {
	uc := newTestUseCase(resultOf(0), newFakeCache(), nil)

	_, err := uc.GetParameters(context.Background(), model.Scope{})
	assert.ErrorIs(t, err, missionreport.ErrUserRequired)
}

func TestSessionsAreIsolated(t *testing.T) {
	uc := newTestUseCase(resultOf(0), newFakeCache(), nil)
	ctx := context.Background()

	params := model.DefaultParameters()
	params.Size = 10
	_, err := uc.UpdateParameters(ctx, testScope, missionreport.UpdateParametersInput{Params: params})
	require.NoError(t, err)

	other, err := uc.GetParameters(ctx, model.Scope{UserID: "u2"})
	require.NoError(t, err)
	assert.Equal(t, model.DefaultSize, other.Report.Params.Size)
	assert.True(t, other.IsDirty)
}

func TestGetParameters_ReturnsCopy(t *testing.T) {
	uc := newTestUseCase(resultOf(0), newFakeCache(), nil)
	ctx := context.Background()

	out, err := uc.GetParameters(ctx, testScope)
	require.NoError(t, err)
	out.Report.Params.MustNot[model.MustNotCategories] = append(out.Report.Params.MustNot[model.MustNotCategories], "x")
	out.Report.Params.Reports[model.SectionKills] = false

	again, err := uc.GetParameters(ctx, testScope)
	require.NoError(t, err)
	assert.Empty(t, again.Report.Params.MustNot[model.MustNotCategories])
	assert.True(t, again.Report.Params.ReportEnabled(model.SectionKills))
}

func TestGetParameters_CancelledContext(t *testing.T) {
	uc := newTestUseCase(resultOf(0), newFakeCache(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.GetParameters(ctx, testScope)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSession_EvictedWhenIdle(t *testing.T) {
	uc := newTestUseCase(resultOf(0), newFakeCache(), nil)
	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	uc.config.Now = func() time.Time { return now }
	uc.config.SessionIdleTTL = time.Hour
	ctx := context.Background()

	params := model.DefaultParameters()
	params.Size = 10
	_, err := uc.UpdateParameters(ctx, testScope, missionreport.UpdateParametersInput{Params: params})
	require.NoError(t, err)

	now = now.Add(30 * time.Minute)
	out, err := uc.GetParameters(ctx, testScope)
	require.NoError(t, err)
	assert.Equal(t, 10, out.Report.Params.Size)

	now = now.Add(2 * time.Hour)
	_, err = uc.GetParameters(ctx, model.Scope{UserID: "u2"})
	require.NoError(t, err)
	uc.mu.Lock()
	_, kept := uc.sessions[testScope.UserID]
	uc.mu.Unlock()
	assert.False(t, kept)

	out, err = uc.GetParameters(ctx, testScope)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultSize, out.Report.Params.Size)
}

func TestUpdateParameters_Invalid(t *testing.T) {
	uc := newTestUseCase(resultOf(0), newFakeCache(), nil)

	params := model.DefaultParameters()
	params.Dates = model.DatesFilter{Filter: model.DateFilterRelative}
	_, err := uc.UpdateParameters(context.Background(), testScope, missionreport.UpdateParametersInput{Params: params})
	assert.ErrorIs(t, err, missionreport.ErrInvalidParameters)
}

func TestSelectReport_OnlyAppliesChangedSelection(t *testing.T) {
	uc := newTestUseCase(resultOf(0), newFakeCache(), map[string]model.SavedReport{"r1": overnightReport()})
	ctx := context.Background()

	out, err := uc.SelectReport(ctx, testScope, missionreport.SelectReportInput{SavedReportID: "r1"})
	require.NoError(t, err)
	assert.Equal(t, "r1", out.Report.ID)
	assert.Equal(t, 12, out.Report.Params.Dates.Relative)

	edited := out.Report.Params.Clone()
	edited.Size = 50
	_, err = uc.UpdateParameters(ctx, testScope, missionreport.UpdateParametersInput{Params: edited})
	require.NoError(t, err)

	// same selection again keeps the edits
	out, err = uc.SelectReport(ctx, testScope, missionreport.SelectReportInput{SavedReportID: "r1"})
	require.NoError(t, err)
	assert.Equal(t, 50, out.Report.Params.Size)

	out, err = uc.SelectReport(ctx, testScope, missionreport.SelectReportInput{})
	require.NoError(t, err)
	assert.Equal(t, model.DefaultReport(), out.Report)

	_, err = uc.SelectReport(ctx, testScope, missionreport.SelectReportInput{SavedReportID: "missing"})
	assert.ErrorIs(t, err, missionreport.ErrSavedReportNotFound)
}

func TestResetParameters(t *testing.T) {
	uc := newTestUseCase(resultOf(0), newFakeCache(), map[string]model.SavedReport{"r1": overnightReport()})
	ctx := context.Background()

	_, err := uc.SelectReport(ctx, testScope, missionreport.SelectReportInput{SavedReportID: "r1"})
	require.NoError(t, err)

	out, err := uc.ResetParameters(ctx, testScope)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultReport(), out.Report)

	// the selection was forgotten, so selecting r1 again applies it
	out, err = uc.SelectReport(ctx, testScope, missionreport.SelectReportInput{SavedReportID: "r1"})
	require.NoError(t, err)
	assert.Equal(t, "r1", out.Report.ID)
}

func TestGenerateAndGetCharts(t *testing.T) {
	cache := newFakeCache()
	uc := newTestUseCase(resultOf(4), cache, nil)
	ctx := context.Background()

	_, err := uc.GetCharts(ctx, testScope)
	assert.ErrorIs(t, err, missionreport.ErrChartsNotFound)

	out, err := uc.Generate(ctx, testScope)
	require.NoError(t, err)
	assert.Equal(t, missionreport.StatusAccepted, out.Status)

	var charts missionreport.ChartsOutput
	require.Eventually(t, func() bool {
		charts, err = uc.GetCharts(ctx, testScope)
		return err == nil
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, out.Sequence, charts.Sequence)
	assert.Equal(t, "4", charts.Charts.Charts[0].Title)
}

func TestGenerateRequested_AppliesSelectionThenParams(t *testing.T) {
	seen := make(chan model.ReportParameters, 1)
	exec := &fakeExecutor{run: func(ctx context.Context, params model.ReportParameters) (model.ReportResult, error) {
		seen <- params
		return model.ReportResult{}, nil
	}}
	uc := newTestUseCase(exec, newFakeCache(), map[string]model.SavedReport{"r1": overnightReport()})

	params := overnightReport().Params
	params.Reports[model.SectionKills] = false
	_, err := uc.GenerateRequested(context.Background(), testScope, missionreport.GenerateRequestInput{
		SavedReportID: "r1",
		Params:        &params,
	})
	require.NoError(t, err)

	select {
	case got := <-seen:
		assert.Equal(t, 12, got.Dates.Relative)
		assert.False(t, got.ReportEnabled(model.SectionKills))
	case <-time.After(5 * time.Second):
		t.Fatal("query was not run")
	}
}

func TestChartStoreDisplay(t *testing.T) {
	cache := newFakeCache()
	d := NewChartStoreDisplay(cache, 0)
	at := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

	ctx := missionreport.WithGeneration(context.Background(), missionreport.GenerationInfo{Sequence: 7, GeneratedAt: at})
	require.NoError(t, d.Publish(ctx, testScope, chart.List{MarginBottom: true}))

	entry, err := cache.GetLatestCharts(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, repository.ChartsEntry{UserID: "u1", Sequence: 7, GeneratedAt: at, Charts: chart.List{MarginBottom: true}}, entry)
}
