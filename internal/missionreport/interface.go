package missionreport

import (
	"context"

	"mission-report-srv/internal/chart"
	"mission-report-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	ResetParameters(ctx context.Context, sc model.Scope) (ReportOutput, error)
	GetParameters(ctx context.Context, sc model.Scope) (ReportOutput, error)
	UpdateParameters(ctx context.Context, sc model.Scope, input UpdateParametersInput) (ReportOutput, error)
	SelectReport(ctx context.Context, sc model.Scope, input SelectReportInput) (ReportOutput, error)
	Generate(ctx context.Context, sc model.Scope) (GenerateOutput, error)
	// GenerateRequested applies an optional selection and parameter set, then generates.
	// Used by scheduled and internal callers.
	GenerateRequested(ctx context.Context, sc model.Scope, input GenerateRequestInput) (GenerateOutput, error)
	GetCharts(ctx context.Context, sc model.Scope) (ChartsOutput, error)
	ExportCharts(ctx context.Context, sc model.Scope) (ExportOutput, error)
}

// Controller owns the parameter state of one editing session and drives generation.
// Implementations are safe for concurrent use.
type Controller interface {
	InitializeDefaults()
	// OnExternalReportSelected replaces the current report with a copy of report, or with the
	// baseline when report is nil or unsaved.
	OnExternalReportSelected(report *model.SavedReport)
	// Generate starts one asynchronous generation from a snapshot of the current parameters.
	Generate(ctx context.Context) Generation
	GetCurrentParameters(ctx context.Context) (model.ReportParameters, error)
	UpdateParameters(params model.ReportParameters)
	CurrentReport() model.SavedReport
	IsDirty() bool
}

// QueryExecutor runs the mission report query for params.
type QueryExecutor interface {
	Run(ctx context.Context, params model.ReportParameters) (model.ReportResult, error)
}

// Display receives every chart list a generation publishes.
// GenerationFromContext returns the sequence and time of the publishing generation.
type Display interface {
	Publish(ctx context.Context, sc model.Scope, list chart.List) error
}

// Notifier receives generation failures.
type Notifier interface {
	Error(ctx context.Context, sc model.Scope, err error) error
}
