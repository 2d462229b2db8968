package missionreport

import (
	"context"
	"time"

	"mission-report-srv/internal/chart"
	"mission-report-srv/internal/model"
)

const (
	StatusAccepted = "ACCEPTED"
)

type UpdateParametersInput struct {
	Params model.ReportParameters
}

type SelectReportInput struct {
	// SavedReportID selects a saved report. Empty falls back to the default report.
	SavedReportID string
}

type GenerateRequestInput struct {
	SavedReportID string
	Params        *model.ReportParameters
}

type ReportOutput struct {
	Report  model.SavedReport
	IsDirty bool
}

type GenerateOutput struct {
	Sequence uint64
	Status   string
}

type ChartsOutput struct {
	Sequence    uint64
	GeneratedAt time.Time
	Charts      chart.List
}

type ExportOutput struct {
	DownloadURL string
	ExpiresAt   time.Time
	FileName    string
	FileSize    int64
}

// Generation identifies one Controller.Generate call. Done is closed once it has finished,
// whether it published, failed or was superseded.
type Generation struct {
	Sequence uint64
	Done     <-chan struct{}
}

// GenerationInfo is attached to the context handed to Display.Publish.
type GenerationInfo struct {
	Sequence    uint64
	GeneratedAt time.Time
}

type generationCtxKey struct{}

func WithGeneration(ctx context.Context, info GenerationInfo) context.Context {
	return context.WithValue(ctx, generationCtxKey{}, info)
}

func GenerationFromContext(ctx context.Context) (GenerationInfo, bool) {
	info, ok := ctx.Value(generationCtxKey{}).(GenerationInfo)
	return info, ok
}
