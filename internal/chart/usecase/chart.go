package usecase

import (
	"context"
	"fmt"

	"mission-report-srv/internal/chart"
	"mission-report-srv/internal/model"
)

type sectionBuilder struct {
	name  string
	build func(uc *implUseCase, result model.ReportResult, params model.ReportParameters) chart.Config
}

// sections is the fixed display order.
var sections = []sectionBuilder{
	{model.SectionSummary, (*implUseCase).genSummaryChart},
	{model.SectionCategories, (*implUseCase).genCategoryChart},
	{model.SectionCorrections, (*implUseCase).genCorrectionsTable},
	{model.SectionKills, (*implUseCase).genKillsTable},
	{model.SectionTakedowns, (*implUseCase).genTakedownsTable},
	{model.SectionSMSAlerts, (*implUseCase).genSMSAlertsTable},
	{model.SectionUpdates, (*implUseCase).genUpdatesTable},
}

// CreateChart builds the config list for result. An empty result short-circuits to a single
// empty-state table without touching the metadata provider.
func (uc *implUseCase) CreateChart(ctx context.Context, result model.ReportResult, params model.ReportParameters) (chart.List, error) {
	if result.TotalStories < 1 {
		return chart.List{
			Charts: []chart.Config{{
				ID:    chart.IDEmpty,
				Type:  chart.TypeTable,
				Title: titleNoStories,
				Rows:  [][]string{},
			}},
		}, nil
	}

	if err := uc.metadata.Initialize(ctx); err != nil {
		uc.l.Errorf(ctx, "chart.usecase.CreateChart: Failed to initialize metadata: %v", err)
		return chart.List{}, fmt.Errorf("%w: %v", chart.ErrMetadataUnavailable, err)
	}

	configs := make([]chart.Config, 0, len(sections))
	for _, s := range sections {
		if !params.ReportEnabled(s.name) {
			continue
		}
		configs = append(configs, s.build(uc, result, params))
	}

	return chart.List{
		Charts:       configs,
		MultiChart:   false,
		MarginBottom: true,
	}, nil
}
