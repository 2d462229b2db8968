package usecase

import (
	"mission-report-srv/internal/chart"
	"mission-report-srv/internal/model"
)

var summaryCategories = []string{
	"total_stories",
	"new_stories",
	"results",
	"rewrites",
	"corrections",
	"kills",
	"takedowns",
}

func (uc *implUseCase) genSummaryChart(result model.ReportResult, params model.ReportParameters) chart.Config {
	data := []int{
		result.TotalStories,
		result.NewStories.Count,
		result.NewStories.Categories[categoryResults],
		result.Rewrites,
		len(result.Corrections),
		len(result.Kills),
		len(result.Takedowns),
	}

	return chart.Config{
		ID:            chart.IDSummary,
		Type:          chart.TypeChart,
		Title:         titleSummary,
		Subtitle:      uc.subtitleForDates(params.Dates),
		ChartType:     chartTypeHigh,
		Height:        summaryHeight,
		DataLabels:    false,
		TooltipHeader: tooltipHeader,
		TooltipPoint:  "",
		Translations: map[string]chart.Translation{
			"summary": {
				Title: labelSummary,
				Names: map[string]string{
					"total_stories": "Total Stories",
					"results":       labelResults,
					"new_stories":   "New Stories",
					"rewrites":      "Updates",
					"corrections":   "Corrections",
					"kills":         "Kills",
					"takedowns":     "Takedowns",
				},
			},
		},
		Axes: []chart.Axis{{
			Type:             "category",
			DefaultChartType: "line",
			YTitle:           labelPublishedStories,
			CategoryField:    "summary",
			Categories:       append([]string(nil), summaryCategories...),
			Series: []chart.Series{{
				Field: "summary",
				Data:  data,
			}},
		}},
	}
}
