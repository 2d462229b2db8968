package usecase

import (
	"fmt"
	"sort"
	"strings"

	"mission-report-srv/internal/chart"
	"mission-report-srv/internal/model"
)

// genCategoryChart lists new stories per category code. Only codes that appear in both the
// vocabulary and the result are shown, sorted by code.
func (uc *implUseCase) genCategoryChart(result model.ReportResult, _ model.ReportParameters) chart.Config {
	names := map[string]string{}
	for _, item := range uc.metadata.Categories() {
		names[item.QCode] = item.Name
	}
	if result.NewStories.Categories[categoryResults] > 0 {
		names[categoryResults] = labelResults
	}

	translations := map[string]string{}
	codes := []string{}
	for qcode, name := range names {
		if _, ok := result.NewStories.Categories[qcode]; !ok {
			continue
		}
		codes = append(codes, qcode)
		if qcode == categoryResults {
			translations[qcode] = name
		} else {
			translations[qcode] = fmt.Sprintf("%s (%s)", name, strings.ToUpper(qcode))
		}
	}
	sort.Strings(codes)

	data := make([]int, 0, len(codes))
	for _, qcode := range codes {
		data = append(data, result.NewStories.Categories[qcode])
	}

	stack := 0
	return chart.Config{
		ID:            chart.IDCategories,
		Type:          chart.TypeChart,
		Title:         titleCategories,
		DataLabels:    false,
		TooltipHeader: tooltipHeader,
		TooltipPoint:  "",
		FullHeight:    true,
		Translations: map[string]chart.Translation{
			"category": {Title: labelCategory, Names: translations},
		},
		Axes: []chart.Axis{{
			Type:             "category",
			DefaultChartType: "bar",
			YTitle:           labelCategory,
			XTitle:           labelPublishedStories,
			CategoryField:    "category",
			Categories:       codes,
			StackLabels:      true,
			Series: []chart.Series{{
				Field:     "category",
				Data:      data,
				Stack:     &stack,
				StackType: "normal",
			}},
		}},
	}
}
