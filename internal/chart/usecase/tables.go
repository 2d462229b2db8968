package usecase

import (
	"fmt"

	"mission-report-srv/internal/chart"
	"mission-report-srv/internal/model"
)

func (uc *implUseCase) genCorrectionsTable(result model.ReportResult, _ model.ReportParameters) chart.Config {
	rows := make([][]string, 0, len(result.Corrections))
	for _, r := range result.Corrections {
		rows = append(rows, []string{uc.formatTimestamp(r), r.Slugline, r.AnpaTakeKey, r.Ednote})
	}
	return newTable(chart.IDCorrections, headersStory,
		fmt.Sprintf("There were %d corrections issued", len(result.Corrections)), rows)
}

func (uc *implUseCase) genKillsTable(result model.ReportResult, _ model.ReportParameters) chart.Config {
	return newTable(chart.IDKills, headersReasons,
		fmt.Sprintf("There were %d kills issued", len(result.Kills)), uc.reasonRows(result.Kills))
}

func (uc *implUseCase) genTakedownsTable(result model.ReportResult, _ model.ReportParameters) chart.Config {
	return newTable(chart.IDTakedowns, headersReasons,
		fmt.Sprintf("There were %d takedowns issued", len(result.Takedowns)), uc.reasonRows(result.Takedowns))
}

// Updates and SMS alerts only carry counts; their tables never list rows.
func (uc *implUseCase) genUpdatesTable(result model.ReportResult, _ model.ReportParameters) chart.Config {
	return newTable(chart.IDUpdates, headersStory,
		fmt.Sprintf("There were %d updates issued", result.Rewrites), [][]string{})
}

func (uc *implUseCase) genSMSAlertsTable(result model.ReportResult, _ model.ReportParameters) chart.Config {
	return newTable(chart.IDSMSAlerts, headersSMS,
		fmt.Sprintf("There were %d SMS alerts issued", result.SMSAlerts), [][]string{})
}

func (uc *implUseCase) reasonRows(records []model.StoryRecord) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{uc.formatTimestamp(r), r.Slugline, r.Reasons})
	}
	return rows
}

func newTable(id string, headers []string, title string, rows [][]string) chart.Config {
	return chart.Config{
		ID:      id,
		Type:    chart.TypeTable,
		Chart:   &chart.ChartOptions{Type: tableChartType},
		Headers: append([]string(nil), headers...),
		Title:   title,
		Rows:    rows,
	}
}
