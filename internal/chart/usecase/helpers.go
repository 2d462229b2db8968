package usecase

import (
	"fmt"

	"mission-report-srv/internal/model"
)

// formatTimestamp renders the record's sent time as DD/MM/YYYY HH:mm. Records without a
// timestamp render as an empty cell.
func (uc *implUseCase) formatTimestamp(r model.StoryRecord) string {
	ts := r.Timestamp()
	if ts == nil {
		return ""
	}
	return ts.In(uc.config.Location).Format(timestampLayout)
}

func (uc *implUseCase) subtitleForDates(dates model.DatesFilter) string {
	switch dates.Filter {
	case model.DateFilterYesterday:
		return uc.config.Now().In(uc.config.Location).AddDate(0, 0, -1).Format(subtitleLayout)
	case model.DateFilterRelative:
		if dates.Relative == 1 {
			return "Last hour"
		}
		return fmt.Sprintf("Last %d hours", dates.Relative)
	default:
		return ""
	}
}
