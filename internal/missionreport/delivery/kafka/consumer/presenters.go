package consumer

import (
	"mission-report-srv/internal/missionreport"
	kafkaDelivery "mission-report-srv/internal/missionreport/delivery/kafka"
	"mission-report-srv/internal/model"
	"mission-report-srv/internal/savedreport"
)

func toGenerateRequestInput(m kafkaDelivery.GenerateRequestedMessage) missionreport.GenerateRequestInput {
	return missionreport.GenerateRequestInput{
		SavedReportID: m.SavedReportID,
		Params:        m.Params,
	}
}

// toScope builds the system scope a background generation runs under.
func toScope(m kafkaDelivery.GenerateRequestedMessage) model.Scope {
	return model.Scope{
		UserID: m.UserID,
		Role:   savedreport.RoleSystem,
	}
}
