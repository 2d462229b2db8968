package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"mission-report-srv/internal/chart"
	"mission-report-srv/internal/missionreport"
	kafkaDelivery "mission-report-srv/internal/missionreport/delivery/kafka"
	"mission-report-srv/internal/model"
)

func (p *implProducer) Publish(ctx context.Context, sc model.Scope, list chart.List) error {
	info, _ := missionreport.GenerationFromContext(ctx)

	msg := kafkaDelivery.ChartsPublishedMessage{
		UserID:      sc.UserID,
		Sequence:    info.Sequence,
		GeneratedAt: info.GeneratedAt,
		Charts:      list,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal charts: %w", err)
	}

	// Keyed by user so a user's chart lists stay ordered within a partition.
	if err := p.producer.Publish([]byte(sc.UserID), body); err != nil {
		return fmt.Errorf("failed to publish charts: %w", err)
	}

	p.l.Infof(ctx, "missionreport.delivery.kafka.producer.Publish: Published %d charts to %s for user %s (sequence %d)",
		len(list.Charts), p.topic, sc.UserID, info.Sequence)
	return nil
}
