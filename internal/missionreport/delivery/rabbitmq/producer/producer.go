package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"mission-report-srv/internal/missionreport"
	rmqDelivery "mission-report-srv/internal/missionreport/delivery/rabbitmq"
	"mission-report-srv/internal/model"
	"mission-report-srv/pkg/rabbitmq"
)

func (p *implProducer) Error(ctx context.Context, sc model.Scope, err error) error {
	info, _ := missionreport.GenerationFromContext(ctx)

	body, mErr := json.Marshal(rmqDelivery.GenerationErrorMessage{
		UserID:     sc.UserID,
		Sequence:   info.Sequence,
		Error:      err.Error(),
		OccurredAt: p.now(),
	})
	if mErr != nil {
		return fmt.Errorf("failed to marshal generation error: %w", mErr)
	}

	if pErr := p.ch.Publish(ctx, rabbitmq.PublishArgs{
		Exchange: p.exchange,
		Msg: rabbitmq.Publishing{
			ContentType: rabbitmq.ContentTypeJSON,
			Body:        body,
		},
	}); pErr != nil {
		p.l.Errorf(ctx, "missionreport.delivery.rabbitmq.producer.Error: Publish failed: %v", pErr)
		return fmt.Errorf("failed to publish generation error: %w", pErr)
	}

	return nil
}
