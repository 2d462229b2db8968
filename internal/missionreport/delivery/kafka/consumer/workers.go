package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"mission-report-srv/internal/missionreport"
	kafkaDelivery "mission-report-srv/internal/missionreport/delivery/kafka"
	"mission-report-srv/pkg/scope"

	"github.com/IBM/sarama"
)

// handleGenerateRequestedMessage decodes a request and hands it to the usecase.
// Malformed or unprocessable messages are skipped so they do not block the partition.
func (c *Consumer) handleGenerateRequestedMessage(ctx context.Context, msg *sarama.ConsumerMessage) error {
	c.l.Debugf(ctx, "missionreport.delivery.kafka.consumer.handleGenerateRequestedMessage: Processing message from partition %d, offset %d",
		msg.Partition, msg.Offset)

	var message kafkaDelivery.GenerateRequestedMessage
	if err := json.Unmarshal(msg.Value, &message); err != nil {
		c.l.Warnf(ctx, "missionreport.delivery.kafka.consumer.handleGenerateRequestedMessage: Invalid message format (skipping): %v", err)
		return nil
	}

	if message.UserID == "" {
		c.l.Warnf(ctx, "missionreport.delivery.kafka.consumer.handleGenerateRequestedMessage: Missing user_id (skipping)")
		return nil
	}

	sc := toScope(message)
	ctx = scope.SetScopeToContext(ctx, sc)

	output, err := c.uc.GenerateRequested(ctx, sc, toGenerateRequestInput(message))
	if err != nil {
		if errors.Is(err, missionreport.ErrInvalidParameters) || errors.Is(err, missionreport.ErrSavedReportNotFound) {
			c.l.Warnf(ctx, "missionreport.delivery.kafka.consumer.handleGenerateRequestedMessage: Rejected request for user %s (skipping): %v", message.UserID, err)
			return nil
		}
		c.l.Errorf(ctx, "missionreport.delivery.kafka.consumer.handleGenerateRequestedMessage: usecase GenerateRequested failed: %v", err)
		return fmt.Errorf("usecase error: %w", err)
	}

	c.l.Infof(ctx, "missionreport.delivery.kafka.consumer.handleGenerateRequestedMessage: Started generation %d for user %s",
		output.Sequence, message.UserID)
	return nil
}
