package consumer

import (
	"context"

	"github.com/IBM/sarama"
)

type generateRequestedHandler struct {
	consumer *Consumer
}

func (h *generateRequestedHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *generateRequestedHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *generateRequestedHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		if err := h.consumer.handleGenerateRequestedMessage(session.Context(), msg); err != nil {
			h.consumer.l.Errorf(context.Background(), "missionreport.delivery.kafka.consumer.ConsumeClaim: Failed to process generate request: %v", err)
			continue
		}
		session.MarkMessage(msg, "")
	}
	return nil
}
