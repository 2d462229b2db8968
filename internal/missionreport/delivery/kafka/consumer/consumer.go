package consumer

import (
	"context"

	kafkaDelivery "mission-report-srv/internal/missionreport/delivery/kafka"
)

const (
	kafkaDeliveryGroup = kafkaDelivery.ConsumerGroupGenerateRequested
	kafkaDeliveryTopic = kafkaDelivery.TopicGenerateRequested
)

// ConsumeGenerateRequested starts consuming generation requests until ctx is cancelled.
func (c *Consumer) ConsumeGenerateRequested(ctx context.Context) error {
	group, err := c.createConsumerGroup(c.groupID())
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.generateRequestedGroup = group
	c.mu.Unlock()

	handler := &generateRequestedHandler{consumer: c}
	topic := c.topic()

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if err := group.ConsumeWithContext(ctx, []string{topic}, handler); err != nil {
					c.l.Errorf(ctx, "missionreport.delivery.kafka.consumer.ConsumeGenerateRequested: Consumer error: %v", err)
				}
			}
		}
	}()

	go func() {
		for err := range group.Errors() {
			c.l.Errorf(ctx, "missionreport.delivery.kafka.consumer.ConsumeGenerateRequested: Consumer group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "missionreport.delivery.kafka.consumer.ConsumeGenerateRequested: Consuming %s", topic)
	return nil
}
