package consumer

import (
	"fmt"
	"sync"

	"mission-report-srv/config"
	"mission-report-srv/internal/missionreport"
	pkgKafka "mission-report-srv/pkg/kafka"
	"mission-report-srv/pkg/log"
)

// Config holds the configuration for the mission report consumer
type Config struct {
	Logger      log.Logger
	KafkaConfig config.KafkaConfig
	UseCase     missionreport.UseCase
}

// Consumer manages Kafka consumer groups for the mission report domain
type Consumer struct {
	l           log.Logger
	kafkaConfig config.KafkaConfig
	uc          missionreport.UseCase

	mu                     sync.Mutex
	generateRequestedGroup pkgKafka.IConsumer
}

// New creates a new mission report consumer
func New(cfg Config) (*Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.UseCase == nil {
		return nil, fmt.Errorf("usecase is required")
	}
	if len(cfg.KafkaConfig.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are required")
	}

	return &Consumer{
		l:           cfg.Logger,
		kafkaConfig: cfg.KafkaConfig,
		uc:          cfg.UseCase,
	}, nil
}

// Close closes all consumer groups
func (c *Consumer) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generateRequestedGroup != nil {
		if err := c.generateRequestedGroup.Close(); err != nil {
			return fmt.Errorf("failed to close generate requested group: %w", err)
		}
		c.generateRequestedGroup = nil
	}

	return nil
}

func (c *Consumer) createConsumerGroup(groupID string) (pkgKafka.IConsumer, error) {
	consumerConfig := pkgKafka.ConsumerConfig{
		Brokers: c.kafkaConfig.Brokers,
		GroupID: groupID,
	}

	group, err := pkgKafka.NewConsumer(consumerConfig)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrCreateConsumerGroupFailed, groupID, err)
	}

	return group, nil
}

func (c *Consumer) groupID() string {
	if c.kafkaConfig.ConsumerGroup != "" {
		return c.kafkaConfig.ConsumerGroup
	}
	return kafkaDeliveryGroup
}

func (c *Consumer) topic() string {
	if c.kafkaConfig.GenerateTopic != "" {
		return c.kafkaConfig.GenerateTopic
	}
	return kafkaDeliveryTopic
}
