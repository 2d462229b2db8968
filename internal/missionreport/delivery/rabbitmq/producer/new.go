package producer

import (
	"fmt"
	"time"

	"mission-report-srv/internal/missionreport"
	rmqDelivery "mission-report-srv/internal/missionreport/delivery/rabbitmq"
	"mission-report-srv/pkg/log"
	"mission-report-srv/pkg/rabbitmq"
)

type implProducer struct {
	l        log.Logger
	ch       rabbitmq.IChannel
	exchange string
	now      func() time.Time
}

// New declares the error exchange and returns a Notifier that publishes to it.
func New(l log.Logger, ch rabbitmq.IChannel, exchange string) (missionreport.Notifier, error) {
	if exchange == "" {
		exchange = rmqDelivery.ExchangeGenerationErrors
	}

	if err := ch.ExchangeDeclare(rabbitmq.ExchangeArgs{
		Name:    exchange,
		Type:    rabbitmq.ExchangeTypeFanout,
		Durable: true,
	}); err != nil {
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	return &implProducer{
		l:        l,
		ch:       ch,
		exchange: exchange,
		now:      time.Now,
	}, nil
}
