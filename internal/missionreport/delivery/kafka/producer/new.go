package producer

import (
	"mission-report-srv/internal/missionreport"
	pkgKafka "mission-report-srv/pkg/kafka"
	"mission-report-srv/pkg/log"
)

type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
	topic    string
}

// New creates a Display that publishes chart lists to Kafka.
func New(l log.Logger, producer pkgKafka.IProducer, topic string) missionreport.Display {
	return &implProducer{
		l:        l,
		producer: producer,
		topic:    topic,
	}
}
