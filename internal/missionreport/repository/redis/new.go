package redis

import (
	"mission-report-srv/internal/missionreport/repository"
	"mission-report-srv/pkg/log"
	"mission-report-srv/pkg/redis"
)

const (
	resultKeyPrefix = "mission_report:result:"
	chartsKeyPrefix = "mission_report:charts:"
)

type implRepository struct {
	client redis.IRedis
	l      log.Logger
}

func New(client redis.IRedis, l log.Logger) repository.RedisRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}
