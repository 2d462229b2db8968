package redis

import (
	"mission-report-srv/internal/metadata/repository"
	"mission-report-srv/pkg/log"
	"mission-report-srv/pkg/redis"
)

const vocabulariesKey = "metadata:vocabularies"

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
