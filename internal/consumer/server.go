package consumer

import (
	"context"
	"database/sql"

	"mission-report-srv/config"
	"mission-report-srv/pkg/discord"
	pkgKafka "mission-report-srv/pkg/kafka"
	"mission-report-srv/pkg/log"
	"mission-report-srv/pkg/minio"
	"mission-report-srv/pkg/rabbitmq"
	"mission-report-srv/pkg/redis"
)

// ConsumerServer is the Kafka consumer orchestrator
type ConsumerServer struct {
	// Core Configuration
	l           log.Logger
	config      *config.Config
	kafkaConfig config.KafkaConfig

	// Infrastructure clients
	redisClient   redis.IRedis
	postgresDB    *sql.DB
	minioClient   minio.MinIO
	kafkaProducer pkgKafka.IProducer
	rabbitMQ      rabbitmq.IRabbitMQ

	// Monitoring & Notification
	discord discord.IDiscord
}

// Config holds all dependencies for the consumer server
type Config struct {
	// Core Configuration
	Logger log.Logger
	Config *config.Config

	// Infrastructure clients
	RedisClient   redis.IRedis
	PostgresDB    *sql.DB
	MinIOClient   minio.MinIO
	KafkaProducer pkgKafka.IProducer
	// RabbitMQ is optional.
	RabbitMQ rabbitmq.IRabbitMQ

	// Monitoring & Notification
	Discord discord.IDiscord
}

// Run starts the consumer server and blocks until context is cancelled.
// It initializes all domain layers, starts consumers, and handles graceful shutdown.
func (srv *ConsumerServer) Run(ctx context.Context) error {
	consumers, err := srv.setupDomains(ctx)
	if err != nil {
		srv.l.Errorf(ctx, "Failed to setup domains: %v", err)
		return err
	}

	if err := srv.startConsumers(ctx, consumers); err != nil {
		srv.l.Errorf(ctx, "Failed to start consumers: %v", err)
		return err
	}

	srv.l.Info(ctx, "Consumer Server is running")

	<-ctx.Done()
	srv.l.Info(ctx, "Shutdown signal received, stopping consumers...")

	srv.stopConsumers(context.WithoutCancel(ctx), consumers)

	srv.l.Info(ctx, "Consumer Server stopped gracefully")
	return nil
}
