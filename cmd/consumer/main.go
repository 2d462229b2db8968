package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"mission-report-srv/config"
	"mission-report-srv/config/kafka"
	"mission-report-srv/config/minio"
	"mission-report-srv/config/postgre"
	configRabbitMQ "mission-report-srv/config/rabbitmq"
	"mission-report-srv/config/redis"
	"mission-report-srv/internal/consumer"
	"mission-report-srv/pkg/discord"
	"mission-report-srv/pkg/log"
	"mission-report-srv/pkg/rabbitmq"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// Create context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Mission Report Consumer Service...")

	// Kafka Producer (for publishing chart events)
	kafkaProducer, err := kafka.ConnectProducer(cfg.Kafka)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Kafka producer: %v", err)
		return
	}
	defer kafka.DisconnectProducer()
	logger.Info(ctx, "Kafka producer initialized")

	// Redis
	redisClient, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	defer redis.Disconnect()
	logger.Info(ctx, "Redis client initialized")

	// PostgreSQL
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer postgre.Disconnect(context.WithoutCancel(ctx), postgresDB)
	logger.Info(ctx, "PostgreSQL client initialized")

	// MinIO
	minioClient, err := minio.Connect(ctx, cfg.MinIO)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to MinIO: %v", err)
		return
	}
	defer minio.Disconnect()
	logger.Info(ctx, "MinIO client initialized")

	// RabbitMQ (optional)
	var rabbitConn rabbitmq.IRabbitMQ
	if cfg.RabbitMQ.URL != "" {
		rabbitConn, err = configRabbitMQ.Connect(logger, cfg.RabbitMQ)
		if err != nil {
			logger.Warnf(ctx, "RabbitMQ not available (optional): %v", err)
			rabbitConn = nil
		} else {
			defer configRabbitMQ.Disconnect()
			logger.Info(ctx, "RabbitMQ client initialized")
		}
	}

	// Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil
	} else {
		logger.Info(ctx, "Discord client initialized")
	}

	// Consumer server
	srv, err := consumer.New(consumer.Config{
		Logger:        logger,
		Config:        cfg,
		RedisClient:   redisClient,
		PostgresDB:    postgresDB,
		MinIOClient:   minioClient,
		KafkaProducer: kafkaProducer,
		RabbitMQ:      rabbitConn,
		Discord:       discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create consumer server: %v", err)
		return
	}

	// Run consumer server
	logger.Info(ctx, "Consumer server starting...")
	if err := srv.Run(ctx); err != nil {
		logger.Errorf(ctx, "Consumer server error: %v", err)
		return
	}

	logger.Info(ctx, "Consumer server stopped gracefully")
}
