package main

import (
	"context"
	"fmt"
	"time"

	"mission-report-srv/config"
	configKafka "mission-report-srv/config/kafka"
	configMinIO "mission-report-srv/config/minio"
	configPostgre "mission-report-srv/config/postgre"
	configRabbitMQ "mission-report-srv/config/rabbitmq"
	configRedis "mission-report-srv/config/redis"
	_ "mission-report-srv/docs" // Import swagger docs
	"mission-report-srv/internal/httpserver"
	"mission-report-srv/pkg/discord"
	pkgJWT "mission-report-srv/pkg/jwt"
	"mission-report-srv/pkg/log"
	"mission-report-srv/pkg/rabbitmq"
)

// @title       Mission Report Service API
// @description Mission report generation, saved reports and chart export for the newsroom dashboard.
// @version     1
// @BasePath    /
//
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name newsroom_auth_token
// @description Authentication token stored in HttpOnly cookie.
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Bearer token authentication. Format: "Bearer {token}"
func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	// 3. Initialize PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 4. Initialize Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 5. Initialize MinIO
	minioClient, err := configMinIO.Connect(ctx, cfg.MinIO)
	if err != nil {
		logger.Error(ctx, "Failed to connect to MinIO: ", err)
		return
	}
	defer configMinIO.Disconnect()
	logger.Infof(ctx, "MinIO connected successfully to %s", cfg.MinIO.Endpoint)

	// 6. Initialize Kafka producer
	kafkaProducer, err := configKafka.ConnectProducer(cfg.Kafka)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Kafka producer: ", err)
		return
	}
	defer configKafka.DisconnectProducer()
	logger.Infof(ctx, "Kafka producer initialized for topic %s", cfg.Kafka.ChartsTopic)

	// 7. Initialize RabbitMQ (optional)
	var rabbitConn rabbitmq.IRabbitMQ
	if cfg.RabbitMQ.URL != "" {
		rabbitConn, err = configRabbitMQ.Connect(logger, cfg.RabbitMQ)
		if err != nil {
			logger.Warnf(ctx, "RabbitMQ not available (optional): %v", err)
			rabbitConn = nil
		} else {
			defer configRabbitMQ.Disconnect()
			logger.Info(ctx, "RabbitMQ connected successfully")
		}
	}

	// 8. Initialize Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil
	} else {
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 9. Initialize JWT Manager
	jwtManager, err := pkgJWT.New(pkgJWT.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		Audience:  cfg.JWT.Audience,
		TTL:       time.Duration(cfg.JWT.TTL) * time.Second,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}
	logger.Infof(ctx, "JWT Manager initialized with algorithm: %s", cfg.JWT.Algorithm)

	// 10. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		// Database Configuration
		PostgresDB: postgresDB,

		// Infrastructure clients
		RedisClient:   redisClient,
		MinIOClient:   minioClient,
		KafkaProducer: kafkaProducer,
		RabbitMQ:      rabbitConn,

		// Authentication & Security Configuration
		Config:       cfg,
		JWTManager:   jwtManager,
		CookieConfig: cfg.Cookie,

		// Monitoring & Notification Configuration
		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}

