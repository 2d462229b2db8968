package httpserver

import (
	"database/sql"
	"errors"

	"mission-report-srv/config"
	"mission-report-srv/pkg/discord"
	pkgJWT "mission-report-srv/pkg/jwt"
	pkgKafka "mission-report-srv/pkg/kafka"
	"mission-report-srv/pkg/log"
	"mission-report-srv/pkg/minio"
	"mission-report-srv/pkg/rabbitmq"
	pkgRedis "mission-report-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Database Configuration
	postgresDB *sql.DB

	// Infrastructure clients
	redisClient   pkgRedis.IRedis
	minioClient   minio.MinIO
	kafkaProducer pkgKafka.IProducer
	rabbitMQ      rabbitmq.IRabbitMQ

	// Authentication & Security Configuration
	config       *config.Config
	jwtManager   pkgJWT.IManager
	cookieConfig config.CookieConfig

	// Monitoring & Notification Configuration
	discord discord.IDiscord
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Database Configuration
	PostgresDB *sql.DB

	// Infrastructure clients
	RedisClient   pkgRedis.IRedis
	MinIOClient   minio.MinIO
	KafkaProducer pkgKafka.IProducer
	// RabbitMQ is optional. Without it failures are only logged and sent to Discord.
	RabbitMQ rabbitmq.IRabbitMQ

	// Authentication & Security Configuration
	Config       *config.Config
	JWTManager   pkgJWT.IManager
	CookieConfig config.CookieConfig

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		// Database Configuration
		postgresDB: cfg.PostgresDB,

		// Infrastructure clients
		redisClient:   cfg.RedisClient,
		minioClient:   cfg.MinIOClient,
		kafkaProducer: cfg.KafkaProducer,
		rabbitMQ:      cfg.RabbitMQ,

		// Authentication & Security Configuration
		config:       cfg.Config,
		jwtManager:   cfg.JWTManager,
		cookieConfig: cfg.CookieConfig,

		// Monitoring & Notification Configuration
		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Database Configuration
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}

	// Infrastructure clients
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}
	if srv.minioClient == nil {
		return errors.New("minioClient is required")
	}
	if srv.kafkaProducer == nil {
		return errors.New("kafkaProducer is required")
	}

	// Authentication & Security Configuration
	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}

	return nil
}
