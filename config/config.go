package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// PostgreSQL - Published items, vocabularies, saved reports
	Postgres PostgresConfig

	// Redis - Result cache, vocabulary cache, latest charts
	Redis RedisConfig

	// MinIO - Chart exports
	MinIO MinIOConfig

	// Kafka - Generation requests and chart events
	Kafka KafkaConfig

	// RabbitMQ - Error notifications
	RabbitMQ RabbitMQConfig

	// JWT - Authentication
	JWT            JWTConfig
	Cookie         CookieConfig
	InternalConfig InternalConfig

	// Mission report behaviour
	MissionReport MissionReportConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// KafkaConfig is the configuration for Kafka
type KafkaConfig struct {
	Brokers       []string
	ConsumerGroup string
	// GenerateTopic carries generation requests from schedulers.
	GenerateTopic string
	// ChartsTopic receives every published chart list.
	ChartsTopic string
}

// RabbitMQConfig is the configuration for RabbitMQ
type RabbitMQConfig struct {
	URL      string
	Exchange string
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// MinIOConfig is the configuration for MinIO
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	Bucket    string
}

// CookieConfig configures the auth cookie. Used to read the token when no header is sent.
type CookieConfig struct {
	Name string
}

// JWTConfig is used to verify tokens (same secret/issuer as auth service). This service does not issue tokens.
type JWTConfig struct {
	Algorithm string
	Issuer    string
	Audience  []string
	SecretKey string
	TTL       int // in seconds
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PostgresConfig is the configuration for Postgres
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Schema   string
}

type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// InternalConfig is the configuration for internal service authentication
type InternalConfig struct {
	// InternalKey is the shared secret for InternalAuth (Authorization header). Leave empty to disable.
	InternalKey string
}

// MissionReportConfig tunes report generation.
type MissionReportConfig struct {
	// Timezone is the IANA zone used to render table timestamps and date subtitles.
	Timezone                string
	ResultCacheTTL          time.Duration
	ChartsTTL               time.Duration
	MetadataCacheTTL        time.Duration
	MetadataRefreshInterval time.Duration
	ExportBucket            string
	ExportURLExpiry         time.Duration
	SessionIdleTTL          time.Duration
}

// Location resolves Timezone, falling back to UTC.
func (c MissionReportConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	viper.SetConfigName("mission-report-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/newsroom/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	// Config file is optional; env vars cover everything.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// PostgreSQL
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.Postgres.Schema = viper.GetString("postgres.schema")

	// Redis
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	// MinIO
	cfg.MinIO.Endpoint = viper.GetString("minio.endpoint")
	cfg.MinIO.AccessKey = viper.GetString("minio.access_key")
	cfg.MinIO.SecretKey = viper.GetString("minio.secret_key")
	cfg.MinIO.UseSSL = viper.GetBool("minio.use_ssl")
	cfg.MinIO.Region = viper.GetString("minio.region")
	cfg.MinIO.Bucket = viper.GetString("minio.bucket")

	// Kafka
	cfg.Kafka.Brokers = viper.GetStringSlice("kafka.brokers")
	cfg.Kafka.ConsumerGroup = viper.GetString("kafka.consumer_group")
	cfg.Kafka.GenerateTopic = viper.GetString("kafka.generate_topic")
	cfg.Kafka.ChartsTopic = viper.GetString("kafka.charts_topic")

	// RabbitMQ
	cfg.RabbitMQ.URL = viper.GetString("rabbitmq.url")
	cfg.RabbitMQ.Exchange = viper.GetString("rabbitmq.exchange")

	// JWT
	cfg.JWT.Algorithm = viper.GetString("jwt.algorithm")
	cfg.JWT.Issuer = viper.GetString("jwt.issuer")
	cfg.JWT.Audience = viper.GetStringSlice("jwt.audience")
	cfg.JWT.SecretKey = viper.GetString("jwt.secret_key")
	cfg.JWT.TTL = viper.GetInt("jwt.ttl")

	// Cookie
	cfg.Cookie.Name = viper.GetString("cookie.name")

	// Internal auth key
	cfg.InternalConfig.InternalKey = viper.GetString("internal.internal_key")

	// Mission report
	cfg.MissionReport.Timezone = viper.GetString("mission_report.timezone")
	cfg.MissionReport.ResultCacheTTL = viper.GetDuration("mission_report.result_cache_ttl")
	cfg.MissionReport.ChartsTTL = viper.GetDuration("mission_report.charts_ttl")
	cfg.MissionReport.MetadataCacheTTL = viper.GetDuration("mission_report.metadata_cache_ttl")
	cfg.MissionReport.MetadataRefreshInterval = viper.GetDuration("mission_report.metadata_refresh_interval")
	cfg.MissionReport.ExportBucket = viper.GetString("mission_report.export_bucket")
	cfg.MissionReport.ExportURLExpiry = viper.GetDuration("mission_report.export_url_expiry")
	cfg.MissionReport.SessionIdleTTL = viper.GetDuration("mission_report.session_idle_ttl")

	// Discord
	cfg.Discord.WebhookID = viper.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = viper.GetString("discord.webhook_token")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	// Logger
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// 1. PostgreSQL
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.password", "postgres")
	viper.SetDefault("postgres.dbname", "postgres")
	viper.SetDefault("postgres.sslmode", "prefer")
	viper.SetDefault("postgres.schema", "newsroom")

	// 2. Redis
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// 3. MinIO
	viper.SetDefault("minio.endpoint", "localhost:9000")
	viper.SetDefault("minio.access_key", "minioadmin")
	viper.SetDefault("minio.secret_key", "minioadmin")
	viper.SetDefault("minio.use_ssl", false)
	viper.SetDefault("minio.region", "us-east-1")
	viper.SetDefault("minio.bucket", "mission-reports")

	// 4. Kafka
	viper.SetDefault("kafka.brokers", []string{"localhost:9092"})
	viper.SetDefault("kafka.consumer_group", "mission-report-srv")
	viper.SetDefault("kafka.generate_topic", "mission_report.generate.requested")
	viper.SetDefault("kafka.charts_topic", "mission_report.charts.published")

	// 5. RabbitMQ
	viper.SetDefault("rabbitmq.url", "")
	viper.SetDefault("rabbitmq.exchange", "mission_report.generation.errors")

	// JWT
	viper.SetDefault("jwt.algorithm", "HS256")
	viper.SetDefault("jwt.issuer", "newsroom-auth-service")
	viper.SetDefault("jwt.audience", []string{"mission-report-srv"})
	viper.SetDefault("jwt.ttl", 28800) // 8 hours

	// Cookie
	viper.SetDefault("cookie.name", "newsroom_auth_token")

	// Mission report
	viper.SetDefault("mission_report.timezone", "Australia/Sydney")
	viper.SetDefault("mission_report.result_cache_ttl", "2m")
	viper.SetDefault("mission_report.charts_ttl", "24h")
	viper.SetDefault("mission_report.metadata_cache_ttl", "1h")
	viper.SetDefault("mission_report.metadata_refresh_interval", "15m")
	viper.SetDefault("mission_report.export_bucket", "mission-reports")
	viper.SetDefault("mission_report.export_url_expiry", "30m")
	viper.SetDefault("mission_report.session_idle_ttl", "12h")
}

func validate(cfg *Config) error {
	// Validate JWT fields
	if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("jwt.secret_key is required")
	}
	if len(cfg.JWT.SecretKey) < 32 {
		return fmt.Errorf("jwt.secret_key must be at least 32 characters for security")
	}
	if cfg.JWT.Issuer == "" {
		return fmt.Errorf("jwt.issuer is required")
	}
	if cfg.JWT.TTL <= 0 {
		return fmt.Errorf("jwt.ttl must be greater than 0")
	}

	if cfg.Postgres.Host == "" {
		return fmt.Errorf("postgres.host is required")
	}
	if cfg.Postgres.Port == 0 {
		return fmt.Errorf("postgres.port is required")
	}
	if cfg.Postgres.DBName == "" {
		return fmt.Errorf("postgres.dbname is required")
	}
	if cfg.Postgres.User == "" {
		return fmt.Errorf("postgres.user is required")
	}

	if cfg.Redis.Host == "" {
		return fmt.Errorf("redis.host is required")
	}
	if cfg.Redis.Port == 0 {
		return fmt.Errorf("redis.port is required")
	}

	if len(cfg.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka.brokers must have at least one value")
	}
	if cfg.Kafka.GenerateTopic == "" || cfg.Kafka.ChartsTopic == "" {
		return fmt.Errorf("kafka.generate_topic and kafka.charts_topic are required")
	}

	if cfg.MinIO.Endpoint == "" {
		return fmt.Errorf("minio.endpoint is required")
	}
	if cfg.MinIO.AccessKey == "" {
		return fmt.Errorf("minio.access_key is required")
	}
	if cfg.MinIO.SecretKey == "" {
		return fmt.Errorf("minio.secret_key is required")
	}

	if _, err := time.LoadLocation(cfg.MissionReport.Timezone); err != nil {
		return fmt.Errorf("mission_report.timezone is invalid: %w", err)
	}

	if cfg.Cookie.Name == "" {
		return fmt.Errorf("cookie.name is required")
	}

	return nil
}
