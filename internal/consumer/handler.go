package consumer

import (
	"context"
	"fmt"

	chartUsecase "mission-report-srv/internal/chart/usecase"
	metadataPostgre "mission-report-srv/internal/metadata/repository/postgre"
	metadataRedis "mission-report-srv/internal/metadata/repository/redis"
	metadataUsecase "mission-report-srv/internal/metadata/usecase"
	"mission-report-srv/internal/missionreport"
	missionReportConsumer "mission-report-srv/internal/missionreport/delivery/kafka/consumer"
	missionReportKafka "mission-report-srv/internal/missionreport/delivery/kafka/producer"
	missionReportRabbit "mission-report-srv/internal/missionreport/delivery/rabbitmq/producer"
	missionReportPostgre "mission-report-srv/internal/missionreport/repository/postgre"
	missionReportRedis "mission-report-srv/internal/missionreport/repository/redis"
	missionReportUsecase "mission-report-srv/internal/missionreport/usecase"
	savedReportPostgre "mission-report-srv/internal/savedreport/repository/postgre"
	savedReportUsecase "mission-report-srv/internal/savedreport/usecase"
)

// domainConsumers holds references to all domain consumers for cleanup
type domainConsumers struct {
	missionReportConsumer *missionReportConsumer.Consumer
}

// setupDomains initializes all domain layers (repositories, usecases, consumers)
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
	mrCfg := srv.config.MissionReport
	loc := mrCfg.Location()

	metadataUC := metadataUsecase.New(
		srv.l,
		metadataPostgre.New(srv.postgresDB, srv.l),
		metadataRedis.New(srv.redisClient, srv.l),
		metadataUsecase.Config{
			CacheTTL:        mrCfg.MetadataCacheTTL,
			RefreshInterval: mrCfg.MetadataRefreshInterval,
		},
	)
	chartUC := chartUsecase.New(srv.l, metadataUC, chartUsecase.Config{Location: loc})
	savedReportUC := savedReportUsecase.New(srv.l, savedReportPostgre.New(srv.postgresDB, srv.l))

	redisRepo := missionReportRedis.New(srv.redisClient, srv.l)
	executor := missionReportUsecase.NewQueryExecutor(
		srv.l,
		missionReportPostgre.New(srv.postgresDB, srv.l),
		redisRepo,
		missionReportUsecase.QueryConfig{
			Location: loc,
			CacheTTL: mrCfg.ResultCacheTTL,
		},
	)

	displays := []missionreport.Display{
		missionReportUsecase.NewChartStoreDisplay(redisRepo, mrCfg.ChartsTTL),
		missionReportKafka.New(srv.l, srv.kafkaProducer, srv.kafkaConfig.ChartsTopic),
	}

	notifiers := []missionreport.Notifier{missionReportUsecase.NewLogNotifier(srv.l)}
	if srv.discord != nil {
		notifiers = append(notifiers, missionReportUsecase.NewDiscordNotifier(srv.discord))
	}
	if srv.rabbitMQ != nil {
		ch, err := srv.rabbitMQ.Channel()
		if err != nil {
			return nil, fmt.Errorf("failed to open rabbitmq channel: %w", err)
		}
		n, err := missionReportRabbit.New(srv.l, ch, srv.config.RabbitMQ.Exchange)
		if err != nil {
			return nil, err
		}
		notifiers = append(notifiers, n)
	}

	missionReportUC := missionReportUsecase.New(
		srv.l,
		chartUC,
		savedReportUC,
		executor,
		redisRepo,
		srv.minioClient,
		displays,
		notifiers,
		missionReportUsecase.Config{
			ChartsTTL:       mrCfg.ChartsTTL,
			ExportBucket:    mrCfg.ExportBucket,
			ExportURLExpiry: mrCfg.ExportURLExpiry,
			SessionIdleTTL:  mrCfg.SessionIdleTTL,
			Location:        loc,
		},
	)

	cons, err := missionReportConsumer.New(missionReportConsumer.Config{
		Logger:      srv.l,
		KafkaConfig: srv.kafkaConfig,
		UseCase:     missionReportUC,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create mission report consumer: %w", err)
	}

	srv.l.Infof(ctx, "Mission report domain initialized")

	return &domainConsumers{
		missionReportConsumer: cons,
	}, nil
}

// startConsumers starts all domain consumers in background goroutines
func (srv *ConsumerServer) startConsumers(ctx context.Context, consumers *domainConsumers) error {
	if err := consumers.missionReportConsumer.ConsumeGenerateRequested(ctx); err != nil {
		return fmt.Errorf("failed to start mission report consumer: %w", err)
	}

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

// stopConsumers gracefully stops all domain consumers
func (srv *ConsumerServer) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	if consumers.missionReportConsumer != nil {
		if err := consumers.missionReportConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing mission report consumer: %v", err)
		}
	}

	srv.l.Infof(ctx, "All consumers stopped")
}
