package httpserver

import (
	"context"

	chartUsecase "mission-report-srv/internal/chart/usecase"
	metadataPostgre "mission-report-srv/internal/metadata/repository/postgre"
	metadataRedis "mission-report-srv/internal/metadata/repository/redis"
	metadataUsecase "mission-report-srv/internal/metadata/usecase"
	"mission-report-srv/internal/missionreport"
	missionReportHTTP "mission-report-srv/internal/missionreport/delivery/http"
	missionReportKafka "mission-report-srv/internal/missionreport/delivery/kafka/producer"
	missionReportRabbit "mission-report-srv/internal/missionreport/delivery/rabbitmq/producer"
	missionReportPostgre "mission-report-srv/internal/missionreport/repository/postgre"
	missionReportRedis "mission-report-srv/internal/missionreport/repository/redis"
	missionReportUsecase "mission-report-srv/internal/missionreport/usecase"
	"mission-report-srv/internal/savedreport"
	savedReportHTTP "mission-report-srv/internal/savedreport/delivery/http"
	savedReportPostgre "mission-report-srv/internal/savedreport/repository/postgre"
	savedReportUsecase "mission-report-srv/internal/savedreport/usecase"
)

type domainHandlers struct {
	savedReportHandler   savedReportHTTP.Handler
	missionReportHandler missionReportHTTP.Handler
}

// setupDomains initializes every domain (repo -> usecase -> delivery).
func (srv *HTTPServer) setupDomains(ctx context.Context) (*domainHandlers, error) {
	savedReportUC := savedReportUsecase.New(srv.l, savedReportPostgre.New(srv.postgresDB, srv.l))

	missionReportUC, err := srv.setupMissionReport(ctx, savedReportUC)
	if err != nil {
		return nil, err
	}

	return &domainHandlers{
		savedReportHandler:   savedReportHTTP.New(srv.l, savedReportUC, srv.discord),
		missionReportHandler: missionReportHTTP.New(srv.l, missionReportUC, srv.discord),
	}, nil
}

func (srv *HTTPServer) setupMissionReport(ctx context.Context, savedReportUC savedreport.UseCase) (missionreport.UseCase, error) {
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
	if err := metadataUC.Initialize(ctx); err != nil {
		// Charts that need categories fail until a later generation loads them.
		srv.l.Warnf(ctx, "httpserver.setupMissionReport: metadata Initialize failed: %v", err)
	}

	chartUC := chartUsecase.New(srv.l, metadataUC, chartUsecase.Config{Location: loc})

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
		missionReportKafka.New(srv.l, srv.kafkaProducer, srv.config.Kafka.ChartsTopic),
	}

	notifiers := []missionreport.Notifier{missionReportUsecase.NewLogNotifier(srv.l)}
	if srv.discord != nil {
		notifiers = append(notifiers, missionReportUsecase.NewDiscordNotifier(srv.discord))
	}
	if srv.rabbitMQ != nil {
		ch, err := srv.rabbitMQ.Channel()
		if err != nil {
			return nil, err
		}
		n, err := missionReportRabbit.New(srv.l, ch, srv.config.RabbitMQ.Exchange)
		if err != nil {
			return nil, err
		}
		notifiers = append(notifiers, n)
	}

	bucket := mrCfg.ExportBucket
	if bucket == "" {
		bucket = srv.config.MinIO.Bucket
	}

	return missionReportUsecase.New(
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
			ExportBucket:    bucket,
			ExportURLExpiry: mrCfg.ExportURLExpiry,
			SessionIdleTTL:  mrCfg.SessionIdleTTL,
			Location:        loc,
		},
	), nil
}
