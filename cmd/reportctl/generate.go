package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"mission-report-srv/config"
	configPostgre "mission-report-srv/config/postgre"
	configRedis "mission-report-srv/config/redis"
	"mission-report-srv/internal/chart"
	chartUsecase "mission-report-srv/internal/chart/usecase"
	metadataPostgre "mission-report-srv/internal/metadata/repository/postgre"
	metadataRedis "mission-report-srv/internal/metadata/repository/redis"
	metadataUsecase "mission-report-srv/internal/metadata/usecase"
	"mission-report-srv/internal/missionreport"
	missionReportPostgre "mission-report-srv/internal/missionreport/repository/postgre"
	missionReportRedis "mission-report-srv/internal/missionreport/repository/redis"
	missionReportUsecase "mission-report-srv/internal/missionreport/usecase"
	"mission-report-srv/internal/model"
	"mission-report-srv/internal/savedreport"
	"mission-report-srv/pkg/log"

	"github.com/spf13/cobra"
)

type generateResult struct {
	Sequence    uint64     `json:"sequence"`
	GeneratedAt time.Time  `json:"generated_at"`
	Charts      chart.List `json:"charts"`
}

// captureSink keeps the outcome of a single generation.
type captureSink struct {
	mu     sync.Mutex
	result *generateResult
	err    error
}

func (s *captureSink) Publish(ctx context.Context, sc model.Scope, list chart.List) error {
	info, _ := missionreport.GenerationFromContext(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = &generateResult{Sequence: info.Sequence, GeneratedAt: info.GeneratedAt, Charts: list}
	return nil
}

func (s *captureSink) Error(ctx context.Context, sc model.Scope, err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
	return nil
}

func (s *captureSink) outcome() (*generateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	if s.result == nil {
		return nil, fmt.Errorf("generation produced no charts")
	}
	return s.result, nil
}

func newGenerateCmd() *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Run one mission report generation and print the charts",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := loadParams(paramsFile)
			if err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			res, err := runGeneration(ctx, cfg, params)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), output, res)
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "maximum time to wait for the generation")
	return cmd
}

func runGeneration(ctx context.Context, cfg *config.Config, params model.ReportParameters) (*generateResult, error) {
	l := log.Init(log.ZapConfig{
		Level:    "warn",
		Mode:     cfg.Logger.Mode,
		Encoding: cfg.Logger.Encoding,
		Output:   os.Stderr,
	})

	db, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		return nil, err
	}
	defer configPostgre.Disconnect(context.WithoutCancel(ctx), db)

	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		return nil, err
	}
	defer configRedis.Disconnect()

	loc := cfg.MissionReport.Location()
	metadataUC := metadataUsecase.New(
		l,
		metadataPostgre.New(db, l),
		metadataRedis.New(redisClient, l),
		metadataUsecase.Config{CacheTTL: cfg.MissionReport.MetadataCacheTTL},
	)
	chartUC := chartUsecase.New(l, metadataUC, chartUsecase.Config{Location: loc})
	executor := missionReportUsecase.NewQueryExecutor(
		l,
		missionReportPostgre.New(db, l),
		missionReportRedis.New(redisClient, l),
		missionReportUsecase.QueryConfig{Location: loc, CacheTTL: cfg.MissionReport.ResultCacheTTL},
	)

	sink := &captureSink{}
	ctrl := missionReportUsecase.NewController(
		l,
		model.Scope{UserID: "reportctl", Role: savedreport.RoleSystem},
		chartUC,
		executor,
		[]missionreport.Display{sink},
		[]missionreport.Notifier{sink},
		nil,
	)
	ctrl.InitializeDefaults()
	ctrl.UpdateParameters(params)

	gen := ctrl.Generate(ctx)
	select {
	case <-gen.Done:
	case <-ctx.Done():
		return nil, fmt.Errorf("generation %d: %w", gen.Sequence, ctx.Err())
	}

	return sink.outcome()
}
