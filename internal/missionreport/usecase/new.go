package usecase

import (
	"sync"
	"time"

	"mission-report-srv/internal/chart"
	"mission-report-srv/internal/missionreport"
	"mission-report-srv/internal/missionreport/repository"
	"mission-report-srv/internal/model"
	"mission-report-srv/internal/savedreport"
	"mission-report-srv/pkg/log"
	"mission-report-srv/pkg/minio"
)

const (
	defaultChartsTTL       = 24 * time.Hour
	defaultSessionIdleTTL  = 12 * time.Hour
	defaultExportBucket    = "mission-reports"
	defaultExportURLExpiry = 30 * time.Minute
)

// Config holds configuration for mission report generation.
type Config struct {
	ChartsTTL       time.Duration
	ExportBucket    string
	ExportURLExpiry time.Duration
	// SessionIdleTTL evicts a user's editing session after this long without a request.
	SessionIdleTTL time.Duration
	Location       *time.Location
	Now             func() time.Time
}

func (c Config) withDefaults() Config {
	if c.ChartsTTL <= 0 {
		c.ChartsTTL = defaultChartsTTL
	}
	if c.ExportBucket == "" {
		c.ExportBucket = defaultExportBucket
	}
	if c.ExportURLExpiry <= 0 {
		c.ExportURLExpiry = defaultExportURLExpiry
	}
	if c.SessionIdleTTL <= 0 {
		c.SessionIdleTTL = defaultSessionIdleTTL
	}
	if c.Location == nil {
		c.Location = time.UTC
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return c
}

// exportStorage is the part of object storage the export needs.
type exportStorage interface {
	minio.FileUploader
	minio.FileDownloader
}

type session struct {
	mu       sync.Mutex
	ctrl     missionreport.Controller
	selected *model.SavedReport
	lastUsed time.Time
}

type implUseCase struct {
	l             log.Logger
	chartUC       chart.UseCase
	savedReportUC savedreport.UseCase
	executor      missionreport.QueryExecutor
	repo          repository.RedisRepository
	storage       exportStorage
	displays      []missionreport.Display
	notifiers     []missionreport.Notifier
	config        Config

	mu        sync.Mutex
	sessions  map[string]*session
	lastSweep time.Time
}

// New creates a new mission report UseCase implementation.
// Every session controller publishes to displays and reports failures to notifiers.
func New(
	l log.Logger,
	chartUC chart.UseCase,
	savedReportUC savedreport.UseCase,
	executor missionreport.QueryExecutor,
	repo repository.RedisRepository,
	storage exportStorage,
	displays []missionreport.Display,
	notifiers []missionreport.Notifier,
	cfg Config,
) missionreport.UseCase {
	return &implUseCase{
		l:             l,
		chartUC:       chartUC,
		savedReportUC: savedReportUC,
		executor:      executor,
		repo:          repo,
		storage:       storage,
		displays:      displays,
		notifiers:     notifiers,
		config:        cfg.withDefaults(),
		sessions:      map[string]*session{},
	}
}
