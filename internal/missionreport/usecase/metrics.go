package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusPublished   = "published"
	statusSuperseded  = "superseded"
	statusQueryFailed = "query_failed"
	statusChartFailed = "chart_failed"
)

var (
	generationsStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "mission_report",
			Name:      "generations_started_total",
			Help:      "Total report generations started",
		},
	)

	generationsFinished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mission_report",
			Name:      "generations_finished_total",
			Help:      "Total report generations finished, by outcome",
		},
		[]string{"status"},
	)

	queryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "mission_report",
			Name:      "query_duration_seconds",
			Help:      "Duration of mission report queries against the database",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12), // 10ms to ~20s
		},
	)

	resultCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mission_report",
			Name:      "result_cache_total",
			Help:      "Query result cache lookups",
		},
		[]string{"result"}, // "hit", "miss"
	)

	notificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mission_report",
			Name:      "notifications_total",
			Help:      "Error notifications sent, by sink",
		},
		[]string{"sink"},
	)
)
