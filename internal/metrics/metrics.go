package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ReportsBuilt counts report builds by outcome (ok, load_error, schedule_error, error)
	ReportsBuilt = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "flightstats",
			Name:      "reports_total",
			Help:      "The total number of report builds",
		},
		[]string{"status"},
	)

	ReportDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "flightstats",
			Name:      "report_duration_seconds",
			Help:      "Time spent building a report",
			Buckets:   prometheus.DefBuckets,
		},
	)

	// ReportCacheLookups counts cache lookups by result (hit, miss, error)
	ReportCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "flightstats",
			Name:      "report_cache_total",
			Help:      "The total number of report cache lookups",
		},
		[]string{"result"},
	)
)
