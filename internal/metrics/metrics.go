package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "beyondjan_http_requests_total",
		Help: "Total number of HTTP requests served, labelled by route, method and status.",
	}, []string{"route", "method", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "beyondjan_http_request_duration_ms",
		Help:    "HTTP request latency in milliseconds, labelled by route.",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
	}, []string{"route"})

	CheckinsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "beyondjan_checkins_recorded_total",
		Help: "Total number of check-ins written, labelled by status.",
	}, []string{"status"})

	CheckinsCleared = promauto.NewCounter(prometheus.CounterOpts{
		Name: "beyondjan_checkins_cleared_total",
		Help: "Total number of check-ins cleared back to unrecorded.",
	})

	PulseRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "beyondjan_pulse_requests_total",
		Help: "Total number of daily pulse counter evaluations.",
	})

	ExportJobsFinished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "beyondjan_export_jobs_finished_total",
		Help: "Total number of export jobs finished, labelled by outcome.",
	}, []string{"outcome"})

	RollupRuns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "beyondjan_analytics_rollups_total",
		Help: "Total number of daily analytics rollup runs.",
	})

	CatalogReloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "beyondjan_catalog_reloads_total",
		Help: "Total number of featured catalog reload attempts, labelled by status.",
	}, []string{"status"})
)
