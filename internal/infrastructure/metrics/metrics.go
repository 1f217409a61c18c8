package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Pipeline counters
	DocumentsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "paperforge",
			Subsystem: "pipeline",
			Name:      "documents_processed_total",
			Help:      "Documents run through the summarization pipeline",
		},
		[]string{"status"},
	)

	// Gateway round-trip duration per stage
	GatewayDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "paperforge",
			Subsystem: "gateway",
			Name:      "request_duration_seconds",
			Help:      "Model provider round-trip duration in seconds",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60, 120},
		},
		[]string{"stage"},
	)

	// Gateway failure counter per stage
	GatewayFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "paperforge",
			Subsystem: "gateway",
			Name:      "failures_total",
			Help:      "Model provider call failures",
		},
		[]string{"stage"},
	)

	// Website generation counter
	Generations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "paperforge",
			Subsystem: "website",
			Name:      "generations_total",
			Help:      "Website codebase generations and edits",
		},
		[]string{"kind", "status"},
	)
)
