// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ActionsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "action_runs_completed_total",
			Help: "Total number of action invocations completed",
		},
		[]string{"action"},
	)

	ActionsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "action_runs_failed_total",
			Help: "Total number of action invocations failed",
		},
		[]string{"action", "error_code"},
	)

	ActionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "action_run_duration_seconds",
			Help: "Duration of action execution in seconds",
		},
		[]string{"action"},
	)

	ActionsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "action_runs_active",
			Help: "Number of in-flight action invocations",
		},
		[]string{"action"},
	)
)
