package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	insightsComputed    *prometheus.CounterVec
	insightsDuration    prometheus.Histogram
	projectionsComputed *prometheus.CounterVec
	transactionsCreated *prometheus.CounterVec
	goalsCreated        prometheus.Counter
	goalsAchieved       prometheus.Counter
	goalContributions   *prometheus.CounterVec
	activeBudgetsTotal  prometheus.Gauge
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		insightsComputed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "insights_computed_total",
				Help: "Total number of spending insight computations",
			},
			[]string{"status"},
		),
		insightsDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "insights_computation_duration_milliseconds",
				Help:    "Spending insight computation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		projectionsComputed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "projections_computed_total",
				Help: "Total number of spending projections by resulting status",
			},
			[]string{"status"},
		),
		transactionsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_created_total",
				Help: "Total number of transactions created by category",
			},
			[]string{"category"},
		),
		goalsCreated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "goals_created_total",
				Help: "Total number of savings goals created",
			},
		),
		goalsAchieved: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "goals_achieved_total",
				Help: "Total number of savings goals achieved",
			},
		),
		goalContributions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goal_contributions_total",
				Help: "Total number of goal contributions by outcome",
			},
			[]string{"outcome"},
		),
		activeBudgetsTotal: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "active_budgets_total",
				Help: "Current number of configured budgets",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "insights.computed":
		m.insightsComputed.WithLabelValues(tags["status"]).Inc()
	case "projection.computed":
		if status := tags["status"]; status != "" {
			m.projectionsComputed.WithLabelValues(status).Inc()
		}
	case "transaction.created":
		if category := tags["category"]; category != "" {
			m.transactionsCreated.WithLabelValues(category).Inc()
		}
	case "goal.created":
		m.goalsCreated.Inc()
	case "goal.achieved":
		m.goalsAchieved.Inc()
	case "goal.contribution":
		if outcome := tags["outcome"]; outcome != "" {
			m.goalContributions.WithLabelValues(outcome).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "insights.computation":
		m.insightsDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "active_budgets":
		m.activeBudgetsTotal.Set(value)
	}
}

// NoopMetrics discards every recording. Used where metrics are not wired,
// tests mostly.
type NoopMetrics struct{}

func NewNoopMetrics() MetricsRecorderInterface {
	return &NoopMetrics{}
}

func (m *NoopMetrics) IncrementCounter(name string, tags map[string]string)          {}
func (m *NoopMetrics) RecordProcessingTime(name string, duration time.Duration)      {}
func (m *NoopMetrics) RecordGauge(name string, value float64, tags map[string]string) {}
