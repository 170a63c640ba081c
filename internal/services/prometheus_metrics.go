package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	projectionsTotal          *prometheus.CounterVec
	projectionDuration        prometheus.Histogram
	settlementRunsTotal       *prometheus.CounterVec
	settlementDuration        prometheus.Histogram
	instrumentsSettled        prometheus.Gauge
	instrumentsCreatedTotal   *prometheus.CounterVec
	manualSettlementsTotal    *prometheus.CounterVec
	authenticationEventsTotal *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		projectionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "forecast_projections_total",
				Help: "Total number of balance projections computed",
			},
			[]string{"status"},
		),
		projectionDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "forecast_projection_duration_milliseconds",
				Help:    "Balance projection duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		settlementRunsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settlement_runs_total",
				Help: "Total number of settlement passes",
			},
			[]string{"status"},
		),
		settlementDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "settlement_run_duration_milliseconds",
				Help:    "Settlement pass duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		instrumentsSettled: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "settlement_instruments_applied",
				Help: "Instruments settled by the most recent settlement pass",
			},
		),
		instrumentsCreatedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "instruments_created_total",
				Help: "Total number of instruments recorded",
			},
			[]string{"kind"},
		),
		manualSettlementsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "instruments_settled_manually_total",
				Help: "Total number of instruments settled by explicit request",
			},
			[]string{"status"},
		),
		authenticationEventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case "forecast.projection":
		if status != "" {
			m.projectionsTotal.WithLabelValues(status).Inc()
		}
	case "settlement.run":
		if status != "" {
			m.settlementRunsTotal.WithLabelValues(status).Inc()
		}
	case "instrument.created":
		if kind := tags["kind"]; kind != "" {
			m.instrumentsCreatedTotal.WithLabelValues(kind).Inc()
		}
	case "instrument.settled":
		if tags["trigger"] == "manual" && status != "" {
			m.manualSettlementsTotal.WithLabelValues(status).Inc()
		}
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "forecast.projection":
		m.projectionDuration.Observe(float64(duration.Milliseconds()))
	case "settlement.run":
		m.settlementDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	if name == "settlement.applied" {
		m.instrumentsSettled.Set(value)
	}
}
