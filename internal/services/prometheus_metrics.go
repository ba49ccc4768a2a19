package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	reportsBuilt        *prometheus.CounterVec
	reportDuration      *prometheus.HistogramVec
	sectionFailures     *prometheus.CounterVec
	storeCallFailures   *prometheus.CounterVec
	storeCallRejected   *prometheus.CounterVec
	circuitBreakerState *prometheus.GaugeVec
	priceAlerts         prometheus.Gauge
	chartsBuilt         *prometheus.CounterVec
	apiServed           *prometheus.CounterVec
	apiFailed           *prometheus.CounterVec
}

// NewPrometheusMetrics registers the analytics collectors with reg. Passing
// nil uses the default registerer, which is what the server exposes.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		reportsBuilt: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analytics_reports_total",
				Help: "Total number of analytics reports built",
			},
			[]string{"report", "status"},
		),
		reportDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "analytics_report_duration_milliseconds",
				Help:    "Analytics report build duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
			[]string{"report"},
		),
		sectionFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analytics_section_failures_total",
				Help: "Total number of report sections degraded by a storage failure",
			},
			[]string{"report", "section"},
		),
		storeCallFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "purchase_store_failures_total",
				Help: "Total number of failed purchase store calls",
			},
			[]string{"operation"},
		),
		storeCallRejected: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "purchase_store_rejected_total",
				Help: "Total number of purchase store calls rejected by the circuit breaker",
			},
			[]string{"operation"},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		priceAlerts: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "analytics_price_alerts_last",
				Help: "Number of price alerts in the most recent dashboard",
			},
		),
		chartsBuilt: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analytics_charts_total",
				Help: "Total number of charts built",
			},
			[]string{"kind", "status"},
		),
		apiServed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analytics_api_served_total",
				Help: "Total number of analytics API responses served, by endpoint",
			},
			[]string{"endpoint"},
		),
		apiFailed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analytics_api_failed_total",
				Help: "Total number of analytics API requests that failed server-side, by endpoint",
			},
			[]string{"endpoint"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "report.built":
		m.reportsBuilt.WithLabelValues(tags["report"], tags["status"]).Inc()
	case "report.section.failed":
		m.sectionFailures.WithLabelValues(tags["report"], tags["section"]).Inc()
	case "store.call.failed":
		m.storeCallFailures.WithLabelValues(tags["operation"]).Inc()
	case "store.call.rejected":
		m.storeCallRejected.WithLabelValues(tags["operation"]).Inc()
	case "chart.built":
		m.chartsBuilt.WithLabelValues(tags["kind"], tags["status"]).Inc()
	case "api.served":
		m.apiServed.WithLabelValues(tags["endpoint"]).Inc()
	case "api.failed":
		m.apiFailed.WithLabelValues(tags["endpoint"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "report.dashboard":
		m.reportDuration.WithLabelValues("dashboard").Observe(float64(duration.Milliseconds()))
	case "report.statistics":
		m.reportDuration.WithLabelValues("statistics").Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "circuit_breaker.state":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	case "report.price_alerts":
		m.priceAlerts.Set(value)
	}
}
