package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gathered returns the value of the first sample of family name whose labels
// include want, or -1 when there is none.
func gathered(t *testing.T, reg *prometheus.Registry, name string, want map[string]string) float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			labels := map[string]string{}
			for _, pair := range metric.GetLabel() {
				labels[pair.GetName()] = pair.GetValue()
			}
			matched := true
			for k, v := range want {
				if labels[k] != v {
					matched = false
				}
			}
			if !matched {
				continue
			}
			switch {
			case metric.GetCounter() != nil:
				return metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				return metric.GetGauge().GetValue()
			case metric.GetHistogram() != nil:
				return float64(metric.GetHistogram().GetSampleCount())
			}
		}
	}
	return -1
}

func TestPrometheusMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(reg)

	metrics.IncrementCounter("report.built", map[string]string{"report": "dashboard", "status": "ok"})
	metrics.IncrementCounter("report.built", map[string]string{"report": "dashboard", "status": "ok"})
	metrics.IncrementCounter("report.built", map[string]string{"report": "statistics", "status": "partial"})
	metrics.IncrementCounter("report.section.failed", map[string]string{"report": "dashboard", "section": "weekly"})
	metrics.IncrementCounter("store.call.failed", map[string]string{"operation": "sum_total"})
	metrics.IncrementCounter("store.call.rejected", map[string]string{"operation": "sum_total"})
	metrics.IncrementCounter("chart.built", map[string]string{"kind": "monthly", "status": "ok"})
	metrics.IncrementCounter("unknown.metric", nil)

	assert.Equal(t, 2.0, gathered(t, reg, "analytics_reports_total", map[string]string{"report": "dashboard", "status": "ok"}))
	assert.Equal(t, 1.0, gathered(t, reg, "analytics_reports_total", map[string]string{"report": "statistics", "status": "partial"}))
	assert.Equal(t, 1.0, gathered(t, reg, "analytics_section_failures_total", map[string]string{"section": "weekly"}))
	assert.Equal(t, 1.0, gathered(t, reg, "purchase_store_failures_total", map[string]string{"operation": "sum_total"}))
	assert.Equal(t, 1.0, gathered(t, reg, "purchase_store_rejected_total", map[string]string{"operation": "sum_total"}))
	assert.Equal(t, 1.0, gathered(t, reg, "analytics_charts_total", map[string]string{"kind": "monthly"}))
}

func TestPrometheusMetrics_GaugesAndDurations(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(reg)

	metrics.RecordGauge("circuit_breaker.state", float64(StateOpen), map[string]string{"service": purchaseStoreService})
	metrics.RecordGauge("report.price_alerts", 4, nil)
	metrics.RecordProcessingTime("report.dashboard", 120*time.Millisecond)
	metrics.RecordProcessingTime("report.statistics", 80*time.Millisecond)
	metrics.RecordProcessingTime("report.statistics", 90*time.Millisecond)

	assert.Equal(t, 1.0, gathered(t, reg, "circuit_breaker_state", map[string]string{"service": purchaseStoreService}))
	assert.Equal(t, 4.0, gathered(t, reg, "analytics_price_alerts_last", nil))
	assert.Equal(t, 1.0, gathered(t, reg, "analytics_report_duration_milliseconds", map[string]string{"report": "dashboard"}))
	assert.Equal(t, 2.0, gathered(t, reg, "analytics_report_duration_milliseconds", map[string]string{"report": "statistics"}))
}

func TestPrometheusMetrics_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewPrometheusMetrics(prometheus.NewRegistry())
		NewPrometheusMetrics(prometheus.NewRegistry())
	})
}

func TestPrometheusMetrics_APICounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(reg)

	metrics.IncrementCounter("api.served", map[string]string{"endpoint": "dashboard"})
	metrics.IncrementCounter("api.served", map[string]string{"endpoint": "dashboard"})
	metrics.IncrementCounter("api.failed", map[string]string{"endpoint": "chart_monthly"})
	metrics.IncrementCounter("api.unknown", map[string]string{"endpoint": "dashboard"})

	assert.Equal(t, 2.0, gathered(t, reg, "analytics_api_served_total", map[string]string{"endpoint": "dashboard"}))
	assert.Equal(t, 1.0, gathered(t, reg, "analytics_api_failed_total", map[string]string{"endpoint": "chart_monthly"}))
}
