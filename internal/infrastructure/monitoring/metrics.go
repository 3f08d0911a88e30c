// Package monitoring exposes engine and HTTP metrics to Prometheus.
package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/application/port"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/entity"
)

const namespace = "tabsnap"

// Metrics holds all Prometheus metrics
type Metrics struct {
	registry *prometheus.Registry

	// Capture metrics
	CapturesTotal   *prometheus.CounterVec
	CaptureFailures *prometheus.CounterVec
	CaptureDuration prometheus.Histogram
	CapturedTabs    prometheus.Histogram
	EvictedTotal    prometheus.Counter

	// Restore metrics
	RestoresTotal   *prometheus.CounterVec
	RestoreDuration prometheus.Histogram
	RestoredItems   *prometheus.CounterVec
	RestoreWarnings *prometheus.CounterVec

	Templates prometheus.Gauge

	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

var _ port.EngineMetrics = (*Metrics)(nil)

// NewMetrics creates the collectors on a private registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,

		CapturesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "captures_total",
				Help:      "Total number of sessions captured",
			},
			[]string{"kind"},
		),
		CaptureFailures: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "capture_failures_total",
				Help:      "Total number of failed captures",
			},
			[]string{"kind", "reason"},
		),
		CaptureDuration: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "capture_duration_seconds",
				Help:      "Capture duration in seconds",
				Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
		),
		CapturedTabs: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "captured_tabs",
				Help:      "Number of tabs per captured session",
				Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500},
			},
		),
		EvictedTotal: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sessions_evicted_total",
				Help:      "Sessions dropped from the history ledger by the size cap",
			},
		),

		RestoresTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "restores_total",
				Help:      "Total number of restore requests by outcome",
			},
			[]string{"outcome"},
		),
		RestoreDuration: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "restore_duration_seconds",
				Help:      "Restore duration in seconds",
				Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
			},
		),
		RestoredItems: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "restored_items_total",
				Help:      "Windows, tabs and groups recreated by restores",
			},
			[]string{"item"},
		),
		RestoreWarnings: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "restore_warnings_total",
				Help:      "Host failures recovered during restores",
			},
			[]string{"stage"},
		),

		Templates: f.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "templates",
				Help:      "Number of stored session templates",
			},
		),

		RequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// CaptureCompleted implements port.EngineMetrics.
func (m *Metrics) CaptureCompleted(kind entity.SessionKind, tabs int, d time.Duration) {
	m.CapturesTotal.WithLabelValues(string(kind)).Inc()
	m.CaptureDuration.Observe(d.Seconds())
	m.CapturedTabs.Observe(float64(tabs))
}

// CaptureFailed implements port.EngineMetrics.
func (m *Metrics) CaptureFailed(kind entity.SessionKind, reason string) {
	m.CaptureFailures.WithLabelValues(string(kind), reason).Inc()
}

// RestoreCompleted implements port.EngineMetrics.
func (m *Metrics) RestoreCompleted(result entity.RestoreResult, d time.Duration) {
	outcome := "complete"
	if len(result.Warnings) > 0 {
		outcome = "partial"
	}
	m.RestoresTotal.WithLabelValues(outcome).Inc()
	m.RestoreDuration.Observe(d.Seconds())
	m.RestoredItems.WithLabelValues("window").Add(float64(result.RestoredWindows))
	m.RestoredItems.WithLabelValues("tab").Add(float64(result.RestoredTabs))
	m.RestoredItems.WithLabelValues("group").Add(float64(result.RestoredGroups))
	for _, w := range result.Warnings {
		m.RestoreWarnings.WithLabelValues(string(w.Stage)).Inc()
	}
}

// RestoreRejected implements port.EngineMetrics.
func (m *Metrics) RestoreRejected(reason string) {
	m.RestoresTotal.WithLabelValues(reason).Inc()
}

// SessionsEvicted implements port.EngineMetrics.
func (m *Metrics) SessionsEvicted(n int) {
	m.EvictedTotal.Add(float64(n))
}

// TemplateCount implements port.EngineMetrics.
func (m *Metrics) TemplateCount(n int) {
	m.Templates.Set(float64(n))
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}
