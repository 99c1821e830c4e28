package service

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the portal.
type MetricsService struct {
	registry         *prometheus.Registry
	handler          http.Handler
	requestDuration  *prometheus.HistogramVec
	requestTotal     *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	upstreamTotal    *prometheus.CounterVec
	jobDuration      *prometheus.HistogramVec
	activeSessions   prometheus.Gauge
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	upstreamDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "upstream_request_duration_seconds",
		Help:    "Duration of calls to the records API",
		Buckets: prometheus.DefBuckets,
	}, []string{"resource", "method"})

	upstreamTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "upstream_requests_total",
		Help: "Total calls to the records API by outcome",
	}, []string{"resource", "method", "outcome"})

	jobDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "background_job_duration_seconds",
		Help:    "Duration of background jobs",
		Buckets: prometheus.DefBuckets,
	}, []string{"queue", "type", "outcome"})

	activeSessions := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "portal_active_sessions",
		Help: "Number of open workspaces",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, upstreamDuration, upstreamTotal, jobDuration, activeSessions, goroutines)

	return &MetricsService{
		registry:         registry,
		handler:          promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration:  requestDuration,
		requestTotal:     requestTotal,
		upstreamDuration: upstreamDuration,
		upstreamTotal:    upstreamTotal,
		jobDuration:      jobDuration,
		activeSessions:   activeSessions,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// Registry exposes the underlying registry, mainly for tests.
func (m *MetricsService) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveHTTPRequest records request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// ObserveUpstreamCall records one call to the records API.
func (m *MetricsService) ObserveUpstreamCall(resource, method string, success bool, duration time.Duration) {
	if m == nil {
		return
	}
	m.upstreamDuration.WithLabelValues(resource, method).Observe(duration.Seconds())
	m.upstreamTotal.WithLabelValues(resource, method, outcome(success)).Inc()
}

// ObserveJob records one background job attempt.
func (m *MetricsService) ObserveJob(queue, jobType string, success bool, duration time.Duration) {
	if m == nil {
		return
	}
	m.jobDuration.WithLabelValues(queue, jobType, outcome(success)).Observe(duration.Seconds())
}

// SetActiveSessions publishes the number of open workspaces.
func (m *MetricsService) SetActiveSessions(n int) {
	if m == nil {
		return
	}
	m.activeSessions.Set(float64(n))
}

func outcome(success bool) string {
	if success {
		return "success"
	}
	return "error"
}
