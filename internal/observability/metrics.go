package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Failure reasons reported on the notifications_failed_total counter.
const (
	ReasonSerialize = "serialize"
	ReasonService   = "service"
	ReasonUnknown   = "unknown"
)

// Metrics stores the Prometheus collectors for the API and the notifier.
// All record methods are nil-safe so tests can pass a nil *Metrics.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal         *prometheus.CounterVec
	httpRequestDuration       *prometheus.HistogramVec
	notificationsSentTotal    *prometheus.CounterVec
	notificationsFailedTotal  *prometheus.CounterVec
	notificationsSkippedTotal *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "schedule_notify",
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests by method, path, and status.",
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "schedule_notify",
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds by method and path.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		notificationsSentTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "schedule_notify",
				Name:      "notifications_sent_total",
				Help:      "Total number of schedule notifications delivered to the queue.",
			},
			[]string{"event"},
		),
		notificationsFailedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "schedule_notify",
				Name:      "notifications_failed_total",
				Help:      "Total number of schedule notifications that failed, by reason.",
			},
			[]string{"event", "reason"},
		),
		notificationsSkippedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "schedule_notify",
				Name:      "notifications_skipped_total",
				Help:      "Total number of schedule notifications skipped because publishing is disabled.",
			},
			[]string{"event"},
		),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.notificationsSentTotal,
		m.notificationsFailedTotal,
		m.notificationsSkippedTotal,
	)

	return m
}

// Handler serves the registry for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (m *Metrics) RecordSent(event string) {
	if m == nil {
		return
	}
	m.notificationsSentTotal.WithLabelValues(event).Inc()
}

func (m *Metrics) RecordFailed(event, reason string) {
	if m == nil {
		return
	}
	m.notificationsFailedTotal.WithLabelValues(event, reason).Inc()
}

func (m *Metrics) RecordSkipped(event string) {
	if m == nil {
		return
	}
	m.notificationsSkippedTotal.WithLabelValues(event).Inc()
}
