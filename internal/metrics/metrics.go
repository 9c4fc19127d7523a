// Package metrics exposes Prometheus metrics for reading log versioning,
// moderation and the HTTP layer.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "readtrack"

// Metrics holds every collector of the service. A nil *Metrics is valid and
// records nothing, so services can be built without a registry in tests.
type Metrics struct {
	registry *prometheus.Registry

	logsWritten          *prometheus.CounterVec
	pageConflicts        *prometheus.CounterVec
	moderationActions    *prometheus.CounterVec
	notificationFailures prometheus.Counter
	httpRequests         *prometheus.CounterVec
	httpDuration         *prometheus.HistogramVec
}

// New creates the collectors and registers them, together with the Go and
// process collectors, on a fresh registry.
func New() (*Metrics, error) {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		logsWritten: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reading_logs_written_total",
			Help:      "Reading log mutations by operation.",
		}, []string{"operation"}), // operation: create, update, delete
		pageConflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_count_conflicts_total",
			Help:      "Writes rejected because total pages disagree with the chain.",
		}, []string{"operation"}),
		moderationActions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moderation_actions_total",
			Help:      "Moderation actions by kind.",
		}, []string{"action"}), // action: flag, restore, update, freeze, unfreeze, promote, demote
		notificationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "violation_notification_failures_total",
			Help:      "Violation notices that could not be delivered.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status_code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	for _, c := range []prometheus.Collector{
		m.logsWritten,
		m.pageConflicts,
		m.moderationActions,
		m.notificationFailures,
		m.httpRequests,
		m.httpDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := m.registry.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// LogWritten records a successful reading log mutation.
func (m *Metrics) LogWritten(operation string) {
	if m == nil {
		return
	}
	m.logsWritten.WithLabelValues(operation).Inc()
}

// PageConflict records a write rejected by the page count check.
func (m *Metrics) PageConflict(operation string) {
	if m == nil {
		return
	}
	m.pageConflicts.WithLabelValues(operation).Inc()
}

// ModerationAction records a committed moderation action.
func (m *Metrics) ModerationAction(action string) {
	if m == nil {
		return
	}
	m.moderationActions.WithLabelValues(action).Inc()
}

// NotificationFailed records an undeliverable violation notice.
func (m *Metrics) NotificationFailed() {
	if m == nil {
		return
	}
	m.notificationFailures.Inc()
}

// HTTPRequest records one served HTTP request.
func (m *Metrics) HTTPRequest(method, route string, status int, seconds float64) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(seconds)
}
