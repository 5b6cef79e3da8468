package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var latencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}

// Metrics holds the process-wide Prometheus metrics. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	RequestDuration      *prometheus.HistogramVec
	SessionStoreDuration *prometheus.HistogramVec
	SessionsCreated      prometheus.Counter
	AuditEventsDropped   prometheus.Counter
}

// New creates the metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "todolists_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route, method and status",
			Buckets: latencyBuckets,
		}, []string{"route", "method", "status"}),
		SessionStoreDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "todolists_session_store_duration_seconds",
			Help:    "Duration of session store operations",
			Buckets: latencyBuckets,
		}, []string{"backend", "op"}),
		SessionsCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "todolists_sessions_created_total",
			Help: "Total number of browser sessions started",
		}),
		AuditEventsDropped: f.NewCounter(prometheus.CounterOpts{
			Name: "todolists_audit_events_dropped_total",
			Help: "Audit events dropped because the publish buffer was full",
		}),
	}
}

// ObserveRequest records one HTTP request.
func (m *Metrics) ObserveRequest(route, method string, status int, start time.Time) {
	if m == nil {
		return
	}
	m.RequestDuration.WithLabelValues(route, method, strconv.Itoa(status)).Observe(time.Since(start).Seconds())
}

// ObserveSessionStore records one session store operation.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveSessionStore(backend, op string, start time.Time) {
	if m == nil {
		return
	}
	m.SessionStoreDuration.WithLabelValues(backend, op).Observe(time.Since(start).Seconds())
}

// IncrementSessionsCreated counts a freshly issued session cookie.
func (m *Metrics) IncrementSessionsCreated() {
	if m == nil {
		return
	}
	m.SessionsCreated.Inc()
}

// IncrementAuditDropped counts an audit event lost to backpressure.
func (m *Metrics) IncrementAuditDropped() {
	if m == nil {
		return
	}
	m.AuditEventsDropped.Inc()
}

// Handler exposes the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
