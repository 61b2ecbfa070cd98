// Package metrics exports service counters to Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const Namespace = "tours"

const (
	OutcomeSent   = "sent"
	OutcomeFailed = "failed"
)

// Metrics owns a private registry so that several instances can coexist in
// one process.
type Metrics struct {
	registry *prometheus.Registry

	bookingsCreated prometheus.Counter
	notifications   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		bookingsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "bookings_created_total",
			Help:      "Count of bookings persisted.",
		}),

		notifications: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "notifications_dispatched_total",
			Help:      "Count of notification emails handed to the relay, by kind and outcome.",
		}, []string{"kind", "outcome"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests by route and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

// Registry exposes the underlying registry for tests and extra collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RegisterQueueDepth exports pending as the notification queue depth gauge.
func (m *Metrics) RegisterQueueDepth(pending func() int) {
	promauto.With(m.registry).NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "notification_queue_depth",
		Help:      "Notification tasks accepted but not yet picked up by a worker.",
	}, func() float64 {
		return float64(pending())
	})
}

func (m *Metrics) BookingCreated() {
	m.bookingsCreated.Inc()
}

// NotificationDispatched counts one send attempt of kind.
func (m *Metrics) NotificationDispatched(kind string, err error) {
	outcome := OutcomeSent
	if err != nil {
		outcome = OutcomeFailed
	}
	m.notifications.WithLabelValues(kind, outcome).Inc()
}

// ObserveRequest records one served request. route is the matched path
// template, not the raw URI.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
