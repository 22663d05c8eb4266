// Package metrics exposes Prometheus collectors for the contact pipeline
// and the HTTP server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/portfolio/contactmail/internal/web"
)

const namespace = "contactmail"

// Metrics holds every collector. Create one per registry.
type Metrics struct {
	registry prometheus.Gatherer

	SubmissionsTotal *prometheus.CounterVec
	DeliveryDuration *prometheus.HistogramVec
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
}

// New registers all collectors with reg.
// Pass prometheus.NewRegistry() in tests to avoid global state.
func New(reg *prometheus.Registry) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,

		SubmissionsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "submissions_total",
				Help:      "Total number of contact submissions by result",
			},
			[]string{"result"}, // sent, invalid, service_not_configured, provider_rejection, transport_exception, unhandled
		),

		DeliveryDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "delivery_duration_seconds",
				Help:      "Duration of email provider calls",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"result"},
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
				Help:      "Duration of HTTP requests",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}
}

// NewDefault registers collectors with a fresh registry that also carries
// the Go runtime and process collectors.
func NewDefault() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return New(reg)
}

// ObserveSubmission counts a finished submission.
func (m *Metrics) ObserveSubmission(result string) {
	m.SubmissionsTotal.WithLabelValues(result).Inc()
}

// ObserveDelivery records the duration of one provider call.
func (m *Metrics) ObserveDelivery(result string, elapsed time.Duration) {
	m.DeliveryDuration.WithLabelValues(result).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records request counts and durations labelled by route pattern.
// Requests that match no route are labelled "unmatched".
func (m *Metrics) Middleware() web.Middleware {
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(c web.Context) error {
			start := time.Now()
			err := next(c)

			path := "unmatched"
			if rctx := chi.RouteContext(c.Request().Context()); rctx != nil {
				if p := rctx.RoutePattern(); p != "" {
					path = p
				}
			}

			status := http.StatusOK
			if sw, ok := c.Response().(interface{ Status() int }); ok {
				status = sw.Status()
			}
			if err != nil && !c.Written() {
				status = http.StatusInternalServerError
			}

			method := c.Request().Method
			m.RequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
			m.RequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
			return err
		}
	}
}
