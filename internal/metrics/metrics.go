package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector aggregates the portal's operational counters. Handlers
// record into it; the standalone metrics server exposes it.
type Collector struct {
	applicationsSubmitted prometheus.Counter
	validationFailures    prometheus.Counter
	authFailures          prometheus.Counter
	requests              *prometheus.CounterVec
	requestDuration       prometheus.Histogram
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		applicationsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "visahub_applications_submitted_total",
			Help: "Total visa applications accepted for processing",
		}),
		validationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "visahub_validation_failures_total",
			Help: "Total submissions rejected by server-side validation",
		}),
		authFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "visahub_auth_failures_total",
			Help: "Total requests rejected for missing or invalid credentials",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "visahub_requests_total",
			Help: "Requests by method and path",
		}, []string{"method", "path"}),
		requestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "visahub_request_duration_seconds",
			Help:    "Request handling latency in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		c.applicationsSubmitted,
		c.validationFailures,
		c.authFailures,
		c.requests,
		c.requestDuration,
	)

	return c
}

func (c *Collector) RecordApplicationSubmitted() {
	c.applicationsSubmitted.Inc()
}

func (c *Collector) RecordValidationFailure() {
	c.validationFailures.Inc()
}

func (c *Collector) RecordAuthFailure() {
	c.authFailures.Inc()
}

func (c *Collector) RecordRequest(method, path string, duration time.Duration) {
	c.requests.WithLabelValues(method, path).Inc()
	c.requestDuration.Observe(duration.Seconds())
}

// Handler returns the Prometheus scrape handler for the registry.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Routes returns a mux serving /metrics, run on its own listener so
// scrapes never share a port with the API.
func Routes(gatherer prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler(gatherer))
	return mux
}
