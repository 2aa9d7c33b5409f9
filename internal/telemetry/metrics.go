// internal/telemetry/metrics.go
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	requestsCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "requests_created_total",
			Help: "Total number of orders created",
		},
	)

	requestsRejectedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "requests_rejected_total",
			Help: "Total number of order creations rejected, by error kind",
		},
		[]string{"kind"},
	)

	requestsRatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "requests_rated_total",
			Help: "Total number of orders rated",
		},
	)

	requestsCanceledTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "canceled_requests_total",
			Help: "Total number of orders canceled",
		},
		[]string{"reason"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpRequestDuration)
	prometheus.MustRegister(requestsCreatedTotal)
	prometheus.MustRegister(requestsRejectedTotal)
	prometheus.MustRegister(requestsRatedTotal)
	prometheus.MustRegister(requestsCanceledTotal)
}

func ObserveHTTPRequest(method, endpoint, status string, seconds float64) {
	httpRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	httpRequestDuration.WithLabelValues(method, endpoint).Observe(seconds)
}

func RecordRequestCreated() { requestsCreatedTotal.Inc() }

func RecordRequestRejected(kind string) { requestsRejectedTotal.WithLabelValues(kind).Inc() }

func RecordRequestRated() { requestsRatedTotal.Inc() }

// RecordRequestCanceled counts a cancellation; reason is "stale" or the actor role.
func RecordRequestCanceled(reason string) { requestsCanceledTotal.WithLabelValues(reason).Inc() }
