package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce       sync.Once
	feedRequestsTotal  *prometheus.CounterVec
	feedLatencySeconds *prometheus.HistogramVec
	feedErrorsTotal    *prometheus.CounterVec
)

// RegisterMetrics initialises the Prometheus collectors used for request observability.
func RegisterMetrics() {
	registerOnce.Do(func() {
		feedRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "feed_requests_total",
			Help: "Total number of API requests served.",
		}, []string{"method", "route", "status"})

		feedLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "feed_latency_seconds",
			Help:    "Latency distribution for API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		feedErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "feed_errors_total",
			Help: "Total number of error responses returned by the API.",
		}, []string{"method", "route", "status"})

		prometheus.MustRegister(feedRequestsTotal, feedLatencySeconds, feedErrorsTotal)
	})
}

// Requests exposes the counter for served requests.
func Requests() *prometheus.CounterVec {
	RegisterMetrics()
	return feedRequestsTotal
}

// Latency exposes the latency histogram for served requests.
func Latency() *prometheus.HistogramVec {
	RegisterMetrics()
	return feedLatencySeconds
}

// Errors exposes the counter for error responses.
func Errors() *prometheus.CounterVec {
	RegisterMetrics()
	return feedErrorsTotal
}
