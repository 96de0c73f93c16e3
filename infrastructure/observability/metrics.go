// Package observability holds the Prometheus metrics for the service.
package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds all Prometheus metrics for the application. Each
// collector owns its registry, so independent instances (one per test,
// one per process) never collide on registration.
type Collector struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Business metrics
	UsersCreated       prometheus.Counter
	ConnectionsCreated prometheus.Counter
	ConnectionsRemoved prometheus.Counter

	// Recommendation metrics
	Recommendations        *prometheus.CounterVec
	RecommendationDuration *prometheus.HistogramVec
}

// NewCollector creates a new metrics collector with the given namespace
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	httpRequests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	usersCreated := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "users_created_total",
			Help:      "Total number of users added to the network",
		},
	)

	connectionsCreated := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "connections_created_total",
			Help:      "Total number of connections added",
		},
	)

	connectionsRemoved := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "connections_removed_total",
			Help:      "Total number of connections removed",
		},
	)

	recommendations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recommendations_total",
			Help:      "Total number of recommendation queries",
		},
		[]string{"strategy"},
	)

	recommendationDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "recommendation_duration_seconds",
			Help:      "Recommendation computation duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"strategy"},
	)

	registry.MustRegister(
		httpRequests,
		httpDuration,
		usersCreated,
		connectionsCreated,
		connectionsRemoved,
		recommendations,
		recommendationDuration,
	)

	return &Collector{
		registry:               registry,
		HTTPRequests:           httpRequests,
		HTTPDuration:           httpDuration,
		UsersCreated:           usersCreated,
		ConnectionsCreated:     connectionsCreated,
		ConnectionsRemoved:     connectionsRemoved,
		Recommendations:        recommendations,
		RecommendationDuration: recommendationDuration,
	}
}

// Handler exposes the collector's registry for the /metrics endpoint.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// ObserveRecommendation records one recommendation query.
func (c *Collector) ObserveRecommendation(strategy string, elapsed time.Duration) {
	c.Recommendations.WithLabelValues(strategy).Inc()
	c.RecommendationDuration.WithLabelValues(strategy).Observe(elapsed.Seconds())
}
