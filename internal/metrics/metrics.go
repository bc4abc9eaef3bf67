// Package metrics defines Prometheus metrics for product-browser.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pb"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})
)

// Upstream catalog API metrics.
var (
	CatalogCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_calls_total",
		Help:      "Total calls issued to the upstream catalog API.",
	}, []string{"operation"})

	CatalogErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_errors_total",
		Help:      "Total failed calls to the upstream catalog API.",
	}, []string{"operation"})

	CatalogRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "catalog_request_duration_seconds",
		Help:      "Duration of upstream catalog API calls in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})

	CatalogUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "catalog_up",
		Help:      "Whether the last availability probe of the catalog API succeeded (1) or failed (0).",
	})
)

// Search widget metrics.
var (
	SearchQueriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "search_queries_total",
		Help:      "Total search lookups issued on behalf of the search widget.",
	})
)

// Health endpoint gauges.
var (
	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "Result of the last /healthz probe (1 up, 0 down).",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "Result of the last /readyz probe (1 up, 0 down).",
	})
)
