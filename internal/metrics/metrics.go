// Package metrics registers the Prometheus collectors of the savings service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, route and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal counts HTTP requests by method, route and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// SavingsEstimatesTotal counts estimator invocations by outcome (success, cached, invalid).
	SavingsEstimatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "savings_estimates_total",
			Help: "Total number of savings estimates",
		},
		[]string{"status"},
	)

	// SavingsEstimateDuration tracks the time spent producing one estimate.
	SavingsEstimateDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "savings_estimate_duration_seconds",
			Help:    "Savings estimate duration in seconds",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	// ReportsGeneratedTotal counts PDF reports by outcome.
	ReportsGeneratedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "savings_reports_total",
			Help: "Total number of generated PDF savings reports",
		},
		[]string{"status"},
	)

	// CircuitBreakerState reports each breaker's state: 0 closed, 1 open, 2 half-open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"name"},
	)

	// CacheOperationsTotal counts estimate cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize is the number of entries in the in-process estimate cache.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// CacheCapacity is the configured capacity of the in-process estimate cache.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		HTTPRequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
		HTTPRequestTotal.WithLabelValues(c.Request.Method, path, status).Inc()
	}
}

// RecordSavingsEstimate records one estimator invocation.
func RecordSavingsEstimate(duration time.Duration, status string) {
	SavingsEstimateDuration.Observe(duration.Seconds())
	SavingsEstimatesTotal.WithLabelValues(status).Inc()
}

// RecordReport records one PDF report generation.
func RecordReport(status string) {
	ReportsGeneratedTotal.WithLabelValues(status).Inc()
}

// SetCircuitBreakerState publishes the state of the named circuit breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity gauges.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}
