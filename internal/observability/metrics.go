// Package observability holds the Prometheus instruments for the HTTP API.
// The /metrics endpoint exposes them through the default registry.
package observability

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fleetdash_http_requests_total",
			Help: "HTTP requests served, by method, route and status.",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fleetdash_http_request_duration_seconds",
			Help:    "HTTP request latency, by method and route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	reportsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fleetdash_reports_generated_total",
			Help: "Vehicle reports generated.",
		},
	)

	fuelEventsRecorded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fleetdash_fuel_events_recorded_total",
			Help: "Fuel events appended to the ledger.",
		},
	)
)

// GinMiddleware records request counts and latency per route. The route
// template is used rather than the raw path so ids do not explode the label
// space.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// ReportGenerated bumps the report counter.
func ReportGenerated() { reportsGenerated.Inc() }

// FuelEventRecorded bumps the ledger counter.
func FuelEventRecorded() { fuelEventsRecorded.Inc() }
