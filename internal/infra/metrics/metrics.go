// Package metrics exposes Prometheus instrumentation for the HTTP server and the database pool.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"localguide/config"
	deliverycontext "localguide/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	defaultNamespace = "localguide"
	defaultPath      = "/metrics"
	unmatchedRoute   = "unmatched"
)

// Metrics holds Prometheus metrics for the service
type Metrics struct {
	registry *prometheus.Registry
	path     string
	enabled  bool

	RequestCounter   *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge
	DBConnPoolStats  *prometheus.GaugeVec
}

// New creates a metrics instance backed by its own registry, so tests and
// multiple servers in one process never collide on registration.
func New(cfg *config.Config) *Metrics {
	namespace := defaultNamespace
	path := defaultPath
	enabled := true
	if cfg != nil && cfg.Metrics != nil {
		if cfg.Metrics.Namespace != "" {
			namespace = cfg.Metrics.Namespace
		}
		if cfg.Metrics.Path != "" {
			path = cfg.Metrics.Path
		}
		enabled = cfg.Metrics.Enabled
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		path:     path,
		enabled:  enabled,
		RequestCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		RequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_in_flight",
				Help:      "Number of requests currently being processed",
			},
		),
		DBConnPoolStats: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "db",
				Name:      "connection_pool",
				Help:      "Database connection pool statistics",
			},
			[]string{"stat"},
		),
	}
}

// Enabled reports whether the exposition endpoint should be mounted.
func (m *Metrics) Enabled() bool {
	return m.enabled
}

// Path returns the exposition endpoint path.
func (m *Metrics) Path() string {
	return m.path
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware records request counts, durations and in-flight requests per matched route.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().URL.Path == m.path {
				return next(c)
			}

			m.RequestsInFlight.Inc()
			defer m.RequestsInFlight.Dec()

			start := time.Now()
			err := next(c)

			route := c.Path()
			if route == "" {
				route = unmatchedRoute
			}
			method := c.Request().Method

			status := deliverycontext.ResponseStatus(c, err)

			m.RequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			m.RequestCounter.WithLabelValues(method, route, strconv.Itoa(status)).Inc()

			return err
		}
	}
}

// RecordDBPoolStats records database connection pool statistics
func (m *Metrics) RecordDBPoolStats(stats sql.DBStats) {
	m.DBConnPoolStats.WithLabelValues("open").Set(float64(stats.OpenConnections))
	m.DBConnPoolStats.WithLabelValues("in_use").Set(float64(stats.InUse))
	m.DBConnPoolStats.WithLabelValues("idle").Set(float64(stats.Idle))
	m.DBConnPoolStats.WithLabelValues("wait_count").Set(float64(stats.WaitCount))
	m.DBConnPoolStats.WithLabelValues("wait_duration_ms").Set(float64(stats.WaitDuration.Milliseconds()))
}
