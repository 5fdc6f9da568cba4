// Package metrics exposes Prometheus collectors for HTTP traffic and affiliate tracking.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"petplace/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "petplace"

// Metrics owns a private registry so tests and multiple processes don't collide on the default one.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	affiliateClicks      *prometheus.CounterVec
	affiliateConversions *prometheus.CounterVec
	affiliateRevenue     *prometheus.CounterVec
}

// New registers every collector on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests handled.",
			},
			[]string{"method", "path", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests.",
				Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
			},
			[]string{"method", "path"},
		),
		affiliateClicks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "affiliate",
				Name:      "clicks_total",
				Help:      "Total number of tracked affiliate redirects.",
			},
			[]string{"partner"},
		),
		affiliateConversions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "affiliate",
				Name:      "conversions_total",
				Help:      "Total number of recorded affiliate conversions.",
			},
			[]string{"partner"},
		),
		affiliateRevenue: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "affiliate",
				Name:      "revenue_total",
				Help:      "Accumulated affiliate commission.",
			},
			[]string{"partner"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.affiliateClicks,
		m.affiliateConversions,
		m.affiliateRevenue,
	)

	return m
}

// AsAffiliateMetrics exposes the affiliate counters through the domain interface.
func AsAffiliateMetrics(m *Metrics) service.AffiliateMetrics {
	return m
}

// RegisterDB exports connection pool statistics of db, labelled with dbName.
func (m *Metrics) RegisterDB(db *sql.DB, dbName string) error {
	return m.registry.Register(collectors.NewDBStatsCollector(db, dbName))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records request counts and latency labelled by the matched route.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			method := c.Request().Method
			status := strconv.Itoa(c.Response().Status)

			m.httpRequests.WithLabelValues(method, path, status).Inc()
			m.httpDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())

			return nil
		}
	}
}

// ClickTracked counts a redirect through a partner link.
func (m *Metrics) ClickTracked(partner string) {
	m.affiliateClicks.WithLabelValues(partner).Inc()
}

// ConversionTracked counts a conversion and adds its commission.
func (m *Metrics) ConversionTracked(partner string, commission float64) {
	m.affiliateConversions.WithLabelValues(partner).Inc()
	if commission > 0 {
		m.affiliateRevenue.WithLabelValues(partner).Add(commission)
	}
}
