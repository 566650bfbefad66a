package metrics

import (
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

const namespace = "neighborhood_gateway"

// unmatchedPath labels requests that matched no route, keeping raw paths out of label values
const unmatchedPath = "unmatched"

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests processed",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"method", "path"})

	// Provider metrics
	ProviderRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "provider",
		Name:      "requests_total",
		Help:      "Total outbound provider calls by operation and outcome",
	}, []string{"operation", "outcome"})

	ProviderRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "provider",
		Name:      "request_duration_seconds",
		Help:      "Outbound provider call latency in seconds",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	}, []string{"operation"})

	// Spatial store metrics
	ContainmentQueryDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "db",
		Name:      "containment_query_duration_seconds",
		Help:      "Latency of neighborhood containment queries",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	})

	ContainmentQueryErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "db",
		Name:      "containment_query_errors_total",
		Help:      "Total failed neighborhood containment queries",
	})

	DBPoolConnsOpen = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "db",
		Name:      "pool_conns_open",
		Help:      "Total connections open in the database pool",
	})

	DBPoolConnsInUse = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "db",
		Name:      "pool_conns_in_use",
		Help:      "Connections currently checked out of the database pool",
	})

	DBPoolConnsIdle = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "db",
		Name:      "pool_conns_idle",
		Help:      "Idle connections in the database pool",
	})
)

// Outcome labels for ProviderRequestsTotal
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// ObserveProvider records one provider call started at start
func ObserveProvider(operation string, start time.Time, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	ProviderRequestsTotal.WithLabelValues(operation, outcome).Inc()
	ProviderRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// Middleware records request metrics.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		duration := time.Since(start).Seconds()
		code := c.Response().StatusCode()
		path := c.Route().Path

		// ErrorHandler has not run yet, so the status comes from the error itself
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			if code == fiber.StatusNotFound {
				path = unmatchedPath
			}
		} else if err != nil {
			code = fiber.StatusInternalServerError
		}
		if path == "" {
			path = unmatchedPath
		}

		status := strconv.Itoa(code)
		// label values are retained by the registry; Method points into a reused fasthttp buffer
		method := utils.CopyString(c.Method())

		httpRequestsTotal.WithLabelValues(method, path, status).Inc()
		httpRequestDuration.WithLabelValues(method, path).Observe(duration)

		return err
	}
}

// Handler returns a Fiber handler serving Prometheus /metrics endpoint.
func Handler() fiber.Handler {
	handler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	return func(c *fiber.Ctx) error {
		handler(c.Context())
		return nil
	}
}

// UpdateDBPoolMetrics updates pool gauges from database/sql stats.
func UpdateDBPoolMetrics(stats sql.DBStats) {
	DBPoolConnsOpen.Set(float64(stats.OpenConnections))
	DBPoolConnsInUse.Set(float64(stats.InUse))
	DBPoolConnsIdle.Set(float64(stats.Idle))
}
