// Package metrics exposes Prometheus metrics for HTTP traffic and
// transaction generation.
package metrics

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"subtrack/internal/services"
)

// unmatchedRoute labels requests that hit no registered route.
const unmatchedRoute = "unmatched"

// Metrics owns a registry and the collectors registered on it.
type Metrics struct {
	registry        *prometheus.Registry
	requestCount    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	generatorRuns   prometheus.Counter
	generated       *prometheus.CounterVec
	generatorTime   prometheus.Histogram
	lastRun         prometheus.Gauge
}

// New creates a registry with the process and Go collectors plus the
// application metrics.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "requests_total",
				Help: "How many HTTP requests processed, partitioned by status code and HTTP method.",
			},
			[]string{"code", "method", "url"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "request_duration_seconds",
				Help: "The HTTP request latencies in seconds.",
			},
			[]string{"code", "method", "url"},
		),
		generatorRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "generator_runs_total",
			Help: "Completed transaction generator runs.",
		}),
		generated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "generator_subscriptions_total",
				Help: "Subscriptions processed by the generator, partitioned by outcome.",
			},
			[]string{"outcome"},
		),
		generatorTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name: "generator_run_duration_seconds",
			Help: "Duration of transaction generator runs in seconds.",
		}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "generator_last_run_timestamp_seconds",
			Help: "Unix time of the last completed generator run.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requestCount,
		m.requestDuration,
		m.generatorRuns,
		m.generated,
		m.generatorTime,
		m.lastRun,
	)
	return m
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on ln until ctx is cancelled. It is used by
// processes that have no gin router, like the queue worker.
func (m *Metrics) Serve(ctx context.Context, ln net.Listener) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	done := make(chan error, 1)
	go func() { done <- srv.Serve(ln) }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-done; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Middleware records request counts and latencies.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		elapsed := float64(time.Since(start)) / float64(time.Second)

		// The route template keeps label cardinality bounded.
		url := c.FullPath()
		if url == "" {
			url = unmatchedRoute
		}

		m.requestDuration.WithLabelValues(status, c.Request.Method, url).Observe(elapsed)
		m.requestCount.WithLabelValues(status, c.Request.Method, url).Inc()
	}
}

// ObserveGeneration implements services.GenerationObserver.
func (m *Metrics) ObserveGeneration(_ context.Context, result *services.GenerateResult) {
	if result == nil {
		return
	}
	m.generatorRuns.Inc()
	m.generated.WithLabelValues("created").Add(float64(result.Created))
	m.generated.WithLabelValues("skipped").Add(float64(result.Skipped))
	m.generated.WithLabelValues("failed").Add(float64(len(result.Errors)))
	m.generatorTime.Observe(result.Duration.Seconds())
	m.lastRun.SetToCurrentTime()
}
