package metrics

import (
	"strconv"
	"time"

	"static-host/core/version"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Request outcomes recorded by the file server.
const (
	OutcomeFile      = "file"
	OutcomeDirectory = "directory"
	OutcomeNotFound  = "not_found"
	OutcomeError     = "error"
)

// Metrics holds the collectors of the static file server.
type Metrics struct {
	// BuildInfo exposes version, build date, and git commit.
	BuildInfo *prometheus.GaugeVec
	// Running is 1 while a file server instance is active.
	Running prometheus.Gauge
	// StartsTotal counts start attempts by result.
	StartsTotal *prometheus.CounterVec
	// RequestsTotal counts served requests by outcome and status code.
	RequestsTotal *prometheus.CounterVec
	// RequestDuration measures dispatch time in seconds.
	RequestDuration *prometheus.HistogramVec
	// ResponseSizeBytes measures response body sizes.
	ResponseSizeBytes *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// New registers the collectors on reg. A nil reg uses a fresh registry.
func New(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	f := promauto.With(reg)

	m := &Metrics{
		BuildInfo: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "build_info",
				Help: "Build information including version, build date, and git commit",
			},
			[]string{"version", "build_date", "git_commit"},
		),
		Running: f.NewGauge(
			prometheus.GaugeOpts{
				Name: "fileserver_running",
				Help: "Whether the static file server is running (1) or stopped (0)",
			},
		),
		StartsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fileserver_starts_total",
				Help: "Total number of file server start attempts",
			},
			[]string{"result"},
		),
		RequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fileserver_requests_total",
				Help: "Total number of requests served by the file server",
			},
			[]string{"outcome", "status_code"},
		),
		RequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fileserver_request_duration_seconds",
				Help:    "File server request duration in seconds",
				Buckets: []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"outcome"},
		),
		ResponseSizeBytes: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fileserver_response_size_bytes",
				Help:    "File server response size in bytes",
				Buckets: []float64{100, 1000, 10000, 100000, 1000000, 10000000},
			},
			[]string{"outcome"},
		),
		gatherer: reg,
	}

	m.BuildInfo.WithLabelValues(version.Version, version.BuildDate, version.GitCommit).Set(1)

	return m
}

// ObserveRequest records one dispatched request.
func (m *Metrics) ObserveRequest(outcome string, status int, size int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(outcome, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
	m.ResponseSizeBytes.WithLabelValues(outcome).Observe(float64(size))
}

// ObserveStart records a start attempt; result is "ok" or an error kind.
func (m *Metrics) ObserveStart(result string) {
	if m == nil {
		return
	}
	m.StartsTotal.WithLabelValues(result).Inc()
}

// SetRunning updates the running gauge.
func (m *Metrics) SetRunning(running bool) {
	if m == nil {
		return
	}
	if running {
		m.Running.Set(1)
	} else {
		m.Running.Set(0)
	}
}

// Handler exposes the registry in the Prometheus text format as a Fiber handler.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{}))
}
