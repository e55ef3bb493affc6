package metrics_test

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"static-host/core/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRequest(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	m.ObserveRequest(metrics.OutcomeFile, 200, 12, time.Millisecond)
	m.ObserveRequest(metrics.OutcomeFile, 200, 12, time.Millisecond)
	m.ObserveRequest(metrics.OutcomeNotFound, 404, 14, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("file", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("not_found", "404")))
}

func TestSetRunning(t *testing.T) {
	m := metrics.New(nil)

	m.SetRunning(true)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Running))

	m.SetRunning(false)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Running))
}

func TestNilMetrics(t *testing.T) {
	var m *metrics.Metrics

	assert.NotPanics(t, func() {
		m.ObserveRequest(metrics.OutcomeError, 500, 0, 0)
		m.ObserveStart("ok")
		m.SetRunning(true)
	})
}

func TestHandler(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	m.ObserveStart("ok")

	app := fiber.New()
	app.Get("/metrics", m.Handler())

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `fileserver_starts_total{result="ok"} 1`)
	assert.Contains(t, string(body), "build_info")
}
