package middleware

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMetricsApp(t *testing.T, skip ...string) (*fiber.App, *PrometheusMiddleware, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	m, err := NewPrometheusMiddleware(reg, skip...)
	require.NoError(t, err)

	app := fiber.New()
	app.Use(m.Handler())
	return app, m, reg
}

func TestPrometheusMiddlewareCountsByRoute(t *testing.T) {
	app, m, _ := newMetricsApp(t)
	app.Get("/api/stats/locations", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Post("/api/rfqs", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusCreated) })
	app.Get("/api/rfqs/:id", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusNotFound, "rfq not found") })
	app.Get("/api/map/india", func(c *fiber.Ctx) error { return assert.AnError })

	for _, r := range []struct{ method, target string }{
		{"GET", "/api/stats/locations"},
		{"GET", "/api/stats/locations?level=city"},
		{"POST", "/api/rfqs"},
		{"GET", "/api/rfqs/0b7c6a52-7f1e-4f0e-9d55-3c3a4c1f6a10"},
		{"GET", "/api/rfqs/5d1f3f4e-1111-4f0e-9d55-3c3a4c1f6a10"},
		{"GET", "/api/map/india"},
	} {
		_, err := app.Test(httptest.NewRequest(r.method, r.target, nil))
		require.NoError(t, err)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/stats/locations", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("POST", "/api/rfqs", "201")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/rfqs/:id", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/map/india", "500")))
	assert.Equal(t, 4, testutil.CollectAndCount(m.latency))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.inFlight))
}

func TestPrometheusMiddlewareGroupsUnmatchedPaths(t *testing.T) {
	app, m, _ := newMetricsApp(t)
	app.Get("/api/stats/locations", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	for _, p := range []string{"/wp-login.php", "/.env", "/api/stats/unknown"} {
		resp, err := app.Test(httptest.NewRequest("GET", p, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	}

	assert.Equal(t, 3.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "unmatched", "404")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.requests))
}

func TestPrometheusMiddlewareSkipsPaths(t *testing.T) {
	app, _, reg := newMetricsApp(t, "/healthz")
	ok := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }
	app.Get("/metrics", ok)
	app.Get("/healthz", ok)

	for _, p := range []string{"/metrics", "/healthz"} {
		_, err := app.Test(httptest.NewRequest("GET", p, nil))
		require.NoError(t, err)
	}

	n, err := testutil.GatherAndCount(reg, "capilia_http_requests_total", "capilia_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestPrometheusMiddlewareMetricNames(t *testing.T) {
	app, _, reg := newMetricsApp(t)
	app.Get("/health", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	_, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)

	expected := `
# HELP capilia_http_requests_total HTTP requests by method, route and status.
# TYPE capilia_http_requests_total counter
capilia_http_requests_total{method="GET",path="/health",status="200"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "capilia_http_requests_total"))
}

func TestPrometheusMiddlewareDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPrometheusMiddleware(reg)
	require.NoError(t, err)

	_, err = NewPrometheusMiddleware(reg)
	assert.Error(t, err)
}
