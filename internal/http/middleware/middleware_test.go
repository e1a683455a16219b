package middleware

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/echo", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(RequestIDLocalKey).(string))
	})

	tests := []struct {
		name     string
		incoming string
		reused   bool
	}{
		{name: "absent", incoming: "", reused: false},
		{name: "client supplied", incoming: "rfq-7f3a-01", reused: true},
		{name: "surrounding blanks trimmed", incoming: "  trace-42  ", reused: true},
		{name: "oversized", incoming: strings.Repeat("x", 129), reused: false},
		{name: "embedded space", incoming: "two words", reused: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/echo", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)

			header := resp.Header.Get(RequestIDHeader)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, header, string(body), "locals and header agree")

			if tt.reused {
				assert.Equal(t, strings.TrimSpace(tt.incoming), header)
				return
			}
			_, err = uuid.Parse(header)
			assert.NoError(t, err, "generated id is a uuid")
		})
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(RequestID(), LoggerWithWriter(&buf, time.UTC))
	app.Get("/api/stats/chemistries", func(c *fiber.Ctx) error {
		return c.JSON([]string{})
	})

	req := httptest.NewRequest("GET", "/api/stats/chemistries?limit=5", nil)
	req.Header.Set(RequestIDHeader, "dash-01")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))

	assert.Equal(t, "dash-01", line["request_id"])
	assert.Equal(t, "GET", line["method"])
	assert.Equal(t, "/api/stats/chemistries", line["path"], "query string is not logged")
	assert.EqualValues(t, fiber.StatusOK, line["status"])
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "http_request", line["msg"])
	assert.IsType(t, float64(0), line["latency"])
	assert.NotEmpty(t, line["ts"])
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(LoggerWithWriter(&buf, time.UTC))

	app.Get("/missing", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNotFound)
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusServiceUnavailable, "down")
	})
	app.Get("/crash", func(c *fiber.Ctx) error {
		return errors.New("db closed")
	})

	for _, p := range []string{"/missing", "/boom", "/crash"} {
		_, err := app.Test(httptest.NewRequest("GET", p, nil))
		require.NoError(t, err)
	}

	var levels []string
	var statuses []float64
	sc := bufio.NewScanner(&buf)
	for sc.Scan() {
		var line map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &line))
		levels = append(levels, line["level"].(string))
		statuses = append(statuses, line["status"].(float64))
	}

	assert.Equal(t, []string{"warning", "error", "error"}, levels)
	assert.Equal(t, []float64{404, 503, 500}, statuses)
}

func TestLoggerTraceID(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		sc := trace.NewSpanContext(trace.SpanContextConfig{
			TraceID:    trace.TraceID{0x4b, 0xf9, 0x2f, 0x35, 0x77, 0xb3, 0x4d, 0xa6, 0xa3, 0xce, 0x92, 0x9d, 0x0e, 0x0e, 0x47, 0x36},
			SpanID:     trace.SpanID{0x00, 0xf0, 0x67, 0xaa, 0x0b, 0xa9, 0x02, 0xb7},
			TraceFlags: trace.FlagsSampled,
		})
		c.SetUserContext(trace.ContextWithSpanContext(c.UserContext(), sc))
		return c.Next()
	})
	app.Use(LoggerWithWriter(&buf, time.UTC))
	app.Get("/health", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	_, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", line["trace_id"])
}
