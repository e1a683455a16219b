package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capilia/internal/dashboard"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func useTempDB(t *testing.T) {
	t.Helper()
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "capilia.db"))
}

func TestMigrateAndGeocodeMissing(t *testing.T) {
	useTempDB(t)

	out, logs, err := execute(t, "migrate", "--seed")
	require.NoError(t, err)
	assert.Contains(t, out, "Seeded demo data.")
	assert.Contains(t, logs, "db_migration_success")

	out, _, err = execute(t, "migrate", "--seed")
	require.NoError(t, err)
	assert.Contains(t, out, "seed skipped")

	out, _, err = execute(t, "geocode-missing")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Found 1 companies with missing lat/lon.", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "- id="))
	assert.Equal(t, "No geocoding performed.", lines[2])
}

func TestMigrateDrop(t *testing.T) {
	useTempDB(t)

	_, _, err := execute(t, "migrate", "--seed")
	require.NoError(t, err)

	out, logs, err := execute(t, "migrate", "--drop", "--seed")
	require.NoError(t, err)
	assert.Contains(t, logs, "db_tables_dropped")
	assert.Contains(t, out, "Seeded demo data.")
}

func TestGeocodeMissingWithoutSchema(t *testing.T) {
	useTempDB(t)

	_, _, err := execute(t, "geocode-missing")
	assert.Error(t, err)
}

type requestLog struct {
	mu   sync.Mutex
	urls []string
}

func (l *requestLog) add(u string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.urls = append(l.urls, u)
}

func (l *requestLog) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.urls...)
}

func newAPI(t *testing.T) (*httptest.Server, *requestLog) {
	t.Helper()
	seen := &requestLog{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen.add(r.URL.Path + "?" + r.URL.RawQuery)
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/health":
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		case "/api/stats/locations":
			_, _ = w.Write([]byte(`[{"key":"India","count":3,"geometry":null}]`))
		case "/api/stats/chemistries":
			_, _ = w.Write([]byte(`[{"chemistry":"OXIDATION","company_count":2}]`))
		case "/api/stats/products":
			if r.URL.Query().Get("by") == "global" {
				_, _ = w.Write([]byte(`[{"product_type":"API","count":4}]`))
				return
			}
			_, _ = w.Write([]byte(`[{"company_id":1,"company_name":"Nova","product_count":4}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	t.Setenv("CAPILIA_API_BASE_URL", srv.URL)
	return srv, seen
}

func TestHealth(t *testing.T) {
	newAPI(t)

	out, _, err := execute(t, "health")
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)
}

func TestHealthAPIFlagOverridesEnv(t *testing.T) {
	srv, _ := newAPI(t)
	t.Setenv("CAPILIA_API_BASE_URL", "http://127.0.0.1:1")

	out, _, err := execute(t, "health", "--api", srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)
}

func TestStatsLocations(t *testing.T) {
	_, seen := newAPI(t)

	out, _, err := execute(t, "stats", "locations", "--level", "country", "--limit", "5",
		"--country", "India", "--chemistry", "OXIDATION", "--chemistry", "REDUCTION")
	require.NoError(t, err)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "India", rows[0]["key"])

	urls := seen.all()
	require.Len(t, urls, 1)
	q := urls[0]
	assert.Contains(t, q, "level=country")
	assert.Contains(t, q, "limit=5")
	assert.Contains(t, q, "chemistries=OXIDATION")
	assert.Contains(t, q, "chemistries=REDUCTION")
}

func TestStatsProducts(t *testing.T) {
	newAPI(t)

	out, _, err := execute(t, "stats", "products", "--by", "global")
	require.NoError(t, err)
	assert.Contains(t, out, `"product_type": "API"`)

	_, _, err = execute(t, "stats", "products", "--by", "type")
	assert.ErrorContains(t, err, "--by must be company or global")
}

func TestStatsChemistriesHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":"INVALID_LIMIT"}}`))
	}))
	defer srv.Close()
	t.Setenv("CAPILIA_API_BASE_URL", srv.URL)

	_, _, err := execute(t, "stats", "chemistries", "--limit", "0")
	assert.ErrorContains(t, err, "HTTP 400")
}

func TestDashboard(t *testing.T) {
	newAPI(t)

	out, _, err := execute(t, "dashboard")
	require.NoError(t, err)

	var d dashboard.Data
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.Equal(t, dashboard.Summary{TotalCompanies: 3, Locations: 1, Chemistries: 1, Products: 4}, d.Summary)
	assert.Len(t, d.CompanyProducts, 1)
}
