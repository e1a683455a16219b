package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capilia/internal/config"
	"capilia/internal/model"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, time.Second)
	require.NoError(t, err)
	return c
}

func TestStatsFiltersQuery(t *testing.T) {
	assert.Empty(t, StatsFilters{}.Query().Encode())

	q := StatsFilters{Country: "India", City: "Pune", Chemistries: []string{"OXIDATION", "NITRATION"}}.Query()
	assert.Equal(t, "India", q.Get("country"))
	assert.False(t, q.Has("state"))
	assert.Equal(t, "Pune", q.Get("city"))
	assert.Equal(t, []string{"OXIDATION", "NITRATION"}, q["chemistries"])
}

func TestNew(t *testing.T) {
	_, err := New("ftp://example.com", time.Second)
	assert.Error(t, err)

	_, err = New("://bad", time.Second)
	assert.Error(t, err)

	c, err := NewFromConfig(&config.ClientConfig{BaseURL: "http://localhost:8000/", Timeout: time.Second})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", c.baseURL.String())
}

func TestHealth(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.Write([]byte(`{"status":"ok"}`))
	})

	h, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", h.Status)
}

func TestLocationStats(t *testing.T) {
	var got url.Values
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/stats/locations", r.URL.Path)
		got = r.URL.Query()
		if got.Get("level") == "point" {
			w.Write([]byte(`{"type":"FeatureCollection","features":[{"type":"Feature","properties":{"key":"Basel","count":1,"company_id":4},"geometry":{"type":"Point","coordinates":[7.58,47.55]}}]}`))
			return
		}
		w.Write([]byte(`[{"key":"India","count":3,"geometry":null},{"key":"Switzerland","count":1,"geometry":null}]`))
	})
	ctx := context.Background()

	t.Run("grouped", func(t *testing.T) {
		res, err := c.LocationStats(ctx, model.LevelCountry, 10, StatsFilters{Chemistries: []string{"OXIDATION"}})
		require.NoError(t, err)

		assert.Equal(t, "country", got.Get("level"))
		assert.Equal(t, "10", got.Get("limit"))
		assert.Equal(t, []string{"OXIDATION"}, got["chemistries"])
		assert.Nil(t, res.Points)
		assert.Equal(t, []model.LocationStat{{Key: "India", Count: 3}, {Key: "Switzerland", Count: 1}}, res.Rows)
	})

	t.Run("point", func(t *testing.T) {
		res, err := c.LocationStats(ctx, model.LevelPoint, 500, StatsFilters{})
		require.NoError(t, err)

		require.NotNil(t, res.Points)
		require.Len(t, res.Points.Features, 1)
		assert.Equal(t, "Basel", res.Points.Features[0].Properties["key"])
		assert.Equal(t, "Point", res.Points.Features[0].Geometry.Type)
	})
}

func TestProductAndChemistryStats(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/stats/chemistries":
			w.Write([]byte(`[{"chemistry":"OXIDATION","company_count":2}]`))
		case r.URL.Query().Get("by") == "global":
			w.Write([]byte(`[{"product_type":"API","count":6},{"product_type":"Intermediate","count":4}]`))
		default:
			w.Write([]byte(`[{"company_id":2,"company_name":"Nova","product_count":3}]`))
		}
	})
	ctx := context.Background()

	chem, err := c.ChemistryStats(ctx, 20, StatsFilters{})
	require.NoError(t, err)
	assert.Equal(t, []model.ChemistryStat{{Chemistry: "OXIDATION", CompanyCount: 2}}, chem)

	byCompany, err := c.ProductStatsByCompany(ctx, 10, StatsFilters{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), byCompany[0].CompanyID)

	global, err := c.ProductStatsGlobal(ctx, 50, StatsFilters{})
	require.NoError(t, err)
	assert.Len(t, global, 2)
}

func TestHTTPError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":"INVALID_LEVEL"}}`, http.StatusBadRequest)
	})

	_, err := c.ChemistryStats(context.Background(), 0, StatsFilters{})
	require.Error(t, err)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
	assert.Contains(t, err.Error(), "HTTP 400: ")
	assert.Contains(t, err.Error(), "INVALID_LEVEL")
}

func TestDecodeError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})

	_, err := c.Health(context.Background())
	assert.ErrorContains(t, err, "decode /health")
}
