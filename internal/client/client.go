// Package client is a typed HTTP client for the stats API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"capilia/internal/config"
	"capilia/internal/model"
)

// maxErrorBody caps how much of a failed response is kept in HTTPError.
const maxErrorBody = 4 << 10

// StatsFilters are the optional filters shared by every stats endpoint.
// Empty fields are left out of the query.
type StatsFilters struct {
	Country     string
	State       string
	City        string
	Chemistries []string
}

// Query encodes the filters; each chemistry becomes its own parameter.
func (f StatsFilters) Query() url.Values {
	q := url.Values{}
	if f.Country != "" {
		q.Set("country", f.Country)
	}
	if f.State != "" {
		q.Set("state", f.State)
	}
	if f.City != "" {
		q.Set("city", f.City)
	}
	for _, c := range f.Chemistries {
		q.Add("chemistries", c)
	}
	return q
}

// HTTPError is returned for any non-2xx response.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

// Health is the body of GET /health.
type Health struct {
	Status string `json:"status"`
}

// Client calls the stats API.
type Client struct {
	baseURL *url.URL
	http    *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default traced HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New builds a client for baseURL. Requests are traced through otelhttp.
func New(baseURL string, timeout time.Duration, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q must be http or https", baseURL)
	}

	c := &Client{
		baseURL: u,
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// NewFromConfig builds a client from CAPILIA_API_* settings.
func NewFromConfig(cfg *config.ClientConfig, opts ...Option) (*Client, error) {
	return New(cfg.BaseURL, cfg.Timeout, opts...)
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	u := c.baseURL.JoinPath(path)
	if len(params) > 0 {
		u.RawQuery = params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &HTTPError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func withLimit(f StatsFilters, limit int) url.Values {
	q := f.Query()
	q.Set("limit", strconv.Itoa(limit))
	return q
}

// Health calls GET /health.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	var h Health
	if err := c.get(ctx, "/health", nil, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// LocationStats calls GET /api/stats/locations. The point level fills
// Points, every other level fills Rows.
func (c *Client) LocationStats(ctx context.Context, level model.LocationLevel, limit int, f StatsFilters) (*model.LocationStats, error) {
	q := withLimit(f, limit)
	q.Set("level", string(level))

	out := &model.LocationStats{Level: level}
	if level == model.LevelPoint {
		out.Points = model.NewFeatureCollection()
		if err := c.get(ctx, "/api/stats/locations", q, out.Points); err != nil {
			return nil, err
		}
		return out, nil
	}
	if err := c.get(ctx, "/api/stats/locations", q, &out.Rows); err != nil {
		return nil, err
	}
	return out, nil
}

// ChemistryStats calls GET /api/stats/chemistries.
func (c *Client) ChemistryStats(ctx context.Context, limit int, f StatsFilters) ([]model.ChemistryStat, error) {
	var rows []model.ChemistryStat
	if err := c.get(ctx, "/api/stats/chemistries", withLimit(f, limit), &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// ProductStatsByCompany calls GET /api/stats/products?by=company.
func (c *Client) ProductStatsByCompany(ctx context.Context, limit int, f StatsFilters) ([]model.ProductStatByCompany, error) {
	q := withLimit(f, limit)
	q.Set("by", string(model.ProductsByCompany))

	var rows []model.ProductStatByCompany
	if err := c.get(ctx, "/api/stats/products", q, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// ProductStatsGlobal calls GET /api/stats/products?by=global.
func (c *Client) ProductStatsGlobal(ctx context.Context, limit int, f StatsFilters) ([]model.ProductStatGlobal, error) {
	q := withLimit(f, limit)
	q.Set("by", string(model.ProductsByGlobal))

	var rows []model.ProductStatGlobal
	if err := c.get(ctx, "/api/stats/products", q, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
