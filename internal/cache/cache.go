// Package cache memoizes aggregate query results for a fixed TTL. Concurrent
// misses on the same key share a single load.
package cache

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/singleflight"
)

// Cache is a TTL cache with per-key load deduplication. It is safe for concurrent use.
type Cache struct {
	store    *gocache.Cache
	group    singleflight.Group
	requests *prometheus.CounterVec
}

// New creates a cache whose entries expire after ttl. A cleanup interval <= 0
// disables the background janitor; expired entries are then dropped on read.
func New(ttl, cleanup time.Duration, reg prometheus.Registerer) (*Cache, error) {
	c := &Cache{
		store: gocache.New(ttl, cleanup),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "capilia_cache_requests_total",
				Help: "Aggregate cache lookups by namespace and result.",
			},
			[]string{"namespace", "result"},
		),
	}
	if reg == nil {
		return c, nil
	}
	entries := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "capilia_cache_entries",
		Help: "Aggregate cache entries, expired ones included until cleanup.",
	}, func() float64 { return float64(c.Len()) })
	for _, col := range []prometheus.Collector{c.requests, entries} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Flush removes every entry.
func (c *Cache) Flush() {
	c.store.Flush()
}

// Len returns the number of entries, including expired ones not yet cleaned up.
func (c *Cache) Len() int {
	return c.store.ItemCount()
}

// GetOrLoad returns the cached value for namespace/key or runs load once and
// stores its result. Errors are returned to every waiter and never cached.
func GetOrLoad[T any](ctx context.Context, c *Cache, namespace, key string, load func(context.Context) (T, error)) (T, error) {
	full := namespace + "|" + key
	if v, ok := c.store.Get(full); ok {
		if t, ok := v.(T); ok {
			c.requests.WithLabelValues(namespace, "hit").Inc()
			return t, nil
		}
	}
	c.requests.WithLabelValues(namespace, "miss").Inc()

	v, err, _ := c.group.Do(full, func() (any, error) {
		res, err := load(ctx)
		if err != nil {
			return nil, err
		}
		c.store.SetDefault(full, res)
		return res, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("cache: unexpected type %T for %s", v, full)
	}
	return t, nil
}
