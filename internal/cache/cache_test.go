package cache

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	// The go-cache janitor exits only once its cache is garbage collected.
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("github.com/patrickmn/go-cache.(*janitor).Run"))
}

func TestGetOrLoadCachesValue(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := New(time.Minute, 0, reg)
	require.NoError(t, err)

	var calls int
	load := func(context.Context) ([]string, error) {
		calls++
		return []string{"India"}, nil
	}

	for i := 0; i < 3; i++ {
		got, err := GetOrLoad(context.Background(), c, "locations", "country|200", load)
		require.NoError(t, err)
		assert.Equal(t, []string{"India"}, got)
	}

	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, float64(1), testutil.ToFloat64(c.requests.WithLabelValues("locations", "miss")))
	assert.Equal(t, float64(2), testutil.ToFloat64(c.requests.WithLabelValues("locations", "hit")))

	entries := `
# HELP capilia_cache_entries Aggregate cache entries, expired ones included until cleanup.
# TYPE capilia_cache_entries gauge
capilia_cache_entries 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(entries), "capilia_cache_entries"))
}

func TestGetOrLoadNamespacesDoNotCollide(t *testing.T) {
	c, err := New(time.Minute, 0, nil)
	require.NoError(t, err)

	a, err := GetOrLoad(context.Background(), c, "a", "k", func(context.Context) (int, error) { return 1, nil })
	require.NoError(t, err)
	b, err := GetOrLoad(context.Background(), c, "b", "k", func(context.Context) (int, error) { return 2, nil })
	require.NoError(t, err)

	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
}

func TestGetOrLoadDoesNotCacheErrors(t *testing.T) {
	c, err := New(time.Minute, 0, nil)
	require.NoError(t, err)

	boom := errors.New("db down")
	_, err = GetOrLoad(context.Background(), c, "chemistries", "50", func(context.Context) (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, c.Len())

	got, err := GetOrLoad(context.Background(), c, "chemistries", "50", func(context.Context) (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestGetOrLoadExpires(t *testing.T) {
	c, err := New(20*time.Millisecond, 0, nil)
	require.NoError(t, err)

	var calls int
	load := func(context.Context) (int, error) {
		calls++
		return calls, nil
	}

	first, _ := GetOrLoad(context.Background(), c, "p", "k", load)
	time.Sleep(40 * time.Millisecond)
	second, _ := GetOrLoad(context.Background(), c, "p", "k", load)

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestGetOrLoadSharesConcurrentMisses(t *testing.T) {
	c, err := New(time.Minute, 0, nil)
	require.NoError(t, err)

	var calls atomic.Int32
	release := make(chan struct{})
	load := func(context.Context) (int, error) {
		calls.Add(1)
		<-release
		return 42, nil
	}

	const n = 8
	var wg sync.WaitGroup
	results := make([]int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = GetOrLoad(context.Background(), c, "g", "k", load)
		}(i)
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, r := range results {
		assert.Equal(t, 42, r)
	}
}

func TestFlushAndDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := New(time.Minute, time.Minute, reg)
	require.NoError(t, err)

	_, _ = GetOrLoad(context.Background(), c, "x", "y", func(context.Context) (string, error) { return "v", nil })
	c.Flush()
	assert.Equal(t, 0, c.Len())

	_, err = New(time.Minute, 0, reg)
	assert.Error(t, err)
}
