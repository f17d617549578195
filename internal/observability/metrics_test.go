package observability

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m, err := NewMetrics("test")
	require.NoError(t, err)

	m.ObserveHTTP("GET", "/health", 200)
	m.ObserveHTTP("GET", "/health", 200)
	m.Fallback("persona")
	m.DailyCache("hit")
	m.RatingFlushed(nil)
	m.RatingFlushed(errors.New("boom"))
	m.ObserveBackend("/api/wardrobe", 0, 10*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/health", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.fallbacks.WithLabelValues("persona")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dailyCache.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ratingsFlushed.WithLabelValues("error")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.backendDuration))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	m.ObserveHTTP("GET", "/", 200)
	m.Fallback("x")
	m.DailyCache("miss")
	m.RatingFlushed(nil)
	m.ObserveBackend("x", 200, time.Second)
	assert.Nil(t, m.Registry())
}
