package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchMetricsRecordsByTier(t *testing.T) {
	reg := NewRegistry()
	m := NewSearchMetrics(reg)

	m.RecordSearch("exact")
	m.RecordSearch("exact")
	m.RecordSearch("fuzzy")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.requests.WithLabelValues("exact")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.requests.WithLabelValues("fuzzy")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.requests.WithLabelValues("fts")))
}

func TestSearchMetricsNilReceiver(t *testing.T) {
	var m *SearchMetrics
	assert.NotPanics(t, func() { m.RecordSearch("exact") })
}

func TestHTTPMetricsObserve(t *testing.T) {
	reg := NewRegistry()
	m := NewHTTPMetrics(reg)

	m.Observe("GET", "/api/search", "200", 0.01)
	m.Observe("GET", "/api/search", "200", 0.02)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/search", "200")))

	count, err := testutil.GatherAndCount(reg, "partsd_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
