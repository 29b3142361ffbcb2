package fbrcache

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsImplementsCollector(t *testing.T) {
	var _ prometheus.Collector = NewMetrics("test")
}

func TestMetricsDescribeAndCollectEmitFiveSeries(t *testing.T) {
	m := NewMetrics("fbrcache_test")

	descCh := make(chan *prometheus.Desc, 16)
	m.Describe(descCh)
	close(descCh)
	var descs int
	for range descCh {
		descs++
	}
	assert.Equal(t, 5, descs)

	metricCh := make(chan prometheus.Metric, 16)
	m.Collect(metricCh)
	close(metricCh)
	var metrics int
	for range metricCh {
		metrics++
	}
	assert.Equal(t, 5, metrics)
}

// A nil *Metrics must be safe everywhere: WithMetrics is optional, and
// the hot path should never need a nil check of its own.
func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.recordHit()
		m.recordMiss()
		m.recordEviction()
		m.recordAgingPass()
		m.recordPrioInsert()
		m.Describe(make(chan *prometheus.Desc, 1))
		m.Collect(make(chan prometheus.Metric, 1))
	})
}

func TestCacheWithMetricsIncrementsAlongsideStats(t *testing.T) {
	m := NewMetrics("fbrcache_live")
	c := New[string, int](8, WithMetrics[string, int](m))

	c.Put("k", 1)
	c.Get("k")
	c.Get("missing")

	require.Equal(t, uint64(1), c.Stats().Hits)
	require.Equal(t, uint64(1), c.Stats().Misses)

	metricCh := make(chan prometheus.Metric, 16)
	m.Collect(metricCh)
	close(metricCh)
	var n int
	for range metricCh {
		n++
	}
	assert.Equal(t, 5, n)
}
