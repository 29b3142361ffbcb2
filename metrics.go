package fbrcache

import "github.com/prometheus/client_golang/prometheus"

/*
Metrics is a prometheus.Collector exposing the same events Stats tracks,
for callers who do want to register the cache with a Prometheus registry
instead of (or alongside) polling Stats(). A *Metrics is safe to share
across several caches — each one just increments through whichever plain
counters back it — or to build per-cache with NewMetrics and register
once. A nil *Metrics is valid everywhere in this file: every method is a
no-op on a nil receiver, so WithMetrics is entirely optional and the hot
path pays nothing when it isn't used.
*/
type Metrics struct {
	hits        prometheus.Counter
	misses      prometheus.Counter
	evictions   prometheus.Counter
	agingPasses prometheus.Counter
	prioInserts prometheus.Counter
}

// NewMetrics builds a *Metrics under the given namespace, subsystem
// "fbrcache". Register it with a prometheus.Registerer before traffic
// starts flowing, the same way samber/hot and Voskan/arena-cache wire
// their own cache metrics.
func NewMetrics(namespace string) *Metrics {
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "fbrcache",
			Name:      name,
			Help:      help,
		})
	}
	return &Metrics{
		hits:        counter("hits_total", "Number of Get calls that found a live entry."),
		misses:      counter("misses_total", "Number of Get calls that found nothing."),
		evictions:   counter("evictions_total", "Number of entries evicted to make room for an insertion."),
		agingPasses: counter("aging_passes_total", "Number of times accumulated usage triggered a count-halving pass."),
		prioInserts: counter("priority_inserts_total", "Number of PutPrio calls that installed a new entry."),
	}
}

func (m *Metrics) counters() [5]prometheus.Counter {
	return [5]prometheus.Counter{m.hits, m.misses, m.evictions, m.agingPasses, m.prioInserts}
}

// Describe implements prometheus.Collector.
func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	if m == nil {
		return
	}
	for _, c := range m.counters() {
		ch <- c.Desc()
	}
}

// Collect implements prometheus.Collector.
func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	if m == nil {
		return
	}
	for _, c := range m.counters() {
		ch <- c
	}
}

func (m *Metrics) recordHit() {
	if m != nil {
		m.hits.Inc()
	}
}

func (m *Metrics) recordMiss() {
	if m != nil {
		m.misses.Inc()
	}
}

func (m *Metrics) recordEviction() {
	if m != nil {
		m.evictions.Inc()
	}
}

func (m *Metrics) recordAgingPass() {
	if m != nil {
		m.agingPasses.Inc()
	}
}

func (m *Metrics) recordPrioInsert() {
	if m != nil {
		m.prioInserts.Inc()
	}
}
