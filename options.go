package fbrcache

import "go.uber.org/zap"

/*
Option defines a functional configuration modifier for Cache.

DESIGN PATTERN

This file implements the Functional Options Pattern: instead of a growing
positional-argument constructor, New() accepts a variadic list of Option
values that each mutate the Cache before it becomes active:

    cache := New[string, []byte](1024,
        WithAgeFactor[string, []byte](50),
        WithLogger[string, []byte](logger),
    )

Adding a new knob later — another collaborator, another tuning parameter —
never changes New's signature or breaks an existing call site.
*/
type Option[K comparable, V any] func(*Cache[K, V])

// WithAgeFactor sets age_threshold = capacity * factor, overriding the
// default of 100. This is the Go rendering of the construct(capacity,
// aging_factor) constructor variant. factor must be at least 1.
func WithAgeFactor[K comparable, V any](factor int) Option[K, V] {
	return func(c *Cache[K, V]) {
		if factor < 1 {
			panic(invalidConfigf("age factor must be >= 1, got %d", factor))
		}
		c.ageThreshold = c.capacity * factor
	}
}

// WithCMax overrides the default frequency-bucket count of 8. Must be at
// least 2; New panics otherwise once all options have run.
func WithCMax[K comparable, V any](cmax int) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.cmax = cmax
	}
}

// WithLogger wires a structured zap logger for construction, eviction,
// aging-pass, and Clear diagnostics. The default is a no-op logger, so
// omitting this option costs nothing on the hot path.
func WithLogger[K comparable, V any](logger *zap.Logger) Option[K, V] {
	return func(c *Cache[K, V]) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics attaches a *Metrics collector (see metrics.go) that records
// hits, misses, evictions, aging passes, and priority inserts as
// Prometheus counters in addition to the dependency-free Stats() snapshot
// the cache always keeps.
func WithMetrics[K comparable, V any](m *Metrics) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.metrics = m
	}
}

// WithOnEvict registers a callback invoked whenever eviction removes an
// entry to make room for an insertion. It is purely observational — it
// cannot veto or alter the replacement decision — which is why it doesn't
// conflict with the core's "no eviction callbacks beyond value drop"
// stance: it exists for tests and dashboards to watch evictions happen,
// the same role the teacher's Stats.Evictions counter plays, just with a
// hook instead of a number.
func WithOnEvict[K comparable, V any](fn func(key K, value V)) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.onEvict = fn
	}
}
