// Package safe wraps fbrcache.Cache with a mutex for callers who need to
// share one cache across goroutines.
//
// The core engine is deliberately single-owner (see fbrcache.Cache's doc
// comment): its recency list, frequency buckets, region boundaries, and
// key index must always move together, so there is no finer-grained
// locking to offer without a different data structure. Every operation
// here — including Get, which mutates recency and frequency state on a
// hit — takes the same exclusive lock; there is no read-only fast path to
// split off with an RWMutex, because in this engine there is no read-only
// operation.
package safe

import (
	"sync"

	"github.com/go-fbrcache/fbrcache"
)

// Cache is a mutex-guarded fbrcache.Cache[K, V].
type Cache[K comparable, V any] struct {
	mu    sync.Mutex
	inner *fbrcache.Cache[K, V]
}

// New constructs a Cache the same way fbrcache.New does, wrapped for
// concurrent use.
func New[K comparable, V any](capacity int, opts ...fbrcache.Option[K, V]) *Cache[K, V] {
	return &Cache[K, V]{inner: fbrcache.New[K, V](capacity, opts...)}
}

// Get looks up key. See fbrcache.Cache.Get.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.Get(key)
}

// Put installs key/value, evicting if necessary. See fbrcache.Cache.Put.
func (c *Cache[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inner.Put(key, value)
}

// PutPrio is Put with an elevated starting usage count. See
// fbrcache.Cache.PutPrio.
func (c *Cache[K, V]) PutPrio(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inner.PutPrio(key, value)
}

// Len returns the number of entries currently held.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.Len()
}

// IsEmpty reports whether the cache holds no entries.
func (c *Cache[K, V]) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.IsEmpty()
}

// Clear releases every owned value and resets the cache to empty.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inner.Clear()
}

// Stats returns a snapshot of the cache's running counters.
func (c *Cache[K, V]) Stats() fbrcache.Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.Stats()
}
