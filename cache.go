package fbrcache

import "go.uber.org/zap"

/*
Cache implements an in-memory, fixed-capacity key/value store using a
Frequency-Based Replacement (FBR) policy: recency (LRU) blended with a
per-entry reference count, periodically aged so historically popular but
currently cold items can still be evicted.

================================================================================
ARCHITECTURAL OVERVIEW
================================================================================

Cache weaves together four indices over the same set of entries:

1. Key index (hash map[K]*entry[K, V])
   - O(1) point lookup.

2. Recency list (intrusive doubly-linked list through entry.lruPrev/Next)
   - Most-recently-used at the front.
   - Drives both LRU ordering and region classification.

3. Region boundaries (midBoundary, oldBoundary *entry[K, V])
   - Two handles into the recency list marking the New→Middle and
     Middle→Old transitions, maintained incrementally in O(1).

4. Frequency chains ([]chainHead, one bucket per count value below cmax)
   - Bucket i holds every live entry whose count currently equals i.
   - Counts >= cmax are not indexed anywhere; eviction's frequency tier
     naturally skips them.

================================================================================
ENTRY LIFECYCLE
================================================================================

Entries are heap-allocated only during warmup (len < capacity). Once full,
insertion evicts a victim and reuses its *entry storage in place — same
address, overwritten fields — so the insertion path never allocates after
warmup.

================================================================================
CONCURRENCY MODEL
================================================================================

Cache is single-owner, cooperative, and unsynchronized: every public
method runs to completion assuming no concurrent caller. This is
deliberate — the four indices above must always move together, so
anything finer-grained than a single exclusive lock around the whole
cache isn't possible without a different data structure. Callers that
need to share one cache across goroutines should reach for the safe
subpackage, which wraps exactly this type in a mutex.
*/
type Cache[K comparable, V any] struct {
	hash map[K]*entry[K, V]

	lruFront, lruBack *entry[K, V]
	lruLen            int

	chains []chainHead[K, V]
	cmax   int

	midBoundary, oldBoundary *entry[K, V]
	midSize, oldStart        int

	totalCount   int
	ageThreshold int
	capacity     int

	stats   Stats
	metrics *Metrics
	logger  *zap.Logger
	onEvict func(key K, value V)
}

const (
	defaultCMax      = 8
	defaultAgeFactor = 100
)

/*
New constructs a Cache with the given capacity and applies any functional
options (see options.go). capacity must be at least 4 and is a precondition
violation — a fatal, unrecoverable construction error per the design's
error-handling model — to violate; so is a C_MAX below 2 or an age factor
below 1, whether those come from the defaults or an option.

The default aging factor is 100, i.e. age_threshold = capacity * 100; pass
WithAgeFactor to change it, mirroring the construct(capacity, aging_factor)
variant.
*/
func New[K comparable, V any](capacity int, opts ...Option[K, V]) *Cache[K, V] {
	if capacity < 4 {
		panic(invalidConfigf("capacity must be >= 4, got %d", capacity))
	}

	c := &Cache[K, V]{
		hash:         make(map[K]*entry[K, V], capacity),
		cmax:         defaultCMax,
		midSize:      capacity * 3 / 10,
		oldStart:     capacity * 3 / 4,
		ageThreshold: capacity * defaultAgeFactor,
		capacity:     capacity,
		logger:       zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.cmax < 2 {
		panic(invalidConfigf("C_MAX must be >= 2, got %d", c.cmax))
	}

	c.chains = make([]chainHead[K, V], c.cmax)

	c.logger.Debug("fbrcache: initialized",
		zap.Int("capacity", c.capacity),
		zap.Int("mid_size", c.midSize),
		zap.Int("old_start", c.oldStart),
		zap.Int("c_max", c.cmax),
		zap.Int("age_threshold", c.ageThreshold),
	)

	return c
}

// Len returns the number of entries currently held.
func (c *Cache[K, V]) Len() int {
	return len(c.hash)
}

// IsEmpty reports whether the cache holds no entries.
func (c *Cache[K, V]) IsEmpty() bool {
	return len(c.hash) == 0
}

/*
Get retrieves the value stored for key, if any.

A hit:
 1. Bumps the usage count, unless the entry was still in the New region.
 2. Re-homes the entry's frequency bucket if the count changed, and moves
    it to the front of its bucket regardless (so bucket order keeps
    mirroring recency order).
 3. Moves the entry to the front of the recency list and promotes it to
    the New region, sliding the mid/old boundaries back by one step where
    the move crossed them.
 4. May trigger an aging pass if accumulated usage since the last one has
    grown past the configured threshold.

The returned value is a snapshot for this call; the caller should not
hold on to it across a subsequent mutating call.
*/
func (c *Cache[K, V]) Get(key K) (V, bool) {
	e, ok := c.hash[key]
	if !ok {
		c.recordMiss()
		var zero V
		return zero, false
	}

	priorRegion := e.region
	oldCount := e.access()
	c.switchChain(oldCount, e)

	c.boundaryDetach(e)
	c.lruRemove(e)
	c.lruPushFront(e)
	c.moveBoundaries(priorRegion)

	c.totalCount += e.count - oldCount
	if c.totalCount > c.ageThreshold {
		c.runAgingPass()
	}

	c.recordHit()
	return e.value, true
}

/*
Put installs value under key, evicting an entry if the cache is already
at capacity. If key is already present, Put is exactly equivalent to Get:
the existing value is left untouched and only its recency/frequency
bookkeeping is refreshed. Cache has no operation that replaces or removes
the value of a single key. A Put that installs a new key is not counted as
a miss in Stats.
*/
func (c *Cache[K, V]) Put(key K, value V) {
	if _, ok := c.hash[key]; ok {
		c.Get(key)
		return
	}
	c.insert(key, value, false)
}

/*
PutPrio is like Put but the new entry starts with a usage count of one
instead of zero, so it sorts above a plain cold insertion during eviction
selection. This works best when only a small fraction of insertions use
it; overused, priority entries simply become the new baseline.
*/
func (c *Cache[K, V]) PutPrio(key K, value V) {
	if _, ok := c.hash[key]; ok {
		c.Get(key)
		return
	}
	c.insert(key, value, true)
	c.recordPrioInsert()
}

func (c *Cache[K, V]) insert(key K, value V, prio bool) {
	var e *entry[K, V]
	if c.lruLen >= c.capacity {
		e = c.evict()
		e.reuse(key, value)
	} else {
		e = newEntry(key, value)
	}

	if prio {
		e.count++
	}

	c.hash[key] = e
	c.lruPushFront(e)
	c.moveBoundaries(Old)
	c.chainPushFront(e.count, e)

	if ce := c.logger.Check(zap.DebugLevel, "fbrcache: insert"); ce != nil {
		ce.Write(zap.Any("key", key), zap.Bool("prio", prio))
	}
}

/*
Clear releases every entry's owned value (calling Destroy on any value
that implements Destroyer) and resets the cache to empty: boundaries gone,
accumulated usage back to zero, all four indices rebuilt fresh.
*/
func (c *Cache[K, V]) Clear() {
	for _, e := range c.hash {
		dropValue(e.value)
	}
	c.hash = make(map[K]*entry[K, V], c.capacity)
	c.lruFront, c.lruBack, c.lruLen = nil, nil, 0
	c.chains = make([]chainHead[K, V], c.cmax)
	c.midBoundary, c.oldBoundary = nil, nil
	c.totalCount = 0
	c.logger.Debug("fbrcache: cleared")
}
