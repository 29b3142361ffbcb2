package fbrcache

/*
Stats is a dependency-free snapshot of cache activity, for callers who
don't want to pull in Prometheus just to watch hit rate.

================================================================================
PURPOSE
================================================================================

- Hits        → Get calls that found a live entry.
- Misses      → Get calls that found nothing.
- Evictions   → Entries removed to make room for an insertion.
- AgingPasses → Times accumulated usage triggered a count-halving pass.
- PrioInserts → PutPrio calls that installed a new entry.

For example:

    hitRatio = float64(stats.Hits) / float64(stats.Hits+stats.Misses)

================================================================================
CONCURRENCY MODEL
================================================================================

Cache is single-owner and unsynchronized (see cache.go); Stats fields are
updated in place with no locking of their own. Callers sharing a cache
across goroutines should go through the safe subpackage, whose Stats()
method takes the same lock as every other operation before copying this
struct out.
*/
type Stats struct {
	Hits        uint64
	Misses      uint64
	Evictions   uint64
	AgingPasses uint64
	PrioInserts uint64
}

// Stats returns a copy of the cache's running counters.
func (c *Cache[K, V]) Stats() Stats {
	return c.stats
}

func (c *Cache[K, V]) recordHit() {
	c.stats.Hits++
	c.metrics.recordHit()
}

func (c *Cache[K, V]) recordMiss() {
	c.stats.Misses++
	c.metrics.recordMiss()
}

func (c *Cache[K, V]) recordEviction() {
	c.stats.Evictions++
	c.metrics.recordEviction()
}

func (c *Cache[K, V]) recordAgingPass() {
	c.stats.AgingPasses++
	c.metrics.recordAgingPass()
}

func (c *Cache[K, V]) recordPrioInsert() {
	c.stats.PrioInserts++
	c.metrics.recordPrioInsert()
}
