package fbrcache

import "go.uber.org/zap"

/*
evict selects and removes a victim entry, returning its storage for reuse
by the caller (insert). Selection runs two tiers:

 1. Low-frequency-in-Old: scan chains[0..cmax) in ascending order and take
    the back (least recently promoted) of the first bucket whose back
    entry is in the Old region. This realises the FBR principle — protect
    frequent items, evict infrequent ones — but restricted to Old, so
    anything in New or Middle gets a grace period regardless of count.
 2. Fallback LRU: if no bucket yielded a candidate, take the global
    recency-list tail instead, which is in the Old region (the cache is
    full and capacity >= 4, so Old is populated). An aging pass pushes
    re-homed entries to the front of their new bucket, so bucket order
    can differ from recency order and the tail may still be linked into
    a chain even though tier 1 passed over it; if its count is below
    cmax it is unlinked from that chain here.

This guarantees predictable memory bounds: eviction never grows the
cache past capacity, and the returned entry's storage is recycled rather
than freed (see entry.reuse).
*/
func (c *Cache[K, V]) evict() *entry[K, V] {
	var victim *entry[K, V]
	for bucket := 0; bucket < c.cmax; bucket++ {
		if cand := c.chains[bucket].back; cand != nil && cand.region == Old {
			c.chainRemove(bucket, cand)
			victim = cand
			break
		}
	}
	if victim == nil {
		victim = c.lruBack
		if victim.count < c.cmax {
			c.chainRemove(victim.count, victim)
		}
	}

	c.boundaryDetach(victim)
	c.lruRemove(victim)
	delete(c.hash, victim.key)

	c.recordEviction()
	if c.onEvict != nil {
		c.onEvict(victim.key, victim.value)
	}
	c.logger.Debug("fbrcache: evicted entry",
		zap.Any("key", victim.key),
		zap.Int("count", victim.count),
		zap.Stringer("region", victim.region),
	)

	return victim
}
