package fbrcache

// chainHead is the front/back of one frequency bucket. Bucket i holds
// every live entry whose count currently equals i. Get and insert push an
// entry to the front of its bucket exactly when they push it to the front
// of the recency list, so between aging passes bucket order mirrors lru
// order front to back (I6). An aging pass also pushes each re-homed entry
// to the front of its new bucket without moving it in the recency list,
// so after one the two orders can differ.
type chainHead[K comparable, V any] struct {
	front, back *entry[K, V]
}

func (c *Cache[K, V]) chainPushFront(bucket int, e *entry[K, V]) {
	ch := &c.chains[bucket]
	e.chainPrev = nil
	e.chainNext = ch.front
	if ch.front != nil {
		ch.front.chainPrev = e
	} else {
		ch.back = e
	}
	ch.front = e
}

func (c *Cache[K, V]) chainRemove(bucket int, e *entry[K, V]) {
	ch := &c.chains[bucket]
	if e.chainPrev != nil {
		e.chainPrev.chainNext = e.chainNext
	} else {
		ch.front = e.chainNext
	}
	if e.chainNext != nil {
		e.chainNext.chainPrev = e.chainPrev
	} else {
		ch.back = e.chainPrev
	}
	e.chainPrev, e.chainNext = nil, nil
}

// switchChain re-homes e between frequency buckets after its count moved
// away from oldCount to its current value. Per I3, only counts below
// cmax are indexed at all — cmax itself is never a valid bucket index.
func (c *Cache[K, V]) switchChain(oldCount int, e *entry[K, V]) {
	if oldCount < c.cmax {
		c.chainRemove(oldCount, e)
	}
	if e.count < c.cmax {
		c.chainPushFront(e.count, e)
	}
}
