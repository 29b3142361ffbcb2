package fbrcache

/*
lru.go implements the recency list: a plain intrusive doubly-linked list
threaded through each entry's lruPrev/lruNext fields, front is most-
recently-used. It is deliberately the simplest possible list — no sentinel
node, no length tracking beyond the Cache.lruLen counter — because every
caller already holds the entry pointer it wants to move or remove; there
is never a search.
*/

func (c *Cache[K, V]) lruPushFront(e *entry[K, V]) {
	e.lruPrev = nil
	e.lruNext = c.lruFront
	if c.lruFront != nil {
		c.lruFront.lruPrev = e
	} else {
		c.lruBack = e
	}
	c.lruFront = e
	c.lruLen++
}

func (c *Cache[K, V]) lruRemove(e *entry[K, V]) {
	if e.lruPrev != nil {
		e.lruPrev.lruNext = e.lruNext
	} else {
		c.lruFront = e.lruNext
	}
	if e.lruNext != nil {
		e.lruNext.lruPrev = e.lruPrev
	} else {
		c.lruBack = e.lruPrev
	}
	e.lruPrev, e.lruNext = nil, nil
	c.lruLen--
}
