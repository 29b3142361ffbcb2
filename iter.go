package fbrcache

import "iter"

// Item is one element of an All() snapshot: a key/value pair together
// with its current usage count and region.
type Item[K comparable, V any] struct {
	Key    K
	Value  V
	Count  int
	Region Region
}

// All returns an iterator over every live entry, most-recently-used
// first. It is a read-only snapshot for the lifetime of the range loop —
// no iterator-invalidation guarantees are made across mutation, so don't
// call Get/Put/PutPrio/Clear while ranging over it.
func (c *Cache[K, V]) All() iter.Seq[Item[K, V]] {
	return func(yield func(Item[K, V]) bool) {
		for e := c.lruFront; e != nil; e = e.lruNext {
			item := Item[K, V]{Key: e.key, Value: e.value, Count: e.count, Region: e.region}
			if !yield(item) {
				return
			}
		}
	}
}
