package fbrcache

/*
boundary.go maintains mid_boundary and old_boundary: two handles into the
recency list that always point at the entry currently sitting at logical
position mid_size and old_start, respectively. Recomputing those positions
from scratch on every mutation would be O(N); instead every legal mutation
shifts a boundary by at most one position, so the two handles are walked
incrementally.
*/

// boundaryDetach advances a boundary handle to its successor — the next
// entry toward the back — before e is unlinked from the recency list, if
// e happens to be that boundary entry. It must run before the list
// removal itself.
func (c *Cache[K, V]) boundaryDetach(e *entry[K, V]) {
	switch e {
	case c.midBoundary:
		c.midBoundary = e.lruNext
	case c.oldBoundary:
		c.oldBoundary = e.lruNext
	}
}

// moveBoundaries accounts for the recency list having effectively grown
// by one at the front: either a genuine insertion, or a get-driven
// remove-then-reinsert that nets zero length change but still shifts
// everything between the entry's old position and the front rearward by
// one slot. fromRegion is the region the moved entry is leaving; a move
// that started in New shifts nothing, because New-region entries never
// cross a boundary when reshuffled only among themselves.
func (c *Cache[K, V]) moveBoundaries(fromRegion Region) {
	if fromRegion > New {
		switch {
		case c.midBoundary != nil:
			prev := c.midBoundary.lruPrev
			prev.region = Middle
			c.midBoundary = prev
		case c.lruLen == c.midSize+1:
			c.lruBack.region = Middle
			c.midBoundary = c.lruBack
		}
	}
	if fromRegion > Middle {
		switch {
		case c.oldBoundary != nil:
			prev := c.oldBoundary.lruPrev
			prev.region = Old
			c.oldBoundary = prev
		case c.lruLen == c.oldStart+1:
			c.lruBack.region = Old
			c.oldBoundary = c.lruBack
		}
	}
}
