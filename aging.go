package fbrcache

import "go.uber.org/zap"

/*
runAgingPass halves every entry's usage count, walking the recency list
front to back, and re-homes any entry whose bucket index actually changed.
It is triggered at the end of Get once total_count has drifted past
age_threshold, runs in O(N), and never touches regions, list order, or
evicts anything.
*/
func (c *Cache[K, V]) runAgingPass() {
	for e := c.lruFront; e != nil; e = e.lruNext {
		oldCount := e.count
		c.totalCount -= e.age()
		if e.count != oldCount {
			c.switchChain(oldCount, e)
		}
	}
	c.recordAgingPass()
	c.logger.Debug("fbrcache: aging pass complete", zap.Int("total_count", c.totalCount))
}
