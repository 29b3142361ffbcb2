package fbrcache

import "testing"

/*
BenchmarkPutRefresh measures the cost of repeatedly putting the same
key: the ideal case where no eviction or storage reuse ever happens,
isolating the hash lookup plus recency/chain bookkeeping from Get.
*/
func BenchmarkPutRefresh(b *testing.B) {
	c := New[string, string](1024)
	c.Put("key", "value")

	for i := 0; i < b.N; i++ {
		c.Put("key", "value")
	}
}

// BenchmarkPutGrowth measures insertion cost once the cache is steadily
// full and every Put evicts a victim and reuses its storage.
func BenchmarkPutGrowth(b *testing.B) {
	c := New[int, int](1024)

	for i := 0; i < b.N; i++ {
		c.Put(i, i)
	}
}

// BenchmarkGetHit measures the cost of a repeated hit on a warm key.
func BenchmarkGetHit(b *testing.B) {
	c := New[string, string](1024)
	c.Put("key", "value")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get("key")
	}
}
