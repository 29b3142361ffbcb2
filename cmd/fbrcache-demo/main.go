// Command fbrcache-demo is a small runnable walkthrough of the FBR cache:
// fill it past capacity and watch a cold, low-frequency entry get evicted
// while a repeatedly-read one survives.
package main

import (
	"fmt"

	"github.com/go-fbrcache/fbrcache"
)

func main() {
	cache := fbrcache.New[string, string](4)

	cache.Put("a", "apple")
	cache.Put("b", "banana")
	cache.Put("c", "cherry")
	cache.Put("d", "date")

	// Keep "a" hot: each Get promotes it and bumps its count once it has
	// left the New region.
	for i := 0; i < 3; i++ {
		cache.Get("a")
	}

	// The cache is full; this eviction should take one of the untouched,
	// now-Old entries instead of "a".
	cache.Put("e", "elderberry")

	if _, ok := cache.Get("a"); ok {
		fmt.Println("frequently read key survived eviction")
	} else {
		fmt.Println("unexpected: frequently read key was evicted")
	}

	stats := cache.Stats()
	fmt.Printf("hits=%d misses=%d evictions=%d\n", stats.Hits, stats.Misses, stats.Evictions)
}
