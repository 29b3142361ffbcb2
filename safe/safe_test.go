package safe

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

/*
TestConcurrentAccess stress-tests Cache the same way the unwrapped
engine never can: many goroutines hammering Put and Get on a shared
instance. It asserts only what a mutex-guarded wrapper promises — no
panic, no corrupted length — not any particular interleaving outcome.
Run with `go test -race` for the strongest signal.
*/
func TestConcurrentAccess(t *testing.T) {
	c := New[int, int](64)
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.Put(i, i*10)
			c.Get(i)
		}(i)
	}

	wg.Wait()

	assert.LessOrEqual(t, c.Len(), 64)
}

func TestBasicGetPut(t *testing.T) {
	c := New[string, string](8)

	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Put("a", "b")
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "b", v)
}

func TestClearAndStats(t *testing.T) {
	c := New[int, int](8)
	for i := 0; i < 8; i++ {
		c.Put(i, i)
	}
	c.Get(0)
	c.Get(1000)

	stats := c.Stats()
	assert.Equal(t, uint64(1), stats.Hits)
	assert.Equal(t, uint64(1), stats.Misses)

	c.Clear()
	assert.True(t, c.IsEmpty())
}
