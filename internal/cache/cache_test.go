package cache

import (
	"errors"
	"strconv"
	"sync"
	"testing"
)

// put loads value under key.
func put[K comparable](c *Cache[K, int], key K, value int) {
	_, _ = c.GetOrLoad(key, func() (int, error) { return value, nil })
}

func TestCacheGet(t *testing.T) {
	c := New[string, int](4)
	if _, ok := c.Get("a"); ok {
		t.Fatal("Get() on empty cache: expected miss")
	}
	put(c, "a", 1)
	put(c, "a", 2)
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %d, %v, want the first loaded value 1, true", v, ok)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[string, int](2)
	put(c, "a", 1)
	put(c, "b", 2)
	c.Get("a") // b is now oldest
	put(c, "c", 3)

	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	for _, k := range []string{"a", "c"} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("%s should still be cached", k)
		}
	}
	if s := c.Stats(); s.Evictions != 1 || s.Len != 2 || s.Capacity != 2 {
		t.Errorf("Stats() = %+v, want 1 eviction, len 2, capacity 2", s)
	}
}

func TestCacheUnlimited(t *testing.T) {
	c := New[int, int](0)
	for i := 0; i < 100; i++ {
		put(c, i, i)
	}
	if c.Len() != 100 {
		t.Errorf("Len() = %d, want 100", c.Len())
	}
}

func TestCacheGetOrLoad(t *testing.T) {
	c := New[string, int](4)
	calls := 0
	load := func() (int, error) {
		calls++
		return 7, nil
	}

	for i := 0; i < 3; i++ {
		v, err := c.GetOrLoad("k", load)
		if err != nil || v != 7 {
			t.Fatalf("GetOrLoad() = %d, %v, want 7, nil", v, err)
		}
	}
	if calls != 1 {
		t.Errorf("load called %d times, want 1", calls)
	}
	s := c.Stats()
	if s.Hits != 2 || s.Misses != 1 {
		t.Errorf("Stats() hits=%d misses=%d, want 2 and 1", s.Hits, s.Misses)
	}
	if got := s.HitRate(); got < 0.66 || got > 0.67 {
		t.Errorf("HitRate() = %v, want 2/3", got)
	}
}

func TestCacheGetOrLoadError(t *testing.T) {
	c := New[string, int](4)
	boom := errors.New("boom")
	if _, err := c.GetOrLoad("k", func() (int, error) { return 0, boom }); !errors.Is(err, boom) {
		t.Fatalf("GetOrLoad() error = %v, want boom", err)
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d after failed load, want 0", c.Len())
	}
}

func TestCacheClear(t *testing.T) {
	c := New[string, int](4)
	put(c, "a", 1)
	put(c, "b", 2)
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", c.Len())
	}
	if s := c.Stats(); s.Misses != 2 {
		t.Errorf("Stats().Misses after Clear = %d, want 2 kept", s.Misses)
	}
	put(c, "c", 3)
	if v, ok := c.Get("c"); !ok || v != 3 {
		t.Errorf("Get(c) after Clear = %d, %v", v, ok)
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := New[string, int](16)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				k := strconv.Itoa((g + i) % 32)
				put(c, k, i)
				c.Get(k)
			}
		}(g)
	}
	wg.Wait()
	if c.Len() > 16 {
		t.Errorf("Len() = %d, want <= 16", c.Len())
	}
}

func BenchmarkCacheGet(b *testing.B) {
	c := New[string, int](1000)
	for i := 0; i < 100; i++ {
		put(c, strconv.Itoa(i), i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get("50")
	}
}
