package translate

import (
	"fmt"
	"testing"
	"time"
)

func TestCacheSetGet(t *testing.T) {
	c := NewCache(10, time.Hour)
	c.Set("Hello", "tw", "Maakye")

	got, ok := c.Get("Hello", "tw")
	if !ok || got != "Maakye" {
		t.Fatalf("Get after Set = (%q, %v), want (Maakye, true)", got, ok)
	}
}

func TestCacheMiss(t *testing.T) {
	c := NewCache(10, time.Hour)
	if _, ok := c.Get("never set", "tw"); ok {
		t.Fatal("Get on un-set key reported a hit")
	}
}

func TestCacheKeyIsExactMatch(t *testing.T) {
	c := NewCache(10, time.Hour)
	c.Set("Hello", "tw", "Maakye")

	if _, ok := c.Get("hello", "tw"); ok {
		t.Fatal("case-differing text should be a miss")
	}
	if _, ok := c.Get("Hello", "yo"); ok {
		t.Fatal("differing target language should be a miss")
	}
}

func TestCacheTTLExpiry(t *testing.T) {
	c := NewCache(10, 24*time.Hour)
	base := time.Now()
	c.now = func() time.Time { return base }

	c.Set("Hello", "tw", "Maakye")

	c.now = func() time.Time { return base.Add(25 * time.Hour) }
	if _, ok := c.Get("Hello", "tw"); ok {
		t.Fatal("entry past TTL reported a hit")
	}
	if c.Len() != 0 {
		t.Fatalf("expired entry not lazily deleted, len=%d", c.Len())
	}
}

func TestCacheEvictsOldestInserted(t *testing.T) {
	const capacity = 5
	c := NewCache(capacity, time.Hour)

	for i := 0; i < capacity+1; i++ {
		c.Set(fmt.Sprintf("text-%d", i), "tw", fmt.Sprintf("value-%d", i))
	}

	if _, ok := c.Get("text-0", "tw"); ok {
		t.Fatal("oldest-inserted entry survived eviction")
	}
	for i := 1; i <= capacity; i++ {
		if _, ok := c.Get(fmt.Sprintf("text-%d", i), "tw"); !ok {
			t.Fatalf("entry text-%d evicted, only the oldest should go", i)
		}
	}
}

func TestCacheEvictionIsInsertionOrderNotAccessOrder(t *testing.T) {
	c := NewCache(3, time.Hour)
	c.Set("a", "tw", "1")
	c.Set("b", "tw", "2")
	c.Set("c", "tw", "3")

	// Reading "a" must not protect it: eviction is FIFO, not LRU.
	if _, ok := c.Get("a", "tw"); !ok {
		t.Fatal("setup: a missing")
	}

	c.Set("d", "tw", "4")
	if _, ok := c.Get("a", "tw"); ok {
		t.Fatal("recently-read oldest entry survived, eviction behaves like LRU")
	}
	if _, ok := c.Get("b", "tw"); !ok {
		t.Fatal("second-oldest entry evicted instead of oldest")
	}
}

func TestCacheOverwriteKeepsSingleEntry(t *testing.T) {
	c := NewCache(10, time.Hour)
	c.Set("Hello", "tw", "old")
	c.Set("Hello", "tw", "new")

	if got, _ := c.Get("Hello", "tw"); got != "new" {
		t.Fatalf("overwrite not visible, got %q", got)
	}
	if c.Len() != 1 {
		t.Fatalf("overwrite grew the cache, len=%d", c.Len())
	}
}
