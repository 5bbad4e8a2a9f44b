package translate

import (
	"strings"
	"sync"
	"time"
)

// Cache memoizes translations keyed by exact (text, targetLanguage) pairs. It
// is shared process-wide and constructed once at startup; a fresh instance per
// test keeps tests deterministic.
//
// Eviction is insertion-order FIFO, not LRU: when the cache is full the single
// oldest-inserted entry is dropped before the next insert. Reads do not
// refresh an entry's position.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	order   []string
	max     int
	ttl     time.Duration
	now     func() time.Time
}

type cacheEntry struct {
	value      string
	insertedAt time.Time
}

func NewCache(max int, ttl time.Duration) *Cache {
	if max <= 0 {
		max = 1000
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Cache{
		entries: make(map[string]cacheEntry),
		max:     max,
		ttl:     ttl,
		now:     time.Now,
	}
}

func cacheKey(text, targetLanguage string) string {
	return strings.TrimSpace(text) + ":" + targetLanguage
}

// Get returns the cached translation or "" with ok=false. Entries older than
// the TTL are treated as absent and deleted lazily here.
func (c *Cache) Get(text, targetLanguage string) (string, bool) {
	key := cacheKey(text, targetLanguage)

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return "", false
	}
	if c.now().Sub(e.insertedAt) > c.ttl {
		c.remove(key)
		return "", false
	}
	return e.value, true
}

func (c *Cache) Set(text, targetLanguage, value string) {
	key := cacheKey(text, targetLanguage)

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.max {
		if len(c.order) > 0 {
			c.remove(c.order[0])
		}
	}

	if _, exists := c.entries[key]; !exists {
		c.order = append(c.order, key)
	}
	c.entries[key] = cacheEntry{value: value, insertedAt: c.now()}
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// remove must be called with the lock held.
func (c *Cache) remove(key string) {
	delete(c.entries, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}
