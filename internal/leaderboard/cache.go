package leaderboard

import (
	"sync"
	"time"

	model "github.com/fourcoretech/leaderboard-service/internal/models"
)

// Scope identifies a leaderboard query type.
type Scope string

const (
	ScopeGlobal Scope = "global"
	ScopeRegion Scope = "region"
)

// CacheKey identifies one cacheable query. Key cardinality is small:
// regions × the handful of limits clients actually use.
type CacheKey struct {
	Scope  Scope
	Region model.Region
	Limit  int
}

type cacheEntry struct {
	result    Result
	createdAt time.Time
}

// Cache memoizes assembled leaderboards with a bounded TTL. Entries
// are replaced wholesale, never updated in place; an entry past its
// TTL reads as a miss and is evicted lazily on the next Get. Eviction
// is TTL-only — with the bounded key space there is nothing an LRU
// would protect.
type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[CacheKey]cacheEntry

	now func() time.Time
}

func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[CacheKey]cacheEntry),
		now:     time.Now,
	}
}

// Get returns the cached result for key, or ok=false on a miss or an
// expired entry.
func (c *Cache) Get(key CacheKey) (Result, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return Result{}, false
	}
	if c.now().Sub(entry.createdAt) > c.ttl {
		c.evict(key, entry.createdAt)
		return Result{}, false
	}
	return entry.result, true
}

// Put stores a freshly assembled result, replacing any previous entry.
func (c *Cache) Put(key CacheKey, result Result) {
	c.mu.Lock()
	c.entries[key] = cacheEntry{result: result, createdAt: c.now()}
	c.mu.Unlock()
}

// evict removes an expired entry unless a concurrent Put already
// replaced it with a newer one.
func (c *Cache) evict(key CacheKey, createdAt time.Time) {
	c.mu.Lock()
	if entry, ok := c.entries[key]; ok && entry.createdAt.Equal(createdAt) {
		delete(c.entries, key)
	}
	c.mu.Unlock()
}

// Len reports the number of resident entries, expired or not.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
