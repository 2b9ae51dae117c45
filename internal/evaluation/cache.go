package evaluation

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"sync"
	"time"

	"pv-battery-sizing/internal/model"
	"pv-battery-sizing/internal/scoring"
)

const DefaultCacheTTL = time.Hour

type cacheEntry struct {
	result    *Result
	expiresAt time.Time
}

// Cache memoizes results by their inputs. Runs are pure, so an entry stays
// valid until its TTL passes or the catalog changes; a server builds one
// Cache per catalog. All methods are safe on a nil *Cache, which caches
// nothing.
type Cache struct {
	mu    sync.RWMutex
	store map[string]cacheEntry
	ttl   time.Duration
	now   func() time.Time
}

func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{store: make(map[string]cacheEntry), ttl: ttl, now: time.Now}
}

// CacheFromEnv returns a Cache when ENABLE_EVALUATION_CACHE=true, nil
// otherwise. EVALUATION_CACHE_TTL overrides the TTL (Go duration syntax).
func CacheFromEnv() *Cache {
	if os.Getenv("ENABLE_EVALUATION_CACHE") != "true" {
		return nil
	}
	ttl := DefaultCacheTTL
	if s := os.Getenv("EVALUATION_CACHE_TTL"); s != "" {
		if parsed, err := time.ParseDuration(s); err == nil {
			ttl = parsed
		}
	}
	return NewCache(ttl)
}

// Get returns a cached result. Callers must not modify it.
func (c *Cache) Get(key string) (*Result, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.store[key]
	if !ok || c.now().After(e.expiresAt) {
		return nil, false
	}
	return e.result, true
}

// Set stores a result and drops expired entries.
func (c *Cache) Set(key string, r *Result) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for k, e := range c.store {
		if now.After(e.expiresAt) {
			delete(c.store, k)
		}
	}
	c.store[key] = cacheEntry{result: r, expiresAt: now.Add(c.ttl)}
}

func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

func (c *Cache) Clear() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store = make(map[string]cacheEntry)
}

// CacheKey hashes every input of a run.
func CacheKey(p model.SystemParameters, w scoring.Weights, costs scoring.CostModel) string {
	keyStr := fmt.Sprintf("%+v|%+v|%+v", p, w, costs)
	hash := sha256.Sum256([]byte(keyStr))
	return hex.EncodeToString(hash[:])
}
