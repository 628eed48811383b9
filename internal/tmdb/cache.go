package tmdb

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// responseCache memoizes successful GET bodies keyed by path and query.
// A nil cache is valid and never hits.
type responseCache struct {
	lru *expirable.LRU[string, []byte]
}

func newResponseCache(size int, ttl time.Duration) *responseCache {
	if size <= 0 {
		return nil
	}
	return &responseCache{lru: expirable.NewLRU[string, []byte](size, nil, ttl)}
}

func (c *responseCache) get(key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	return c.lru.Get(key)
}

func (c *responseCache) put(key string, body []byte) {
	if c == nil {
		return
	}
	c.lru.Add(key, body)
}

func (c *responseCache) len() int {
	if c == nil {
		return 0
	}
	return c.lru.Len()
}

func (c *responseCache) purge() {
	if c == nil {
		return
	}
	c.lru.Purge()
}
