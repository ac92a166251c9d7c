package ratetable

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

type lookupResult struct {
	rate  float32
	found bool
}

// lookupCache memoizes level lookups, misses included.
// A nil cache is valid and never hits.
type lookupCache struct {
	lru *lru.Cache[uint16, lookupResult]
}

// newLookupCache returns nil when size is not positive
func newLookupCache(size int) *lookupCache {
	if size <= 0 {
		return nil
	}
	c, err := lru.New[uint16, lookupResult](size)
	if err != nil {
		return nil
	}
	return &lookupCache{lru: c}
}

func (c *lookupCache) get(level uint16) (lookupResult, bool) {
	if c == nil {
		return lookupResult{}, false
	}
	return c.lru.Get(level)
}

func (c *lookupCache) add(level uint16, r lookupResult) {
	if c == nil {
		return
	}
	c.lru.Add(level, r)
}

func (c *lookupCache) purge() {
	if c == nil {
		return
	}
	c.lru.Purge()
}

func (c *lookupCache) len() int {
	if c == nil {
		return 0
	}
	return c.lru.Len()
}
