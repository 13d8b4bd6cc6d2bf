package goglob

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

type cacheKey struct {
	pattern       string
	caseSensitive bool
}

// Cache is a fixed-capacity LRU of compiled patterns keyed by
// (pattern, case mode). It amortizes analysis across repeated matches when
// the pattern set is not known up front, e.g. when patterns arrive from
// configuration or user input. Safe for concurrent use.
type Cache struct {
	patterns *lru.Cache[cacheKey, *Pattern]
}

// NewCache creates a cache holding up to size compiled patterns.
func NewCache(size int) (*Cache, error) {
	patterns, err := lru.New[cacheKey, *Pattern](size)
	if err != nil {
		return nil, err
	}
	return &Cache{patterns: patterns}, nil
}

// Get returns the compiled form of pattern, compiling and inserting it on a
// miss.
func (c *Cache) Get(pattern string, caseSensitive bool) *Pattern {
	key := cacheKey{pattern: pattern, caseSensitive: caseSensitive}
	if p, ok := c.patterns.Get(key); ok {
		return p
	}
	p := Compile(pattern, caseSensitive)
	c.patterns.Add(key, p)
	return p
}

// Match reports whether s matches pattern, using the cached compiled form.
func (c *Cache) Match(pattern, s string, caseSensitive bool) bool {
	return c.Get(pattern, caseSensitive).Match(s)
}

// Len returns the number of compiled patterns currently cached.
func (c *Cache) Len() int {
	return c.patterns.Len()
}
