package ttt

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// CachingTeacher decorates a Teacher, memoizing IsMember answers. Learning
// runs re-query the same short words (access sequences extended by one
// symbol, or by a discriminator) far more often than they encounter new
// ones, so this typically cuts real membership-oracle traffic by an order
// of magnitude. IsEquivalent is passed straight through uncached: it is
// only ever called once per round and must always reflect the Teacher's
// live state.
type CachingTeacher struct {
	inner   Teacher
	cache   *orderedmap.OrderedMap[Word, bool]
	maxSize int // 0 = unbounded
}

// NewCachingTeacher wraps inner with an unbounded membership-query cache.
func NewCachingTeacher(inner Teacher) *CachingTeacher {
	return NewBoundedCachingTeacher(inner, 0)
}

// NewBoundedCachingTeacher wraps inner with a membership-query cache capped
// at maxSize entries (0 = unbounded, spec.md §6's query_cache_size). Once
// the cap is reached, the oldest-inserted word is evicted before the new
// one is added: plain FIFO, not LRU — repeated Get/Set of an already-cached
// word never changes its position in the orderedmap, so "oldest" always
// means "least recently first seen".
func NewBoundedCachingTeacher(inner Teacher, maxSize int) *CachingTeacher {
	return &CachingTeacher{inner: inner, cache: orderedmap.New[Word, bool](), maxSize: maxSize}
}

// IsMember answers from cache when possible, otherwise delegates, evicts
// the oldest entry if the cache is at capacity, and memoizes the result.
func (c *CachingTeacher) IsMember(w Word) bool {
	if v, ok := c.cache.Get(w); ok {
		return v
	}
	v := c.inner.IsMember(w)
	if c.maxSize > 0 && c.cache.Len() >= c.maxSize {
		if oldest := c.cache.Oldest(); oldest != nil {
			c.cache.Delete(oldest.Key)
		}
	}
	c.cache.Set(w, v)
	return v
}

// IsEquivalent delegates directly to the wrapped Teacher.
func (c *CachingTeacher) IsEquivalent(hyp HypothesisView) (bool, Word) {
	return c.inner.IsEquivalent(hyp)
}

// CacheSize returns the number of distinct words currently memoized.
func (c *CachingTeacher) CacheSize() int { return c.cache.Len() }
