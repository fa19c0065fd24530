package ttt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCachingTeacherMemoizesMembership(t *testing.T) {
	alphabet := NewAlphabet('a', 'b')
	inner := newPredicateTeacher(alphabet, 4, func(w Word) bool { return w == "ab" })
	cached := NewCachingTeacher(inner)

	assert.True(t, cached.IsMember("ab"))
	assert.True(t, cached.IsMember("ab"))
	assert.Equal(t, 1, inner.queryCount, "second call must be served from cache")
	assert.Equal(t, 1, cached.CacheSize())

	assert.False(t, cached.IsMember("ba"))
	assert.Equal(t, 2, inner.queryCount)
	assert.Equal(t, 2, cached.CacheSize())
}

func TestCachingTeacherDelegatesEquivalence(t *testing.T) {
	alphabet := NewAlphabet('a')
	inner := newPredicateTeacher(alphabet, 3, func(w Word) bool { return w == "a" })
	cached := NewCachingTeacher(inner)
	h := newHypothesis(alphabet, cached)
	closeOpenTransitions(h, cached)

	ok, _ := cached.IsEquivalent(h)
	assert.False(t, ok, "the trivial hypothesis should not yet accept only {a}")
}
