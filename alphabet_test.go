package ttt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphabetCanonicalOrder(t *testing.T) {
	a := NewAlphabet('b', 'a', 'c', 'a')
	require.Equal(t, 3, a.Size())
	assert.Equal(t, []Symbol{'a', 'b', 'c'}, a.Symbols())
	assert.Equal(t, 0, a.Index('a'))
	assert.Equal(t, 1, a.Index('b'))
	assert.Equal(t, 2, a.Index('c'))
	assert.Equal(t, -1, a.Index('z'))
}

func TestAlphabetContains(t *testing.T) {
	a := NewAlphabet('0', '1')
	assert.True(t, a.Contains('0'))
	assert.False(t, a.Contains('x'))
}

func TestWordConcatAndAppend(t *testing.T) {
	w := NewWord('a', 'b')
	w2 := w.Append('c')
	assert.Equal(t, Word("abc"), w2)
	assert.Equal(t, Word("ab"), w, "Append must not mutate the receiver")

	joined := w.Concat(NewWord('x', 'y'))
	assert.Equal(t, Word("abxy"), joined)
}

func TestWordSymbolsAndLen(t *testing.T) {
	w := NewWord('a', 'b', 'c')
	assert.Equal(t, 3, w.Len())
	assert.Equal(t, []Symbol{'a', 'b', 'c'}, w.Symbols())
	assert.Equal(t, 0, Word("").Len())
}
