package ttt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinalizeDiscriminatorsClearsTemporaryFlagAndPreservesBehavior(t *testing.T) {
	alphabet := NewAlphabet('a', 'b')
	accept := func(w Word) bool {
		s := string(w)
		return len(s) >= 2 && s[len(s)-2:] == "ab"
	}
	teacher := newPredicateTeacher(alphabet, 6, accept)

	h := newHypothesis(alphabet, teacher)
	closeOpenTransitions(h, teacher)

	var cx Word
	for {
		ok, c := teacher.IsEquivalent(h)
		if ok {
			break
		}
		cx = c
		require.NoError(t, processCounterexample(h, teacher, cx, Config{}))
		closeOpenTransitions(h, teacher)
	}
	require.NotEmpty(t, h.tree.temporaryBlockApexes(), "this language needs at least one split")

	before := snapshotLanguage(h, alphabet, 5)
	finalizeDiscriminators(h, teacher)
	after := snapshotLanguage(h, alphabet, 5)

	assert.Empty(t, h.tree.temporaryBlockApexes())
	assert.Equal(t, before, after, "finalizing discriminators must not change accepted language")
}

func snapshotLanguage(h *Hypothesis, alphabet *Alphabet, maxLen int) map[Word]bool {
	out := map[Word]bool{}
	frontier := []Word{""}
	for length := 0; length <= maxLen; length++ {
		var next []Word
		for _, w := range frontier {
			out[w] = h.evaluate(w)
			for _, sym := range alphabet.Symbols() {
				next = append(next, w.Append(sym))
			}
		}
		frontier = next
	}
	return out
}
