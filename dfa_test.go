package ttt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDFAExportsClosedHypothesis(t *testing.T) {
	alphabet := NewAlphabet('a')
	teacher := newPredicateTeacher(alphabet, 4, func(w Word) bool { return w == "a" })
	h := newHypothesis(alphabet, teacher)
	closeOpenTransitions(h, teacher)
	finalizeDiscriminators(h, teacher)

	dfa := toDFA(h)
	assert.Equal(t, h.Size(), dfa.NumStates())
	assert.False(t, dfa.Accepts(""))
	assert.True(t, dfa.Accepts("a"))
	assert.False(t, dfa.Accepts("aa"))
}

func TestToDFAPanicsOnUnresolvedTransition(t *testing.T) {
	alphabet := NewAlphabet('a')
	teacher := newPredicateTeacher(alphabet, 4, func(w Word) bool { return w == "a" })
	h := newHypothesis(alphabet, teacher)
	// Deliberately skip closeOpenTransitions: the start state's self-loop
	// is still open.
	require.Panics(t, func() { toDFA(h) })
}

func TestDFAStepPanicsOnSymbolOutsideAlphabet(t *testing.T) {
	alphabet := NewAlphabet('a')
	teacher := newPredicateTeacher(alphabet, 4, func(w Word) bool { return w == "a" })
	h := newHypothesis(alphabet, teacher)
	closeOpenTransitions(h, teacher)
	dfa := toDFA(h)

	assert.Panics(t, func() { dfa.Step(dfa.Start(), 'z') })
}
