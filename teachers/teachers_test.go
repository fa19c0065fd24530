package teachers

import (
	"testing"

	"github.com/shetkarneeraj/ttt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredicateTeacherLearnsEndsWithAB(t *testing.T) {
	alphabet := ttt.NewAlphabet('a', 'b')
	teacher := NewPredicateTeacher(alphabet, 8, func(w ttt.Word) bool {
		s := string(w)
		return len(s) >= 2 && s[len(s)-2:] == "ab"
	})
	learner := ttt.NewLearner(alphabet, teacher, ttt.Config{})
	dfa, err := learner.Run()
	require.NoError(t, err)

	assert.True(t, dfa.Accepts("ab"))
	assert.True(t, dfa.Accepts("aab"))
	assert.False(t, dfa.Accepts("ba"))
	assert.False(t, dfa.Accepts(""))
}

func TestDFATeacherAgreesWithItsOwnTarget(t *testing.T) {
	alphabet := ttt.NewAlphabet('a', 'b')
	reference := NewPredicateTeacher(alphabet, 6, func(w ttt.Word) bool { return w == "ab" })
	target, err := ttt.NewLearner(alphabet, reference, ttt.Config{}).Run()
	require.NoError(t, err)

	ok, _ := NewDFATeacher(target).IsEquivalent(target)
	assert.True(t, ok, "a DFA must be equivalent to itself")
}

func TestDFATeacherRejectsWrongHypothesis(t *testing.T) {
	alphabet := ttt.NewAlphabet('a', 'b')
	target, err := ttt.NewLearner(alphabet, NewPredicateTeacher(alphabet, 6, func(w ttt.Word) bool { return w == "ab" }), ttt.Config{}).Run()
	require.NoError(t, err)

	wrong, err := ttt.NewLearner(alphabet, NewPredicateTeacher(alphabet, 6, func(w ttt.Word) bool { return w == "ba" }), ttt.Config{}).Run()
	require.NoError(t, err)

	ok, cx := NewDFATeacher(target).IsEquivalent(wrong)
	require.False(t, ok)
	assert.True(t, target.Accepts(cx) != wrong.Accepts(cx))
}
