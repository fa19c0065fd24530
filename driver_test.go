package ttt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runScenario(t *testing.T, alphabet *Alphabet, maxLen int, accept func(Word) bool, wantStates int) {
	t.Helper()
	teacher := newPredicateTeacher(alphabet, maxLen, accept)
	learner := NewLearner(alphabet, teacher, Config{})
	dfa, err := learner.Run()
	require.NoError(t, err)

	if wantStates > 0 {
		assert.Equal(t, wantStates, dfa.NumStates())
	}

	frontier := []Word{""}
	for length := 0; length <= maxLen; length++ {
		var next []Word
		for _, w := range frontier {
			assert.Equal(t, accept(w), dfa.Accepts(w), "mismatch on %q", string(w))
			for _, sym := range alphabet.Symbols() {
				next = append(next, w.Append(sym))
			}
		}
		frontier = next
	}
}

// Scenario A: even number of 'a's.
func TestScenarioParity(t *testing.T) {
	alphabet := NewAlphabet('a', 'b')
	accept := func(w Word) bool {
		count := 0
		for _, s := range w.Symbols() {
			if s == 'a' {
				count++
			}
		}
		return count%2 == 0
	}
	runScenario(t, alphabet, 8, accept, 2)
}

// Scenario B: words ending in "ab".
func TestScenarioEndsWithAB(t *testing.T) {
	alphabet := NewAlphabet('a', 'b')
	accept := func(w Word) bool {
		return strings.HasSuffix(string(w), "ab")
	}
	runScenario(t, alphabet, 8, accept, 3)
}

// Scenario C: words containing "aba" as a substring.
func TestScenarioContainsABA(t *testing.T) {
	alphabet := NewAlphabet('a', 'b')
	accept := func(w Word) bool {
		return strings.Contains(string(w), "aba")
	}
	runScenario(t, alphabet, 8, accept, 0)
}

// Scenario D: number of 'a's is of the form 4i+3.
func TestScenarioFourIPlusThreeAs(t *testing.T) {
	alphabet := NewAlphabet('a', 'b')
	accept := func(w Word) bool {
		count := 0
		for _, s := range w.Symbols() {
			if s == 'a' {
				count++
			}
		}
		return count%4 == 3
	}
	runScenario(t, alphabet, 10, accept, 4)
}

// Scenario E: the empty language.
func TestScenarioEmptyLanguage(t *testing.T) {
	alphabet := NewAlphabet('a', 'b')
	accept := func(w Word) bool { return false }
	runScenario(t, alphabet, 6, accept, 1)
}

// Scenario F: the language Σ*.
func TestScenarioSigmaStar(t *testing.T) {
	alphabet := NewAlphabet('a', 'b')
	accept := func(w Word) bool { return true }
	runScenario(t, alphabet, 6, accept, 1)
}

func TestLearnerRespectsMembershipQueryBudget(t *testing.T) {
	alphabet := NewAlphabet('a', 'b')
	accept := func(w Word) bool {
		return strings.Contains(string(w), "aba")
	}
	teacher := newPredicateTeacher(alphabet, 8, accept)
	learner := NewLearner(alphabet, teacher, Config{MaxMembershipQueries: 1})

	_, err := learner.Run()
	require.Error(t, err)
	var rex *ResourceExhaustionError
	require.ErrorAs(t, err, &rex)
}

func TestLearnerLinearCounterexampleSearchAgreesWithEager(t *testing.T) {
	alphabet := NewAlphabet('a', 'b')
	accept := func(w Word) bool {
		return strings.HasSuffix(string(w), "ab")
	}
	teacher := newPredicateTeacher(alphabet, 8, accept)
	learner := NewLearner(alphabet, teacher, Config{LinearCounterexampleSearch: true})

	dfa, err := learner.Run()
	require.NoError(t, err)
	assert.True(t, dfa.Accepts("ab"))
	assert.False(t, dfa.Accepts("ba"))
}
