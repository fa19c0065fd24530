// Package teachers provides concrete Teacher implementations for driving a
// Learner against either a known reference automaton or a membership
// predicate with a bounded equivalence check.
package teachers

import (
	"github.com/shetkarneeraj/ttt"
)

type productState struct {
	target ttt.StateID
	hyp    int
}

// DFATeacher answers membership and equivalence queries against a known
// reference DFA. IsEquivalent performs a breadth-first search over the
// product of the target and the hypothesis, looking for a reachable pair
// of states whose acceptance disagrees; this is an exact equivalence
// check, unlike PredicateTeacher's bounded enumeration.
type DFATeacher struct {
	target *ttt.DFA
}

// NewDFATeacher builds a Teacher backed by target.
func NewDFATeacher(target *ttt.DFA) *DFATeacher {
	return &DFATeacher{target: target}
}

// IsMember reports whether w is accepted by the target DFA.
func (d *DFATeacher) IsMember(w ttt.Word) bool {
	return d.target.Accepts(w)
}

// IsEquivalent explores the product automaton breadth-first in canonical
// alphabet order, so that the first discrepancy found is always the
// shortest (and, among equal lengths, lexicographically first) one.
func (d *DFATeacher) IsEquivalent(hyp ttt.HypothesisView) (bool, ttt.Word) {
	alphabet := d.target.Alphabet()
	start := productState{target: d.target.Start(), hyp: int(hyp.Start())}

	visited := map[productState]bool{start: true}
	queue := []productState{start}
	words := map[productState]ttt.Word{start: ""}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if d.target.IsFinal(cur.target) != hyp.IsFinal(ttt.StateID(cur.hyp)) {
			return false, words[cur]
		}

		w := words[cur]
		for _, sym := range alphabet.Symbols() {
			next := productState{
				target: d.target.Step(cur.target, sym),
				hyp:    int(hyp.Step(ttt.StateID(cur.hyp), sym)),
			}
			if visited[next] {
				continue
			}
			visited[next] = true
			words[next] = w.Append(sym)
			queue = append(queue, next)
		}
	}
	return true, ""
}
