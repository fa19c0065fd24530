package teachers

import (
	"github.com/shetkarneeraj/ttt"
)

// PredicateTeacher answers membership queries with an arbitrary Go
// predicate and checks equivalence by exhaustively enumerating every word
// up to MaxLength. It cannot prove equivalence over an infinite language;
// callers who need an exact check against a known regular language should
// build the canonical DFA and use DFATeacher instead.
type PredicateTeacher struct {
	Alphabet  *ttt.Alphabet
	Accept    func(ttt.Word) bool
	MaxLength int
}

// NewPredicateTeacher builds a PredicateTeacher bounded to maxLength.
func NewPredicateTeacher(alphabet *ttt.Alphabet, maxLength int, accept func(ttt.Word) bool) *PredicateTeacher {
	return &PredicateTeacher{Alphabet: alphabet, Accept: accept, MaxLength: maxLength}
}

// IsMember evaluates the predicate.
func (p *PredicateTeacher) IsMember(w ttt.Word) bool {
	return p.Accept(w)
}

// IsEquivalent walks the words of Σ≤MaxLength in breadth-first (shortlex)
// order and returns the first one the hypothesis gets wrong.
func (p *PredicateTeacher) IsEquivalent(hyp ttt.HypothesisView) (bool, ttt.Word) {
	frontier := []ttt.Word{""}
	for length := 0; length <= p.MaxLength; length++ {
		var next []ttt.Word
		for _, w := range frontier {
			if hyp.Evaluate(w) != p.Accept(w) {
				return false, w
			}
			for _, sym := range p.Alphabet.Symbols() {
				next = append(next, w.Append(sym))
			}
		}
		frontier = next
	}
	return true, ""
}
