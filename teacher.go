package ttt

// Teacher is the Minimally Adequate Teacher (MAT) oracle the learner
// queries. Implementations must answer IsMember deterministically: the same
// word must always produce the same answer across the lifetime of a
// Learner. IsEquivalent need not be idempotent (a teacher may, for
// instance, draw a fresh random counterexample each call), but once it
// returns (true, "") the hypothesis it was given must in fact be correct.
type Teacher interface {
	// IsMember answers whether w belongs to the target language.
	IsMember(w Word) bool

	// IsEquivalent checks whether hyp recognizes the target language. It
	// returns (true, "") on agreement, or (false, cx) with cx a word on
	// which hyp and the target disagree.
	IsEquivalent(hyp HypothesisView) (ok bool, counterexample Word)
}

// HypothesisView is the read-only projection of a Hypothesis exposed to a
// Teacher's IsEquivalent implementation. It is a total, deterministic
// function of input words: the learner only hands it to a teacher once the
// hypothesis has no open transitions. Temporary discriminators have also
// been finalized by then, unless Config.DeferFinalization is set.
type HypothesisView interface {
	// Alphabet returns Σ.
	Alphabet() *Alphabet

	// States returns every state ID currently in the hypothesis.
	States() []StateID

	// Start returns the start state.
	Start() StateID

	// IsFinal reports whether q is an accepting state.
	IsFinal(q StateID) bool

	// Step returns the state reached from q on symbol a.
	Step(q StateID, a Symbol) StateID

	// Evaluate runs w from the start state and reports acceptance.
	Evaluate(w Word) bool
}
