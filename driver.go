package ttt

// Config controls a Learner's resource limits and diagnostics. The zero
// value is a usable default: no query budget, eager RS search.
type Config struct {
	// MaxMembershipQueries caps the number of IsMember calls a Learner
	// will make before returning a ResourceExhaustionError. Zero means
	// unbounded.
	MaxMembershipQueries int

	// LinearCounterexampleSearch selects rsLinearSearch over the default
	// rsEagerSearch (binary search) for decomposing counterexamples. Set
	// this when IsMember is cheap and call overhead dominates.
	LinearCounterexampleSearch bool

	// QueryCacheSize bounds the membership-query cache a Learner wraps its
	// Teacher with (spec.md §6's query_cache_size). Zero means unbounded;
	// the cache is always applied since memoizing is semantically
	// transparent (IsMember must be idempotent, spec.md §5) and learning
	// re-queries the same short words heavily.
	QueryCacheSize int

	// DeferFinalization skips discriminator finalization after every round,
	// running it once just before a converged hypothesis is returned
	// instead. The zero value runs finalization every round, matching
	// spec.md §6's finalize_after_each_cx (default true) — finalization
	// never changes tree structure or DFA output (finalize.go only
	// replaces a proven-equivalent discriminator string), so deferring it
	// is purely a performance knob for rounds with many temporary blocks.
	DeferFinalization bool
}

// Stats reports the query costs of a completed or in-progress Learner run.
type Stats struct {
	MembershipQueries  int
	EquivalenceQueries int
	Rounds             int
	States             int
}

// Learner drives the TTT algorithm to a fixed point against a Teacher: it
// alternates closing the hypothesis's open transitions, finalizing any
// temporary discriminators, and asking the teacher whether the closed
// hypothesis is correct, until the teacher agrees.
type Learner struct {
	alphabet *Alphabet
	teacher  Teacher
	cfg      Config
	h        *Hypothesis
	stats    Stats
}

// NewLearner builds a Learner for the given alphabet and teacher. Queries
// are counted (and budget-checked) before they ever reach teacher, and
// memoized above that so a cache hit never counts against the budget or
// the reported Stats.
func NewLearner(alphabet *Alphabet, teacher Teacher, cfg Config) *Learner {
	counting := &countingTeacher{inner: teacher, cfg: cfg}
	cached := NewBoundedCachingTeacher(counting, cfg.QueryCacheSize)
	l := &Learner{alphabet: alphabet, teacher: cached, cfg: cfg}
	counting.stats = &l.stats
	l.h = newHypothesis(alphabet, cached)
	return l
}

// Run executes the learning loop to completion and returns the final
// stable hypothesis as a DFA. It returns a ResourceExhaustionError if a
// configured query budget is exceeded, or an OracleContractError if the
// teacher's answers are internally inconsistent.
func (l *Learner) Run() (dfa *DFA, err error) {
	// A membership-query budget can be exceeded from deep inside
	// closeOpenTransitions or processCounterexample; countingTeacher
	// panics with *ResourceExhaustionError rather than threading an error
	// return through every call site, and this recover converts it back
	// into a normal error result.
	defer func() {
		if r := recover(); r != nil {
			if rex, ok := r.(*ResourceExhaustionError); ok {
				dfa, err = nil, rex
				return
			}
			panic(r)
		}
	}()

	for {
		closeOpenTransitions(l.h, l.teacher)
		if !l.cfg.DeferFinalization {
			finalizeDiscriminators(l.h, l.teacher)
		}

		l.stats.EquivalenceQueries++
		l.stats.States = l.h.Size()
		T().Debugf("round %d: hypothesis has %d states, asking for equivalence", l.stats.Rounds, l.stats.States)
		ok, cx, err := l.safeEquivalence()
		if err != nil {
			return nil, err
		}
		if ok {
			if l.cfg.DeferFinalization {
				finalizeDiscriminators(l.h, l.teacher)
			}
			T().Infof("converged after %d rounds, %d states, %d membership queries",
				l.stats.Rounds, l.stats.States, l.stats.MembershipQueries)
			return toDFA(l.h), nil
		}

		l.stats.Rounds++
		T().Debugf("counterexample %q", string(cx))
		if err := processCounterexample(l.h, l.teacher, cx, l.cfg); err != nil {
			return nil, err
		}
	}
}

func (l *Learner) safeEquivalence() (bool, Word, error) {
	ok, cx := l.teacher.IsEquivalent(l.h)
	if ok {
		return true, "", nil
	}
	if cx == "" {
		return false, "", &OracleContractError{Why: "IsEquivalent reported disagreement but returned an empty counterexample"}
	}
	if l.h.evaluate(cx) == l.teacher.IsMember(cx) {
		return false, "", &OracleContractError{Word: cx, Why: "reported counterexample does not actually distinguish the hypothesis from the target"}
	}
	return false, cx, nil
}

// Hypothesis returns the learner's current (possibly not yet fully closed
// or stabilized) hypothesis as a read-only view, useful for checkpointing
// progress after a ResourceExhaustionError.
func (l *Learner) Hypothesis() HypothesisView { return l.h }

// Stats returns the query and round counters accumulated so far.
func (l *Learner) Stats() Stats { return l.stats }

// countingTeacher wraps a Teacher to track query counts and enforce a
// membership-query budget, the way dragomit-hsm's event delivery tracks
// transition counts for its own diagnostics.
type countingTeacher struct {
	inner Teacher
	cfg   Config
	stats *Stats
}

func (c *countingTeacher) IsMember(w Word) bool {
	c.stats.MembershipQueries++
	if c.cfg.MaxMembershipQueries > 0 && c.stats.MembershipQueries > c.cfg.MaxMembershipQueries {
		panic(&ResourceExhaustionError{Budget: c.cfg.MaxMembershipQueries, Spent: c.stats.MembershipQueries})
	}
	return c.inner.IsMember(w)
}

func (c *countingTeacher) IsEquivalent(hyp HypothesisView) (bool, Word) {
	return c.inner.IsEquivalent(hyp)
}
