package ttt

// DFA is a plain, immutable deterministic finite automaton extracted from
// a stabilized Hypothesis. Unlike Hypothesis it carries no discrimination
// tree or learning bookkeeping: it is the artifact handed back to callers
// once learning completes. DFA implements HypothesisView so it can itself
// be used wherever a hypothesis is expected, e.g. checking two learned
// DFAs against each other with teachers.DFATeacher.
type DFA struct {
	alphabet *Alphabet
	start    StateID
	final    []bool
	// transitions[state][symbolIndex] is the target state.
	transitions [][]StateID
}

// toDFA snapshots a closed, finalized Hypothesis into a DFA.
func toDFA(h *Hypothesis) *DFA {
	n := len(h.arena.states)
	d := &DFA{
		alphabet:    h.alphabet,
		start:       h.start,
		final:       make([]bool, n),
		transitions: make([][]StateID, n),
	}
	for i, st := range h.arena.states {
		d.final[i] = h.IsFinal(st.id)
		row := make([]StateID, h.alphabet.Size())
		for idx, tid := range st.out {
			t := h.arena.transition(tid)
			target, ok := t.resolvedTarget(h.tree)
			if !ok {
				usagePanic("hypothesis state %d has an unresolved transition at export time", st.id)
			}
			row[idx] = target
		}
		d.transitions[i] = row
	}
	return d
}

// Alphabet returns Σ.
func (d *DFA) Alphabet() *Alphabet { return d.alphabet }

// NumStates returns the number of states.
func (d *DFA) NumStates() int { return len(d.transitions) }

// States returns every state ID, implementing HypothesisView.
func (d *DFA) States() []StateID {
	out := make([]StateID, len(d.transitions))
	for i := range out {
		out[i] = StateID(i)
	}
	return out
}

// Start returns the start state.
func (d *DFA) Start() StateID { return d.start }

// IsFinal reports whether state q is accepting.
func (d *DFA) IsFinal(q StateID) bool { return d.final[q] }

// Step returns the state reached from q on symbol a. Panics if a is not in Σ.
func (d *DFA) Step(q StateID, a Symbol) StateID {
	idx := d.alphabet.Index(a)
	if idx < 0 {
		usagePanic("symbol %q is not in the DFA's alphabet", rune(a))
	}
	return d.transitions[q][idx]
}

// Evaluate runs w from the start state and reports acceptance.
func (d *DFA) Evaluate(w Word) bool { return d.Accepts(w) }

// Accepts reports whether w is accepted, running from the start state.
func (d *DFA) Accepts(w Word) bool {
	cur := d.start
	for _, sym := range w.Symbols() {
		cur = d.Step(cur, sym)
	}
	return d.final[cur]
}
