package ttt

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Hypothesis is the learner's current conjectured automaton: a
// discrimination tree plus a set of states and transitions layered over it.
// Some transitions may be "open" (not yet proven to be tree transitions);
// a Hypothesis is only handed to a Teacher's IsEquivalent once
// closeOpenTransitions has emptied that set (spec.md invariant 5).
type Hypothesis struct {
	alphabet *Alphabet
	tree     *DiscriminationTree
	arena    *stateArena
	start    StateID

	// openTransitions is the closure work queue: TransitionIDs not yet
	// resolved to a leaf (spec.md §4.3's "while nonempty: pop"). A
	// transition leaves this set as soon as it is resolved, whether or not
	// it is promoted to tree. Insertion-ordered so the closure loop
	// processes transitions in a deterministic order (spec.md
	// "Determinism").
	openTransitions *orderedmap.OrderedMap[TransitionID, struct{}]

	// treeParent[s] is true once some transition has been promoted to the
	// unique tree (spanning-tree) edge targeting state s — spec.md §4.3:
	// "a transition may be promoted to tree only when it becomes the first
	// such edge for that leaf's state." The start state is the spanning
	// tree's root and never receives an incoming tree edge, so
	// treeParent[start] is seeded true at construction.
	treeParent []bool
}

// newHypothesis builds the one-state initial hypothesis: a single start
// state at access sequence ε, with a self-loop
// on every symbol, all initially non-tree and open.
func newHypothesis(alphabet *Alphabet, teacher Teacher) *Hypothesis {
	tree := newDiscriminationTree()
	arena := newStateArena()
	h := &Hypothesis{
		alphabet:        alphabet,
		tree:            tree,
		arena:           arena,
		openTransitions: orderedmap.New[TransitionID, struct{}](),
	}

	startLeaf := tree.sift(tree.Root(), "", teacher)
	start := arena.addState("", startLeaf, alphabet.Size())
	tree.node(startLeaf).leaf.state = start
	h.start = start
	h.treeParent = []bool{true}

	for _, sym := range alphabet.Symbols() {
		idx := alphabet.Index(sym)
		tid := arena.addTransition(start, sym, idx, tree.Root())
		tree.node(tree.Root()).addIncoming(tid)
		h.openTransitions.Set(tid, struct{}{})
	}
	return h
}

// addState materializes a brand new state at leaf, reached by
// accessSequence, and gives it a self-pointing-at-root open transition for
// every symbol (mirroring the initial hypothesis's construction). Returns
// the new state's ID.
func (h *Hypothesis) addState(accessSequence Word, leaf NodeID) StateID {
	id := h.arena.addState(accessSequence, leaf, h.alphabet.Size())
	h.treeParent = append(h.treeParent, false)
	h.tree.node(leaf).leaf.state = id
	for _, sym := range h.alphabet.Symbols() {
		idx := h.alphabet.Index(sym)
		tid := h.arena.addTransition(id, sym, idx, h.tree.Root())
		h.tree.node(h.tree.Root()).addIncoming(tid)
		h.openTransitions.Set(tid, struct{}{})
	}
	return id
}

// retarget moves transition tid's current tree-node pointer to newNode,
// updating the incoming-transition bookkeeping on both the old and new
// node.
func (h *Hypothesis) retarget(tid TransitionID, newNode NodeID) {
	t := h.arena.transition(tid)
	h.tree.node(t.targetNode).removeIncoming(tid)
	t.targetNode = newNode
	h.tree.node(newNode).addIncoming(tid)
}

// promoteToTree marks tid as a tree transition pointing directly at target
// — the unique spanning-tree edge for target — and removes it from the
// open set. Callers must only invoke this when target has no tree parent
// yet (see hasTreeParent); it unconditionally records target as parented.
func (h *Hypothesis) promoteToTree(tid TransitionID, target StateID) {
	t := h.arena.transition(tid)
	t.isTree = true
	t.target = target
	h.openTransitions.Delete(tid)
	h.treeParent[target] = true
}

// resolveNonTree removes tid from the closure work queue without promoting
// it to tree: tid's target state already has a tree parent, so per spec.md
// §4.3 tid stays a non-tree edge permanently, even though it is fully
// resolved (its targetNode is a leaf with a materialized state).
func (h *Hypothesis) resolveNonTree(tid TransitionID) {
	h.openTransitions.Delete(tid)
}

// requeueForResift re-adds tid to the closure work queue without touching
// its targetNode: used when some other transition's leaf split turned tid's
// current target from a leaf into an inner node (spec.md §2, "re-sift
// affected transitions"), so the next closeOpenTransitions pass descends it
// past the new discriminator. tid must already be non-tree.
func (h *Hypothesis) requeueForResift(tid TransitionID) {
	h.openTransitions.Set(tid, struct{}{})
}

// reopenAt forces tid to be re-sifted from scratch starting at node: it is
// retargeted there and re-queued for closure, demoting it from tree first
// if necessary (which frees its old target to receive a tree parent from
// some other edge later). Used for the RS counterexample case where the
// breakpoint falls at the very last symbol (spec.md §4.4, final paragraph):
// the divergence is about finality, which the root's own "" discriminator
// already encodes, so re-sifting from the root resolves it without any new
// split.
func (h *Hypothesis) reopenAt(tid TransitionID, node NodeID) {
	t := h.arena.transition(tid)
	if t.isTree {
		h.treeParent[t.target] = false
		t.isTree = false
		t.target = invalidState
	}
	h.retarget(tid, node)
	h.openTransitions.Set(tid, struct{}{})
}

// hasTreeParent reports whether some transition has already been promoted
// to the unique tree edge targeting state s.
func (h *Hypothesis) hasTreeParent(s StateID) bool {
	return h.treeParent[s]
}

func (h *Hypothesis) hasOpenTransitions() bool {
	return h.openTransitions.Len() > 0
}

// run follows resolved transitions from q along w and returns the
// resulting state. run is only ever invoked once the hypothesis has been
// closed (spec.md §9, open question 2): every transition reachable from
// start is then resolved, whether or not it is a tree edge, so run accepts
// any resolved transition and only refuses a genuinely unresolved one —
// that is a programmer error, since closing is the driver's job before any
// run/evaluate call.
func (h *Hypothesis) run(q StateID, w Word) StateID {
	cur := q
	for _, sym := range w.Symbols() {
		idx := h.alphabet.Index(sym)
		st := h.arena.get(cur)
		tid := st.out[idx]
		if tid == invalidTransition {
			usagePanic("state %d has no transition on %q", cur, rune(sym))
		}
		t := h.arena.transition(tid)
		target, ok := t.resolvedTarget(h.tree)
		if !ok {
			usagePanic("run() reached an unresolved transition %d; hypothesis is not closed", tid)
		}
		cur = target
	}
	return cur
}

// runFrom is run(h.start, w).
func (h *Hypothesis) runFrom(w Word) StateID {
	return h.run(h.start, w)
}

// evaluate reports whether w is accepted by the hypothesis.
func (h *Hypothesis) evaluate(w Word) bool {
	return h.IsFinal(h.runFrom(w))
}

// Alphabet implements HypothesisView.
func (h *Hypothesis) Alphabet() *Alphabet { return h.alphabet }

// States implements HypothesisView.
func (h *Hypothesis) States() []StateID {
	out := make([]StateID, len(h.arena.states))
	for i, s := range h.arena.states {
		out[i] = s.id
	}
	return out
}

// Start implements HypothesisView.
func (h *Hypothesis) Start() StateID { return h.start }

// IsFinal implements HypothesisView.
func (h *Hypothesis) IsFinal(q StateID) bool {
	return h.tree.isAccepting(h.arena.get(q).node)
}

// Step implements HypothesisView.
func (h *Hypothesis) Step(q StateID, a Symbol) StateID {
	return h.run(q, NewWord(a))
}

// Evaluate implements HypothesisView.
func (h *Hypothesis) Evaluate(w Word) bool { return h.evaluate(w) }

// Size returns the number of states in the hypothesis.
func (h *Hypothesis) Size() int { return len(h.arena.states) }
