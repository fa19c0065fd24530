package ttt

// closeOpenTransitions drains h.openTransitions until empty, advancing each
// one in turn: re-sift its current target node further down the tree, and
// either materialize a brand-new state (if sifting bottoms out at an
// empty leaf) or resolve against a leaf that already holds a state. In the
// latter case the transition is promoted to tree only if it is the first
// edge ever to reach that state (spec.md §4.3); any later edge to an
// already-parented state stays non-tree permanently. Processing one
// transition can append new open transitions (via addState), so this is a
// work queue, not a single pass (spec.md §4.1).
func closeOpenTransitions(h *Hypothesis, teacher Teacher) {
	for h.hasOpenTransitions() {
		// Deterministic FIFO order: always take the oldest (first
		// inserted) open transition.
		pair := h.openTransitions.Oldest()
		tid := pair.Key
		t := h.arena.transition(tid)

		src := h.arena.get(t.source)
		w := src.accessSequence.Append(t.symbol)

		leaf := h.tree.sift(t.targetNode, w, teacher)
		h.retarget(tid, leaf)

		if state, ok := h.tree.node(leaf).State(); ok {
			if h.hasTreeParent(state) {
				h.resolveNonTree(tid)
			} else {
				h.promoteToTree(tid, state)
			}
			continue
		}

		newState := h.addState(w, leaf)
		h.promoteToTree(tid, newState)
	}
}
