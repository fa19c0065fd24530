package ttt

// StateID is a stable handle into a Hypothesis's state arena. It never
// changes across a state's lifetime, including when the state's transitions
// are rewritten during counterexample processing.
type StateID int

const invalidState StateID = -1

// TransitionID is a stable handle into a Hypothesis's transition arena. A
// transition's identity survives both "opening" (when its target is
// invalidated by a split) and "closing" (when it is re-sifted to a new
// target): only the target fields mutate.
type TransitionID int

const invalidTransition TransitionID = -1

// State is one state of the hypothesis automaton. accessSequence is the
// word used to reach it from the start state (the first word that ever
// caused this state to be created); node is this state's leaf in the
// discrimination tree.
type State struct {
	id             StateID
	accessSequence Word
	node           NodeID
	// out holds the outgoing transition for each symbol, indexed by the
	// owning Alphabet's canonical Index(sym). A transition exists for
	// every symbol once the hypothesis has been fully constructed for
	// that state (invariant: total transition function).
	out []TransitionID
}

// Transition is one outgoing edge of a hypothesis state. A tree transition
// points directly at its target state; a non-tree transition instead
// points at a node in the discrimination tree, and once that node is a
// leaf holding a materialized state it is resolved but stays non-tree
// unless it is the first edge to reach that state (spec.md §4).
type Transition struct {
	id     TransitionID
	source StateID
	symbol Symbol

	// isTree is true once this transition has been promoted to the unique
	// spanning-tree edge of its target state (spec.md §4.2). It is cleared
	// again only by Hypothesis.reopenAt.
	isTree bool

	// target is the state this transition leads to once it is a tree
	// transition; invalidState otherwise.
	target StateID

	// targetNode is the discrimination-tree node this transition's
	// destination currently resolves to. For a non-tree transition this
	// is the node last reached by sifting; for a tree transition it is
	// redundant with target's node but kept for signature lookups.
	targetNode NodeID
}

// resolved reports whether t currently points at a leaf that already holds
// a materialized state, whether or not t has been promoted to a tree
// transition (spec.md §9, open question 2: "resolved" is weaker than
// "tree").
func (t *Transition) resolved(tree *DiscriminationTree) bool {
	if t.isTree {
		return true
	}
	n := tree.node(t.targetNode)
	if !n.IsLeaf() {
		return false
	}
	_, ok := n.State()
	return ok
}

// resolvedTarget returns the state t currently points at and whether it is
// resolved at all. A tree transition's target is t.target directly; a
// non-tree transition resolves via whatever leaf its targetNode currently
// is, once that leaf holds a materialized state. Only the first transition
// to reach a given state is ever promoted to tree (spec.md §4.3) — every
// other transition that resolves to that same state stays non-tree
// permanently, so callers that need "does this edge lead somewhere
// concrete" (run, to_dfa, finalization) must go through this rather than
// testing isTree alone.
func (t *Transition) resolvedTarget(tree *DiscriminationTree) (StateID, bool) {
	if t.isTree {
		return t.target, true
	}
	n := tree.node(t.targetNode)
	if !n.IsLeaf() {
		return invalidState, false
	}
	return n.State()
}

// stateArena owns the hypothesis's states and transitions, indexed by their
// stable IDs. Kept as its own type (rather than inlined into Hypothesis) so
// tree.go's splitLeaf can relocate a state's node field without importing
// the whole Hypothesis.
type stateArena struct {
	states      []*State
	transitions []*Transition
}

func newStateArena() *stateArena {
	return &stateArena{}
}

func (a *stateArena) get(id StateID) *State {
	return a.states[id]
}

func (a *stateArena) transition(id TransitionID) *Transition {
	return a.transitions[id]
}

func (a *stateArena) allStates() []*State {
	return a.states
}

func (a *stateArena) addState(accessSequence Word, node NodeID, alphabetSize int) StateID {
	id := StateID(len(a.states))
	out := make([]TransitionID, alphabetSize)
	for i := range out {
		out[i] = invalidTransition
	}
	a.states = append(a.states, &State{
		id:             id,
		accessSequence: accessSequence,
		node:           node,
		out:            out,
	})
	return id
}

func (a *stateArena) addTransition(source StateID, symbol Symbol, symbolIndex int, targetNode NodeID) TransitionID {
	id := TransitionID(len(a.transitions))
	a.transitions = append(a.transitions, &Transition{
		id:         id,
		source:     source,
		symbol:     symbol,
		isTree:     false,
		target:     invalidState,
		targetNode: targetNode,
	})
	a.states[source].out[symbolIndex] = id
	return id
}
