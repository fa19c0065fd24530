package ttt

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// NodeID is a stable handle into a DiscriminationTree's node arena. A
// node's NodeID never changes across its lifetime, even when a leaf is
// split into an inner node — transitions and states that reference a
// NodeID keep working across that transformation because the mutable
// variant lives behind the handle, not in it.
type NodeID int

const invalidNode NodeID = -1

// branch is which side of an inner node's discriminator a word took:
// false for a non-membership ("left"), true for membership ("right").
type branch bool

const (
	left  branch = false
	right branch = true
)

// sigEntry is one (discriminator, branch) pair in a leaf's signature.
type sigEntry struct {
	discriminator Word
	outcome       branch
}

// leafData is the variant of a Node that has not (yet) been split. A leaf
// may or may not have a materialized state; Leaf.state is invalidState
// until the leaf is closed onto a concrete state.
type leafData struct {
	state StateID
}

// innerData is the variant of a Node that carries a discriminator and two
// children. isTemporary is cleared by discriminator finalization.
type innerData struct {
	discriminator Word
	children      [2]NodeID // indexed by branch: children[left], children[right]
	isTemporary   bool
}

func (n *innerData) child(b branch) NodeID {
	if b == right {
		return n.children[1]
	}
	return n.children[0]
}

func (n *innerData) setChild(b branch, id NodeID) {
	if b == right {
		n.children[1] = id
	} else {
		n.children[0] = id
	}
}

// Node is a discrimination-tree node: either a leaf or an inner
// discriminator node, tagged by which of leaf/inner is non-nil.
type Node struct {
	id              NodeID
	parent          NodeID
	parentBranch    branch // which branch of parent leads here (meaningless if parent is invalid)
	leaf            *leafData
	inner           *innerData
	incomingNonTree *orderedmap.OrderedMap[TransitionID, struct{}]
}

// IsLeaf reports whether n is currently a leaf.
func (n *Node) IsLeaf() bool { return n.leaf != nil }

// State returns the leaf's associated state, or (invalidState, false) if
// none is materialized yet. Panics if n is not a leaf.
func (n *Node) State() (StateID, bool) {
	if n.leaf == nil {
		usagePanic("node %d is not a leaf", n.id)
	}
	if n.leaf.state == invalidState {
		return invalidState, false
	}
	return n.leaf.state, true
}

// Discriminator returns an inner node's discriminator. Panics if n is a leaf.
func (n *Node) Discriminator() Word {
	if n.inner == nil {
		usagePanic("node %d is not an inner node", n.id)
	}
	return n.inner.discriminator
}

func (n *Node) addIncoming(t TransitionID) {
	n.incomingNonTree.Set(t, struct{}{})
}

func (n *Node) removeIncoming(t TransitionID) {
	n.incomingNonTree.Delete(t)
}
