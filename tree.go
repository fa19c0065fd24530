package ttt

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// DiscriminationTree stores all state-distinguishing information learned so
// far: a binary tree of discriminators whose leaves correspond to
// hypothesis states. Nodes are allocated in an arena and referenced by
// NodeID; the arena layout lets the whole tree be cloned trivially for
// snapshotting (spec.md §9).
type DiscriminationTree struct {
	nodes []*Node
	root  NodeID
}

// newDiscriminationTree builds a tree whose root is the mandatory
// discriminator "" (spec.md invariant 6): its right subtree holds
// accepting states, its left subtree non-accepting ones. Both children
// start as empty leaves.
func newDiscriminationTree() *DiscriminationTree {
	t := &DiscriminationTree{}
	rootID := t.alloc()
	leftID := t.alloc()
	rightID := t.alloc()

	root := t.nodes[rootID]
	root.inner = &innerData{discriminator: "", isTemporary: false}
	root.inner.setChild(left, leftID)
	root.inner.setChild(right, rightID)

	leftNode := t.nodes[leftID]
	leftNode.parent, leftNode.parentBranch = rootID, left
	leftNode.leaf = &leafData{state: invalidState}

	rightNode := t.nodes[rightID]
	rightNode.parent, rightNode.parentBranch = rootID, right
	rightNode.leaf = &leafData{state: invalidState}

	t.root = rootID
	return t
}

func (t *DiscriminationTree) alloc() NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, &Node{
		id:              id,
		parent:          invalidNode,
		incomingNonTree: orderedmap.New[TransitionID, struct{}](),
	})
	return id
}

func (t *DiscriminationTree) node(id NodeID) *Node {
	return t.nodes[id]
}

// Root returns the tree's root node.
func (t *DiscriminationTree) Root() NodeID { return t.root }

// sift descends from start, querying the teacher at every inner node, and
// returns the leaf reached. start need not be the root: re-sifting an
// already-partially-advanced non-tree transition's target node only needs
// to descend from wherever it currently points (a "soft sift" in spec.md
// §4.1 terms is simply sift called with a non-root start).
func (t *DiscriminationTree) sift(start NodeID, w Word, teacher Teacher) NodeID {
	cur := start
	for {
		n := t.node(cur)
		if n.IsLeaf() {
			return cur
		}
		b := branch(teacher.IsMember(w.Concat(n.inner.discriminator)))
		cur = n.inner.child(b)
	}
}

// signature returns the (discriminator, outcome) pairs labeling the path
// from leaf up to the root, closest pair first.
func (t *DiscriminationTree) signature(leaf NodeID) []sigEntry {
	var sig []sigEntry
	cur := t.node(leaf)
	for cur.parent != invalidNode {
		parent := t.node(cur.parent)
		sig = append(sig, sigEntry{discriminator: parent.inner.discriminator, outcome: cur.parentBranch})
		cur = parent
	}
	return sig
}

// splitLeaf turns leaf (which must currently be a leaf) into a temporary
// inner node labeled d, with two fresh empty-leaf children. If leaf already
// has an associated state, that state is re-placed into whichever child
// matches teacher.IsMember(state.accessSequence ++ d); the other child is
// left state-less, ready to be materialized by the next closure pass.
// leaf's NodeID is unchanged — it is now the inner node.
// Returns (oldChild, newChild): oldChild is whichever fresh leaf now holds
// the state leaf previously held, and newChild is the other one. If leaf
// had no state yet, both are returned as invalidNode.
func (t *DiscriminationTree) splitLeaf(leaf NodeID, d Word, states *stateArena, teacher Teacher) (oldChild, newChild NodeID) {
	n := t.node(leaf)
	if !n.IsLeaf() {
		usagePanic("node %d is not a leaf; cannot split", leaf)
	}
	oldState := n.leaf.state
	oldIncoming := n.incomingNonTree

	leftID := t.alloc()
	rightID := t.alloc()
	t.node(leftID).parent, t.node(leftID).parentBranch = leaf, left
	t.node(leftID).leaf = &leafData{state: invalidState}
	t.node(rightID).parent, t.node(rightID).parentBranch = leaf, right
	t.node(rightID).leaf = &leafData{state: invalidState}

	n.leaf = nil
	n.inner = &innerData{discriminator: d, isTemporary: true}
	n.inner.setChild(left, leftID)
	n.inner.setChild(right, rightID)
	// The inner node keeps its own incomingNonTree (transitions that used
	// to target this leaf now need re-sifting one level further, past d);
	// give the fresh children their own empty sets.
	n.incomingNonTree = oldIncoming

	if oldState == invalidState {
		return invalidNode, invalidNode
	}

	st := states.get(oldState)
	b := branch(teacher.IsMember(st.accessSequence.Concat(d)))
	oldChild, newChild = leftID, rightID
	if b == right {
		oldChild, newChild = rightID, leftID
	}
	t.node(oldChild).leaf.state = oldState
	st.node = oldChild
	return oldChild, newChild
}

// lca returns the lowest common ancestor of the given nodes. All must
// belong to this tree. Generalizes dragomit-hsm's two-path LCA walk
// (used there to find the common ancestor of a transition's source and
// destination states) from two nodes to N.
func (t *DiscriminationTree) lca(ids ...NodeID) NodeID {
	if len(ids) == 0 {
		usagePanic("lca of zero nodes")
	}
	acc := ids[0]
	for _, id := range ids[1:] {
		acc = t.lca2(acc, id)
	}
	return acc
}

func (t *DiscriminationTree) lca2(a, b NodeID) NodeID {
	depth := func(id NodeID) int {
		d := 0
		for cur := t.node(id); cur.parent != invalidNode; cur = t.node(cur.parent) {
			d++
		}
		return d
	}
	da, db := depth(a), depth(b)
	for da > db {
		a = t.node(a).parent
		da--
	}
	for db > da {
		b = t.node(b).parent
		db--
	}
	for a != b {
		a = t.node(a).parent
		b = t.node(b).parent
	}
	return a
}

// isAccepting walks from leaf up to the root's immediate child and reports
// whether that child lies on the right (accepting) branch. The root's
// discriminator is always ε (invariant 6): its right subtree holds every
// accepting state, its left subtree every rejecting one.
func (t *DiscriminationTree) isAccepting(leaf NodeID) bool {
	cur := leaf
	for t.node(cur).parent != t.root {
		cur = t.node(cur).parent
	}
	return t.node(cur).parentBranch == right
}

// replaceWithFinal installs a new discriminator on an already-temporary
// inner node and clears its temporary flag. The node's children and
// incoming-transition set are left untouched: finalize.go only ever calls
// this with a discriminator it has checked (see DESIGN.md §Open Question 4)
// to induce the exact same left/right split the node's existing children
// already reflect, or with the node's original discriminator.
func (t *DiscriminationTree) replaceWithFinal(apex NodeID, discriminator Word) {
	n := t.node(apex)
	if n.inner == nil {
		usagePanic("node %d is not an inner node", apex)
	}
	n.inner.discriminator = discriminator
	n.inner.isTemporary = false
}

// temporaryBlockApexes returns the NodeIDs of every temporary inner node
// whose parent is not itself a temporary inner node (i.e. every block's
// apex, per spec.md §4.1's "maximal connected subtree of temporary inner
// nodes hanging off a finalized boundary").
func (t *DiscriminationTree) temporaryBlockApexes() []NodeID {
	var apexes []NodeID
	for _, n := range t.nodes {
		if n.inner == nil || !n.inner.isTemporary {
			continue
		}
		if n.parent == invalidNode {
			apexes = append(apexes, n.id)
			continue
		}
		parent := t.node(n.parent)
		if parent.inner == nil || !parent.inner.isTemporary {
			apexes = append(apexes, n.id)
		}
	}
	return apexes
}
