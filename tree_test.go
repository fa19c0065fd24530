package ttt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDiscriminationTreeRootSplitsOnEpsilon(t *testing.T) {
	tree := newDiscriminationTree()
	root := tree.node(tree.Root())
	require.False(t, root.IsLeaf())
	assert.Equal(t, Word(""), root.Discriminator())
}

func TestSiftDescendsByMembership(t *testing.T) {
	alphabet := NewAlphabet('a', 'b')
	teacher := newPredicateTeacher(alphabet, 4, func(w Word) bool { return w == "ab" })
	tree := newDiscriminationTree()

	leaf := tree.sift(tree.Root(), "ab", teacher)
	assert.True(t, tree.isAccepting(leaf))

	leaf2 := tree.sift(tree.Root(), "ba", teacher)
	assert.False(t, tree.isAccepting(leaf2))
}

func TestSplitLeafPlacesOldStateByMembership(t *testing.T) {
	alphabet := NewAlphabet('a', 'b')
	teacher := newPredicateTeacher(alphabet, 4, func(w Word) bool { return w == "a" })
	tree := newDiscriminationTree()
	arena := newStateArena()

	leaf := tree.sift(tree.Root(), "a", teacher)
	state := arena.addState("a", leaf, alphabet.Size())
	tree.node(leaf).leaf.state = state

	oldChild, newChild := tree.splitLeaf(leaf, "b", arena, teacher)
	require.NotEqual(t, invalidNode, oldChild)
	require.NotEqual(t, invalidNode, newChild)

	gotState, ok := tree.node(oldChild).State()
	require.True(t, ok)
	assert.Equal(t, state, gotState)
	assert.Equal(t, oldChild, arena.get(state).node)

	_, ok = tree.node(newChild).State()
	assert.False(t, ok)
}

func TestLCAFindsCommonAncestor(t *testing.T) {
	alphabet := NewAlphabet('a', 'b')
	teacher := newPredicateTeacher(alphabet, 4, func(w Word) bool { return w == "a" })
	tree := newDiscriminationTree()
	arena := newStateArena()

	leaf := tree.sift(tree.Root(), "a", teacher)
	state := arena.addState("a", leaf, alphabet.Size())
	tree.node(leaf).leaf.state = state

	_, newChild := tree.splitLeaf(leaf, "ba", arena, teacher)

	lca := tree.lca(leaf, newChild)
	assert.Equal(t, leaf, lca, "a node is its own LCA with a descendant")
}

func TestTemporaryBlockApexesFindsOnlyBoundaryNodes(t *testing.T) {
	alphabet := NewAlphabet('a', 'b')
	teacher := newPredicateTeacher(alphabet, 4, func(w Word) bool { return w == "a" })
	tree := newDiscriminationTree()
	arena := newStateArena()

	leaf := tree.sift(tree.Root(), "a", teacher)
	state := arena.addState("a", leaf, alphabet.Size())
	tree.node(leaf).leaf.state = state

	apexes := tree.temporaryBlockApexes()
	assert.Empty(t, apexes, "a freshly built tree has no temporary nodes")

	_, newChild := tree.splitLeaf(leaf, "b", arena, teacher)
	_ = newChild
	apexes = tree.temporaryBlockApexes()
	require.Len(t, apexes, 1)
	assert.Equal(t, leaf, apexes[0])
}
