package tree

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNode struct {
	id     uuid.UUID
	parent *uuid.UUID
	label  string
	order  int
}

func (f fakeNode) TreeID() uuid.UUID { return f.id }
func (f fakeNode) TreeParentID() *uuid.UUID { return f.parent }
func (f fakeNode) TreeLabel() string { return f.label }
func (f fakeNode) TreeOrder() int { return f.order }

func node(label string, order int, parent *uuid.UUID) fakeNode {
	return fakeNode{id: uuid.New(), parent: parent, label: label, order: order}
}

func labels[T Node](nodes []*TreeNode[T]) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Item.TreeLabel()
	}
	return out
}

func TestBuildEmptyInput(t *testing.T) {
	assert.Empty(t, Build([]fakeNode{}))
}

func TestBuildThreeLevelChain(t *testing.T) {
	a := node("A", 0, nil)
	b := node("B", 0, &a.id)
	c := node("C", 0, &b.id)

	roots := Build([]fakeNode{a, b, c})

	require.Len(t, roots, 1)
	assert.Equal(t, "A", roots[0].Item.TreeLabel())
	require.Len(t, roots[0].Children, 1)
	assert.Equal(t, "B", roots[0].Children[0].Item.TreeLabel())
	require.Len(t, roots[0].Children[0].Children, 1)
	assert.Equal(t, "C", roots[0].Children[0].Children[0].Item.TreeLabel())
}

func TestBuildRootOrdering(t *testing.T) {
	a := node("A", 2, nil)
	b := node("B", 1, nil)

	roots := Build([]fakeNode{a, b})

	assert.Equal(t, []string{"B", "A"}, labels(roots))
}

func TestBuildSiblingsOrderedByOrderThenLabel(t *testing.T) {
	root := node("Root", 0, nil)
	// Same display order → alphabetical by label.
	z := node("Zebra", 1, &root.id)
	m := node("Mango", 1, &root.id)
	// Lower display order comes first regardless of label.
	x := node("Xylophone", 0, &root.id)

	roots := Build([]fakeNode{root, z, m, x})

	require.Len(t, roots, 1)
	assert.Equal(t, []string{"Xylophone", "Mango", "Zebra"}, labels(roots[0].Children))
}

// A node pointing at a parent outside the input set (deleted or filtered
// out as inactive) must disappear from the tree, not become a root.
func TestBuildOrphanIsDropped(t *testing.T) {
	a := node("A", 0, nil)
	missing := uuid.New()
	orphan := node("Orphan", 0, &missing)
	// A child of the orphan is dropped with it.
	grand := node("Grand", 0, &orphan.id)

	roots := Build([]fakeNode{a, orphan, grand})

	require.Len(t, roots, 1)
	assert.Equal(t, "A", roots[0].Item.TreeLabel())
	assert.Empty(t, roots[0].Children)
}

// Cycle members are unreachable from any root and vanish silently; the
// builder itself must not loop or panic.
func TestBuildSelfParentedNodeVanishes(t *testing.T) {
	a := node("A", 0, nil)
	self := fakeNode{id: uuid.New(), label: "Self", order: 0}
	self.parent = &self.id

	roots := Build([]fakeNode{a, self})

	require.Len(t, roots, 1)
	assert.Equal(t, "A", roots[0].Item.TreeLabel())
}

func TestBuildTwoNodeCycleVanishes(t *testing.T) {
	a := node("A", 0, nil)
	x := fakeNode{id: uuid.New(), label: "X", order: 0}
	y := fakeNode{id: uuid.New(), label: "Y", order: 0}
	x.parent = &y.id
	y.parent = &x.id

	roots := Build([]fakeNode{a, x, y})

	require.Len(t, roots, 1)
	assert.Equal(t, "A", roots[0].Item.TreeLabel())
}
