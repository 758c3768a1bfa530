// Package tree folds a flat, parent-linked node list into an ordered tree.
// Categories and navigation items both store hierarchy as a nullable
// parent_id column; the tree shape is derived in memory after a single
// flat query instead of being maintained in the database.
package tree

import (
	"sort"

	"github.com/google/uuid"
)

// Node is the minimal surface a hierarchical entity must expose.
type Node interface {
	TreeID() uuid.UUID
	TreeParentID() *uuid.UUID
	TreeLabel() string
	TreeOrder() int
}

// TreeNode wraps an item together with its ordered children.
type TreeNode[T Node] struct {
	Item     T
	Children []*TreeNode[T]
}

// Build assembles the ordered root list from a flat node set.
//
// The caller is expected to have filtered the input to the desired
// visibility set (typically active-only) and to guarantee unique ids.
// A node whose parent id is not present in the input is unreachable and
// is dropped from the result, not promoted to a root. This is the
// intended behaviour for active children of an inactive parent.
//
// Cycles are not detected here: a self-parented or mutually-cyclic group
// never appears under any root and simply vanishes from the output.
// Write-side validation is responsible for keeping cycles out of storage.
//
// Roots and every children list are ordered by (display order, label).
func Build[T Node](nodes []T) []*TreeNode[T] {
	wrappers := make(map[uuid.UUID]*TreeNode[T], len(nodes))
	for _, n := range nodes {
		wrappers[n.TreeID()] = &TreeNode[T]{Item: n}
	}

	roots := make([]*TreeNode[T], 0)
	for _, n := range nodes {
		w := wrappers[n.TreeID()]
		pid := n.TreeParentID()
		if pid == nil {
			roots = append(roots, w)
			continue
		}
		if parent, ok := wrappers[*pid]; ok {
			parent.Children = append(parent.Children, w)
		}
	}

	sortSiblings(roots)
	for _, w := range wrappers {
		sortSiblings(w.Children)
	}

	return roots
}

func sortSiblings[T Node](siblings []*TreeNode[T]) {
	sort.SliceStable(siblings, func(i, j int) bool {
		a, b := siblings[i].Item, siblings[j].Item
		if a.TreeOrder() != b.TreeOrder() {
			return a.TreeOrder() < b.TreeOrder()
		}
		return a.TreeLabel() < b.TreeLabel()
	})
}
