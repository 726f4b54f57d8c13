// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// initial arena capacity, grows as needed
const initialCapacity = 64

// Tree - type to hold the node arena and the root of a tree
type Tree struct {
	nodes     []node // arena, slot zero is the absent node
	root      index  // top of the tree
	count     int    // live nodes
	pool      index  // linked list of reclaimed slots
	freeNodes int    // number of slots in the pool
	rotations uint64 // total single rotations performed
}

// New - create an initially empty tree
func New() *Tree {
	nodes := make([]node, 1, initialCapacity)
	return &Tree{
		nodes: nodes,
		root:  null,
		count: 0,
		pool:  null,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return null == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Height - height of the whole tree, zero when empty
func (tree *Tree) Height() int {
	return tree.height(tree.root)
}

// Rotations - number of single rotations performed since the tree
// was created, a double rotation counts as two
func (tree *Tree) Rotations() uint64 {
	return tree.rotations
}

// Root - return the root node of the tree
func (tree *Tree) Root() Node {
	return tree.handle(tree.root)
}
