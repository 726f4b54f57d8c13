// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// balance - refresh the height of a node and rotate if its sub-trees
// differ in height by two
//
// returns the node now occupying the same position, which is
// different from p if a rotation occurred
func (tree *Tree) balance(p index) index {
	tree.updateHeight(p)

	switch tree.balanceFactor(p) {
	case +2: // left branch too high
		if tree.balanceFactor(tree.nodes[p].left) < 0 {
			// double LR rotation
			tree.nodes[p].left = tree.rotateLeft(tree.nodes[p].left)
		}
		return tree.rotateRight(p)

	case -2: // right branch too high
		if tree.balanceFactor(tree.nodes[p].right) > 0 {
			// double RL rotation
			tree.nodes[p].right = tree.rotateRight(tree.nodes[p].right)
		}
		return tree.rotateLeft(p)
	}
	return p
}

// propagateBalance - rebalance every node from p up to the root
//
// must start at the lowest node whose sub-tree changed so each
// child's height is final before its parent is examined
func (tree *Tree) propagateBalance(p index) {
	for {
		p = tree.balance(p)
		up := tree.nodes[p].up
		if null == up {
			tree.root = p
			return
		}
		p = up
	}
}
