// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree
//
// an equal key is never replaced, the new node is placed to its right
func (tree *Tree) Insert(key int) {

	// find the leaf position, equal keys go right
	up := null
	for p := tree.root; null != p; {
		up = p
		if key < tree.nodes[p].key {
			p = tree.nodes[p].left
		} else {
			p = tree.nodes[p].right
		}
	}

	// may grow the arena so no node pointers are held across this
	p := tree.newNode(key)
	tree.count += 1

	if null == up {
		tree.root = p
		return
	}

	tree.nodes[p].up = up
	if key < tree.nodes[up].key {
		tree.nodes[up].left = p
	} else {
		tree.nodes[up].right = p
	}
	tree.propagateBalance(up)
}
