// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a specific item
//
// with duplicate keys the first match on the path from the root is
// returned
func (tree *Tree) Search(key int) (Node, bool) {
	p := tree.search(key)
	if null == p {
		return Node{}, false
	}
	return tree.handle(p), true
}

// Contains - true if at least one node has the key
func (tree *Tree) Contains(key int) bool {
	return null != tree.search(key)
}

func (tree *Tree) search(key int) index {
	p := tree.root
	for null != p {
		n := &tree.nodes[p]
		if n.key == key {
			return p
		}
		if key < n.key {
			p = n.left
		} else {
			p = n.right
		}
	}
	return null
}
