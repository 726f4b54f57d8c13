// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest key value
func (tree *Tree) First() Node {
	return tree.handle(tree.first(tree.root))
}

// internal: lowest node in a sub-tree
func (tree *Tree) first(p index) index {
	if null == p {
		return null
	}
	for null != tree.nodes[p].left {
		p = tree.nodes[p].left
	}
	return p
}

// Last - return the node with the highest key value
func (tree *Tree) Last() Node {
	return tree.handle(tree.last(tree.root))
}

// internal: highest node in a sub-tree
func (tree *Tree) last(p index) index {
	if null == p {
		return null
	}
	for null != tree.nodes[p].right {
		p = tree.nodes[p].right
	}
	return p
}

// Next - given a node, return the node with the next highest key
// value or the absent node if no more nodes.
//
// uses the links rather than key comparison so that runs of equal
// keys are visited once each
func (p Node) Next() Node {
	tree := p.tree
	i := p.i
	if r := tree.nodes[i].right; null != r {
		return tree.handle(tree.first(r))
	}
	for {
		up := tree.nodes[i].up
		if null == up {
			return Node{}
		}
		if tree.nodes[up].left == i {
			return tree.handle(up)
		}
		i = up
	}
}

// Prev - given a node, return the node with the next lowest key
// value or the absent node if no more nodes
func (p Node) Prev() Node {
	tree := p.tree
	i := p.i
	if l := tree.nodes[i].left; null != l {
		return tree.handle(tree.last(l))
	}
	for {
		up := tree.nodes[i].up
		if null == up {
			return Node{}
		}
		if tree.nodes[up].right == i {
			return tree.handle(up)
		}
		i = up
	}
}

// Keys - all keys in ascending order
func (tree *Tree) Keys() []int {
	keys := make([]int, 0, tree.count)
	for p := tree.First(); !p.IsNil(); p = p.Next() {
		keys = append(keys, p.Key())
	}
	return keys
}
