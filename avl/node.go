// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - a reference to one node of a tree
//
// only valid until the next Insert or Remove on that tree since
// rotations and deletions move nodes and reuse their slots
type Node struct {
	tree *Tree
	i    index
}

// wrap an index, the absent node gives the zero Node
func (tree *Tree) handle(i index) Node {
	if null == i {
		return Node{}
	}
	return Node{tree: tree, i: i}
}

// IsNil - true for the absent node
func (p Node) IsNil() bool {
	return nil == p.tree || null == p.i
}

// Key - read the key from a node item
func (p Node) Key() int {
	return p.tree.nodes[p.i].key
}

// Height - height of the sub-tree rooted at this node
func (p Node) Height() int {
	if p.IsNil() {
		return 0
	}
	return p.tree.nodes[p.i].height
}

// Left - left child or the absent node
func (p Node) Left() Node {
	return p.tree.handle(p.tree.nodes[p.i].left)
}

// Right - right child or the absent node
func (p Node) Right() Node {
	return p.tree.handle(p.tree.nodes[p.i].right)
}

// Parent - return parent node of a node
func (p Node) Parent() Node {
	return p.tree.handle(p.tree.nodes[p.i].up)
}

// Depth - get the depth of a node, the root is zero
func (p Node) Depth() uint {
	count := uint(0)
	for up := p.tree.nodes[p.i].up; null != up; up = p.tree.nodes[up].up {
		count += 1
	}
	return count
}

// height of a sub-tree, zero if absent
func (tree *Tree) height(i index) int {
	if null == i {
		return 0
	}
	return tree.nodes[i].height
}

// left height minus right height, zero if absent
func (tree *Tree) balanceFactor(i index) int {
	if null == i {
		return 0
	}
	n := &tree.nodes[i]
	return tree.height(n.left) - tree.height(n.right)
}

// recompute cached height, both children must already be current
func (tree *Tree) updateHeight(i index) {
	n := &tree.nodes[i]
	hl := tree.height(n.left)
	hr := tree.height(n.right)
	if hl > hr {
		n.height = hl + 1
	} else {
		n.height = hr + 1
	}
}

// point the link that referred to old at replacement instead; an
// absent parent means old was the root
func (tree *Tree) replaceChild(up index, old index, replacement index) {
	switch {
	case null == up:
		tree.root = replacement
	case old == tree.nodes[up].left:
		tree.nodes[up].left = replacement
	default:
		tree.nodes[up].right = replacement
	}
}
