// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// rotateLeft - pivot on the right child of a
//
//       a                b
//      / \              / \
//     x   b     →      a   z
//        / \          / \
//       c   z        x   c
//
// returns b, the new root of the sub-tree
func (tree *Tree) rotateLeft(a index) index {
	n := tree.nodes
	b := n[a].right
	c := n[b].left
	up := n[a].up

	n[a].right = c
	n[b].left = a

	n[a].up = b
	n[b].up = up
	if null != c {
		n[c].up = a
	}
	tree.replaceChild(up, a, b)

	// a is now below b
	tree.updateHeight(a)
	tree.updateHeight(b)

	tree.rotations += 1
	return b
}

// rotateRight - pivot on the left child of a
//
//         a            b
//        / \          / \
//       b   z   →    x   a
//      / \              / \
//     x   c            c   z
//
// returns b, the new root of the sub-tree
func (tree *Tree) rotateRight(a index) index {
	n := tree.nodes
	b := n[a].left
	c := n[b].right
	up := n[a].up

	n[a].left = c
	n[b].right = a

	n[a].up = b
	n[b].up = up
	if null != c {
		n[c].up = a
	}
	tree.replaceChild(up, a, b)

	tree.updateHeight(a)
	tree.updateHeight(b)

	tree.rotations += 1
	return b
}
