// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - removes a specific item from the tree
//
// returns false if the key was not present, in which case the tree
// is unchanged
func (tree *Tree) Remove(key int) bool {
	q := tree.search(key)
	if null == q {
		return false
	}

	n := tree.nodes
	up := n[q].up
	left := n[q].left
	right := n[q].right

	next := null  // replaces q in its parent
	start := null // lowest node whose sub-tree changed shape

	switch {
	case null == left:
		next = right
		start = up

	case null == right:
		next = left
		start = up

	default:
		// in-order successor: leftmost node of the right sub-tree
		next = right
		for null != n[next].left {
			next = n[next].left
		}

		if next != right {
			// unhook successor, its right sub-tree takes its place
			start = n[next].up
			r := n[next].right
			n[start].left = r
			if null != r {
				n[r].up = start
			}

			n[next].right = right
			n[right].up = next
		} else {
			// successor keeps its right sub-tree and gains a left one
			start = next
		}

		n[next].left = left
		n[left].up = next
	}

	tree.replaceChild(up, q, next)
	if null != next {
		n[next].up = up
	}

	tree.freeNode(q)
	tree.count -= 1

	// start is only absent when q was the root with at most one
	// child, that child is already balanced
	if null != start {
		tree.propagateBalance(start)
	}
	return true
}
