// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"math"

	"github.com/bitmark-inc/avltree/fault"
)

// index of a node in the tree's arena
type index uint32

// the absent node, arena slot zero is never allocated
const null index = 0

// a node in the tree
type node struct {
	left   index // left sub-tree
	right  index // right sub-tree
	up     index // parent node, or next free slot while in the pool
	key    int   // ordering key
	height int   // height of this sub-tree, a leaf is 1
}

// allocate a new leaf node, reuses reclaimed slots if any are available
func (tree *Tree) newNode(key int) index {
	if null == tree.pool {
		if 0 != tree.freeNodes {
			fault.Panicf("pool corrupt: %d free nodes with empty pool", tree.freeNodes)
		}
		if uint64(len(tree.nodes)) > math.MaxUint32 {
			fault.PanicWithError("allocate node", fault.ErrArenaExhausted)
		}
		tree.nodes = append(tree.nodes, node{
			key:    key,
			height: 1,
		})
		return index(len(tree.nodes) - 1)
	}
	i := tree.pool
	p := &tree.nodes[i]
	tree.pool = p.up
	*p = node{
		key:    key,
		height: 1,
	} // ensure freelist pointer is cleared
	tree.freeNodes -= 1
	return i
}

// reclaim a node and keep it in the pool
func (tree *Tree) freeNode(i index) {
	tree.nodes[i] = node{
		up: tree.pool, // use as free list pointer
	}
	tree.pool = i
	tree.freeNodes += 1
}
