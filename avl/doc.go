// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree of integer keys with the
// addition of parent links to allow upward rebalancing and iteration
// through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node caches the height of its sub-tree; after an insert or
// delete the heights are recomputed from the lowest changed node up
// to the root, rotating wherever the two sub-tree heights differ by
// two.
//
// Nodes are kept in an arena owned by the tree and linked by index,
// index zero being the absent node.  Deleted slots are kept on a free
// list and reused by later inserts.
//
// Duplicate keys are allowed and are always placed to the right of
// an existing equal key, so the in-order sequence of keys is
// non-decreasing.
package avl
