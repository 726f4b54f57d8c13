// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package baseline

import (
	"github.com/google/btree"
)

// nodes of this degree fit a few cache lines of ints
const btreeDegree = 32

type btreeStructure struct {
	tree *btree.BTreeG[int]
}

func newBTree() Structure {
	return &btreeStructure{tree: btree.NewOrderedG[int](btreeDegree)}
}

func (s *btreeStructure) Name() string   { return BTree }
func (s *btreeStructure) Insert(key int) { s.tree.ReplaceOrInsert(key) }

func (s *btreeStructure) Search(key int) bool {
	return s.tree.Has(key)
}

func (s *btreeStructure) Remove(key int) bool {
	_, removed := s.tree.Delete(key)
	return removed
}

func (s *btreeStructure) Count() int { return s.tree.Len() }
