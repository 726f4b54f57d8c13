// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package baseline

import (
	"github.com/emirpasic/gods/trees/avltree"
	"github.com/emirpasic/gods/trees/redblacktree"
)

// the gods trees are maps, keys are stored with an empty value
var present = struct{}{}

type redBlackStructure struct {
	tree *redblacktree.Tree
}

func newRedBlack() Structure {
	return &redBlackStructure{tree: redblacktree.NewWithIntComparator()}
}

func (s *redBlackStructure) Name() string   { return RedBlack }
func (s *redBlackStructure) Insert(key int) { s.tree.Put(key, present) }

func (s *redBlackStructure) Search(key int) bool {
	_, found := s.tree.Get(key)
	return found
}

func (s *redBlackStructure) Remove(key int) bool {
	n := s.tree.Size()
	s.tree.Remove(key)
	return s.tree.Size() != n
}

func (s *redBlackStructure) Count() int { return s.tree.Size() }

type godsAVLStructure struct {
	tree *avltree.Tree
}

func newGodsAVL() Structure {
	return &godsAVLStructure{tree: avltree.NewWithIntComparator()}
}

func (s *godsAVLStructure) Name() string   { return GodsAVL }
func (s *godsAVLStructure) Insert(key int) { s.tree.Put(key, present) }

func (s *godsAVLStructure) Search(key int) bool {
	_, found := s.tree.Get(key)
	return found
}

func (s *godsAVLStructure) Remove(key int) bool {
	n := s.tree.Size()
	s.tree.Remove(key)
	return s.tree.Size() != n
}

func (s *godsAVLStructure) Count() int { return s.tree.Size() }
