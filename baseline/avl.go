// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package baseline

import (
	"github.com/bitmark-inc/avltree/avl"
)

type avlStructure struct {
	tree *avl.Tree
}

func newAVL() Structure {
	return &avlStructure{tree: avl.New()}
}

func (s *avlStructure) Name() string        { return AVL }
func (s *avlStructure) Insert(key int)      { s.tree.Insert(key) }
func (s *avlStructure) Search(key int) bool { return s.tree.Contains(key) }
func (s *avlStructure) Remove(key int) bool { return s.tree.Remove(key) }
func (s *avlStructure) Count() int          { return s.tree.Count() }
