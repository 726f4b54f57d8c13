// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package baseline

import (
	"github.com/petar/GoLLRB/llrb"
)

// left-leaning red-black tree
type llrbStructure struct {
	tree *llrb.LLRB
}

func newLLRB() Structure {
	return &llrbStructure{tree: llrb.New()}
}

func (s *llrbStructure) Name() string   { return LLRB }
func (s *llrbStructure) Insert(key int) { s.tree.ReplaceOrInsert(llrb.Int(key)) }

func (s *llrbStructure) Search(key int) bool {
	return s.tree.Has(llrb.Int(key))
}

func (s *llrbStructure) Remove(key int) bool {
	return nil != s.tree.Delete(llrb.Int(key))
}

func (s *llrbStructure) Count() int { return s.tree.Len() }
