// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package baseline

import (
	"sort"

	"github.com/bitmark-inc/avltree/fault"
)

// names of the available structures
const (
	AVL      = "avl"
	BTree    = "btree"
	GodsAVL  = "gods-avl"
	LLRB     = "llrb"
	RedBlack = "redblack"
)

// Structure - the operations exercised by a benchmark
type Structure interface {
	Name() string
	Insert(key int)
	Search(key int) bool
	Remove(key int) bool
	Count() int
}

// constructors for each name
var constructors = map[string]func() Structure{
	AVL:      newAVL,
	BTree:    newBTree,
	GodsAVL:  newGodsAVL,
	LLRB:     newLLRB,
	RedBlack: newRedBlack,
}

// New - create an empty structure by name
func New(name string) (Structure, error) {
	c, ok := constructors[name]
	if !ok {
		return nil, fault.ErrInvalidBaseline
	}
	return c(), nil
}

// Names - all known structure names in sorted order
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
