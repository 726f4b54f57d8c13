// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"math/rand"
	"testing"

	"github.com/bitmark-inc/avltree/avl"
)

const benchmarkKeys = 100000

func ascendingTree(n int) *avl.Tree {
	tree := avl.New()
	for key := 0; key < n; key += 1 {
		tree.Insert(key)
	}
	return tree
}

func BenchmarkInsertAscending(b *testing.B) {
	for i := 0; i < b.N; i += 1 {
		ascendingTree(benchmarkKeys)
	}
}

func BenchmarkInsertRandom(b *testing.B) {
	keys := rand.New(rand.NewSource(0)).Perm(benchmarkKeys)
	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		tree := avl.New()
		for _, key := range keys {
			tree.Insert(key)
		}
	}
}

var sideEffect bool

func BenchmarkSearch(b *testing.B) {
	tree := ascendingTree(benchmarkKeys)
	keys := rand.New(rand.NewSource(0)).Perm(benchmarkKeys)
	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		for _, key := range keys {
			sideEffect = tree.Contains(key)
		}
	}
}

func BenchmarkRemove(b *testing.B) {
	keys := rand.New(rand.NewSource(0)).Perm(benchmarkKeys)
	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		b.StopTimer()
		tree := ascendingTree(benchmarkKeys)
		b.StartTimer()
		for _, key := range keys {
			tree.Remove(key)
		}
	}
}
