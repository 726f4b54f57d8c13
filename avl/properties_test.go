// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"bytes"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/avl"
)

func TestEmptyTree(t *testing.T) {
	tree := avl.New()

	assert.True(t, tree.IsEmpty(), "new tree not empty")
	assert.Equal(t, 0, tree.Count(), "count")
	assert.Equal(t, 0, tree.Height(), "height")
	assert.True(t, tree.Root().IsNil(), "root")
	assert.True(t, tree.First().IsNil(), "first")
	assert.True(t, tree.Last().IsNil(), "last")
	assert.Empty(t, tree.Keys(), "keys")
	assert.False(t, tree.Remove(1), "remove from empty tree")
	assert.NoError(t, tree.Check(), "check")

	_, found := tree.Search(1)
	assert.False(t, found, "search of empty tree")
}

func TestSimpleRotation(t *testing.T) {
	tree := avl.New()
	tree.Insert(1)
	tree.Insert(2)
	require.Equal(t, uint64(0), tree.Rotations(), "rotations before third insert")

	tree.Insert(3)
	assert.Equal(t, uint64(1), tree.Rotations(), "rotations after third insert")

	root := tree.Root()
	require.False(t, root.IsNil(), "root")
	assert.Equal(t, 2, root.Key(), "root key")
	assert.Equal(t, 2, root.Height(), "root height")
	assert.True(t, root.Parent().IsNil(), "root parent")

	l := root.Left()
	r := root.Right()
	require.False(t, l.IsNil(), "left")
	require.False(t, r.IsNil(), "right")
	assert.Equal(t, 1, l.Key(), "left key")
	assert.Equal(t, 3, r.Key(), "right key")
	assert.Equal(t, 1, l.Height(), "left height")
	assert.Equal(t, 1, r.Height(), "right height")
	assert.Equal(t, 2, l.Parent().Key(), "left parent")
	assert.Equal(t, 2, r.Parent().Key(), "right parent")

	assert.NoError(t, tree.Check())
}

func TestDoubleRotation(t *testing.T) {
	// right-left then left-right shapes
	for _, keys := range [][]int{{1, 3, 2}, {3, 1, 2}} {
		tree := avl.New()
		for _, k := range keys {
			tree.Insert(k)
		}
		assert.Equal(t, uint64(2), tree.Rotations(), "rotations for: %v", keys)
		assert.Equal(t, 2, tree.Root().Key(), "root for: %v", keys)
		assert.Equal(t, 2, tree.Height(), "height for: %v", keys)
		assert.NoError(t, tree.Check(), "check for: %v", keys)
	}
}

func TestTwoChildrenDeletion(t *testing.T) {
	tree := avl.New()
	for key := 0; key < 7; key += 1 {
		tree.Insert(key)
	}
	require.Equal(t, 7, tree.Count())
	require.Equal(t, 3, tree.Height(), "ascending 0..6 is a perfect tree")
	require.NoError(t, tree.Check())

	rootKey := tree.Root().Key()
	require.Equal(t, 3, rootKey)

	assert.True(t, tree.Remove(rootKey), "remove root")
	assert.Equal(t, 6, tree.Count(), "count after remove")
	assert.NoError(t, tree.Check())

	// successor is now the root
	assert.Equal(t, 4, tree.Root().Key(), "new root")
	assert.Equal(t, 3, tree.Height(), "height after remove")

	_, found := tree.Search(rootKey)
	assert.False(t, found, "removed key still found")
	for key := 0; key < 7; key += 1 {
		if key != rootKey {
			assert.True(t, tree.Contains(key), "missing key: %d", key)
		}
	}
	assert.Equal(t, []int{0, 1, 2, 4, 5, 6}, tree.Keys())
}

func TestSuccessorIsRightChild(t *testing.T) {
	tree := avl.New()
	for _, key := range []int{20, 10, 30, 5, 40} {
		tree.Insert(key)
	}
	require.NoError(t, tree.Check())

	assert.True(t, tree.Remove(20))
	assert.NoError(t, tree.Check())
	assert.Equal(t, 30, tree.Root().Key(), "right child replaces root")
	assert.Equal(t, []int{5, 10, 30, 40}, tree.Keys())
}

func TestIdempotentRemove(t *testing.T) {
	tree := avl.New()
	for key := 0; key < 20; key += 1 {
		tree.Insert(key)
	}

	assert.True(t, tree.Remove(7), "first remove")

	var before bytes.Buffer
	tree.Dump(&before)
	count := tree.Count()

	assert.False(t, tree.Remove(7), "second remove")

	var after bytes.Buffer
	tree.Dump(&after)

	assert.Equal(t, count, tree.Count(), "count changed")
	assert.Equal(t, before.String(), after.String(), "structure changed")
	assert.NoError(t, tree.Check())
}

func TestDuplicatesGoRight(t *testing.T) {
	tree := avl.New()
	tree.Insert(5)
	tree.Insert(5)

	root := tree.Root()
	assert.True(t, root.Left().IsNil(), "duplicate went left")
	assert.False(t, root.Right().IsNil(), "duplicate not on right")

	tree.Insert(5)
	assert.Equal(t, 3, tree.Count())
	assert.Equal(t, []int{5, 5, 5}, tree.Keys())
	assert.NoError(t, tree.Check())

	assert.True(t, tree.Remove(5))
	assert.True(t, tree.Remove(5))
	assert.True(t, tree.Contains(5), "last copy removed early")
	assert.True(t, tree.Remove(5))
	assert.False(t, tree.Remove(5))
	assert.True(t, tree.IsEmpty())
}

// height of a tree of n ascending keys must stay within the AVL bound
func TestHeightBound(t *testing.T) {
	sizes := []int{1, 2, 3, 10, 100, 1000, 65535, 100000}
	if !testing.Short() {
		sizes = append(sizes, 1000000)
	}

	for _, n := range sizes {
		tree := avl.New()
		for key := 0; key < n; key += 1 {
			tree.Insert(key)
		}
		bound := int(math.Ceil(1.44 * math.Log2(float64(n+2))))
		assert.LessOrEqual(t, tree.Height(), bound, "height for n = %d", n)
		assert.Equal(t, n, tree.Count(), "count for n = %d", n)
		if n == 1000000 {
			assert.Less(t, tree.Height(), 30, "height for one million keys")
		}
	}
}

// random insert/remove sequence checked after every operation
// against a simple multiset
func TestRandomOperations(t *testing.T) {
	for seed := int64(1); seed <= 20; seed += 1 {
		randomOperations(t, seed, 3000, 200)
	}
}

func randomOperations(t *testing.T, seed int64, operations int, keyRange int) {
	r := rand.New(rand.NewSource(seed))
	tree := avl.New()
	reference := make(map[int]int)
	total := 0

	for i := 0; i < operations; i += 1 {
		key := r.Intn(keyRange)
		if r.Intn(3) > 0 {
			tree.Insert(key)
			reference[key] += 1
			total += 1
		} else {
			removed := tree.Remove(key)
			if reference[key] > 0 {
				require.True(t, removed, "seed: %d op: %d  remove of present key: %d", seed, i, key)
				reference[key] -= 1
				total -= 1
			} else {
				require.False(t, removed, "seed: %d op: %d  remove of absent key: %d", seed, i, key)
			}
		}

		require.NoError(t, tree.Check(), "seed: %d op: %d  key: %d", seed, i, key)
		require.Equal(t, total, tree.Count(), "seed: %d op: %d", seed, i)
	}

	for key := 0; key < keyRange; key += 1 {
		assert.Equal(t, reference[key] > 0, tree.Contains(key), "seed: %d  key: %d", seed, key)
	}
}

// every insertion order of a small key set, then every single removal
func TestAllPermutations(t *testing.T) {
	keys := []int{1, 2, 3, 4, 5, 6, 7}

	permute(keys, 0, func(order []int) {
		for _, victim := range keys {
			tree := avl.New()
			for _, k := range order {
				tree.Insert(k)
			}
			if !tree.Remove(victim) {
				t.Fatalf("order: %v  could not remove: %d", order, victim)
			}
			if err := tree.Check(); nil != err {
				var buffer bytes.Buffer
				tree.Print(&buffer)
				t.Fatalf("order: %v  remove: %d  error: %s\n%s", order, victim, err, buffer.String())
			}
			if tree.Contains(victim) {
				t.Fatalf("order: %v  still contains: %d", order, victim)
			}
		}
	})
}

// calls f with every ordering of a[k:]
func permute(a []int, k int, f func([]int)) {
	if k == len(a) {
		f(a)
		return
	}
	for i := k; i < len(a); i += 1 {
		a[k], a[i] = a[i], a[k]
		permute(a, k+1, f)
		a[k], a[i] = a[i], a[k]
	}
}

func TestDump(t *testing.T) {
	tree := avl.New()
	for key := 1; key <= 3; key += 1 {
		tree.Insert(key)
	}

	var buffer bytes.Buffer
	tree.Dump(&buffer)

	expected := "size: 3\n" +
		"[nil, 1, nil]\n" +
		"[nil, 3, nil]\n" +
		"[1, 2, 3]\n"
	assert.Equal(t, expected, buffer.String())
}

func TestPrint(t *testing.T) {
	tree := avl.New()
	for key := 1; key <= 3; key += 1 {
		tree.Insert(key)
	}

	var buffer bytes.Buffer
	depth := tree.Print(&buffer)

	expected := "       /------+ 3 ^2 h:1 +0\n" +
		"|------+ 2 ^nil h:2 +0\n" +
		"       \\------+ 1 ^2 h:1 +0\n"
	assert.Equal(t, 2, depth)
	assert.Equal(t, expected, buffer.String())
}
