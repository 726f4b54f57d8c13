// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avltree/fault"
)

// summary of one sub-tree from the consistency checker
type summary struct {
	height int
	count  int
	min    int
	max    int
}

// Check - verify the whole tree in a single pass
//
// for every node: parent link, cached height, |left height - right
// height| < 2 and the key is not less than anything on its left nor
// greater than anything on its right; the total node count must equal
// Count().  Cost is O(n), so this is never called by Insert or Remove.
func (tree *Tree) Check() error {
	if null == tree.root {
		if 0 != tree.count {
			return fmt.Errorf("count: %d: %w", tree.count, fault.ErrUnexpectedRootMissing)
		}
		return nil
	}
	if null != tree.nodes[tree.root].up {
		return fmt.Errorf("root key: %d: %w", tree.nodes[tree.root].key, fault.ErrParentLinkMismatch)
	}
	s, err := tree.check(tree.root)
	if nil != err {
		return err
	}
	if s.count != tree.count {
		return fmt.Errorf("reachable: %d  count: %d: %w", s.count, tree.count, fault.ErrCountMismatch)
	}
	return nil
}

// internal: consistency checker for a non-absent sub-tree
func (tree *Tree) check(p index) (summary, error) {
	n := &tree.nodes[p]
	s := summary{
		count: 1,
		min:   n.key,
		max:   n.key,
	}

	hl := 0
	if null != n.left {
		if tree.nodes[n.left].up != p {
			return s, fmt.Errorf("left of key: %d: %w", n.key, fault.ErrParentLinkMismatch)
		}
		l, err := tree.check(n.left)
		if nil != err {
			return s, err
		}
		if l.max > n.key {
			return s, fmt.Errorf("left max: %d > key: %d: %w", l.max, n.key, fault.ErrOrderViolation)
		}
		hl = l.height
		s.count += l.count
		s.min = l.min
	}

	hr := 0
	if null != n.right {
		if tree.nodes[n.right].up != p {
			return s, fmt.Errorf("right of key: %d: %w", n.key, fault.ErrParentLinkMismatch)
		}
		r, err := tree.check(n.right)
		if nil != err {
			return s, err
		}
		if r.min < n.key {
			return s, fmt.Errorf("right min: %d < key: %d: %w", r.min, n.key, fault.ErrOrderViolation)
		}
		hr = r.height
		s.count += r.count
		s.max = r.max
	}

	if hl-hr >= 2 || hr-hl >= 2 {
		return s, fmt.Errorf("key: %d  left: %d  right: %d: %w", n.key, hl, hr, fault.ErrUnbalanced)
	}

	s.height = 1 + hl
	if hr > hl {
		s.height = 1 + hr
	}
	if s.height != n.height {
		return s, fmt.Errorf("key: %d  cached: %d  actual: %d: %w", n.key, n.height, s.height, fault.ErrHeightMismatch)
	}
	return s, nil
}

