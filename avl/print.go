// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
	"strconv"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// shown in place of an absent child
const absent = "nil"

// Print - display an ASCII graphic representation of the tree
//
// returns the maximum depth of the tree
func (tree *Tree) Print(w io.Writer) int {
	return tree.printTree(w, tree.root, "", root)
}

// internal print - returns the maximum depth of the sub-tree
func (tree *Tree) printTree(w io.Writer, p index, prefix string, br branch) int {
	if null == p {
		return 0
	}
	n := &tree.nodes[p]
	rd := 0
	ld := 0
	if null != n.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = tree.printTree(w, n.right, prefix+t, right)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	up := absent
	if null != n.up {
		up = strconv.Itoa(tree.nodes[n.up].key)
	}
	fmt.Fprintf(w, "%d ^%s h:%d %+d\n", n.key, up, n.height, tree.balanceFactor(p))
	if null != n.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = tree.printTree(w, n.left, prefix+t, left)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}

// Dump - write the node count followed by one "[left, key, right]"
// line per node, children before parents
func (tree *Tree) Dump(w io.Writer) {
	fmt.Fprintf(w, "size: %d\n", tree.count)
	tree.dump(w, tree.root)
}

func (tree *Tree) dump(w io.Writer, p index) {
	if null == p {
		return
	}
	n := &tree.nodes[p]
	tree.dump(w, n.left)
	tree.dump(w, n.right)
	fmt.Fprintf(w, "[%s, %d, %s]\n", tree.keyString(n.left), n.key, tree.keyString(n.right))
}

func (tree *Tree) keyString(p index) string {
	if null == p {
		return absent
	}
	return strconv.Itoa(tree.nodes[p].key)
}
