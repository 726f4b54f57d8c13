// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package benchmark

import (
	"fmt"
	"io"
	"time"

	"github.com/bitmark-inc/avltree/avl"
)

// phase names
const (
	PhaseInsert = "insert"
	PhaseSearch = "search"
	PhaseRemove = "remove"
)

// dump titles
const (
	DumpInsert     = "after insert"
	DumpRemoveRoot = "after remove root"
	DumpRemoveAll  = "after remove all"
)

// Reporter - receives the results of a benchmark as they are produced
type Reporter interface {
	Timing(structure string, phase string, elapsed time.Duration, operations int)
	Dump(title string, tree *avl.Tree)
	Summary(result *Result)
}

type textReporter struct {
	w io.Writer
}

// NewTextReporter - a reporter writing plain text lines
func NewTextReporter(w io.Writer) Reporter {
	return &textReporter{w: w}
}

func (r *textReporter) Timing(structure string, phase string, elapsed time.Duration, operations int) {
	fmt.Fprintf(r.w, "%s %s: %d µs  operations: %d\n", structure, phase, elapsed.Microseconds(), operations)
}

func (r *textReporter) Dump(title string, tree *avl.Tree) {
	fmt.Fprintf(r.w, "--- %s\n", title)
	tree.Dump(r.w)
}

func (r *textReporter) Summary(result *Result) {
	fmt.Fprintf(r.w, "size: %d  height: %d  rotations: %d  removed root: %s\n",
		result.Size, result.Height, result.Rotations, result.rootString())
}
