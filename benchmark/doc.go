// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package benchmark - drive bulk insert, search and remove through an
// AVL tree and report elapsed time per phase
//
// Run exercises the AVL tree on its own: keys are inserted, all are
// searched for, the key at the root is removed (normally a node with
// two children) and finally every remaining key is removed.  With the
// verbose option the tree is dumped after each mutating phase and with
// the check option the whole tree is verified after each phase, any
// inconsistency being fatal.
//
// Compare runs the same three timed phases over the baseline
// structures selected in the configuration.
package benchmark
