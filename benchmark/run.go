// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package benchmark

import (
	"fmt"
	"strconv"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/baseline"
	"github.com/bitmark-inc/avltree/fault"
)

// Result - figures from a Run
type Result struct {
	Size        int    // nodes after the insert phase
	Height      int    // tree height after the insert phase
	Rotations   uint64 // total over all phases
	RemovedRoot bool   // false only for an empty tree
	RootKey     int    // key removed by the targeted removal
	Insert      time.Duration
	Search      time.Duration
	Remove      time.Duration
}

func (result *Result) rootString() string {
	if !result.RemovedRoot {
		return "none"
	}
	return strconv.Itoa(result.RootKey)
}

// Run - time the insert, search and remove phases on a new AVL tree
//
// a key that cannot be found after insertion is an error, as is a
// tree that is not empty after all keys are removed
func Run(conf *Configuration, reporter Reporter, log *logger.L) (*Result, error) {

	keys, err := Keys(conf.Order, conf.Count, conf.Seed)
	if nil != err {
		return nil, err
	}

	tree := avl.New()
	result := &Result{}

	log.Infof("insert: %d keys  order: %s", len(keys), conf.Order)
	result.Insert = timed(func() {
		for _, key := range keys {
			tree.Insert(key)
		}
	})
	reporter.Timing(baseline.AVL, PhaseInsert, result.Insert, len(keys))
	check(conf, tree, PhaseInsert)

	result.Size = tree.Count()
	result.Height = tree.Height()
	log.Infof("size: %d  height: %d  rotations: %d", result.Size, result.Height, tree.Rotations())

	if conf.Verbose {
		reporter.Dump(DumpInsert, tree)
	}

	log.Info("search")
	missing := -1
	result.Search = timed(func() {
		for _, key := range keys {
			if !tree.Contains(key) {
				missing = key
				return
			}
		}
	})
	if missing >= 0 {
		log.Errorf("search: key: %d not found", missing)
		return result, fmt.Errorf("key: %d: %w", missing, fault.ErrKeyNotFound)
	}
	reporter.Timing(baseline.AVL, PhaseSearch, result.Search, len(keys))

	if !tree.IsEmpty() {
		result.RemovedRoot = true
		result.RootKey = tree.Root().Key()
		log.Debugf("remove root key: %d", result.RootKey)
		tree.Remove(result.RootKey)
		if tree.Contains(result.RootKey) {
			log.Errorf("root key: %d still present", result.RootKey)
			return result, fmt.Errorf("key: %d: %w", result.RootKey, fault.ErrKeyNotRemoved)
		}
		check(conf, tree, "remove root")
		if conf.Verbose {
			reporter.Dump(DumpRemoveRoot, tree)
		}
	}

	// the root key is already gone, removing it again is a no-op
	log.Info("remove")
	result.Remove = timed(func() {
		for _, key := range keys {
			tree.Remove(key)
		}
	})
	reporter.Timing(baseline.AVL, PhaseRemove, result.Remove, len(keys))
	check(conf, tree, PhaseRemove)

	if conf.Verbose {
		reporter.Dump(DumpRemoveAll, tree)
	}
	if !tree.IsEmpty() || 0 != tree.Count() {
		log.Errorf("%d nodes remain", tree.Count())
		return result, fault.ErrTreeNotEmpty
	}

	result.Rotations = tree.Rotations()
	reporter.Summary(result)
	log.Info("finished")
	return result, nil
}

// Compare - run the insert, search and remove phases for each of the
// configured baseline structures
func Compare(conf *Configuration, reporter Reporter, log *logger.L) error {

	keys, err := Keys(conf.Order, conf.Count, conf.Seed)
	if nil != err {
		return err
	}

	for _, name := range conf.Baselines {
		s, err := baseline.New(name)
		if nil != err {
			return err
		}
		log.Infof("compare: %s  keys: %d", name, len(keys))
		if err := measure(s, keys, reporter); nil != err {
			log.Errorf("compare: %s  error: %s", name, err)
			return err
		}
	}
	return nil
}

// time the three phases on one structure
func measure(s baseline.Structure, keys []int, reporter Reporter) error {
	elapsed := timed(func() {
		for _, key := range keys {
			s.Insert(key)
		}
	})
	reporter.Timing(s.Name(), PhaseInsert, elapsed, len(keys))

	missing := -1
	elapsed = timed(func() {
		for _, key := range keys {
			if !s.Search(key) {
				missing = key
				return
			}
		}
	})
	if missing >= 0 {
		return fmt.Errorf("%s: key: %d: %w", s.Name(), missing, fault.ErrKeyNotFound)
	}
	reporter.Timing(s.Name(), PhaseSearch, elapsed, len(keys))

	elapsed = timed(func() {
		for _, key := range keys {
			s.Remove(key)
		}
	})
	reporter.Timing(s.Name(), PhaseRemove, elapsed, len(keys))

	if 0 != s.Count() {
		return fmt.Errorf("%s: %d remain: %w", s.Name(), s.Count(), fault.ErrTreeNotEmpty)
	}
	return nil
}

func timed(f func()) time.Duration {
	start := time.Now()
	f()
	return time.Since(start)
}

// verify the whole tree if enabled, any error is an internal bug
func check(conf *Configuration, tree *avl.Tree, phase string) {
	if !conf.Check {
		return
	}
	fault.PanicIfError("check after "+phase, tree.Check())
}
