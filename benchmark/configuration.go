// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package benchmark

import (
	"math/rand"

	"github.com/bitmark-inc/avltree/baseline"
	"github.com/bitmark-inc/avltree/fault"
)

// key orders
const (
	Ascending  = "ascending"
	Descending = "descending"
	Random     = "random"
)

// Configuration - settings for one benchmark run
type Configuration struct {
	Count     int      `gluamapper:"count" json:"count"`
	Verbose   bool     `gluamapper:"verbose" json:"verbose"`
	Check     bool     `gluamapper:"check" json:"check"`
	Order     string   `gluamapper:"order" json:"order"`
	Seed      int64    `gluamapper:"seed" json:"seed"`
	Baselines []string `gluamapper:"baselines" json:"baselines"`
}

// Validate - check that all the values are usable
func (conf *Configuration) Validate() error {
	if conf.Count < 0 {
		return fault.ErrInvalidCount
	}
	switch conf.Order {
	case Ascending, Descending, Random:
	default:
		return fault.ErrInvalidOrder
	}
	for _, name := range conf.Baselines {
		if _, err := baseline.New(name); nil != err {
			return err
		}
	}
	return nil
}

// Keys - the workload: every key from 0 to count-1 exactly once in
// the requested order, seed is only used for random order
func Keys(order string, count int, seed int64) ([]int, error) {
	if count < 0 {
		return nil, fault.ErrInvalidCount
	}

	keys := make([]int, count)
	switch order {
	case Ascending:
		for i := range keys {
			keys[i] = i
		}
	case Descending:
		for i := range keys {
			keys[i] = count - 1 - i
		}
	case Random:
		keys = rand.New(rand.NewSource(seed)).Perm(count)
	default:
		return nil, fault.ErrInvalidOrder
	}
	return keys, nil
}
