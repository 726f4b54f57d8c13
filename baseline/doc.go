// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package baseline - ordered integer containers behind a common
// interface so the AVL tree can be timed against other
// implementations using the same workload
//
// The third-party containers reject or replace duplicate keys, so
// comparisons only use distinct keys.
package baseline
