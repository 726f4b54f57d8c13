// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of each error to allow easy comparison
// without having to resort to partial string matches.  Errors that
// carry extra detail wrap one of these instances, so the IsErrXXX
// classifiers unwrap before testing.
//
// Internal consistency failures are not recoverable; Panicf and
// friends log to the "PANIC" channel and then abort.
package fault
