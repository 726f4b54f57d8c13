// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ConsistencyError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrArenaExhausted        = ProcessError("node arena exhausted")
	ErrCountMismatch         = ConsistencyError("node count mismatch")
	ErrHeightMismatch        = ConsistencyError("cached height mismatch")
	ErrInvalidArgumentCount  = InvalidError("invalid argument count")
	ErrInvalidBaseline       = InvalidError("invalid baseline structure")
	ErrInvalidCount          = InvalidError("invalid count")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidOrder          = InvalidError("invalid key order")
	ErrInvalidSeed           = InvalidError("invalid seed")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrKeyNotFound           = NotFoundError("key not found")
	ErrKeyNotRemoved         = ProcessError("key not removed")
	ErrMissingConfiguration  = NotFoundError("missing configuration table")
	ErrNotInitialised        = NotFoundError("not initialised")
	ErrOrderViolation        = ConsistencyError("key order violation")
	ErrParentLinkMismatch    = ConsistencyError("parent link mismatch")
	ErrTreeNotEmpty          = ConsistencyError("tree not empty after removing all keys")
	ErrUnbalanced            = ConsistencyError("sub-tree heights differ by more than one")
	ErrUnexpectedRootMissing = ConsistencyError("root missing from non-empty tree")
)

// the error interface methods
func (e GenericError) Error() string     { return string(e) }
func (e ConsistencyError) Error() string { return string(e) }
func (e ExistsError) Error() string      { return string(e) }
func (e InvalidError) Error() string     { return string(e) }
func (e NotFoundError) Error() string    { return string(e) }
func (e ProcessError) Error() string     { return string(e) }

// determine the class of an error
func IsErrConsistency(e error) bool { var t ConsistencyError; return errors.As(e, &t) }
func IsErrExists(e error) bool      { var t ExistsError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool     { var t InvalidError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool    { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool     { var t ProcessError; return errors.As(e, &t) }
