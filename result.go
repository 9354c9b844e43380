// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rhi

import (
	"github.com/cockroachdb/errors"
)

// Result is the client-facing outcome code of a device operation.
//
// Go callers normally branch on the returned error with errors.Is; Result
// exists for code that mirrors the C-style contract (bindings, logs, tools).
type Result int32

// Result codes.
const (
	// Success indicates the operation completed.
	Success Result = iota

	// Failure indicates a state or environment mismatch: the call was
	// well-formed but could not be satisfied (unregistered memory type,
	// resources still bound at free, backend refusal).
	Failure

	// InvalidArgument indicates malformed caller data, detected before the
	// backend was invoked.
	InvalidArgument

	// OutOfMemory indicates an allocation failure reported by the backend.
	OutOfMemory

	// Unsupported indicates a feature area the backend does not implement.
	Unsupported

	// DeviceLost indicates the backend device became unusable.
	DeviceLost

	// OutOfDate indicates a swap chain no longer matches its surface.
	OutOfDate
)

// String returns the code's name.
func (r Result) String() string {
	switch r {
	case Success:
		return "SUCCESS"
	case Failure:
		return "FAILURE"
	case InvalidArgument:
		return "INVALID_ARGUMENT"
	case OutOfMemory:
		return "OUT_OF_MEMORY"
	case Unsupported:
		return "UNSUPPORTED"
	case DeviceLost:
		return "DEVICE_LOST"
	case OutOfDate:
		return "OUT_OF_DATE"
	default:
		return "UNKNOWN"
	}
}

// Error classes. Every error returned by this module wraps exactly one of
// these sentinels; diagnostics are attached with cockroachdb/errors so the
// message names the offending field and its values.
var (
	// ErrFailure is the class of state and environment mismatches.
	ErrFailure = errors.New("rhi: operation failed")

	// ErrInvalidArgument is the class of malformed caller data.
	ErrInvalidArgument = errors.New("rhi: invalid argument")

	// ErrOutOfMemory is the class of backend allocation failures.
	ErrOutOfMemory = errors.New("rhi: out of memory")

	// ErrUnsupported is the class of missing feature areas.
	ErrUnsupported = errors.New("rhi: unsupported")

	// ErrDeviceLost is the class of fatal device errors.
	ErrDeviceLost = errors.New("rhi: device lost")

	// ErrOutOfDate is the class of stale swap chain errors.
	ErrOutOfDate = errors.New("rhi: out of date")
)

// ResultOf maps an error to its Result code. A nil error is Success; an
// error outside the known classes is Failure.
func ResultOf(err error) Result {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, ErrInvalidArgument):
		return InvalidArgument
	case errors.Is(err, ErrOutOfMemory):
		return OutOfMemory
	case errors.Is(err, ErrUnsupported):
		return Unsupported
	case errors.Is(err, ErrDeviceLost):
		return DeviceLost
	case errors.Is(err, ErrOutOfDate):
		return OutOfDate
	default:
		return Failure
	}
}
