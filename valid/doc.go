// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package valid wraps an rhi backend in a defensive validation facade.
//
// The facade checks every descriptor against its documented constraints
// before the backend sees it: a malformed call fails with an
// rhi.ErrInvalidArgument-classed error naming the offending field, and the
// backend is never invoked. Valid calls are forwarded with wrapper
// references translated to backend IDs, and successful results come back
// as typed wrappers (*Buffer, *Texture, *Memory, ...) that carry the state
// later checks need: creation descriptors, binding status, and the set of
// resources bound to each allocation.
//
// Construction probes the backend's feature areas. The four required areas
// (rhi.Core, rhi.Helper, rhi.Streamer, rhi.ResourceAllocator) must all be
// present or New fails; optional areas are reported through Caps and gate
// the corresponding facade methods.
//
// The facade adds no synchronization beyond its own bookkeeping. Calls
// execute synchronously on the caller's goroutine and the wrapped backend's
// threading contract passes through unchanged.
package valid
