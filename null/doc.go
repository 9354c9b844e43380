// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package null provides an in-memory reference backend.
//
// The null device performs no GPU work: every create call hands out a
// fresh ID and records just enough state to answer later queries. It
// implements every feature area except rhi.MeshShader, which is left out
// on purpose so capability probing always has a false bit to observe.
//
// Importing the package registers the backend as "null" at the lowest
// priority, so rhi.Default never prefers it over a real backend:
//
//	import _ "github.com/gogpu/rhi/null"
package null
