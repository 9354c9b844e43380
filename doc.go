// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package rhi defines a rendering hardware interface: the vocabulary shared
// by graphics backends and the validation layer that fronts them.
//
// # Overview
//
// rhi is the contract half of a two-package design. This package holds the
// opaque resource handles, descriptor records, enumerations and feature-area
// interfaces a backend implements; package valid wraps any such backend in a
// defensive validation facade that checks every call before the backend sees
// it. Backends register themselves here and are selected by name or priority.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/rhi"
//	    "github.com/gogpu/rhi/valid"
//
//	    _ "github.com/gogpu/rhi/null" // registers the reference backend
//	)
//
//	backend, err := rhi.Default()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	dev, err := valid.New(backend)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer dev.Destroy()
//
//	buf, err := dev.CreateBuffer(rhi.BufferDesc{Size: 256, Usage: rhi.BufferUsageVertex})
//
// # Feature areas
//
// A backend exposes functionality in independent areas, each a separate
// interface on the backend value:
//   - Required: Core, Helper, Streamer, ResourceAllocator
//   - Optional: RayTracing, SwapChain, LowLatency, MeshShader, and the
//     platform-interop areas in package interop
//
// The validation facade probes every area once at construction; the optional
// ones surface as capability flags.
//
// # Error model
//
// Operations return errors classified by sentinel: ErrInvalidArgument for bad
// caller data, ErrFailure for state mismatches, ErrUnsupported for missing
// feature areas, plus the backend classes ErrOutOfMemory, ErrDeviceLost and
// ErrOutOfDate. ResultOf collapses any error to the Result enumeration for
// callers that switch on codes.
package rhi

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
