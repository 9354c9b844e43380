// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package interop defines the optional backend feature areas for wrapping
// externally created graphics objects, plus format conversions between rhi
// and the gogpu ecosystem types.
//
// Three foreign surfaces are covered:
//
//   - WGPU: driver-level objects from github.com/gogpu/wgpu/hal. Imported
//     resources own their memory and arrive bound.
//   - WebGPU: objects from github.com/cogentcore/webgpu/wgpu. Imported
//     resources own their memory and arrive bound.
//   - Vulkan: raw handles passed as uint64. Imported buffers and textures
//     arrive bound; imported device memory is marked imported, which
//     relaxes size and alignment checks at bind time.
//
// Backends advertise each surface by implementing the corresponding
// interface on their device value; the validation layer probes for them and
// refuses imports the backend cannot wrap.
package interop
