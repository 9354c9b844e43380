// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package interop

import (
	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gogpu/rhi"
)

// WebGPUBufferDesc wraps a WebGPU buffer for import. Desc must describe the
// buffer faithfully; the validation layer trusts it.
type WebGPUBufferDesc struct {
	// Buffer is the existing WebGPU buffer. Ownership stays with the
	// caller; destroying the imported wrapper does not release it.
	Buffer *wgpu.Buffer

	Desc rhi.BufferDesc
}

// WebGPUTextureDesc wraps a WebGPU texture for import.
type WebGPUTextureDesc struct {
	// Texture is the existing WebGPU texture. Ownership stays with the
	// caller.
	Texture *wgpu.Texture

	Desc rhi.TextureDesc
}

// WebGPU is the optional feature area for importing WebGPU objects.
// Imported resources own their memory: they arrive bound and must not be
// passed to the bind operations.
type WebGPU interface {
	ImportWebGPUBuffer(WebGPUBufferDesc) (rhi.BufferID, error)
	ImportWebGPUTexture(WebGPUTextureDesc) (rhi.TextureID, error)
}
