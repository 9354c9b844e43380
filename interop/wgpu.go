// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package interop

import (
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/rhi"
)

// WGPUBufferDesc wraps a driver-level buffer for import. Desc must describe
// the buffer faithfully; the validation layer trusts it.
type WGPUBufferDesc struct {
	// HALBuffer is the existing driver buffer. Ownership stays with the
	// caller; destroying the imported wrapper does not destroy it.
	HALBuffer hal.Buffer

	Desc rhi.BufferDesc
}

// WGPUTextureDesc wraps a driver-level texture for import.
type WGPUTextureDesc struct {
	// HALTexture is the existing driver texture. Ownership stays with the
	// caller.
	HALTexture hal.Texture

	Desc rhi.TextureDesc
}

// WGPU is the optional feature area for importing driver-level gogpu/wgpu
// objects. Imported resources own their memory: they arrive bound and must
// not be passed to the bind operations.
type WGPU interface {
	ImportWGPUBuffer(WGPUBufferDesc) (rhi.BufferID, error)
	ImportWGPUTexture(WGPUTextureDesc) (rhi.TextureID, error)
}
