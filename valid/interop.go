// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package valid

import (
	"github.com/cockroachdb/errors"

	"github.com/gogpu/rhi"
	"github.com/gogpu/rhi/interop"
)

// ImportWGPUBuffer wraps an existing driver-level buffer. The wrapper
// arrives bound; the driver object owns its memory and the caller keeps
// ownership of it.
func (d *Device) ImportWGPUBuffer(desc interop.WGPUBufferDesc) (*Buffer, error) {
	if !d.caps.WGPUInterop {
		return nil, errors.Wrap(rhi.ErrUnsupported, "ImportWGPUBuffer: the backend does not implement wgpu interop")
	}
	if desc.HALBuffer == nil {
		return nil, errors.Wrap(rhi.ErrInvalidArgument, "ImportWGPUBuffer: desc.HALBuffer is nil")
	}
	if desc.Desc.Size == 0 {
		return nil, errors.Wrap(rhi.ErrInvalidArgument, "ImportWGPUBuffer: desc.Desc.Size is 0")
	}

	id, err := d.wgpu.ImportWGPUBuffer(desc)
	if err != nil {
		return nil, err
	}
	return &Buffer{id: id, desc: desc.Desc, bound: true}, nil
}

// ImportWGPUTexture wraps an existing driver-level texture. The wrapper
// arrives bound.
func (d *Device) ImportWGPUTexture(desc interop.WGPUTextureDesc) (*Texture, error) {
	if !d.caps.WGPUInterop {
		return nil, errors.Wrap(rhi.ErrUnsupported, "ImportWGPUTexture: the backend does not implement wgpu interop")
	}
	if desc.HALTexture == nil {
		return nil, errors.Wrap(rhi.ErrInvalidArgument, "ImportWGPUTexture: desc.HALTexture is nil")
	}
	if err := checkTextureDesc("ImportWGPUTexture", desc.Desc); err != nil {
		return nil, err
	}

	id, err := d.wgpu.ImportWGPUTexture(desc)
	if err != nil {
		return nil, err
	}
	return &Texture{id: id, desc: desc.Desc, bound: true}, nil
}

// ImportWebGPUBuffer wraps an existing WebGPU buffer. The wrapper arrives
// bound.
func (d *Device) ImportWebGPUBuffer(desc interop.WebGPUBufferDesc) (*Buffer, error) {
	if !d.caps.WebGPUInterop {
		return nil, errors.Wrap(rhi.ErrUnsupported, "ImportWebGPUBuffer: the backend does not implement WebGPU interop")
	}
	if desc.Buffer == nil {
		return nil, errors.Wrap(rhi.ErrInvalidArgument, "ImportWebGPUBuffer: desc.Buffer is nil")
	}
	if desc.Desc.Size == 0 {
		return nil, errors.Wrap(rhi.ErrInvalidArgument, "ImportWebGPUBuffer: desc.Desc.Size is 0")
	}

	id, err := d.webGPU.ImportWebGPUBuffer(desc)
	if err != nil {
		return nil, err
	}
	return &Buffer{id: id, desc: desc.Desc, bound: true}, nil
}

// ImportWebGPUTexture wraps an existing WebGPU texture. The wrapper
// arrives bound.
func (d *Device) ImportWebGPUTexture(desc interop.WebGPUTextureDesc) (*Texture, error) {
	if !d.caps.WebGPUInterop {
		return nil, errors.Wrap(rhi.ErrUnsupported, "ImportWebGPUTexture: the backend does not implement WebGPU interop")
	}
	if desc.Texture == nil {
		return nil, errors.Wrap(rhi.ErrInvalidArgument, "ImportWebGPUTexture: desc.Texture is nil")
	}
	if err := checkTextureDesc("ImportWebGPUTexture", desc.Desc); err != nil {
		return nil, err
	}

	id, err := d.webGPU.ImportWebGPUTexture(desc)
	if err != nil {
		return nil, err
	}
	return &Texture{id: id, desc: desc.Desc, bound: true}, nil
}

// ImportVulkanBuffer wraps a native VkBuffer handle. The wrapper arrives
// bound; the handle already owns its memory on the Vulkan side.
func (d *Device) ImportVulkanBuffer(desc interop.VulkanBufferDesc) (*Buffer, error) {
	if !d.caps.VulkanInterop {
		return nil, errors.Wrap(rhi.ErrUnsupported, "ImportVulkanBuffer: the backend does not implement Vulkan interop")
	}
	if desc.VKBuffer == 0 {
		return nil, errors.Wrap(rhi.ErrInvalidArgument, "ImportVulkanBuffer: desc.VKBuffer is 0")
	}
	if desc.Desc.Size == 0 {
		return nil, errors.Wrap(rhi.ErrInvalidArgument, "ImportVulkanBuffer: desc.Desc.Size is 0")
	}

	id, err := d.vulkan.ImportVulkanBuffer(desc)
	if err != nil {
		return nil, err
	}
	return &Buffer{id: id, desc: desc.Desc, bound: true}, nil
}

// ImportVulkanTexture wraps a native VkImage handle. The wrapper arrives
// bound.
func (d *Device) ImportVulkanTexture(desc interop.VulkanTextureDesc) (*Texture, error) {
	if !d.caps.VulkanInterop {
		return nil, errors.Wrap(rhi.ErrUnsupported, "ImportVulkanTexture: the backend does not implement Vulkan interop")
	}
	if desc.VKImage == 0 {
		return nil, errors.Wrap(rhi.ErrInvalidArgument, "ImportVulkanTexture: desc.VKImage is 0")
	}
	if err := checkTextureDesc("ImportVulkanTexture", desc.Desc); err != nil {
		return nil, err
	}

	id, err := d.vulkan.ImportVulkanTexture(desc)
	if err != nil {
		return nil, err
	}
	return &Texture{id: id, desc: desc.Desc, bound: true}, nil
}

// ImportVulkanMemory wraps a native VkDeviceMemory handle. The wrapper is
// the imported variant: buffer and texture binds into it skip the
// placement checks, acceleration structure binds check against the
// reported size.
func (d *Device) ImportVulkanMemory(desc interop.VulkanMemoryDesc) (*Memory, error) {
	if !d.caps.VulkanInterop {
		return nil, errors.Wrap(rhi.ErrUnsupported, "ImportVulkanMemory: the backend does not implement Vulkan interop")
	}
	if desc.VKDeviceMemory == 0 {
		return nil, errors.Wrap(rhi.ErrInvalidArgument, "ImportVulkanMemory: desc.VKDeviceMemory is 0")
	}
	if desc.Size == 0 {
		return nil, errors.Wrap(rhi.ErrInvalidArgument, "ImportVulkanMemory: desc.Size is 0")
	}

	id, err := d.vulkan.ImportVulkanMemory(desc)
	if err != nil {
		return nil, err
	}
	return &Memory{id: id, size: desc.Size, imported: true}, nil
}
