// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package null

import (
	"github.com/gogpu/rhi"
	"github.com/gogpu/rhi/interop"
)

// Imports record the caller-supplied desc and drop the foreign object:
// the null device cannot use it, and ownership stays with the caller
// anyway.

func (d *Device) ImportWGPUBuffer(desc interop.WGPUBufferDesc) (rhi.BufferID, error) {
	id := rhi.BufferID(d.newID())
	d.mu.Lock()
	d.buffers[id] = desc.Desc
	d.mu.Unlock()
	return id, nil
}

func (d *Device) ImportWGPUTexture(desc interop.WGPUTextureDesc) (rhi.TextureID, error) {
	id := rhi.TextureID(d.newID())
	d.mu.Lock()
	d.textures[id] = desc.Desc
	d.mu.Unlock()
	return id, nil
}

func (d *Device) ImportWebGPUBuffer(desc interop.WebGPUBufferDesc) (rhi.BufferID, error) {
	id := rhi.BufferID(d.newID())
	d.mu.Lock()
	d.buffers[id] = desc.Desc
	d.mu.Unlock()
	return id, nil
}

func (d *Device) ImportWebGPUTexture(desc interop.WebGPUTextureDesc) (rhi.TextureID, error) {
	id := rhi.TextureID(d.newID())
	d.mu.Lock()
	d.textures[id] = desc.Desc
	d.mu.Unlock()
	return id, nil
}

func (d *Device) ImportVulkanBuffer(desc interop.VulkanBufferDesc) (rhi.BufferID, error) {
	id := rhi.BufferID(d.newID())
	d.mu.Lock()
	d.buffers[id] = desc.Desc
	d.mu.Unlock()
	return id, nil
}

func (d *Device) ImportVulkanTexture(desc interop.VulkanTextureDesc) (rhi.TextureID, error) {
	id := rhi.TextureID(d.newID())
	d.mu.Lock()
	d.textures[id] = desc.Desc
	d.mu.Unlock()
	return id, nil
}

func (d *Device) ImportVulkanMemory(desc interop.VulkanMemoryDesc) (rhi.MemoryID, error) {
	id := rhi.MemoryID(d.newID())
	d.mu.Lock()
	d.memories[id] = memoryBlock{size: desc.Size, typ: desc.Type}
	d.mu.Unlock()
	return id, nil
}
