// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package null

import (
	"github.com/gogpu/rhi"
)

// deviceDesc is the fixed self-description every null device reports.
var deviceDesc = rhi.DeviceDesc{
	Adapter: rhi.AdapterDesc{
		Name:             "null",
		VideoMemorySize:  4 << 30,
		SharedMemorySize: 8 << 30,
	},
	Features: rhi.Features{
		TextureFilterMinMax: true,
		LogicFunc:           true,
		DepthBoundsTest:     true,
		LineSmoothing:       true,
	},
	Limits: rhi.Limits{
		Texture1DMaxDim:         16384,
		Texture2DMaxDim:         16384,
		Texture3DMaxDim:         2048,
		TextureLayerMaxNum:      2048,
		BufferMaxSize:           1 << 32,
		MemoryAllocationMaxNum:  1 << 20,
		SamplerAllocationMaxNum: 4096,
	},
}

// Desc reports the fixed adapter, features and limits.
func (d *Device) Desc() rhi.DeviceDesc { return deviceDesc }

// FormatSupport reports what the null device pretends to do with a
// format: color formats get the full treatment, compressed formats are
// sample-only, depth formats sample and attach.
func (d *Device) FormatSupport(f rhi.Format) rhi.FormatSupportBits {
	switch {
	case f.IsColor():
		s := rhi.FormatSupportTexture |
			rhi.FormatSupportStorageTexture |
			rhi.FormatSupportColorAttachment |
			rhi.FormatSupportBlend |
			rhi.FormatSupportBuffer |
			rhi.FormatSupportStorageBuffer
		if f.Stride() != 0 {
			s |= rhi.FormatSupportVertexBuffer
		}
		return s
	case f.IsDepth():
		return rhi.FormatSupportTexture | rhi.FormatSupportDepthStencilAttachment
	case f.Known():
		return rhi.FormatSupportTexture
	default:
		return 0
	}
}

// Queue returns the fixed queue handle for a type. Handles are offset by
// one so the graphics queue is distinguishable from a zero ID.
func (d *Device) Queue(t rhi.QueueType) (rhi.QueueID, error) {
	return rhi.QueueID(t) + 1, nil
}

func (d *Device) CreateBuffer(desc rhi.BufferDesc) (rhi.BufferID, error) {
	id := rhi.BufferID(d.newID())
	d.mu.Lock()
	d.buffers[id] = desc
	d.mu.Unlock()
	return id, nil
}

func (d *Device) CreateTexture(desc rhi.TextureDesc) (rhi.TextureID, error) {
	id := rhi.TextureID(d.newID())
	d.mu.Lock()
	d.textures[id] = desc
	d.mu.Unlock()
	return id, nil
}

func (d *Device) CreateBufferView(rhi.BufferViewDesc) (rhi.DescriptorID, error) {
	return rhi.DescriptorID(d.newID()), nil
}

func (d *Device) CreateTexture1DView(rhi.Texture1DViewDesc) (rhi.DescriptorID, error) {
	return rhi.DescriptorID(d.newID()), nil
}

func (d *Device) CreateTexture2DView(rhi.Texture2DViewDesc) (rhi.DescriptorID, error) {
	return rhi.DescriptorID(d.newID()), nil
}

func (d *Device) CreateTexture3DView(rhi.Texture3DViewDesc) (rhi.DescriptorID, error) {
	return rhi.DescriptorID(d.newID()), nil
}

func (d *Device) CreateSampler(rhi.SamplerDesc) (rhi.DescriptorID, error) {
	return rhi.DescriptorID(d.newID()), nil
}

func (d *Device) CreatePipelineLayout(rhi.PipelineLayoutDesc) (rhi.PipelineLayoutID, error) {
	return rhi.PipelineLayoutID(d.newID()), nil
}

func (d *Device) CreateGraphicsPipeline(rhi.GraphicsPipelineDesc) (rhi.PipelineID, error) {
	return rhi.PipelineID(d.newID()), nil
}

func (d *Device) CreateComputePipeline(rhi.ComputePipelineDesc) (rhi.PipelineID, error) {
	return rhi.PipelineID(d.newID()), nil
}

func (d *Device) CreateDescriptorPool(rhi.DescriptorPoolDesc) (rhi.DescriptorPoolID, error) {
	return rhi.DescriptorPoolID(d.newID()), nil
}

func (d *Device) CreateQueryPool(rhi.QueryPoolDesc) (rhi.QueryPoolID, error) {
	return rhi.QueryPoolID(d.newID()), nil
}

func (d *Device) CreateFence(uint64) (rhi.FenceID, error) {
	return rhi.FenceID(d.newID()), nil
}

func (d *Device) CreateCommandAllocator(rhi.QueueID) (rhi.CommandAllocatorID, error) {
	return rhi.CommandAllocatorID(d.newID()), nil
}

func (d *Device) CreateCommandBuffer(rhi.CommandAllocatorID) (rhi.CommandBufferID, error) {
	return rhi.CommandBufferID(d.newID()), nil
}

// BufferMemoryDesc answers with the buffer's size rounded to the
// allocation quantum and the location's derived memory type.
func (d *Device) BufferMemoryDesc(id rhi.BufferID, loc rhi.MemoryLocation) (rhi.MemoryDesc, error) {
	d.mu.Lock()
	desc := d.buffers[id]
	d.mu.Unlock()
	return rhi.MemoryDesc{
		Size:      roundUp(desc.Size),
		Alignment: granularity,
		Type:      memoryType(loc),
	}, nil
}

// TextureMemoryDesc answers like BufferMemoryDesc over the estimated
// texture extent.
func (d *Device) TextureMemoryDesc(id rhi.TextureID, loc rhi.MemoryLocation) (rhi.MemoryDesc, error) {
	d.mu.Lock()
	desc := d.textures[id]
	d.mu.Unlock()
	return rhi.MemoryDesc{
		Size:      roundUp(textureSize(desc)),
		Alignment: granularity,
		Type:      memoryType(loc),
	}, nil
}

func (d *Device) AllocateMemory(desc rhi.AllocateMemoryDesc) (rhi.MemoryID, error) {
	id := rhi.MemoryID(d.newID())
	d.mu.Lock()
	d.memories[id] = memoryBlock{size: desc.Size, typ: desc.Type}
	d.mu.Unlock()
	return id, nil
}

func (d *Device) BindBufferMemory([]rhi.BufferMemoryBindingDesc) error { return nil }

func (d *Device) BindTextureMemory([]rhi.TextureMemoryBindingDesc) error { return nil }

func (d *Device) FreeMemory(id rhi.MemoryID) {
	d.mu.Lock()
	delete(d.memories, id)
	d.mu.Unlock()
}

func (d *Device) DestroyBuffer(id rhi.BufferID) {
	d.mu.Lock()
	delete(d.buffers, id)
	d.mu.Unlock()
}

func (d *Device) DestroyTexture(id rhi.TextureID) {
	d.mu.Lock()
	delete(d.textures, id)
	d.mu.Unlock()
}

func (d *Device) DestroyDescriptor(rhi.DescriptorID) {}

func (d *Device) DestroyPipeline(rhi.PipelineID) {}

func (d *Device) DestroyPipelineLayout(rhi.PipelineLayoutID) {}

func (d *Device) DestroyQueryPool(rhi.QueryPoolID) {}

func (d *Device) DestroyFence(rhi.FenceID) {}

func (d *Device) DestroyCommandAllocator(rhi.CommandAllocatorID) {}

func (d *Device) DestroyCommandBuffer(rhi.CommandBufferID) {}

func (d *Device) DestroyDescriptorPool(rhi.DescriptorPoolID) {}
