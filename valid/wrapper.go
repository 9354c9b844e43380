// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package valid

import (
	"github.com/gogpu/rhi"
)

// Buffer is a validated buffer. The zero value is not usable; buffers come
// from Device.CreateBuffer, Device.AllocateBuffer or an import.
type Buffer struct {
	id    rhi.BufferID
	desc  rhi.BufferDesc
	bound bool

	// memory is the explicit allocation the buffer is bound to, nil for
	// unbound resources and for resources whose memory the backend or an
	// importer owns.
	memory *Memory
}

// ID returns the backend buffer ID, or rhi.InvalidID after destruction.
func (b *Buffer) ID() rhi.BufferID { return b.id }

// Desc returns the descriptor the buffer was created with.
func (b *Buffer) Desc() rhi.BufferDesc { return b.desc }

// Bound reports whether the buffer is attached to memory.
func (b *Buffer) Bound() bool { return b.bound }

// Texture is a validated texture.
type Texture struct {
	id    rhi.TextureID
	desc  rhi.TextureDesc
	bound bool

	memory *Memory
}

// ID returns the backend texture ID, or rhi.InvalidID after destruction.
func (t *Texture) ID() rhi.TextureID { return t.id }

// Desc returns the descriptor the texture was created with.
func (t *Texture) Desc() rhi.TextureDesc { return t.desc }

// Bound reports whether the texture is attached to memory.
func (t *Texture) Bound() bool { return t.bound }

// Memory is a validated memory allocation. An owned allocation knows its
// location and, when reported by the backend, its size; an imported
// allocation wraps a foreign handle whose true extent the facade cannot
// see, so placement checks skip it.
type Memory struct {
	id       rhi.MemoryID
	location rhi.MemoryLocation
	size     uint64 // 0 = unknown
	imported bool

	buffers                []*Buffer
	textures               []*Texture
	accelerationStructures []*AccelerationStructure
}

// ID returns the backend memory ID, or rhi.InvalidID after being freed.
func (m *Memory) ID() rhi.MemoryID { return m.id }

// Size returns the allocation size in bytes, 0 when unknown.
func (m *Memory) Size() uint64 { return m.size }

// Imported reports whether the allocation wraps a foreign handle.
func (m *Memory) Imported() bool { return m.imported }

// Location returns the allocation's memory location. ok is false for
// imported allocations, which have no facade-visible location.
func (m *Memory) Location() (loc rhi.MemoryLocation, ok bool) {
	if m.imported {
		return 0, false
	}
	return m.location, true
}

func (m *Memory) hasBoundResources() bool {
	return len(m.buffers) > 0 || len(m.textures) > 0 || len(m.accelerationStructures) > 0
}

func (m *Memory) bindBuffer(b *Buffer) {
	b.bound = true
	b.memory = m
	m.buffers = append(m.buffers, b)
}

func (m *Memory) bindTexture(t *Texture) {
	t.bound = true
	t.memory = m
	m.textures = append(m.textures, t)
}

func (m *Memory) bindAccelerationStructure(a *AccelerationStructure) {
	a.bound = true
	a.memory = m
	m.accelerationStructures = append(m.accelerationStructures, a)
}

func (m *Memory) unbindBuffer(b *Buffer) {
	for i, v := range m.buffers {
		if v == b {
			m.buffers = append(m.buffers[:i], m.buffers[i+1:]...)
			return
		}
	}
}

func (m *Memory) unbindTexture(t *Texture) {
	for i, v := range m.textures {
		if v == t {
			m.textures = append(m.textures[:i], m.textures[i+1:]...)
			return
		}
	}
}

func (m *Memory) unbindAccelerationStructure(a *AccelerationStructure) {
	for i, v := range m.accelerationStructures {
		if v == a {
			m.accelerationStructures = append(m.accelerationStructures[:i], m.accelerationStructures[i+1:]...)
			return
		}
	}
}

// Descriptor is a validated resource view or sampler.
type Descriptor struct {
	id rhi.DescriptorID
}

// ID returns the backend descriptor ID, or rhi.InvalidID after destruction.
func (d *Descriptor) ID() rhi.DescriptorID { return d.id }

// PipelineLayout is a validated pipeline layout. It keeps its descriptor so
// pipeline creation can check shader stages against the layout's mask.
type PipelineLayout struct {
	id   rhi.PipelineLayoutID
	desc rhi.PipelineLayoutDesc
}

// ID returns the backend layout ID, or rhi.InvalidID after destruction.
func (p *PipelineLayout) ID() rhi.PipelineLayoutID { return p.id }

// Desc returns the descriptor the layout was created with.
func (p *PipelineLayout) Desc() rhi.PipelineLayoutDesc { return p.desc }

// Pipeline is a validated pipeline of any kind.
type Pipeline struct {
	id rhi.PipelineID
}

// ID returns the backend pipeline ID, or rhi.InvalidID after destruction.
func (p *Pipeline) ID() rhi.PipelineID { return p.id }

// QueryPool is a validated query pool.
type QueryPool struct {
	id        rhi.QueryPoolID
	queryType rhi.QueryType
	capacity  uint32
}

// ID returns the backend pool ID, or rhi.InvalidID after destruction.
func (q *QueryPool) ID() rhi.QueryPoolID { return q.id }

// Type returns what each query in the pool records.
func (q *QueryPool) Type() rhi.QueryType { return q.queryType }

// Capacity returns the number of queries in the pool.
func (q *QueryPool) Capacity() uint32 { return q.capacity }

// Fence is a validated fence.
type Fence struct {
	id rhi.FenceID
}

// ID returns the backend fence ID, or rhi.InvalidID after destruction.
func (f *Fence) ID() rhi.FenceID { return f.id }

// CommandQueue is a validated device queue. Queue wrappers are cached per
// type and live until the device is destroyed.
type CommandQueue struct {
	id        rhi.QueueID
	queueType rhi.QueueType
}

// ID returns the backend queue ID.
func (q *CommandQueue) ID() rhi.QueueID { return q.id }

// Type returns the queue's type.
func (q *CommandQueue) Type() rhi.QueueType { return q.queueType }

// CommandAllocator is a validated command allocator.
type CommandAllocator struct {
	id rhi.CommandAllocatorID
}

// ID returns the backend allocator ID, or rhi.InvalidID after destruction.
func (c *CommandAllocator) ID() rhi.CommandAllocatorID { return c.id }

// CommandBuffer is a validated command buffer.
type CommandBuffer struct {
	id rhi.CommandBufferID
}

// ID returns the backend command buffer ID, or rhi.InvalidID after
// destruction.
func (c *CommandBuffer) ID() rhi.CommandBufferID { return c.id }

// DescriptorPool is a validated descriptor pool.
type DescriptorPool struct {
	id   rhi.DescriptorPoolID
	desc rhi.DescriptorPoolDesc
}

// ID returns the backend pool ID, or rhi.InvalidID after destruction.
func (d *DescriptorPool) ID() rhi.DescriptorPoolID { return d.id }

// Desc returns the descriptor the pool was created with.
func (d *DescriptorPool) Desc() rhi.DescriptorPoolDesc { return d.desc }

// SwapChain is a validated swap chain.
type SwapChain struct {
	id              rhi.SwapChainID
	width           uint32
	height          uint32
	textureCount    uint32
	format          rhi.SwapChainFormat
	allowLowLatency bool
}

// ID returns the backend swap chain ID, or rhi.InvalidID after destruction.
func (s *SwapChain) ID() rhi.SwapChainID { return s.id }

// Extent returns the surface extent in pixels.
func (s *SwapChain) Extent() (width, height uint32) { return s.width, s.height }

// Format returns the swap chain's color format.
func (s *SwapChain) Format() rhi.SwapChainFormat { return s.format }

// Streamer is a validated streamer.
type Streamer struct {
	id   rhi.StreamerID
	desc rhi.StreamerDesc
}

// ID returns the backend streamer ID, or rhi.InvalidID after destruction.
func (s *Streamer) ID() rhi.StreamerID { return s.id }

// AccelerationStructure is a validated ray-tracing acceleration structure.
// The device-local placement requirement is captured at creation and reused
// when the structure is bound.
type AccelerationStructure struct {
	id    rhi.AccelerationStructureID
	bound bool

	memory     *Memory
	memoryDesc rhi.MemoryDesc
}

// ID returns the backend structure ID, or rhi.InvalidID after destruction.
func (a *AccelerationStructure) ID() rhi.AccelerationStructureID { return a.id }

// Bound reports whether the structure is attached to memory.
func (a *AccelerationStructure) Bound() bool { return a.bound }

// MemoryDesc returns the device-local placement requirement captured when
// the structure was created.
func (a *AccelerationStructure) MemoryDesc() rhi.MemoryDesc { return a.memoryDesc }
