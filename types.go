// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rhi

// Resource IDs
//
// These opaque IDs represent backend objects. Each backend maintains the
// mapping between IDs and its actual native resources. IDs are uint64 to
// accommodate various backend handle sizes.

// BufferID is an opaque handle to a backend buffer.
type BufferID uint64

// TextureID is an opaque handle to a backend texture.
type TextureID uint64

// DescriptorID is an opaque handle to a backend descriptor (resource view
// or sampler).
type DescriptorID uint64

// MemoryID is an opaque handle to a backend memory allocation.
type MemoryID uint64

// AccelerationStructureID is an opaque handle to a backend ray-tracing
// acceleration structure.
type AccelerationStructureID uint64

// PipelineID is an opaque handle to a backend pipeline.
type PipelineID uint64

// PipelineLayoutID is an opaque handle to a backend pipeline layout.
type PipelineLayoutID uint64

// QueryPoolID is an opaque handle to a backend query pool.
type QueryPoolID uint64

// FenceID is an opaque handle to a backend fence.
type FenceID uint64

// QueueID is an opaque handle to a backend command queue.
type QueueID uint64

// CommandAllocatorID is an opaque handle to a backend command allocator.
type CommandAllocatorID uint64

// CommandBufferID is an opaque handle to a backend command buffer.
type CommandBufferID uint64

// DescriptorPoolID is an opaque handle to a backend descriptor pool.
type DescriptorPoolID uint64

// SwapChainID is an opaque handle to a backend swap chain.
type SwapChainID uint64

// StreamerID is an opaque handle to a backend streamer.
type StreamerID uint64

// InvalidID is the zero value, representing an invalid/null resource.
const InvalidID = 0

// QueueType selects one of the per-device command queues.
type QueueType uint8

// Queue types.
const (
	// QueueGraphics is the general-purpose graphics queue.
	QueueGraphics QueueType = iota

	// QueueCompute is the async compute queue.
	QueueCompute

	// QueueCopy is the transfer queue.
	QueueCopy

	queueTypeCount
)

// QueueTypeCount is the number of queue types; the validation layer caches
// one queue wrapper per type.
const QueueTypeCount = int(queueTypeCount)

// Valid reports whether the queue type is within the enumerated range.
func (q QueueType) Valid() bool { return q < queueTypeCount }

// String returns the queue type's name.
func (q QueueType) String() string {
	switch q {
	case QueueGraphics:
		return "graphics"
	case QueueCompute:
		return "compute"
	case QueueCopy:
		return "copy"
	default:
		return "invalid"
	}
}

// MemoryLocation classifies where an allocation lives and how the host may
// access it.
type MemoryLocation uint8

// Memory locations.
const (
	// MemoryLocationDevice is device-local memory, not host-visible.
	MemoryLocationDevice MemoryLocation = iota

	// MemoryLocationDeviceUpload is device-local memory that the host can
	// write through (ReBAR-style).
	MemoryLocationDeviceUpload

	// MemoryLocationHostUpload is host memory for CPU-to-GPU transfers.
	MemoryLocationHostUpload

	// MemoryLocationHostReadback is host memory for GPU-to-CPU transfers.
	MemoryLocationHostReadback

	memoryLocationCount
)

// Valid reports whether the location is within the enumerated range.
func (l MemoryLocation) Valid() bool { return l < memoryLocationCount }

// String returns the location's name.
func (l MemoryLocation) String() string {
	switch l {
	case MemoryLocationDevice:
		return "device"
	case MemoryLocationDeviceUpload:
		return "device-upload"
	case MemoryLocationHostUpload:
		return "host-upload"
	case MemoryLocationHostReadback:
		return "host-readback"
	default:
		return "invalid"
	}
}

// MemoryType is an opaque backend-enumerated memory classification. The
// validation layer maps each discovered type to a MemoryLocation; the value
// itself is meaningful only to the backend that reported it.
type MemoryType uint32

// BufferUsageBits is a bitmask specifying how a buffer will be used.
type BufferUsageBits uint32

// Buffer usage flags.
const (
	// BufferUsageVertex indicates the buffer can feed vertex streams.
	BufferUsageVertex BufferUsageBits = 1 << 0

	// BufferUsageIndex indicates the buffer can feed index reads.
	BufferUsageIndex BufferUsageBits = 1 << 1

	// BufferUsageConstant indicates the buffer can back constant views.
	BufferUsageConstant BufferUsageBits = 1 << 2

	// BufferUsageShaderResource indicates the buffer can back read-only
	// shader views.
	BufferUsageShaderResource BufferUsageBits = 1 << 3

	// BufferUsageShaderResourceStorage indicates the buffer can back
	// read-write shader views.
	BufferUsageShaderResourceStorage BufferUsageBits = 1 << 4

	// BufferUsageArgument indicates the buffer can hold indirect arguments.
	BufferUsageArgument BufferUsageBits = 1 << 5

	// BufferUsageScratch indicates the buffer can serve as acceleration
	// structure build scratch.
	BufferUsageScratch BufferUsageBits = 1 << 6

	// BufferUsageShaderBindingTable indicates the buffer can hold a ray
	// dispatch shader binding table.
	BufferUsageShaderBindingTable BufferUsageBits = 1 << 7

	// BufferUsageAccelerationStructureStorage indicates the buffer can hold
	// built acceleration structure data.
	BufferUsageAccelerationStructureStorage BufferUsageBits = 1 << 8
)

// TextureUsageBits is a bitmask specifying how a texture will be used.
type TextureUsageBits uint32

// Texture usage flags.
const (
	// TextureUsageShaderResource indicates the texture can back sampled
	// shader views.
	TextureUsageShaderResource TextureUsageBits = 1 << 0

	// TextureUsageShaderResourceStorage indicates the texture can back
	// read-write shader views.
	TextureUsageShaderResourceStorage TextureUsageBits = 1 << 1

	// TextureUsageColorAttachment indicates the texture can be rendered to.
	TextureUsageColorAttachment TextureUsageBits = 1 << 2

	// TextureUsageDepthStencilAttachment indicates the texture can serve as
	// a depth/stencil target.
	TextureUsageDepthStencilAttachment TextureUsageBits = 1 << 3
)
