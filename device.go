// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rhi

// AdapterDesc identifies the physical adapter behind a backend.
type AdapterDesc struct {
	// Name is the adapter's marketing name.
	Name string

	// VendorID and DeviceID are the PCI identifiers, 0 when unknown.
	VendorID uint32
	DeviceID uint32

	// VideoMemorySize is the device-local memory in bytes.
	VideoMemorySize uint64

	// SharedMemorySize is the host-visible memory in bytes.
	SharedMemorySize uint64
}

// Features reports optional device abilities consulted during validation.
type Features struct {
	// TextureFilterMinMax permits samplers with an extended reduction
	// filter (FilterExtMin / FilterExtMax).
	TextureFilterMinMax bool

	// LogicFunc permits logical-op blending.
	LogicFunc bool

	// DepthBoundsTest permits the depth bounds test.
	DepthBoundsTest bool

	// LineSmoothing permits smoothed line rasterization.
	LineSmoothing bool
}

// Limits reports the device's size bounds.
type Limits struct {
	Texture1DMaxDim    uint32
	Texture2DMaxDim    uint32
	Texture3DMaxDim    uint32
	TextureLayerMaxNum uint32

	BufferMaxSize uint64

	MemoryAllocationMaxNum  uint32
	SamplerAllocationMaxNum uint32
}

// DeviceDesc is the backend's self-description, cached by the validation
// layer at construction.
type DeviceDesc struct {
	Adapter  AdapterDesc
	Features Features
	Limits   Limits
}

// Backend is the minimal surface every backend implements. Functionality
// lives in the feature-area interfaces below, probed by type assertion on
// the same value.
type Backend interface {
	// Name returns the backend identifier (e.g. "null", "wgpu").
	Name() string

	// Destroy tears the backend device down. The backend must not be used
	// afterwards.
	Destroy()
}

// Core is the required feature area: object lifecycle, memory and format
// queries, and queue retrieval.
//
// Create calls return the new object's ID or an error; Destroy calls accept
// IDs previously returned by the matching Create and must tolerate nothing
// else. The validation layer guarantees descriptors reaching a backend
// satisfy every documented constraint.
type Core interface {
	// Desc reports the device's adapter, features and limits.
	Desc() DeviceDesc

	// FormatSupport reports what the device can do with a format.
	FormatSupport(Format) FormatSupportBits

	// Queue returns the device queue of the given type.
	Queue(QueueType) (QueueID, error)

	CreateBuffer(BufferDesc) (BufferID, error)
	CreateTexture(TextureDesc) (TextureID, error)
	CreateBufferView(BufferViewDesc) (DescriptorID, error)
	CreateTexture1DView(Texture1DViewDesc) (DescriptorID, error)
	CreateTexture2DView(Texture2DViewDesc) (DescriptorID, error)
	CreateTexture3DView(Texture3DViewDesc) (DescriptorID, error)
	CreateSampler(SamplerDesc) (DescriptorID, error)
	CreatePipelineLayout(PipelineLayoutDesc) (PipelineLayoutID, error)
	CreateGraphicsPipeline(GraphicsPipelineDesc) (PipelineID, error)
	CreateComputePipeline(ComputePipelineDesc) (PipelineID, error)
	CreateDescriptorPool(DescriptorPoolDesc) (DescriptorPoolID, error)
	CreateQueryPool(QueryPoolDesc) (QueryPoolID, error)
	CreateFence(initialValue uint64) (FenceID, error)
	CreateCommandAllocator(QueueID) (CommandAllocatorID, error)
	CreateCommandBuffer(CommandAllocatorID) (CommandBufferID, error)

	// BufferMemoryDesc and TextureMemoryDesc report the placement
	// requirement of a resource for one memory location.
	BufferMemoryDesc(BufferID, MemoryLocation) (MemoryDesc, error)
	TextureMemoryDesc(TextureID, MemoryLocation) (MemoryDesc, error)

	AllocateMemory(AllocateMemoryDesc) (MemoryID, error)

	// BindBufferMemory and BindTextureMemory attach resources to memory.
	// The batch is all-or-nothing: on error no binding took effect.
	BindBufferMemory([]BufferMemoryBindingDesc) error
	BindTextureMemory([]TextureMemoryBindingDesc) error

	FreeMemory(MemoryID)

	DestroyBuffer(BufferID)
	DestroyTexture(TextureID)
	DestroyDescriptor(DescriptorID)
	DestroyPipeline(PipelineID)
	DestroyPipelineLayout(PipelineLayoutID)
	DestroyQueryPool(QueryPoolID)
	DestroyFence(FenceID)
	DestroyCommandAllocator(CommandAllocatorID)
	DestroyCommandBuffer(CommandBufferID)
	DestroyDescriptorPool(DescriptorPoolID)
}

// Helper is the required feature area for bulk placement and budget
// queries.
type Helper interface {
	// CalculateAllocationNumber reports how many allocations placing the
	// group would take.
	CalculateAllocationNumber(ResourceGroupDesc) (uint32, error)

	// AllocateAndBindMemory places every resource of the group, returning
	// one MemoryID per allocation made. All-or-nothing.
	AllocateAndBindMemory(ResourceGroupDesc) ([]MemoryID, error)

	// QueryVideoMemoryInfo reports the current budget for a location.
	QueryVideoMemoryInfo(MemoryLocation) (VideoMemoryInfo, error)
}

// Streamer is the required feature area for transient upload helpers.
type Streamer interface {
	CreateStreamer(StreamerDesc) (StreamerID, error)
	DestroyStreamer(StreamerID)
}

// ResourceAllocator is the required feature area combining resource
// creation with backend-managed placement. Resources it returns are already
// bound.
type ResourceAllocator interface {
	AllocateBuffer(AllocateBufferDesc) (BufferID, error)
	AllocateTexture(AllocateTextureDesc) (TextureID, error)
	AllocateAccelerationStructure(AllocateAccelerationStructureDesc) (AccelerationStructureID, error)
}

// RayTracing is the optional feature area for ray-tracing pipelines and
// acceleration structures.
type RayTracing interface {
	CreateRayTracingPipeline(RayTracingPipelineDesc) (PipelineID, error)
	CreateAccelerationStructure(AccelerationStructureDesc) (AccelerationStructureID, error)
	AccelerationStructureMemoryDesc(AccelerationStructureID, MemoryLocation) (MemoryDesc, error)
	BindAccelerationStructureMemory([]AccelerationStructureMemoryBindingDesc) error
	DestroyAccelerationStructure(AccelerationStructureID)
}

// SwapChain is the optional feature area for presentable surfaces.
// Acquisition and presentation are queue-side operations outside the
// validated device surface.
type SwapChain interface {
	CreateSwapChain(SwapChainDesc) (SwapChainID, error)
	DestroySwapChain(SwapChainID)
}

// LowLatency is the optional feature area for latency-controlled frame
// pacing.
type LowLatency interface {
	SetLatencySleepMode(SwapChainID, LatencySleepMode) error
}

// MeshShader is the optional feature area for mesh pipelines. Its one
// operation records into a command buffer and is therefore not part of the
// validated device surface; the area's presence gates mesh stages in
// graphics pipeline creation.
type MeshShader interface {
	DrawMeshTasks(cb CommandBufferID, groupCountX, groupCountY, groupCountZ uint32)
}
