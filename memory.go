// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rhi

// MemoryDesc is the backend-reported placement requirement of a resource
// for one memory location.
type MemoryDesc struct {
	// Size is the required allocation size in bytes.
	Size uint64

	// Alignment is the required binding alignment. Always non-zero for a
	// well-behaved backend.
	Alignment uint32

	// Type is the backend memory type the resource must bind to.
	Type MemoryType

	// MustBeDedicated requires the resource to be the allocation's only
	// occupant, bound at offset 0.
	MustBeDedicated bool
}

// AllocateMemoryDesc describes an explicit memory allocation.
type AllocateMemoryDesc struct {
	// Size is the allocation size in bytes. Must be non-zero.
	Size uint64

	// Type is a backend memory type previously discovered through a memory
	// desc query or explicit registration.
	Type MemoryType

	// Priority is the eviction priority in [-1, 1]; 0 is neutral.
	Priority float32
}

// BufferMemoryBindingDesc attaches one buffer to a memory allocation.
type BufferMemoryBindingDesc struct {
	Buffer BufferID
	Memory MemoryID

	// Offset is the byte offset of the buffer within the allocation.
	Offset uint64
}

// TextureMemoryBindingDesc attaches one texture to a memory allocation.
type TextureMemoryBindingDesc struct {
	Texture TextureID
	Memory  MemoryID
	Offset  uint64
}

// AccelerationStructureMemoryBindingDesc attaches one acceleration
// structure to a memory allocation.
type AccelerationStructureMemoryBindingDesc struct {
	AccelerationStructure AccelerationStructureID
	Memory                MemoryID
	Offset                uint64
}

// ResourceGroupDesc names a set of resources to place with as few
// allocations as the backend can manage.
type ResourceGroupDesc struct {
	// MemoryLocation is where every allocation of the group lives.
	MemoryLocation MemoryLocation

	// Buffers and Textures are the resources to place.
	Buffers  []BufferID
	Textures []TextureID

	// PreferredMemorySize caps individual allocations; 0 lets the backend
	// choose.
	PreferredMemorySize uint64
}

// AllocateBufferDesc creates a buffer and places it in backend-managed
// memory in one step.
type AllocateBufferDesc struct {
	// Location is where the backing memory lives.
	Location MemoryLocation

	// Priority is the eviction priority in [-1, 1].
	Priority float32

	// Dedicated forces a dedicated allocation.
	Dedicated bool

	// Desc is the buffer to create, validated exactly like CreateBuffer.
	Desc BufferDesc
}

// AllocateTextureDesc creates a texture and places it in backend-managed
// memory in one step.
type AllocateTextureDesc struct {
	Location  MemoryLocation
	Priority  float32
	Dedicated bool

	// Desc is the texture to create, validated exactly like CreateTexture.
	Desc TextureDesc
}

// AllocateAccelerationStructureDesc creates an acceleration structure and
// places it in backend-managed memory in one step.
type AllocateAccelerationStructureDesc struct {
	Location MemoryLocation
	Priority float32

	// Desc is the structure to create, validated exactly like
	// CreateAccelerationStructure.
	Desc AccelerationStructureDesc
}

// VideoMemoryInfo is a point-in-time budget report for one memory location.
type VideoMemoryInfo struct {
	// BudgetSize is how many bytes the process may use before the OS starts
	// evicting.
	BudgetSize uint64

	// UsageSize is how many bytes the process currently uses.
	UsageSize uint64
}
