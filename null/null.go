// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package null

import (
	"sync"
	"sync/atomic"

	"github.com/gogpu/rhi"
	"github.com/gogpu/rhi/interop"
)

// Name is the registry identifier of the backend.
const Name = "null"

// init registers the null backend on package import.
func init() {
	rhi.Register(Name, 0, func() (rhi.Backend, error) {
		return New(), nil
	})
}

// memoryBlock records one live allocation.
type memoryBlock struct {
	size uint64
	typ  rhi.MemoryType
}

// Device is the null backend. IDs come from a single atomic counter so
// every object, whatever its kind, gets a distinct handle; descriptors
// needed to answer later queries live in mutex-guarded books.
type Device struct {
	lastID atomic.Uint64

	mu         sync.Mutex
	buffers    map[rhi.BufferID]rhi.BufferDesc
	textures   map[rhi.TextureID]rhi.TextureDesc
	memories   map[rhi.MemoryID]memoryBlock
	structures map[rhi.AccelerationStructureID]rhi.AccelerationStructureDesc
}

var (
	_ rhi.Core              = (*Device)(nil)
	_ rhi.Helper            = (*Device)(nil)
	_ rhi.Streamer          = (*Device)(nil)
	_ rhi.ResourceAllocator = (*Device)(nil)
	_ rhi.RayTracing        = (*Device)(nil)
	_ rhi.SwapChain         = (*Device)(nil)
	_ rhi.LowLatency        = (*Device)(nil)
	_ interop.WGPU          = (*Device)(nil)
	_ interop.WebGPU        = (*Device)(nil)
	_ interop.Vulkan        = (*Device)(nil)
)

// New creates a null device.
func New() *Device {
	return &Device{
		buffers:    make(map[rhi.BufferID]rhi.BufferDesc),
		textures:   make(map[rhi.TextureID]rhi.TextureDesc),
		memories:   make(map[rhi.MemoryID]memoryBlock),
		structures: make(map[rhi.AccelerationStructureID]rhi.AccelerationStructureDesc),
	}
}

// Name returns the backend identifier.
func (d *Device) Name() string { return Name }

// Destroy drops every book. The device must not be used afterwards.
func (d *Device) Destroy() {
	d.mu.Lock()
	d.buffers = nil
	d.textures = nil
	d.memories = nil
	d.structures = nil
	d.mu.Unlock()
}

// newID returns a fresh non-zero handle.
func (d *Device) newID() uint64 {
	return d.lastID.Add(1)
}

// granularity is the allocation quantum the null device pretends to have.
const granularity = 256

// roundUp rounds size up to the allocation quantum, keeping zero-sized
// requests at one quantum so every allocation has extent.
func roundUp(size uint64) uint64 {
	if size == 0 {
		return granularity
	}
	return (size + granularity - 1) &^ uint64(granularity-1)
}

// memoryType derives the backend memory type for a location. Types are
// offset by one so no valid type collides with the zero value.
func memoryType(loc rhi.MemoryLocation) rhi.MemoryType {
	return rhi.MemoryType(loc) + 1
}

// textureSize is the crude whole-chain byte estimate used for placement
// answers: the base level dominates, each mip adds a shrinking tail.
func textureSize(desc rhi.TextureDesc) uint64 {
	stride := uint64(desc.Format.Stride())
	if stride == 0 {
		stride = 4
	}
	w, h, depth := uint64(desc.Width), uint64(desc.Height), uint64(desc.Depth)
	if h == 0 {
		h = 1
	}
	if depth == 0 {
		depth = 1
	}

	var total uint64
	for i := uint32(0); i < desc.MipCount; i++ {
		total += w * h * depth * stride
		w = max(w/2, 1)
		h = max(h/2, 1)
		depth = max(depth/2, 1)
	}
	layers := uint64(desc.LayerCount)
	if layers == 0 {
		layers = 1
	}
	samples := uint64(desc.SampleCount)
	if samples == 0 {
		samples = 1
	}
	return total * layers * samples
}

// structureSize is the byte estimate for an acceleration structure.
func structureSize(desc rhi.AccelerationStructureDesc) uint64 {
	if desc.Type == rhi.AccelerationStructureTopLevel {
		return uint64(desc.InstanceNum) * 64
	}
	var total uint64
	for _, g := range desc.Geometries {
		switch g.Type {
		case rhi.GeometryTriangles:
			total += uint64(g.Triangles.VertexNum) * 48
		case rhi.GeometryAABBs:
			total += uint64(g.AABBs.Num) * 32
		}
	}
	return total
}
