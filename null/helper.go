// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package null

import (
	"github.com/gogpu/rhi"
)

// CalculateAllocationNumber reports one allocation per resource; the null
// device never packs.
func (d *Device) CalculateAllocationNumber(group rhi.ResourceGroupDesc) (uint32, error) {
	return uint32(len(group.Buffers) + len(group.Textures)), nil
}

// AllocateAndBindMemory places every resource of the group in its own
// allocation.
func (d *Device) AllocateAndBindMemory(group rhi.ResourceGroupDesc) ([]rhi.MemoryID, error) {
	ids := make([]rhi.MemoryID, 0, len(group.Buffers)+len(group.Textures))
	typ := memoryType(group.MemoryLocation)

	d.mu.Lock()
	for _, b := range group.Buffers {
		id := rhi.MemoryID(d.newID())
		d.memories[id] = memoryBlock{size: roundUp(d.buffers[b].Size), typ: typ}
		ids = append(ids, id)
	}
	for _, t := range group.Textures {
		id := rhi.MemoryID(d.newID())
		d.memories[id] = memoryBlock{size: roundUp(textureSize(d.textures[t])), typ: typ}
		ids = append(ids, id)
	}
	d.mu.Unlock()
	return ids, nil
}

// QueryVideoMemoryInfo reports the fixed adapter budget with the sum of
// live allocations as usage.
func (d *Device) QueryVideoMemoryInfo(loc rhi.MemoryLocation) (rhi.VideoMemoryInfo, error) {
	typ := memoryType(loc)

	d.mu.Lock()
	var used uint64
	for _, m := range d.memories {
		if m.typ == typ {
			used += m.size
		}
	}
	d.mu.Unlock()

	budget := deviceDesc.Adapter.VideoMemorySize
	if loc != rhi.MemoryLocationDevice && loc != rhi.MemoryLocationDeviceUpload {
		budget = deviceDesc.Adapter.SharedMemorySize
	}
	return rhi.VideoMemoryInfo{BudgetSize: budget, UsageSize: used}, nil
}

// CreateStreamer hands out a fresh handle; the null device keeps no
// streamer state.
func (d *Device) CreateStreamer(rhi.StreamerDesc) (rhi.StreamerID, error) {
	return rhi.StreamerID(d.newID()), nil
}

func (d *Device) DestroyStreamer(rhi.StreamerID) {}

// AllocateBuffer creates a buffer with backend-managed placement. The
// null device has nothing to place, so only the buffer is recorded; its
// phantom backing never shows up in the memories book.
func (d *Device) AllocateBuffer(desc rhi.AllocateBufferDesc) (rhi.BufferID, error) {
	id := rhi.BufferID(d.newID())
	d.mu.Lock()
	d.buffers[id] = desc.Desc
	d.mu.Unlock()
	return id, nil
}

// AllocateTexture creates a texture with backend-managed placement.
func (d *Device) AllocateTexture(desc rhi.AllocateTextureDesc) (rhi.TextureID, error) {
	id := rhi.TextureID(d.newID())
	d.mu.Lock()
	d.textures[id] = desc.Desc
	d.mu.Unlock()
	return id, nil
}

// AllocateAccelerationStructure creates an acceleration structure with
// backend-managed placement.
func (d *Device) AllocateAccelerationStructure(desc rhi.AllocateAccelerationStructureDesc) (rhi.AccelerationStructureID, error) {
	id := rhi.AccelerationStructureID(d.newID())
	d.mu.Lock()
	d.structures[id] = desc.Desc
	d.mu.Unlock()
	return id, nil
}
