// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package valid

import (
	"github.com/cockroachdb/errors"

	"github.com/gogpu/rhi"
)

// ResourceGroupDesc names a set of resources to place in one memory
// location. It mirrors rhi.ResourceGroupDesc with resource references as
// wrappers.
type ResourceGroupDesc struct {
	MemoryLocation rhi.MemoryLocation

	Buffers  []*Buffer
	Textures []*Texture

	// PreferredMemorySize caps the per-allocation size the helper aims
	// for; 0 picks the backend default.
	PreferredMemorySize uint64
}

// CalculateAllocationNumber reports how many memory allocations
// AllocateAndBindMemory would make for the group.
func (d *Device) CalculateAllocationNumber(desc ResourceGroupDesc) (uint32, error) {
	if err := checkResourceGroup("CalculateAllocationNumber", desc); err != nil {
		return 0, err
	}
	return d.helper.CalculateAllocationNumber(translateResourceGroup(desc))
}

// AllocateAndBindMemory allocates memory for the group and binds every
// resource. The helper owns placement; the returned memory wrappers have
// unknown extents and the resources are marked bound without a memory
// backreference, so FreeMemory on them never reports leaks.
func (d *Device) AllocateAndBindMemory(desc ResourceGroupDesc) ([]*Memory, error) {
	if err := checkResourceGroup("AllocateAndBindMemory", desc); err != nil {
		return nil, err
	}
	for i, b := range desc.Buffers {
		if b.bound {
			return nil, errors.Wrapf(rhi.ErrInvalidArgument, "AllocateAndBindMemory: desc.Buffers[%d] is already bound to memory", i)
		}
	}
	for i, t := range desc.Textures {
		if t.bound {
			return nil, errors.Wrapf(rhi.ErrInvalidArgument, "AllocateAndBindMemory: desc.Textures[%d] is already bound to memory", i)
		}
	}

	ids, err := d.helper.AllocateAndBindMemory(translateResourceGroup(desc))
	if err != nil {
		return nil, err
	}
	for _, b := range desc.Buffers {
		b.bound = true
	}
	for _, t := range desc.Textures {
		t.bound = true
	}
	memories := make([]*Memory, len(ids))
	for i, id := range ids {
		memories[i] = &Memory{id: id, location: desc.MemoryLocation}
	}
	return memories, nil
}

func checkResourceGroup(op string, desc ResourceGroupDesc) error {
	if !desc.MemoryLocation.Valid() {
		return errors.Wrapf(rhi.ErrInvalidArgument, "%s: desc.MemoryLocation %d is invalid", op, desc.MemoryLocation)
	}
	for i, b := range desc.Buffers {
		if b == nil {
			return errors.Wrapf(rhi.ErrInvalidArgument, "%s: desc.Buffers[%d] is nil", op, i)
		}
	}
	for i, t := range desc.Textures {
		if t == nil {
			return errors.Wrapf(rhi.ErrInvalidArgument, "%s: desc.Textures[%d] is nil", op, i)
		}
	}
	return nil
}

func translateResourceGroup(desc ResourceGroupDesc) rhi.ResourceGroupDesc {
	out := rhi.ResourceGroupDesc{
		MemoryLocation:      desc.MemoryLocation,
		PreferredMemorySize: desc.PreferredMemorySize,
	}
	if len(desc.Buffers) > 0 {
		out.Buffers = make([]rhi.BufferID, len(desc.Buffers))
		for i, b := range desc.Buffers {
			out.Buffers[i] = b.id
		}
	}
	if len(desc.Textures) > 0 {
		out.Textures = make([]rhi.TextureID, len(desc.Textures))
		for i, t := range desc.Textures {
			out.Textures[i] = t.id
		}
	}
	return out
}
