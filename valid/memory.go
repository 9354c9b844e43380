// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package valid

import (
	"github.com/cockroachdb/errors"

	"github.com/gogpu/rhi"
)

// BufferMemoryBinding attaches one buffer to a region of one memory.
type BufferMemoryBinding struct {
	Buffer *Buffer
	Memory *Memory
	Offset uint64
}

// TextureMemoryBinding attaches one texture to a region of one memory.
type TextureMemoryBinding struct {
	Texture *Texture
	Memory  *Memory
	Offset  uint64
}

// AllocateMemory allocates a raw memory block. The memory type must have
// been observed by a preceding memory-desc query or registered explicitly,
// so the wrapper knows which location the block lives in.
func (d *Device) AllocateMemory(desc rhi.AllocateMemoryDesc) (*Memory, error) {
	if desc.Size == 0 {
		return nil, errors.Wrap(rhi.ErrInvalidArgument, "AllocateMemory: desc.Size is 0")
	}
	if desc.Priority < -1 || desc.Priority > 1 {
		return nil, errors.Wrapf(rhi.ErrInvalidArgument, "AllocateMemory: desc.Priority %v is outside [-1, 1]", desc.Priority)
	}
	location, ok := d.lookupMemoryType(desc.Type)
	if !ok {
		return nil, errors.Wrapf(rhi.ErrFailure, "AllocateMemory: desc.Type %d has not been seen by a memory-desc query", desc.Type)
	}

	id, err := d.core.AllocateMemory(desc)
	if err != nil {
		return nil, err
	}
	return &Memory{id: id, location: location, size: desc.Size}, nil
}

// BindBufferMemory binds buffers to memory regions. Placement is checked
// against the backend's reported requirements before anything is bound;
// either every binding reaches the backend or none does.
//
// Bindings into imported memory skip the placement checks because the
// wrapper cannot know the foreign block's true extent.
func (d *Device) BindBufferMemory(bindings []BufferMemoryBinding) error {
	translated := make([]rhi.BufferMemoryBindingDesc, len(bindings))
	for i, b := range bindings {
		if b.Buffer == nil {
			return errors.Wrapf(rhi.ErrInvalidArgument, "BindBufferMemory: bindings[%d].Buffer is nil", i)
		}
		if b.Memory == nil {
			return errors.Wrapf(rhi.ErrInvalidArgument, "BindBufferMemory: bindings[%d].Memory is nil", i)
		}
		if b.Buffer.bound {
			return errors.Wrapf(rhi.ErrInvalidArgument, "BindBufferMemory: bindings[%d].Buffer is already bound to memory", i)
		}
		translated[i] = rhi.BufferMemoryBindingDesc{Buffer: b.Buffer.id, Memory: b.Memory.id, Offset: b.Offset}

		if b.Memory.imported {
			continue
		}

		memoryDesc, err := d.core.BufferMemoryDesc(b.Buffer.id, b.Memory.location)
		if err != nil {
			return errors.Wrapf(err, "BindBufferMemory: bindings[%d]", i)
		}
		if err := checkPlacement("BindBufferMemory", i, memoryDesc, b.Offset, b.Memory.size); err != nil {
			return err
		}
	}

	if err := d.core.BindBufferMemory(translated); err != nil {
		return err
	}
	for _, b := range bindings {
		b.Memory.bindBuffer(b.Buffer)
	}
	return nil
}

// BindTextureMemory binds textures to memory regions. See BindBufferMemory
// for the binding rules.
func (d *Device) BindTextureMemory(bindings []TextureMemoryBinding) error {
	translated := make([]rhi.TextureMemoryBindingDesc, len(bindings))
	for i, b := range bindings {
		if b.Texture == nil {
			return errors.Wrapf(rhi.ErrInvalidArgument, "BindTextureMemory: bindings[%d].Texture is nil", i)
		}
		if b.Memory == nil {
			return errors.Wrapf(rhi.ErrInvalidArgument, "BindTextureMemory: bindings[%d].Memory is nil", i)
		}
		if b.Texture.bound {
			return errors.Wrapf(rhi.ErrInvalidArgument, "BindTextureMemory: bindings[%d].Texture is already bound to memory", i)
		}
		translated[i] = rhi.TextureMemoryBindingDesc{Texture: b.Texture.id, Memory: b.Memory.id, Offset: b.Offset}

		if b.Memory.imported {
			continue
		}

		memoryDesc, err := d.core.TextureMemoryDesc(b.Texture.id, b.Memory.location)
		if err != nil {
			return errors.Wrapf(err, "BindTextureMemory: bindings[%d]", i)
		}
		if err := checkPlacement("BindTextureMemory", i, memoryDesc, b.Offset, b.Memory.size); err != nil {
			return err
		}
	}

	if err := d.core.BindTextureMemory(translated); err != nil {
		return err
	}
	for _, b := range bindings {
		b.Memory.bindTexture(b.Texture)
	}
	return nil
}

// checkPlacement validates one binding offset against the backend's
// reported requirements. A memory size of 0 means the extent is unknown
// (helper-made allocations) and the range check is skipped.
func checkPlacement(op string, i int, memoryDesc rhi.MemoryDesc, offset, memorySize uint64) error {
	if memoryDesc.MustBeDedicated && offset != 0 {
		return errors.Wrapf(rhi.ErrInvalidArgument, "%s: bindings[%d]: a dedicated allocation requires Offset 0", op, i)
	}
	if memoryDesc.Alignment == 0 {
		return errors.Wrapf(rhi.ErrInvalidArgument, "%s: bindings[%d]: the backend reported alignment 0", op, i)
	}
	if offset%uint64(memoryDesc.Alignment) != 0 {
		return errors.Wrapf(rhi.ErrInvalidArgument,
			"%s: bindings[%d].Offset %d is not aligned to %d", op, i, offset, memoryDesc.Alignment)
	}
	if memorySize != 0 {
		if offset > memorySize || memoryDesc.Size > memorySize-offset {
			return errors.Wrapf(rhi.ErrInvalidArgument,
				"%s: bindings[%d]: range [%d, %d) does not fit in memory size %d",
				op, i, offset, offset+memoryDesc.Size, memorySize)
		}
	}
	return nil
}

// FreeMemory releases a memory block. The call is refused while any
// resource is still bound to the block; destroy or rebind the resources
// first. The wrapper stays usable after a refusal.
func (d *Device) FreeMemory(m *Memory) error {
	if m == nil || m.id == rhi.InvalidID {
		return nil
	}
	if m.hasBoundResources() {
		log := d.logger()
		for _, b := range m.buffers {
			log.Warn("rhi: buffer is still bound to the memory being freed", "memory", m.id, "buffer", b.id)
		}
		for _, t := range m.textures {
			log.Warn("rhi: texture is still bound to the memory being freed", "memory", m.id, "texture", t.id)
		}
		for _, a := range m.accelerationStructures {
			log.Warn("rhi: acceleration structure is still bound to the memory being freed", "memory", m.id, "accelerationStructure", a.id)
		}
		return errors.Wrap(rhi.ErrFailure, "FreeMemory: resources are still bound to the memory")
	}
	d.core.FreeMemory(m.id)
	m.id = rhi.InvalidID
	return nil
}
