// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package valid

import (
	"github.com/cockroachdb/errors"

	"github.com/gogpu/rhi"
)

// CreateBuffer creates an unbound buffer. The buffer must be attached to
// memory through BindBufferMemory before use.
func (d *Device) CreateBuffer(desc rhi.BufferDesc) (*Buffer, error) {
	if desc.Size == 0 {
		return nil, errors.Wrap(rhi.ErrInvalidArgument, "CreateBuffer: desc.Size is 0")
	}

	id, err := d.core.CreateBuffer(desc)
	if err != nil {
		return nil, err
	}
	return &Buffer{id: id, desc: desc}, nil
}

// AllocateBuffer creates a buffer placed in backend-managed memory. The
// returned buffer is already bound.
func (d *Device) AllocateBuffer(desc rhi.AllocateBufferDesc) (*Buffer, error) {
	if !desc.Location.Valid() {
		return nil, errors.Wrapf(rhi.ErrInvalidArgument, "AllocateBuffer: desc.Location %d is invalid", desc.Location)
	}
	if desc.Priority < -1 || desc.Priority > 1 {
		return nil, errors.Wrapf(rhi.ErrInvalidArgument, "AllocateBuffer: desc.Priority %v outside [-1, 1]", desc.Priority)
	}
	if desc.Desc.Size == 0 {
		return nil, errors.Wrap(rhi.ErrInvalidArgument, "AllocateBuffer: desc.Desc.Size is 0")
	}

	id, err := d.resAlloc.AllocateBuffer(desc)
	if err != nil {
		return nil, err
	}
	return &Buffer{id: id, desc: desc.Desc, bound: true}, nil
}

// DestroyBuffer releases a buffer. A bound buffer is unregistered from its
// memory first, so a later FreeMemory no longer counts it.
func (d *Device) DestroyBuffer(b *Buffer) {
	if b == nil || b.id == rhi.InvalidID {
		return
	}
	if b.memory != nil {
		b.memory.unbindBuffer(b)
		b.memory = nil
	}
	d.core.DestroyBuffer(b.id)
	b.id = rhi.InvalidID
}
