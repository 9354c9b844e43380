// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package valid

import (
	"github.com/cockroachdb/errors"

	"github.com/gogpu/rhi"
)

// CreateFence creates a timeline fence starting at the given value.
func (d *Device) CreateFence(initialValue uint64) (*Fence, error) {
	id, err := d.core.CreateFence(initialValue)
	if err != nil {
		return nil, err
	}
	return &Fence{id: id}, nil
}

// DestroyFence releases a fence.
func (d *Device) DestroyFence(f *Fence) {
	if f == nil || f.id == rhi.InvalidID {
		return
	}
	d.core.DestroyFence(f.id)
	f.id = rhi.InvalidID
}

// CreateCommandAllocator creates a command allocator recording for the
// given queue.
func (d *Device) CreateCommandAllocator(q *CommandQueue) (*CommandAllocator, error) {
	if q == nil {
		return nil, errors.Wrap(rhi.ErrInvalidArgument, "CreateCommandAllocator: queue is nil")
	}

	id, err := d.core.CreateCommandAllocator(q.id)
	if err != nil {
		return nil, err
	}
	return &CommandAllocator{id: id}, nil
}

// DestroyCommandAllocator releases a command allocator.
func (d *Device) DestroyCommandAllocator(a *CommandAllocator) {
	if a == nil || a.id == rhi.InvalidID {
		return
	}
	d.core.DestroyCommandAllocator(a.id)
	a.id = rhi.InvalidID
}

// CreateCommandBuffer creates a command buffer from an allocator.
func (d *Device) CreateCommandBuffer(a *CommandAllocator) (*CommandBuffer, error) {
	if a == nil {
		return nil, errors.Wrap(rhi.ErrInvalidArgument, "CreateCommandBuffer: allocator is nil")
	}

	id, err := d.core.CreateCommandBuffer(a.id)
	if err != nil {
		return nil, err
	}
	return &CommandBuffer{id: id}, nil
}

// DestroyCommandBuffer releases a command buffer.
func (d *Device) DestroyCommandBuffer(cb *CommandBuffer) {
	if cb == nil || cb.id == rhi.InvalidID {
		return
	}
	d.core.DestroyCommandBuffer(cb.id)
	cb.id = rhi.InvalidID
}
