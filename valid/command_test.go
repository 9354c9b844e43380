// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package valid

import (
	"errors"
	"testing"

	"github.com/gogpu/rhi"
)

func TestCreateFence(t *testing.T) {
	d, spy := newSpyDevice(t)

	f, err := d.CreateFence(7)
	if err != nil {
		t.Fatalf("CreateFence error = %v", err)
	}
	if f.ID() == rhi.InvalidID {
		t.Error("fence should carry a backend ID")
	}

	d.DestroyFence(f)
	d.DestroyFence(f)
	if spy.calls["DestroyFence"] != 1 {
		t.Errorf("backend DestroyFence called %d times, want 1", spy.calls["DestroyFence"])
	}
}

func TestCreateCommandAllocator(t *testing.T) {
	d, spy := newSpyDevice(t)

	if _, err := d.CreateCommandAllocator(nil); !errors.Is(err, rhi.ErrInvalidArgument) {
		t.Errorf("nil queue error = %v, want ErrInvalidArgument", err)
	}
	if spy.calls["CreateCommandAllocator"] != 0 {
		t.Error("backend must not run for a nil queue")
	}

	q, err := d.Queue(rhi.QueueGraphics)
	if err != nil {
		t.Fatalf("Queue error = %v", err)
	}
	a, err := d.CreateCommandAllocator(q)
	if err != nil {
		t.Fatalf("CreateCommandAllocator error = %v", err)
	}
	if a.ID() == rhi.InvalidID {
		t.Error("allocator should carry a backend ID")
	}
}

func TestCreateCommandBuffer(t *testing.T) {
	d, spy := newSpyDevice(t)

	if _, err := d.CreateCommandBuffer(nil); !errors.Is(err, rhi.ErrInvalidArgument) {
		t.Errorf("nil allocator error = %v, want ErrInvalidArgument", err)
	}
	if spy.calls["CreateCommandBuffer"] != 0 {
		t.Error("backend must not run for a nil allocator")
	}

	q, err := d.Queue(rhi.QueueGraphics)
	if err != nil {
		t.Fatalf("Queue error = %v", err)
	}
	a, err := d.CreateCommandAllocator(q)
	if err != nil {
		t.Fatalf("CreateCommandAllocator error = %v", err)
	}
	cb, err := d.CreateCommandBuffer(a)
	if err != nil {
		t.Fatalf("CreateCommandBuffer error = %v", err)
	}

	d.DestroyCommandBuffer(cb)
	d.DestroyCommandAllocator(a)
	if cb.ID() != rhi.InvalidID || a.ID() != rhi.InvalidID {
		t.Error("destroyed wrappers should hold the invalid ID")
	}
}
