// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package null_test

import (
	"errors"
	"testing"

	"github.com/gogpu/rhi"
	"github.com/gogpu/rhi/null"
	"github.com/gogpu/rhi/valid"
)

func TestRegistered(t *testing.T) {
	if !rhi.IsRegistered(null.Name) {
		t.Fatal("null backend should be registered on import")
	}

	b, err := rhi.Get(null.Name)
	if err != nil {
		t.Fatalf("Get(null) error = %v", err)
	}
	defer b.Destroy()

	if b.Name() != "null" {
		t.Errorf("Name() = %q, want %q", b.Name(), "null")
	}
}

func TestCaps(t *testing.T) {
	d, err := valid.New(null.New())
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	defer d.Destroy()

	caps := d.Caps()
	if !caps.RayTracing {
		t.Error("RayTracing should be available")
	}
	if !caps.SwapChain {
		t.Error("SwapChain should be available")
	}
	if !caps.LowLatency {
		t.Error("LowLatency should be available")
	}
	if caps.MeshShader {
		t.Error("MeshShader should not be available")
	}
	if !caps.WGPUInterop || !caps.WebGPUInterop || !caps.VulkanInterop {
		t.Errorf("interop areas = %+v, want all available", caps)
	}
}

func TestDeviceDesc(t *testing.T) {
	d := null.New()
	defer d.Destroy()

	desc := d.Desc()
	if desc.Adapter.Name != "null" {
		t.Errorf("Adapter.Name = %q, want %q", desc.Adapter.Name, "null")
	}
	if !desc.Features.TextureFilterMinMax {
		t.Error("TextureFilterMinMax should be reported")
	}
	if desc.Limits.BufferMaxSize == 0 {
		t.Error("BufferMaxSize should be non-zero")
	}
}

func TestQueueHandlesStableAndDistinct(t *testing.T) {
	d := null.New()
	defer d.Destroy()

	seen := make(map[rhi.QueueID]rhi.QueueType)
	for qt := rhi.QueueGraphics; qt.Valid(); qt++ {
		id, err := d.Queue(qt)
		if err != nil {
			t.Fatalf("Queue(%v) error = %v", qt, err)
		}
		if id == rhi.InvalidID {
			t.Errorf("Queue(%v) = invalid ID", qt)
		}
		if prev, ok := seen[id]; ok {
			t.Errorf("Queue(%v) = %d, already handed to %v", qt, id, prev)
		}
		seen[id] = qt

		again, err := d.Queue(qt)
		if err != nil {
			t.Fatalf("Queue(%v) second call error = %v", qt, err)
		}
		if again != id {
			t.Errorf("Queue(%v) = %d then %d, want stable handle", qt, id, again)
		}
	}
}

func TestIDsDistinct(t *testing.T) {
	d := null.New()
	defer d.Destroy()

	b1, _ := d.CreateBuffer(rhi.BufferDesc{Size: 16})
	b2, _ := d.CreateBuffer(rhi.BufferDesc{Size: 16})
	tex, _ := d.CreateTexture(rhi.TextureDesc{
		Type: rhi.Texture2D, Format: rhi.FormatRGBA8Unorm,
		Width: 4, Height: 4, Depth: 1, MipCount: 1, LayerCount: 1, SampleCount: 1,
	})
	fence, _ := d.CreateFence(0)

	ids := []uint64{uint64(b1), uint64(b2), uint64(tex), uint64(fence)}
	seen := make(map[uint64]bool)
	for _, id := range ids {
		if id == rhi.InvalidID {
			t.Fatal("create returned the invalid ID")
		}
		if seen[id] {
			t.Fatalf("ID %d handed out twice", id)
		}
		seen[id] = true
	}
}

func TestMemoryDescQuantum(t *testing.T) {
	d := null.New()
	defer d.Destroy()

	id, err := d.CreateBuffer(rhi.BufferDesc{Size: 100})
	if err != nil {
		t.Fatalf("CreateBuffer error = %v", err)
	}

	desc, err := d.BufferMemoryDesc(id, rhi.MemoryLocationDevice)
	if err != nil {
		t.Fatalf("BufferMemoryDesc error = %v", err)
	}
	if desc.Size != 256 {
		t.Errorf("Size = %d, want 256", desc.Size)
	}
	if desc.Alignment != 256 {
		t.Errorf("Alignment = %d, want 256", desc.Alignment)
	}
	if desc.Type == 0 {
		t.Error("Type should be non-zero")
	}

	// Each location maps to its own memory type.
	types := make(map[rhi.MemoryType]rhi.MemoryLocation)
	for loc := rhi.MemoryLocationDevice; loc.Valid(); loc++ {
		md, err := d.BufferMemoryDesc(id, loc)
		if err != nil {
			t.Fatalf("BufferMemoryDesc(%v) error = %v", loc, err)
		}
		if prev, ok := types[md.Type]; ok {
			t.Errorf("type %d reported for both %v and %v", md.Type, prev, loc)
		}
		types[md.Type] = loc
	}
}

func TestFormatSupport(t *testing.T) {
	d := null.New()
	defer d.Destroy()

	tests := []struct {
		format    rhi.Format
		want      rhi.FormatSupportBits
		wantClear rhi.FormatSupportBits
	}{
		{rhi.FormatRGBA8Unorm, rhi.FormatSupportColorAttachment | rhi.FormatSupportVertexBuffer, rhi.FormatSupportDepthStencilAttachment},
		{rhi.FormatRGB32SFloat, rhi.FormatSupportVertexBuffer, 0},
		{rhi.FormatBC1RGBAUnorm, rhi.FormatSupportTexture, rhi.FormatSupportColorAttachment | rhi.FormatSupportVertexBuffer},
		{rhi.FormatD32SFloat, rhi.FormatSupportDepthStencilAttachment, rhi.FormatSupportColorAttachment},
		{rhi.FormatUnknown, 0, rhi.FormatSupportTexture},
	}
	for _, tt := range tests {
		got := d.FormatSupport(tt.format)
		if got&tt.want != tt.want {
			t.Errorf("FormatSupport(%v) = %b, missing %b", tt.format, got, tt.want)
		}
		if got&tt.wantClear != 0 {
			t.Errorf("FormatSupport(%v) = %b, should not report %b", tt.format, got, tt.wantClear)
		}
	}
}

func TestVideoMemoryUsageTracksAllocations(t *testing.T) {
	d := null.New()
	defer d.Destroy()

	loc := rhi.MemoryLocationDevice
	buf, err := d.CreateBuffer(rhi.BufferDesc{Size: 64})
	if err != nil {
		t.Fatalf("CreateBuffer error = %v", err)
	}
	md, err := d.BufferMemoryDesc(buf, loc)
	if err != nil {
		t.Fatalf("BufferMemoryDesc error = %v", err)
	}

	before, err := d.QueryVideoMemoryInfo(loc)
	if err != nil {
		t.Fatalf("QueryVideoMemoryInfo error = %v", err)
	}

	mem, err := d.AllocateMemory(rhi.AllocateMemoryDesc{Size: 512, Type: md.Type})
	if err != nil {
		t.Fatalf("AllocateMemory error = %v", err)
	}

	during, err := d.QueryVideoMemoryInfo(loc)
	if err != nil {
		t.Fatalf("QueryVideoMemoryInfo error = %v", err)
	}
	if during.UsageSize != before.UsageSize+512 {
		t.Errorf("UsageSize = %d, want %d", during.UsageSize, before.UsageSize+512)
	}
	if during.BudgetSize == 0 {
		t.Error("BudgetSize should be non-zero")
	}

	d.FreeMemory(mem)

	after, err := d.QueryVideoMemoryInfo(loc)
	if err != nil {
		t.Fatalf("QueryVideoMemoryInfo error = %v", err)
	}
	if after.UsageSize != before.UsageSize {
		t.Errorf("UsageSize after free = %d, want %d", after.UsageSize, before.UsageSize)
	}
}

// TestFacadeLifecycle walks the create/query/allocate/bind/free flow
// through the validation facade over the null backend.
func TestFacadeLifecycle(t *testing.T) {
	d, err := valid.New(null.New())
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	defer d.Destroy()

	buf, err := d.CreateBuffer(rhi.BufferDesc{Size: 1000, Usage: rhi.BufferUsageVertex})
	if err != nil {
		t.Fatalf("CreateBuffer error = %v", err)
	}

	md, err := d.BufferMemoryDesc(buf, rhi.MemoryLocationDevice)
	if err != nil {
		t.Fatalf("BufferMemoryDesc error = %v", err)
	}

	mem, err := d.AllocateMemory(rhi.AllocateMemoryDesc{Size: md.Size, Type: md.Type})
	if err != nil {
		t.Fatalf("AllocateMemory error = %v", err)
	}

	err = d.BindBufferMemory([]valid.BufferMemoryBinding{{Buffer: buf, Memory: mem}})
	if err != nil {
		t.Fatalf("BindBufferMemory error = %v", err)
	}

	// The block is occupied; freeing must be refused and the wrapper must
	// survive the refusal.
	if err := d.FreeMemory(mem); !errors.Is(err, rhi.ErrFailure) {
		t.Fatalf("FreeMemory with bound buffer error = %v, want ErrFailure", err)
	}

	d.DestroyBuffer(buf)

	if err := d.FreeMemory(mem); err != nil {
		t.Fatalf("FreeMemory after destroy error = %v", err)
	}
}

// TestFacadeQueue exercises the queue cache over the null backend.
func TestFacadeQueue(t *testing.T) {
	d, err := valid.New(null.New())
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	defer d.Destroy()

	q1, err := d.Queue(rhi.QueueCompute)
	if err != nil {
		t.Fatalf("Queue error = %v", err)
	}
	q2, err := d.Queue(rhi.QueueCompute)
	if err != nil {
		t.Fatalf("Queue second call error = %v", err)
	}
	if q1 != q2 {
		t.Error("Queue should return the cached wrapper")
	}
	if q1.Type() != rhi.QueueCompute {
		t.Errorf("Type() = %v, want %v", q1.Type(), rhi.QueueCompute)
	}
}
