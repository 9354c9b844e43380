// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package valid

import (
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/gogpu/rhi"
	"github.com/gogpu/rhi/interop"
)

// errBackend is the failure spies inject on demand.
var errBackend = errors.New("backend exploded")

// spyBackend implements the four required feature areas and counts every
// call, so tests can assert exactly which backend entry points ran. The
// optional areas are deliberately absent; fullBackend adds them.
type spyBackend struct {
	lastID uint64
	calls  map[string]int
	fail   map[string]bool // record returns errBackend for these ops

	// Placement answers handed out by the memory-desc queries.
	bufferMemory    rhi.MemoryDesc
	textureMemory   rhi.MemoryDesc
	structureMemory rhi.MemoryDesc

	// Feature bits reported by Desc. Mutate before New; the facade caches
	// the desc at construction.
	features rhi.Features
}

func newSpy() *spyBackend {
	return &spyBackend{
		calls:           make(map[string]int),
		fail:            make(map[string]bool),
		bufferMemory:    rhi.MemoryDesc{Size: 256, Alignment: 16, Type: 1},
		textureMemory:   rhi.MemoryDesc{Size: 4096, Alignment: 256, Type: 2},
		structureMemory: rhi.MemoryDesc{Size: 512, Alignment: 256, Type: 3},
		features:        rhi.Features{TextureFilterMinMax: true},
	}
}

func (s *spyBackend) record(op string) error {
	s.calls[op]++
	if s.fail[op] {
		return errBackend
	}
	return nil
}

func (s *spyBackend) next() uint64 {
	s.lastID++
	return s.lastID
}

func (s *spyBackend) Name() string { return "spy" }

func (s *spyBackend) Destroy() { s.calls["Destroy"]++ }

func (s *spyBackend) Desc() rhi.DeviceDesc {
	return rhi.DeviceDesc{
		Adapter:  rhi.AdapterDesc{Name: "spy adapter"},
		Features: s.features,
	}
}

func (s *spyBackend) FormatSupport(rhi.Format) rhi.FormatSupportBits {
	s.calls["FormatSupport"]++
	return rhi.FormatSupportTexture
}

func (s *spyBackend) Queue(t rhi.QueueType) (rhi.QueueID, error) {
	if err := s.record("Queue"); err != nil {
		return rhi.InvalidID, err
	}
	return rhi.QueueID(t) + 1, nil
}

func (s *spyBackend) CreateBuffer(rhi.BufferDesc) (rhi.BufferID, error) {
	if err := s.record("CreateBuffer"); err != nil {
		return rhi.InvalidID, err
	}
	return rhi.BufferID(s.next()), nil
}

func (s *spyBackend) CreateTexture(rhi.TextureDesc) (rhi.TextureID, error) {
	if err := s.record("CreateTexture"); err != nil {
		return rhi.InvalidID, err
	}
	return rhi.TextureID(s.next()), nil
}

func (s *spyBackend) CreateBufferView(rhi.BufferViewDesc) (rhi.DescriptorID, error) {
	if err := s.record("CreateBufferView"); err != nil {
		return rhi.InvalidID, err
	}
	return rhi.DescriptorID(s.next()), nil
}

func (s *spyBackend) CreateTexture1DView(rhi.Texture1DViewDesc) (rhi.DescriptorID, error) {
	if err := s.record("CreateTexture1DView"); err != nil {
		return rhi.InvalidID, err
	}
	return rhi.DescriptorID(s.next()), nil
}

func (s *spyBackend) CreateTexture2DView(rhi.Texture2DViewDesc) (rhi.DescriptorID, error) {
	if err := s.record("CreateTexture2DView"); err != nil {
		return rhi.InvalidID, err
	}
	return rhi.DescriptorID(s.next()), nil
}

func (s *spyBackend) CreateTexture3DView(rhi.Texture3DViewDesc) (rhi.DescriptorID, error) {
	if err := s.record("CreateTexture3DView"); err != nil {
		return rhi.InvalidID, err
	}
	return rhi.DescriptorID(s.next()), nil
}

func (s *spyBackend) CreateSampler(rhi.SamplerDesc) (rhi.DescriptorID, error) {
	if err := s.record("CreateSampler"); err != nil {
		return rhi.InvalidID, err
	}
	return rhi.DescriptorID(s.next()), nil
}

func (s *spyBackend) CreatePipelineLayout(rhi.PipelineLayoutDesc) (rhi.PipelineLayoutID, error) {
	if err := s.record("CreatePipelineLayout"); err != nil {
		return rhi.InvalidID, err
	}
	return rhi.PipelineLayoutID(s.next()), nil
}

func (s *spyBackend) CreateGraphicsPipeline(rhi.GraphicsPipelineDesc) (rhi.PipelineID, error) {
	if err := s.record("CreateGraphicsPipeline"); err != nil {
		return rhi.InvalidID, err
	}
	return rhi.PipelineID(s.next()), nil
}

func (s *spyBackend) CreateComputePipeline(rhi.ComputePipelineDesc) (rhi.PipelineID, error) {
	if err := s.record("CreateComputePipeline"); err != nil {
		return rhi.InvalidID, err
	}
	return rhi.PipelineID(s.next()), nil
}

func (s *spyBackend) CreateDescriptorPool(rhi.DescriptorPoolDesc) (rhi.DescriptorPoolID, error) {
	if err := s.record("CreateDescriptorPool"); err != nil {
		return rhi.InvalidID, err
	}
	return rhi.DescriptorPoolID(s.next()), nil
}

func (s *spyBackend) CreateQueryPool(rhi.QueryPoolDesc) (rhi.QueryPoolID, error) {
	if err := s.record("CreateQueryPool"); err != nil {
		return rhi.InvalidID, err
	}
	return rhi.QueryPoolID(s.next()), nil
}

func (s *spyBackend) CreateFence(uint64) (rhi.FenceID, error) {
	if err := s.record("CreateFence"); err != nil {
		return rhi.InvalidID, err
	}
	return rhi.FenceID(s.next()), nil
}

func (s *spyBackend) CreateCommandAllocator(rhi.QueueID) (rhi.CommandAllocatorID, error) {
	if err := s.record("CreateCommandAllocator"); err != nil {
		return rhi.InvalidID, err
	}
	return rhi.CommandAllocatorID(s.next()), nil
}

func (s *spyBackend) CreateCommandBuffer(rhi.CommandAllocatorID) (rhi.CommandBufferID, error) {
	if err := s.record("CreateCommandBuffer"); err != nil {
		return rhi.InvalidID, err
	}
	return rhi.CommandBufferID(s.next()), nil
}

func (s *spyBackend) BufferMemoryDesc(rhi.BufferID, rhi.MemoryLocation) (rhi.MemoryDesc, error) {
	if err := s.record("BufferMemoryDesc"); err != nil {
		return rhi.MemoryDesc{}, err
	}
	return s.bufferMemory, nil
}

func (s *spyBackend) TextureMemoryDesc(rhi.TextureID, rhi.MemoryLocation) (rhi.MemoryDesc, error) {
	if err := s.record("TextureMemoryDesc"); err != nil {
		return rhi.MemoryDesc{}, err
	}
	return s.textureMemory, nil
}

func (s *spyBackend) AllocateMemory(rhi.AllocateMemoryDesc) (rhi.MemoryID, error) {
	if err := s.record("AllocateMemory"); err != nil {
		return rhi.InvalidID, err
	}
	return rhi.MemoryID(s.next()), nil
}

func (s *spyBackend) BindBufferMemory([]rhi.BufferMemoryBindingDesc) error {
	return s.record("BindBufferMemory")
}

func (s *spyBackend) BindTextureMemory([]rhi.TextureMemoryBindingDesc) error {
	return s.record("BindTextureMemory")
}

func (s *spyBackend) FreeMemory(rhi.MemoryID) { s.calls["FreeMemory"]++ }

func (s *spyBackend) DestroyBuffer(rhi.BufferID) { s.calls["DestroyBuffer"]++ }

func (s *spyBackend) DestroyTexture(rhi.TextureID) { s.calls["DestroyTexture"]++ }

func (s *spyBackend) DestroyDescriptor(rhi.DescriptorID) { s.calls["DestroyDescriptor"]++ }

func (s *spyBackend) DestroyPipeline(rhi.PipelineID) { s.calls["DestroyPipeline"]++ }

func (s *spyBackend) DestroyPipelineLayout(rhi.PipelineLayoutID) { s.calls["DestroyPipelineLayout"]++ }

func (s *spyBackend) DestroyQueryPool(rhi.QueryPoolID) { s.calls["DestroyQueryPool"]++ }

func (s *spyBackend) DestroyFence(rhi.FenceID) { s.calls["DestroyFence"]++ }

func (s *spyBackend) DestroyCommandAllocator(rhi.CommandAllocatorID) {
	s.calls["DestroyCommandAllocator"]++
}

func (s *spyBackend) DestroyCommandBuffer(rhi.CommandBufferID) { s.calls["DestroyCommandBuffer"]++ }

func (s *spyBackend) DestroyDescriptorPool(rhi.DescriptorPoolID) { s.calls["DestroyDescriptorPool"]++ }

func (s *spyBackend) CalculateAllocationNumber(g rhi.ResourceGroupDesc) (uint32, error) {
	if err := s.record("CalculateAllocationNumber"); err != nil {
		return 0, err
	}
	return uint32(len(g.Buffers) + len(g.Textures)), nil
}

func (s *spyBackend) AllocateAndBindMemory(g rhi.ResourceGroupDesc) ([]rhi.MemoryID, error) {
	if err := s.record("AllocateAndBindMemory"); err != nil {
		return nil, err
	}
	ids := make([]rhi.MemoryID, len(g.Buffers)+len(g.Textures))
	for i := range ids {
		ids[i] = rhi.MemoryID(s.next())
	}
	return ids, nil
}

func (s *spyBackend) QueryVideoMemoryInfo(rhi.MemoryLocation) (rhi.VideoMemoryInfo, error) {
	if err := s.record("QueryVideoMemoryInfo"); err != nil {
		return rhi.VideoMemoryInfo{}, err
	}
	return rhi.VideoMemoryInfo{BudgetSize: 1 << 30, UsageSize: 512}, nil
}

func (s *spyBackend) CreateStreamer(rhi.StreamerDesc) (rhi.StreamerID, error) {
	if err := s.record("CreateStreamer"); err != nil {
		return rhi.InvalidID, err
	}
	return rhi.StreamerID(s.next()), nil
}

func (s *spyBackend) DestroyStreamer(rhi.StreamerID) { s.calls["DestroyStreamer"]++ }

func (s *spyBackend) AllocateBuffer(rhi.AllocateBufferDesc) (rhi.BufferID, error) {
	if err := s.record("AllocateBuffer"); err != nil {
		return rhi.InvalidID, err
	}
	return rhi.BufferID(s.next()), nil
}

func (s *spyBackend) AllocateTexture(rhi.AllocateTextureDesc) (rhi.TextureID, error) {
	if err := s.record("AllocateTexture"); err != nil {
		return rhi.InvalidID, err
	}
	return rhi.TextureID(s.next()), nil
}

func (s *spyBackend) AllocateAccelerationStructure(rhi.AllocateAccelerationStructureDesc) (rhi.AccelerationStructureID, error) {
	if err := s.record("AllocateAccelerationStructure"); err != nil {
		return rhi.InvalidID, err
	}
	return rhi.AccelerationStructureID(s.next()), nil
}

// fullBackend is a spyBackend with every optional area on top, mesh
// shaders and interop included.
type fullBackend struct {
	*spyBackend
}

func newFull() *fullBackend {
	return &fullBackend{spyBackend: newSpy()}
}

func (f *fullBackend) CreateRayTracingPipeline(rhi.RayTracingPipelineDesc) (rhi.PipelineID, error) {
	if err := f.record("CreateRayTracingPipeline"); err != nil {
		return rhi.InvalidID, err
	}
	return rhi.PipelineID(f.next()), nil
}

func (f *fullBackend) CreateAccelerationStructure(rhi.AccelerationStructureDesc) (rhi.AccelerationStructureID, error) {
	if err := f.record("CreateAccelerationStructure"); err != nil {
		return rhi.InvalidID, err
	}
	return rhi.AccelerationStructureID(f.next()), nil
}

func (f *fullBackend) AccelerationStructureMemoryDesc(rhi.AccelerationStructureID, rhi.MemoryLocation) (rhi.MemoryDesc, error) {
	if err := f.record("AccelerationStructureMemoryDesc"); err != nil {
		return rhi.MemoryDesc{}, err
	}
	return f.structureMemory, nil
}

func (f *fullBackend) BindAccelerationStructureMemory([]rhi.AccelerationStructureMemoryBindingDesc) error {
	return f.record("BindAccelerationStructureMemory")
}

func (f *fullBackend) DestroyAccelerationStructure(rhi.AccelerationStructureID) {
	f.calls["DestroyAccelerationStructure"]++
}

func (f *fullBackend) CreateSwapChain(rhi.SwapChainDesc) (rhi.SwapChainID, error) {
	if err := f.record("CreateSwapChain"); err != nil {
		return rhi.InvalidID, err
	}
	return rhi.SwapChainID(f.next()), nil
}

func (f *fullBackend) DestroySwapChain(rhi.SwapChainID) { f.calls["DestroySwapChain"]++ }

func (f *fullBackend) SetLatencySleepMode(rhi.SwapChainID, rhi.LatencySleepMode) error {
	return f.record("SetLatencySleepMode")
}

func (f *fullBackend) DrawMeshTasks(rhi.CommandBufferID, uint32, uint32, uint32) {
	f.calls["DrawMeshTasks"]++
}

func (f *fullBackend) ImportWGPUBuffer(interop.WGPUBufferDesc) (rhi.BufferID, error) {
	if err := f.record("ImportWGPUBuffer"); err != nil {
		return rhi.InvalidID, err
	}
	return rhi.BufferID(f.next()), nil
}

func (f *fullBackend) ImportWGPUTexture(interop.WGPUTextureDesc) (rhi.TextureID, error) {
	if err := f.record("ImportWGPUTexture"); err != nil {
		return rhi.InvalidID, err
	}
	return rhi.TextureID(f.next()), nil
}

func (f *fullBackend) ImportWebGPUBuffer(interop.WebGPUBufferDesc) (rhi.BufferID, error) {
	if err := f.record("ImportWebGPUBuffer"); err != nil {
		return rhi.InvalidID, err
	}
	return rhi.BufferID(f.next()), nil
}

func (f *fullBackend) ImportWebGPUTexture(interop.WebGPUTextureDesc) (rhi.TextureID, error) {
	if err := f.record("ImportWebGPUTexture"); err != nil {
		return rhi.InvalidID, err
	}
	return rhi.TextureID(f.next()), nil
}

func (f *fullBackend) ImportVulkanBuffer(interop.VulkanBufferDesc) (rhi.BufferID, error) {
	if err := f.record("ImportVulkanBuffer"); err != nil {
		return rhi.InvalidID, err
	}
	return rhi.BufferID(f.next()), nil
}

func (f *fullBackend) ImportVulkanTexture(interop.VulkanTextureDesc) (rhi.TextureID, error) {
	if err := f.record("ImportVulkanTexture"); err != nil {
		return rhi.InvalidID, err
	}
	return rhi.TextureID(f.next()), nil
}

func (f *fullBackend) ImportVulkanMemory(interop.VulkanMemoryDesc) (rhi.MemoryID, error) {
	if err := f.record("ImportVulkanMemory"); err != nil {
		return rhi.InvalidID, err
	}
	return rhi.MemoryID(f.next()), nil
}

// newSpyDevice wraps a fresh spy in a facade.
func newSpyDevice(t *testing.T, opts ...Option) (*Device, *spyBackend) {
	t.Helper()
	spy := newSpy()
	d, err := New(spy, opts...)
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	return d, spy
}

// newFullDevice wraps a fresh full backend in a facade.
func newFullDevice(t *testing.T, opts ...Option) (*Device, *fullBackend) {
	t.Helper()
	full := newFull()
	d, err := New(full, opts...)
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	return d, full
}

// mustCreateBuffer creates a buffer the test assumes to be fine.
func mustCreateBuffer(t *testing.T, d *Device, size uint64) *Buffer {
	t.Helper()
	b, err := d.CreateBuffer(rhi.BufferDesc{Size: size})
	if err != nil {
		t.Fatalf("CreateBuffer error = %v", err)
	}
	return b
}

// mustAllocate queries the buffer placement for the location, then
// allocates a block of exactly that size, so the memory type is known to
// the device.
func mustAllocate(t *testing.T, d *Device, spyMem rhi.MemoryDesc, loc rhi.MemoryLocation) *Memory {
	t.Helper()
	b := mustCreateBuffer(t, d, 16)
	if _, err := d.BufferMemoryDesc(b, loc); err != nil {
		t.Fatalf("BufferMemoryDesc error = %v", err)
	}
	m, err := d.AllocateMemory(rhi.AllocateMemoryDesc{Size: spyMem.Size, Type: spyMem.Type})
	if err != nil {
		t.Fatalf("AllocateMemory error = %v", err)
	}
	d.DestroyBuffer(b)
	return m
}
