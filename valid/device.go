// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package valid

import (
	"log/slog"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/gogpu/rhi"
	"github.com/gogpu/rhi/interop"
)

// Caps reports which optional feature areas the wrapped backend implements.
// Facade methods belonging to an absent area fail with rhi.ErrUnsupported.
type Caps struct {
	LowLatency bool
	MeshShader bool
	RayTracing bool
	SwapChain  bool

	WGPUInterop   bool
	WebGPUInterop bool
	VulkanInterop bool
}

// Device is the validation facade over one backend. All client calls go
// through it; see the package documentation for the contract.
type Device struct {
	backend rhi.Backend
	log     *slog.Logger

	core      rhi.Core
	helper    rhi.Helper
	streamer  rhi.Streamer
	resAlloc  rhi.ResourceAllocator

	// Optional areas, nil when the backend lacks them.
	rayTracing rhi.RayTracing
	swapChain  rhi.SwapChain
	lowLatency rhi.LowLatency
	meshShader rhi.MeshShader
	wgpu       interop.WGPU
	webGPU     interop.WebGPU
	vulkan     interop.Vulkan

	caps Caps
	desc rhi.DeviceDesc

	wgslValidation bool

	// mu guards memoryTypes and queues. It is never held across a backend
	// call.
	mu          sync.Mutex
	memoryTypes map[rhi.MemoryType]rhi.MemoryLocation
	queues      [rhi.QueueTypeCount]*CommandQueue
}

// New wraps backend in a validation facade.
//
// The four required feature areas (rhi.Core, rhi.Helper, rhi.Streamer,
// rhi.ResourceAllocator) must all be implemented; a missing one fails
// construction with rhi.ErrUnsupported and no partial device is returned.
// Optional areas are probed independently and reported through Caps.
func New(backend rhi.Backend, opts ...Option) (*Device, error) {
	if backend == nil {
		return nil, errors.Wrap(rhi.ErrInvalidArgument, "New: backend is nil")
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	core, ok := backend.(rhi.Core)
	if !ok {
		return nil, errors.Wrapf(rhi.ErrUnsupported, "New: backend %q does not implement rhi.Core", backend.Name())
	}
	helper, ok := backend.(rhi.Helper)
	if !ok {
		return nil, errors.Wrapf(rhi.ErrUnsupported, "New: backend %q does not implement rhi.Helper", backend.Name())
	}
	streamer, ok := backend.(rhi.Streamer)
	if !ok {
		return nil, errors.Wrapf(rhi.ErrUnsupported, "New: backend %q does not implement rhi.Streamer", backend.Name())
	}
	resAlloc, ok := backend.(rhi.ResourceAllocator)
	if !ok {
		return nil, errors.Wrapf(rhi.ErrUnsupported, "New: backend %q does not implement rhi.ResourceAllocator", backend.Name())
	}

	d := &Device{
		backend:        backend,
		log:            o.logger,
		core:           core,
		helper:         helper,
		streamer:       streamer,
		resAlloc:       resAlloc,
		desc:           core.Desc(),
		wgslValidation: o.wgslValidation,
		memoryTypes:    make(map[rhi.MemoryType]rhi.MemoryLocation),
	}

	if a, ok := backend.(rhi.RayTracing); ok {
		d.rayTracing = a
		d.caps.RayTracing = true
	}
	if a, ok := backend.(rhi.SwapChain); ok {
		d.swapChain = a
		d.caps.SwapChain = true
	}
	if a, ok := backend.(rhi.LowLatency); ok {
		d.lowLatency = a
		d.caps.LowLatency = true
	}
	if a, ok := backend.(rhi.MeshShader); ok {
		d.meshShader = a
		d.caps.MeshShader = true
	}
	if a, ok := backend.(interop.WGPU); ok {
		d.wgpu = a
		d.caps.WGPUInterop = true
	}
	if a, ok := backend.(interop.WebGPU); ok {
		d.webGPU = a
		d.caps.WebGPUInterop = true
	}
	if a, ok := backend.(interop.Vulkan); ok {
		d.vulkan = a
		d.caps.VulkanInterop = true
	}

	d.logger().Info("rhi: device validation enabled",
		slog.String("backend", backend.Name()),
		slog.String("adapter", d.desc.Adapter.Name),
		slog.Bool("rayTracing", d.caps.RayTracing),
		slog.Bool("swapChain", d.caps.SwapChain),
		slog.Bool("lowLatency", d.caps.LowLatency),
		slog.Bool("meshShader", d.caps.MeshShader))

	return d, nil
}

// logger returns the device logger, falling back to the package logger so
// rhi.SetLogger takes effect without reconstructing devices.
func (d *Device) logger() *slog.Logger {
	if d.log != nil {
		return d.log
	}
	return rhi.Logger()
}

// Backend returns the wrapped backend.
func (d *Device) Backend() rhi.Backend { return d.backend }

// Caps returns the optional feature areas the backend implements.
func (d *Device) Caps() Caps { return d.caps }

// Desc returns the device description cached at construction.
func (d *Device) Desc() rhi.DeviceDesc { return d.desc }

// FormatSupport reports what the backend can do with a format.
func (d *Device) FormatSupport(f rhi.Format) rhi.FormatSupportBits {
	return d.core.FormatSupport(f)
}

// Destroy drops the cached queue wrappers and tears the backend down. The
// device must not be used afterwards.
func (d *Device) Destroy() {
	if d.backend == nil {
		return
	}
	d.mu.Lock()
	for i := range d.queues {
		d.queues[i] = nil
	}
	d.mu.Unlock()

	d.logger().Info("rhi: device destroyed", slog.String("backend", d.backend.Name()))
	d.backend.Destroy()
	d.backend = nil
}

// Queue returns the device queue of the given type. The wrapper is created
// on first retrieval and cached; later calls return the same wrapper.
func (d *Device) Queue(t rhi.QueueType) (*CommandQueue, error) {
	if !t.Valid() {
		return nil, errors.Wrapf(rhi.ErrInvalidArgument, "Queue: type %d is invalid", t)
	}

	d.mu.Lock()
	if q := d.queues[t]; q != nil {
		d.mu.Unlock()
		return q, nil
	}
	d.mu.Unlock()

	id, err := d.core.Queue(t)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if q := d.queues[t]; q != nil {
		return q, nil
	}
	q := &CommandQueue{id: id, queueType: t}
	d.queues[t] = q
	return q, nil
}

// RegisterMemoryType records that a backend memory type belongs to a
// location. Memory-desc queries register types automatically; this is for
// types discovered out of band.
func (d *Device) RegisterMemoryType(t rhi.MemoryType, loc rhi.MemoryLocation) error {
	if !loc.Valid() {
		return errors.Wrapf(rhi.ErrInvalidArgument, "RegisterMemoryType: location %d is invalid", loc)
	}
	d.registerMemoryType(t, loc)
	return nil
}

func (d *Device) registerMemoryType(t rhi.MemoryType, loc rhi.MemoryLocation) {
	d.mu.Lock()
	d.memoryTypes[t] = loc
	d.mu.Unlock()
}

func (d *Device) lookupMemoryType(t rhi.MemoryType) (rhi.MemoryLocation, bool) {
	d.mu.Lock()
	loc, ok := d.memoryTypes[t]
	d.mu.Unlock()
	return loc, ok
}

// BufferMemoryDesc reports the placement requirement of a buffer for one
// memory location. The reported memory type is registered against the
// location for later AllocateMemory validation.
func (d *Device) BufferMemoryDesc(b *Buffer, loc rhi.MemoryLocation) (rhi.MemoryDesc, error) {
	if b == nil {
		return rhi.MemoryDesc{}, errors.Wrap(rhi.ErrInvalidArgument, "BufferMemoryDesc: buffer is nil")
	}
	if !loc.Valid() {
		return rhi.MemoryDesc{}, errors.Wrapf(rhi.ErrInvalidArgument, "BufferMemoryDesc: location %d is invalid", loc)
	}

	desc, err := d.core.BufferMemoryDesc(b.id, loc)
	if err != nil {
		return rhi.MemoryDesc{}, err
	}
	d.registerMemoryType(desc.Type, loc)
	return desc, nil
}

// TextureMemoryDesc reports the placement requirement of a texture for one
// memory location, registering the reported type like BufferMemoryDesc.
func (d *Device) TextureMemoryDesc(t *Texture, loc rhi.MemoryLocation) (rhi.MemoryDesc, error) {
	if t == nil {
		return rhi.MemoryDesc{}, errors.Wrap(rhi.ErrInvalidArgument, "TextureMemoryDesc: texture is nil")
	}
	if !loc.Valid() {
		return rhi.MemoryDesc{}, errors.Wrapf(rhi.ErrInvalidArgument, "TextureMemoryDesc: location %d is invalid", loc)
	}

	desc, err := d.core.TextureMemoryDesc(t.id, loc)
	if err != nil {
		return rhi.MemoryDesc{}, err
	}
	d.registerMemoryType(desc.Type, loc)
	return desc, nil
}

// QueryVideoMemoryInfo reports the current budget for a memory location.
func (d *Device) QueryVideoMemoryInfo(loc rhi.MemoryLocation) (rhi.VideoMemoryInfo, error) {
	if !loc.Valid() {
		return rhi.VideoMemoryInfo{}, errors.Wrapf(rhi.ErrInvalidArgument, "QueryVideoMemoryInfo: location %d is invalid", loc)
	}
	return d.helper.QueryVideoMemoryInfo(loc)
}
