// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rhi

// SwapChainFormat selects the color space and bit depth of presentable
// textures. The backend picks the closest native format.
type SwapChainFormat uint8

// Swap chain formats.
const (
	// SwapChainBT709G10 is scRGB, 16 bit linear.
	SwapChainBT709G10 SwapChainFormat = iota

	// SwapChainBT709G22 is sRGB, 8 bit gamma 2.2.
	SwapChainBT709G22

	// SwapChainBT709G22_10Bit is sRGB, 10 bit gamma 2.2.
	SwapChainBT709G22_10Bit

	// SwapChainBT2020G2084 is HDR10, 10 bit PQ.
	SwapChainBT2020G2084

	swapChainFormatCount
)

// Valid reports whether the format is within the enumerated range.
func (f SwapChainFormat) Valid() bool { return f < swapChainFormatCount }

// Window is a native window reference. Exactly one platform's fields are
// set; the zero value means headless.
type Window struct {
	// Win32HWND is the window handle on Windows.
	Win32HWND uintptr

	// X11Display and X11Window reference an X11 window.
	X11Display uintptr
	X11Window  uint64

	// WaylandDisplay and WaylandSurface reference a Wayland surface.
	WaylandDisplay uintptr
	WaylandSurface uintptr

	// MetalLayer is a CAMetalLayer pointer on Apple platforms.
	MetalLayer uintptr
}

// SwapChainDesc describes a swap chain to create.
type SwapChainDesc struct {
	// Window is the presentation target.
	Window Window

	// Queue is the queue presentation happens on.
	Queue QueueID

	// Width and Height are the surface extents in pixels. Must be non-zero.
	Width  uint32
	Height uint32

	// TextureCount is the number of presentable textures. Must be non-zero.
	TextureCount uint32

	// Format selects color space and bit depth.
	Format SwapChainFormat

	// AllowLowLatency opts into low-latency pacing; requires the backend's
	// low-latency area.
	AllowLowLatency bool
}

// LatencySleepMode configures the low-latency frame pacing of a swap chain.
type LatencySleepMode struct {
	// MinIntervalUS is the minimum frame interval in microseconds; 0 means
	// no cap.
	MinIntervalUS uint32

	// LowLatencyMode enables latency reduction.
	LowLatencyMode bool

	// LowLatencyBoost requests extra GPU clocks for latency.
	LowLatencyBoost bool
}

// StreamerDesc describes a streamer: a helper that suballocates transient
// upload space and shuttles data to device-local resources.
type StreamerDesc struct {
	// ConstantBufferLocation is where the per-frame constant ring lives.
	ConstantBufferLocation MemoryLocation

	// ConstantBufferSize is the ring capacity in bytes.
	ConstantBufferSize uint64

	// DynamicBufferLocation is where the growable upload pool lives.
	DynamicBufferLocation MemoryLocation

	// DynamicBufferUsage declares how dynamic suballocations are consumed.
	DynamicBufferUsage BufferUsageBits
}
