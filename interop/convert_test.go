// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package interop

import (
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	types "github.com/gogpu/gputypes"

	"github.com/gogpu/rhi"
)

func TestFormatGPUTypesRoundTrip(t *testing.T) {
	formats := []rhi.Format{
		rhi.FormatR8Unorm,
		rhi.FormatRGBA8Unorm,
		rhi.FormatBGRA8Unorm,
		rhi.FormatD24UnormS8UInt,
	}
	for _, f := range formats {
		got := FormatFromGPUTypes(FormatToGPUTypes(f))
		if got != f {
			t.Errorf("round trip of %v = %v", f, got)
		}
	}
}

func TestFormatToGPUTypesUnsupported(t *testing.T) {
	// Formats outside the gputypes surface map to undefined.
	for _, f := range []rhi.Format{rhi.FormatUnknown, rhi.FormatRGBA16SFloat, rhi.FormatBC1RGBAUnorm} {
		if got := FormatToGPUTypes(f); got != gputypes.TextureFormatUndefined {
			t.Errorf("FormatToGPUTypes(%v) = %v, want undefined", f, got)
		}
	}
	if got := FormatFromGPUTypes(gputypes.TextureFormatUndefined); got != rhi.FormatUnknown {
		t.Errorf("FormatFromGPUTypes(undefined) = %v, want FormatUnknown", got)
	}
}

func TestFormatWGPURoundTrip(t *testing.T) {
	formats := []rhi.Format{
		rhi.FormatR8Unorm,
		rhi.FormatRGBA8Unorm,
		rhi.FormatRGBA8SRGB,
		rhi.FormatBGRA8Unorm,
		rhi.FormatBGRA8SRGB,
		rhi.FormatR32SFloat,
		rhi.FormatRG32SFloat,
		rhi.FormatRGBA32SFloat,
		rhi.FormatD24UnormS8UInt,
	}
	for _, f := range formats {
		got := FormatFromWGPU(FormatToWGPU(f))
		if got != f {
			t.Errorf("round trip of %v = %v", f, got)
		}
	}
	if got := FormatToWGPU(rhi.FormatBC7RGBAUnorm); got != types.TextureFormatUndefined {
		t.Errorf("FormatToWGPU(BC7) = %v, want undefined", got)
	}
}

func TestTextureTypeToWGPU(t *testing.T) {
	tests := []struct {
		in   rhi.TextureType
		want types.TextureDimension
	}{
		{rhi.Texture1D, types.TextureDimension1D},
		{rhi.Texture2D, types.TextureDimension2D},
		{rhi.Texture3D, types.TextureDimension3D},
	}
	for _, tt := range tests {
		if got := TextureTypeToWGPU(tt.in); got != tt.want {
			t.Errorf("TextureTypeToWGPU(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTextureUsageToWGPU(t *testing.T) {
	got := TextureUsageToWGPU(rhi.TextureUsageShaderResource)
	if got&types.TextureUsageTextureBinding == 0 {
		t.Error("shader resource usage should map to texture binding")
	}
	// Copy access always comes along.
	if got&types.TextureUsageCopySrc == 0 || got&types.TextureUsageCopyDst == 0 {
		t.Error("converted usage should include copy access")
	}

	got = TextureUsageToWGPU(rhi.TextureUsageShaderResourceStorage)
	if got&types.TextureUsageStorageBinding == 0 {
		t.Error("storage usage should map to storage binding")
	}

	got = TextureUsageToWGPU(rhi.TextureUsageColorAttachment)
	if got&types.TextureUsageRenderAttachment == 0 {
		t.Error("color attachment usage should map to render attachment")
	}

	got = TextureUsageToWGPU(rhi.TextureUsageDepthStencilAttachment)
	if got&types.TextureUsageRenderAttachment == 0 {
		t.Error("depth attachment usage should map to render attachment")
	}
}

// surfaceProvider is a minimal gpucontext.DeviceProvider reporting a fixed
// surface format.
type surfaceProvider struct {
	format gputypes.TextureFormat
}

func (surfaceProvider) Device() gpucontext.Device   { return nil }
func (surfaceProvider) Queue() gpucontext.Queue     { return nil }
func (surfaceProvider) Adapter() gpucontext.Adapter { return nil }

func (surfaceProvider) AdapterInfo() gpucontext.AdapterInfo { return gpucontext.AdapterInfo{} }

func (p surfaceProvider) SurfaceFormat() gputypes.TextureFormat { return p.format }

func TestSurfaceFormatOf(t *testing.T) {
	p := surfaceProvider{format: gputypes.TextureFormatBGRA8Unorm}
	if got := SurfaceFormatOf(p); got != rhi.FormatBGRA8Unorm {
		t.Errorf("SurfaceFormatOf() = %v, want FormatBGRA8Unorm", got)
	}

	if got := SurfaceFormatOf(nil); got != rhi.FormatUnknown {
		t.Errorf("SurfaceFormatOf(nil) = %v, want FormatUnknown", got)
	}

	undef := surfaceProvider{format: gputypes.TextureFormatUndefined}
	if got := SurfaceFormatOf(undef); got != rhi.FormatUnknown {
		t.Errorf("SurfaceFormatOf(undefined) = %v, want FormatUnknown", got)
	}
}
