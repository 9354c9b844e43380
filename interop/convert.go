// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package interop

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	types "github.com/gogpu/gputypes"

	"github.com/gogpu/rhi"
)

// FormatToGPUTypes maps a format to its gputypes equivalent, or
// TextureFormatUndefined when the ecosystem type has no counterpart.
func FormatToGPUTypes(f rhi.Format) gputypes.TextureFormat {
	switch f {
	case rhi.FormatR8Unorm:
		return gputypes.TextureFormatR8Unorm
	case rhi.FormatRGBA8Unorm:
		return gputypes.TextureFormatRGBA8Unorm
	case rhi.FormatBGRA8Unorm:
		return gputypes.TextureFormatBGRA8Unorm
	case rhi.FormatD24UnormS8UInt:
		return gputypes.TextureFormatDepth24PlusStencil8
	default:
		return gputypes.TextureFormatUndefined
	}
}

// FormatFromGPUTypes is the inverse of FormatToGPUTypes.
func FormatFromGPUTypes(f gputypes.TextureFormat) rhi.Format {
	switch f {
	case gputypes.TextureFormatR8Unorm:
		return rhi.FormatR8Unorm
	case gputypes.TextureFormatRGBA8Unorm:
		return rhi.FormatRGBA8Unorm
	case gputypes.TextureFormatBGRA8Unorm:
		return rhi.FormatBGRA8Unorm
	case gputypes.TextureFormatDepth24PlusStencil8:
		return rhi.FormatD24UnormS8UInt
	default:
		return rhi.FormatUnknown
	}
}

// FormatToWGPU maps a format to its driver-level equivalent, or
// TextureFormatUndefined when the driver type has no counterpart.
func FormatToWGPU(f rhi.Format) types.TextureFormat {
	switch f {
	case rhi.FormatR8Unorm:
		return types.TextureFormatR8Unorm
	case rhi.FormatRGBA8Unorm:
		return types.TextureFormatRGBA8Unorm
	case rhi.FormatRGBA8SRGB:
		return types.TextureFormatRGBA8UnormSrgb
	case rhi.FormatBGRA8Unorm:
		return types.TextureFormatBGRA8Unorm
	case rhi.FormatBGRA8SRGB:
		return types.TextureFormatBGRA8UnormSrgb
	case rhi.FormatR32SFloat:
		return types.TextureFormatR32Float
	case rhi.FormatRG32SFloat:
		return types.TextureFormatRG32Float
	case rhi.FormatRGBA32SFloat:
		return types.TextureFormatRGBA32Float
	case rhi.FormatD24UnormS8UInt:
		return types.TextureFormatDepth24PlusStencil8
	default:
		return types.TextureFormatUndefined
	}
}

// FormatFromWGPU is the inverse of FormatToWGPU.
func FormatFromWGPU(f types.TextureFormat) rhi.Format {
	switch f {
	case types.TextureFormatR8Unorm:
		return rhi.FormatR8Unorm
	case types.TextureFormatRGBA8Unorm:
		return rhi.FormatRGBA8Unorm
	case types.TextureFormatRGBA8UnormSrgb:
		return rhi.FormatRGBA8SRGB
	case types.TextureFormatBGRA8Unorm:
		return rhi.FormatBGRA8Unorm
	case types.TextureFormatBGRA8UnormSrgb:
		return rhi.FormatBGRA8SRGB
	case types.TextureFormatR32Float:
		return rhi.FormatR32SFloat
	case types.TextureFormatRG32Float:
		return rhi.FormatRG32SFloat
	case types.TextureFormatRGBA32Float:
		return rhi.FormatRGBA32SFloat
	case types.TextureFormatDepth24PlusStencil8:
		return rhi.FormatD24UnormS8UInt
	default:
		return rhi.FormatUnknown
	}
}

// TextureTypeToWGPU maps a texture dimensionality to the driver enum.
func TextureTypeToWGPU(t rhi.TextureType) types.TextureDimension {
	switch t {
	case rhi.Texture1D:
		return types.TextureDimension1D
	case rhi.Texture3D:
		return types.TextureDimension3D
	default:
		return types.TextureDimension2D
	}
}

// TextureUsageToWGPU maps usage flags to the driver usage mask. Copy access
// is always granted; the driver needs it for upload and readback paths.
func TextureUsageToWGPU(u rhi.TextureUsageBits) types.TextureUsage {
	usage := types.TextureUsageCopySrc | types.TextureUsageCopyDst
	if u&rhi.TextureUsageShaderResource != 0 {
		usage |= types.TextureUsageTextureBinding
	}
	if u&rhi.TextureUsageShaderResourceStorage != 0 {
		usage |= types.TextureUsageStorageBinding
	}
	if u&(rhi.TextureUsageColorAttachment|rhi.TextureUsageDepthStencilAttachment) != 0 {
		usage |= types.TextureUsageRenderAttachment
	}
	return usage
}

// SurfaceFormatOf reports the presentable format of a host-provided device
// as an rhi format. Hosts that render through the gogpu context stack pass
// their gpucontext.DeviceProvider here to line swap chain formats up with
// the surface.
func SurfaceFormatOf(p gpucontext.DeviceProvider) rhi.Format {
	if p == nil {
		return rhi.FormatUnknown
	}
	return FormatFromGPUTypes(p.SurfaceFormat())
}
