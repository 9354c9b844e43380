// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rhi

// Format specifies the layout of texel or element data.
//
// The enumeration order is load-bearing: plain color formats sit strictly
// between FormatUnknown and FormatBC1RGBAUnorm, block-compressed formats
// follow, and depth/stencil formats come last. IsColor relies on this order
// to express the color-attachment rule as a single range check.
type Format uint8

// Formats.
const (
	// FormatUnknown is the zero value; no format.
	FormatUnknown Format = iota

	// Plain color formats.

	FormatR8Unorm
	FormatR8Snorm
	FormatR8UInt
	FormatR8SInt
	FormatRG8Unorm
	FormatRG8Snorm
	FormatRG8UInt
	FormatRG8SInt
	FormatBGRA8Unorm
	FormatBGRA8SRGB
	FormatRGBA8Unorm
	FormatRGBA8SRGB
	FormatRGBA8Snorm
	FormatRGBA8UInt
	FormatRGBA8SInt
	FormatR16Unorm
	FormatR16Snorm
	FormatR16UInt
	FormatR16SInt
	FormatR16SFloat
	FormatRG16Unorm
	FormatRG16Snorm
	FormatRG16UInt
	FormatRG16SInt
	FormatRG16SFloat
	FormatRGBA16Unorm
	FormatRGBA16Snorm
	FormatRGBA16UInt
	FormatRGBA16SInt
	FormatRGBA16SFloat
	FormatR32UInt
	FormatR32SInt
	FormatR32SFloat
	FormatRG32UInt
	FormatRG32SInt
	FormatRG32SFloat
	FormatRGB32UInt
	FormatRGB32SInt
	FormatRGB32SFloat
	FormatRGBA32UInt
	FormatRGBA32SInt
	FormatRGBA32SFloat
	FormatR10G10B10A2Unorm
	FormatR10G10B10A2UInt
	FormatR11G11B10UFloat
	FormatR9G9B9E5UFloat

	// Block-compressed formats. FormatBC1RGBAUnorm is the boundary used by
	// IsColor; keep it first.

	FormatBC1RGBAUnorm
	FormatBC1RGBASRGB
	FormatBC2RGBAUnorm
	FormatBC2RGBASRGB
	FormatBC3RGBAUnorm
	FormatBC3RGBASRGB
	FormatBC4RUnorm
	FormatBC4RSnorm
	FormatBC5RGUnorm
	FormatBC5RGSnorm
	FormatBC6HRGBUFloat
	FormatBC6HRGBSFloat
	FormatBC7RGBAUnorm
	FormatBC7RGBASRGB

	// Depth/stencil formats.

	FormatD16Unorm
	FormatD24UnormS8UInt
	FormatD32SFloat
	FormatD32SFloatS8UIntX24

	formatCount
)

// Known reports whether f is an enumerated format other than FormatUnknown.
func (f Format) Known() bool { return f > FormatUnknown && f < formatCount }

// IsColor reports whether f is a plain color format, the only kind legal as
// a color attachment. Block-compressed and depth/stencil formats are not.
func (f Format) IsColor() bool { return f > FormatUnknown && f < FormatBC1RGBAUnorm }

// IsDepth reports whether f is a depth/stencil format.
func (f Format) IsDepth() bool { return f >= FormatD16Unorm && f < formatCount }

// Stride returns the byte size of one element for formats usable in vertex
// streams, and 0 for block-compressed and depth/stencil formats.
func (f Format) Stride() uint32 {
	switch f {
	case FormatR8Unorm, FormatR8Snorm, FormatR8UInt, FormatR8SInt:
		return 1
	case FormatRG8Unorm, FormatRG8Snorm, FormatRG8UInt, FormatRG8SInt,
		FormatR16Unorm, FormatR16Snorm, FormatR16UInt, FormatR16SInt, FormatR16SFloat:
		return 2
	case FormatBGRA8Unorm, FormatBGRA8SRGB,
		FormatRGBA8Unorm, FormatRGBA8SRGB, FormatRGBA8Snorm, FormatRGBA8UInt, FormatRGBA8SInt,
		FormatRG16Unorm, FormatRG16Snorm, FormatRG16UInt, FormatRG16SInt, FormatRG16SFloat,
		FormatR32UInt, FormatR32SInt, FormatR32SFloat,
		FormatR10G10B10A2Unorm, FormatR10G10B10A2UInt,
		FormatR11G11B10UFloat, FormatR9G9B9E5UFloat:
		return 4
	case FormatRGBA16Unorm, FormatRGBA16Snorm, FormatRGBA16UInt, FormatRGBA16SInt, FormatRGBA16SFloat,
		FormatRG32UInt, FormatRG32SInt, FormatRG32SFloat:
		return 8
	case FormatRGB32UInt, FormatRGB32SInt, FormatRGB32SFloat:
		return 12
	case FormatRGBA32UInt, FormatRGBA32SInt, FormatRGBA32SFloat:
		return 16
	default:
		return 0
	}
}

// formatNames is indexed by Format.
var formatNames = [...]string{
	"UNKNOWN",
	"R8_UNORM", "R8_SNORM", "R8_UINT", "R8_SINT",
	"RG8_UNORM", "RG8_SNORM", "RG8_UINT", "RG8_SINT",
	"BGRA8_UNORM", "BGRA8_SRGB",
	"RGBA8_UNORM", "RGBA8_SRGB", "RGBA8_SNORM", "RGBA8_UINT", "RGBA8_SINT",
	"R16_UNORM", "R16_SNORM", "R16_UINT", "R16_SINT", "R16_SFLOAT",
	"RG16_UNORM", "RG16_SNORM", "RG16_UINT", "RG16_SINT", "RG16_SFLOAT",
	"RGBA16_UNORM", "RGBA16_SNORM", "RGBA16_UINT", "RGBA16_SINT", "RGBA16_SFLOAT",
	"R32_UINT", "R32_SINT", "R32_SFLOAT",
	"RG32_UINT", "RG32_SINT", "RG32_SFLOAT",
	"RGB32_UINT", "RGB32_SINT", "RGB32_SFLOAT",
	"RGBA32_UINT", "RGBA32_SINT", "RGBA32_SFLOAT",
	"R10_G10_B10_A2_UNORM", "R10_G10_B10_A2_UINT",
	"R11_G11_B10_UFLOAT", "R9_G9_B9_E5_UFLOAT",
	"BC1_RGBA_UNORM", "BC1_RGBA_SRGB",
	"BC2_RGBA_UNORM", "BC2_RGBA_SRGB",
	"BC3_RGBA_UNORM", "BC3_RGBA_SRGB",
	"BC4_R_UNORM", "BC4_R_SNORM",
	"BC5_RG_UNORM", "BC5_RG_SNORM",
	"BC6H_RGB_UFLOAT", "BC6H_RGB_SFLOAT",
	"BC7_RGBA_UNORM", "BC7_RGBA_SRGB",
	"D16_UNORM", "D24_UNORM_S8_UINT", "D32_SFLOAT", "D32_SFLOAT_S8_UINT_X24",
}

// String returns the format's name.
func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "INVALID"
}

// FormatSupportBits reports what a backend can do with a format.
type FormatSupportBits uint32

// Format support flags.
const (
	// FormatSupportTexture indicates sampled texture reads.
	FormatSupportTexture FormatSupportBits = 1 << 0

	// FormatSupportStorageTexture indicates storage texture access.
	FormatSupportStorageTexture FormatSupportBits = 1 << 1

	// FormatSupportColorAttachment indicates render target use.
	FormatSupportColorAttachment FormatSupportBits = 1 << 2

	// FormatSupportDepthStencilAttachment indicates depth/stencil target use.
	FormatSupportDepthStencilAttachment FormatSupportBits = 1 << 3

	// FormatSupportBlend indicates blendable render target use.
	FormatSupportBlend FormatSupportBits = 1 << 4

	// FormatSupportBuffer indicates typed buffer reads.
	FormatSupportBuffer FormatSupportBits = 1 << 5

	// FormatSupportStorageBuffer indicates storage buffer access.
	FormatSupportStorageBuffer FormatSupportBits = 1 << 6

	// FormatSupportVertexBuffer indicates vertex stream fetch.
	FormatSupportVertexBuffer FormatSupportBits = 1 << 7
)
