// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rhi

// TextureType selects the dimensionality of a texture.
type TextureType uint8

// Texture types.
const (
	// Texture1D is a one-dimensional texture.
	Texture1D TextureType = iota

	// Texture2D is a two-dimensional texture.
	Texture2D

	// Texture3D is a volume texture.
	Texture3D

	textureTypeCount
)

// Valid reports whether the texture type is within the enumerated range.
func (t TextureType) Valid() bool { return t < textureTypeCount }

// BufferDesc describes a buffer to create.
type BufferDesc struct {
	// Size is the buffer size in bytes. Must be non-zero.
	Size uint64

	// StructureStride is the element stride for structured views, or 0.
	StructureStride uint32

	// Usage declares every way the buffer will be used.
	Usage BufferUsageBits
}

// TextureDesc describes a texture to create.
type TextureDesc struct {
	// Type is the texture dimensionality.
	Type TextureType

	// Format is the texel format. Must be a known format.
	Format Format

	// Width, Height and Depth are the extents in texels. Height is 1 for 1D
	// textures, Depth is 1 unless Type is Texture3D.
	Width  uint32
	Height uint32
	Depth  uint32

	// MipCount is the number of mip levels. Bounded by MaxMipCount of the
	// extents.
	MipCount uint32

	// LayerCount is the number of array layers. Must be non-zero.
	LayerCount uint32

	// SampleCount is the multisample count. Must be non-zero.
	SampleCount uint32

	// Usage declares every way the texture will be used.
	Usage TextureUsageBits
}

// MaxMipCount returns the largest legal mip count for the given extents:
// the number of times the largest dimension halves until every dimension
// reaches 1, plus one for the base level.
func MaxMipCount(width, height, depth uint32) uint32 {
	n := uint32(1)
	for width > 1 || height > 1 || depth > 1 {
		width = max(width/2, 1)
		height = max(height/2, 1)
		depth = max(depth/2, 1)
		n++
	}
	return n
}

// BufferViewType selects how a buffer view is accessed by shaders.
type BufferViewType uint8

// Buffer view types.
const (
	// BufferViewShaderResource is a read-only shader view.
	BufferViewShaderResource BufferViewType = iota

	// BufferViewShaderResourceStorage is a read-write shader view.
	BufferViewShaderResourceStorage

	// BufferViewConstant is a constant (uniform) view.
	BufferViewConstant

	bufferViewTypeCount
)

// Valid reports whether the view type is within the enumerated range.
func (t BufferViewType) Valid() bool { return t < bufferViewTypeCount }

// TextureViewType selects how a texture view is accessed.
type TextureViewType uint8

// Texture view types.
const (
	// TextureViewShaderResource is a read-only shader view.
	TextureViewShaderResource TextureViewType = iota

	// TextureViewShaderResourceStorage is a read-write shader view.
	TextureViewShaderResourceStorage

	// TextureViewColorAttachment is a render target view.
	TextureViewColorAttachment

	// TextureViewDepthStencilAttachment is a depth/stencil target view.
	TextureViewDepthStencilAttachment

	textureViewTypeCount
)

// Valid reports whether the view type is within the enumerated range.
func (t TextureViewType) Valid() bool { return t < textureViewTypeCount }

// BufferViewDesc describes a view over a byte range of a buffer.
type BufferViewDesc struct {
	// Buffer is the parent buffer.
	Buffer BufferID

	// ViewType selects the access kind.
	ViewType BufferViewType

	// Format is the element format for typed views, FormatUnknown for raw
	// constant views.
	Format Format

	// Offset is the first byte of the view. Must lie strictly inside the
	// parent buffer.
	Offset uint64

	// Size is the view size in bytes; 0 means "to the end of the buffer".
	// Offset+Size must not exceed the parent's size.
	Size uint64
}

// Texture1DViewDesc describes a view over a 1D texture's mips and layers.
type Texture1DViewDesc struct {
	Texture     TextureID
	ViewType    TextureViewType
	Format      Format
	MipOffset   uint32
	MipCount    uint32
	LayerOffset uint32
	LayerCount  uint32
}

// Texture2DViewDesc describes a view over a 2D texture's mips and layers.
type Texture2DViewDesc struct {
	Texture     TextureID
	ViewType    TextureViewType
	Format      Format
	MipOffset   uint32
	MipCount    uint32
	LayerOffset uint32
	LayerCount  uint32
}

// Texture3DViewDesc describes a view over a 3D texture's mips and depth
// slices.
type Texture3DViewDesc struct {
	Texture     TextureID
	ViewType    TextureViewType
	Format      Format
	MipOffset   uint32
	MipCount    uint32
	SliceOffset uint32
	SliceCount  uint32
}

// Filter selects a texel filtering mode.
type Filter uint8

// Filters.
const (
	// FilterNearest selects nearest-neighbor filtering.
	FilterNearest Filter = iota

	// FilterLinear selects linear interpolation.
	FilterLinear

	filterCount
)

// Valid reports whether the filter is within the enumerated range.
func (f Filter) Valid() bool { return f < filterCount }

// FilterExt selects an extended reduction mode applied on top of the base
// filter. Anything other than FilterExtNone requires the device's
// TextureFilterMinMax feature.
type FilterExt uint8

// Extended filters.
const (
	// FilterExtNone applies no reduction.
	FilterExtNone FilterExt = iota

	// FilterExtMin reduces fetched texels to their minimum.
	FilterExtMin

	// FilterExtMax reduces fetched texels to their maximum.
	FilterExtMax

	filterExtCount
)

// Valid reports whether the extended filter is within the enumerated range.
func (f FilterExt) Valid() bool { return f < filterExtCount }

// AddressMode selects how out-of-range texture coordinates are resolved.
type AddressMode uint8

// Address modes.
const (
	// AddressModeRepeat wraps coordinates.
	AddressModeRepeat AddressMode = iota

	// AddressModeMirroredRepeat wraps with mirroring.
	AddressModeMirroredRepeat

	// AddressModeClampToEdge clamps to the edge texel.
	AddressModeClampToEdge

	// AddressModeClampToBorder clamps to the border color.
	AddressModeClampToBorder

	addressModeCount
)

// Valid reports whether the address mode is within the enumerated range.
func (m AddressMode) Valid() bool { return m < addressModeCount }

// CompareFunc selects a comparison for depth tests and comparison samplers.
type CompareFunc uint8

// Compare functions.
const (
	// CompareFuncNone disables comparison.
	CompareFuncNone CompareFunc = iota

	CompareFuncAlways
	CompareFuncNever
	CompareFuncLess
	CompareFuncLessEqual
	CompareFuncEqual
	CompareFuncGreaterEqual
	CompareFuncGreater
	CompareFuncNotEqual

	compareFuncCount
)

// Valid reports whether the compare function is within the enumerated range.
func (c CompareFunc) Valid() bool { return c < compareFuncCount }

// BorderColor selects the texel returned by AddressModeClampToBorder.
type BorderColor uint8

// Border colors.
const (
	BorderColorTransparentBlack BorderColor = iota
	BorderColorOpaqueBlack
	BorderColorOpaqueWhite

	borderColorCount
)

// Valid reports whether the border color is within the enumerated range.
func (b BorderColor) Valid() bool { return b < borderColorCount }

// SamplerFilters groups the per-axis filtering modes of a sampler.
type SamplerFilters struct {
	Min Filter
	Mag Filter
	Mip Filter

	// Ext is the reduction mode; FilterExtNone unless the device reports
	// the TextureFilterMinMax feature.
	Ext FilterExt
}

// SamplerAddressModes groups the per-coordinate address modes of a sampler.
type SamplerAddressModes struct {
	U AddressMode
	V AddressMode
	W AddressMode
}

// SamplerDesc describes a sampler to create. Every enumerated field must be
// within its range.
type SamplerDesc struct {
	Filters      SamplerFilters
	Anisotropy   uint8
	MipBias      float32
	MipMin       float32
	MipMax       float32
	AddressModes SamplerAddressModes
	CompareFunc  CompareFunc
	BorderColor  BorderColor

	// IsInteger selects an integer border color interpretation.
	IsInteger bool
}

// QueryType selects what a query pool measures.
type QueryType uint8

// Query types.
const (
	// QueryTimestamp records queue timestamps.
	QueryTimestamp QueryType = iota

	// QueryOcclusion counts passing samples.
	QueryOcclusion

	// QueryPipelineStatistics records pipeline counters.
	QueryPipelineStatistics

	// QueryAccelerationStructureSize records compacted acceleration
	// structure sizes.
	QueryAccelerationStructureSize

	queryTypeCount
)

// Valid reports whether the query type is within the enumerated range.
func (q QueryType) Valid() bool { return q < queryTypeCount }

// QueryPoolDesc describes a query pool to create.
type QueryPoolDesc struct {
	// Type is what each query records.
	Type QueryType

	// Capacity is the number of queries in the pool. Must be non-zero.
	Capacity uint32
}

// DescriptorPoolDesc describes a descriptor pool to create. The per-type
// capacities bound what descriptor sets allocated from the pool may hold.
type DescriptorPoolDesc struct {
	// DescriptorSetMaxNum is the number of sets the pool can serve.
	// Must be non-zero.
	DescriptorSetMaxNum uint32

	SamplerMaxNum               uint32
	ConstantBufferMaxNum        uint32
	TextureMaxNum               uint32
	StorageTextureMaxNum        uint32
	BufferMaxNum                uint32
	StorageBufferMaxNum         uint32
	StructuredBufferMaxNum      uint32
	AccelerationStructureMaxNum uint32
}
