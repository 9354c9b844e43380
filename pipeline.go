// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rhi

// DescriptorType classifies what a descriptor range binds.
type DescriptorType uint8

// Descriptor types.
const (
	DescriptorSampler DescriptorType = iota
	DescriptorConstantBuffer
	DescriptorTexture
	DescriptorStorageTexture
	DescriptorBuffer
	DescriptorStorageBuffer
	DescriptorStructuredBuffer
	DescriptorStorageStructuredBuffer
	DescriptorAccelerationStructure

	descriptorTypeCount
)

// Valid reports whether the descriptor type is within the enumerated range.
func (d DescriptorType) Valid() bool { return d < descriptorTypeCount }

// DescriptorRangeBits modifies how a descriptor range is bound.
type DescriptorRangeBits uint8

// Descriptor range flags.
const (
	// DescriptorRangePartiallyBound allows unpopulated slots.
	DescriptorRangePartiallyBound DescriptorRangeBits = 1 << 0

	// DescriptorRangeArray binds the range as a shader-indexable array.
	DescriptorRangeArray DescriptorRangeBits = 1 << 1

	// DescriptorRangeVariableSizedArray lets the set decide the array size.
	// Only meaningful together with DescriptorRangeArray.
	DescriptorRangeVariableSizedArray DescriptorRangeBits = 1 << 2
)

// DescriptorRangeDesc declares a run of same-typed descriptors in a set.
type DescriptorRangeDesc struct {
	// BaseRegisterIndex is the first shader register of the range.
	BaseRegisterIndex uint32

	// DescriptorNum is the number of descriptors. Must be non-zero.
	DescriptorNum uint32

	// DescriptorType is what the range binds.
	DescriptorType DescriptorType

	// ShaderStages is the visibility mask; StageAll means every stage of
	// the owning layout, anything else must be a subset of the layout's
	// stage mask.
	ShaderStages StageBits

	// Flags modify binding behavior.
	Flags DescriptorRangeBits
}

// DescriptorSetDesc declares one descriptor set of a pipeline layout.
type DescriptorSetDesc struct {
	// RegisterSpace is the shader register space of the set.
	RegisterSpace uint32

	// Ranges are the descriptor ranges of the set.
	Ranges []DescriptorRangeDesc
}

// RootConstantDesc declares a push-constant block of a pipeline layout.
type RootConstantDesc struct {
	RegisterIndex uint32

	// Size is the block size in bytes.
	Size uint32

	ShaderStages StageBits
}

// PipelineLayoutDesc describes a pipeline layout to create. ShaderStages
// must select exactly one pipeline kind: graphics stages, compute, or
// ray-tracing stages.
type PipelineLayoutDesc struct {
	DescriptorSets []DescriptorSetDesc
	RootConstants  []RootConstantDesc
	ShaderStages   StageBits
}

// ShaderDesc carries one shader of a pipeline.
type ShaderDesc struct {
	// Stage is the single stage this shader occupies.
	Stage StageBits

	// Bytecode is the shader blob: SPIR-V, or source text for backends that
	// compile at create time. Must be non-empty.
	Bytecode []byte

	// EntryPoint is the entry function; empty selects "main".
	EntryPoint string
}

// Topology selects primitive assembly.
type Topology uint8

// Topologies.
const (
	TopologyPointList Topology = iota
	TopologyLineList
	TopologyLineStrip
	TopologyTriangleList
	TopologyTriangleStrip
	TopologyPatchList

	topologyCount
)

// Valid reports whether the topology is within the enumerated range.
func (t Topology) Valid() bool { return t < topologyCount }

// InputAssemblyDesc configures primitive assembly.
type InputAssemblyDesc struct {
	Topology Topology

	// TessControlPointCount is the patch size for TopologyPatchList.
	TessControlPointCount uint8
}

// FillMode selects polygon rasterization fill.
type FillMode uint8

// Fill modes.
const (
	FillSolid FillMode = iota
	FillWireframe
)

// CullMode selects face culling.
type CullMode uint8

// Cull modes.
const (
	CullNone CullMode = iota
	CullFront
	CullBack
)

// DepthBiasDesc configures depth bias during rasterization.
type DepthBiasDesc struct {
	Constant float32
	Clamp    float32
	Slope    float32
}

// RasterizationDesc configures the rasterizer stage.
type RasterizationDesc struct {
	Fill                  FillMode
	Cull                  CullMode
	FrontCounterClockwise bool
	DepthBias             DepthBiasDesc
	DepthClamp            bool
}

// MultisampleDesc configures multisampling.
type MultisampleDesc struct {
	SampleCount     uint32
	SampleMask      uint32
	AlphaToCoverage bool
}

// ColorWriteBits masks which channels a render target writes.
type ColorWriteBits uint8

// Color write masks.
const (
	ColorWriteR ColorWriteBits = 1 << 0
	ColorWriteG ColorWriteBits = 1 << 1
	ColorWriteB ColorWriteBits = 1 << 2
	ColorWriteA ColorWriteBits = 1 << 3

	ColorWriteAll = ColorWriteR | ColorWriteG | ColorWriteB | ColorWriteA
)

// ColorAttachmentDesc declares one render target of a graphics pipeline.
type ColorAttachmentDesc struct {
	// Format must be a plain color format (Format.IsColor).
	Format Format

	WriteMask    ColorWriteBits
	BlendEnabled bool
}

// OutputMergerDesc declares the attachments a graphics pipeline renders to.
type OutputMergerDesc struct {
	Colors []ColorAttachmentDesc

	// DepthStencilFormat is FormatUnknown when no depth attachment is used.
	DepthStencilFormat Format
}

// VertexStreamStepRate selects per-vertex or per-instance stream advance.
type VertexStreamStepRate uint8

// Step rates.
const (
	StepPerVertex VertexStreamStepRate = iota
	StepPerInstance
)

// VertexAttributeDesc declares one vertex shader input.
type VertexAttributeDesc struct {
	// Location is the shader input location.
	Location uint32

	// Offset is the attribute's byte offset inside one stream element.
	// Offset plus the format's stride must fit the stream's stride.
	Offset uint32

	// Format is the attribute data format.
	Format Format

	// StreamIndex selects the vertex stream feeding this attribute.
	StreamIndex uint16
}

// VertexStreamDesc declares one vertex buffer stream.
type VertexStreamDesc struct {
	// Stride is the byte distance between consecutive elements.
	Stride uint32

	// BindingSlot is the input slot the stream binds to.
	BindingSlot uint16

	// StepRate selects per-vertex or per-instance advance.
	StepRate VertexStreamStepRate
}

// VertexInputDesc declares the vertex fetch layout of a graphics pipeline.
type VertexInputDesc struct {
	Attributes []VertexAttributeDesc
	Streams    []VertexStreamDesc
}

// GraphicsPipelineDesc describes a graphics pipeline to create.
type GraphicsPipelineDesc struct {
	Layout PipelineLayoutID

	// VertexInput is nil for pipelines without vertex fetch (mesh
	// pipelines, full-screen passes).
	VertexInput *VertexInputDesc

	InputAssembly InputAssemblyDesc
	Rasterization RasterizationDesc

	// Multisample is nil for single-sample pipelines.
	Multisample *MultisampleDesc

	OutputMerger OutputMergerDesc

	// Shaders are the pipeline's stages; each stage must appear on exactly
	// one shader, and vertex or mesh-control must be present.
	Shaders []ShaderDesc
}

// ComputePipelineDesc describes a compute pipeline to create.
type ComputePipelineDesc struct {
	Layout PipelineLayoutID

	// Shader must carry exactly StageCompute.
	Shader ShaderDesc
}
