// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rhi

// AccelerationStructureType selects the level of an acceleration structure.
type AccelerationStructureType uint8

// Acceleration structure types.
const (
	// AccelerationStructureTopLevel holds instances of bottom-level
	// structures.
	AccelerationStructureTopLevel AccelerationStructureType = iota

	// AccelerationStructureBottomLevel holds geometry.
	AccelerationStructureBottomLevel

	accelerationStructureTypeCount
)

// Valid reports whether the type is within the enumerated range.
func (t AccelerationStructureType) Valid() bool { return t < accelerationStructureTypeCount }

// AccelerationStructureBits tune the build strategy.
type AccelerationStructureBits uint8

// Acceleration structure flags.
const (
	// AccelerationStructureAllowUpdate permits incremental rebuilds.
	AccelerationStructureAllowUpdate AccelerationStructureBits = 1 << 0

	// AccelerationStructureAllowCompaction permits compacting copies.
	AccelerationStructureAllowCompaction AccelerationStructureBits = 1 << 1

	// AccelerationStructurePreferFastTrace optimizes for trace speed.
	AccelerationStructurePreferFastTrace AccelerationStructureBits = 1 << 2

	// AccelerationStructurePreferFastBuild optimizes for build speed.
	AccelerationStructurePreferFastBuild AccelerationStructureBits = 1 << 3
)

// GeometryType selects the geometry kind of a bottom-level entry.
type GeometryType uint8

// Geometry types.
const (
	// GeometryTriangles is an indexed or plain triangle mesh.
	GeometryTriangles GeometryType = iota

	// GeometryAABBs is a set of procedural bounding boxes.
	GeometryAABBs

	geometryTypeCount
)

// Valid reports whether the geometry type is within the enumerated range.
func (t GeometryType) Valid() bool { return t < geometryTypeCount }

// IndexType selects the width of index buffer entries.
type IndexType uint8

// Index types.
const (
	IndexUint16 IndexType = iota
	IndexUint32
)

// TrianglesDesc describes triangle geometry for a bottom-level structure.
type TrianglesDesc struct {
	// VertexBuffer holds the vertex positions.
	VertexBuffer BufferID
	VertexOffset uint64
	VertexNum    uint32
	VertexStride uint32
	VertexFormat Format

	// IndexBuffer is InvalidID for non-indexed geometry.
	IndexBuffer BufferID
	IndexOffset uint64
	IndexNum    uint32
	IndexType   IndexType
}

// AABBsDesc describes procedural bounding-box geometry.
type AABBsDesc struct {
	// Buffer holds packed min/max corner pairs.
	Buffer BufferID
	Offset uint64
	Num    uint32
	Stride uint32
}

// GeometryDesc is one geometry entry of a bottom-level structure. The field
// matching Type is the active one.
type GeometryDesc struct {
	Type      GeometryType
	Triangles TrianglesDesc
	AABBs     AABBsDesc
}

// AccelerationStructureDesc describes an acceleration structure to create.
type AccelerationStructureDesc struct {
	Type  AccelerationStructureType
	Flags AccelerationStructureBits

	// InstanceNum is the instance capacity of a top-level structure.
	InstanceNum uint32

	// Geometries are the entries of a bottom-level structure.
	Geometries []GeometryDesc
}

// ShaderGroupDesc maps a ray-tracing shader group to the pipeline's shader
// library. Indices are one-based; 0 marks an unused slot.
type ShaderGroupDesc struct {
	ShaderIndices [3]uint32
}

// RayTracingPipelineDesc describes a ray-tracing pipeline to create.
type RayTracingPipelineDesc struct {
	Layout PipelineLayoutID

	// ShaderLibrary is the pipeline's shader collection; every entry must
	// occupy exactly one distinct ray-tracing stage.
	ShaderLibrary []ShaderDesc

	// ShaderGroups map dispatchable groups onto the library.
	ShaderGroups []ShaderGroupDesc

	// RecursionDepth is the maximum trace recursion. Must be non-zero.
	RecursionDepth uint32

	// PayloadSizeMax and AttributeSizeMax bound the per-ray payload and
	// hit attributes in bytes.
	PayloadSizeMax   uint32
	AttributeSizeMax uint32
}
