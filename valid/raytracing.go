// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package valid

import (
	"github.com/cockroachdb/errors"

	"github.com/gogpu/rhi"
)

// RayTracingPipelineDesc describes a ray-tracing pipeline to create. It
// mirrors rhi.RayTracingPipelineDesc with the layout reference as a wrapper.
type RayTracingPipelineDesc struct {
	Layout *PipelineLayout

	ShaderLibrary []rhi.ShaderDesc
	ShaderGroups  []rhi.ShaderGroupDesc

	RecursionDepth   uint32
	PayloadSizeMax   uint32
	AttributeSizeMax uint32
}

// TrianglesDesc describes triangle geometry with buffer references as
// wrappers. Buffers may be nil; geometry data is supplied at build time and
// only counts and formats matter for sizing.
type TrianglesDesc struct {
	VertexBuffer *Buffer
	VertexOffset uint64
	VertexNum    uint32
	VertexStride uint32
	VertexFormat rhi.Format

	IndexBuffer *Buffer
	IndexOffset uint64
	IndexNum    uint32
	IndexType   rhi.IndexType
}

// AABBsDesc describes procedural bounding-box geometry with the buffer
// reference as a wrapper.
type AABBsDesc struct {
	Buffer *Buffer
	Offset uint64
	Num    uint32
	Stride uint32
}

// GeometryDesc is one geometry entry of a bottom-level structure.
type GeometryDesc struct {
	Type      rhi.GeometryType
	Triangles TrianglesDesc
	AABBs     AABBsDesc
}

// AccelerationStructureDesc describes an acceleration structure to create.
type AccelerationStructureDesc struct {
	Type  rhi.AccelerationStructureType
	Flags rhi.AccelerationStructureBits

	InstanceNum uint32
	Geometries  []GeometryDesc
}

// AllocateAccelerationStructureDesc combines an acceleration structure desc
// with allocation parameters.
type AllocateAccelerationStructureDesc struct {
	Location rhi.MemoryLocation
	Priority float32
	Desc     AccelerationStructureDesc
}

// AccelerationStructureMemoryBinding attaches one acceleration structure to
// a region of one memory.
type AccelerationStructureMemoryBinding struct {
	AccelerationStructure *AccelerationStructure
	Memory                *Memory
	Offset                uint64
}

// CreateRayTracingPipeline creates a ray-tracing pipeline. Every library
// shader must occupy exactly one ray-tracing stage, unique in the library.
func (d *Device) CreateRayTracingPipeline(desc RayTracingPipelineDesc) (*Pipeline, error) {
	if !d.caps.RayTracing {
		return nil, errors.Wrap(rhi.ErrUnsupported, "CreateRayTracingPipeline: the backend does not implement ray tracing")
	}
	if desc.Layout == nil {
		return nil, errors.Wrap(rhi.ErrInvalidArgument, "CreateRayTracingPipeline: desc.Layout is nil")
	}
	if len(desc.ShaderLibrary) == 0 {
		return nil, errors.Wrap(rhi.ErrInvalidArgument, "CreateRayTracingPipeline: desc.ShaderLibrary is empty")
	}
	if len(desc.ShaderGroups) == 0 {
		return nil, errors.Wrap(rhi.ErrInvalidArgument, "CreateRayTracingPipeline: desc.ShaderGroups is empty")
	}
	if desc.RecursionDepth == 0 {
		return nil, errors.Wrap(rhi.ErrInvalidArgument, "CreateRayTracingPipeline: desc.RecursionDepth is 0")
	}

	var scan stageScan
	for i, s := range desc.ShaderLibrary {
		if len(s.Bytecode) == 0 {
			return nil, errors.Wrapf(rhi.ErrInvalidArgument, "CreateRayTracingPipeline: desc.ShaderLibrary[%d].Bytecode is empty", i)
		}
		if !scan.scan(s.Stage, rhi.StageRayTracing) {
			return nil, errors.Wrapf(rhi.ErrInvalidArgument,
				"CreateRayTracingPipeline: desc.ShaderLibrary[%d].Stage must occupy exactly one ray-tracing stage, unique for the pipeline", i)
		}
	}

	id, err := d.rayTracing.CreateRayTracingPipeline(rhi.RayTracingPipelineDesc{
		Layout:           desc.Layout.id,
		ShaderLibrary:    desc.ShaderLibrary,
		ShaderGroups:     desc.ShaderGroups,
		RecursionDepth:   desc.RecursionDepth,
		PayloadSizeMax:   desc.PayloadSizeMax,
		AttributeSizeMax: desc.AttributeSizeMax,
	})
	if err != nil {
		return nil, err
	}
	return &Pipeline{id: id}, nil
}

// CreateAccelerationStructure creates an acceleration structure. The
// device-local memory requirements are queried once and cached on the
// wrapper for later binding.
func (d *Device) CreateAccelerationStructure(desc AccelerationStructureDesc) (*AccelerationStructure, error) {
	if !d.caps.RayTracing {
		return nil, errors.Wrap(rhi.ErrUnsupported, "CreateAccelerationStructure: the backend does not implement ray tracing")
	}
	if err := checkAccelerationStructureDesc("CreateAccelerationStructure", desc); err != nil {
		return nil, err
	}

	id, err := d.rayTracing.CreateAccelerationStructure(translateAccelerationStructureDesc(desc))
	if err != nil {
		return nil, err
	}
	memoryDesc, err := d.rayTracing.AccelerationStructureMemoryDesc(id, rhi.MemoryLocationDevice)
	if err != nil {
		d.rayTracing.DestroyAccelerationStructure(id)
		return nil, errors.Wrap(err, "CreateAccelerationStructure: querying memory requirements")
	}
	return &AccelerationStructure{id: id, memoryDesc: memoryDesc}, nil
}

// AllocateAccelerationStructure creates an acceleration structure together
// with its memory. The result arrives bound.
func (d *Device) AllocateAccelerationStructure(desc AllocateAccelerationStructureDesc) (*AccelerationStructure, error) {
	if !d.caps.RayTracing {
		return nil, errors.Wrap(rhi.ErrUnsupported, "AllocateAccelerationStructure: the backend does not implement ray tracing")
	}
	if !desc.Location.Valid() {
		return nil, errors.Wrapf(rhi.ErrInvalidArgument, "AllocateAccelerationStructure: desc.Location %d is invalid", desc.Location)
	}
	if desc.Priority < -1 || desc.Priority > 1 {
		return nil, errors.Wrapf(rhi.ErrInvalidArgument, "AllocateAccelerationStructure: desc.Priority %v is outside [-1, 1]", desc.Priority)
	}
	if err := checkAccelerationStructureDesc("AllocateAccelerationStructure", desc.Desc); err != nil {
		return nil, err
	}

	id, err := d.resAlloc.AllocateAccelerationStructure(rhi.AllocateAccelerationStructureDesc{
		Location: desc.Location,
		Priority: desc.Priority,
		Desc:     translateAccelerationStructureDesc(desc.Desc),
	})
	if err != nil {
		return nil, err
	}
	return &AccelerationStructure{id: id, bound: true}, nil
}

func checkAccelerationStructureDesc(op string, desc AccelerationStructureDesc) error {
	if !desc.Type.Valid() {
		return errors.Wrapf(rhi.ErrInvalidArgument, "%s: desc.Type %d is invalid", op, desc.Type)
	}
	if desc.Type == rhi.AccelerationStructureTopLevel && desc.InstanceNum == 0 {
		return errors.Wrapf(rhi.ErrInvalidArgument, "%s: desc.InstanceNum is 0 for a top-level structure", op)
	}
	if desc.Type == rhi.AccelerationStructureBottomLevel && len(desc.Geometries) == 0 {
		return errors.Wrapf(rhi.ErrInvalidArgument, "%s: desc.Geometries is empty for a bottom-level structure", op)
	}
	return nil
}

func translateAccelerationStructureDesc(desc AccelerationStructureDesc) rhi.AccelerationStructureDesc {
	out := rhi.AccelerationStructureDesc{
		Type:        desc.Type,
		Flags:       desc.Flags,
		InstanceNum: desc.InstanceNum,
	}
	if len(desc.Geometries) > 0 {
		out.Geometries = make([]rhi.GeometryDesc, len(desc.Geometries))
		for i, g := range desc.Geometries {
			out.Geometries[i] = rhi.GeometryDesc{
				Type: g.Type,
				Triangles: rhi.TrianglesDesc{
					VertexBuffer: bufferID(g.Triangles.VertexBuffer),
					VertexOffset: g.Triangles.VertexOffset,
					VertexNum:    g.Triangles.VertexNum,
					VertexStride: g.Triangles.VertexStride,
					VertexFormat: g.Triangles.VertexFormat,
					IndexBuffer:  bufferID(g.Triangles.IndexBuffer),
					IndexOffset:  g.Triangles.IndexOffset,
					IndexNum:     g.Triangles.IndexNum,
					IndexType:    g.Triangles.IndexType,
				},
				AABBs: rhi.AABBsDesc{
					Buffer: bufferID(g.AABBs.Buffer),
					Offset: g.AABBs.Offset,
					Num:    g.AABBs.Num,
					Stride: g.AABBs.Stride,
				},
			}
		}
	}
	return out
}

func bufferID(b *Buffer) rhi.BufferID {
	if b == nil {
		return rhi.InvalidID
	}
	return b.id
}

// AccelerationStructureMemoryDesc reports the memory requirements of an
// acceleration structure for the given location and records the reported
// memory type as living there.
func (d *Device) AccelerationStructureMemoryDesc(a *AccelerationStructure, location rhi.MemoryLocation) (rhi.MemoryDesc, error) {
	if !d.caps.RayTracing {
		return rhi.MemoryDesc{}, errors.Wrap(rhi.ErrUnsupported, "AccelerationStructureMemoryDesc: the backend does not implement ray tracing")
	}
	if a == nil {
		return rhi.MemoryDesc{}, errors.Wrap(rhi.ErrInvalidArgument, "AccelerationStructureMemoryDesc: acceleration structure is nil")
	}
	if !location.Valid() {
		return rhi.MemoryDesc{}, errors.Wrapf(rhi.ErrInvalidArgument, "AccelerationStructureMemoryDesc: location %d is invalid", location)
	}
	desc, err := d.rayTracing.AccelerationStructureMemoryDesc(a.id, location)
	if err != nil {
		return rhi.MemoryDesc{}, err
	}
	d.registerMemoryType(desc.Type, location)
	return desc, nil
}

// BindAccelerationStructureMemory binds acceleration structures to memory
// regions. Placement is checked against the requirements cached at
// creation; imported memory is checked too, against its reported size.
func (d *Device) BindAccelerationStructureMemory(bindings []AccelerationStructureMemoryBinding) error {
	if !d.caps.RayTracing {
		return errors.Wrap(rhi.ErrUnsupported, "BindAccelerationStructureMemory: the backend does not implement ray tracing")
	}
	translated := make([]rhi.AccelerationStructureMemoryBindingDesc, len(bindings))
	for i, b := range bindings {
		if b.AccelerationStructure == nil {
			return errors.Wrapf(rhi.ErrInvalidArgument, "BindAccelerationStructureMemory: bindings[%d].AccelerationStructure is nil", i)
		}
		if b.Memory == nil {
			return errors.Wrapf(rhi.ErrInvalidArgument, "BindAccelerationStructureMemory: bindings[%d].Memory is nil", i)
		}
		if b.AccelerationStructure.bound {
			return errors.Wrapf(rhi.ErrInvalidArgument,
				"BindAccelerationStructureMemory: bindings[%d].AccelerationStructure is already bound to memory", i)
		}
		translated[i] = rhi.AccelerationStructureMemoryBindingDesc{
			AccelerationStructure: b.AccelerationStructure.id,
			Memory:                b.Memory.id,
			Offset:                b.Offset,
		}

		if err := checkPlacement("BindAccelerationStructureMemory", i,
			b.AccelerationStructure.memoryDesc, b.Offset, b.Memory.size); err != nil {
			return err
		}
	}

	if err := d.rayTracing.BindAccelerationStructureMemory(translated); err != nil {
		return err
	}
	for _, b := range bindings {
		b.Memory.bindAccelerationStructure(b.AccelerationStructure)
	}
	return nil
}

// DestroyAccelerationStructure releases an acceleration structure.
func (d *Device) DestroyAccelerationStructure(a *AccelerationStructure) {
	if a == nil || a.id == rhi.InvalidID {
		return
	}
	if a.memory != nil {
		a.memory.unbindAccelerationStructure(a)
		a.memory = nil
	}
	d.rayTracing.DestroyAccelerationStructure(a.id)
	a.id = rhi.InvalidID
}
