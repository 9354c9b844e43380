// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package valid

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/gogpu/naga"

	"github.com/gogpu/rhi"
)

// GraphicsPipelineDesc describes a graphics pipeline to create. It mirrors
// rhi.GraphicsPipelineDesc with the layout reference as a wrapper.
type GraphicsPipelineDesc struct {
	Layout *PipelineLayout

	// VertexInput is nil for pipelines without vertex fetch.
	VertexInput *rhi.VertexInputDesc

	InputAssembly rhi.InputAssemblyDesc
	Rasterization rhi.RasterizationDesc

	// Multisample is nil for single-sample pipelines.
	Multisample *rhi.MultisampleDesc

	OutputMerger rhi.OutputMergerDesc

	Shaders []rhi.ShaderDesc
}

// ComputePipelineDesc describes a compute pipeline to create.
type ComputePipelineDesc struct {
	Layout *PipelineLayout
	Shader rhi.ShaderDesc
}

// CreatePipelineLayout creates a pipeline layout. The stage mask must name
// exactly one pipeline kind: graphics stages, compute, or ray-tracing
// stages.
func (d *Device) CreatePipelineLayout(desc rhi.PipelineLayoutDesc) (*PipelineLayout, error) {
	isGraphics := desc.ShaderStages.Intersects(rhi.StageGraphics)
	isCompute := desc.ShaderStages.Intersects(rhi.StageCompute)
	isRayTracing := desc.ShaderStages.Intersects(rhi.StageRayTracing)

	kinds := 0
	for _, is := range []bool{isGraphics, isCompute, isRayTracing} {
		if is {
			kinds++
		}
	}

	if desc.ShaderStages == rhi.StageAll {
		return nil, errors.Wrap(rhi.ErrInvalidArgument, "CreatePipelineLayout: desc.ShaderStages names no stages")
	}
	if kinds == 0 {
		return nil, errors.Wrap(rhi.ErrInvalidArgument, "CreatePipelineLayout: desc.ShaderStages includes no shader stages")
	}
	if kinds > 1 {
		return nil, errors.Wrap(rhi.ErrInvalidArgument,
			"CreatePipelineLayout: desc.ShaderStages is compatible with more than one pipeline kind")
	}

	for i, set := range desc.DescriptorSets {
		for j, r := range set.Ranges {
			if r.Flags&rhi.DescriptorRangeVariableSizedArray != 0 && r.Flags&rhi.DescriptorRangeArray == 0 {
				return nil, errors.Wrapf(rhi.ErrInvalidArgument,
					"CreatePipelineLayout: desc.DescriptorSets[%d].Ranges[%d]: a variable-sized range must also be an array", i, j)
			}
			if r.DescriptorNum == 0 {
				return nil, errors.Wrapf(rhi.ErrInvalidArgument,
					"CreatePipelineLayout: desc.DescriptorSets[%d].Ranges[%d].DescriptorNum is 0", i, j)
			}
			if !r.DescriptorType.Valid() {
				return nil, errors.Wrapf(rhi.ErrInvalidArgument,
					"CreatePipelineLayout: desc.DescriptorSets[%d].Ranges[%d].DescriptorType %d is invalid", i, j, r.DescriptorType)
			}
			if r.ShaderStages != rhi.StageAll && !r.ShaderStages.SubsetOf(desc.ShaderStages) {
				return nil, errors.Wrapf(rhi.ErrInvalidArgument,
					"CreatePipelineLayout: desc.DescriptorSets[%d].Ranges[%d].ShaderStages is not compatible with desc.ShaderStages", i, j)
			}
		}
	}

	id, err := d.core.CreatePipelineLayout(desc)
	if err != nil {
		return nil, err
	}
	return &PipelineLayout{id: id, desc: desc}, nil
}

// CreateGraphicsPipeline creates a graphics pipeline. Each shader must
// occupy exactly one graphics stage enabled in the layout, no stage may
// repeat, and a vertex or mesh-control shader must be present.
func (d *Device) CreateGraphicsPipeline(desc GraphicsPipelineDesc) (*Pipeline, error) {
	if desc.Layout == nil {
		return nil, errors.Wrap(rhi.ErrInvalidArgument, "CreateGraphicsPipeline: desc.Layout is nil")
	}
	if len(desc.Shaders) == 0 {
		return nil, errors.Wrap(rhi.ErrInvalidArgument, "CreateGraphicsPipeline: desc.Shaders is empty")
	}

	layoutStages := desc.Layout.desc.ShaderStages
	hasEntryPoint := false
	var scan stageScan
	for i, s := range desc.Shaders {
		if s.Stage == rhi.StageVertex || s.Stage == rhi.StageMeshControl {
			hasEntryPoint = true
		}

		if !s.Stage.Intersects(layoutStages) {
			return nil, errors.Wrapf(rhi.ErrInvalidArgument,
				"CreateGraphicsPipeline: desc.Shaders[%d].Stage is not enabled in the pipeline layout", i)
		}
		if len(s.Bytecode) == 0 {
			return nil, errors.Wrapf(rhi.ErrInvalidArgument, "CreateGraphicsPipeline: desc.Shaders[%d].Bytecode is empty", i)
		}
		if !scan.scan(s.Stage, rhi.StageGraphics) {
			return nil, errors.Wrapf(rhi.ErrInvalidArgument,
				"CreateGraphicsPipeline: desc.Shaders[%d].Stage must occupy exactly one graphics stage, unique for the pipeline", i)
		}
		if s.Stage.Intersects(rhi.StageMeshShaders) && !d.caps.MeshShader {
			return nil, errors.Wrapf(rhi.ErrUnsupported,
				"CreateGraphicsPipeline: desc.Shaders[%d] uses mesh stages the backend does not implement", i)
		}
		if err := d.prevalidateShader("CreateGraphicsPipeline", fmt.Sprintf("desc.Shaders[%d]", i), s); err != nil {
			return nil, err
		}
	}
	if !hasEntryPoint {
		return nil, errors.Wrap(rhi.ErrInvalidArgument, "CreateGraphicsPipeline: a vertex or mesh-control shader is required")
	}

	for i, c := range desc.OutputMerger.Colors {
		if !c.Format.IsColor() {
			return nil, errors.Wrapf(rhi.ErrInvalidArgument,
				"CreateGraphicsPipeline: desc.OutputMerger.Colors[%d].Format %v is not a color format", i, c.Format)
		}
	}

	if desc.VertexInput != nil {
		for i, a := range desc.VertexInput.Attributes {
			if int(a.StreamIndex) >= len(desc.VertexInput.Streams) {
				return nil, errors.Wrapf(rhi.ErrInvalidArgument,
					"CreateGraphicsPipeline: desc.VertexInput.Attributes[%d].StreamIndex %d out of range of %d streams",
					i, a.StreamIndex, len(desc.VertexInput.Streams))
			}
			stride := desc.VertexInput.Streams[a.StreamIndex].Stride
			if uint64(a.Offset)+uint64(a.Format.Stride()) > uint64(stride) {
				return nil, errors.Wrapf(rhi.ErrInvalidArgument,
					"CreateGraphicsPipeline: desc.VertexInput.Attributes[%d] is out of bounds of stream %d (stride %d)",
					i, a.StreamIndex, stride)
			}
		}
	}

	id, err := d.core.CreateGraphicsPipeline(rhi.GraphicsPipelineDesc{
		Layout:        desc.Layout.id,
		VertexInput:   desc.VertexInput,
		InputAssembly: desc.InputAssembly,
		Rasterization: desc.Rasterization,
		Multisample:   desc.Multisample,
		OutputMerger:  desc.OutputMerger,
		Shaders:       desc.Shaders,
	})
	if err != nil {
		return nil, err
	}
	return &Pipeline{id: id}, nil
}

// CreateComputePipeline creates a compute pipeline.
func (d *Device) CreateComputePipeline(desc ComputePipelineDesc) (*Pipeline, error) {
	if desc.Layout == nil {
		return nil, errors.Wrap(rhi.ErrInvalidArgument, "CreateComputePipeline: desc.Layout is nil")
	}
	if len(desc.Shader.Bytecode) == 0 {
		return nil, errors.Wrap(rhi.ErrInvalidArgument, "CreateComputePipeline: desc.Shader.Bytecode is empty")
	}
	if desc.Shader.Stage != rhi.StageCompute {
		return nil, errors.Wrap(rhi.ErrInvalidArgument, "CreateComputePipeline: desc.Shader.Stage must be exactly StageCompute")
	}
	if err := d.prevalidateShader("CreateComputePipeline", "desc.Shader", desc.Shader); err != nil {
		return nil, err
	}

	id, err := d.core.CreateComputePipeline(rhi.ComputePipelineDesc{
		Layout: desc.Layout.id,
		Shader: desc.Shader,
	})
	if err != nil {
		return nil, err
	}
	return &Pipeline{id: id}, nil
}

// prevalidateShader routes non-SPIR-V bytecode through the naga WGSL
// compiler when WithWGSLValidation is set. The compiled output is
// discarded; the backend still receives the original bytecode.
func (d *Device) prevalidateShader(op, field string, s rhi.ShaderDesc) error {
	if !d.wgslValidation || isSPIRV(s.Bytecode) {
		return nil
	}
	if _, err := naga.Compile(string(s.Bytecode)); err != nil {
		return errors.Mark(errors.Wrapf(err, "%s: %s: WGSL rejected", op, field), rhi.ErrInvalidArgument)
	}
	return nil
}

// DestroyPipeline releases a pipeline.
func (d *Device) DestroyPipeline(p *Pipeline) {
	if p == nil || p.id == rhi.InvalidID {
		return
	}
	d.core.DestroyPipeline(p.id)
	p.id = rhi.InvalidID
}

// DestroyPipelineLayout releases a pipeline layout.
func (d *Device) DestroyPipelineLayout(p *PipelineLayout) {
	if p == nil || p.id == rhi.InvalidID {
		return
	}
	d.core.DestroyPipelineLayout(p.id)
	p.id = rhi.InvalidID
}
