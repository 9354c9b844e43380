// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rhi

// StageBits is a bit-per-shader-stage mask used by pipelines, shaders and
// descriptor ranges to declare applicability.
//
// StageAll is the zero value and means "every stage": descriptor ranges use
// it as a lazy default. A pipeline layout must instead name its stages
// explicitly, since the layout's mask decides the pipeline kind.
type StageBits uint32

// StageAll applies to every stage (lazy default for descriptor ranges).
const StageAll StageBits = 0

// Shader stages.
const (
	// StageIndexInput is the fixed-function index fetch stage.
	StageIndexInput StageBits = 1 << iota

	// StageVertex is the vertex shader stage.
	StageVertex

	// StageTessControl is the tessellation control (hull) stage.
	StageTessControl

	// StageTessEvaluation is the tessellation evaluation (domain) stage.
	StageTessEvaluation

	// StageGeometry is the geometry shader stage.
	StageGeometry

	// StageMeshControl is the mesh task (amplification) stage.
	StageMeshControl

	// StageMeshEvaluation is the mesh shader stage.
	StageMeshEvaluation

	// StageFragment is the fragment (pixel) shader stage.
	StageFragment

	// StageDepthStencilAttachment is the fixed-function depth/stencil stage.
	StageDepthStencilAttachment

	// StageColorAttachment is the fixed-function output-merger stage.
	StageColorAttachment

	// StageCompute is the compute shader stage.
	StageCompute

	// StageRaygen is the ray generation stage.
	StageRaygen

	// StageMiss is the ray miss stage.
	StageMiss

	// StageIntersection is the ray intersection stage.
	StageIntersection

	// StageClosestHit is the ray closest-hit stage.
	StageClosestHit

	// StageAnyHit is the ray any-hit stage.
	StageAnyHit

	// StageCallable is the ray callable stage.
	StageCallable
)

// Composite masks.
const (
	// StageTessellation covers both tessellation stages.
	StageTessellation = StageTessControl | StageTessEvaluation

	// StageMeshShaders covers both mesh pipeline stages.
	StageMeshShaders = StageMeshControl | StageMeshEvaluation

	// StageGraphics covers every programmable graphics stage.
	StageGraphics = StageVertex | StageTessellation | StageGeometry |
		StageMeshShaders | StageFragment

	// StageRayTracing covers every ray-tracing stage.
	StageRayTracing = StageRaygen | StageMiss | StageIntersection |
		StageClosestHit | StageAnyHit | StageCallable
)

// Intersects reports whether any bit of s is present in mask.
func (s StageBits) Intersects(mask StageBits) bool { return s&mask != 0 }

// SubsetOf reports whether every bit of s is present in mask.
func (s StageBits) SubsetOf(mask StageBits) bool { return s&mask == s }
