// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package null

import (
	"github.com/gogpu/rhi"
)

func (d *Device) CreateRayTracingPipeline(rhi.RayTracingPipelineDesc) (rhi.PipelineID, error) {
	return rhi.PipelineID(d.newID()), nil
}

func (d *Device) CreateAccelerationStructure(desc rhi.AccelerationStructureDesc) (rhi.AccelerationStructureID, error) {
	id := rhi.AccelerationStructureID(d.newID())
	d.mu.Lock()
	d.structures[id] = desc
	d.mu.Unlock()
	return id, nil
}

// AccelerationStructureMemoryDesc answers with the structure's estimated
// extent rounded to the allocation quantum.
func (d *Device) AccelerationStructureMemoryDesc(id rhi.AccelerationStructureID, loc rhi.MemoryLocation) (rhi.MemoryDesc, error) {
	d.mu.Lock()
	desc := d.structures[id]
	d.mu.Unlock()
	return rhi.MemoryDesc{
		Size:      roundUp(structureSize(desc)),
		Alignment: granularity,
		Type:      memoryType(loc),
	}, nil
}

func (d *Device) BindAccelerationStructureMemory([]rhi.AccelerationStructureMemoryBindingDesc) error {
	return nil
}

func (d *Device) DestroyAccelerationStructure(id rhi.AccelerationStructureID) {
	d.mu.Lock()
	delete(d.structures, id)
	d.mu.Unlock()
}
