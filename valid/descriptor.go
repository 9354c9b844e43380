// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package valid

import (
	"github.com/cockroachdb/errors"

	"github.com/gogpu/rhi"
)

// BufferViewDesc describes a view over a byte range of a buffer. Size 0
// means "to the end of the buffer"; FormatUnknown is legal for raw views.
type BufferViewDesc struct {
	Buffer   *Buffer
	ViewType rhi.BufferViewType
	Format   rhi.Format
	Offset   uint64
	Size     uint64
}

// Texture1DViewDesc describes a view over a 1D texture's mips and layers.
type Texture1DViewDesc struct {
	Texture     *Texture
	ViewType    rhi.TextureViewType
	Format      rhi.Format
	MipOffset   uint32
	MipCount    uint32
	LayerOffset uint32
	LayerCount  uint32
}

// Texture2DViewDesc describes a view over a 2D texture's mips and layers.
type Texture2DViewDesc struct {
	Texture     *Texture
	ViewType    rhi.TextureViewType
	Format      rhi.Format
	MipOffset   uint32
	MipCount    uint32
	LayerOffset uint32
	LayerCount  uint32
}

// Texture3DViewDesc describes a view over a 3D texture's mips and depth
// slices.
type Texture3DViewDesc struct {
	Texture     *Texture
	ViewType    rhi.TextureViewType
	Format      rhi.Format
	MipOffset   uint32
	MipCount    uint32
	SliceOffset uint32
	SliceCount  uint32
}

// CreateBufferView creates a descriptor viewing a byte range of a buffer.
func (d *Device) CreateBufferView(desc BufferViewDesc) (*Descriptor, error) {
	if desc.Buffer == nil {
		return nil, errors.Wrap(rhi.ErrInvalidArgument, "CreateBufferView: desc.Buffer is nil")
	}
	if desc.Format != rhi.FormatUnknown && !desc.Format.Known() {
		return nil, errors.Wrapf(rhi.ErrInvalidArgument, "CreateBufferView: desc.Format %d is invalid", desc.Format)
	}
	if !desc.ViewType.Valid() {
		return nil, errors.Wrapf(rhi.ErrInvalidArgument, "CreateBufferView: desc.ViewType %d is invalid", desc.ViewType)
	}

	size := desc.Buffer.desc.Size
	if !nests(desc.Offset, desc.Size, size) {
		return nil, errors.Wrapf(rhi.ErrInvalidArgument,
			"CreateBufferView: range [%d, %d) does not nest in buffer size %d", desc.Offset, desc.Offset+desc.Size, size)
	}

	id, err := d.core.CreateBufferView(rhi.BufferViewDesc{
		Buffer:   desc.Buffer.id,
		ViewType: desc.ViewType,
		Format:   desc.Format,
		Offset:   desc.Offset,
		Size:     desc.Size,
	})
	if err != nil {
		return nil, err
	}
	return &Descriptor{id: id}, nil
}

// checkTextureView validates the constraints common to all texture view
// kinds. layerOffset/layerCount nest in layerCapacity, which is the layer
// count for 1D/2D views and the depth for 3D views.
func checkTextureView(op string, t *Texture, viewType rhi.TextureViewType, format rhi.Format,
	mipOffset, mipCount, layerOffset, layerCount, layerCapacity uint32) error {

	if t == nil {
		return errors.Wrapf(rhi.ErrInvalidArgument, "%s: desc.Texture is nil", op)
	}
	if !viewType.Valid() {
		return errors.Wrapf(rhi.ErrInvalidArgument, "%s: desc.ViewType %d is invalid", op, viewType)
	}
	if !format.Known() {
		return errors.Wrapf(rhi.ErrInvalidArgument, "%s: desc.Format %d is invalid", op, format)
	}
	if !nests(uint64(mipOffset), uint64(mipCount), uint64(t.desc.MipCount)) {
		return errors.Wrapf(rhi.ErrInvalidArgument,
			"%s: mips [%d, %d) do not nest in texture's %d mips", op, mipOffset, mipOffset+mipCount, t.desc.MipCount)
	}
	if !nests(uint64(layerOffset), uint64(layerCount), uint64(layerCapacity)) {
		return errors.Wrapf(rhi.ErrInvalidArgument,
			"%s: layers [%d, %d) do not nest in texture's %d", op, layerOffset, layerOffset+layerCount, layerCapacity)
	}
	return nil
}

// CreateTexture1DView creates a descriptor viewing a 1D texture.
func (d *Device) CreateTexture1DView(desc Texture1DViewDesc) (*Descriptor, error) {
	err := checkTextureView("CreateTexture1DView", desc.Texture, desc.ViewType, desc.Format,
		desc.MipOffset, desc.MipCount, desc.LayerOffset, desc.LayerCount, textureLayers(desc.Texture))
	if err != nil {
		return nil, err
	}

	id, err := d.core.CreateTexture1DView(rhi.Texture1DViewDesc{
		Texture:     desc.Texture.id,
		ViewType:    desc.ViewType,
		Format:      desc.Format,
		MipOffset:   desc.MipOffset,
		MipCount:    desc.MipCount,
		LayerOffset: desc.LayerOffset,
		LayerCount:  desc.LayerCount,
	})
	if err != nil {
		return nil, err
	}
	return &Descriptor{id: id}, nil
}

// CreateTexture2DView creates a descriptor viewing a 2D texture.
func (d *Device) CreateTexture2DView(desc Texture2DViewDesc) (*Descriptor, error) {
	err := checkTextureView("CreateTexture2DView", desc.Texture, desc.ViewType, desc.Format,
		desc.MipOffset, desc.MipCount, desc.LayerOffset, desc.LayerCount, textureLayers(desc.Texture))
	if err != nil {
		return nil, err
	}

	id, err := d.core.CreateTexture2DView(rhi.Texture2DViewDesc{
		Texture:     desc.Texture.id,
		ViewType:    desc.ViewType,
		Format:      desc.Format,
		MipOffset:   desc.MipOffset,
		MipCount:    desc.MipCount,
		LayerOffset: desc.LayerOffset,
		LayerCount:  desc.LayerCount,
	})
	if err != nil {
		return nil, err
	}
	return &Descriptor{id: id}, nil
}

// CreateTexture3DView creates a descriptor viewing a 3D texture's depth
// slices.
func (d *Device) CreateTexture3DView(desc Texture3DViewDesc) (*Descriptor, error) {
	err := checkTextureView("CreateTexture3DView", desc.Texture, desc.ViewType, desc.Format,
		desc.MipOffset, desc.MipCount, desc.SliceOffset, desc.SliceCount, textureDepth(desc.Texture))
	if err != nil {
		return nil, err
	}

	id, err := d.core.CreateTexture3DView(rhi.Texture3DViewDesc{
		Texture:     desc.Texture.id,
		ViewType:    desc.ViewType,
		Format:      desc.Format,
		MipOffset:   desc.MipOffset,
		MipCount:    desc.MipCount,
		SliceOffset: desc.SliceOffset,
		SliceCount:  desc.SliceCount,
	})
	if err != nil {
		return nil, err
	}
	return &Descriptor{id: id}, nil
}

func textureLayers(t *Texture) uint32 {
	if t == nil {
		return 0
	}
	return t.desc.LayerCount
}

func textureDepth(t *Texture) uint32 {
	if t == nil {
		return 0
	}
	return t.desc.Depth
}

// CreateSampler creates a sampler descriptor. Every enumerated field must
// be in range; an extended reduction filter additionally requires the
// device's TextureFilterMinMax feature.
func (d *Device) CreateSampler(desc rhi.SamplerDesc) (*Descriptor, error) {
	if !desc.Filters.Mag.Valid() {
		return nil, errors.Wrapf(rhi.ErrInvalidArgument, "CreateSampler: desc.Filters.Mag %d is invalid", desc.Filters.Mag)
	}
	if !desc.Filters.Min.Valid() {
		return nil, errors.Wrapf(rhi.ErrInvalidArgument, "CreateSampler: desc.Filters.Min %d is invalid", desc.Filters.Min)
	}
	if !desc.Filters.Mip.Valid() {
		return nil, errors.Wrapf(rhi.ErrInvalidArgument, "CreateSampler: desc.Filters.Mip %d is invalid", desc.Filters.Mip)
	}
	if !desc.Filters.Ext.Valid() {
		return nil, errors.Wrapf(rhi.ErrInvalidArgument, "CreateSampler: desc.Filters.Ext %d is invalid", desc.Filters.Ext)
	}
	if !desc.AddressModes.U.Valid() {
		return nil, errors.Wrapf(rhi.ErrInvalidArgument, "CreateSampler: desc.AddressModes.U %d is invalid", desc.AddressModes.U)
	}
	if !desc.AddressModes.V.Valid() {
		return nil, errors.Wrapf(rhi.ErrInvalidArgument, "CreateSampler: desc.AddressModes.V %d is invalid", desc.AddressModes.V)
	}
	if !desc.AddressModes.W.Valid() {
		return nil, errors.Wrapf(rhi.ErrInvalidArgument, "CreateSampler: desc.AddressModes.W %d is invalid", desc.AddressModes.W)
	}
	if !desc.CompareFunc.Valid() {
		return nil, errors.Wrapf(rhi.ErrInvalidArgument, "CreateSampler: desc.CompareFunc %d is invalid", desc.CompareFunc)
	}
	if !desc.BorderColor.Valid() {
		return nil, errors.Wrapf(rhi.ErrInvalidArgument, "CreateSampler: desc.BorderColor %d is invalid", desc.BorderColor)
	}
	if desc.Filters.Ext != rhi.FilterExtNone && !d.desc.Features.TextureFilterMinMax {
		return nil, errors.Wrap(rhi.ErrInvalidArgument, "CreateSampler: desc.Filters.Ext requires the TextureFilterMinMax feature")
	}

	id, err := d.core.CreateSampler(desc)
	if err != nil {
		return nil, err
	}
	return &Descriptor{id: id}, nil
}

// DestroyDescriptor releases a view or sampler.
func (d *Device) DestroyDescriptor(desc *Descriptor) {
	if desc == nil || desc.id == rhi.InvalidID {
		return
	}
	d.core.DestroyDescriptor(desc.id)
	desc.id = rhi.InvalidID
}

// CreateDescriptorPool creates a descriptor pool.
func (d *Device) CreateDescriptorPool(desc rhi.DescriptorPoolDesc) (*DescriptorPool, error) {
	if desc.DescriptorSetMaxNum == 0 {
		return nil, errors.Wrap(rhi.ErrInvalidArgument, "CreateDescriptorPool: desc.DescriptorSetMaxNum is 0")
	}

	id, err := d.core.CreateDescriptorPool(desc)
	if err != nil {
		return nil, err
	}
	return &DescriptorPool{id: id, desc: desc}, nil
}

// DestroyDescriptorPool releases a descriptor pool.
func (d *Device) DestroyDescriptorPool(p *DescriptorPool) {
	if p == nil || p.id == rhi.InvalidID {
		return
	}
	d.core.DestroyDescriptorPool(p.id)
	p.id = rhi.InvalidID
}
