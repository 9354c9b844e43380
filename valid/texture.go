// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package valid

import (
	"github.com/cockroachdb/errors"

	"github.com/gogpu/rhi"
)

// checkTextureDesc validates the shared constraints of CreateTexture and
// AllocateTexture. op names the calling operation in diagnostics.
func checkTextureDesc(op string, desc rhi.TextureDesc) error {
	if !desc.Format.Known() {
		return errors.Wrapf(rhi.ErrInvalidArgument, "%s: desc.Format %d is invalid", op, desc.Format)
	}
	if desc.Width == 0 {
		return errors.Wrapf(rhi.ErrInvalidArgument, "%s: desc.Width is 0", op)
	}
	if desc.Height == 0 {
		return errors.Wrapf(rhi.ErrInvalidArgument, "%s: desc.Height is 0", op)
	}
	if desc.Depth == 0 {
		return errors.Wrapf(rhi.ErrInvalidArgument, "%s: desc.Depth is 0", op)
	}
	if desc.MipCount == 0 {
		return errors.Wrapf(rhi.ErrInvalidArgument, "%s: desc.MipCount is 0", op)
	}
	if maxMips := rhi.MaxMipCount(desc.Width, desc.Height, desc.Depth); desc.MipCount > maxMips {
		return errors.Wrapf(rhi.ErrInvalidArgument, "%s: desc.MipCount %d exceeds %d for %dx%dx%d",
			op, desc.MipCount, maxMips, desc.Width, desc.Height, desc.Depth)
	}
	if desc.LayerCount == 0 {
		return errors.Wrapf(rhi.ErrInvalidArgument, "%s: desc.LayerCount is 0", op)
	}
	if desc.SampleCount == 0 {
		return errors.Wrapf(rhi.ErrInvalidArgument, "%s: desc.SampleCount is 0", op)
	}
	return nil
}

// CreateTexture creates an unbound texture. The texture must be attached to
// memory through BindTextureMemory before use.
func (d *Device) CreateTexture(desc rhi.TextureDesc) (*Texture, error) {
	if err := checkTextureDesc("CreateTexture", desc); err != nil {
		return nil, err
	}

	id, err := d.core.CreateTexture(desc)
	if err != nil {
		return nil, err
	}
	return &Texture{id: id, desc: desc}, nil
}

// AllocateTexture creates a texture placed in backend-managed memory. The
// returned texture is already bound.
func (d *Device) AllocateTexture(desc rhi.AllocateTextureDesc) (*Texture, error) {
	if !desc.Location.Valid() {
		return nil, errors.Wrapf(rhi.ErrInvalidArgument, "AllocateTexture: desc.Location %d is invalid", desc.Location)
	}
	if desc.Priority < -1 || desc.Priority > 1 {
		return nil, errors.Wrapf(rhi.ErrInvalidArgument, "AllocateTexture: desc.Priority %v outside [-1, 1]", desc.Priority)
	}
	if err := checkTextureDesc("AllocateTexture", desc.Desc); err != nil {
		return nil, err
	}

	id, err := d.resAlloc.AllocateTexture(desc)
	if err != nil {
		return nil, err
	}
	return &Texture{id: id, desc: desc.Desc, bound: true}, nil
}

// DestroyTexture releases a texture. A bound texture is unregistered from
// its memory first.
func (d *Device) DestroyTexture(t *Texture) {
	if t == nil || t.id == rhi.InvalidID {
		return
	}
	if t.memory != nil {
		t.memory.unbindTexture(t)
		t.memory = nil
	}
	d.core.DestroyTexture(t.id)
	t.id = rhi.InvalidID
}
