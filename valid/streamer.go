// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package valid

import (
	"github.com/cockroachdb/errors"

	"github.com/gogpu/rhi"
)

// CreateStreamer creates an upload streamer.
func (d *Device) CreateStreamer(desc rhi.StreamerDesc) (*Streamer, error) {
	if !desc.ConstantBufferLocation.Valid() {
		return nil, errors.Wrapf(rhi.ErrInvalidArgument,
			"CreateStreamer: desc.ConstantBufferLocation %d is invalid", desc.ConstantBufferLocation)
	}
	if !desc.DynamicBufferLocation.Valid() {
		return nil, errors.Wrapf(rhi.ErrInvalidArgument,
			"CreateStreamer: desc.DynamicBufferLocation %d is invalid", desc.DynamicBufferLocation)
	}

	id, err := d.streamer.CreateStreamer(desc)
	if err != nil {
		return nil, err
	}
	return &Streamer{id: id, desc: desc}, nil
}

// DestroyStreamer releases a streamer.
func (d *Device) DestroyStreamer(s *Streamer) {
	if s == nil || s.id == rhi.InvalidID {
		return
	}
	d.streamer.DestroyStreamer(s.id)
	s.id = rhi.InvalidID
}
