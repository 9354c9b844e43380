// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package valid

import (
	"github.com/cockroachdb/errors"

	"github.com/gogpu/rhi"
)

// SwapChainDesc describes a swap chain to create. It mirrors
// rhi.SwapChainDesc with the queue reference as a wrapper.
type SwapChainDesc struct {
	Window rhi.Window
	Queue  *CommandQueue

	Width        uint32
	Height       uint32
	TextureCount uint32

	Format rhi.SwapChainFormat

	AllowLowLatency bool
}

// CreateSwapChain creates a swap chain. Opting into low-latency pacing
// requires the backend's low-latency area.
func (d *Device) CreateSwapChain(desc SwapChainDesc) (*SwapChain, error) {
	if !d.caps.SwapChain {
		return nil, errors.Wrap(rhi.ErrUnsupported, "CreateSwapChain: the backend does not implement swap chains")
	}
	if desc.Queue == nil {
		return nil, errors.Wrap(rhi.ErrInvalidArgument, "CreateSwapChain: desc.Queue is nil")
	}
	if desc.Width == 0 {
		return nil, errors.Wrap(rhi.ErrInvalidArgument, "CreateSwapChain: desc.Width is 0")
	}
	if desc.Height == 0 {
		return nil, errors.Wrap(rhi.ErrInvalidArgument, "CreateSwapChain: desc.Height is 0")
	}
	if desc.TextureCount == 0 {
		return nil, errors.Wrap(rhi.ErrInvalidArgument, "CreateSwapChain: desc.TextureCount is 0")
	}
	if !desc.Format.Valid() {
		return nil, errors.Wrapf(rhi.ErrInvalidArgument, "CreateSwapChain: desc.Format %d is invalid", desc.Format)
	}
	if desc.AllowLowLatency && !d.caps.LowLatency {
		return nil, errors.Wrap(rhi.ErrUnsupported, "CreateSwapChain: desc.AllowLowLatency requires the backend's low-latency area")
	}

	id, err := d.swapChain.CreateSwapChain(rhi.SwapChainDesc{
		Window:          desc.Window,
		Queue:           desc.Queue.id,
		Width:           desc.Width,
		Height:          desc.Height,
		TextureCount:    desc.TextureCount,
		Format:          desc.Format,
		AllowLowLatency: desc.AllowLowLatency,
	})
	if err != nil {
		return nil, err
	}
	return &SwapChain{
		id:              id,
		width:           desc.Width,
		height:          desc.Height,
		textureCount:    desc.TextureCount,
		format:          desc.Format,
		allowLowLatency: desc.AllowLowLatency,
	}, nil
}

// DestroySwapChain releases a swap chain.
func (d *Device) DestroySwapChain(s *SwapChain) {
	if s == nil || s.id == rhi.InvalidID {
		return
	}
	d.swapChain.DestroySwapChain(s.id)
	s.id = rhi.InvalidID
}

// SetLatencySleepMode configures low-latency frame pacing on a swap chain
// that was created with AllowLowLatency.
func (d *Device) SetLatencySleepMode(s *SwapChain, mode rhi.LatencySleepMode) error {
	if !d.caps.LowLatency {
		return errors.Wrap(rhi.ErrUnsupported, "SetLatencySleepMode: the backend does not implement low-latency pacing")
	}
	if s == nil {
		return errors.Wrap(rhi.ErrInvalidArgument, "SetLatencySleepMode: swap chain is nil")
	}
	if !s.allowLowLatency {
		return errors.Wrap(rhi.ErrInvalidArgument, "SetLatencySleepMode: the swap chain was not created with AllowLowLatency")
	}
	return d.lowLatency.SetLatencySleepMode(s.id, mode)
}
