// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package null

import (
	"github.com/gogpu/rhi"
)

// CreateSwapChain hands out a fresh handle. The null device presents
// nowhere, so a headless window is as good as a real one.
func (d *Device) CreateSwapChain(rhi.SwapChainDesc) (rhi.SwapChainID, error) {
	return rhi.SwapChainID(d.newID()), nil
}

func (d *Device) DestroySwapChain(rhi.SwapChainID) {}

// SetLatencySleepMode accepts any pacing configuration.
func (d *Device) SetLatencySleepMode(rhi.SwapChainID, rhi.LatencySleepMode) error {
	return nil
}
