// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package valid

import (
	"errors"
	"testing"

	"github.com/gogpu/rhi"
)

// swapOnlyBackend implements swap chains but not low-latency pacing.
type swapOnlyBackend struct {
	*spyBackend
}

func (s *swapOnlyBackend) CreateSwapChain(rhi.SwapChainDesc) (rhi.SwapChainID, error) {
	if err := s.record("CreateSwapChain"); err != nil {
		return rhi.InvalidID, err
	}
	return rhi.SwapChainID(s.next()), nil
}

func (s *swapOnlyBackend) DestroySwapChain(rhi.SwapChainID) { s.calls["DestroySwapChain"]++ }

func swapChainDesc(q *CommandQueue) SwapChainDesc {
	return SwapChainDesc{
		Queue:        q,
		Width:        1280,
		Height:       720,
		TextureCount: 2,
		Format:       rhi.SwapChainBT709G22,
	}
}

func TestCreateSwapChainUnsupported(t *testing.T) {
	d, _ := newSpyDevice(t)

	_, err := d.CreateSwapChain(SwapChainDesc{})
	if !errors.Is(err, rhi.ErrUnsupported) {
		t.Errorf("CreateSwapChain error = %v, want ErrUnsupported", err)
	}
	if err := d.SetLatencySleepMode(nil, rhi.LatencySleepMode{}); !errors.Is(err, rhi.ErrUnsupported) {
		t.Errorf("SetLatencySleepMode error = %v, want ErrUnsupported", err)
	}
}

func TestCreateSwapChain(t *testing.T) {
	d, full := newFullDevice(t)
	q, err := d.Queue(rhi.QueueGraphics)
	if err != nil {
		t.Fatalf("Queue error = %v", err)
	}

	s, err := d.CreateSwapChain(swapChainDesc(q))
	if err != nil {
		t.Fatalf("CreateSwapChain error = %v", err)
	}
	if w, h := s.Extent(); w != 1280 || h != 720 {
		t.Errorf("Extent() = %dx%d, want 1280x720", w, h)
	}
	if s.Format() != rhi.SwapChainBT709G22 {
		t.Errorf("Format() = %v, want SwapChainBT709G22", s.Format())
	}

	d.DestroySwapChain(s)
	if s.ID() != rhi.InvalidID {
		t.Error("destroyed swap chain should hold the invalid ID")
	}
	if full.calls["DestroySwapChain"] != 1 {
		t.Errorf("backend DestroySwapChain called %d times, want 1", full.calls["DestroySwapChain"])
	}
}

func TestCreateSwapChainRejects(t *testing.T) {
	d, full := newFullDevice(t)
	q, err := d.Queue(rhi.QueueGraphics)
	if err != nil {
		t.Fatalf("Queue error = %v", err)
	}

	mutations := []struct {
		name   string
		mutate func(*SwapChainDesc)
	}{
		{"nil queue", func(d *SwapChainDesc) { d.Queue = nil }},
		{"zero width", func(d *SwapChainDesc) { d.Width = 0 }},
		{"zero height", func(d *SwapChainDesc) { d.Height = 0 }},
		{"zero textures", func(d *SwapChainDesc) { d.TextureCount = 0 }},
		{"bad format", func(d *SwapChainDesc) { d.Format = rhi.SwapChainFormat(9) }},
	}
	for _, tt := range mutations {
		t.Run(tt.name, func(t *testing.T) {
			desc := swapChainDesc(q)
			tt.mutate(&desc)

			before := full.calls["CreateSwapChain"]
			_, err := d.CreateSwapChain(desc)
			if !errors.Is(err, rhi.ErrInvalidArgument) {
				t.Fatalf("CreateSwapChain error = %v, want ErrInvalidArgument", err)
			}
			if full.calls["CreateSwapChain"] != before {
				t.Error("backend should not see a rejected swap chain desc")
			}
		})
	}
}

func TestCreateSwapChainLowLatencyGate(t *testing.T) {
	backend := &swapOnlyBackend{spyBackend: newSpy()}
	d, err := New(backend)
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	q, err := d.Queue(rhi.QueueGraphics)
	if err != nil {
		t.Fatalf("Queue error = %v", err)
	}

	desc := swapChainDesc(q)
	desc.AllowLowLatency = true
	_, err = d.CreateSwapChain(desc)
	if !errors.Is(err, rhi.ErrUnsupported) {
		t.Fatalf("CreateSwapChain error = %v, want ErrUnsupported without low-latency support", err)
	}
	if backend.calls["CreateSwapChain"] != 0 {
		t.Error("backend should not see the unsupported swap chain desc")
	}

	// Without the opt-in the same backend serves the chain fine.
	if _, err := d.CreateSwapChain(swapChainDesc(q)); err != nil {
		t.Fatalf("CreateSwapChain error = %v", err)
	}
}

func TestSetLatencySleepMode(t *testing.T) {
	d, full := newFullDevice(t)
	q, err := d.Queue(rhi.QueueGraphics)
	if err != nil {
		t.Fatalf("Queue error = %v", err)
	}

	plain, err := d.CreateSwapChain(swapChainDesc(q))
	if err != nil {
		t.Fatalf("CreateSwapChain error = %v", err)
	}
	// The swap chain must have opted in at creation.
	err = d.SetLatencySleepMode(plain, rhi.LatencySleepMode{LowLatencyMode: true})
	if !errors.Is(err, rhi.ErrInvalidArgument) {
		t.Fatalf("SetLatencySleepMode error = %v, want ErrInvalidArgument for a plain chain", err)
	}
	if full.calls["SetLatencySleepMode"] != 0 {
		t.Error("backend should not see the misdirected call")
	}

	desc := swapChainDesc(q)
	desc.AllowLowLatency = true
	lowLatency, err := d.CreateSwapChain(desc)
	if err != nil {
		t.Fatalf("CreateSwapChain error = %v", err)
	}
	if err := d.SetLatencySleepMode(lowLatency, rhi.LatencySleepMode{LowLatencyMode: true, MinIntervalUS: 8333}); err != nil {
		t.Fatalf("SetLatencySleepMode error = %v", err)
	}
	if full.calls["SetLatencySleepMode"] != 1 {
		t.Errorf("backend SetLatencySleepMode called %d times, want 1", full.calls["SetLatencySleepMode"])
	}

	if err := d.SetLatencySleepMode(nil, rhi.LatencySleepMode{}); !errors.Is(err, rhi.ErrInvalidArgument) {
		t.Errorf("nil swap chain error = %v, want ErrInvalidArgument", err)
	}
}
