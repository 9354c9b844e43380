// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package valid

import (
	"testing"

	"github.com/gogpu/rhi"
)

func TestStageScan(t *testing.T) {
	var s stageScan

	if !s.scan(rhi.StageVertex, rhi.StageGraphics) {
		t.Error("first vertex stage should pass")
	}
	if s.scan(rhi.StageVertex, rhi.StageGraphics) {
		t.Error("repeated vertex stage should fail")
	}
	if !s.scan(rhi.StageFragment, rhi.StageGraphics) {
		t.Error("fragment after vertex should pass")
	}
	if s.scan(rhi.StageCompute, rhi.StageGraphics) {
		t.Error("compute is not a graphics stage")
	}
	if s.scan(rhi.StageTessControl|rhi.StageTessEvaluation, rhi.StageGraphics) {
		t.Error("two stages on one shader should fail")
	}
}

func TestStageScanRecordsRejectedStages(t *testing.T) {
	var s stageScan

	// A rejected multi-stage shader still claims its stages, so a later
	// shader cannot reuse them.
	if s.scan(rhi.StageVertex|rhi.StageFragment, rhi.StageGraphics) {
		t.Fatal("multi-stage shader should fail")
	}
	if s.scan(rhi.StageVertex, rhi.StageGraphics) {
		t.Error("vertex was claimed by the rejected shader")
	}
	if s.scan(rhi.StageFragment, rhi.StageGraphics) {
		t.Error("fragment was claimed by the rejected shader")
	}
}

func TestNests(t *testing.T) {
	tests := []struct {
		offset, count, capacity uint64
		want                    bool
	}{
		{0, 4, 4, true},
		{3, 1, 4, true},
		{0, 0, 4, true},
		{3, 0, 4, true},
		{3, 2, 4, false},
		{4, 0, 4, false}, // offset == capacity never nests
		{4, 1, 4, false},
		{0, 0, 0, false},
		{5, 0, 4, false},
	}
	for _, tt := range tests {
		if got := nests(tt.offset, tt.count, tt.capacity); got != tt.want {
			t.Errorf("nests(%d, %d, %d) = %v, want %v", tt.offset, tt.count, tt.capacity, got, tt.want)
		}
	}
}

func TestIsSPIRV(t *testing.T) {
	tests := []struct {
		name     string
		bytecode []byte
		want     bool
	}{
		{"little endian", []byte{0x03, 0x02, 0x23, 0x07, 0xaa}, true},
		{"big endian", []byte{0x07, 0x23, 0x02, 0x03}, true},
		{"wgsl source", []byte("fn main() {}"), false},
		{"short", []byte{0x03, 0x02, 0x23}, false},
		{"empty", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isSPIRV(tt.bytecode); got != tt.want {
				t.Errorf("isSPIRV(%v) = %v, want %v", tt.bytecode, got, tt.want)
			}
		})
	}
}
