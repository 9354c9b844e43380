// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package valid

import (
	"math/bits"

	"github.com/gogpu/rhi"
)

// stageScan accumulates the shader stages seen while walking a pipeline's
// shader list and rejects duplicates.
type stageScan struct {
	seen rhi.StageBits
}

// scan reports whether stage occupies exactly one stage out of allowed and
// has not been seen before. The stage is recorded even when rejected, so a
// later shader repeating a rejected stage still fails.
func (s *stageScan) scan(stage, allowed rhi.StageBits) bool {
	n := bits.OnesCount32(uint32(stage & allowed))
	unique := s.seen&stage == 0
	s.seen |= stage
	return n == 1 && unique
}

// nests reports whether the half-open range [offset, offset+count) lies
// within a parent of the given capacity. A zero count at a valid offset
// nests; offset == capacity does not.
func nests(offset, count, capacity uint64) bool {
	return offset < capacity && count <= capacity-offset
}

// spirvMagic is the first word of a SPIR-V module.
const spirvMagic = 0x07230203

// isSPIRV reports whether bytecode starts with the SPIR-V magic number in
// either byte order.
func isSPIRV(bytecode []byte) bool {
	if len(bytecode) < 4 {
		return false
	}
	le := uint32(bytecode[0]) | uint32(bytecode[1])<<8 | uint32(bytecode[2])<<16 | uint32(bytecode[3])<<24
	be := uint32(bytecode[3]) | uint32(bytecode[2])<<8 | uint32(bytecode[1])<<16 | uint32(bytecode[0])<<24
	return le == spirvMagic || be == spirvMagic
}
