// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package interop

import (
	"github.com/gogpu/rhi"
)

// VulkanBufferDesc wraps a VkBuffer handle for import. Imported buffers
// arrive bound; the handle already owns its memory on the Vulkan side.
type VulkanBufferDesc struct {
	// VKBuffer is the VkBuffer handle.
	VKBuffer uint64

	Desc rhi.BufferDesc
}

// VulkanTextureDesc wraps a VkImage handle for import. Arrives bound.
type VulkanTextureDesc struct {
	// VKImage is the VkImage handle.
	VKImage uint64

	Desc rhi.TextureDesc
}

// VulkanMemoryDesc wraps a VkDeviceMemory handle for import. The resulting
// allocation is marked imported: the validation layer cannot see its true
// extent, so size and alignment checks are skipped when binding into it.
type VulkanMemoryDesc struct {
	// VKDeviceMemory is the VkDeviceMemory handle.
	VKDeviceMemory uint64

	// Size is the allocation size in bytes. Must be non-zero: the imported
	// extent is all the validation layer knows about the allocation.
	Size uint64

	// Type is the backend memory type the allocation was made from.
	Type rhi.MemoryType

	// Dedicated marks a dedicated allocation so the backend can mirror the
	// VkMemoryDedicatedAllocateInfo state of the original allocation.
	Dedicated bool
}

// Vulkan is the optional feature area for importing raw Vulkan handles.
type Vulkan interface {
	ImportVulkanBuffer(VulkanBufferDesc) (rhi.BufferID, error)
	ImportVulkanTexture(VulkanTextureDesc) (rhi.TextureID, error)
	ImportVulkanMemory(VulkanMemoryDesc) (rhi.MemoryID, error)
}
