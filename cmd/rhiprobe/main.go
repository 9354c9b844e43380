// Command rhiprobe opens a backend through the validation facade and
// reports what it found: adapter identity, optional feature areas and
// per-format support.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/rhi"
	"github.com/gogpu/rhi/valid"

	_ "github.com/gogpu/rhi/null" // registers the reference backend
)

func main() {
	var (
		backendName = flag.String("backend", "", "backend to open (default: highest-priority available)")
		formats     = flag.Bool("formats", false, "print the per-format support table")
		verbose     = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	rhi.SetLogger(log)

	backend, err := openBackend(*backendName)
	if err != nil {
		log.Error("rhiprobe: no backend", slog.Any("error", err),
			slog.Any("registered", rhi.Available()))
		os.Exit(1)
	}

	dev, err := valid.New(backend, valid.WithLogger(log))
	if err != nil {
		log.Error("rhiprobe: facade construction failed", slog.Any("error", err))
		backend.Destroy()
		os.Exit(1)
	}
	defer dev.Destroy()

	printAdapter(dev.Desc())
	printCaps(dev.Caps())
	if *formats {
		printFormats(dev)
	}
}

func openBackend(name string) (rhi.Backend, error) {
	if name != "" {
		return rhi.Get(name)
	}
	return rhi.Default()
}

func printAdapter(desc rhi.DeviceDesc) {
	a := desc.Adapter
	fmt.Printf("adapter: %s\n", a.Name)
	fmt.Printf("  vendor/device:   %04x:%04x\n", a.VendorID, a.DeviceID)
	fmt.Printf("  video memory:    %d MiB\n", a.VideoMemorySize>>20)
	fmt.Printf("  shared memory:   %d MiB\n", a.SharedMemorySize>>20)

	f := desc.Features
	fmt.Printf("features: filterMinMax=%v logicFunc=%v depthBounds=%v lineSmoothing=%v\n",
		f.TextureFilterMinMax, f.LogicFunc, f.DepthBoundsTest, f.LineSmoothing)

	l := desc.Limits
	fmt.Printf("limits: tex1D=%d tex2D=%d tex3D=%d layers=%d bufferMax=%d\n",
		l.Texture1DMaxDim, l.Texture2DMaxDim, l.Texture3DMaxDim, l.TextureLayerMaxNum, l.BufferMaxSize)
}

func printCaps(caps valid.Caps) {
	fmt.Printf("optional areas: rayTracing=%v swapChain=%v lowLatency=%v meshShader=%v\n",
		caps.RayTracing, caps.SwapChain, caps.LowLatency, caps.MeshShader)
	fmt.Printf("interop areas:  wgpu=%v webgpu=%v vulkan=%v\n",
		caps.WGPUInterop, caps.WebGPUInterop, caps.VulkanInterop)
}

func printFormats(dev *valid.Device) {
	fmt.Println("format support:")
	for f := rhi.FormatUnknown + 1; f.Known(); f++ {
		support := dev.FormatSupport(f)
		if support == 0 {
			continue
		}
		fmt.Printf("  %-24s %s\n", f, supportString(support))
	}
}

var supportNames = []struct {
	bit  rhi.FormatSupportBits
	name string
}{
	{rhi.FormatSupportTexture, "texture"},
	{rhi.FormatSupportStorageTexture, "storage-texture"},
	{rhi.FormatSupportColorAttachment, "color"},
	{rhi.FormatSupportDepthStencilAttachment, "depth-stencil"},
	{rhi.FormatSupportBlend, "blend"},
	{rhi.FormatSupportBuffer, "buffer"},
	{rhi.FormatSupportStorageBuffer, "storage-buffer"},
	{rhi.FormatSupportVertexBuffer, "vertex"},
}

func supportString(s rhi.FormatSupportBits) string {
	var parts []string
	for _, n := range supportNames {
		if s&n.bit != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}
