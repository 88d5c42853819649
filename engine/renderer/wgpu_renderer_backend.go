package renderer

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/Carmen-Shannon/oxy-flight/engine/camera"
	"github.com/Carmen-Shannon/oxy-flight/engine/cloth"
	"github.com/Carmen-Shannon/oxy-flight/engine/light"
	"github.com/cogentcore/webgpu/wgpu"
)

type wgpuRendererBackendImpl struct {
	device   *wgpu.Device
	queue    *wgpu.Queue
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	surface  *wgpu.Surface

	surfaceFormat wgpu.TextureFormat
	presentMode   wgpu.PresentMode
	configured    bool

	cameraBuffer   *wgpu.Buffer
	lightingBuffer *wgpu.Buffer
	flagBuffer     *wgpu.Buffer
}

var _ Backend = &wgpuRendererBackendImpl{}

// NewWGPUBackend creates a WebGPU backend presenting to the surface described by
// surfaceDescriptor. The camera, lighting and flag uniform blocks of every frame are
// uploaded to persistent uniform buffers and the surface is cleared with the frame's
// clear color.
//
// Parameters:
//   - surfaceDescriptor: the platform surface descriptor from the window
//   - mode: the present mode
//   - forceFallbackAdapter: request a software adapter
//
// Returns:
//   - Backend: the backend
//   - error: error if adapter, device or buffer creation fails
func NewWGPUBackend(surfaceDescriptor *wgpu.SurfaceDescriptor, mode PresentMode, forceFallbackAdapter bool) (Backend, error) {
	if surfaceDescriptor == nil {
		return nil, errors.New("wgpu backend: nil surface descriptor")
	}
	runtime.LockOSThread()

	b := &wgpuRendererBackendImpl{
		instance:    wgpu.CreateInstance(nil),
		presentMode: wgpu.PresentModeImmediate,
	}
	if mode == PresentModeVSync {
		b.presentMode = wgpu.PresentModeFifo
	}
	b.surface = b.instance.CreateSurface(surfaceDescriptor)

	a, err := b.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: forceFallbackAdapter,
		CompatibleSurface:    b.surface,
	})
	if err != nil {
		return nil, fmt.Errorf("request adapter: %w", err)
	}
	b.adapter = a

	d, err := a.RequestDevice(&wgpu.DeviceDescriptor{Label: "Main Device"})
	if err != nil {
		return nil, fmt.Errorf("request device: %w", err)
	}
	b.device = d
	b.queue = d.GetQueue()

	lightSize := (&light.GPULight{}).Size()
	lightingSize := (&light.GPULightingUniform{}).Size() + light.MaxGPULights*lightSize
	if b.cameraBuffer, err = b.uniformBuffer("Camera Uniform", (&camera.GPUCameraUniform{}).Size()); err != nil {
		return nil, err
	}
	if b.lightingBuffer, err = b.uniformBuffer("Lighting Storage", lightingSize); err != nil {
		return nil, err
	}
	if b.flagBuffer, err = b.uniformBuffer("Flag Uniform", (&cloth.GPUFlagUniform{}).Size()); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *wgpuRendererBackendImpl) uniformBuffer(label string, size int) (*wgpu.Buffer, error) {
	buf, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: label,
		Size:  uint64(size),
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageStorage | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s buffer: %w", label, err)
	}
	return buf, nil
}

func (b *wgpuRendererBackendImpl) Resize(width, height int) {
	capabilities := b.surface.GetCapabilities(b.adapter)
	b.surfaceFormat = capabilities.Formats[0]

	b.surface.Configure(b.adapter, b.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      b.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: b.presentMode,
		AlphaMode:   capabilities.AlphaModes[0],
	})
	b.configured = true
}

func (b *wgpuRendererBackendImpl) Draw(frame *Frame) error {
	if !b.configured {
		return errors.New("surface not configured")
	}

	b.queue.WriteBuffer(b.cameraBuffer, 0, frame.Camera)
	b.queue.WriteBuffer(b.lightingBuffer, 0, frame.Lighting)
	b.queue.WriteBuffer(b.flagBuffer, 0, frame.Flag)

	surfaceTexture, err := b.surface.GetCurrentTexture()
	if err != nil {
		return err
	}
	defer surfaceTexture.Release()

	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		return err
	}
	defer view.Release()

	encoder, err := b.device.CreateCommandEncoder(nil)
	if err != nil {
		return err
	}
	defer encoder.Release()

	c := frame.ClearColor
	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: wgpu.Color{R: c[0], G: c[1], B: c[2], A: c[3]},
			},
		},
	})
	pass.End()

	commandBuffer, err := encoder.Finish(nil)
	if err != nil {
		return err
	}
	defer commandBuffer.Release()

	b.queue.Submit(commandBuffer)
	b.surface.Present()
	return nil
}

func (b *wgpuRendererBackendImpl) Close() error {
	for _, buf := range []*wgpu.Buffer{b.cameraBuffer, b.lightingBuffer, b.flagBuffer} {
		if buf != nil {
			buf.Release()
		}
	}
	b.queue.Release()
	b.device.Release()
	b.adapter.Release()
	b.surface.Release()
	b.instance.Release()
	return nil
}
