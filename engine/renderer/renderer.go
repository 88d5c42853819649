package renderer

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-flight/engine/camera"
	"github.com/Carmen-Shannon/oxy-flight/engine/cloth"
	"github.com/Carmen-Shannon/oxy-flight/engine/light"
	"github.com/Carmen-Shannon/oxy-flight/engine/renderer/material"
	"github.com/rs/zerolog"
)

// skyColor is the daytime clear color.
var skyColor = [4]float64{135.0 / 255, 206.0 / 255, 235.0 / 255, 1}

// renderer is the implementation of the Renderer interface.
type renderer struct {
	log     zerolog.Logger
	backend Backend

	dayClear   [4]float64
	nightClear [4]float64

	frames uint64
}

// Renderer defines the interface for the rendering system.
//
// The Renderer turns the per-frame parameter bundle produced by a scene into GPU-aligned
// uniform blocks and draw calls, then hands the result to its Backend. It holds no scene
// state of its own apart from a frame counter.
type Renderer interface {
	// Render marshals one frame and submits it to the backend.
	//
	// Parameters:
	//   - params: the frame parameter bundle
	//
	// Returns:
	//   - error: an error if the backend rejects the frame
	Render(params FrameParams) error

	// Resize configures the underlying backend to handle a new surface size.
	// This should be called when re-sizing the window or when the surface size should change.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// FrameCount returns the number of frames submitted so far.
	//
	// Returns:
	//   - uint64: submitted frame count
	FrameCount() uint64

	// Backend returns the backend frames are submitted to.
	//
	// Returns:
	//   - Backend: the backend
	Backend() Backend

	// Close releases the backend.
	//
	// Returns:
	//   - error: an error if the backend fails to release
	Close() error
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer submitting to the given backend.
// Panics if backend is nil.
//
// Parameters:
//   - backend: the backend that receives marshaled frames
//   - options: functional options to configure the renderer
//
// Returns:
//   - Renderer: the newly created renderer
func NewRenderer(backend Backend, options ...RendererBuilderOption) Renderer {
	if backend == nil {
		panic("renderer: nil backend")
	}
	r := &renderer{
		log:        zerolog.Nop(),
		backend:    backend,
		dayClear:   skyColor,
		nightClear: [4]float64{0.02, 0.03, 0.08, 1},
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

func (r *renderer) Render(params FrameParams) error {
	frame := BuildFrame(params, r.frames, r.dayClear, r.nightClear)
	if err := r.backend.Draw(frame); err != nil {
		return fmt.Errorf("draw frame %d: %w", frame.Index, err)
	}
	r.frames++
	return nil
}

func (r *renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.log.Debug().Int("width", width).Int("height", height).Msg("renderer resize")
	r.backend.Resize(width, height)
}

func (r *renderer) FrameCount() uint64 {
	return r.frames
}

func (r *renderer) Backend() Backend {
	return r.backend
}

func (r *renderer) Close() error {
	return r.backend.Close()
}

// BuildFrame marshals a parameter bundle into a Frame. The clear color follows the
// emission flag: emission is on exactly at night.
//
// Parameters:
//   - params: the frame parameter bundle
//   - index: the frame index to stamp
//   - dayClear: clear color used while emission is off
//   - nightClear: clear color used while emission is on
//
// Returns:
//   - *Frame: the marshaled frame
func BuildFrame(params FrameParams, index uint64, dayClear, nightClear [4]float64) *Frame {
	cam := camera.GPUCameraUniform{
		View:           params.View,
		Projection:     params.Projection,
		CameraPosition: params.CameraPosition,
	}
	flag := cloth.NewGPUFlagUniform(params.Flag)

	f := &Frame{
		Index:      index,
		Mode:       params.Mode,
		ClearColor: dayClear,
		Camera:     cam.Marshal(),
		Lighting:   light.MarshalLightBuffer(params.Preset, params.Emission, params.Lights),
		LightCount: min(len(params.Lights), light.MaxGPULights),
		Flag:       flag.Marshal(),
	}
	if params.Emission {
		f.ClearColor = nightClear
	}

	for _, d := range params.Drawables {
		obj := GPUObjectUniform{Model: d.Model}
		objBytes := obj.Marshal()
		for _, m := range d.Materials {
			offset, count := m.IndexRange()
			gm := material.NewGPUMaterial(m, params.Emission)
			f.Draws = append(f.Draws, DrawCall{
				Name:        d.Name + "/" + m.Name(),
				PipelineKey: PipelineKey(m.PipelineKey(), params.Mode),
				Object:      objBytes,
				Material:    gm.Marshal(),
				IndexOffset: offset,
				IndexCount:  count,
			})
		}
	}
	return f
}
