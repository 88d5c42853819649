package renderer

import (
	"github.com/Carmen-Shannon/oxy-flight/engine/cloth"
	"github.com/Carmen-Shannon/oxy-flight/engine/light"
	"github.com/Carmen-Shannon/oxy-flight/engine/renderer/material"
	"github.com/go-gl/mathgl/mgl32"
)

// Drawable is one mesh instance in a frame: a world transform and the materials
// covering its index ranges.
type Drawable struct {
	Name      string
	Model     mgl32.Mat4
	Materials []material.Material
}

// FrameParams is the parameter bundle a scene hands to the renderer once per frame.
// It carries values only; the renderer never reaches back into scene state.
type FrameParams struct {
	Projection     mgl32.Mat4
	View           mgl32.Mat4
	CameraPosition mgl32.Vec3
	Mode           RenderMode

	Preset   light.Preset
	Emission bool
	// Lights holds the visible plane lamps, already bound to this frame's plane
	// transform. Empty when the plane-lights gate is off.
	Lights []light.Light

	Flag      cloth.Snapshot
	FlagModel mgl32.Mat4

	Drawables []Drawable
}

// DrawCall is one marshaled draw: the pipeline to bind, the per-draw uniform and
// the index range to draw.
type DrawCall struct {
	Name        string
	PipelineKey string
	// Object is the 64-byte column-major model matrix.
	Object      []byte
	Material    []byte
	IndexOffset uint32
	IndexCount  uint32
}

// Frame is the marshaled form of FrameParams handed to a Backend.
type Frame struct {
	Index      uint64
	Mode       RenderMode
	ClearColor [4]float64

	// Camera is the camera uniform block.
	Camera []byte
	// Lighting is the lighting block followed by the lamp array.
	Lighting   []byte
	LightCount int
	// Flag is the wave uniform block for the flag pipeline.
	Flag []byte

	Draws []DrawCall
}

// PipelineKey returns the pipeline name for a family drawn in a mode, for example "flag.normal".
//
// Parameters:
//   - family: the material pipeline family
//   - mode: the render mode
//
// Returns:
//   - string: the pipeline key
func PipelineKey(family string, mode RenderMode) string {
	return family + "." + mode.String()
}
