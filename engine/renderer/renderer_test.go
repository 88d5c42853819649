package renderer

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-flight/engine/cloth"
	"github.com/Carmen-Shannon/oxy-flight/engine/light"
	"github.com/Carmen-Shannon/oxy-flight/engine/renderer/material"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingBackend struct{ HeadlessBackend }

func (failingBackend) Draw(*Frame) error { return errors.New("device lost") }

func testParams() FrameParams {
	lights := light.ReferenceRig()
	arr := light.NewArray(lights)
	arr.Update(mgl32.Ident4(), 0.1)

	return FrameParams{
		Projection: mgl32.Ident4(),
		View:       mgl32.Ident4(),
		Mode:       RenderModeColor,
		Preset:     light.DayPreset(),
		Lights:     arr.Visible(),
		Flag:       cloth.Snapshot{Params: cloth.DefaultWaves(), Time: 1.5},
		FlagModel:  mgl32.Ident4(),
		Drawables: []Drawable{
			{
				Name:  "plane",
				Model: mgl32.Translate3D(0, 1, 0),
				Materials: []material.Material{
					material.NewMaterial(material.WithName("hull")),
					material.NewMaterial(material.WithName("glass"), material.WithIndexRange(12, 30)),
				},
			},
			{
				Name:      "planet",
				Model:     mgl32.Ident4(),
				Materials: []material.Material{material.NewMaterial(material.WithName("ground"), material.WithEmissive())},
			},
		},
	}
}

func TestRenderSubmitsMarshaledFrame(t *testing.T) {
	backend := NewLogBackend(zerolog.Nop())
	r := NewRenderer(backend)

	require.NoError(t, r.Render(testParams()))
	assert.Equal(t, uint64(1), r.FrameCount())

	f := backend.Last()
	require.NotNil(t, f)
	assert.Equal(t, uint64(0), f.Index)
	assert.Len(t, f.Camera, 144)
	assert.Len(t, f.Flag, 112)
	assert.Equal(t, 6, f.LightCount)
	assert.Len(t, f.Lighting, 64+6*64)
	assert.Equal(t, skyColor, f.ClearColor)

	require.Len(t, f.Draws, 3)
	assert.Equal(t, "plane/hull", f.Draws[0].Name)
	assert.Equal(t, "scene.color", f.Draws[0].PipelineKey)
	assert.Equal(t, uint32(12), f.Draws[1].IndexOffset)
	assert.Equal(t, uint32(30), f.Draws[1].IndexCount)
	assert.Len(t, f.Draws[2].Object, 64)
}

func TestNormalModeSelectsNormalPipelines(t *testing.T) {
	p := testParams()
	p.Mode = RenderModeNormal
	f := BuildFrame(p, 0, skyColor, skyColor)
	for _, d := range f.Draws {
		assert.Equal(t, "scene.normal", d.PipelineKey)
	}
}

func TestEmissionDrivesClearColorAndMaterials(t *testing.T) {
	night := [4]float64{0, 0, 0.1, 1}
	p := testParams()
	p.Preset = light.NightPreset()
	p.Emission = true

	f := BuildFrame(p, 7, skyColor, night)
	assert.Equal(t, night, f.ClearColor)
	assert.Equal(t, uint64(7), f.Index)
	assert.Equal(t, uint32(1), binary.LittleEndian.Uint32(f.Lighting[48:52]))
	assert.Equal(t, uint32(1), binary.LittleEndian.Uint32(f.Draws[2].Material[20:24]))
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(f.Draws[0].Material[20:24]))
}

func TestGatedLightsProduceEmptyLightBlock(t *testing.T) {
	p := testParams()
	p.Lights = nil
	f := BuildFrame(p, 0, skyColor, skyColor)
	assert.Zero(t, f.LightCount)
	assert.Len(t, f.Lighting, 64)
}

func TestRenderWrapsBackendError(t *testing.T) {
	r := NewRenderer(failingBackend{NewLogBackend(zerolog.Nop())})
	err := r.Render(testParams())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "device lost")
	assert.Zero(t, r.FrameCount())
}

func TestResizeIgnoresEmptySurface(t *testing.T) {
	backend := NewLogBackend(zerolog.Nop())
	r := NewRenderer(backend)

	r.Resize(0, 600)
	w, h := backend.Size()
	assert.Zero(t, w)
	assert.Zero(t, h)

	r.Resize(800, 600)
	w, h = backend.Size()
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
}

func TestNilBackendPanics(t *testing.T) {
	assert.Panics(t, func() { NewRenderer(nil) })
}

func TestRenderModeCycle(t *testing.T) {
	assert.Equal(t, RenderModeNormal, RenderModeColor.Next())
	assert.Equal(t, RenderModeColor, RenderModeNormal.Next())
	assert.Equal(t, "flag.normal", PipelineKey(material.PipelineFlag, RenderModeNormal))
}
