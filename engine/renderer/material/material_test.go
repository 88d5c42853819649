package material

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMaterialDefaults(t *testing.T) {
	m := NewMaterial(WithName("hull"))
	assert.Equal(t, "hull", m.Name())
	assert.Equal(t, [4]float32{1, 1, 1, 1}, m.Diffuse())
	assert.False(t, m.Emissive())
	assert.Equal(t, PipelineScene, m.PipelineKey())

	off, count := m.IndexRange()
	assert.Zero(t, off)
	assert.Zero(t, count)
}

func TestSetPipelineKey(t *testing.T) {
	m := NewMaterial()
	m.SetPipelineKey(PipelineFlag)
	assert.Equal(t, PipelineFlag, m.PipelineKey())
}

func TestGPUMaterialEmissionGate(t *testing.T) {
	glow := NewMaterial(WithEmissive(), WithDiffuse([4]float32{0.2, 0.4, 0.6, 1}))
	plain := NewMaterial()

	on := NewGPUMaterial(glow, true)
	off := NewGPUMaterial(glow, false)
	never := NewGPUMaterial(plain, true)

	assert.Equal(t, uint32(1), on.Emissive)
	assert.Equal(t, uint32(0), off.Emissive)
	assert.Equal(t, uint32(0), never.Emissive)
}

func TestGPUMaterialMarshal(t *testing.T) {
	g := NewGPUMaterial(NewMaterial(WithShininess(8), WithEmissive()), true)
	assert.Equal(t, 32, g.Size())

	buf := g.Marshal()
	assert.Len(t, buf, g.Size())
	assert.Equal(t, float32(8), math.Float32frombits(binary.LittleEndian.Uint32(buf[16:20])))
	assert.Equal(t, uint32(1), binary.LittleEndian.Uint32(buf[20:24]))
}
