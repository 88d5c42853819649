package light

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// MaxGPULights is the maximum number of lights that can be marshaled into the
// light block per frame. The reference rig uses six.
const MaxGPULights = 16

// GPULight is the GPU-aligned representation of a single lamp.
// Size: 64 bytes (std430 / WGSL aligned).
type GPULight struct {
	Position    [3]float32 // offset  0: world-space position
	LightType   uint32     // offset 12: 0 = point, 1 = spot
	Color       [3]float32 // offset 16: RGB color
	Intensity   float32    // offset 28: current (strobe-scheduled) intensity
	Direction   [3]float32 // offset 32: normalized world-space cone axis
	InnerCone   float32    // offset 44: cos(inner half-angle) for spot
	Attenuation [3]float32 // offset 48: constant, linear, quadratic
	OuterCone   float32    // offset 60: cos(outer half-angle) for spot
}

// Size returns the size of the GPULight struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (64)
func (g *GPULight) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPULight struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 64-byte buffer ready for GPU upload
func (g *GPULight) Marshal() []byte {
	buf := make([]byte, 64)
	putVec3(buf[0:12], g.Position)
	binary.LittleEndian.PutUint32(buf[12:16], g.LightType)
	putVec3(buf[16:28], g.Color)
	binary.LittleEndian.PutUint32(buf[28:32], math.Float32bits(g.Intensity))
	putVec3(buf[32:44], g.Direction)
	binary.LittleEndian.PutUint32(buf[44:48], math.Float32bits(g.InnerCone))
	putVec3(buf[48:60], g.Attenuation)
	binary.LittleEndian.PutUint32(buf[60:64], math.Float32bits(g.OuterCone))
	return buf
}

// GPULightingUniform is the GPU-aligned block holding the active day/night preset.
// Size: 64 bytes (std140 / WGSL aligned).
type GPULightingUniform struct {
	Ambient       [3]float32 // offset  0
	Ka            float32    // offset 12
	LightColor    [3]float32 // offset 16
	Kd            float32    // offset 28
	LightPosition [3]float32 // offset 32
	Ks            float32    // offset 44
	Emission      uint32     // offset 48: 1 = night-side emission on
	LightCount    uint32     // offset 52: number of GPULight entries following
	_pad          [2]uint32  // offset 56: padding to 64 bytes
}

// NewGPULightingUniform builds the lighting block from a preset and the coupled
// emission flag.
//
// Parameters:
//   - p: the active preset
//   - emission: the planet emission flag
//   - lightCount: number of visible plane lamps
//
// Returns:
//   - GPULightingUniform: the uniform block
func NewGPULightingUniform(p Preset, emission bool, lightCount int) GPULightingUniform {
	u := GPULightingUniform{
		Ambient:       p.Ambient,
		Ka:            p.Ka,
		LightColor:    p.LightColor,
		Kd:            p.Kd,
		LightPosition: p.LightPosition,
		Ks:            p.Ks,
		LightCount:    uint32(min(lightCount, MaxGPULights)),
	}
	if emission {
		u.Emission = 1
	}
	return u
}

// Size returns the size of the GPULightingUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (64)
func (u *GPULightingUniform) Size() int {
	return int(unsafe.Sizeof(*u))
}

// Marshal serializes the GPULightingUniform struct into a byte buffer suitable
// for GPU upload.
//
// Returns:
//   - []byte: 64-byte buffer ready for GPU upload
func (u *GPULightingUniform) Marshal() []byte {
	buf := make([]byte, 64)
	putVec3(buf[0:12], u.Ambient)
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(u.Ka))
	putVec3(buf[16:28], u.LightColor)
	binary.LittleEndian.PutUint32(buf[28:32], math.Float32bits(u.Kd))
	putVec3(buf[32:44], u.LightPosition)
	binary.LittleEndian.PutUint32(buf[44:48], math.Float32bits(u.Ks))
	binary.LittleEndian.PutUint32(buf[48:52], u.Emission)
	binary.LittleEndian.PutUint32(buf[52:56], u.LightCount)
	return buf
}

// ToGPULight converts a Light interface value into the GPU-aligned GPULight struct
// suitable for writing into the light storage buffer.
//
// Parameters:
//   - l: the Light to convert
//
// Returns:
//   - GPULight: the GPU-aligned representation
func ToGPULight(l Light) GPULight {
	a := l.Attenuation()
	return GPULight{
		Position:    l.Position(),
		LightType:   uint32(l.Type()),
		Color:       l.Color(),
		Intensity:   l.Intensity(),
		Direction:   l.Direction(),
		InnerCone:   l.InnerCone(),
		Attenuation: [3]float32{a.Constant, a.Linear, a.Quadratic},
		OuterCone:   l.OuterCone(),
	}
}

// MarshalLightBuffer marshals the lighting block followed by the given lamps into
// a byte buffer suitable for GPU upload. The buffer layout is:
//
//	[GPULightingUniform (64 bytes)] [GPULight × count (64 bytes each)]
//
// Lamps beyond MaxGPULights are dropped. Callers pass the array's visible lamps,
// so a closed plane-lights gate produces a header with a zero count.
//
// Parameters:
//   - preset: the active lighting preset
//   - emission: the planet emission flag
//   - lights: the lamps to marshal
//
// Returns:
//   - []byte: the marshaled buffer ready for GPU upload
func MarshalLightBuffer(preset Preset, emission bool, lights []Light) []byte {
	count := min(len(lights), MaxGPULights)
	header := NewGPULightingUniform(preset, emission, count)
	headerSize := header.Size()
	lightSize := (&GPULight{}).Size()

	buf := make([]byte, headerSize+count*lightSize)
	copy(buf, header.Marshal())

	offset := headerSize
	for _, l := range lights[:count] {
		gpu := ToGPULight(l)
		copy(buf[offset:offset+lightSize], gpu.Marshal())
		offset += lightSize
	}
	return buf
}

func putVec3(dst []byte, v [3]float32) {
	binary.LittleEndian.PutUint32(dst[0:4], math.Float32bits(v[0]))
	binary.LittleEndian.PutUint32(dst[4:8], math.Float32bits(v[1]))
	binary.LittleEndian.PutUint32(dst[8:12], math.Float32bits(v[2]))
}
