package material

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUMaterial is the GPU-aligned uniform for one material draw.
// Size: 32 bytes (std140 / WGSL aligned).
type GPUMaterial struct {
	Diffuse   [4]float32 // offset  0: RGBA diffuse color
	Shininess float32    // offset 16: specular exponent
	Emissive  uint32     // offset 20: 1 = emit this frame
	_pad      [2]uint32  // offset 24: padding to 32 bytes
}

// NewGPUMaterial builds the uniform for a material. The emissive bit is set only
// when the material is emissive and the frame's emission flag is on.
//
// Parameters:
//   - m: the material
//   - emission: the frame's emission flag
//
// Returns:
//   - GPUMaterial: the uniform block
func NewGPUMaterial(m Material, emission bool) GPUMaterial {
	g := GPUMaterial{
		Diffuse:   m.Diffuse(),
		Shininess: m.Shininess(),
	}
	if emission && m.Emissive() {
		g.Emissive = 1
	}
	return g
}

// Size returns the size of the GPUMaterial struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUMaterial) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUMaterial struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload.
func (g *GPUMaterial) Marshal() []byte {
	buf := make([]byte, 32)
	for i, v := range g.Diffuse {
		binary.LittleEndian.PutUint32(buf[i*4:i*4+4], math.Float32bits(v))
	}
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.Shininess))
	binary.LittleEndian.PutUint32(buf[20:24], g.Emissive)
	return buf
}
