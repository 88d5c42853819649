package cloth

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUWave is one wave term as laid out in the flag uniform block.
// Size: 32 bytes.
type GPUWave struct {
	Direction [3]float32 // offset  0
	Amplitude float32    // offset 12
	Omega     float32    // offset 16
	Phi       float32    // offset 20
	_pad      [2]float32 // offset 24
}

// GPUFlagUniform is the GPU-aligned flag animation block.
// Size: 112 bytes (std140 / WGSL aligned).
type GPUFlagUniform struct {
	Waves   [WaveCount]GPUWave // offset  0
	Time    float32            // offset 96
	AnchorZ float32            // offset 100
	_pad    [2]float32         // offset 104
}

// NewGPUFlagUniform converts a snapshot into the uniform block. The clock is
// narrowed to float32 only here.
//
// Parameters:
//   - s: the simulator snapshot
//
// Returns:
//   - GPUFlagUniform: the uniform block
func NewGPUFlagUniform(s Snapshot) GPUFlagUniform {
	u := GPUFlagUniform{Time: float32(s.Time), AnchorZ: s.AnchorZ}
	for i, w := range s.Params {
		u.Waves[i] = GPUWave{
			Direction: w.Direction,
			Amplitude: w.Amplitude,
			Omega:     w.Omega,
			Phi:       w.Phi,
		}
	}
	return u
}

// Size returns the size of the GPUFlagUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (112)
func (u *GPUFlagUniform) Size() int {
	return int(unsafe.Sizeof(*u))
}

// Marshal serializes the GPUFlagUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 112-byte buffer ready for GPU upload
func (u *GPUFlagUniform) Marshal() []byte {
	buf := make([]byte, u.Size())
	put := func(off int, v float32) {
		binary.LittleEndian.PutUint32(buf[off:off+4], math.Float32bits(v))
	}
	for i, w := range u.Waves {
		base := i * 32
		put(base, w.Direction[0])
		put(base+4, w.Direction[1])
		put(base+8, w.Direction[2])
		put(base+12, w.Amplitude)
		put(base+16, w.Omega)
		put(base+20, w.Phi)
	}
	put(96, u.Time)
	put(100, u.AnchorZ)
	return buf
}
