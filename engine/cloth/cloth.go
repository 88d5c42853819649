// Package cloth animates the flag trailing the plane. The simulator owns the
// wave parameters and a clock; the renderer evaluates the displacement field
// per vertex from an immutable Snapshot.
package cloth

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-flight/common"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
)

// WaveCount is the number of superposed wave terms.
const WaveCount = 3

// WaveParameter is one sinusoidal term of the displacement field.
type WaveParameter struct {
	Amplitude float32    `yaml:"amplitude"`
	Omega     float32    `yaml:"omega"`
	Phi       float32    `yaml:"phi"`
	Direction mgl32.Vec3 `yaml:"direction"`
}

// Snapshot is a value copy of the simulator state handed to the renderer.
type Snapshot struct {
	Params  [WaveCount]WaveParameter
	Time    float64
	AnchorZ float32
	Normal  mgl32.Vec3
}

// Displacement evaluates the flag's offset along its normal at a local vertex:
//
//	Σ a·sin(ω·dot(d, p) + φ·t) · clamp(p.z - AnchorZ, 0, 1)
//
// The last factor pins the edge attached to the pole and fades the wave in over
// the first unit of flag length.
//
// Parameters:
//   - local: vertex position in flag-local space
//
// Returns:
//   - float32: signed offset along the flag normal
func (s Snapshot) Displacement(local mgl32.Vec3) float32 {
	t := float32(s.Time)
	var sum float32
	for _, w := range s.Params {
		sum += w.Amplitude * math32.Sin(w.Omega*w.Direction.Dot(local)+w.Phi*t)
	}
	return sum * common.Clamp(local.Z()-s.AnchorZ, 0, 1)
}

// Displace returns the displaced local vertex position.
//
// Parameters:
//   - local: vertex position in flag-local space
//
// Returns:
//   - mgl32.Vec3: the displaced position
func (s Snapshot) Displace(local mgl32.Vec3) mgl32.Vec3 {
	return local.Add(s.Normal.Mul(s.Displacement(local)))
}

type simulatorImpl struct {
	log zerolog.Logger

	params  [WaveCount]WaveParameter
	time    float64
	anchorZ float32
	normal  mgl32.Vec3

	mount    mgl32.Mat4
	unrotate mgl32.Mat4
}

// Simulator advances the flag clock and exposes the wave parameters.
type Simulator interface {
	// Advance moves the flag clock forward. A non-positive or non-finite dt is a
	// no-op. The clock is independent of the light strobe clock.
	//
	// Parameters:
	//   - dt: elapsed time in seconds
	Advance(dt float32)

	// Time returns the flag clock in seconds.
	//
	// Returns:
	//   - float64: accumulated time
	Time() float64

	// Params returns the wave parameters. They never change during a run.
	//
	// Returns:
	//   - [WaveCount]WaveParameter: the wave terms
	Params() [WaveCount]WaveParameter

	// Snapshot returns an immutable copy of parameters and clock.
	//
	// Returns:
	//   - Snapshot: the renderer input
	Snapshot() Snapshot

	// ModelMatrix returns the flag's world transform: the plane transform, then the
	// flag's mount on the plane, then the rotation that undoes the mesh's authored
	// orientation.
	//
	// Parameters:
	//   - planeTransform: the plane's world transform
	//
	// Returns:
	//   - mgl32.Mat4: the flag model matrix
	ModelMatrix(planeTransform mgl32.Mat4) mgl32.Mat4
}

var _ Simulator = &simulatorImpl{}

// NewSimulator creates a flag simulator. Without WithWaves it uses DefaultWaves.
//
// Parameters:
//   - options: functional options to configure the simulator
//
// Returns:
//   - Simulator: the newly created simulator
//   - error: if a wave parameter is not finite
func NewSimulator(options ...SimulatorBuilderOption) (Simulator, error) {
	s := &simulatorImpl{
		log:      zerolog.Nop(),
		params:   DefaultWaves(),
		anchorZ:  0,
		normal:   mgl32.Vec3{1, 0, 0},
		mount:    mgl32.Translate3D(0, 1.1, -4.4),
		unrotate: mgl32.HomogRotate3DY(math32.Pi),
	}
	for _, option := range options {
		option(s)
	}
	for i, w := range s.params {
		if !common.Finite(w.Amplitude) || !common.Finite(w.Omega) || !common.Finite(w.Phi) {
			return nil, fmt.Errorf("cloth: wave %d has a non-finite parameter", i)
		}
		if l := w.Direction.Len(); l > 0 {
			s.params[i].Direction = w.Direction.Mul(1 / l)
		}
	}
	if s.normal.Len() > 0 {
		s.normal = s.normal.Normalize()
	}
	s.log.Debug().Interface("waves", s.params).Msg("flag simulator initialized")
	return s, nil
}

// DefaultWaves returns the stock flag waves: a long primary ripple along the
// flag plus two shorter diagonal harmonics.
func DefaultWaves() [WaveCount]WaveParameter {
	return [WaveCount]WaveParameter{
		{Amplitude: 0.12, Omega: 2.0, Phi: 6.0, Direction: mgl32.Vec3{0, 0, 1}},
		{Amplitude: 0.05, Omega: 4.5, Phi: 9.0, Direction: mgl32.Vec3{0, 0.6, 0.8}},
		{Amplitude: 0.02, Omega: 8.0, Phi: 13.0, Direction: mgl32.Vec3{0, -0.6, 0.8}},
	}
}

func (s *simulatorImpl) Advance(dt float32) {
	if dt <= 0 || !common.Finite(dt) {
		return
	}
	s.time += float64(dt)
}

func (s *simulatorImpl) Time() float64 {
	return s.time
}

func (s *simulatorImpl) Params() [WaveCount]WaveParameter {
	return s.params
}

func (s *simulatorImpl) Snapshot() Snapshot {
	return Snapshot{
		Params:  s.params,
		Time:    s.time,
		AnchorZ: s.anchorZ,
		Normal:  s.normal,
	}
}

func (s *simulatorImpl) ModelMatrix(planeTransform mgl32.Mat4) mgl32.Mat4 {
	return planeTransform.Mul4(s.mount).Mul4(s.unrotate)
}
