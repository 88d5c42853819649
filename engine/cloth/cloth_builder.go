package cloth

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
)

// SimulatorBuilderOption is a functional option for configuring a Simulator.
type SimulatorBuilderOption func(*simulatorImpl)

// WithLogger sets the logger used by the simulator.
func WithLogger(log zerolog.Logger) SimulatorBuilderOption {
	return func(s *simulatorImpl) {
		s.log = log
	}
}

// WithWaves sets the three wave terms. Directions are normalized.
//
// Parameters:
//   - waves: the wave parameters
//
// Returns:
//   - SimulatorBuilderOption: functional option to set the waves
func WithWaves(waves [WaveCount]WaveParameter) SimulatorBuilderOption {
	return func(s *simulatorImpl) {
		s.params = waves
	}
}

// WithAnchorZ sets the local Z of the pole edge. Vertices at or below it do not move.
//
// Parameters:
//   - z: minimum local Z of the flag mesh
//
// Returns:
//   - SimulatorBuilderOption: functional option to set the anchor
func WithAnchorZ(z float32) SimulatorBuilderOption {
	return func(s *simulatorImpl) {
		s.anchorZ = z
	}
}

// WithNormal sets the local axis the displacement is applied along.
//
// Parameters:
//   - n: flag-local normal
//
// Returns:
//   - SimulatorBuilderOption: functional option to set the normal
func WithNormal(n mgl32.Vec3) SimulatorBuilderOption {
	return func(s *simulatorImpl) {
		s.normal = n
	}
}

// WithMount sets the flag's placement relative to the plane and the rotation
// that undoes the mesh's authored orientation.
//
// Parameters:
//   - mount: flag-to-plane transform
//   - unrotate: correction applied after the mount
//
// Returns:
//   - SimulatorBuilderOption: functional option to set the mount
func WithMount(mount, unrotate mgl32.Mat4) SimulatorBuilderOption {
	return func(s *simulatorImpl) {
		s.mount = mount
		s.unrotate = unrotate
	}
}
