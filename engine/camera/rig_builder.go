package camera

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
)

// RigBuilderOption is a functional option for configuring a Rig.
type RigBuilderOption func(*rigImpl)

// WithLogger sets the logger used by the rig.
func WithLogger(log zerolog.Logger) RigBuilderOption {
	return func(r *rigImpl) {
		r.log = log
	}
}

// WithFovRange sets the base field of view, restored on every mode switch, and the
// cap the speed-responsive fov may widen to.
//
// Parameters:
//   - base: base fov in radians
//   - max: maximum fov in radians
//
// Returns:
//   - RigBuilderOption: functional option to set the fov range
func WithFovRange(base, max float32) RigBuilderOption {
	return func(r *rigImpl) {
		r.baseFov = base
		r.maxFov = max
	}
}

// WithFovSpeedGain sets the fov widening per unit of plane speed in FollowPlane.
//
// Parameters:
//   - gain: radians of fov per unit speed
//
// Returns:
//   - RigBuilderOption: functional option to set the fov gain
func WithFovSpeedGain(gain float32) RigBuilderOption {
	return func(r *rigImpl) {
		r.fovSpeedGain = gain
	}
}

// WithFollowOffset sets the rest offset from the plane in FollowPlane.
//
// Parameters:
//   - offset: offset from the plane to the eye
//
// Returns:
//   - RigBuilderOption: functional option to set the follow offset
func WithFollowOffset(offset mgl32.Vec3) RigBuilderOption {
	return func(r *rigImpl) {
		r.followOffset = offset
	}
}

// WithPlanetOffset sets the rest offset from the planet center in the
// planet-slaved modes.
//
// Parameters:
//   - offset: offset from the planet center to the eye
//
// Returns:
//   - RigBuilderOption: functional option to set the planet offset
func WithPlanetOffset(offset mgl32.Vec3) RigBuilderOption {
	return func(r *rigImpl) {
		r.planetOffset = offset
	}
}

// WithFreeOffset sets the rest offset from the pivot in Free mode.
//
// Parameters:
//   - offset: offset from the pivot to the eye
//
// Returns:
//   - RigBuilderOption: functional option to set the free offset
func WithFreeOffset(offset mgl32.Vec3) RigBuilderOption {
	return func(r *rigImpl) {
		r.freeOffset = offset
	}
}
