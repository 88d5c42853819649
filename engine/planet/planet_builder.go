package planet

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
)

// ModelBuilderOption is a functional option for configuring a planet Model.
type ModelBuilderOption func(*modelImpl)

// WithLogger sets the logger used by the model.
func WithLogger(log zerolog.Logger) ModelBuilderOption {
	return func(m *modelImpl) {
		m.log = log
	}
}

// WithPosition sets the planet center.
//
// Parameters:
//   - p: world-space center
//
// Returns:
//   - ModelBuilderOption: functional option to set the position
func WithPosition(p mgl32.Vec3) ModelBuilderOption {
	return func(m *modelImpl) {
		m.position = p
	}
}

// WithRadius sets the planet radius. Non-positive values fall back to 1.
//
// Parameters:
//   - r: radius in world units
//
// Returns:
//   - ModelBuilderOption: functional option to set the radius
func WithRadius(r float32) ModelBuilderOption {
	return func(m *modelImpl) {
		m.radius = r
	}
}

// WithRollGain sets how many radians per second the planet rolls per unit of
// plane speed.
//
// Parameters:
//   - gain: roll rate per unit speed
//
// Returns:
//   - ModelBuilderOption: functional option to set the roll gain
func WithRollGain(gain float32) ModelBuilderOption {
	return func(m *modelImpl) {
		m.rollGain = gain
	}
}

// WithRenormalizeEvery sets how many incremental updates may accumulate before the
// rotation is re-orthonormalized. Values below 1 mean every update.
//
// Parameters:
//   - n: update count between orthonormalization passes
//
// Returns:
//   - ModelBuilderOption: functional option to set the renormalization period
func WithRenormalizeEvery(n int) ModelBuilderOption {
	return func(m *modelImpl) {
		m.renormalizeEvery = n
	}
}
