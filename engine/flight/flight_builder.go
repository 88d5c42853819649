package flight

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
)

// ModelBuilderOption is a functional option for configuring a flight Model.
type ModelBuilderOption func(*modelImpl)

// WithLogger sets the logger used by the model.
//
// Parameters:
//   - log: the logger
//
// Returns:
//   - ModelBuilderOption: functional option to set the logger
func WithLogger(log zerolog.Logger) ModelBuilderOption {
	return func(m *modelImpl) {
		m.log = log
	}
}

// WithBasePosition sets the plane's starting position.
//
// Parameters:
//   - p: world-space start position
//
// Returns:
//   - ModelBuilderOption: functional option to set the base position
func WithBasePosition(p mgl32.Vec3) ModelBuilderOption {
	return func(m *modelImpl) {
		m.basePosition = p
	}
}

// WithBaseOrientation sets the plane's starting orientation.
//
// Parameters:
//   - o: world-space start rotation
//
// Returns:
//   - ModelBuilderOption: functional option to set the base orientation
func WithBaseOrientation(o mgl32.Mat3) ModelBuilderOption {
	return func(m *modelImpl) {
		m.baseOrientation = o
	}
}

// WithInitialSpeed sets the starting speed. It is clamped to the speed bounds.
//
// Parameters:
//   - speed: start speed in units per second
//
// Returns:
//   - ModelBuilderOption: functional option to set the initial speed
func WithInitialSpeed(speed float32) ModelBuilderOption {
	return func(m *modelImpl) {
		m.initialSpeed = speed
	}
}

// WithSpeedBounds sets the speed clamp range.
//
// Parameters:
//   - min: minimum speed
//   - max: maximum speed
//
// Returns:
//   - ModelBuilderOption: functional option to set the speed bounds
func WithSpeedBounds(min, max float32) ModelBuilderOption {
	return func(m *modelImpl) {
		m.speedMin = min
		m.speedMax = max
	}
}

// WithAcceleration sets the speed change per second while FASTER or SLOWER is held.
//
// Parameters:
//   - accel: acceleration in units per second squared
//
// Returns:
//   - ModelBuilderOption: functional option to set the acceleration
func WithAcceleration(accel float32) ModelBuilderOption {
	return func(m *modelImpl) {
		m.acceleration = accel
	}
}

// WithTurnRate sets the yaw and pitch rate applied while a turn control is held.
//
// Parameters:
//   - rate: turn rate in radians per second
//
// Returns:
//   - ModelBuilderOption: functional option to set the turn rate
func WithTurnRate(rate float32) ModelBuilderOption {
	return func(m *modelImpl) {
		m.turnRate = rate
	}
}

// WithBankGain sets the visual roll applied per radian/second of yaw rate.
//
// Parameters:
//   - gain: bank angle multiplier
//
// Returns:
//   - ModelBuilderOption: functional option to set the bank gain
func WithBankGain(gain float32) ModelBuilderOption {
	return func(m *modelImpl) {
		m.bankGain = gain
	}
}

// WithPropeller configures the propeller part: its hub in plane-local space and
// radians of spin per unit of distance flown.
//
// Parameters:
//   - hub: local-space pivot of the propeller
//   - gain: spin multiplier applied to speed
//
// Returns:
//   - ModelBuilderOption: functional option to configure the propeller
func WithPropeller(hub mgl32.Vec3, gain float32) ModelBuilderOption {
	return func(m *modelImpl) {
		m.propellerHub = hub
		m.propellerGain = gain
	}
}
