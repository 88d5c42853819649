// Package flight integrates the plane's position, orientation and speed from
// discrete control input.
package flight

import (
	"github.com/Carmen-Shannon/oxy-flight/common"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
)

// State is a snapshot of the plane's flight state.
type State struct {
	// Position is the plane origin in world space.
	Position mgl32.Vec3
	// Orientation is the plane's world rotation. Local +Z is forward, +Y is up and
	// +X points along the left wing.
	Orientation mgl32.Mat3
	// Speed is the forward speed in world units per second.
	Speed float32
	// Turning holds the current turn rates in radians per second: X is pitch
	// (positive = nose up), Y is yaw (positive = left). Z is always zero.
	Turning mgl32.Vec3
	// PropellerAngle is the accumulated propeller rotation in radians, wrapped to [0, 2π).
	PropellerAngle float32
}

type modelImpl struct {
	log zerolog.Logger

	state State

	basePosition    mgl32.Vec3
	baseOrientation mgl32.Mat3
	initialSpeed    float32

	speedMin      float32
	speedMax      float32
	acceleration  float32
	turnRate      float32
	bankGain      float32
	propellerGain float32
	propellerHub  mgl32.Vec3
}

// Model defines the flight model of the plane.
// Advance is the only mutator of the flight state during a run.
type Model interface {
	// State returns a copy of the current flight state.
	//
	// Returns:
	//   - State: the current state
	State() State

	// Advance integrates speed, turn rates, orientation and position for one tick.
	// A non-positive or non-finite dt leaves the state untouched.
	//
	// Parameters:
	//   - controls: the control flags held during this tick
	//   - dt: elapsed time in seconds
	//
	// Returns:
	//   - State: the state after integration
	Advance(controls Control, dt float32) State

	// Transform returns the plane's model matrix: translation, integrated
	// orientation and a visual bank roll proportional to the yaw rate.
	//
	// Returns:
	//   - mgl32.Mat4: the world transform of the plane body
	Transform() mgl32.Mat4

	// PropellerTransform returns the propeller part transform relative to the plane
	// body, spinning around the hub on the local Z axis.
	//
	// Returns:
	//   - mgl32.Mat4: the part transform
	PropellerTransform() mgl32.Mat4

	// Forward returns the plane's world-space forward axis.
	//
	// Returns:
	//   - mgl32.Vec3: unit forward vector
	Forward() mgl32.Vec3

	// SpeedBounds returns the configured speed clamp range.
	//
	// Returns:
	//   - min, max: the speed bounds
	SpeedBounds() (min, max float32)

	// Reset restores the initial position, orientation and speed.
	Reset()
}

var _ Model = &modelImpl{}

// NewModel creates a flight model with the given options applied on top of the
// defaults. The plane starts at the base position, facing +Z, at the initial speed
// clamped into the speed bounds.
//
// Parameters:
//   - options: functional options to configure the model
//
// Returns:
//   - Model: the newly created flight model
func NewModel(options ...ModelBuilderOption) Model {
	m := &modelImpl{
		log:             zerolog.Nop(),
		baseOrientation: mgl32.Ident3(),
		speedMin:        0,
		speedMax:        10,
		acceleration:    1,
		turnRate:        0.8,
		bankGain:        0.5,
		propellerGain:   6,
	}
	for _, option := range options {
		option(m)
	}
	if m.speedMax < m.speedMin {
		m.speedMin, m.speedMax = m.speedMax, m.speedMin
	}
	m.Reset()
	m.log.Debug().
		Float32("speedMin", m.speedMin).
		Float32("speedMax", m.speedMax).
		Float32("acceleration", m.acceleration).
		Msg("flight model initialized")
	return m
}

func (m *modelImpl) State() State {
	return m.state
}

func (m *modelImpl) SpeedBounds() (min, max float32) {
	return m.speedMin, m.speedMax
}

func (m *modelImpl) Reset() {
	m.state = State{
		Position:    m.basePosition,
		Orientation: m.baseOrientation,
		Speed:       common.Clamp(m.initialSpeed, m.speedMin, m.speedMax),
	}
}

func (m *modelImpl) Advance(controls Control, dt float32) State {
	if dt <= 0 || !common.Finite(dt) {
		return m.state
	}

	s := &m.state

	if controls.Has(Faster) {
		s.Speed += dt * m.acceleration
	}
	if controls.Has(Slower) {
		s.Speed -= dt * m.acceleration
	}
	s.Speed = common.Clamp(s.Speed, m.speedMin, m.speedMax)

	// Turning has no inertia: it is rebuilt from the held controls every tick.
	var pitch, yaw float32
	if controls.Has(Left) {
		yaw += m.turnRate
	}
	if controls.Has(Right) {
		yaw -= m.turnRate
	}
	if controls.Has(Up) {
		pitch += m.turnRate
	}
	if controls.Has(Down) {
		pitch -= m.turnRate
	}
	s.Turning = mgl32.Vec3{pitch, yaw, 0}

	if yaw != 0 || pitch != 0 {
		// Local-frame rotation: yaw about local up, then pitch about local left wing.
		// A positive X rotation tips +Z toward -Y, so nose-up pitch is negated.
		delta := mgl32.Rotate3DY(yaw * dt).Mul3(mgl32.Rotate3DX(-pitch * dt))
		s.Orientation = common.Orthonormalize3(s.Orientation.Mul3(delta))
	}

	s.Position = s.Position.Add(m.forward().Mul(s.Speed * dt))
	s.PropellerAngle = common.WrapAngle(s.PropellerAngle + s.Speed*m.propellerGain*dt)

	return m.state
}

func (m *modelImpl) Forward() mgl32.Vec3 {
	return m.forward()
}

// forward returns the local +Z axis rotated into world space.
func (m *modelImpl) forward() mgl32.Vec3 {
	return m.state.Orientation.Col(2).Normalize()
}

func (m *modelImpl) Transform() mgl32.Mat4 {
	s := m.state
	bank := mgl32.HomogRotate3DZ(-s.Turning.Y() * m.bankGain)
	return mgl32.Translate3D(s.Position.X(), s.Position.Y(), s.Position.Z()).
		Mul4(s.Orientation.Mat4()).
		Mul4(bank)
}

func (m *modelImpl) PropellerTransform() mgl32.Mat4 {
	h := m.propellerHub
	return mgl32.Translate3D(h.X(), h.Y(), h.Z()).
		Mul4(mgl32.HomogRotate3DZ(m.state.PropellerAngle)).
		Mul4(mgl32.Translate3D(-h.X(), -h.Y(), -h.Z()))
}
