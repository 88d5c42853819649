// Package planet rotates the planet beneath the plane. The plane never leaves
// the planet's neighbourhood; instead the planet turns under it, driven by the
// plane's speed and turn rates.
package planet

import (
	"github.com/Carmen-Shannon/oxy-flight/common"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
)

type modelImpl struct {
	log zerolog.Logger

	position mgl32.Vec3
	radius   float32
	rotation mgl32.Mat3

	rollGain         float32
	renormalizeEvery int
	sinceRenormalize int
}

// Model defines the planet rotation model.
type Model interface {
	// Advance applies one incremental rotation. The angular velocity is built from
	// the plane's forward speed (roll about world X) and its turn rates (pitch
	// reverses the roll, yaw spins the planet about world Y). A non-positive or
	// non-finite dt, or a zero angular velocity, leaves the rotation untouched.
	//
	// Parameters:
	//   - turning: the plane's turn rates, X = pitch, Y = yaw
	//   - speed: the plane's forward speed
	//   - dt: elapsed time in seconds
	//
	// Returns:
	//   - mgl32.Mat3: the rotation after the update
	Advance(turning mgl32.Vec3, speed, dt float32) mgl32.Mat3

	// Rotation returns the current planet rotation.
	//
	// Returns:
	//   - mgl32.Mat3: the rotation matrix, always orthonormal
	Rotation() mgl32.Mat3

	// Position returns the planet center in world space.
	//
	// Returns:
	//   - mgl32.Vec3: the planet center
	Position() mgl32.Vec3

	// Radius returns the planet radius used to scale the mesh.
	//
	// Returns:
	//   - float32: the radius in world units
	Radius() float32

	// Transform returns the planet model matrix: translation, rotation and uniform
	// radius scale.
	//
	// Returns:
	//   - mgl32.Mat4: the world transform of the planet
	Transform() mgl32.Mat4

	// Reset restores the identity rotation.
	Reset()
}

var _ Model = &modelImpl{}

// NewModel creates a planet rotation model with the given options applied.
//
// Parameters:
//   - options: functional options to configure the model
//
// Returns:
//   - Model: the newly created planet model
func NewModel(options ...ModelBuilderOption) Model {
	m := &modelImpl{
		log:              zerolog.Nop(),
		position:         mgl32.Vec3{0, -22, 0},
		radius:           20,
		rotation:         mgl32.Ident3(),
		rollGain:         0.02,
		renormalizeEvery: 8,
	}
	for _, option := range options {
		option(m)
	}
	if m.renormalizeEvery < 1 {
		m.renormalizeEvery = 1
	}
	if m.radius <= 0 {
		m.radius = 1
	}
	return m
}

func (m *modelImpl) Advance(turning mgl32.Vec3, speed, dt float32) mgl32.Mat3 {
	if dt <= 0 || !common.Finite(dt) {
		return m.rotation
	}

	// The plane sits above the planet's +Y pole, so rolling the surface toward -Z
	// is a negative rotation about world X.
	omega := mgl32.Vec3{turning.X() - speed*m.rollGain, -turning.Y(), 0}
	rate := omega.Len()
	if rate == 0 || !common.Finite(rate) {
		return m.rotation
	}

	// World-space increment, so it is applied on the left.
	delta := common.AxisAngle3(omega.Mul(1/rate), rate*dt)
	m.rotation = delta.Mul3(m.rotation)

	m.sinceRenormalize++
	if m.sinceRenormalize >= m.renormalizeEvery {
		m.rotation = common.Orthonormalize3(m.rotation)
		m.sinceRenormalize = 0
	}
	return m.rotation
}

func (m *modelImpl) Rotation() mgl32.Mat3 {
	return m.rotation
}

func (m *modelImpl) Position() mgl32.Vec3 {
	return m.position
}

func (m *modelImpl) Radius() float32 {
	return m.radius
}

func (m *modelImpl) Transform() mgl32.Mat4 {
	p := m.position
	return mgl32.Translate3D(p.X(), p.Y(), p.Z()).
		Mul4(m.rotation.Mat4()).
		Mul4(mgl32.Scale3D(m.radius, m.radius, m.radius))
}

func (m *modelImpl) Reset() {
	m.rotation = mgl32.Ident3()
	m.sinceRenormalize = 0
	m.log.Debug().Msg("planet rotation reset")
}
