package camera

import "github.com/go-gl/mathgl/mgl32"

// CameraController defines the orbit control system the camera reads from.
// Controllers own positional state. The eye sits on a sphere around the target:
//
//	position = target + basis · orbit(azimuth, elevation) · restDirection · radius
//
// where basis is an optional slave rotation (identity unless a follow mode
// pins the camera to a rotating body) and orbit is the user-driven rotation,
// identity when azimuth and elevation are both zero.
type CameraController interface {
	orbitCameraController

	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: world-space camera position
	Position() mgl32.Vec3

	// Target returns the orbit center.
	//
	// Returns:
	//   - mgl32.Vec3: world-space orbit center
	Target() mgl32.Vec3

	// LookAt returns the point the camera looks at. This is the target unless an
	// explicit look-at point has been set.
	//
	// Returns:
	//   - mgl32.Vec3: world-space look-at point
	LookAt() mgl32.Vec3

	// Up returns the camera's up vector: the basis' Y axis.
	//
	// Returns:
	//   - mgl32.Vec3: unit up vector
	Up() mgl32.Vec3

	// SetTarget sets the orbit center and recomputes position.
	//
	// Parameters:
	//   - target: world-space coordinates
	SetTarget(target mgl32.Vec3)

	// SetLookAt overrides the look-at point without moving the orbit center.
	//
	// Parameters:
	//   - p: world-space look-at point
	SetLookAt(p mgl32.Vec3)

	// ClearLookAt drops any look-at override so the camera looks at the target again.
	ClearLookAt()

	// Basis returns the slave rotation applied to the orbit offset.
	//
	// Returns:
	//   - mgl32.Mat3: the basis rotation
	Basis() mgl32.Mat3

	// SetBasis sets the slave rotation and recomputes position.
	//
	// Parameters:
	//   - basis: an orthonormal rotation
	SetBasis(basis mgl32.Mat3)

	// SetOffset sets the rest offset from the target: its direction becomes the
	// rest direction and its length the radius (clamped to the radius bounds).
	// A zero offset is ignored.
	//
	// Parameters:
	//   - offset: rest offset from target to eye
	SetOffset(offset mgl32.Vec3)

	// Zoom scales the orbit radius. Positive delta zooms in (closer to target).
	// The radius stays inside its bounds.
	//
	// Parameters:
	//   - delta: zoom amount, scaled by ZoomSpeed
	Zoom(delta float32)
}

// orbitCameraController defines orbit-specific control methods.
type orbitCameraController interface {
	// Orbit rotates the camera around the target from a mouse drag delta.
	// Elevation is clamped to its bounds.
	//
	// Parameters:
	//   - dx, dy: drag delta in pixels, scaled by MouseSensitivity
	Orbit(dx, dy float32)

	// ResetOrbit sets azimuth and elevation back to zero, making the orbit
	// rotation identity.
	ResetOrbit()

	// OrbitRotation returns the user-driven orbit rotation.
	//
	// Returns:
	//   - mgl32.Mat3: the orbit rotation
	OrbitRotation() mgl32.Mat3

	// Radius returns the current orbit radius (distance from target).
	//
	// Returns:
	//   - float32: current distance from target
	Radius() float32

	// SetRadius sets the orbit radius directly, clamped to min/max bounds.
	//
	// Parameters:
	//   - radius: new distance from target
	SetRadius(radius float32)

	// MinRadius returns the minimum allowed orbit radius. Always positive.
	//
	// Returns:
	//   - float32: minimum zoom distance
	MinRadius() float32

	// MaxRadius returns the maximum allowed orbit radius.
	//
	// Returns:
	//   - float32: maximum zoom distance
	MaxRadius() float32

	// Azimuth returns the current horizontal orbit angle.
	//
	// Returns:
	//   - float32: azimuth in radians
	Azimuth() float32

	// Elevation returns the current vertical orbit angle.
	//
	// Returns:
	//   - float32: elevation in radians
	Elevation() float32

	// MouseSensitivity returns the mouse drag sensitivity multiplier.
	//
	// Returns:
	//   - float32: radians per pixel of drag
	MouseSensitivity() float32

	// ZoomSpeed returns the zoom speed multiplier.
	//
	// Returns:
	//   - float32: radius fraction per zoom unit
	ZoomSpeed() float32
}
