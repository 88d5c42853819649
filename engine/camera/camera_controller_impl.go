package camera

import (
	"github.com/Carmen-Shannon/oxy-flight/common"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// defaultMinRadius is used whenever a configured minimum radius is not positive.
const defaultMinRadius = 0.5

// cameraControllerImpl is the single implementation of CameraController.
type cameraControllerImpl struct {
	position mgl32.Vec3
	target   mgl32.Vec3
	lookAt   *mgl32.Vec3
	basis    mgl32.Mat3

	restDirection mgl32.Vec3
	radius        float32
	azimuth       float32
	elevation     float32

	minRadius    float32
	maxRadius    float32
	minElevation float32
	maxElevation float32

	mouseSensitivity float32
	zoomSpeed        float32
}

var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a new camera controller with sensible defaults.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		basis:         mgl32.Ident3(),
		restDirection: mgl32.Vec3{0, 0, 1},
		radius:        10,

		minRadius:    defaultMinRadius,
		maxRadius:    200,
		minElevation: -(math32.Pi/2 - 0.1),
		maxElevation: math32.Pi/2 - 0.1,

		mouseSensitivity: 0.005,
		zoomSpeed:        0.05,
	}

	for _, option := range options {
		option(cc)
	}

	if cc.minRadius <= 0 {
		cc.minRadius = defaultMinRadius
	}
	if cc.maxRadius < cc.minRadius {
		cc.maxRadius = cc.minRadius
	}
	cc.radius = common.Clamp(cc.radius, cc.minRadius, cc.maxRadius)
	cc.updatePosition()
	return cc
}

// updatePosition recomputes the camera position from the orbit state.
// Must be called whenever radius, angles, basis or target change.
func (cc *cameraControllerImpl) updatePosition() {
	offset := cc.basis.Mul3(cc.orbitRotation()).Mul3x1(cc.restDirection).Mul(cc.radius)
	cc.position = cc.target.Add(offset)
}

// orbitRotation is yaw around Y followed by a tilt around X.
func (cc *cameraControllerImpl) orbitRotation() mgl32.Mat3 {
	return mgl32.Rotate3DY(cc.azimuth).Mul3(mgl32.Rotate3DX(-cc.elevation))
}

func (cc *cameraControllerImpl) Position() mgl32.Vec3 {
	return cc.position
}

func (cc *cameraControllerImpl) Target() mgl32.Vec3 {
	return cc.target
}

func (cc *cameraControllerImpl) LookAt() mgl32.Vec3 {
	if cc.lookAt != nil {
		return *cc.lookAt
	}
	return cc.target
}

func (cc *cameraControllerImpl) Up() mgl32.Vec3 {
	return cc.basis.Col(1)
}

func (cc *cameraControllerImpl) SetTarget(target mgl32.Vec3) {
	cc.target = target
	cc.updatePosition()
}

func (cc *cameraControllerImpl) SetLookAt(p mgl32.Vec3) {
	cc.lookAt = &p
}

func (cc *cameraControllerImpl) ClearLookAt() {
	cc.lookAt = nil
}

func (cc *cameraControllerImpl) Basis() mgl32.Mat3 {
	return cc.basis
}

func (cc *cameraControllerImpl) SetBasis(basis mgl32.Mat3) {
	cc.basis = basis
	cc.updatePosition()
}

func (cc *cameraControllerImpl) SetOffset(offset mgl32.Vec3) {
	l := offset.Len()
	if l == 0 || !common.Finite(l) {
		return
	}
	cc.restDirection = offset.Mul(1 / l)
	cc.radius = common.Clamp(l, cc.minRadius, cc.maxRadius)
	cc.updatePosition()
}

func (cc *cameraControllerImpl) Zoom(delta float32) {
	if !common.Finite(delta) {
		return
	}
	cc.radius = common.Clamp(cc.radius*(1-delta*cc.zoomSpeed), cc.minRadius, cc.maxRadius)
	cc.updatePosition()
}

func (cc *cameraControllerImpl) Orbit(dx, dy float32) {
	if !common.Finite(dx) || !common.Finite(dy) {
		return
	}
	cc.azimuth -= dx * cc.mouseSensitivity
	cc.elevation = common.Clamp(cc.elevation+dy*cc.mouseSensitivity, cc.minElevation, cc.maxElevation)
	cc.updatePosition()
}

func (cc *cameraControllerImpl) ResetOrbit() {
	cc.azimuth = 0
	cc.elevation = 0
	cc.updatePosition()
}

func (cc *cameraControllerImpl) OrbitRotation() mgl32.Mat3 {
	return cc.orbitRotation()
}

func (cc *cameraControllerImpl) Radius() float32 {
	return cc.radius
}

func (cc *cameraControllerImpl) SetRadius(radius float32) {
	cc.radius = common.Clamp(radius, cc.minRadius, cc.maxRadius)
	cc.updatePosition()
}

func (cc *cameraControllerImpl) MinRadius() float32 {
	return cc.minRadius
}

func (cc *cameraControllerImpl) MaxRadius() float32 {
	return cc.maxRadius
}

func (cc *cameraControllerImpl) Azimuth() float32 {
	return cc.azimuth
}

func (cc *cameraControllerImpl) Elevation() float32 {
	return cc.elevation
}

func (cc *cameraControllerImpl) MouseSensitivity() float32 {
	return cc.mouseSensitivity
}

func (cc *cameraControllerImpl) ZoomSpeed() float32 {
	return cc.zoomSpeed
}
