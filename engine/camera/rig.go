package camera

import (
	"github.com/Carmen-Shannon/oxy-flight/common"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
)

// Subjects is the per-frame state of the entities a Rig can follow. The scene
// fills it after the flight and planet models have been advanced.
type Subjects struct {
	PlanePosition  mgl32.Vec3
	PlaneSpeed     float32
	PlanetPosition mgl32.Vec3
	PlanetRotation mgl32.Mat3
}

type rigImpl struct {
	log zerolog.Logger

	camera     Camera
	controller CameraController
	mode       FollowMode

	baseFov      float32
	maxFov       float32
	fovSpeedGain float32

	followOffset mgl32.Vec3
	planetOffset mgl32.Vec3
	freeOffset   mgl32.Vec3
}

// Rig is the camera state machine. It owns exactly one active FollowMode and
// drives the camera's controller from the followed entities every frame.
type Rig interface {
	// Camera returns the driven camera.
	//
	// Returns:
	//   - Camera: the camera
	Camera() Camera

	// Mode returns the active follow mode.
	//
	// Returns:
	//   - FollowMode: the active mode
	Mode() FollowMode

	// SetMode switches the follow mode. Every switch resets the field of view to
	// the base value and moves the camera to the mode's rest offset. Entering Free
	// or FollowPlane also resets the orbit rotation to identity.
	//
	// Parameters:
	//   - mode: the mode to enter
	//   - subjects: the followed entities' current state
	SetMode(mode FollowMode, subjects Subjects)

	// Track recomputes the camera from the followed entities and refreshes the
	// camera matrices. Must run after all entity updates of the frame.
	//
	// Parameters:
	//   - subjects: the followed entities' current state
	Track(subjects Subjects)

	// Orbit applies a mouse drag delta. Ignored in planet-slaved modes.
	//
	// Parameters:
	//   - dx, dy: drag delta in pixels
	Orbit(dx, dy float32)

	// Zoom applies a scroll delta in every mode. Positive zooms in.
	//
	// Parameters:
	//   - delta: scroll amount
	Zoom(delta float32)

	// Resize updates the camera viewport and aspect ratio only.
	//
	// Parameters:
	//   - width, height: new viewport size in pixels
	Resize(width, height int)

	// SpeedFov maps a plane speed to the follow-plane field of view. The mapping is
	// monotonic non-decreasing and capped at the maximum fov.
	//
	// Parameters:
	//   - speed: plane speed
	//
	// Returns:
	//   - float32: field of view in radians
	SpeedFov(speed float32) float32
}

var _ Rig = &rigImpl{}

// NewRig creates a camera rig around cam, starting in Free mode around the
// origin. The camera must have a controller attached.
//
// Parameters:
//   - cam: the camera to drive
//   - options: functional options to configure the rig
//
// Returns:
//   - Rig: the newly created rig
func NewRig(cam Camera, options ...RigBuilderOption) Rig {
	if cam == nil || cam.Controller() == nil {
		panic("camera: rig requires a camera with a controller")
	}
	r := &rigImpl{
		log:          zerolog.Nop(),
		camera:       cam,
		controller:   cam.Controller(),
		baseFov:      45 * math32.Pi / 180,
		maxFov:       80 * math32.Pi / 180,
		fovSpeedGain: 2 * math32.Pi / 180,
		followOffset: mgl32.Vec3{0, 3, -12},
		planetOffset: mgl32.Vec3{0, 10, 60},
		freeOffset:   mgl32.Vec3{0, 10, 60},
	}
	for _, option := range options {
		option(r)
	}
	if r.maxFov < r.baseFov {
		r.maxFov = r.baseFov
	}
	r.SetMode(Free{}, Subjects{PlanetRotation: mgl32.Ident3()})
	return r
}

func (r *rigImpl) Camera() Camera {
	return r.camera
}

func (r *rigImpl) Mode() FollowMode {
	return r.mode
}

func (r *rigImpl) SetMode(mode FollowMode, subjects Subjects) {
	cc := r.controller
	cc.ClearLookAt()
	cc.SetBasis(mgl32.Ident3())

	switch m := mode.(type) {
	case Free:
		cc.ResetOrbit()
		cc.SetOffset(r.freeOffset)
		cc.SetTarget(m.Pivot)
	case FollowPlane:
		cc.ResetOrbit()
		cc.SetOffset(r.followOffset)
	case FollowPlanet, FollowPlanetLookAtPlane:
		cc.SetOffset(r.planetOffset)
	default:
		r.log.Warn().Msgf("camera: ignoring unknown follow mode %T", mode)
		return
	}

	r.mode = mode
	r.follow(subjects)
	r.camera.SetFov(r.baseFov)
	r.log.Info().Str("mode", mode.String()).Msg("camera mode changed")
}

func (r *rigImpl) Track(subjects Subjects) {
	r.follow(subjects)
	if _, ok := r.mode.(FollowPlane); ok {
		r.camera.SetFov(r.SpeedFov(subjects.PlaneSpeed))
	}
	r.camera.Update()
}

// follow moves the controller onto the followed entity without touching the fov.
func (r *rigImpl) follow(subjects Subjects) {
	cc := r.controller

	switch r.mode.(type) {
	case FollowPlane:
		cc.SetTarget(subjects.PlanePosition)
	case FollowPlanet:
		cc.SetBasis(subjects.PlanetRotation)
		cc.SetTarget(subjects.PlanetPosition)
	case FollowPlanetLookAtPlane:
		cc.SetBasis(subjects.PlanetRotation)
		cc.SetTarget(subjects.PlanetPosition)
		// Orthonormal, so the transpose is the inverse.
		cc.SetLookAt(subjects.PlanetRotation.Transpose().Mul3x1(subjects.PlanePosition))
	}
}

func (r *rigImpl) Orbit(dx, dy float32) {
	if !orbitable(r.mode) {
		return
	}
	r.controller.Orbit(dx, dy)
	r.camera.Update()
}

func (r *rigImpl) Zoom(delta float32) {
	r.controller.Zoom(delta)
	r.camera.Update()
}

func (r *rigImpl) Resize(width, height int) {
	r.camera.SetViewport(width, height)
	r.log.Debug().Int("width", width).Int("height", height).Msg("viewport resized")
}

func (r *rigImpl) SpeedFov(speed float32) float32 {
	if speed < 0 || !common.Finite(speed) {
		speed = 0
	}
	return common.Clamp(r.baseFov+r.fovSpeedGain*speed, r.baseFov, r.maxFov)
}
