package camera

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-4

func newTestRig(options ...RigBuilderOption) Rig {
	cc := NewCameraController(WithRadiusBounds(1, 100))
	return NewRig(NewCamera(WithController(cc), WithViewport(800, 600)), options...)
}

func subjects() Subjects {
	return Subjects{
		PlanePosition:  mgl32.Vec3{0, 2, 0},
		PlaneSpeed:     6,
		PlanetPosition: mgl32.Vec3{0, -20, 0},
		PlanetRotation: mgl32.Rotate3DX(0.7),
	}
}

func TestFollowPlaneResetsFovAndOrbitFromEveryMode(t *testing.T) {
	base := float32(0.8)
	modes := []FollowMode{Free{}, FollowPlane{}, FollowPlanet{}, FollowPlanetLookAtPlane{}}

	for _, prior := range modes {
		t.Run(prior.String(), func(t *testing.T) {
			r := newTestRig(WithFovRange(base, 1.4), WithFovSpeedGain(0.05))
			s := subjects()
			r.SetMode(prior, s)
			r.Orbit(40, -25)
			r.Zoom(3)
			r.Track(s)
			r.Camera().SetFov(1.2)

			r.SetMode(FollowPlane{}, s)

			assert.Equal(t, FollowPlane{}, r.Mode())
			assert.Equal(t, base, r.Camera().Fov())
			cc := r.Camera().Controller()
			assert.Equal(t, mgl32.Ident3(), cc.OrbitRotation())
			assert.Equal(t, float32(0), cc.Azimuth())
			assert.Equal(t, float32(0), cc.Elevation())
		})
	}
}

func TestEveryModeSwitchResetsFov(t *testing.T) {
	r := newTestRig(WithFovRange(0.7, 1.5))
	s := subjects()
	for _, m := range []FollowMode{FollowPlanet{}, FollowPlanetLookAtPlane{}, Free{Pivot: s.PlanetPosition}} {
		r.Camera().SetFov(1.3)
		r.SetMode(m, s)
		assert.Equal(t, float32(0.7), r.Camera().Fov(), m.String())
	}
}

func TestFollowPlaneFovWidensWithSpeed(t *testing.T) {
	r := newTestRig(WithFovRange(0.8, 1.2), WithFovSpeedGain(0.02))
	s := subjects()
	r.SetMode(FollowPlane{}, s)

	prev := r.SpeedFov(0)
	assert.Equal(t, float32(0.8), prev)
	for speed := float32(0); speed < 50; speed += 0.5 {
		f := r.SpeedFov(speed)
		assert.GreaterOrEqual(t, f, prev)
		assert.LessOrEqual(t, f, float32(1.2))
		prev = f
	}

	s.PlaneSpeed = 10
	r.Track(s)
	assert.InDelta(t, 1.0, r.Camera().Fov(), tol)
	assert.Equal(t, s.PlanePosition, r.Camera().Controller().LookAt())
}

func TestFollowPlanetSlavesBasis(t *testing.T) {
	r := newTestRig()
	s := subjects()
	r.SetMode(FollowPlanet{}, s)
	r.Track(s)

	cc := r.Camera().Controller()
	assert.Equal(t, s.PlanetRotation, cc.Basis())
	assert.Equal(t, s.PlanetPosition, cc.LookAt())

	up := cc.Up()
	want := s.PlanetRotation.Col(1)
	assert.InDelta(t, 0, up.Sub(want).Len(), tol)
}

func TestFollowPlanetLookAtPlaneUsesInverseRotation(t *testing.T) {
	r := newTestRig()
	s := subjects()
	s.PlanetRotation = mgl32.Rotate3DY(math32.Pi / 2)
	s.PlanePosition = mgl32.Vec3{1, 0, 0}
	r.SetMode(FollowPlanetLookAtPlane{}, s)
	r.Track(s)

	got := r.Camera().Controller().LookAt()
	// Rotating +X by 90 degrees about Y gives -Z; the inverse maps +X to +Z.
	assert.InDelta(t, 0, got.X(), tol)
	assert.InDelta(t, 0, got.Y(), tol)
	assert.InDelta(t, 1, got.Z(), tol)

	inv := s.PlanetRotation.Inv()
	want := inv.Mul3x1(s.PlanePosition)
	assert.InDelta(t, 0, got.Sub(want).Len(), tol)
}

func TestOrbitIgnoredInPlanetModes(t *testing.T) {
	s := subjects()
	for _, m := range []FollowMode{FollowPlanet{}, FollowPlanetLookAtPlane{}} {
		r := newTestRig()
		r.SetMode(m, s)
		r.Track(s)
		before := r.Camera().Controller().Position()

		r.Orbit(100, 100)
		r.Track(s)
		assert.Equal(t, before, r.Camera().Controller().Position(), m.String())
	}
}

func TestOrbitMovesCameraInFreeAndFollowPlane(t *testing.T) {
	s := subjects()
	for _, m := range []FollowMode{Free{Pivot: s.PlanetPosition}, FollowPlane{}} {
		r := newTestRig()
		r.SetMode(m, s)
		cc := r.Camera().Controller()
		before := cc.Position()
		dist := before.Sub(cc.Target()).Len()

		r.Orbit(100, 50)
		after := cc.Position()
		assert.NotEqual(t, before, after, m.String())
		assert.InDelta(t, dist, after.Sub(cc.Target()).Len(), tol)
	}
}

func TestZoomClampsToPositiveMinimum(t *testing.T) {
	r := newTestRig()
	cc := r.Camera().Controller()
	for i := 0; i < 500; i++ {
		r.Zoom(5)
	}
	assert.Equal(t, cc.MinRadius(), cc.Radius())
	assert.Greater(t, cc.Position().Sub(cc.Target()).Len(), float32(0))

	for i := 0; i < 500; i++ {
		r.Zoom(-5)
	}
	assert.Equal(t, cc.MaxRadius(), cc.Radius())
}

func TestZoomAppliesInPlanetModes(t *testing.T) {
	r := newTestRig()
	s := subjects()
	r.SetMode(FollowPlanet{}, s)
	before := r.Camera().Controller().Radius()
	r.Zoom(1)
	assert.Less(t, r.Camera().Controller().Radius(), before)
}

func TestResizeUpdatesAspectOnly(t *testing.T) {
	r := newTestRig()
	s := subjects()
	r.SetMode(FollowPlane{}, s)
	pos := r.Camera().Controller().Position()
	fov := r.Camera().Fov()

	r.Resize(1000, 500)
	w, h := r.Camera().Viewport()
	assert.Equal(t, 1000, w)
	assert.Equal(t, 500, h)
	assert.Equal(t, float32(2), r.Camera().Aspect())
	assert.Equal(t, pos, r.Camera().Controller().Position())
	assert.Equal(t, fov, r.Camera().Fov())

	r.Resize(1000, 0)
	assert.Equal(t, float32(2), r.Camera().Aspect())
}

func TestNewRigPanicsWithoutController(t *testing.T) {
	assert.Panics(t, func() { NewRig(NewCamera()) })
}

func TestGPUCameraUniformMarshal(t *testing.T) {
	r := newTestRig()
	u := NewGPUCameraUniform(r.Camera())
	buf := u.Marshal()
	require.Len(t, buf, 144)
	assert.Equal(t, 144, u.Size())
}

func TestCameraClipRange(t *testing.T) {
	c := NewCamera(WithClip(0.5, 900))
	assert.Equal(t, float32(0.5), c.Near())
	assert.Equal(t, float32(900), c.Far())

	c = NewCamera(WithClip(10, 5))
	assert.Equal(t, float32(0.1), c.Near())
	assert.Equal(t, float32(350), c.Far())
}
