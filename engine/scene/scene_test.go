package scene

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-flight/common"
	"github.com/Carmen-Shannon/oxy-flight/engine/camera"
	"github.com/Carmen-Shannon/oxy-flight/engine/flight"
	"github.com/Carmen-Shannon/oxy-flight/engine/renderer"
	"github.com/Carmen-Shannon/oxy-flight/engine/renderer/material"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-4

func newTestScene(t *testing.T, options ...SceneBuilderOption) Scene {
	t.Helper()
	s, err := NewScene(options...)
	require.NoError(t, err)
	return s
}

func press(s Scene, key uint32) {
	s.Input().KeyDown(key, false)
	s.Input().KeyUp(key)
}

func TestNewSceneDefaults(t *testing.T) {
	s := newTestScene(t)

	assert.Equal(t, "flight", s.Name())
	assert.True(t, s.Active())
	assert.Equal(t, camera.Free{Pivot: s.Planet().Position()}, s.Rig().Mode())
	assert.Equal(t, renderer.RenderModeColor, s.RenderMode())
	assert.True(t, s.DayNight().IsDay())
	assert.True(t, s.Lights().Enabled())
	assert.Len(t, s.Objects(), 3)
	assert.Equal(t, uint64(0), s.Tick())
}

func TestLightsFollowThisTicksPlaneTransform(t *testing.T) {
	s := newTestScene(t)
	s.Input().KeyDown(common.KeyW, false)
	s.Input().KeyDown(common.KeyA, false)

	for range 5 {
		s.Update(0.25)
	}

	planeT := s.Flight().Transform()
	for _, l := range s.Lights().Lights() {
		want := common.TransformPoint(planeT, l.Mount())
		assert.InDelta(t, 0, want.Sub(l.Position()).Len(), tol, l.Name())
	}
	assert.InDelta(t, 1.25, s.Lights().AccumTime(), 1e-9)
	assert.InDelta(t, 1.25, s.Cloth().Time(), 1e-9)
}

func TestObjectsTrackSimulation(t *testing.T) {
	s := newTestScene(t)
	s.Input().KeyDown(common.KeyW, false)
	s.Update(0.5)
	s.Update(0.5)

	objs := s.Objects()
	assert.Equal(t, s.Flight().Transform(), objs[0].Transform())
	assert.Equal(t, s.Flight().PropellerTransform(), objs[0].Parts()[1].Local)
	assert.Equal(t, s.Planet().Transform(), objs[1].Transform())
	assert.Equal(t, s.Cloth().ModelMatrix(s.Flight().Transform()), objs[2].Transform())
}

func TestPlanetRollsUnderMovingPlane(t *testing.T) {
	s := newTestScene(t)
	assert.Equal(t, mgl32.Ident3(), s.Planet().Rotation())

	s.Input().KeyDown(common.KeyW, false)
	s.Update(1)
	s.Update(1)

	require.Greater(t, s.Flight().State().Speed, float32(0))
	assert.NotEqual(t, mgl32.Ident3(), s.Planet().Rotation())
}

func TestInvalidDtAppliesInputOnly(t *testing.T) {
	s := newTestScene(t)
	before := s.Flight().State()

	s.Input().KeyDown(common.KeyW, false)
	press(s, common.KeyR)
	s.Update(0)
	s.Update(-1)

	assert.Equal(t, uint64(0), s.Tick())
	assert.Equal(t, before, s.Flight().State())
	assert.Equal(t, mgl32.Ident3(), s.Planet().Rotation())
	assert.Zero(t, s.Cloth().Time())
	assert.Equal(t, renderer.RenderModeNormal, s.RenderMode())
}

func TestTogglesFireOncePerPress(t *testing.T) {
	s := newTestScene(t)

	s.Input().KeyDown(common.KeyN, false)
	s.Input().KeyDown(common.KeyN, true)
	s.Update(0.1)
	assert.False(t, s.DayNight().IsDay())

	s.Input().KeyDown(common.KeyN, true)
	s.Update(0.1)
	assert.False(t, s.DayNight().IsDay())

	s.Input().KeyUp(common.KeyN)
	press(s, common.KeyN)
	s.Update(0.1)
	assert.True(t, s.DayNight().IsDay())
}

func TestCameraModeKeys(t *testing.T) {
	s := newTestScene(t)

	press(s, common.Key1)
	s.Update(0.1)
	assert.Equal(t, camera.FollowPlane{}, s.Rig().Mode())

	press(s, common.Key2)
	s.Update(0.1)
	assert.Equal(t, camera.FollowPlanet{}, s.Rig().Mode())

	press(s, common.Key3)
	s.Update(0.1)
	assert.Equal(t, camera.FollowPlanetLookAtPlane{}, s.Rig().Mode())

	press(s, common.Key0)
	s.Update(0.1)
	assert.Equal(t, camera.Free{Pivot: s.Planet().Position()}, s.Rig().Mode())
}

func TestRequestsAreOneShot(t *testing.T) {
	s := newTestScene(t)
	press(s, common.KeyP)
	press(s, common.KeyEsc)
	s.Update(0.1)

	assert.Equal(t, Requests{Capture: true, Quit: true}, s.TakeRequests())
	assert.Equal(t, Requests{}, s.TakeRequests())
}

func TestResizeReachesCamera(t *testing.T) {
	s := newTestScene(t)
	s.Input().Resize(1024, 512)
	s.Update(0.1)

	w, h := s.Rig().Camera().Viewport()
	assert.Equal(t, 1024, w)
	assert.Equal(t, 512, h)
}

func TestFrameContents(t *testing.T) {
	s := newTestScene(t)
	s.Update(0.1)

	f := s.Frame()
	cam := s.Rig().Camera()
	assert.Equal(t, cam.ViewMatrix(), f.View)
	assert.Equal(t, cam.ProjectionMatrix(), f.Projection)
	assert.Equal(t, renderer.RenderModeColor, f.Mode)
	assert.False(t, f.Emission)
	assert.Len(t, f.Lights, len(s.Lights().Visible()))
	assert.Equal(t, s.Cloth().Snapshot(), f.Flag)

	require.Len(t, f.Drawables, 4)
	names := make([]string, 0, len(f.Drawables))
	for _, d := range f.Drawables {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"plane.body", "plane.propeller", "planet.surface", "flag.cloth"}, names)
	assert.Equal(t, material.PipelineFlag, f.Drawables[3].Materials[0].PipelineKey())
}

func TestNightAndLightGateInFrame(t *testing.T) {
	s := newTestScene(t)
	press(s, common.KeyN)
	press(s, common.KeyL)
	s.Update(0.1)

	f := s.Frame()
	assert.True(t, f.Emission)
	assert.Empty(t, f.Lights)
	_, night := s.DayNight().Presets()
	assert.Equal(t, night, f.Preset)
}

func TestSnapshot(t *testing.T) {
	s := newTestScene(t)
	s.Input().KeyDown(common.KeyW, false)
	press(s, common.Key1)
	s.Update(0.5)
	s.Update(0.5)

	snap := s.Snapshot()
	assert.Equal(t, uint64(2), snap.Tick)
	assert.InDelta(t, 1.0, snap.Elapsed, 1e-9)
	assert.Equal(t, "FOLLOW_PLANE", snap.CameraMode)
	assert.Equal(t, "color", snap.RenderMode)
	assert.True(t, snap.Day)
	assert.Equal(t, [3]float32(s.Flight().State().Position), snap.Plane.Position)
	assert.Equal(t, s.Flight().State().Speed, snap.Plane.Speed)
	assert.Equal(t, [9]float32(s.Planet().Rotation()), snap.Planet.Rotation)
	assert.Len(t, snap.Lights, len(s.Lights().Visible()))
}

func TestInjectedComponents(t *testing.T) {
	fm := flight.NewModel(flight.WithInitialSpeed(3))
	s := newTestScene(t, WithName("custom"), WithFlight(fm), WithActive(false))

	assert.Equal(t, "custom", s.Name())
	assert.False(t, s.Active())
	assert.Same(t, fm, s.Flight())
	assert.Equal(t, float32(3), s.Flight().State().Speed)
}
