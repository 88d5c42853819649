package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/oxy-flight/engine/cloth"
	"github.com/Carmen-Shannon/oxy-flight/engine/flight"
	"github.com/Carmen-Shannon/oxy-flight/engine/light"
	"github.com/Carmen-Shannon/oxy-flight/engine/renderer"
	"github.com/Carmen-Shannon/oxy-flight/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadDefaultsOnly(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMergesFile(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: debug
flight:
  max_speed: 25
planet:
  position: [0, -40, 0]
lighting:
  start_at_night: true
  night:
    ka: 0.2
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, float32(25), cfg.Flight.MaxSpeed)
	assert.Equal(t, float32(1), cfg.Flight.Acceleration)
	assert.Equal(t, [3]float32{0, -40, 0}, cfg.Planet.Position)
	assert.True(t, cfg.Lighting.StartAtNight)
	assert.Equal(t, float32(0.2), cfg.Lighting.Night.Ka)
	assert.Equal(t, Default().Lighting.Night.Kd, cfg.Lighting.Night.Kd)
	assert.Len(t, cfg.Flag.Waves, cloth.WaveCount)
	assert.Equal(t, "plane/cartoon-plane.obj", cfg.Assets.Models["plane"])
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("OXYFLIGHT_LOGGING_LEVEL", "trace")
	t.Setenv("OXYFLIGHT_CAPTURE_DIR", "/tmp/shots")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "trace", cfg.Logging.Level)
	assert.Equal(t, "/tmp/shots", cfg.Capture.Dir)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml")
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := writeConfig(t, `
flight:
  min_speed: 5
  max_speed: 2
lighting:
  day:
    kd: 1.5
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flight.max_speed")
	assert.Contains(t, err.Error(), "kd")
}

func TestValidateReportsEveryViolation(t *testing.T) {
	cfg := Default()
	cfg.Camera.MinDistance = 0
	cfg.Flag.Waves = cfg.Flag.Waves[:2]
	cfg.Capture.Workers = 0
	cfg.Engine.Headless = true
	cfg.Engine.HeadlessFrames = 0
	cfg.Camera.Far = cfg.Camera.Near
	cfg.Window.MinWidth = cfg.Window.MaxWidth + 1

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"camera.min_distance", "flag.waves", "capture.workers", "headless_frames", "camera.far", "window.min_width"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestPresetRoundTrip(t *testing.T) {
	day := light.DayPreset()
	assert.Equal(t, day, presetConfig(day).Preset("day"))
}

func TestWavesMatchDefaults(t *testing.T) {
	assert.Equal(t, cloth.DefaultWaves(), Default().Flag.Parameters())
}

func TestRigUsesDegrees(t *testing.T) {
	r := Default().Camera.Rig(640, 480, zerolog.Nop())
	assert.InDelta(t, mgl32.DegToRad(45), r.Camera().Fov(), 1e-6)
	w, h := r.Camera().Viewport()
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
	assert.Greater(t, r.SpeedFov(100), r.SpeedFov(0))
	assert.Equal(t, float32(0.1), r.Camera().Near())
	assert.Equal(t, float32(350), r.Camera().Far())
}

func TestPresentMode(t *testing.T) {
	assert.Equal(t, renderer.PresentModeVSync, WindowConfig{VSync: true}.PresentMode())
	assert.Equal(t, renderer.PresentModeUncapped, WindowConfig{}.PresentMode())
}

func TestSampleConfigMatchesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "configs", "oxy-flight.yaml"))
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, def.Window, cfg.Window)
	assert.Equal(t, def.Flight, cfg.Flight)
	assert.Equal(t, def.Planet, cfg.Planet)
	assert.Equal(t, def.Lighting, cfg.Lighting)
	assert.Equal(t, def.Lights, cfg.Lights)
	assert.Equal(t, def.Flag.Parameters(), cfg.Flag.Parameters())
	assert.Equal(t, def.Assets, cfg.Assets)
}

func TestDefaultLightsMatchReferenceRig(t *testing.T) {
	var specs []light.Spec
	for _, lamp := range Default().Lights {
		s, err := lamp.Spec()
		require.NoError(t, err)
		specs = append(specs, s)
	}
	assert.Equal(t, light.ReferenceSpecs(), specs)
}

func TestLoadLightsOverrideReachesScene(t *testing.T) {
	path := writeConfig(t, `
lights:
  - name: beacon
    type: point
    mount: [0, 2, -3]
    color: [0, 0, 1]
    intensity: 0.7
    attenuation: {constant: 1, linear: 0.2, quadratic: 0}
    strobe_interval: 1.5
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Lights, 1)

	lamps, err := cfg.Lights.Lamps()
	require.NoError(t, err)
	sc, err := scene.NewScene(scene.WithLights(light.NewArray(lamps)))
	require.NoError(t, err)

	got := sc.Lights().Lights()
	require.Len(t, got, 1)
	assert.Equal(t, "beacon", got[0].Name())
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, got[0].Color())
	assert.Equal(t, light.Attenuation{Constant: 1, Linear: 0.2}, got[0].Attenuation())
	on, interval := got[0].Strobe()
	assert.True(t, on)
	assert.Equal(t, float32(1.5), interval)

	sc.Update(1.6)
	assert.Equal(t, float32(0), got[0].Intensity())
	sc.Update(1.6)
	assert.Equal(t, float32(0.7), got[0].Intensity())
}

func TestValidateRejectsBadLamps(t *testing.T) {
	cfg := Default()
	cfg.Lights[0].Type = "laser"
	cfg.Lights[1].Attenuation = AttenuationConfig{}
	cfg.Lights[3].StrobeInterval = -0.5
	cfg.Lights[4].Attenuation.Linear = -1

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"lights[0]", "laser", "lights[1]", "all zero", "lights[3]", "strobe interval", "lights[4]", "negative term"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestLampsReportsUnknownType(t *testing.T) {
	_, err := LampsConfig{{Name: "x", Type: "flood"}}.Lamps()
	assert.ErrorContains(t, err, "lights[0]")
}

func TestFlightAndPlanetOptionsPassThrough(t *testing.T) {
	cfg := Default()
	cfg.Flight.InitialSpeed = 1
	cfg.Flight.PropellerHub = [3]float32{0, 1, 0}
	cfg.Flight.PropellerGain = 2
	cfg.Planet.RenormalizeEvery = 3

	m := flight.NewModel(cfg.Flight.Options(zerolog.Nop())...)
	m.Advance(0, 0.5)
	assert.InDelta(t, 1, m.State().PropellerAngle, 1e-5)
	hub := m.PropellerTransform().Mul4x1(mgl32.Vec4{0, 1, 0, 1}).Vec3()
	assert.InDeltaSlice(t, []float32{0, 1, 0}, hub[:], 1e-5)

	_, err := Load(writeConfig(t, "planet:\n  renormalize_every: 0\n"))
	assert.ErrorContains(t, err, "planet.renormalize_every")
}
