package config

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-flight/engine/camera"
	"github.com/Carmen-Shannon/oxy-flight/engine/cloth"
	"github.com/Carmen-Shannon/oxy-flight/engine/flight"
	"github.com/Carmen-Shannon/oxy-flight/engine/light"
	"github.com/Carmen-Shannon/oxy-flight/engine/planet"
	"github.com/Carmen-Shannon/oxy-flight/engine/renderer"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
)

func presetConfig(p light.Preset) PresetConfig {
	return PresetConfig{
		Ambient:  p.Ambient,
		Color:    p.LightColor,
		Position: p.LightPosition,
		Ka:       p.Ka,
		Kd:       p.Kd,
		Ks:       p.Ks,
	}
}

// Preset converts the section into a named lighting preset.
func (c PresetConfig) Preset(name string) light.Preset {
	return light.Preset{
		Name:          name,
		Ambient:       c.Ambient,
		LightColor:    c.Color,
		LightPosition: c.Position,
		Ka:            c.Ka,
		Kd:            c.Kd,
		Ks:            c.Ks,
	}
}

func lampsConfig(specs []light.Spec) LampsConfig {
	out := make(LampsConfig, 0, len(specs))
	for _, s := range specs {
		lamp := LampConfig{
			Name:      s.Name,
			Type:      s.Type.String(),
			Mount:     s.Mount,
			Direction: s.Direction,
			Color:     s.Color,
			Intensity: s.Intensity,
			Attenuation: AttenuationConfig{
				Constant:  s.Attenuation.Constant,
				Linear:    s.Attenuation.Linear,
				Quadratic: s.Attenuation.Quadratic,
			},
			StrobeInterval: s.StrobeInterval,
		}
		if s.Type == light.LightTypeSpot {
			lamp.InnerCone = s.InnerConeDeg
			lamp.OuterCone = s.OuterConeDeg
		}
		out = append(out, lamp)
	}
	return out
}

// Spec converts the lamp into a light description.
//
// Returns:
//   - light.Spec: the lamp description
//   - error: error if the type is unknown
func (c LampConfig) Spec() (light.Spec, error) {
	typ, err := light.ParseLightType(c.Type)
	if err != nil {
		return light.Spec{}, err
	}
	return light.Spec{
		Name:      c.Name,
		Type:      typ,
		Mount:     c.Mount,
		Direction: c.Direction,
		Color:     c.Color,
		Intensity: c.Intensity,
		Attenuation: light.Attenuation{
			Constant:  c.Attenuation.Constant,
			Linear:    c.Attenuation.Linear,
			Quadratic: c.Attenuation.Quadratic,
		},
		StrobeInterval: c.StrobeInterval,
		InnerConeDeg:   c.InnerCone,
		OuterConeDeg:   c.OuterCone,
	}, nil
}

// Lamps builds the configured lamps in order.
//
// Returns:
//   - []light.Light: the lamps
//   - error: error naming the first lamp with an unknown type
func (c LampsConfig) Lamps() ([]light.Light, error) {
	specs := make([]light.Spec, 0, len(c))
	for i, lamp := range c {
		s, err := lamp.Spec()
		if err != nil {
			return nil, fmt.Errorf("lights[%d]: %w", i, err)
		}
		specs = append(specs, s)
	}
	return light.NewLights(specs), nil
}

// DayNightOptions returns the day/night model options for the section.
func (c LightingConfig) DayNightOptions(log zerolog.Logger) []light.DayNightBuilderOption {
	opts := []light.DayNightBuilderOption{light.WithDayNightLogger(log)}
	if c.StartAtNight {
		opts = append(opts, light.WithNight())
	}
	return opts
}

// ArrayOptions returns the plane light array options for the section.
func (c LightingConfig) ArrayOptions(log zerolog.Logger) []light.ArrayBuilderOption {
	return []light.ArrayBuilderOption{light.WithLogger(log), light.WithGate(c.PlaneLights)}
}

// Parameters converts the section into simulator wave terms. Missing terms stay zero.
func (c FlagConfig) Parameters() [cloth.WaveCount]cloth.WaveParameter {
	var out [cloth.WaveCount]cloth.WaveParameter
	for i, w := range c.Waves {
		if i == cloth.WaveCount {
			break
		}
		out[i] = cloth.WaveParameter{
			Amplitude: w.Amplitude,
			Omega:     w.Omega,
			Phi:       w.Phi,
			Direction: w.Direction,
		}
	}
	return out
}

// Options returns the flight model options for the section.
func (c FlightConfig) Options(log zerolog.Logger) []flight.ModelBuilderOption {
	return []flight.ModelBuilderOption{
		flight.WithLogger(log),
		flight.WithSpeedBounds(c.MinSpeed, c.MaxSpeed),
		flight.WithInitialSpeed(c.InitialSpeed),
		flight.WithAcceleration(c.Acceleration),
		flight.WithTurnRate(c.TurnRate),
		flight.WithBankGain(c.BankGain),
		flight.WithPropeller(c.PropellerHub, c.PropellerGain),
	}
}

// Options returns the planet model options for the section.
func (c PlanetConfig) Options(log zerolog.Logger) []planet.ModelBuilderOption {
	return []planet.ModelBuilderOption{
		planet.WithLogger(log),
		planet.WithPosition(c.Position),
		planet.WithRadius(c.Radius),
		planet.WithRollGain(c.RollGain),
		planet.WithRenormalizeEvery(c.RenormalizeEvery),
	}
}

// Rig builds the camera and rig described by the section for a viewport of the
// given size.
//
// Parameters:
//   - width, height: the initial viewport size in pixels
//   - log: the rig's logger
//
// Returns:
//   - camera.Rig: the rig, in free mode
func (c CameraConfig) Rig(width, height int, log zerolog.Logger) camera.Rig {
	cc := camera.NewCameraController(
		camera.WithRadiusBounds(c.MinDistance, c.MaxDistance),
		camera.WithMouseSensitivity(c.MouseSensitivity),
		camera.WithZoomSpeed(c.ZoomSpeed),
	)
	cam := camera.NewCamera(
		camera.WithController(cc),
		camera.WithViewport(width, height),
		camera.WithFov(mgl32.DegToRad(c.Fov)),
		camera.WithClip(c.Near, c.Far),
	)
	return camera.NewRig(cam,
		camera.WithLogger(log),
		camera.WithFovRange(mgl32.DegToRad(c.Fov), mgl32.DegToRad(c.MaxFov)),
		camera.WithFovSpeedGain(mgl32.DegToRad(c.FovSpeedGain)),
	)
}

// PresentMode maps the vsync flag to a present mode.
func (c WindowConfig) PresentMode() renderer.PresentMode {
	if c.VSync {
		return renderer.PresentModeVSync
	}
	return renderer.PresentModeUncapped
}
