// Package config loads the application configuration from YAML with environment
// overrides and turns it into component options.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/Carmen-Shannon/oxy-flight/common"
	"github.com/Carmen-Shannon/oxy-flight/engine/cloth"
	"github.com/Carmen-Shannon/oxy-flight/engine/light"
	"github.com/Carmen-Shannon/oxy-flight/engine/loader"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides, e.g. OXYFLIGHT_LOGGING_LEVEL=debug.
const EnvPrefix = "OXYFLIGHT"

// Config is the complete application configuration.
type Config struct {
	Window   WindowConfig    `mapstructure:"window" yaml:"window"`
	Engine   EngineConfig    `mapstructure:"engine" yaml:"engine"`
	Logging  LoggingConfig   `mapstructure:"logging" yaml:"logging"`
	Flight   FlightConfig    `mapstructure:"flight" yaml:"flight"`
	Planet   PlanetConfig    `mapstructure:"planet" yaml:"planet"`
	Camera   CameraConfig    `mapstructure:"camera" yaml:"camera"`
	Lighting LightingConfig  `mapstructure:"lighting" yaml:"lighting"`
	Lights   LampsConfig     `mapstructure:"lights" yaml:"lights"`
	Flag     FlagConfig      `mapstructure:"flag" yaml:"flag"`
	Capture  CaptureConfig   `mapstructure:"capture" yaml:"capture"`
	Assets   loader.Manifest `mapstructure:"assets" yaml:"assets"`
}

// WindowConfig holds window creation settings.
type WindowConfig struct {
	Title  string `mapstructure:"title" yaml:"title"`
	Width  int    `mapstructure:"width" yaml:"width"`
	Height int    `mapstructure:"height" yaml:"height"`
	VSync  bool   `mapstructure:"vsync" yaml:"vsync"`

	// Resize limits in pixels.
	MinWidth  int `mapstructure:"min_width" yaml:"min_width"`
	MinHeight int `mapstructure:"min_height" yaml:"min_height"`
	MaxWidth  int `mapstructure:"max_width" yaml:"max_width"`
	MaxHeight int `mapstructure:"max_height" yaml:"max_height"`
}

// EngineConfig holds frame loop settings. Headless runs a fixed number of frames
// against the logging backend instead of opening a window.
type EngineConfig struct {
	FrameLimit           float64 `mapstructure:"frame_limit" yaml:"frame_limit"`
	Profiling            bool    `mapstructure:"profiling" yaml:"profiling"`
	Headless             bool    `mapstructure:"headless" yaml:"headless"`
	HeadlessFrames       int     `mapstructure:"headless_frames" yaml:"headless_frames"`
	HeadlessStep         float32 `mapstructure:"headless_step" yaml:"headless_step"`
	ForceFallbackAdapter bool    `mapstructure:"force_fallback_adapter" yaml:"force_fallback_adapter"`
}

// LoggingConfig selects the log level and output format.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// FlightConfig holds the plane's flight parameters.
type FlightConfig struct {
	InitialSpeed float32 `mapstructure:"initial_speed" yaml:"initial_speed"`
	MinSpeed     float32 `mapstructure:"min_speed" yaml:"min_speed"`
	MaxSpeed     float32 `mapstructure:"max_speed" yaml:"max_speed"`
	Acceleration float32 `mapstructure:"acceleration" yaml:"acceleration"`
	TurnRate     float32 `mapstructure:"turn_rate" yaml:"turn_rate"`
	BankGain     float32 `mapstructure:"bank_gain" yaml:"bank_gain"`

	// PropellerHub is the propeller pivot in plane-local space.
	PropellerHub  [3]float32 `mapstructure:"propeller_hub" yaml:"propeller_hub,flow"`
	PropellerGain float32    `mapstructure:"propeller_gain" yaml:"propeller_gain"`
}

// PlanetConfig holds the planet placement and roll coupling.
type PlanetConfig struct {
	Position [3]float32 `mapstructure:"position" yaml:"position,flow"`
	Radius   float32    `mapstructure:"radius" yaml:"radius"`
	RollGain float32    `mapstructure:"roll_gain" yaml:"roll_gain"`

	// RenormalizeEvery is the number of updates between orthonormalization passes.
	RenormalizeEvery int `mapstructure:"renormalize_every" yaml:"renormalize_every"`
}

// CameraConfig holds camera and orbit settings. Angles are in degrees.
type CameraConfig struct {
	Fov              float32 `mapstructure:"fov" yaml:"fov"`
	MaxFov           float32 `mapstructure:"max_fov" yaml:"max_fov"`
	FovSpeedGain     float32 `mapstructure:"fov_speed_gain" yaml:"fov_speed_gain"`
	MinDistance      float32 `mapstructure:"min_distance" yaml:"min_distance"`
	MaxDistance      float32 `mapstructure:"max_distance" yaml:"max_distance"`
	MouseSensitivity float32 `mapstructure:"mouse_sensitivity" yaml:"mouse_sensitivity"`
	ZoomSpeed        float32 `mapstructure:"zoom_speed" yaml:"zoom_speed"`
	Near             float32 `mapstructure:"near" yaml:"near"`
	Far              float32 `mapstructure:"far" yaml:"far"`
}

// PresetConfig is one global lighting preset.
type PresetConfig struct {
	Ambient  [3]float32 `mapstructure:"ambient" yaml:"ambient,flow"`
	Color    [3]float32 `mapstructure:"color" yaml:"color,flow"`
	Position [3]float32 `mapstructure:"position" yaml:"position,flow"`
	Ka       float32    `mapstructure:"ka" yaml:"ka"`
	Kd       float32    `mapstructure:"kd" yaml:"kd"`
	Ks       float32    `mapstructure:"ks" yaml:"ks"`
}

// LightingConfig holds both presets and the initial lighting state.
type LightingConfig struct {
	Day          PresetConfig `mapstructure:"day" yaml:"day"`
	Night        PresetConfig `mapstructure:"night" yaml:"night"`
	StartAtNight bool         `mapstructure:"start_at_night" yaml:"start_at_night"`
	PlaneLights  bool         `mapstructure:"plane_lights" yaml:"plane_lights"`
}

// AttenuationConfig is a lamp's constant/linear/quadratic falloff.
type AttenuationConfig struct {
	Constant  float32 `mapstructure:"constant" yaml:"constant"`
	Linear    float32 `mapstructure:"linear" yaml:"linear"`
	Quadratic float32 `mapstructure:"quadratic" yaml:"quadratic"`
}

// LampConfig is one lamp mounted on the plane. Type is "point" or "spot"; cone
// angles are half-angles in degrees and only apply to spots. A zero strobe
// interval means a steady lamp.
type LampConfig struct {
	Name           string            `mapstructure:"name" yaml:"name"`
	Type           string            `mapstructure:"type" yaml:"type"`
	Mount          [3]float32        `mapstructure:"mount" yaml:"mount,flow"`
	Direction      [3]float32        `mapstructure:"direction" yaml:"direction,flow"`
	Color          [3]float32        `mapstructure:"color" yaml:"color,flow"`
	Intensity      float32           `mapstructure:"intensity" yaml:"intensity"`
	Attenuation    AttenuationConfig `mapstructure:"attenuation" yaml:"attenuation,flow"`
	StrobeInterval float32           `mapstructure:"strobe_interval" yaml:"strobe_interval"`
	InnerCone      float32           `mapstructure:"inner_cone" yaml:"inner_cone"`
	OuterCone      float32           `mapstructure:"outer_cone" yaml:"outer_cone"`
}

// LampsConfig is the plane's lamp list in mount order. A file that sets it
// replaces the whole list.
type LampsConfig []LampConfig

// WaveConfig is one flag wave term.
type WaveConfig struct {
	Amplitude float32    `mapstructure:"amplitude" yaml:"amplitude"`
	Omega     float32    `mapstructure:"omega" yaml:"omega"`
	Phi       float32    `mapstructure:"phi" yaml:"phi"`
	Direction [3]float32 `mapstructure:"direction" yaml:"direction,flow"`
}

// FlagConfig holds the flag's wave terms.
type FlagConfig struct {
	Waves []WaveConfig `mapstructure:"waves" yaml:"waves"`
}

// CaptureConfig holds the snapshot writer settings.
type CaptureConfig struct {
	Dir     string `mapstructure:"dir" yaml:"dir"`
	Prefix  string `mapstructure:"prefix" yaml:"prefix"`
	Workers int    `mapstructure:"workers" yaml:"workers"`
}

// Default returns the stock configuration.
//
// Returns:
//   - Config: the default configuration
func Default() Config {
	waves := cloth.DefaultWaves()
	flag := FlagConfig{Waves: make([]WaveConfig, 0, len(waves))}
	for _, w := range waves {
		flag.Waves = append(flag.Waves, WaveConfig{
			Amplitude: w.Amplitude,
			Omega:     w.Omega,
			Phi:       w.Phi,
			Direction: w.Direction,
		})
	}

	return Config{
		Window: WindowConfig{
			Title:     "oxy-flight",
			Width:     1280,
			Height:    720,
			VSync:     true,
			MinWidth:  600,
			MinHeight: 200,
			MaxWidth:  3840,
			MaxHeight: 2160,
		},
		Engine:  EngineConfig{HeadlessFrames: 600, HeadlessStep: 1.0 / 60},
		Logging: LoggingConfig{Level: "info", Format: "console"},
		Flight: FlightConfig{
			MinSpeed:      0,
			MaxSpeed:      10,
			Acceleration:  1,
			TurnRate:      0.8,
			BankGain:      0.5,
			PropellerHub:  [3]float32{0, 0.05, 2.4},
			PropellerGain: 6,
		},
		Planet: PlanetConfig{Position: [3]float32{0, -22, 0}, Radius: 20, RollGain: 0.02, RenormalizeEvery: 8},
		Camera: CameraConfig{
			Fov:              45,
			MaxFov:           80,
			FovSpeedGain:     2,
			MinDistance:      1,
			MaxDistance:      200,
			MouseSensitivity: 0.005,
			ZoomSpeed:        0.05,
			Near:             0.1,
			Far:              350,
		},
		Lighting: LightingConfig{
			Day:         presetConfig(light.DayPreset()),
			Night:       presetConfig(light.NightPreset()),
			PlaneLights: true,
		},
		Lights:  lampsConfig(light.ReferenceSpecs()),
		Flag:    flag,
		Capture: CaptureConfig{Dir: "captures", Prefix: "capture", Workers: 2},
		Assets:  loader.DefaultManifest(),
	}
}

// Load reads the configuration at path on top of the defaults and applies
// OXYFLIGHT_* environment overrides. An empty path loads defaults and environment
// only. The result is validated.
//
// Parameters:
//   - path: the YAML file to read, or ""
//
// Returns:
//   - Config: the loaded configuration
//   - error: error if the file cannot be read or decoded, or the result is invalid
func Load(path string) (Config, error) {
	// Asset names contain dots, so nested keys use a different delimiter.
	v := viper.NewWithOptions(viper.KeyDelimiter("::"))
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("::", "_"))
	v.AutomaticEnv()

	defaults, err := yaml.Marshal(Default())
	if err != nil {
		return Config{}, fmt.Errorf("config: encode defaults: %w", err)
	}
	if err := v.ReadConfig(bytes.NewReader(defaults)); err != nil {
		return Config{}, fmt.Errorf("config: load defaults: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	cfg.Capture.Prefix = common.Coalesce(cfg.Capture.Prefix, "capture")
	cfg.Window.Title = common.Coalesce(cfg.Window.Title, "oxy-flight")

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every range constraint and reports all violations at once.
//
// Returns:
//   - error: the joined violations, or nil
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	w := c.Window
	check(w.Width > 0 && w.Height > 0, "window size %dx%d must be positive", w.Width, w.Height)
	check(w.MinWidth <= w.MaxWidth && w.MinHeight <= w.MaxHeight, "window.min_width/min_height %dx%d exceed max_width/max_height %dx%d", w.MinWidth, w.MinHeight, w.MaxWidth, w.MaxHeight)
	check(c.Engine.FrameLimit >= 0, "engine.frame_limit %v must not be negative", c.Engine.FrameLimit)
	check(!c.Engine.Headless || c.Engine.HeadlessFrames > 0, "engine.headless_frames must be positive when headless")
	check(!c.Engine.Headless || c.Engine.HeadlessStep > 0, "engine.headless_step must be positive when headless")

	f := c.Flight
	check(f.MinSpeed >= 0, "flight.min_speed %v must not be negative", f.MinSpeed)
	check(f.MaxSpeed >= f.MinSpeed, "flight.max_speed %v below min_speed %v", f.MaxSpeed, f.MinSpeed)
	check(f.Acceleration >= 0, "flight.acceleration %v must not be negative", f.Acceleration)
	check(f.TurnRate >= 0, "flight.turn_rate %v must not be negative", f.TurnRate)
	check(common.Finite(f.PropellerGain), "flight.propeller_gain %v must be finite", f.PropellerGain)

	check(c.Planet.Radius > 0, "planet.radius %v must be positive", c.Planet.Radius)
	check(c.Planet.RenormalizeEvery > 0, "planet.renormalize_every %d must be positive", c.Planet.RenormalizeEvery)

	cam := c.Camera
	check(cam.Fov > 0 && cam.Fov < 180, "camera.fov %v outside (0, 180)", cam.Fov)
	check(cam.MaxFov >= cam.Fov && cam.MaxFov < 180, "camera.max_fov %v outside [fov, 180)", cam.MaxFov)
	check(cam.MinDistance > 0, "camera.min_distance %v must be positive", cam.MinDistance)
	check(cam.MaxDistance >= cam.MinDistance, "camera.max_distance %v below min_distance %v", cam.MaxDistance, cam.MinDistance)
	check(cam.Near > 0 && cam.Far > cam.Near, "camera.near %v and camera.far %v must satisfy 0 < near < far", cam.Near, cam.Far)

	if err := c.Lighting.Day.Preset("day").Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Lighting.Night.Preset("night").Validate(); err != nil {
		errs = append(errs, err)
	}

	for i, lamp := range c.Lights {
		spec, err := lamp.Spec()
		if err == nil {
			err = spec.Validate()
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("lights[%d]: %w", i, err))
		}
	}

	check(len(c.Flag.Waves) == cloth.WaveCount, "flag.waves has %d terms, want %d", len(c.Flag.Waves), cloth.WaveCount)

	check(c.Capture.Dir != "", "capture.dir must be set")
	check(c.Capture.Workers > 0, "capture.workers %d must be positive", c.Capture.Workers)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
}
