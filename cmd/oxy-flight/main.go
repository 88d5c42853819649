// Command oxy-flight flies a small plane around a rotating planet.
//
// Usage:
//
//	oxy-flight [--config config.yaml] [--headless] [--frames N]
//
// Controls: W/S speed, A/D yaw, Space/Left Ctrl pitch, left mouse drag orbits,
// scroll zooms, 0-3 camera modes, R render mode, N day/night, L plane lights,
// P capture, Esc quit.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Carmen-Shannon/oxy-flight/engine"
	"github.com/Carmen-Shannon/oxy-flight/engine/capture"
	"github.com/Carmen-Shannon/oxy-flight/engine/cloth"
	"github.com/Carmen-Shannon/oxy-flight/engine/config"
	"github.com/Carmen-Shannon/oxy-flight/engine/flight"
	"github.com/Carmen-Shannon/oxy-flight/engine/input"
	"github.com/Carmen-Shannon/oxy-flight/engine/light"
	"github.com/Carmen-Shannon/oxy-flight/engine/loader"
	"github.com/Carmen-Shannon/oxy-flight/engine/logging"
	"github.com/Carmen-Shannon/oxy-flight/engine/planet"
	"github.com/Carmen-Shannon/oxy-flight/engine/profiler"
	"github.com/Carmen-Shannon/oxy-flight/engine/renderer"
	"github.com/Carmen-Shannon/oxy-flight/engine/scene"
	"github.com/Carmen-Shannon/oxy-flight/engine/window"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "oxy-flight:", err)
		os.Exit(1)
	}
}

// run parses flags, loads configuration and assets, and drives the engine until it
// stops. Every configuration or startup failure is returned.
func run(args []string, stdout io.Writer) error {
	flags := pflag.NewFlagSet("oxy-flight", pflag.ContinueOnError)
	configPath := flags.StringP("config", "c", "", "path to the YAML configuration")
	headless := flags.Bool("headless", false, "run without a window against the logging backend")
	frames := flags.Int("frames", 0, "frames to run when headless (0 keeps the configured count)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *headless {
		cfg.Engine.Headless = true
	}
	if *frames > 0 {
		cfg.Engine.HeadlessFrames = *frames
	}

	log := logging.NewWithWriter(cfg.Logging, stdout)

	// ── Assets ──────────────────────────────────────────────────────────
	assets := loader.NewLoader(loader.WithLogger(log))
	if err := assets.LoadManifest(cfg.Assets); err != nil {
		return fmt.Errorf("load assets: %w", err)
	}

	// ── Window + Renderer ───────────────────────────────────────────────
	var (
		win     window.Window
		backend renderer.Backend
	)
	if cfg.Engine.Headless {
		backend = renderer.NewLogBackend(log)
	} else {
		win, err = window.NewWindow(
			window.WithTitle(cfg.Window.Title),
			window.WithSize(cfg.Window.Width, cfg.Window.Height),
			window.WithSizeLimits(cfg.Window.MinWidth, cfg.Window.MinHeight, cfg.Window.MaxWidth, cfg.Window.MaxHeight),
		)
		if err != nil {
			return err
		}
		backend, err = renderer.NewWGPUBackend(win.SurfaceDescriptor(), cfg.Window.PresentMode(), cfg.Engine.ForceFallbackAdapter)
		if err != nil {
			_ = win.Close()
			return fmt.Errorf("create renderer: %w", err)
		}
	}

	// ── Scene + Engine ──────────────────────────────────────────────────
	eng, err := assemble(cfg, log, backend, win)
	if err != nil {
		return err
	}
	log.Info().
		Int("assets", len(assets.Assets())).
		Bool("headless", cfg.Engine.Headless).
		Msg("starting")

	if cfg.Engine.Headless {
		return eng.RunFrames(cfg.Engine.HeadlessFrames, cfg.Engine.HeadlessStep)
	}
	return eng.Run()
}

// assemble builds the scene and engine around an existing backend and window. On
// failure both are released, backend first.
func assemble(cfg config.Config, log zerolog.Logger, backend renderer.Backend, win window.Window) (engine.Engine, error) {
	sc, err := buildScene(cfg, log)
	if err == nil {
		var eng engine.Engine
		if eng, err = buildEngine(cfg, log, sc, backend, win); err == nil {
			return eng, nil
		}
	}

	errs := []error{err, backend.Close()}
	if win != nil {
		errs = append(errs, win.Close())
	}
	return nil, errors.Join(errs...)
}

// buildScene creates the flight scene from configuration.
func buildScene(cfg config.Config, log zerolog.Logger) (scene.Scene, error) {
	dayNight, err := light.NewDayNight(
		cfg.Lighting.Day.Preset("day"),
		cfg.Lighting.Night.Preset("night"),
		cfg.Lighting.DayNightOptions(log)...,
	)
	if err != nil {
		return nil, fmt.Errorf("lighting: %w", err)
	}
	lamps, err := cfg.Lights.Lamps()
	if err != nil {
		return nil, err
	}
	flag, err := cloth.NewSimulator(cloth.WithLogger(log), cloth.WithWaves(cfg.Flag.Parameters()))
	if err != nil {
		return nil, fmt.Errorf("flag: %w", err)
	}

	return scene.NewScene(
		scene.WithLogger(log),
		scene.WithInput(input.NewHandler(input.WithLogger(log))),
		scene.WithFlight(flight.NewModel(cfg.Flight.Options(log)...)),
		scene.WithPlanet(planet.NewModel(cfg.Planet.Options(log)...)),
		scene.WithRig(cfg.Camera.Rig(cfg.Window.Width, cfg.Window.Height, log)),
		scene.WithLights(light.NewArray(lamps, cfg.Lighting.ArrayOptions(log)...)),
		scene.WithDayNight(dayNight),
		scene.WithCloth(flag),
	)
}

// buildEngine wires the scene, renderer, capture writer and profiler into an engine.
func buildEngine(cfg config.Config, log zerolog.Logger, sc scene.Scene, backend renderer.Backend, win window.Window) (engine.Engine, error) {
	prof, err := profiler.NewProfiler(profiler.WithLogger(log), profiler.WithScene(sc.Name()))
	if err != nil {
		return nil, err
	}

	opts := []engine.EngineBuilderOption{
		engine.WithLogger(log),
		engine.WithScene(sc),
		engine.WithRenderer(renderer.NewRenderer(backend, renderer.WithLogger(log))),
		engine.WithCapture(capture.NewWriter(cfg.Capture.Dir,
			capture.WithLogger(log),
			capture.WithPrefix(cfg.Capture.Prefix),
			capture.WithWorkers(cfg.Capture.Workers),
		)),
		engine.WithProfiler(prof),
		engine.WithProfiling(cfg.Engine.Profiling),
		engine.WithRenderFrameLimit(cfg.Engine.FrameLimit),
	}
	if win != nil {
		opts = append(opts, engine.WithWindow(win))
	}
	return engine.NewEngine(opts...)
}
