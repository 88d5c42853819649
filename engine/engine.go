package engine

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-flight/engine/capture"
	"github.com/Carmen-Shannon/oxy-flight/engine/profiler"
	"github.com/Carmen-Shannon/oxy-flight/engine/renderer"
	"github.com/Carmen-Shannon/oxy-flight/engine/scene"
	"github.com/Carmen-Shannon/oxy-flight/engine/window"
	"github.com/rs/zerolog"
)

// engine implements the Engine interface.
// All simulation and rendering happens on the goroutine that called Run.
type engine struct {
	log zerolog.Logger

	window   window.Window
	scene    scene.Scene
	renderer renderer.Renderer
	capture  capture.Writer

	profiler         *profiler.Profiler
	profilingEnabled bool

	now        func() time.Time
	lastFrame  time.Time
	frameLimit time.Duration // minimum frame duration; 0 = uncapped

	tickCallback   func(deltaTime float32)
	renderCallback func(deltaTime float32)

	frames   uint64
	quitting bool
	quitOnce sync.Once
	err      error
}

// Engine is the main entry point for the engine.
// It owns the frame loop: poll window events, update the scene, render the frame and
// serve the scene's capture and quit requests.
type Engine interface {
	// Window returns the underlying window, or nil when running headless.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Scene returns the scene driven by the loop.
	//
	// Returns:
	//   - scene.Scene: the scene
	Scene() scene.Scene

	// Renderer returns the renderer frames are submitted to.
	//
	// Returns:
	//   - renderer.Renderer: the renderer
	Renderer() renderer.Renderer

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickCallback registers a function called after each scene update.
	//
	// Parameters:
	//   - callback: function receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// SetRenderCallback registers a function called after each rendered frame.
	//
	// Parameters:
	//   - callback: function receiving the delta time in seconds
	SetRenderCallback(callback func(deltaTime float32))

	// SetRenderFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the loop (default).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// Step runs one iteration of the loop with the given delta time: scene update,
	// render and request handling. Window events must already have been delivered.
	//
	// Parameters:
	//   - dt: elapsed time in seconds since the previous step
	//
	// Returns:
	//   - error: error if the frame could not be rendered
	Step(dt float32) error

	// Run drives the loop from the window's message pump until the window closes or
	// Quit is called, then releases the renderer and flushes pending captures.
	//
	// Returns:
	//   - error: the first render error and any shutdown errors
	Run() error

	// RunFrames drives the loop for n steps of fixed dt without a window, stopping
	// early on Quit, then shuts down like Run.
	//
	// Parameters:
	//   - n: the number of steps
	//   - dt: the fixed delta time in seconds
	//
	// Returns:
	//   - error: the first render error and any shutdown errors
	RunFrames(n int, dt float32) error

	// Frames returns the number of completed steps.
	Frames() uint64

	// Quit stops the loop after the current step.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine. Components not supplied by options are created
// with defaults: the default scene, a renderer over the logging backend, a capture
// writer into "captures" and a profiler on the global meter.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
//   - error: error if a default component could not be created
func NewEngine(options ...EngineBuilderOption) (Engine, error) {
	e := &engine{
		log: zerolog.Nop(),
		now: time.Now,
	}
	for _, opt := range options {
		opt(e)
	}

	var err error
	if e.scene == nil {
		if e.scene, err = scene.NewScene(scene.WithLogger(e.log)); err != nil {
			return nil, fmt.Errorf("engine: %w", err)
		}
	}
	if e.renderer == nil {
		e.renderer = renderer.NewRenderer(renderer.NewLogBackend(e.log), renderer.WithLogger(e.log))
	}
	if e.capture == nil {
		e.capture = capture.NewWriter("captures", capture.WithLogger(e.log))
	}
	if e.profiler == nil {
		if e.profiler, err = profiler.NewProfiler(profiler.WithLogger(e.log), profiler.WithScene(e.scene.Name())); err != nil {
			return nil, fmt.Errorf("engine: %w", err)
		}
	}

	if e.window != nil {
		e.bindWindow()
	}
	return e, nil
}

// bindWindow routes window events into the scene's input handler.
func (e *engine) bindWindow() {
	in := e.scene.Input()
	e.window.SetKeyDownCallback(in.KeyDown)
	e.window.SetKeyUpCallback(in.KeyUp)
	e.window.SetMouseButtonCallback(in.MouseButton)
	e.window.SetMouseMoveCallback(in.MouseMove)
	e.window.SetScrollCallback(in.Scroll)
	e.window.SetResizeCallback(func(width, height int) {
		in.Resize(width, height)
		e.renderer.Resize(width, height)
	})
	in.Resize(e.window.Width(), e.window.Height())
	e.renderer.Resize(e.window.Width(), e.window.Height())
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Scene() scene.Scene {
	return e.scene
}

func (e *engine) Renderer() renderer.Renderer {
	return e.renderer
}

func (e *engine) Step(dt float32) error {
	e.scene.Update(dt)
	if e.tickCallback != nil {
		e.tickCallback(dt)
	}

	if e.scene.Active() {
		if err := e.renderer.Render(e.scene.Frame()); err != nil {
			return err
		}
	}

	req := e.scene.TakeRequests()
	if req.Capture {
		path := e.capture.Submit(e.scene.Snapshot())
		e.log.Debug().Str("path", path).Msg("capture requested")
	}
	if req.Quit {
		e.log.Info().Msg("quit requested")
		e.Quit()
	}

	if e.renderCallback != nil {
		e.renderCallback(dt)
	}
	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick()
	}
	e.frames++
	return nil
}

func (e *engine) Run() error {
	if e.window == nil {
		return errors.New("engine: Run requires a window, use RunFrames when headless")
	}
	e.lastFrame = e.now()
	e.window.SetUpdateCallback(func() {
		if e.quitting {
			return
		}
		start := e.now()
		dt := float32(start.Sub(e.lastFrame).Seconds())
		e.lastFrame = start

		if err := e.Step(dt); err != nil {
			e.log.Error().Err(err).Msg("frame failed")
			e.err = err
			e.Quit()
			return
		}
		if e.frameLimit > 0 {
			if remaining := e.frameLimit - e.now().Sub(start); remaining > 0 {
				time.Sleep(remaining)
			}
		}
	})
	e.window.ProcessMessages()
	return e.shutdown()
}

func (e *engine) RunFrames(n int, dt float32) error {
	for i := 0; i < n && !e.quitting; i++ {
		if err := e.Step(dt); err != nil {
			e.log.Error().Err(err).Msg("frame failed")
			e.err = err
			break
		}
	}
	return e.shutdown()
}

// shutdown flushes captures and releases the renderer and window.
func (e *engine) shutdown() error {
	errs := []error{e.err}
	if err := e.capture.Close(); err != nil {
		errs = append(errs, fmt.Errorf("flush captures: %w", err))
	}
	if err := e.renderer.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close renderer: %w", err))
	}
	if e.window != nil {
		if err := e.window.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close window: %w", err))
		}
	}
	e.log.Info().Uint64("frames", e.frames).Msg("engine stopped")
	return errors.Join(errs...)
}

func (e *engine) Frames() uint64 {
	return e.frames
}

// Quit marks the loop as stopping and asks the window's message pump to return.
// Teardown happens in shutdown once the pump has exited.
func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		e.quitting = true
		if e.window != nil {
			e.window.RequestClose()
		}
	})
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetTickCallback registers the function called after each scene update.
func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

// SetRenderCallback registers the function called after each rendered frame.
func (e *engine) SetRenderCallback(callback func(deltaTime float32)) {
	e.renderCallback = callback
}

// SetRenderFrameLimit sets an optional frame rate cap.
// Pass 0 to uncap the loop.
func (e *engine) SetRenderFrameLimit(fps float64) {
	e.frameLimit = frameDuration(fps)
}

func frameDuration(fps float64) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}
