package scene

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-flight/common"
	"github.com/Carmen-Shannon/oxy-flight/engine/camera"
	"github.com/Carmen-Shannon/oxy-flight/engine/capture"
	"github.com/Carmen-Shannon/oxy-flight/engine/cloth"
	"github.com/Carmen-Shannon/oxy-flight/engine/flight"
	"github.com/Carmen-Shannon/oxy-flight/engine/game_object"
	"github.com/Carmen-Shannon/oxy-flight/engine/input"
	"github.com/Carmen-Shannon/oxy-flight/engine/light"
	"github.com/Carmen-Shannon/oxy-flight/engine/planet"
	"github.com/Carmen-Shannon/oxy-flight/engine/renderer"
	"github.com/Carmen-Shannon/oxy-flight/engine/renderer/material"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
)

// Requests are one-shot requests raised by input for the loop that owns the scene.
type Requests struct {
	Capture bool
	Quit    bool
}

// scene is the implementation of the Scene interface.
type scene struct {
	log    zerolog.Logger
	name   string
	active bool

	input    input.Handler
	flight   flight.Model
	planet   planet.Model
	rig      camera.Rig
	lights   light.Array
	dayNight light.DayNight
	cloth    cloth.Simulator

	planeObj  game_object.GameObject
	planetObj game_object.GameObject
	flagObj   game_object.GameObject

	mode     renderer.RenderMode
	requests Requests

	tick    uint64
	elapsed float64
}

// Scene owns every piece of simulation state of the flight scene and advances it in
// a fixed order once per tick: input, flight, planet, plane lights, flag clock,
// camera. All mutation happens inside Update; Frame only reads.
//
// A Scene is not safe for concurrent use. Window callbacks feed its input handler on
// the loop goroutine and are drained at the start of the next Update.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// Active returns whether this scene is currently active for rendering.
	Active() bool

	// SetActive sets whether this scene is active for rendering.
	SetActive(active bool)

	// Input returns the handler window events should be delivered to.
	//
	// Returns:
	//   - input.Handler: the scene's input handler
	Input() input.Handler

	// Update drains queued input and advances the simulation by dt seconds.
	// A non-positive or non-finite dt still applies input but leaves every clock,
	// the flight state and the planet rotation untouched.
	//
	// Parameters:
	//   - dt: elapsed time in seconds since the previous tick
	Update(dt float32)

	// Frame returns the render parameter bundle for the state after the last Update.
	//
	// Returns:
	//   - renderer.FrameParams: the frame bundle
	Frame() renderer.FrameParams

	// SetCameraMode switches the camera follow mode using the current subject state.
	//
	// Parameters:
	//   - mode: the new follow mode
	SetCameraMode(mode camera.FollowMode)

	// RenderMode returns the current render mode.
	RenderMode() renderer.RenderMode

	// TakeRequests returns the pending one-shot requests and clears them.
	//
	// Returns:
	//   - Requests: the pending requests
	TakeRequests() Requests

	// Snapshot captures the current state for the capture writer.
	//
	// Returns:
	//   - capture.Snapshot: the serializable state
	Snapshot() capture.Snapshot

	// Tick returns the number of Update calls with a valid dt.
	Tick() uint64

	// Flight returns the plane's flight model.
	Flight() flight.Model

	// Planet returns the planet rotation model.
	Planet() planet.Model

	// Rig returns the camera rig.
	Rig() camera.Rig

	// Lights returns the plane light array.
	Lights() light.Array

	// DayNight returns the day/night lighting model.
	DayNight() light.DayNight

	// Cloth returns the flag wave simulator.
	Cloth() cloth.Simulator

	// Objects returns the drawable entities in draw order: plane, planet, flag.
	Objects() []game_object.GameObject
}

var _ Scene = &scene{}

// NewScene builds a scene. Every component not supplied by an option is created with
// its defaults. The camera starts in free mode pivoting on the planet.
//
// Parameters:
//   - options: functional options to configure the scene
//
// Returns:
//   - Scene: the newly created scene
//   - error: error if a default component rejects its configuration
func NewScene(options ...SceneBuilderOption) (Scene, error) {
	s := &scene{
		log:    zerolog.Nop(),
		name:   "flight",
		active: true,
	}
	for _, option := range options {
		option(s)
	}

	if s.input == nil {
		s.input = input.NewHandler(input.WithLogger(s.log))
	}
	if s.flight == nil {
		s.flight = flight.NewModel(flight.WithLogger(s.log))
	}
	if s.planet == nil {
		s.planet = planet.NewModel(planet.WithLogger(s.log))
	}
	if s.rig == nil {
		cam := camera.NewCamera(camera.WithController(camera.NewCameraController()))
		s.rig = camera.NewRig(cam, camera.WithLogger(s.log))
	}
	if s.lights == nil {
		s.lights = light.NewArray(light.ReferenceRig(), light.WithLogger(s.log))
	}
	if s.dayNight == nil {
		dn, err := light.NewDayNight(light.DayPreset(), light.NightPreset(), light.WithDayNightLogger(s.log))
		if err != nil {
			return nil, fmt.Errorf("scene: %w", err)
		}
		s.dayNight = dn
	}
	if s.cloth == nil {
		c, err := cloth.NewSimulator(cloth.WithLogger(s.log))
		if err != nil {
			return nil, fmt.Errorf("scene: %w", err)
		}
		s.cloth = c
	}
	if s.planeObj == nil {
		s.planeObj = defaultPlaneObject()
	}
	if s.planetObj == nil {
		s.planetObj = defaultPlanetObject()
	}
	if s.flagObj == nil {
		s.flagObj = defaultFlagObject()
	}

	s.rig.SetMode(camera.Free{Pivot: s.planet.Position()}, s.subjects())
	s.syncObjects()
	s.rig.Track(s.subjects())

	s.log.Info().Str("scene", s.name).Msg("scene initialized")
	return s, nil
}

func (s *scene) Name() string {
	return s.name
}

func (s *scene) Active() bool {
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.active = active
}

func (s *scene) Input() input.Handler {
	return s.input
}

func (s *scene) Update(dt float32) {
	in := s.input.Drain()
	s.apply(in)

	state := s.flight.Advance(in.Controls, dt)
	s.planet.Advance(state.Turning, state.Speed, dt)

	planeTransform := s.flight.Transform()
	s.lights.Update(planeTransform, dt)
	s.cloth.Advance(dt)

	s.syncObjects()
	s.rig.Track(s.subjects())

	if dt > 0 && common.Finite(dt) {
		s.tick++
		s.elapsed += float64(dt)
	}
}

// apply handles the non-flight part of one tick's input.
func (s *scene) apply(in input.Frame) {
	if in.Resized {
		s.rig.Resize(in.Width, in.Height)
	}
	for _, a := range in.Actions {
		switch a {
		case input.ActionCameraFree:
			s.SetCameraMode(camera.Free{Pivot: s.planet.Position()})
		case input.ActionCameraFollowPlane:
			s.SetCameraMode(camera.FollowPlane{})
		case input.ActionCameraFollowPlanet:
			s.SetCameraMode(camera.FollowPlanet{})
		case input.ActionCameraLookAtPlane:
			s.SetCameraMode(camera.FollowPlanetLookAtPlane{})
		case input.ActionRenderMode:
			s.mode = s.mode.Next()
			s.log.Info().Stringer("mode", s.mode).Msg("render mode changed")
		case input.ActionDayNight:
			s.dayNight.Toggle()
		case input.ActionPlaneLights:
			s.lights.Toggle()
		case input.ActionScreenshot:
			s.requests.Capture = true
		case input.ActionQuit:
			s.requests.Quit = true
		}
	}
	if in.Orbit != (mgl32.Vec2{}) {
		s.rig.Orbit(in.Orbit.X(), in.Orbit.Y())
	}
	if in.Zoom != 0 {
		s.rig.Zoom(in.Zoom)
	}
}

func (s *scene) SetCameraMode(mode camera.FollowMode) {
	s.rig.SetMode(mode, s.subjects())
}

func (s *scene) subjects() camera.Subjects {
	st := s.flight.State()
	return camera.Subjects{
		PlanePosition:  st.Position,
		PlaneSpeed:     st.Speed,
		PlanetPosition: s.planet.Position(),
		PlanetRotation: s.planet.Rotation(),
	}
}

// syncObjects copies this tick's transforms into the drawable entities.
func (s *scene) syncObjects() {
	planeTransform := s.flight.Transform()
	s.planeObj.SetTransform(planeTransform)
	s.planeObj.SetPartTransform(partPropeller, s.flight.PropellerTransform())
	s.planetObj.SetTransform(s.planet.Transform())
	s.flagObj.SetTransform(s.cloth.ModelMatrix(planeTransform))
}

func (s *scene) Frame() renderer.FrameParams {
	cam := s.rig.Camera()
	var drawables []renderer.Drawable
	for _, obj := range s.Objects() {
		drawables = append(drawables, obj.Drawables()...)
	}
	return renderer.FrameParams{
		Projection:     cam.ProjectionMatrix(),
		View:           cam.ViewMatrix(),
		CameraPosition: cam.Position(),
		Mode:           s.mode,
		Preset:         s.dayNight.Active(),
		Emission:       s.dayNight.Emission(),
		Lights:         s.lights.Visible(),
		Flag:           s.cloth.Snapshot(),
		FlagModel:      s.flagObj.Transform(),
		Drawables:      drawables,
	}
}

func (s *scene) RenderMode() renderer.RenderMode {
	return s.mode
}

func (s *scene) TakeRequests() Requests {
	r := s.requests
	s.requests = Requests{}
	return r
}

func (s *scene) Snapshot() capture.Snapshot {
	st := s.flight.State()
	cam := s.rig.Camera()
	snap := capture.Snapshot{
		Tick:       s.tick,
		Elapsed:    s.elapsed,
		CameraMode: s.rig.Mode().String(),
		RenderMode: s.mode.String(),
		Day:        s.dayNight.IsDay(),
		PlaneLight: s.lights.Enabled(),
		Plane: capture.PlaneState{
			Position: st.Position,
			Forward:  s.flight.Forward(),
			Speed:    st.Speed,
		},
		Planet: capture.PlanetState{
			Position: s.planet.Position(),
			Rotation: s.planet.Rotation(),
		},
		Camera: capture.CameraState{Position: cam.Position(), Fov: cam.Fov()},
		Flag:   capture.FlagState{Time: s.cloth.Time()},
	}
	for _, l := range s.lights.Visible() {
		snap.Lights = append(snap.Lights, capture.LampState{
			Name:      l.Name(),
			Position:  l.Position(),
			Intensity: l.Intensity(),
		})
	}
	return snap
}

func (s *scene) Tick() uint64 {
	return s.tick
}

func (s *scene) Flight() flight.Model {
	return s.flight
}

func (s *scene) Planet() planet.Model {
	return s.planet
}

func (s *scene) Rig() camera.Rig {
	return s.rig
}

func (s *scene) Lights() light.Array {
	return s.lights
}

func (s *scene) DayNight() light.DayNight {
	return s.dayNight
}

func (s *scene) Cloth() cloth.Simulator {
	return s.cloth
}

func (s *scene) Objects() []game_object.GameObject {
	return []game_object.GameObject{s.planeObj, s.planetObj, s.flagObj}
}

const (
	partBody      = "body"
	partPropeller = "propeller"
)

func defaultPlaneObject() game_object.GameObject {
	return game_object.NewGameObject(
		game_object.WithName("plane"),
		game_object.WithPart(partBody, material.NewMaterial(
			material.WithName("hull"),
			material.WithDiffuse([4]float32{0.85, 0.2, 0.15, 1}),
		)),
		game_object.WithPart(partPropeller, material.NewMaterial(
			material.WithName("propeller"),
			material.WithDiffuse([4]float32{0.3, 0.3, 0.3, 1}),
			material.WithShininess(64),
		)),
	)
}

func defaultPlanetObject() game_object.GameObject {
	return game_object.NewGameObject(
		game_object.WithName("planet"),
		game_object.WithPart("surface", material.NewMaterial(
			material.WithName("ground"),
			material.WithDiffuse([4]float32{0.35, 0.7, 0.3, 1}),
			material.WithShininess(8),
			material.WithEmissive(),
		)),
	)
}

func defaultFlagObject() game_object.GameObject {
	return game_object.NewGameObject(
		game_object.WithName("flag"),
		game_object.WithPart("cloth", material.NewMaterial(
			material.WithName("banner"),
			material.WithDiffuse([4]float32{0.95, 0.95, 0.95, 1}),
			material.WithPipelineKey(material.PipelineFlag),
		)),
	)
}
