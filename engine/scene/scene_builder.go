package scene

import (
	"github.com/Carmen-Shannon/oxy-flight/engine/camera"
	"github.com/Carmen-Shannon/oxy-flight/engine/cloth"
	"github.com/Carmen-Shannon/oxy-flight/engine/flight"
	"github.com/Carmen-Shannon/oxy-flight/engine/game_object"
	"github.com/Carmen-Shannon/oxy-flight/engine/input"
	"github.com/Carmen-Shannon/oxy-flight/engine/light"
	"github.com/Carmen-Shannon/oxy-flight/engine/planet"
	"github.com/rs/zerolog"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithName sets the scene's identifier.
//
// Parameters:
//   - name: the scene name
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithName(name string) SceneBuilderOption {
	return func(s *scene) {
		s.name = name
	}
}

// WithLogger sets the logger used by the scene and by every default component it creates.
//
// Parameters:
//   - log: the logger
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLogger(log zerolog.Logger) SceneBuilderOption {
	return func(s *scene) {
		s.log = log
	}
}

// WithActive sets whether the scene is active for rendering.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithInput sets the input handler.
func WithInput(h input.Handler) SceneBuilderOption {
	return func(s *scene) {
		s.input = h
	}
}

// WithFlight sets the plane's flight model.
func WithFlight(m flight.Model) SceneBuilderOption {
	return func(s *scene) {
		s.flight = m
	}
}

// WithPlanet sets the planet rotation model.
func WithPlanet(m planet.Model) SceneBuilderOption {
	return func(s *scene) {
		s.planet = m
	}
}

// WithRig sets the camera rig.
func WithRig(r camera.Rig) SceneBuilderOption {
	return func(s *scene) {
		s.rig = r
	}
}

// WithLights sets the plane light array.
func WithLights(a light.Array) SceneBuilderOption {
	return func(s *scene) {
		s.lights = a
	}
}

// WithDayNight sets the day/night lighting model.
func WithDayNight(dn light.DayNight) SceneBuilderOption {
	return func(s *scene) {
		s.dayNight = dn
	}
}

// WithCloth sets the flag wave simulator.
func WithCloth(c cloth.Simulator) SceneBuilderOption {
	return func(s *scene) {
		s.cloth = c
	}
}

// WithObjects replaces the default drawable entities. A plane object must carry a
// "propeller" part for the propeller spin to show.
//
// Parameters:
//   - plane: the plane entity
//   - planet: the planet entity
//   - flag: the flag entity
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithObjects(plane, planet, flag game_object.GameObject) SceneBuilderOption {
	return func(s *scene) {
		s.planeObj = plane
		s.planetObj = planet
		s.flagObj = flag
	}
}
