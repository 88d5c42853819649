package input

import (
	"github.com/Carmen-Shannon/oxy-flight/common"
	"github.com/Carmen-Shannon/oxy-flight/engine/flight"
)

// Action is a discrete, edge-triggered command. Each physical key press yields at
// most one action; key repeat never does.
type Action int

const (
	// ActionCameraFree switches the camera to free orbit around the planet.
	ActionCameraFree Action = iota
	// ActionCameraFollowPlane switches the camera to follow the plane.
	ActionCameraFollowPlane
	// ActionCameraFollowPlanet locks the camera to the planet's rotation.
	ActionCameraFollowPlanet
	// ActionCameraLookAtPlane locks the camera to the planet and aims it at the plane.
	ActionCameraLookAtPlane
	// ActionRenderMode cycles the render mode.
	ActionRenderMode
	// ActionDayNight toggles the day/night preset.
	ActionDayNight
	// ActionPlaneLights toggles the plane lights gate.
	ActionPlaneLights
	// ActionScreenshot requests a scene capture.
	ActionScreenshot
	// ActionQuit requests shutdown.
	ActionQuit
)

var actionNames = [...]string{
	ActionCameraFree:         "camera-free",
	ActionCameraFollowPlane:  "camera-follow-plane",
	ActionCameraFollowPlanet: "camera-follow-planet",
	ActionCameraLookAtPlane:  "camera-look-at-plane",
	ActionRenderMode:         "render-mode",
	ActionDayNight:           "day-night",
	ActionPlaneLights:        "plane-lights",
	ActionScreenshot:         "screenshot",
	ActionQuit:               "quit",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// Bindings maps key codes to held flight controls and to edge-triggered actions.
// A key bound in both maps contributes to both.
type Bindings struct {
	Controls map[uint32]flight.Control
	Actions  map[uint32]Action
}

// DefaultBindings returns the standard layout: W/S speed, A/D yaw, Space/LeftControl
// pitch, 0-3 camera modes, R render mode, N day/night, L plane lights, P capture and
// Escape to quit.
//
// Returns:
//   - Bindings: the default key bindings
func DefaultBindings() Bindings {
	return Bindings{
		Controls: map[uint32]flight.Control{
			common.KeyW:           flight.Faster,
			common.KeyS:           flight.Slower,
			common.KeyA:           flight.Left,
			common.KeyD:           flight.Right,
			common.KeySpace:       flight.Up,
			common.KeyLeftControl: flight.Down,
		},
		Actions: map[uint32]Action{
			common.Key0:   ActionCameraFree,
			common.Key1:   ActionCameraFollowPlane,
			common.Key2:   ActionCameraFollowPlanet,
			common.Key3:   ActionCameraLookAtPlane,
			common.KeyR:   ActionRenderMode,
			common.KeyN:   ActionDayNight,
			common.KeyL:   ActionPlaneLights,
			common.KeyP:   ActionScreenshot,
			common.KeyEsc: ActionQuit,
		},
	}
}
