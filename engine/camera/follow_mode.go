package camera

import "github.com/go-gl/mathgl/mgl32"

// FollowMode selects which entity drives the camera. It is a closed set: the only
// implementations are FollowPlane, FollowPlanet, FollowPlanetLookAtPlane and Free.
type FollowMode interface {
	String() string
	followMode()
}

// FollowPlane keeps the camera at a fixed offset behind the plane, looking at it,
// with a field of view that widens with speed.
type FollowPlane struct{}

// FollowPlanet slaves the camera orientation to the planet rotation and keeps it
// looking at the planet center.
type FollowPlanet struct{}

// FollowPlanetLookAtPlane slaves the camera orientation to the planet rotation and
// looks at the plane position expressed in the planet's un-rotated frame.
type FollowPlanetLookAtPlane struct{}

// Free leaves the camera to user orbit and zoom around Pivot, which is captured
// when the mode is entered.
type Free struct {
	Pivot mgl32.Vec3
}

func (FollowPlane) followMode()             {}
func (FollowPlanet) followMode()            {}
func (FollowPlanetLookAtPlane) followMode() {}
func (Free) followMode()                    {}

func (FollowPlane) String() string             { return "FOLLOW_PLANE" }
func (FollowPlanet) String() string            { return "FOLLOW_PLANET" }
func (FollowPlanetLookAtPlane) String() string { return "FOLLOW_PLANET_LOOK_AT_PLANE" }
func (Free) String() string                    { return "FREE" }

// orbitable reports whether drag input may rotate the camera in this mode.
// Planet-slaved modes overwrite the basis every frame, so dragging there is ignored.
func orbitable(mode FollowMode) bool {
	switch mode.(type) {
	case Free, FollowPlane:
		return true
	default:
		return false
	}
}
