package light

import (
	"github.com/Carmen-Shannon/oxy-flight/common"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
)

type arrayImpl struct {
	log zerolog.Logger

	lights    []Light
	accumTime float64
	gate      bool
}

// Array is the ordered set of lamps mounted on the plane, together with the
// shared strobe clock and the plane-lights presentation gate.
type Array interface {
	// Lights returns every lamp in mount order, regardless of the gate.
	//
	// Returns:
	//   - []Light: the lamps
	Lights() []Light

	// Update binds every lamp to the plane transform and advances the strobe clock.
	// Positions and directions are refreshed on every call, including calls with a
	// non-positive dt; the clock and strobe state only move when dt > 0.
	//
	// Parameters:
	//   - planeTransform: the plane's world transform for this frame
	//   - dt: elapsed time in seconds
	Update(planeTransform mgl32.Mat4, dt float32)

	// AccumTime returns the strobe clock. It never resets during a run.
	//
	// Returns:
	//   - float64: accumulated time in seconds
	AccumTime() float64

	// Enabled reports whether the plane lights are shown.
	//
	// Returns:
	//   - bool: the gate state
	Enabled() bool

	// SetEnabled opens or closes the presentation gate. Lamp state is untouched.
	//
	// Parameters:
	//   - enabled: true to show the lights
	SetEnabled(enabled bool)

	// Toggle flips the presentation gate.
	//
	// Returns:
	//   - bool: the new gate state
	Toggle() bool

	// Visible returns the lamps handed to the renderer this frame: none while the
	// gate is closed, otherwise every enabled lamp in mount order.
	//
	// Returns:
	//   - []Light: the visible lamps
	Visible() []Light
}

var _ Array = &arrayImpl{}

// NewArray creates a light array over the given lamps. The slice is copied; its
// order is kept. The gate starts open.
//
// Parameters:
//   - lights: the lamps, in mount order
//   - options: functional options to configure the array
//
// Returns:
//   - Array: the newly created array
func NewArray(lights []Light, options ...ArrayBuilderOption) Array {
	a := &arrayImpl{
		log:    zerolog.Nop(),
		lights: append([]Light(nil), lights...),
		gate:   true,
	}
	for _, option := range options {
		option(a)
	}
	for _, l := range a.lights {
		l.schedule(a.accumTime)
	}
	return a
}

func (a *arrayImpl) Lights() []Light {
	return a.lights
}

func (a *arrayImpl) Update(planeTransform mgl32.Mat4, dt float32) {
	for _, l := range a.lights {
		l.bind(planeTransform)
	}
	if dt <= 0 || !common.Finite(dt) {
		return
	}
	a.accumTime += float64(dt)
	for _, l := range a.lights {
		l.schedule(a.accumTime)
	}
}

func (a *arrayImpl) AccumTime() float64 {
	return a.accumTime
}

func (a *arrayImpl) Enabled() bool {
	return a.gate
}

func (a *arrayImpl) SetEnabled(enabled bool) {
	a.gate = enabled
	a.log.Info().Bool("enabled", enabled).Msg("plane lights toggled")
}

func (a *arrayImpl) Toggle() bool {
	a.SetEnabled(!a.gate)
	return a.gate
}

func (a *arrayImpl) Visible() []Light {
	if !a.gate {
		return nil
	}
	out := make([]Light, 0, len(a.lights))
	for _, l := range a.lights {
		if l.Enabled() {
			out = append(out, l)
		}
	}
	return out
}
