// Package input turns raw window events into the per-tick input the scene consumes:
// a held flight-control bitmask, edge-triggered actions, and accumulated orbit, zoom
// and resize requests. Events are queued as they arrive and drained once per tick.
package input

import (
	"github.com/Carmen-Shannon/oxy-flight/common"
	"github.com/Carmen-Shannon/oxy-flight/engine/flight"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
)

// Frame is everything that happened since the previous drain.
type Frame struct {
	// Controls is the set of flight controls held at drain time.
	Controls flight.Control
	// Actions lists the edge-triggered actions in press order.
	Actions []Action
	// Orbit is the accumulated drag delta in pixels (x right, y down).
	Orbit mgl32.Vec2
	// Zoom is the accumulated scroll delta (positive = toward the target).
	Zoom float32
	// Resized is true when the surface changed size; Width and Height hold the latest size.
	Resized bool
	Width   int
	Height  int
}

type handlerImpl struct {
	log      zerolog.Logger
	bindings Bindings

	held     map[uint32]bool
	controls flight.Control

	actions []Action
	orbit   mgl32.Vec2
	zoom    float32

	dragging     bool
	lastX, lastY float32

	resized       bool
	width, height int
}

// Handler receives window events and accumulates them until the next Drain.
type Handler interface {
	// KeyDown records a key press. Repeats and presses of an already-held key do not
	// fire actions.
	//
	// Parameters:
	//   - key: the key code
	//   - repeat: true if the event is an OS key repeat
	KeyDown(key uint32, repeat bool)

	// KeyUp records a key release.
	//
	// Parameters:
	//   - key: the key code
	KeyUp(key uint32)

	// MouseButton records a mouse button press or release. Only the left button drags.
	//
	// Parameters:
	//   - button: the button index
	//   - pressed: true on press
	//   - x, y: the cursor position in pixels
	MouseButton(button int, pressed bool, x, y float32)

	// MouseMove records cursor movement, accumulating an orbit delta while dragging.
	//
	// Parameters:
	//   - x, y: the cursor position in pixels
	MouseMove(x, y float32)

	// Scroll records a scroll wheel step.
	//
	// Parameters:
	//   - delta: the vertical scroll offset
	Scroll(delta float32)

	// Resize records a new surface size.
	//
	// Parameters:
	//   - width, height: the surface size in pixels
	Resize(width, height int)

	// Drain returns the accumulated input and clears everything except held keys.
	//
	// Returns:
	//   - Frame: the input since the previous drain
	Drain() Frame
}

var _ Handler = &handlerImpl{}

// NewHandler creates an input handler using the default bindings unless overridden.
//
// Parameters:
//   - options: functional options to configure the handler
//
// Returns:
//   - Handler: the newly created handler
func NewHandler(options ...HandlerBuilderOption) Handler {
	h := &handlerImpl{
		log:      zerolog.Nop(),
		bindings: DefaultBindings(),
		held:     make(map[uint32]bool),
	}
	for _, option := range options {
		option(h)
	}
	return h
}

func (h *handlerImpl) KeyDown(key uint32, repeat bool) {
	wasHeld := h.held[key]
	h.held[key] = true

	if c, ok := h.bindings.Controls[key]; ok {
		h.controls = h.controls.With(c)
	}
	if repeat || wasHeld {
		return
	}
	if a, ok := h.bindings.Actions[key]; ok {
		h.actions = append(h.actions, a)
		h.log.Debug().Stringer("action", a).Msg("input action")
	}
}

func (h *handlerImpl) KeyUp(key uint32) {
	delete(h.held, key)
	if c, ok := h.bindings.Controls[key]; ok {
		h.controls = h.controls.Without(c)
	}
}

func (h *handlerImpl) MouseButton(button int, pressed bool, x, y float32) {
	if button != common.MouseButtonLeft {
		return
	}
	h.dragging = pressed
	h.lastX, h.lastY = x, y
}

func (h *handlerImpl) MouseMove(x, y float32) {
	if !h.dragging {
		return
	}
	h.orbit = h.orbit.Add(mgl32.Vec2{x - h.lastX, y - h.lastY})
	h.lastX, h.lastY = x, y
}

func (h *handlerImpl) Scroll(delta float32) {
	h.zoom += delta
}

func (h *handlerImpl) Resize(width, height int) {
	h.resized = true
	h.width, h.height = width, height
}

func (h *handlerImpl) Drain() Frame {
	f := Frame{
		Controls: h.controls,
		Actions:  h.actions,
		Orbit:    h.orbit,
		Zoom:     h.zoom,
		Resized:  h.resized,
		Width:    h.width,
		Height:   h.height,
	}
	h.actions = nil
	h.orbit = mgl32.Vec2{}
	h.zoom = 0
	h.resized = false
	return f
}
