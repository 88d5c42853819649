package input

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-flight/common"
	"github.com/Carmen-Shannon/oxy-flight/engine/flight"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestControlsAreLevelTriggered(t *testing.T) {
	h := NewHandler()
	h.KeyDown(common.KeyW, false)
	h.KeyDown(common.KeyA, false)

	assert.Equal(t, flight.Faster|flight.Left, h.Drain().Controls)
	// Held keys survive a drain.
	assert.Equal(t, flight.Faster|flight.Left, h.Drain().Controls)

	h.KeyUp(common.KeyW)
	assert.Equal(t, flight.Left, h.Drain().Controls)
}

func TestActionsFireOncePerPress(t *testing.T) {
	h := NewHandler()
	h.KeyDown(common.KeyN, false)
	h.KeyDown(common.KeyN, true)
	h.KeyDown(common.KeyN, true)
	h.KeyDown(common.KeyN, false)

	f := h.Drain()
	assert.Equal(t, []Action{ActionDayNight}, f.Actions)
	assert.Empty(t, h.Drain().Actions)

	h.KeyUp(common.KeyN)
	h.KeyDown(common.KeyN, false)
	assert.Equal(t, []Action{ActionDayNight}, h.Drain().Actions)
}

func TestActionsKeepPressOrder(t *testing.T) {
	h := NewHandler()
	h.KeyDown(common.Key1, false)
	h.KeyDown(common.KeyL, false)
	h.KeyDown(common.KeyEsc, false)

	assert.Equal(t, []Action{ActionCameraFollowPlane, ActionPlaneLights, ActionQuit}, h.Drain().Actions)
}

func TestDragAccumulatesOrbit(t *testing.T) {
	h := NewHandler()
	h.MouseMove(10, 10)
	assert.Equal(t, mgl32.Vec2{}, h.Drain().Orbit)

	h.MouseButton(common.MouseButtonLeft, true, 10, 10)
	h.MouseMove(15, 8)
	h.MouseMove(20, 4)
	assert.Equal(t, mgl32.Vec2{10, -6}, h.Drain().Orbit)

	h.MouseButton(common.MouseButtonLeft, false, 20, 4)
	h.MouseMove(40, 40)
	assert.Equal(t, mgl32.Vec2{}, h.Drain().Orbit)
}

func TestRightButtonDoesNotDrag(t *testing.T) {
	h := NewHandler()
	h.MouseButton(common.MouseButtonRight, true, 0, 0)
	h.MouseMove(5, 5)
	assert.Equal(t, mgl32.Vec2{}, h.Drain().Orbit)
}

func TestScrollAndResize(t *testing.T) {
	h := NewHandler()
	h.Scroll(1)
	h.Scroll(-0.5)
	h.Resize(800, 600)
	h.Resize(1024, 768)

	f := h.Drain()
	assert.InDelta(t, 0.5, f.Zoom, 1e-6)
	assert.True(t, f.Resized)
	assert.Equal(t, 1024, f.Width)
	assert.Equal(t, 768, f.Height)

	f = h.Drain()
	assert.Zero(t, f.Zoom)
	assert.False(t, f.Resized)
}

func TestCustomBindings(t *testing.T) {
	h := NewHandler(WithBindings(Bindings{
		Controls: map[uint32]flight.Control{common.KeyS: flight.Faster},
		Actions:  map[uint32]Action{common.KeyS: ActionScreenshot},
	}))
	h.KeyDown(common.KeyS, false)
	f := h.Drain()
	assert.Equal(t, flight.Faster, f.Controls)
	assert.Equal(t, []Action{ActionScreenshot}, f.Actions)
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "day-night", ActionDayNight.String())
	assert.Equal(t, "unknown", Action(99).String())
}
