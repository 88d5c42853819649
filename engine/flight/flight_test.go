package flight

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-4

func hold(m Model, c Control, seconds float32, steps int) State {
	dt := seconds / float32(steps)
	var s State
	for i := 0; i < steps; i++ {
		s = m.Advance(c, dt)
	}
	return s
}

func TestAdvanceNonPositiveDtIsNoop(t *testing.T) {
	m := NewModel(WithInitialSpeed(3))
	hold(m, Faster|Left|Up, 1, 10)
	before := m.State()

	for _, dt := range []float32{0, -1, math32.NaN(), math32.Inf(1)} {
		after := m.Advance(Faster|Right|Down, dt)
		assert.Equal(t, before, after, "dt=%v", dt)
	}
}

func TestSpeedStaysClamped(t *testing.T) {
	m := NewModel(WithSpeedBounds(1, 4), WithAcceleration(3))
	seq := []Control{Faster, Faster, Slower, Faster | Slower, Slower, Slower, Slower, Faster}
	for i := 0; i < 50; i++ {
		s := m.Advance(seq[i%len(seq)], 0.4)
		assert.GreaterOrEqual(t, s.Speed, float32(1))
		assert.LessOrEqual(t, s.Speed, float32(4))
	}
}

func TestHoldFasterSaturates(t *testing.T) {
	m := NewModel(WithSpeedBounds(0, 10), WithAcceleration(1))
	require.Equal(t, float32(0), m.State().Speed)
	require.Equal(t, mgl32.Vec3{}, m.State().Position)

	s := hold(m, Faster, 2, 200)
	assert.InDelta(t, 2.0, s.Speed, tol)

	s = hold(m, Faster, 20, 2000)
	assert.Equal(t, float32(10), s.Speed)
}

func TestTurningHasNoInertia(t *testing.T) {
	m := NewModel(WithTurnRate(0.5))

	s := m.Advance(Left|Up, 0.1)
	assert.InDelta(t, 0.5, s.Turning.X(), tol)
	assert.InDelta(t, 0.5, s.Turning.Y(), tol)

	s = m.Advance(Right|Down, 0.1)
	assert.InDelta(t, -0.5, s.Turning.X(), tol)
	assert.InDelta(t, -0.5, s.Turning.Y(), tol)

	s = m.Advance(Faster, 0.1)
	assert.Equal(t, mgl32.Vec3{}, s.Turning)

	s = m.Advance(Left|Right, 0.1)
	assert.Equal(t, mgl32.Vec3{}, s.Turning)
}

func TestPositionIntegratesAlongForward(t *testing.T) {
	m := NewModel(WithInitialSpeed(2), WithBasePosition(mgl32.Vec3{1, 0, 0}))
	s := m.Advance(0, 0.5)

	assert.InDelta(t, 1, s.Position.X(), tol)
	assert.InDelta(t, 0, s.Position.Y(), tol)
	assert.InDelta(t, 1, s.Position.Z(), tol)
}

func TestYawLeftTurnsForwardTowardPlusX(t *testing.T) {
	m := NewModel(WithTurnRate(1))
	m.Advance(Left, 0.5)

	f := m.Forward()
	assert.Greater(t, f.X(), float32(0))
	assert.InDelta(t, 0, f.Y(), tol)
	assert.InDelta(t, 1, f.Len(), tol)
}

func TestPitchUpRaisesNose(t *testing.T) {
	m := NewModel(WithTurnRate(1))
	m.Advance(Up, 0.5)

	assert.Greater(t, m.Forward().Y(), float32(0))
}

func TestOrientationStaysOrthonormal(t *testing.T) {
	m := NewModel(WithInitialSpeed(5), WithTurnRate(1.3))
	seq := []Control{Left | Up, Right, Down | Left, Up}
	for i := 0; i < 5000; i++ {
		m.Advance(seq[i%len(seq)], 1.0/60)
	}

	o := m.State().Orientation
	assert.InDelta(t, 1, o.Det(), tol)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, 1, o.Col(i).Len(), tol)
	}
}

func TestTransformBanksWithYaw(t *testing.T) {
	m := NewModel(WithBankGain(0.5), WithTurnRate(1))
	level := m.Transform()
	assert.InDelta(t, 0, level.Col(0).Y(), tol)

	m.Advance(Left, 0.01)
	banked := m.Transform()
	// Left wing (+X) dips when yawing left.
	assert.Less(t, banked.Col(0).Y(), float32(0))
}

func TestPropellerSpinsWithSpeed(t *testing.T) {
	hub := mgl32.Vec3{0, 0, 4}
	m := NewModel(WithPropeller(hub, 1))
	m.Advance(0, 1)
	assert.Equal(t, float32(0), m.State().PropellerAngle)

	m = NewModel(WithInitialSpeed(1), WithPropeller(hub, 1))
	m.Advance(0, 1)
	assert.InDelta(t, 1, m.State().PropellerAngle, tol)

	// The hub stays fixed under the part transform.
	p := m.PropellerTransform().Mul4x1(hub.Vec4(1)).Vec3()
	assert.InDelta(t, 0, p.Sub(hub).Len(), tol)
}

func TestResetRestoresBaseState(t *testing.T) {
	m := NewModel(WithInitialSpeed(1), WithBasePosition(mgl32.Vec3{0, 3, 0}))
	hold(m, Faster|Left, 2, 20)
	m.Reset()

	s := m.State()
	assert.Equal(t, mgl32.Vec3{0, 3, 0}, s.Position)
	assert.Equal(t, mgl32.Ident3(), s.Orientation)
	assert.Equal(t, float32(1), s.Speed)
}

func TestInvertedSpeedBoundsAreSwapped(t *testing.T) {
	m := NewModel(WithSpeedBounds(5, 1))
	lo, hi := m.SpeedBounds()
	assert.Equal(t, float32(1), lo)
	assert.Equal(t, float32(5), hi)
}

func TestControlString(t *testing.T) {
	assert.Equal(t, "NONE", Control(0).String())
	assert.Equal(t, "FASTER|LEFT", (Faster | Left).String())
	assert.True(t, Faster.With(Up).Has(Up))
	assert.False(t, (Faster | Up).Without(Up).Has(Up))
}
