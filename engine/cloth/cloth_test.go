package cloth

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSim(t *testing.T, options ...SimulatorBuilderOption) Simulator {
	t.Helper()
	s, err := NewSimulator(options...)
	require.NoError(t, err)
	return s
}

func TestAdvanceNonPositiveDtIsNoop(t *testing.T) {
	s := newSim(t)
	s.Advance(0.25)
	before := s.Snapshot()

	for _, dt := range []float32{0, -0.1, math32.NaN(), math32.Inf(-1)} {
		s.Advance(dt)
		assert.Equal(t, before, s.Snapshot())
	}
}

func TestClockIsMonotonic(t *testing.T) {
	s := newSim(t)
	prev := s.Time()
	for i := 0; i < 1000; i++ {
		s.Advance(1.0 / 60)
		assert.Greater(t, s.Time(), prev)
		prev = s.Time()
	}
	assert.InDelta(t, 1000.0/60, s.Time(), 1e-4)
}

func TestSnapshotIsAValueCopy(t *testing.T) {
	s := newSim(t)
	snap := s.Snapshot()
	snap.Params[0].Amplitude = 99
	assert.NotEqual(t, float32(99), s.Params()[0].Amplitude)

	s.Advance(1)
	assert.Equal(t, float64(0), snap.Time)
}

func TestParamsAreStableAcrossFrames(t *testing.T) {
	s := newSim(t)
	first := s.Params()
	for i := 0; i < 100; i++ {
		s.Advance(0.016)
	}
	assert.Equal(t, first, s.Params())
}

func TestDisplacementFormula(t *testing.T) {
	waves := [WaveCount]WaveParameter{
		{Amplitude: 1, Omega: 2, Phi: 3, Direction: mgl32.Vec3{0, 0, 2}},
		{},
		{},
	}
	s := newSim(t, WithWaves(waves), WithAnchorZ(0))
	s.Advance(0.5)
	snap := s.Snapshot()

	// Direction is normalized to +Z.
	p := mgl32.Vec3{0, 0, 2}
	want := math32.Sin(2*2+3*0.5) * 1
	assert.InDelta(t, want, snap.Displacement(p), 1e-5)

	// Half strength half a unit from the anchor.
	p = mgl32.Vec3{0, 0, 0.5}
	want = math32.Sin(2*0.5+3*0.5) * 0.5
	assert.InDelta(t, want, snap.Displacement(p), 1e-5)
}

func TestAnchorEdgeDoesNotMove(t *testing.T) {
	s := newSim(t, WithAnchorZ(-1))
	s.Advance(3.7)
	snap := s.Snapshot()
	for _, y := range []float32{-1, 0, 1} {
		p := mgl32.Vec3{0, y, -1}
		assert.Equal(t, float32(0), snap.Displacement(p))
		assert.Equal(t, p, snap.Displace(p))
	}
}

func TestDisplaceAlongNormal(t *testing.T) {
	s := newSim(t, WithNormal(mgl32.Vec3{3, 0, 0}))
	s.Advance(1)
	snap := s.Snapshot()
	p := mgl32.Vec3{0, 0.2, 2}
	d := snap.Displace(p)
	assert.InDelta(t, snap.Displacement(p), d.X(), 1e-6)
	assert.Equal(t, p.Y(), d.Y())
	assert.Equal(t, p.Z(), d.Z())
}

func TestModelMatrixComposesPlaneMountAndCorrection(t *testing.T) {
	mount := mgl32.Translate3D(0, 1, -4)
	unrotate := mgl32.HomogRotate3DY(math32.Pi / 2)
	s := newSim(t, WithMount(mount, unrotate))

	plane := mgl32.Translate3D(10, 0, 0)
	assert.Equal(t, plane.Mul4(mount).Mul4(unrotate), s.ModelMatrix(plane))

	origin := s.ModelMatrix(plane).Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, 10, origin.X(), 1e-5)
	assert.InDelta(t, 1, origin.Y(), 1e-5)
	assert.InDelta(t, -4, origin.Z(), 1e-5)
}

func TestNonFiniteWaveRejected(t *testing.T) {
	waves := DefaultWaves()
	waves[1].Omega = math32.NaN()
	_, err := NewSimulator(WithWaves(waves))
	assert.Error(t, err)
}

func TestGPUFlagUniform(t *testing.T) {
	s := newSim(t)
	s.Advance(2)
	u := NewGPUFlagUniform(s.Snapshot())
	assert.Equal(t, 112, u.Size())
	assert.Equal(t, float32(2), u.Time)
	assert.Len(t, u.Marshal(), 112)
}
