package common

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const tol = 1e-5

func TestTransformPoint(t *testing.T) {
	m := mgl32.Translate3D(1, 2, 3).Mul4(mgl32.HomogRotate3DY(math32.Pi / 2))
	p := TransformPoint(m, mgl32.Vec3{1, 0, 0})

	// Rotating +X by 90 degrees around Y yields -Z, then translated.
	assert.InDelta(t, 1, p.X(), tol)
	assert.InDelta(t, 2, p.Y(), tol)
	assert.InDelta(t, 2, p.Z(), tol)
}

func TestTransformDirectionIgnoresTranslation(t *testing.T) {
	m := mgl32.Translate3D(10, 10, 10)
	d := TransformDirection(m, mgl32.Vec3{0, 0, 2})
	assert.InDelta(t, 0, d.X(), tol)
	assert.InDelta(t, 0, d.Y(), tol)
	assert.InDelta(t, 1, d.Z(), tol)

	assert.Equal(t, mgl32.Vec3{}, TransformDirection(m, mgl32.Vec3{}))
}

func TestOrthonormalize3RemovesDrift(t *testing.T) {
	m := mgl32.Rotate3DY(0.3)
	// Inject shear and scale.
	m[0] *= 1.01
	m[3] += 0.02
	m[8] *= 0.97

	o := Orthonormalize3(m)
	assert.InDelta(t, 1, o.Det(), tol)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, 1, o.Col(i).Len(), tol)
		for j := i + 1; j < 3; j++ {
			assert.InDelta(t, 0, o.Col(i).Dot(o.Col(j)), tol)
		}
	}
}

func TestOrthonormalize3Degenerate(t *testing.T) {
	assert.Equal(t, mgl32.Ident3(), Orthonormalize3(mgl32.Mat3{}))
}

func TestAxisAngle3(t *testing.T) {
	assert.Equal(t, mgl32.Ident3(), AxisAngle3(mgl32.Vec3{}, 1))

	r := AxisAngle3(mgl32.Vec3{0, 0, 5}, math32.Pi/2)
	v := r.Mul3x1(mgl32.Vec3{1, 0, 0})
	assert.InDelta(t, 0, v.X(), tol)
	assert.InDelta(t, 1, v.Y(), tol)
}

func TestWrapAngle(t *testing.T) {
	assert.InDelta(t, 0.5, WrapAngle(0.5), tol)
	assert.InDelta(t, 2*math32.Pi-0.5, WrapAngle(-0.5), tol)
	assert.InDelta(t, 1, WrapAngle(1+2*math32.Pi), 1e-4)
}

func TestFinite(t *testing.T) {
	assert.True(t, Finite(1))
	assert.False(t, Finite(math32.NaN()))
	assert.False(t, Finite(math32.Inf(1)))
}

func TestLookAtDegenerateInputs(t *testing.T) {
	m := LookAt(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 1, 0})
	for _, v := range m {
		assert.False(t, math32.IsNaN(v))
	}

	m = LookAt(mgl32.Vec3{0, 5, 0}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	for _, v := range m {
		assert.False(t, math32.IsNaN(v))
	}
}

func TestLookAtUpParallelToView(t *testing.T) {
	for _, eye := range []mgl32.Vec3{{5, 0, 0}, {0, 5, 0}, {0, 0, -5}, {3, 3, 0}} {
		m := LookAt(eye, mgl32.Vec3{}, eye.Normalize())
		assert.InDelta(t, 1, m.Mat3().Det(), 1e-5, "eye=%v", eye)
		for i := range 3 {
			assert.InDelta(t, 1, m.Row(i).Vec3().Len(), 1e-5, "eye=%v row=%d", eye, i)
		}
		p := m.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
		assert.InDeltaSlice(t, []float32{0, 0, -eye.Len(), 1}, p[:], 1e-4, "eye=%v", eye)
	}
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, "b", Coalesce("", "b", "c"))
	assert.Equal(t, 0, Coalesce(0, 0))
}
