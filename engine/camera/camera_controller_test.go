package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestControllerPositionFromOffset(t *testing.T) {
	cc := NewCameraController(
		WithTarget(mgl32.Vec3{1, 1, 1}),
		WithOffset(mgl32.Vec3{0, 0, 5}),
	)
	assert.InDelta(t, 0, cc.Position().Sub(mgl32.Vec3{1, 1, 6}).Len(), tol)
	assert.InDelta(t, 5, cc.Radius(), tol)
}

func TestControllerBasisRotatesOffsetAndUp(t *testing.T) {
	cc := NewCameraController(WithOffset(mgl32.Vec3{0, 0, 2}))
	cc.SetBasis(mgl32.Rotate3DX(mgl32.DegToRad(90)))

	// +Z rotated 90 degrees about X lands on -Y.
	assert.InDelta(t, 0, cc.Position().Sub(mgl32.Vec3{0, -2, 0}).Len(), tol)
	assert.InDelta(t, 0, cc.Up().Sub(mgl32.Vec3{0, 0, 1}).Len(), tol)
}

func TestControllerElevationClamped(t *testing.T) {
	cc := NewCameraController(WithElevationBounds(-0.5, 0.5), WithMouseSensitivity(0.01))
	cc.Orbit(0, 1000)
	assert.Equal(t, float32(0.5), cc.Elevation())
	cc.Orbit(0, -5000)
	assert.Equal(t, float32(-0.5), cc.Elevation())
}

func TestControllerNonPositiveMinRadiusReplaced(t *testing.T) {
	cc := NewCameraController(WithRadiusBounds(0, 10))
	assert.Greater(t, cc.MinRadius(), float32(0))

	cc = NewCameraController(WithRadiusBounds(-3, 10))
	assert.Equal(t, float32(defaultMinRadius), cc.MinRadius())
}

func TestControllerLookAtOverride(t *testing.T) {
	cc := NewCameraController(WithTarget(mgl32.Vec3{0, 1, 0}))
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, cc.LookAt())

	cc.SetLookAt(mgl32.Vec3{5, 5, 5})
	assert.Equal(t, mgl32.Vec3{5, 5, 5}, cc.LookAt())
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, cc.Target())

	cc.ClearLookAt()
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, cc.LookAt())
}

func TestControllerSetOffsetIgnoresZero(t *testing.T) {
	cc := NewCameraController(WithOffset(mgl32.Vec3{0, 0, 4}))
	cc.SetOffset(mgl32.Vec3{})
	assert.InDelta(t, 4, cc.Radius(), tol)
}

func TestCameraMatricesFollowController(t *testing.T) {
	cc := NewCameraController(WithOffset(mgl32.Vec3{0, 0, 10}))
	c := NewCamera(WithController(cc), WithViewport(100, 100), WithFov(mgl32.DegToRad(90)))

	// The target projects onto the view axis.
	v := c.ViewMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, 0, v.X(), tol)
	assert.InDelta(t, 0, v.Y(), tol)
	assert.InDelta(t, -10, v.Z(), tol)

	assert.Equal(t, c.ProjectionMatrix().Mul4(c.ViewMatrix()), c.ViewProjectionMatrix())
	assert.Equal(t, float32(1), c.Aspect())
}
