package common

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// orthoEpsilon is the squared column length below which Orthonormalize3 gives up
// on a degenerate basis and falls back to identity.
const orthoEpsilon = 1e-12

// TransformPoint applies a homogeneous 4x4 transform to a point (w = 1).
//
// Parameters:
//   - m: the column-major transform
//   - p: the point in the transform's source space
//
// Returns:
//   - mgl32.Vec3: the transformed point
func TransformPoint(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

// TransformDirection applies a homogeneous 4x4 transform to a direction (w = 0)
// and renormalizes the result. Zero-length results are returned as the zero vector.
//
// Parameters:
//   - m: the column-major transform
//   - d: the direction in the transform's source space
//
// Returns:
//   - mgl32.Vec3: the transformed, normalized direction
func TransformDirection(m mgl32.Mat4, d mgl32.Vec3) mgl32.Vec3 {
	out := m.Mul4x1(d.Vec4(0)).Vec3()
	if out.Len() == 0 {
		return mgl32.Vec3{}
	}
	return out.Normalize()
}

// Orthonormalize3 re-orthonormalizes a rotation matrix using Gram-Schmidt on its
// columns. Incrementally multiplied rotations drift away from orthonormal because
// of float32 rounding; running this periodically keeps the determinant at 1 and
// removes shear and scale creep.
//
// Parameters:
//   - m: a nearly orthonormal 3x3 matrix (column-major)
//
// Returns:
//   - mgl32.Mat3: the orthonormalized matrix, or identity if m is degenerate
func Orthonormalize3(m mgl32.Mat3) mgl32.Mat3 {
	x := m.Col(0)
	y := m.Col(1)

	if x.Dot(x) < orthoEpsilon {
		return mgl32.Ident3()
	}
	x = x.Normalize()

	y = y.Sub(x.Mul(x.Dot(y)))
	if y.Dot(y) < orthoEpsilon {
		return mgl32.Ident3()
	}
	y = y.Normalize()

	// Deriving z from the cross product guarantees a right-handed basis.
	z := x.Cross(y)
	return mgl32.Mat3FromCols(x, y, z)
}

// AxisAngle3 builds a 3x3 rotation of angle radians around axis. The axis is
// normalized; a zero axis yields identity.
//
// Parameters:
//   - axis: rotation axis
//   - angle: rotation angle in radians (right-handed)
//
// Returns:
//   - mgl32.Mat3: the rotation matrix
func AxisAngle3(axis mgl32.Vec3, angle float32) mgl32.Mat3 {
	if axis.Len() == 0 || angle == 0 {
		return mgl32.Ident3()
	}
	return mgl32.QuatRotate(angle, axis.Normalize()).Mat4().Mat3()
}

// WrapAngle wraps an angle in radians into [0, 2π).
func WrapAngle(a float32) float32 {
	a = math32.Mod(a, 2*math32.Pi)
	if a < 0 {
		a += 2 * math32.Pi
	}
	return a
}

// Clamp limits v to the closed range [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Finite reports whether v is neither NaN nor infinite. Time steps that are not
// finite are treated the same as non-positive ones by the simulation models.
func Finite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}

// Perspective creates a perspective projection matrix.
// Uses the WebGPU clip space depth range [0, 1].
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
//
// Returns:
//   - mgl32.Mat4: the projection matrix (column-major)
func Perspective(fovY, aspect, near, far float32) mgl32.Mat4 {
	f := 1.0 / math32.Tan(fovY/2.0)

	var out mgl32.Mat4
	out[0] = f / aspect
	out[5] = f
	out[10] = far / (near - far)
	out[11] = -1.0
	out[14] = (near * far) / (near - far)
	return out
}

// leastAlignedAxis returns the world axis most nearly perpendicular to v.
func leastAlignedAxis(v mgl32.Vec3) mgl32.Vec3 {
	ax, ay, az := math32.Abs(v.X()), math32.Abs(v.Y()), math32.Abs(v.Z())
	switch {
	case ax <= ay && ax <= az:
		return mgl32.Vec3{1, 0, 0}
	case ay <= az:
		return mgl32.Vec3{0, 1, 0}
	default:
		return mgl32.Vec3{0, 0, 1}
	}
}

// LookAt creates a view matrix that positions and orients the camera.
// The resulting matrix transforms world coordinates to view/camera space.
// Coincident eye and center, or an up vector parallel to the view direction,
// degrade gracefully instead of producing NaNs.
//
// Parameters:
//   - eye: camera position in world space
//   - center: target point the camera looks at
//   - up: up vector defining camera orientation
//
// Returns:
//   - mgl32.Mat4: the view matrix (column-major)
func LookAt(eye, center, up mgl32.Vec3) mgl32.Mat4 {
	z := eye.Sub(center)
	if z.Len() == 0 {
		z = mgl32.Vec3{0, 0, 1}
	}
	z = z.Normalize()

	x := up.Cross(z)
	if x.Len() < 1e-6 {
		x = leastAlignedAxis(z).Cross(z)
	}
	x = x.Normalize()

	y := z.Cross(x)

	var out mgl32.Mat4
	out[0], out[4], out[8], out[12] = x[0], x[1], x[2], -x.Dot(eye)
	out[1], out[5], out[9], out[13] = y[0], y[1], y[2], -y.Dot(eye)
	out[2], out[6], out[10], out[14] = z[0], z[1], z[2], -z.Dot(eye)
	out[3], out[7], out[11], out[15] = 0, 0, 0, 1
	return out
}
