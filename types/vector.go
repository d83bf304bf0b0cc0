package types

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

type Vec2 = mgl32.Vec2
type Vec3 = mgl32.Vec3
type Vec4 = mgl32.Vec4
type Mat3 = mgl32.Mat3
type Mat4 = mgl32.Mat4

// Define a 2 component vector.
func XY(x, y float32) Vec2 {
	return Vec2{x, y}
}

// Define a 3 component vector.
func XYZ(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// Define a 4 component vector.
func XYZW(x, y, z, w float32) Vec4 {
	return Vec4{x, y, z, w}
}

// Normalize a 3 component vector. Unlike mgl32, a zero length vector is
// returned unchanged instead of producing NaN components.
func Normalize(v Vec3) Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Mul(1.0 / l)
}

// Component-wise absolute value.
func AbsVec3(v Vec3) Vec3 {
	return Vec3{math32.Abs(v[0]), math32.Abs(v[1]), math32.Abs(v[2])}
}

// Return a vector with the min components of two vectors.
func MinVec3(a, b Vec3) Vec3 {
	return Vec3{
		math32.Min(a[0], b[0]),
		math32.Min(a[1], b[1]),
		math32.Min(a[2], b[2]),
	}
}

// Return a vector with the max components of two vectors.
func MaxVec3(a, b Vec3) Vec3 {
	return Vec3{
		math32.Max(a[0], b[0]),
		math32.Max(a[1], b[1]),
		math32.Max(a[2], b[2]),
	}
}

// Translation column of an affine transform.
func Translation(m Mat4) Vec3 {
	return m.Col(3).Vec3()
}

// Main diagonal of the upper 3x3 block of a transform. For transforms built
// from a translation and a scale this is the scale.
func DiagonalScale(m Mat4) Vec3 {
	return Vec3{m.At(0, 0), m.At(1, 1), m.At(2, 2)}
}
