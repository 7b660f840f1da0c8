package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Basis axes, right-handed Y-up: forward looks down -Z
var (
	AxisX   = mgl64.Vec3{1, 0, 0}
	AxisY   = mgl64.Vec3{0, 1, 0}
	Forward = mgl64.Vec3{0, 0, -1}
)

// Normalize2 returns unit vector, zero-safe
func Normalize2(v mgl64.Vec2) mgl64.Vec2 {
	l := v.Len()
	if l == 0 {
		return mgl64.Vec2{}
	}
	return v.Mul(1 / l)
}

// Normalize3 returns unit vector, zero-safe
func Normalize3(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l == 0 {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// IsZero2 reports exact zero, matching the "no input" test of raw device sums
func IsZero2(v mgl64.Vec2) bool {
	return v[0] == 0 && v[1] == 0
}

// IsZero3 reports exact zero
func IsZero3(v mgl64.Vec3) bool {
	return v[0] == 0 && v[1] == 0 && v[2] == 0
}

// RotateY pre-multiplies q by a rotation of angle radians about world Y
// Applying in world frame keeps yaw independent of any existing tilt
func RotateY(q mgl64.Quat, angle float64) mgl64.Quat {
	return mgl64.QuatRotate(angle, AxisY).Mul(q).Normalize()
}

// PitchRotation builds a rotation with only pitch (yaw and roll zero)
func PitchRotation(pitch float64) mgl64.Quat {
	return mgl64.QuatRotate(pitch, AxisX)
}

// Pitch extracts the X angle of a YXZ euler decomposition
// R = Ry * Rx * Rz gives R[1][2] = -sin(pitch); in quaternion terms 2(yz - wx)
func Pitch(q mgl64.Quat) float64 {
	x, y, z := q.V[0], q.V[1], q.V[2]
	s := 2 * (q.W*x - y*z)
	return math.Asin(mgl64.Clamp(s, -1, 1))
}

// Yaw extracts the Y angle of a YXZ euler decomposition
func Yaw(q mgl64.Quat) float64 {
	x, y, z := q.V[0], q.V[1], q.V[2]
	return math.Atan2(2*(x*z+q.W*y), 1-2*(x*x+y*y))
}

// ForwardOf returns the -Z axis rotated by q
func ForwardOf(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(Forward)
}

// RightOf returns the +X axis rotated by q
func RightOf(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(AxisX)
}
