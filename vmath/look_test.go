package vmath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func assertVec3(t *testing.T, want, got mgl64.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], eps, "component %d of %v", i, got)
	}
}

func TestNormalize2ZeroSafe(t *testing.T) {
	assert.Equal(t, mgl64.Vec2{}, Normalize2(mgl64.Vec2{}))

	n := Normalize2(mgl64.Vec2{3, 4})
	assert.InDelta(t, 1.0, n.Len(), eps)
	assert.InDelta(t, 0.6, n[0], eps)
}

func TestIdentityBasis(t *testing.T) {
	q := mgl64.QuatIdent()
	assertVec3(t, mgl64.Vec3{0, 0, -1}, ForwardOf(q))
	assertVec3(t, mgl64.Vec3{1, 0, 0}, RightOf(q))
}

func TestRotateYTurnsForward(t *testing.T) {
	// Positive yaw turns counter-clockwise seen from above: -Z swings toward -X
	q := RotateY(mgl64.QuatIdent(), math.Pi/2)
	assertVec3(t, mgl64.Vec3{-1, 0, 0}, ForwardOf(q))
	assert.InDelta(t, math.Pi/2, Yaw(q), 1e-9)
}

func TestPitchRoundTrip(t *testing.T) {
	for _, p := range []float64{-1.4, -0.5, 0, 0.3, 1.2} {
		assert.InDelta(t, p, Pitch(PitchRotation(p)), 1e-9, "pitch %v", p)
	}
}

func TestPitchIgnoresYaw(t *testing.T) {
	q := mgl64.QuatRotate(0.7, AxisY).Mul(PitchRotation(0.4))
	assert.InDelta(t, 0.4, Pitch(q), 1e-9)
	assert.InDelta(t, 0.7, Yaw(q), 1e-9)
}
