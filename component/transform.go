package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"

	"github.com/lixenwraith/gamefeel/vmath"
)

// TransformComponent is a local position and orientation
// For a child entity it is relative to the parent
type TransformComponent struct {
	Translation mgl64.Vec3
	Rotation    mgl64.Quat
}

// NewTransform returns an unrotated transform at (x, y, z)
func NewTransform(x, y, z float64) TransformComponent {
	return TransformComponent{
		Translation: mgl64.Vec3{x, y, z},
		Rotation:    mgl64.QuatIdent(),
	}
}

// Forward returns the local -Z axis in parent space
func (t *TransformComponent) Forward() mgl64.Vec3 {
	return vmath.ForwardOf(t.Rotation)
}

// Right returns the local +X axis in parent space
func (t *TransformComponent) Right() mgl64.Vec3 {
	return vmath.RightOf(t.Rotation)
}

// RotateY turns the transform about the world vertical axis
func (t *TransformComponent) RotateY(angle float64) {
	t.Rotation = vmath.RotateY(t.Rotation, angle)
}

var Transform = donburi.NewComponentType[TransformComponent]()
