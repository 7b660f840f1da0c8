package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"

	"github.com/lixenwraith/gamefeel/component"
	"github.com/lixenwraith/gamefeel/engine"
)

func TestSetupSpawnsPlayerRig(t *testing.T) {
	w := engine.NewWorld(nil)
	refs, err := Setup(w, component.DefaultPlayer())
	require.NoError(t, err)
	assert.True(t, w.Resources.Scene.Resolved())
	assert.Equal(t, refs, *w.Resources.Scene)

	pt, ok := w.PlayerTransform()
	require.True(t, ok)
	assert.Equal(t, mgl64.Vec3{0, 1, 0}, pt.Translation)
	assert.Equal(t, mgl64.QuatIdent(), pt.Rotation)

	ct, ok := w.CameraTransform()
	require.True(t, ok)
	assert.Equal(t, mgl64.Vec3{}, ct.Translation)

	p := component.Player.Get(w.ECS.Entry(refs.Player))
	assert.Equal(t, 5.0, p.WalkSpeed)
	assert.Equal(t, 10.0, p.RunSpeed)
	assert.Equal(t, 5.0, p.JumpForce)
	assert.Equal(t, 0.1, p.MouseSensitivity)
}

func TestResolveRejectsMissingPlayer(t *testing.T) {
	w := engine.NewWorld(nil)
	_, err := Resolve(w)
	assert.ErrorIs(t, err, ErrPlayerNotUnique)
}

func TestResolveRejectsSecondPlayer(t *testing.T) {
	w := engine.NewWorld(nil)
	Spawn(w, component.DefaultPlayer())
	Spawn(w, component.DefaultPlayer())

	_, err := Resolve(w)
	assert.ErrorIs(t, err, ErrPlayerNotUnique)
	assert.False(t, w.Resources.Scene.Resolved())
}

func TestResolveRejectsMissingCamera(t *testing.T) {
	w := engine.NewWorld(nil)
	_, camera := Spawn(w, component.DefaultPlayer())
	w.ECS.Remove(camera)

	_, err := Resolve(w)
	assert.ErrorIs(t, err, ErrCameraNotUnique)
}

func TestResolveRejectsOrphanCamera(t *testing.T) {
	w := engine.NewWorld(nil)
	_, camera := Spawn(w, component.DefaultPlayer())
	component.PlayerCamera.SetValue(w.ECS.Entry(camera), component.PlayerCameraComponent{Parent: donburi.Null})

	_, err := Resolve(w)
	assert.ErrorIs(t, err, ErrCameraOrphaned)
}
