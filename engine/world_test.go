package engine

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/gamefeel/component"
	"github.com/lixenwraith/gamefeel/event"
)

func TestWorldEntryRejectsStale(t *testing.T) {
	w := NewWorld(nil)
	e := w.ECS.Create(component.Transform)

	_, ok := w.Entry(e)
	require.True(t, ok)

	w.ECS.Remove(e)
	_, ok = w.Entry(e)
	assert.False(t, ok)
}

func TestCaptureReadsSceneRefs(t *testing.T) {
	w := NewWorld(nil)
	player := w.ECS.Create(component.Transform, component.Player)
	component.Transform.SetValue(w.ECS.Entry(player), component.NewTransform(1, 2, 3))
	camera := w.ECS.Create(component.Transform, component.PlayerCamera)
	component.Transform.SetValue(w.ECS.Entry(camera), component.NewTransform(0, 0, 0))

	w.Resources.Scene.Player = player
	w.Resources.Scene.Camera = camera
	w.Resources.Log.RecentInput.Push("Keyboard: KeyW Pressed")
	w.Resources.Log.RecentGame.Push(event.Move(mgl64.Vec2{0, 1}))

	snap := w.Capture()
	assert.Equal(t, mgl64.Vec3{1, 2, 3}, snap.Position)
	assert.InDelta(t, 0, snap.Yaw, 1e-9)
	assert.InDelta(t, 0, snap.Pitch, 1e-9)
	assert.InDelta(t, -1, snap.Facing[1], 1e-9)
	assert.Equal(t, []string{"Keyboard: KeyW Pressed"}, snap.RecentInput)
	assert.Equal(t, []string{"Move(0.00, 1.00)"}, snap.RecentGame)
}
