// Package scene spawns the player rig and resolves its entity references
package scene

import (
	"errors"
	"fmt"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
	"go.uber.org/zap"

	"github.com/lixenwraith/gamefeel/component"
	"github.com/lixenwraith/gamefeel/engine"
	"github.com/lixenwraith/gamefeel/parameter"
)

var (
	ErrPlayerNotUnique = errors.New("scene: expected exactly one player")
	ErrCameraNotUnique = errors.New("scene: expected exactly one player camera")
	ErrCameraOrphaned  = errors.New("scene: player camera parent is not the player")
)

var (
	playerQuery = query.NewQuery(filter.Contains(component.Player, component.Transform))
	cameraQuery = query.NewQuery(filter.Contains(component.PlayerCamera, component.Transform))
)

// Spawn creates the player at the spawn point and its camera child at the local origin
func Spawn(w *engine.World, tuning component.PlayerComponent) (player, camera donburi.Entity) {
	player = w.ECS.Create(component.Transform, component.Player)
	pe := w.ECS.Entry(player)
	component.Transform.SetValue(pe, component.NewTransform(
		parameter.PlayerSpawnX, parameter.PlayerSpawnY, parameter.PlayerSpawnZ,
	))
	component.Player.SetValue(pe, tuning)

	camera = w.ECS.Create(component.Transform, component.PlayerCamera)
	ce := w.ECS.Entry(camera)
	component.Transform.SetValue(ce, component.NewTransform(0, 0, 0))
	component.PlayerCamera.SetValue(ce, component.PlayerCameraComponent{Parent: player})

	w.Logger.Debug("scene spawned",
		zap.Uint64("player", uint64(player)),
		zap.Uint64("camera", uint64(camera)),
	)
	return player, camera
}

// Resolve checks that exactly one player and one camera exist, the camera parented to the player,
// and stores the references in the world's SceneResource
func Resolve(w *engine.World) (engine.SceneResource, error) {
	var refs engine.SceneResource

	if n := playerQuery.Count(w.ECS); n != 1 {
		return refs, fmt.Errorf("%w: found %d", ErrPlayerNotUnique, n)
	}
	if n := cameraQuery.Count(w.ECS); n != 1 {
		return refs, fmt.Errorf("%w: found %d", ErrCameraNotUnique, n)
	}

	pe, _ := playerQuery.First(w.ECS)
	ce, _ := cameraQuery.First(w.ECS)
	refs.Player = pe.Entity()
	refs.Camera = ce.Entity()

	if parent := component.PlayerCamera.Get(ce).Parent; parent != refs.Player {
		return engine.SceneResource{}, fmt.Errorf("%w: parent %v, player %v", ErrCameraOrphaned, parent, refs.Player)
	}

	*w.Resources.Scene = refs
	return refs, nil
}

// Setup spawns and resolves in one step
func Setup(w *engine.World, tuning component.PlayerComponent) (engine.SceneResource, error) {
	Spawn(w, tuning)
	refs, err := Resolve(w)
	if err != nil {
		return refs, fmt.Errorf("scene setup: %w", err)
	}
	return refs, nil
}
