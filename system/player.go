package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/lixenwraith/gamefeel/component"
	"github.com/lixenwraith/gamefeel/engine"
	"github.com/lixenwraith/gamefeel/event"
	"github.com/lixenwraith/gamefeel/parameter"
	"github.com/lixenwraith/gamefeel/vmath"
)

// staleRefGuard logs a missing scene entity once per outage
type staleRefGuard struct {
	logger *zap.Logger
	warned bool
}

func (g *staleRefGuard) check(ok bool, what string) bool {
	if ok {
		g.warned = false
		return true
	}
	if !g.warned {
		g.logger.Warn("scene entity unavailable, skipping", zap.String("entity", what))
		g.warned = true
	}
	return false
}

// PlayerMovementSystem moves the player along its facing from the frame's Move and Sprint events
// Registered with engine.NotPaused
type PlayerMovementSystem struct {
	world *engine.World
	guard staleRefGuard
}

func NewPlayerMovementSystem(world *engine.World) *PlayerMovementSystem {
	return &PlayerMovementSystem{
		world: world,
		guard: staleRefGuard{logger: world.Logger.Named("movement")},
	}
}

func (s *PlayerMovementSystem) Name() string {
	return "player_movement"
}

func (s *PlayerMovementSystem) Priority() int {
	return parameter.PriorityMovement
}

func (s *PlayerMovementSystem) Update(w *engine.World) {
	entry, ok := w.Entry(w.Resources.Scene.Player)
	if !s.guard.check(ok, "player") {
		return
	}
	player := component.Player.Get(entry)
	transform := component.Transform.Get(entry)

	var movement mgl64.Vec3
	sprinting := false

	for _, ev := range w.Resources.Event.Queue.Batch() {
		switch ev.Type {
		case event.EventMove:
			forward := transform.Forward().Mul(ev.Dir[1])
			right := transform.Right().Mul(ev.Dir[0])
			movement = movement.Add(forward).Add(right)
		case event.EventSprint:
			// Last Sprint of the frame wins
			sprinting = ev.Enabled
		}
	}

	if vmath.IsZero3(movement) {
		return
	}

	step := vmath.Normalize3(movement).Mul(player.Speed(sprinting) * w.Resources.Time.DeltaSeconds)
	transform.Translation = transform.Translation.Add(step)
}

// PlayerLookSystem applies summed mouse motion as player yaw and camera pitch
// Registered with engine.NotPaused
type PlayerLookSystem struct {
	world *engine.World
	guard staleRefGuard
}

func NewPlayerLookSystem(world *engine.World) *PlayerLookSystem {
	return &PlayerLookSystem{
		world: world,
		guard: staleRefGuard{logger: world.Logger.Named("look")},
	}
}

func (s *PlayerLookSystem) Name() string {
	return "player_look"
}

func (s *PlayerLookSystem) Priority() int {
	return parameter.PriorityLook
}

func (s *PlayerLookSystem) Update(w *engine.World) {
	frame := w.Resources.Input.Frame
	delta := frame.MotionDelta()
	if vmath.IsZero2(delta) {
		return
	}

	playerEntry, ok := w.Entry(w.Resources.Scene.Player)
	if !s.guard.check(ok, "player") {
		return
	}
	sens := component.Player.Get(playerEntry).MouseSensitivity
	component.Transform.Get(playerEntry).RotateY(-delta[0] * sens * parameter.LookScale)

	cam, ok := w.CameraTransform()
	if !s.guard.check(ok, "camera") {
		return
	}

	// Pitch is rebuilt from scratch so yaw and roll never accumulate on the camera
	pitch := vmath.Pitch(cam.Rotation) - delta[1]*sens*parameter.LookScale
	pitch = mgl64.Clamp(pitch, -parameter.PitchLimit, parameter.PitchLimit)
	cam.Rotation = vmath.PitchRotation(pitch)
}
