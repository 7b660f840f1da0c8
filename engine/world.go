package engine

import (
	"github.com/yohamta/donburi"
	"go.uber.org/zap"

	"github.com/lixenwraith/gamefeel/component"
	"github.com/lixenwraith/gamefeel/vmath"
)

// World pairs the donburi entity store with singleton resources
// Owned by the frame goroutine; only the published Snapshot crosses goroutines
type World struct {
	ECS       donburi.World
	Resources Resource
	Logger    *zap.Logger

	snapshot SnapshotStore
}

// NewWorld creates an empty world with default resources
// A nil logger is replaced with a no-op logger
func NewWorld(logger *zap.Logger) *World {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &World{
		ECS:       donburi.NewWorld(),
		Resources: NewResource(),
		Logger:    logger,
	}
}

// Entry returns the entry for e if it is still alive
func (w *World) Entry(e donburi.Entity) (*donburi.Entry, bool) {
	if e == donburi.Null || !w.ECS.Valid(e) {
		return nil, false
	}
	return w.ECS.Entry(e), true
}

// PlayerTransform returns the player's transform via SceneResource
func (w *World) PlayerTransform() (*component.TransformComponent, bool) {
	entry, ok := w.Entry(w.Resources.Scene.Player)
	if !ok || !entry.HasComponent(component.Transform) {
		return nil, false
	}
	return component.Transform.Get(entry), true
}

// CameraTransform returns the camera's parent-relative transform via SceneResource
func (w *World) CameraTransform() (*component.TransformComponent, bool) {
	entry, ok := w.Entry(w.Resources.Scene.Camera)
	if !ok || !entry.HasComponent(component.Transform) {
		return nil, false
	}
	return component.Transform.Get(entry), true
}

// Capture builds a read-only view of the current frame
func (w *World) Capture() Snapshot {
	r := w.Resources
	snap := Snapshot{
		Frame:   r.Time.FrameNumber,
		Elapsed: r.Time.Elapsed.Seconds(),
		Paused:  r.Game.Paused,
		Cursor:  r.Cursor.Current(),
		Summary: r.Status.Summary(),
	}

	if t, ok := w.PlayerTransform(); ok {
		snap.Position = t.Translation
		snap.Yaw = vmath.Yaw(t.Rotation)
		f := t.Forward()
		snap.Facing = [2]float64{f[0], f[2]}
	}
	if t, ok := w.CameraTransform(); ok {
		snap.Pitch = vmath.Pitch(t.Rotation)
	}

	snap.RecentInput = r.Log.RecentInput.Snapshot()
	games := r.Log.RecentGame.Snapshot()
	snap.RecentGame = make([]string, len(games))
	for i, ev := range games {
		snap.RecentGame[i] = ev.String()
	}
	return snap
}

// Publish stores a fresh Snapshot for readers on other goroutines
func (w *World) Publish() {
	w.snapshot.Store(w.Capture())
}

// Snapshot returns the last published frame view
func (w *World) Snapshot() Snapshot {
	return w.snapshot.Load()
}
