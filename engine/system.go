package engine

// System is one per-frame unit of game logic
type System interface {
	Name() string
	Priority() int // Lower values run first
	Update(w *World)
}

// Condition gates a system; evaluated immediately before the system would run
type Condition func(w *World) bool

// NotPaused holds while the game is running
func NotPaused(w *World) bool {
	return !w.Resources.Game.Paused
}
