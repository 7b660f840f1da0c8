package system

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/gamefeel/engine"
	"github.com/lixenwraith/gamefeel/event"
	"github.com/lixenwraith/gamefeel/parameter"
)

// PauseSystem applies Pause events to GameState and requests the matching cursor mode
// Runs ungated so a paused game can resume
type PauseSystem struct {
	world  *engine.World
	logger *zap.Logger
}

func NewPauseSystem(world *engine.World) *PauseSystem {
	return &PauseSystem{
		world:  world,
		logger: world.Logger.Named("pause"),
	}
}

func (s *PauseSystem) Name() string {
	return "pause"
}

func (s *PauseSystem) Priority() int {
	return parameter.PriorityPause
}

func (s *PauseSystem) Update(w *engine.World) {
	for _, ev := range w.Resources.Event.Queue.Batch() {
		if ev.Type != event.EventPause {
			continue
		}

		if w.Resources.Game.Paused != ev.Enabled {
			s.logger.Info("pause state changed",
				zap.Bool("paused", ev.Enabled),
				zap.Int64("frame", ev.Frame),
			)
		}
		w.Resources.Game.Paused = ev.Enabled
		w.Resources.Cursor.Request(engine.PausedCursor(ev.Enabled))
	}
}
