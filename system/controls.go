package system

import (
	"github.com/lixenwraith/gamefeel/engine"
	"github.com/lixenwraith/gamefeel/event"
	"github.com/lixenwraith/gamefeel/input"
	"github.com/lixenwraith/gamefeel/parameter"
)

// ControlsSystem translates the frame's raw input into semantic events
// First producer of the batch; raw device events are described into the recent input log
type ControlsSystem struct {
	world      *engine.World
	translator *input.Translator
	scratch    []event.GameEvent
}

// NewControlsSystem creates the input translator stage
func NewControlsSystem(world *engine.World, bindings input.Bindings, pad input.GamepadTuning) *ControlsSystem {
	return &ControlsSystem{
		world:      world,
		translator: input.NewTranslator(bindings, pad, world.Resources.Log.RecentInput),
		scratch:    make([]event.GameEvent, 0, 8),
	}
}

func (s *ControlsSystem) Name() string {
	return "controls"
}

func (s *ControlsSystem) Priority() int {
	return parameter.PriorityControls
}

func (s *ControlsSystem) Update(w *engine.World) {
	frame := w.Resources.Input.Frame
	s.scratch = s.translator.Translate(s.scratch[:0], frame, w.Resources.Game.Paused)
	queue := w.Resources.Event.Queue
	for _, ev := range s.scratch {
		queue.Push(ev)
	}
}
