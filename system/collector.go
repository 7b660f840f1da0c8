package system

import (
	"sync/atomic"

	"github.com/lixenwraith/gamefeel/engine"
	"github.com/lixenwraith/gamefeel/event"
	"github.com/lixenwraith/gamefeel/parameter"
	"github.com/lixenwraith/gamefeel/status"
)

// EventCollectorSystem records every semantic event of the frame into the recent game log
// Arrival order is preserved; the log keeps only the newest entries
type EventCollectorSystem struct {
	world  *engine.World
	counts map[event.EventType]*atomic.Int64
}

func NewEventCollectorSystem(world *engine.World) *EventCollectorSystem {
	s := &EventCollectorSystem{
		world:  world,
		counts: make(map[event.EventType]*atomic.Int64),
	}

	reg := world.Resources.Status
	for _, et := range event.Types() {
		s.counts[et] = reg.Ints.Get(status.EventKey(event.GetEventName(et)))
	}
	return s
}

func (s *EventCollectorSystem) Name() string {
	return "event_collector"
}

func (s *EventCollectorSystem) Priority() int {
	return parameter.PriorityEventCollector
}

func (s *EventCollectorSystem) Update(w *engine.World) {
	recent := w.Resources.Log.RecentGame
	for _, ev := range w.Resources.Event.Queue.Batch() {
		recent.Push(ev)
		if c, ok := s.counts[ev.Type]; ok {
			c.Add(1)
		}
	}
}
