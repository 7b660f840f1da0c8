package engine

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lixenwraith/gamefeel/event"
	"github.com/lixenwraith/gamefeel/input"
	"github.com/lixenwraith/gamefeel/status"
)

// FrameHook observes the completed batch before it is cleared
type FrameHook func(w *World, batch []event.GameEvent)

type scheduled struct {
	system     System
	conditions []Condition
}

func (s scheduled) ready(w *World) bool {
	for _, cond := range s.conditions {
		if !cond(w) {
			return false
		}
	}
	return true
}

// Scheduler runs registered systems once per frame in priority order
// Every system of a frame sees the same event batch; the batch is dropped after the last one
type Scheduler struct {
	mu      sync.Mutex
	world   *World
	systems []scheduled
	hooks   []FrameHook

	// Cached metric pointers
	statFrames  *atomic.Int64
	statFrameMs *status.Float64
	statPaused  *atomic.Bool
	statTotal   *atomic.Int64
	statBig     *atomic.Int64
}

func NewScheduler(w *World) *Scheduler {
	reg := w.Resources.Status
	return &Scheduler{
		world:       w,
		statFrames:  reg.Ints.Get(status.KeyFrames),
		statFrameMs: reg.Floats.Get(status.KeyFrameMillis),
		statPaused:  reg.Bools.Get(status.KeyPaused),
		statTotal:   reg.Ints.Get(status.KeyEventsTotal),
		statBig:     reg.Ints.Get(status.KeyEventsBig),
	}
}

// World returns the scheduled world
func (s *Scheduler) World() *World {
	return s.world
}

// Add registers a system with optional run conditions and sorts by priority
// Equal priorities keep registration order
func (s *Scheduler) Add(system System, conditions ...Condition) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.systems = append(s.systems, scheduled{system: system, conditions: conditions})

	// Sort by priority (bubble sort, small N, stable)
	for i := 0; i < len(s.systems)-1; i++ {
		for j := 0; j < len(s.systems)-i-1; j++ {
			if s.systems[j].system.Priority() > s.systems[j+1].system.Priority() {
				s.systems[j], s.systems[j+1] = s.systems[j+1], s.systems[j]
			}
		}
	}

	s.world.Logger.Debug("system registered",
		zap.String("system", system.Name()),
		zap.Int("priority", system.Priority()),
		zap.Int("conditions", len(conditions)),
	)
}

// OnFrame registers a hook run after all systems of a frame
func (s *Scheduler) OnFrame(hook FrameHook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = append(s.hooks, hook)
}

// Systems returns a copy of registered systems in run order
func (s *Scheduler) Systems() []System {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]System, len(s.systems))
	for i, sc := range s.systems {
		result[i] = sc.system
	}
	return result
}

// Tick advances one frame: publish input and time, run systems, publish snapshot, clear batch
// A nil frame runs as a frame with no input and no elapsed time
func (s *Scheduler) Tick(frame *input.Frame) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if frame == nil {
		frame = &input.Frame{}
	}

	w := s.world
	dt := frame.Delta
	if dt < 0 {
		dt = 0
	}

	t := w.Resources.Time
	t.FrameNumber++
	t.Delta = dt
	t.DeltaSeconds = dt.Seconds()
	t.Elapsed += dt

	w.Resources.Input.Frame = frame
	queue := w.Resources.Event.Queue
	queue.Begin(t.FrameNumber)

	for _, sc := range s.systems {
		if !sc.ready(w) {
			continue
		}
		sc.system.Update(w)
	}

	batch := queue.Batch()
	s.statFrames.Store(t.FrameNumber)
	s.statFrameMs.Store(float64(dt.Microseconds()) / 1000)
	s.statPaused.Store(w.Resources.Game.Paused)
	s.statTotal.Add(int64(len(batch)))
	s.statBig.Store(int64(queue.Oversized()))

	for _, hook := range s.hooks {
		hook(w, batch)
	}

	w.Publish()
	queue.Clear()
}
