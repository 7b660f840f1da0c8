package engine

import (
	"time"

	"github.com/yohamta/donburi"

	"github.com/lixenwraith/gamefeel/event"
	"github.com/lixenwraith/gamefeel/input"
	"github.com/lixenwraith/gamefeel/parameter"
	"github.com/lixenwraith/gamefeel/status"
)

// Resource holds singleton game resources, initialized with the World, accessed via World.Resources
type Resource struct {
	// World Resource
	Time   *TimeResource
	Game   *GameStateResource
	Input  *InputResource
	Event  *EventQueueResource
	Log    *LogResource
	Cursor *CursorResource
	Scene  *SceneResource

	// Telemetry
	Status *status.Registry

	// Bridged from host services, nil when unavailable
	Audio *AudioResource
}

// NewResource creates the default resource set
func NewResource() Resource {
	return Resource{
		Time:   &TimeResource{},
		Game:   &GameStateResource{},
		Input:  &InputResource{Frame: &input.Frame{}},
		Event:  &EventQueueResource{Queue: event.NewQueue()},
		Log:    NewLogResource(parameter.RecentLogCapacity),
		Cursor: NewCursorResource(InitialCursor),
		Scene:  &SceneResource{Player: donburi.Null, Camera: donburi.Null},
		Status: status.NewRegistry(),
	}
}

// === World Resources ===

// TimeResource wraps time data for systems
// Updated by the Scheduler at the start of a frame
type TimeResource struct {
	// Delta is the clamped duration since the last frame
	Delta time.Duration

	// DeltaSeconds is Delta in seconds, the unit used by movement math
	DeltaSeconds float64

	// Elapsed is total simulated time
	Elapsed time.Duration

	// FrameNumber is the current frame count, starting at 1
	FrameNumber int64
}

// GameStateResource holds global gameplay flags
type GameStateResource struct {
	Paused bool
}

// InputResource exposes the raw input of the current frame
// Scheduler.Tick sets Frame before any system runs, so Update never sees nil
type InputResource struct {
	Frame *input.Frame
}

// EventQueueResource wraps the per-frame semantic event batch
type EventQueueResource struct {
	Queue *event.Queue
}

// LogResource holds the two bounded recency logs shown by the overlay
type LogResource struct {
	RecentInput *event.Log[string]
	RecentGame  *event.Log[event.GameEvent]
}

func NewLogResource(capacity int) *LogResource {
	return &LogResource{
		RecentInput: event.NewLog[string](capacity),
		RecentGame:  event.NewLog[event.GameEvent](capacity),
	}
}

// SceneResource holds entity references resolved once at startup
type SceneResource struct {
	Player donburi.Entity
	Camera donburi.Entity
}

// Resolved reports whether both references were set
func (s *SceneResource) Resolved() bool {
	return s.Player != donburi.Null && s.Camera != donburi.Null
}

// === Bridged Resources ===

// CuePlayer plays short sound cues for semantic events
type CuePlayer interface {
	PlayCue(t event.EventType)
}

// AudioResource bridges the audio service into systems
type AudioResource struct {
	Player  CuePlayer
	Enabled bool
}
