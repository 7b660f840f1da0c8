package event

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// EventType represents the type of semantic game event
type EventType uint8

const (
	EventNone EventType = iota

	// EventJump signals a jump request
	// Trigger: jump key down, gamepad South > threshold
	// Consumer: EventCollector, AudioCue | Payload: none
	EventJump

	// EventFire signals a primary fire request
	// Trigger: primary mouse button down, gamepad RightTrigger2 > threshold
	// Consumer: EventCollector, AudioCue | Payload: none
	EventFire

	// EventMove carries a unit 2D input direction (x strafe, y forward/back)
	// Trigger: held movement keys each frame, left stick axis past deadzone
	// Consumer: PlayerMovement | Payload: Dir
	EventMove

	// EventSprint carries the sprint state for this frame
	// Trigger: every frame from the sprint key, gamepad LeftTrigger crossings
	// Consumer: PlayerMovement | Payload: Enabled
	EventSprint

	// EventPause requests the paused state
	// Trigger: pause key down, gamepad Start
	// Consumer: PauseSystem | Payload: Enabled
	EventPause
)

// GameEvent is a device-agnostic gameplay signal
// Only the payload field matching Type is meaningful
type GameEvent struct {
	Type    EventType
	Dir     mgl64.Vec2
	Enabled bool
	Frame   int64
}

func Jump() GameEvent { return GameEvent{Type: EventJump} }

func Fire() GameEvent { return GameEvent{Type: EventFire} }

func Move(dir mgl64.Vec2) GameEvent { return GameEvent{Type: EventMove, Dir: dir} }

func Sprint(enabled bool) GameEvent { return GameEvent{Type: EventSprint, Enabled: enabled} }

func Pause(enabled bool) GameEvent { return GameEvent{Type: EventPause, Enabled: enabled} }

// String renders the event as shown in the debug overlay
func (e GameEvent) String() string {
	switch e.Type {
	case EventMove:
		return fmt.Sprintf("Move(%.2f, %.2f)", e.Dir[0], e.Dir[1])
	case EventSprint, EventPause:
		return fmt.Sprintf("%s(%t)", GetEventName(e.Type), e.Enabled)
	default:
		return GetEventName(e.Type)
	}
}

// Equal compares type and payload, ignoring frame stamp
func (e GameEvent) Equal(o GameEvent) bool {
	if e.Type != o.Type {
		return false
	}
	switch e.Type {
	case EventMove:
		return e.Dir == o.Dir
	case EventSprint, EventPause:
		return e.Enabled == o.Enabled
	}
	return true
}
