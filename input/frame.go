package input

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// KeyEvent is a keyboard transition
type KeyEvent struct {
	Key   Key
	State ButtonState
}

func (e KeyEvent) String() string {
	return fmt.Sprintf("%s %s", e.Key, e.State)
}

// MouseButtonEvent is a mouse button transition
type MouseButtonEvent struct {
	Button MouseButton
	State  ButtonState
}

func (e MouseButtonEvent) String() string {
	return fmt.Sprintf("%s %s", e.Button, e.State)
}

// GamepadEventKind discriminates GamepadEvent
type GamepadEventKind uint8

const (
	GamepadButtonChanged GamepadEventKind = iota
	GamepadAxisChanged
)

// GamepadEvent reports a new button or axis value
// Hosts emit one when the sampled value changes
type GamepadEvent struct {
	Gamepad int
	Kind    GamepadEventKind
	Button  GamepadButton
	Axis    GamepadAxis
	Value   float64
}

func (e GamepadEvent) String() string {
	if e.Kind == GamepadAxisChanged {
		return fmt.Sprintf("#%d Axis %s %.2f", e.Gamepad, e.Axis, e.Value)
	}
	return fmt.Sprintf("#%d Button %s %.2f", e.Gamepad, e.Button, e.Value)
}

// Frame is one frame of raw input as sampled by the host
type Frame struct {
	// Delta is the elapsed time since the previous frame
	Delta time.Duration

	// Held is the set of keys down during this frame
	Held KeySet

	// Discrete transitions observed since the previous frame, in arrival order
	Keys         []KeyEvent
	MouseButtons []MouseButtonEvent
	Gamepad      []GamepadEvent

	// Motion holds raw mouse-motion deltas (+x right, +y down)
	Motion []mgl64.Vec2
}

// MotionDelta sums all mouse-motion deltas of the frame
func (f *Frame) MotionDelta() mgl64.Vec2 {
	var d mgl64.Vec2
	for _, m := range f.Motion {
		d = d.Add(m)
	}
	return d
}

// Reset clears transitions and motion, keeping held keys and slice capacity
func (f *Frame) Reset() {
	f.Delta = 0
	f.Keys = f.Keys[:0]
	f.MouseButtons = f.MouseButtons[:0]
	f.Gamepad = f.Gamepad[:0]
	f.Motion = f.Motion[:0]
}
