package parameter

import "time"

// Gamepad
const (
	// GamepadDeadzone is the stick magnitude at or below which Move is suppressed
	GamepadDeadzone = 0.2

	// GamepadTriggerThreshold is the button/trigger value considered "pressed"
	GamepadTriggerThreshold = 0.5
)

// Default Key Bindings (input.Key names)
const (
	BindForward = "KeyW"
	BindBack    = "KeyS"
	BindLeft    = "KeyA"
	BindRight   = "KeyD"
	BindSprint  = "ShiftLeft"
	BindJump    = "Space"
	BindPause   = "KeyP"
	BindEscape  = "Escape"
)

// Terminal Input
const (
	// TerminalHoldWindow is how long a key stays "held" after its last press/repeat
	// Terminals report no key-up; must exceed the OS key repeat delay
	TerminalHoldWindow = 550 * time.Millisecond

	// TerminalMotionScale converts one terminal cell of mouse travel into mouse delta units
	TerminalMotionScale = 8.0
)
