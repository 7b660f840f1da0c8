package input

import "fmt"

// ButtonState is a press/release transition
type ButtonState uint8

const (
	Pressed ButtonState = iota
	Released
)

func (s ButtonState) String() string {
	if s == Pressed {
		return "Pressed"
	}
	return "Released"
}

// ParseButtonState accepts "pressed"/"released" in either case convention
func ParseButtonState(name string) (ButtonState, error) {
	switch name {
	case "Pressed", "pressed", "down":
		return Pressed, nil
	case "Released", "released", "up":
		return Released, nil
	}
	return Pressed, fmt.Errorf("unknown button state %q", name)
}

// MouseButton identifies a mouse button
type MouseButton uint8

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

var mouseNames = [...]string{"Left", "Right", "Middle"}

func (b MouseButton) String() string {
	if int(b) < len(mouseNames) {
		return mouseNames[b]
	}
	return "Unknown"
}

func ParseMouseButton(name string) (MouseButton, error) {
	for i, n := range mouseNames {
		if n == name {
			return MouseButton(i), nil
		}
	}
	return MouseLeft, fmt.Errorf("unknown mouse button %q", name)
}

// GamepadButton uses the standard layout naming: LeftTrigger is the shoulder, LeftTrigger2 the analog trigger
type GamepadButton uint8

const (
	South GamepadButton = iota
	East
	North
	West
	LeftTrigger
	LeftTrigger2
	RightTrigger
	RightTrigger2
	Select
	Start
	Mode
	LeftThumb
	RightThumb
	DPadUp
	DPadDown
	DPadLeft
	DPadRight

	gamepadButtonCount
)

var gamepadButtonNames = [gamepadButtonCount]string{
	"South", "East", "North", "West",
	"LeftTrigger", "LeftTrigger2", "RightTrigger", "RightTrigger2",
	"Select", "Start", "Mode", "LeftThumb", "RightThumb",
	"DPadUp", "DPadDown", "DPadLeft", "DPadRight",
}

func (b GamepadButton) String() string {
	if b < gamepadButtonCount {
		return gamepadButtonNames[b]
	}
	return "Unknown"
}

func ParseGamepadButton(name string) (GamepadButton, error) {
	for i, n := range gamepadButtonNames {
		if n == name {
			return GamepadButton(i), nil
		}
	}
	return South, fmt.Errorf("unknown gamepad button %q", name)
}

// GamepadAxis identifies an analog axis; stick Y is positive up
type GamepadAxis uint8

const (
	LeftStickX GamepadAxis = iota
	LeftStickY
	RightStickX
	RightStickY

	gamepadAxisCount
)

var gamepadAxisNames = [gamepadAxisCount]string{"LeftStickX", "LeftStickY", "RightStickX", "RightStickY"}

func (a GamepadAxis) String() string {
	if a < gamepadAxisCount {
		return gamepadAxisNames[a]
	}
	return "Unknown"
}

func ParseGamepadAxis(name string) (GamepadAxis, error) {
	for i, n := range gamepadAxisNames {
		if n == name {
			return GamepadAxis(i), nil
		}
	}
	return LeftStickX, fmt.Errorf("unknown gamepad axis %q", name)
}
