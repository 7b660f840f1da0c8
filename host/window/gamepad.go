package window

import (
	"github.com/lixenwraith/gamefeel/input"
)

// padState is the last sampled value of every button and axis of one gamepad
type padState struct {
	buttons [len(padButtonMap)]float64
	axes    [len(padAxisMap)]float64
}

// diff appends change events between prev and next, buttons before axes
func diff(dst []input.GamepadEvent, id int, prev, next *padState) []input.GamepadEvent {
	for i, v := range next.buttons {
		if v != prev.buttons[i] {
			dst = append(dst, input.GamepadEvent{
				Gamepad: id,
				Kind:    input.GamepadButtonChanged,
				Button:  padButtonMap[i].in,
				Value:   v,
			})
		}
	}
	for i, v := range next.axes {
		if v != prev.axes[i] {
			dst = append(dst, input.GamepadEvent{
				Gamepad: id,
				Kind:    input.GamepadAxisChanged,
				Axis:    padAxisMap[i].in,
				Value:   v,
			})
		}
	}
	return dst
}
