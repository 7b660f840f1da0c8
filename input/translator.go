package input

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/gamefeel/event"
	"github.com/lixenwraith/gamefeel/parameter"
	"github.com/lixenwraith/gamefeel/vmath"
)

// GamepadTuning holds analog thresholds
type GamepadTuning struct {
	Deadzone         float64 // Stick magnitude must exceed this to move
	TriggerThreshold float64 // Button value crossing for press/release
}

// DefaultGamepadTuning returns the 0.2 deadzone / 0.5 trigger defaults
func DefaultGamepadTuning() GamepadTuning {
	return GamepadTuning{
		Deadzone:         parameter.GamepadDeadzone,
		TriggerThreshold: parameter.GamepadTriggerThreshold,
	}
}

// Translator turns one Frame of raw input into semantic game events
// Every raw keyboard, mouse button and gamepad event is described into the recent log
type Translator struct {
	bindings Bindings
	pad      GamepadTuning
	recent   *event.Log[string]
}

// NewTranslator creates a translator writing raw descriptions into recent (may be nil)
func NewTranslator(b Bindings, pad GamepadTuning, recent *event.Log[string]) *Translator {
	return &Translator{
		bindings: b,
		pad:      pad,
		recent:   recent,
	}
}

// Bindings returns the active key bindings
func (t *Translator) Bindings() Bindings {
	return t.bindings
}

// Translate appends the frame's semantic events to dst and returns it
// paused is the current game state, used to derive the requested Pause value
func (t *Translator) Translate(dst []event.GameEvent, f *Frame, paused bool) []event.GameEvent {
	dst = t.translateHeld(dst, f)
	dst = t.translateKeys(dst, f, paused)
	dst = t.translateMouse(dst, f)
	dst = t.translateGamepad(dst, f, paused)
	return dst
}

// translateHeld samples continuous movement and the unconditional per-frame Sprint
func (t *Translator) translateHeld(dst []event.GameEvent, f *Frame) []event.GameEvent {
	var movement mgl64.Vec2
	if f.Held.Pressed(t.bindings.Forward) {
		movement[1] += 1
	}
	if f.Held.Pressed(t.bindings.Back) {
		movement[1] -= 1
	}
	if f.Held.Pressed(t.bindings.Left) {
		movement[0] -= 1
	}
	if f.Held.Pressed(t.bindings.Right) {
		movement[0] += 1
	}

	if !vmath.IsZero2(movement) {
		dst = append(dst, event.Move(vmath.Normalize2(movement)))
	}

	return append(dst, event.Sprint(f.Held.Pressed(t.bindings.Sprint)))
}

func (t *Translator) translateKeys(dst []event.GameEvent, f *Frame, paused bool) []event.GameEvent {
	for _, ev := range f.Keys {
		t.describe("Keyboard: " + ev.String())
		if ev.State != Pressed {
			continue
		}
		switch ev.Key {
		case t.bindings.Jump:
			dst = append(dst, event.Jump())
		case t.bindings.Pause:
			dst = append(dst, event.Pause(!paused))
		}
	}
	return dst
}

func (t *Translator) translateMouse(dst []event.GameEvent, f *Frame) []event.GameEvent {
	for _, ev := range f.MouseButtons {
		t.describe("Mouse: " + ev.String())
		if ev.Button == MouseLeft && ev.State == Pressed {
			dst = append(dst, event.Fire())
		}
	}
	return dst
}

// translateGamepad evaluates each event independently; repeated identical events near a threshold are not deduplicated
func (t *Translator) translateGamepad(dst []event.GameEvent, f *Frame, paused bool) []event.GameEvent {
	threshold := t.pad.TriggerThreshold

	for _, ev := range f.Gamepad {
		t.describe("Gamepad: " + ev.String())

		switch ev.Kind {
		case GamepadButtonChanged:
			switch ev.Button {
			case South:
				if ev.Value > threshold {
					dst = append(dst, event.Jump())
				}
			case RightTrigger2:
				if ev.Value > threshold {
					dst = append(dst, event.Fire())
				}
			case LeftTrigger:
				if ev.Value > threshold {
					dst = append(dst, event.Sprint(true))
				} else if ev.Value < threshold {
					dst = append(dst, event.Sprint(false))
				}
			case Start:
				if ev.Value > threshold {
					dst = append(dst, event.Pause(!paused))
				}
			}

		case GamepadAxisChanged:
			var movement mgl64.Vec2
			switch ev.Axis {
			case LeftStickX:
				movement = mgl64.Vec2{ev.Value, 0}
			case LeftStickY:
				movement = mgl64.Vec2{0, ev.Value}
			default:
				continue
			}
			// Single-axis nudges past the deadzone are re-normalized to full speed
			if movement.Len() > t.pad.Deadzone {
				dst = append(dst, event.Move(vmath.Normalize2(movement)))
			}
		}
	}
	return dst
}

func (t *Translator) describe(s string) {
	if t.recent != nil {
		t.recent.Push(s)
	}
}
