package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/gamefeel/input"
)

// keyMap translates ebiten physical keys to host-independent keys
var keyMap = map[ebiten.Key]input.Key{
	ebiten.KeyA: input.KeyA, ebiten.KeyB: input.KeyB, ebiten.KeyC: input.KeyC,
	ebiten.KeyD: input.KeyD, ebiten.KeyE: input.KeyE, ebiten.KeyF: input.KeyF,
	ebiten.KeyG: input.KeyG, ebiten.KeyH: input.KeyH, ebiten.KeyI: input.KeyI,
	ebiten.KeyJ: input.KeyJ, ebiten.KeyK: input.KeyK, ebiten.KeyL: input.KeyL,
	ebiten.KeyM: input.KeyM, ebiten.KeyN: input.KeyN, ebiten.KeyO: input.KeyO,
	ebiten.KeyP: input.KeyP, ebiten.KeyQ: input.KeyQ, ebiten.KeyR: input.KeyR,
	ebiten.KeyS: input.KeyS, ebiten.KeyT: input.KeyT, ebiten.KeyU: input.KeyU,
	ebiten.KeyV: input.KeyV, ebiten.KeyW: input.KeyW, ebiten.KeyX: input.KeyX,
	ebiten.KeyY: input.KeyY, ebiten.KeyZ: input.KeyZ,

	ebiten.KeyDigit0: input.Digit0, ebiten.KeyDigit1: input.Digit1,
	ebiten.KeyDigit2: input.Digit2, ebiten.KeyDigit3: input.Digit3,
	ebiten.KeyDigit4: input.Digit4, ebiten.KeyDigit5: input.Digit5,
	ebiten.KeyDigit6: input.Digit6, ebiten.KeyDigit7: input.Digit7,
	ebiten.KeyDigit8: input.Digit8, ebiten.KeyDigit9: input.Digit9,

	ebiten.KeySpace:        input.Space,
	ebiten.KeyEnter:        input.Enter,
	ebiten.KeyEscape:       input.Escape,
	ebiten.KeyTab:          input.Tab,
	ebiten.KeyBackspace:    input.Backspace,
	ebiten.KeyShiftLeft:    input.ShiftLeft,
	ebiten.KeyShiftRight:   input.ShiftRight,
	ebiten.KeyControlLeft:  input.ControlLeft,
	ebiten.KeyControlRight: input.ControlRight,
	ebiten.KeyAltLeft:      input.AltLeft,
	ebiten.KeyAltRight:     input.AltRight,
	ebiten.KeyArrowUp:      input.ArrowUp,
	ebiten.KeyArrowDown:    input.ArrowDown,
	ebiten.KeyArrowLeft:    input.ArrowLeft,
	ebiten.KeyArrowRight:   input.ArrowRight,
}

var mouseMap = [...]struct {
	eb ebiten.MouseButton
	in input.MouseButton
}{
	{ebiten.MouseButtonLeft, input.MouseLeft},
	{ebiten.MouseButtonRight, input.MouseRight},
	{ebiten.MouseButtonMiddle, input.MouseMiddle},
}

// Standard layout positions named by the face they occupy
var padButtonMap = [...]struct {
	eb ebiten.StandardGamepadButton
	in input.GamepadButton
}{
	{ebiten.StandardGamepadButtonRightBottom, input.South},
	{ebiten.StandardGamepadButtonRightRight, input.East},
	{ebiten.StandardGamepadButtonRightTop, input.North},
	{ebiten.StandardGamepadButtonRightLeft, input.West},
	{ebiten.StandardGamepadButtonFrontTopLeft, input.LeftTrigger},
	{ebiten.StandardGamepadButtonFrontBottomLeft, input.LeftTrigger2},
	{ebiten.StandardGamepadButtonFrontTopRight, input.RightTrigger},
	{ebiten.StandardGamepadButtonFrontBottomRight, input.RightTrigger2},
	{ebiten.StandardGamepadButtonCenterLeft, input.Select},
	{ebiten.StandardGamepadButtonCenterRight, input.Start},
	{ebiten.StandardGamepadButtonCenterCenter, input.Mode},
	{ebiten.StandardGamepadButtonLeftStick, input.LeftThumb},
	{ebiten.StandardGamepadButtonRightStick, input.RightThumb},
	{ebiten.StandardGamepadButtonLeftTop, input.DPadUp},
	{ebiten.StandardGamepadButtonLeftBottom, input.DPadDown},
	{ebiten.StandardGamepadButtonLeftLeft, input.DPadLeft},
	{ebiten.StandardGamepadButtonLeftRight, input.DPadRight},
}

// Vertical axes are down-positive in ebiten and up-positive in input
var padAxisMap = [...]struct {
	eb   ebiten.StandardGamepadAxis
	in   input.GamepadAxis
	sign float64
}{
	{ebiten.StandardGamepadAxisLeftStickHorizontal, input.LeftStickX, 1},
	{ebiten.StandardGamepadAxisLeftStickVertical, input.LeftStickY, -1},
	{ebiten.StandardGamepadAxisRightStickHorizontal, input.RightStickX, 1},
	{ebiten.StandardGamepadAxisRightStickVertical, input.RightStickY, -1},
}

// cursorMode maps the requested cursor state to an ebiten mode
// Locked implies captured (and hidden); unlocked picks visibility
func cursorMode(visible, locked bool) ebiten.CursorModeType {
	switch {
	case locked:
		return ebiten.CursorModeCaptured
	case visible:
		return ebiten.CursorModeVisible
	default:
		return ebiten.CursorModeHidden
	}
}
