package input

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/gamefeel/event"
	"github.com/lixenwraith/gamefeel/parameter"
)

func newTestTranslator() (*Translator, *event.Log[string]) {
	recent := event.NewLog[string](parameter.RecentLogCapacity)
	return NewTranslator(DefaultBindings(), DefaultGamepadTuning(), recent), recent
}

func eventsOfType(evs []event.GameEvent, et event.EventType) []event.GameEvent {
	var out []event.GameEvent
	for _, ev := range evs {
		if ev.Type == et {
			out = append(out, ev)
		}
	}
	return out
}

func TestMoveIsUnitLengthForEveryKeyCombination(t *testing.T) {
	tr, _ := newTestTranslator()
	keys := []Key{KeyW, KeyA, KeyS, KeyD}

	for mask := 1; mask < 1<<len(keys); mask++ {
		var f Frame
		for i, k := range keys {
			if mask&(1<<i) != 0 {
				f.Held.Press(k)
			}
		}
		moves := eventsOfType(tr.Translate(nil, &f, false), event.EventMove)

		// Opposing pairs cancel to zero and emit nothing
		if len(moves) == 0 {
			continue
		}
		require.Len(t, moves, 1, "mask %04b", mask)
		assert.InDelta(t, 1.0, moves[0].Dir.Len(), 1e-9, "mask %04b", mask)
	}
}

func TestMoveDirections(t *testing.T) {
	tr, _ := newTestTranslator()
	tests := []struct {
		held []Key
		want mgl64.Vec2
	}{
		{[]Key{KeyW}, mgl64.Vec2{0, 1}},
		{[]Key{KeyS}, mgl64.Vec2{0, -1}},
		{[]Key{KeyA}, mgl64.Vec2{-1, 0}},
		{[]Key{KeyD}, mgl64.Vec2{1, 0}},
	}
	for _, tt := range tests {
		var f Frame
		for _, k := range tt.held {
			f.Held.Press(k)
		}
		moves := eventsOfType(tr.Translate(nil, &f, false), event.EventMove)
		require.Len(t, moves, 1)
		assert.InDelta(t, tt.want[0], moves[0].Dir[0], 1e-9, "held %v", tt.held)
		assert.InDelta(t, tt.want[1], moves[0].Dir[1], 1e-9, "held %v", tt.held)
	}
}

func TestOpposingKeysEmitNoMove(t *testing.T) {
	tr, _ := newTestTranslator()
	var f Frame
	f.Held.Press(KeyW)
	f.Held.Press(KeyS)
	assert.Empty(t, eventsOfType(tr.Translate(nil, &f, false), event.EventMove))
}

func TestSprintEmittedEveryFrame(t *testing.T) {
	tr, _ := newTestTranslator()

	var idle Frame
	sprints := eventsOfType(tr.Translate(nil, &idle, false), event.EventSprint)
	require.Len(t, sprints, 1)
	assert.False(t, sprints[0].Enabled)

	var held Frame
	held.Held.Press(ShiftLeft)
	sprints = eventsOfType(tr.Translate(nil, &held, false), event.EventSprint)
	require.Len(t, sprints, 1)
	assert.True(t, sprints[0].Enabled)
}

func TestIdleFrameEmitsOnlySprint(t *testing.T) {
	tr, recent := newTestTranslator()
	var f Frame
	evs := tr.Translate(nil, &f, false)
	require.Len(t, evs, 1)
	assert.Equal(t, event.EventSprint, evs[0].Type)
	assert.Zero(t, recent.Len())
}

func TestJumpOnKeyDownOnly(t *testing.T) {
	tr, _ := newTestTranslator()
	f := Frame{Keys: []KeyEvent{{Space, Pressed}, {Space, Released}}}
	assert.Len(t, eventsOfType(tr.Translate(nil, &f, false), event.EventJump), 1)
}

func TestFireOnPrimaryButtonDown(t *testing.T) {
	tr, _ := newTestTranslator()
	f := Frame{MouseButtons: []MouseButtonEvent{
		{MouseLeft, Pressed},
		{MouseLeft, Released},
		{MouseRight, Pressed},
	}}
	assert.Len(t, eventsOfType(tr.Translate(nil, &f, false), event.EventFire), 1)
}

func TestPauseKeyRequestsOppositeState(t *testing.T) {
	tr, _ := newTestTranslator()
	f := Frame{Keys: []KeyEvent{{KeyP, Pressed}}}

	p := eventsOfType(tr.Translate(nil, &f, false), event.EventPause)
	require.Len(t, p, 1)
	assert.True(t, p[0].Enabled)

	p = eventsOfType(tr.Translate(nil, &f, true), event.EventPause)
	require.Len(t, p, 1)
	assert.False(t, p[0].Enabled)
}

func TestGamepadButtons(t *testing.T) {
	tr, _ := newTestTranslator()
	f := Frame{Gamepad: []GamepadEvent{
		{Kind: GamepadButtonChanged, Button: South, Value: 1},
		{Kind: GamepadButtonChanged, Button: South, Value: 0},
		{Kind: GamepadButtonChanged, Button: RightTrigger2, Value: 0.8},
		{Kind: GamepadButtonChanged, Button: LeftTrigger, Value: 0.9},
		{Kind: GamepadButtonChanged, Button: LeftTrigger, Value: 0.1},
		{Kind: GamepadButtonChanged, Button: LeftTrigger, Value: 0.5},
	}}
	evs := tr.Translate(nil, &f, false)

	assert.Len(t, eventsOfType(evs, event.EventJump), 1)
	assert.Len(t, eventsOfType(evs, event.EventFire), 1)

	// First Sprint is the keyboard per-frame one; exactly 0.5 emits nothing
	sprints := eventsOfType(evs, event.EventSprint)
	require.Len(t, sprints, 3)
	assert.False(t, sprints[0].Enabled)
	assert.True(t, sprints[1].Enabled)
	assert.False(t, sprints[2].Enabled)
}

func TestGamepadTriggerFlutterNotDeduplicated(t *testing.T) {
	tr, _ := newTestTranslator()
	f := Frame{Gamepad: []GamepadEvent{
		{Kind: GamepadButtonChanged, Button: LeftTrigger, Value: 0.51},
		{Kind: GamepadButtonChanged, Button: LeftTrigger, Value: 0.52},
	}}
	sprints := eventsOfType(tr.Translate(nil, &f, false), event.EventSprint)
	require.Len(t, sprints, 3)
	assert.True(t, sprints[1].Enabled)
	assert.True(t, sprints[2].Enabled)
}

func TestGamepadStickDeadzone(t *testing.T) {
	tr, _ := newTestTranslator()

	below := Frame{Gamepad: []GamepadEvent{
		{Kind: GamepadAxisChanged, Axis: LeftStickX, Value: 0.19},
		{Kind: GamepadAxisChanged, Axis: LeftStickY, Value: -0.2},
	}}
	assert.Empty(t, eventsOfType(tr.Translate(nil, &below, false), event.EventMove))

	past := Frame{Gamepad: []GamepadEvent{
		{Kind: GamepadAxisChanged, Axis: LeftStickY, Value: 0.21},
	}}
	moves := eventsOfType(tr.Translate(nil, &past, false), event.EventMove)
	require.Len(t, moves, 1)
	assert.InDelta(t, 1.0, moves[0].Dir.Len(), 1e-9)
	assert.InDelta(t, 0, moves[0].Dir[0], 1e-9)
	assert.InDelta(t, 1, moves[0].Dir[1], 1e-9)
}

func TestGamepadRightStickIgnored(t *testing.T) {
	tr, _ := newTestTranslator()
	f := Frame{Gamepad: []GamepadEvent{{Kind: GamepadAxisChanged, Axis: RightStickX, Value: 1}}}
	assert.Empty(t, eventsOfType(tr.Translate(nil, &f, false), event.EventMove))
}

func TestRawEventsDescribedAndTrimmed(t *testing.T) {
	tr, recent := newTestTranslator()
	f := Frame{
		Keys: []KeyEvent{
			{KeyW, Pressed}, {KeyW, Released}, {Space, Pressed}, {Space, Released},
		},
		MouseButtons: []MouseButtonEvent{{MouseLeft, Pressed}},
		Gamepad:      []GamepadEvent{{Gamepad: 0, Kind: GamepadButtonChanged, Button: South, Value: 1}},
		Motion:       []mgl64.Vec2{{3, 4}},
	}
	tr.Translate(nil, &f, false)

	assert.Equal(t, []string{
		"Keyboard: KeyW Released",
		"Keyboard: Space Pressed",
		"Keyboard: Space Released",
		"Mouse: Left Pressed",
		"Gamepad: #0 Button South 1.00",
	}, recent.Snapshot())
}

func TestCustomBindings(t *testing.T) {
	names := DefaultBindingNames()
	names.Forward = "ArrowUp"
	names.Jump = "KeyJ"
	b, err := names.Resolve()
	require.NoError(t, err)

	tr := NewTranslator(b, DefaultGamepadTuning(), nil)
	f := Frame{Keys: []KeyEvent{{KeyJ, Pressed}, {Space, Pressed}}}
	f.Held.Press(ArrowUp)

	evs := tr.Translate(nil, &f, false)
	assert.Len(t, eventsOfType(evs, event.EventJump), 1)
	assert.Len(t, eventsOfType(evs, event.EventMove), 1)
}
