package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/gamefeel/engine"
	"github.com/lixenwraith/gamefeel/input"
	"github.com/lixenwraith/gamefeel/parameter"
)

type fakeSim struct {
	frames []input.Frame
	snap   engine.Snapshot
}

func (f *fakeSim) Step(fr *input.Frame) {
	c := *fr
	c.Keys = append([]input.KeyEvent(nil), fr.Keys...)
	c.MouseButtons = append([]input.MouseButtonEvent(nil), fr.MouseButtons...)
	c.Motion = append([]mgl64.Vec2(nil), fr.Motion...)
	f.frames = append(f.frames, c)
}

func (f *fakeSim) Snapshot() engine.Snapshot { return f.snap }

func TestKeysFor(t *testing.T) {
	assert.Equal(t, []input.Key{input.KeyW}, keysFor(tcell.KeyRune, 'w', tcell.ModNone))
	assert.Equal(t, []input.Key{input.ShiftLeft, input.KeyW}, keysFor(tcell.KeyRune, 'W', tcell.ModNone))
	assert.Equal(t, []input.Key{input.Space}, keysFor(tcell.KeyRune, ' ', tcell.ModNone))
	assert.Equal(t, []input.Key{input.Escape}, keysFor(tcell.KeyEscape, 0, tcell.ModNone))
	assert.Equal(t, []input.Key{input.ShiftLeft, input.ArrowUp}, keysFor(tcell.KeyUp, 0, tcell.ModShift))
	assert.Nil(t, keysFor(tcell.KeyRune, '?', tcell.ModNone))
}

func TestHoldTrackerSynthesizesRelease(t *testing.T) {
	t0 := time.Unix(0, 0)
	h := newHoldTracker(500 * time.Millisecond)

	assert.True(t, h.touch(input.KeyW, t0))
	assert.False(t, h.touch(input.KeyW, t0.Add(100*time.Millisecond)), "repeat is not a new press")
	assert.True(t, h.held().Pressed(input.KeyW))

	// Repeat at 100ms extends the hold to 600ms
	assert.Empty(t, h.expire(nil, t0.Add(550*time.Millisecond)))

	h.touch(input.KeyA, t0.Add(200*time.Millisecond))
	released := h.expire(nil, t0.Add(700*time.Millisecond))
	assert.Equal(t, []input.KeyEvent{
		{Key: input.KeyA, State: input.Released},
		{Key: input.KeyW, State: input.Released},
	}, released)
	assert.True(t, h.held().Empty())
}

func TestMouseTrackerTransitionsAndMotion(t *testing.T) {
	var m mouseTracker

	ev, _, moved := m.update(nil, 10, 10, tcell.ButtonNone, false)
	assert.Empty(t, ev)
	assert.False(t, moved, "first report is the baseline")

	// Hover without lock or drag produces no motion
	_, _, moved = m.update(nil, 12, 10, tcell.ButtonNone, false)
	assert.False(t, moved)

	ev, _, _ = m.update(nil, 12, 10, tcell.ButtonPrimary, false)
	assert.Equal(t, []input.MouseButtonEvent{{Button: input.MouseLeft, State: input.Pressed}}, ev)

	_, d, moved := m.update(nil, 13, 9, tcell.ButtonPrimary, false)
	require.True(t, moved)
	assert.Equal(t, mgl64.Vec2{parameter.TerminalMotionScale, -parameter.TerminalMotionScale}, d)

	ev, _, _ = m.update(nil, 13, 9, tcell.ButtonNone, false)
	assert.Equal(t, []input.MouseButtonEvent{{Button: input.MouseLeft, State: input.Released}}, ev)

	_, d, moved = m.update(nil, 11, 9, tcell.ButtonNone, true)
	require.True(t, moved, "locked cursor samples hover motion")
	assert.Equal(t, mgl64.Vec2{-2 * parameter.TerminalMotionScale, 0}, d)

	// Wheel bits are not buttons
	ev, _, _ = m.update(nil, 11, 9, tcell.WheelUp, true)
	assert.Empty(t, ev)
}

func newTestHost(t *testing.T) (*Host, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	h := New(Options{Screen: screen})
	h.screen = screen
	return h, screen
}

func TestStepBuildsFrames(t *testing.T) {
	h, _ := newTestHost(t)
	sim := &fakeSim{}
	t0 := time.Unix(100, 0)
	h.last = t0

	h.keyDown(tcell.KeyRune, 'w', tcell.ModNone, t0)
	h.keyDown(tcell.KeyRune, 'w', tcell.ModNone, t0.Add(10*time.Millisecond))
	h.step(sim, t0.Add(16*time.Millisecond))

	require.Len(t, sim.frames, 1)
	f := sim.frames[0]
	assert.Equal(t, 16*time.Millisecond, f.Delta)
	assert.Equal(t, []input.KeyEvent{{Key: input.KeyW, State: input.Pressed}}, f.Keys)
	assert.True(t, f.Held.Pressed(input.KeyW))

	// Long stall is clamped and the hold lapses into a release
	h.step(sim, t0.Add(2*time.Second))
	f = sim.frames[1]
	assert.Equal(t, parameter.MaxFrameDelta, f.Delta)
	assert.Equal(t, []input.KeyEvent{{Key: input.KeyW, State: input.Released}}, f.Keys)
	assert.True(t, f.Held.Empty())
}

func TestCursorLockSamplesMotion(t *testing.T) {
	h, _ := newTestHost(t)
	sim := &fakeSim{}
	h.last = time.Unix(0, 0)

	h.SetCursor(false, true)
	h.mouseReport(5, 5, tcell.ButtonNone)
	h.mouseReport(7, 5, tcell.ButtonNone)
	h.step(sim, time.Unix(0, 0))
	require.Len(t, sim.frames[0].Motion, 1)

	h.SetCursor(true, false)
	h.mouseReport(5, 5, tcell.ButtonNone)
	h.mouseReport(9, 5, tcell.ButtonNone)
	h.step(sim, time.Unix(0, 0))
	assert.Empty(t, sim.frames[1].Motion)
}

func TestDrawPlacesPlayerAtCenter(t *testing.T) {
	h, screen := newTestHost(t)
	snap := engine.Snapshot{Facing: [2]float64{0, -1}, Summary: "frame 1", Paused: true}
	h.draw(snap)

	cells, w, _ := screen.GetContents()
	at := func(x, y int) rune {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			return ' '
		}
		return c.Runes[0]
	}
	assert.Equal(t, runePlayer, at(40, 12))
	assert.Equal(t, runeFacing, at(40, 11))
	assert.Equal(t, 'I', at(panelMargin, 0), "input panel title")
}
