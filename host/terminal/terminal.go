// Package terminal hosts the simulation in a terminal using tcell
// Key-up is synthesized from a hold window and the view is an ASCII top-down map
package terminal

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/lixenwraith/gamefeel/host"
	"github.com/lixenwraith/gamefeel/input"
	"github.com/lixenwraith/gamefeel/parameter"
)

// Options configures the terminal host
type Options struct {
	Logger *zap.Logger
	// Screen overrides the terminal screen, e.g. a simulation screen in tests
	Screen tcell.Screen
}

// Host polls tcell events into frames on a fixed ticker
// Implements engine.CursorController
type Host struct {
	opts   Options
	logger *zap.Logger
	screen tcell.Screen

	frame input.Frame
	holds *holdTracker
	mouse mouseTracker
	last  time.Time

	visible bool
	locked  bool
}

func New(opts Options) *Host {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Host{
		opts:   opts,
		logger: logger.Named("terminal"),
		holds:  newHoldTracker(parameter.TerminalHoldWindow),
	}
}

// SetCursor records the cursor mode; the pointer is drawn on the next frame
// Terminals cannot confine the pointer, so locking only changes motion sampling
func (h *Host) SetCursor(visible, locked bool) {
	h.visible, h.locked = visible, locked
	h.mouse.tracked = false
}

// Run owns the screen until Ctrl+C or ctx is done
func (h *Host) Run(ctx context.Context, sim host.Simulation) error {
	screen := h.opts.Screen
	if screen == nil {
		var err error
		if screen, err = tcell.NewScreen(); err != nil {
			return fmt.Errorf("terminal screen: %w", err)
		}
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	h.screen = screen
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.SetStyle(styleBackground)
	screen.Clear()

	eventChan := make(chan tcell.Event, parameter.TerminalEventBuffer)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	w, hgt := screen.Size()
	h.logger.Info("terminal starting", zap.Int("cols", w), zap.Int("rows", hgt))
	h.last = time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-eventChan:
			if h.handle(ev, time.Now()) {
				h.logger.Info("quit requested")
				return nil
			}
		case now := <-ticker.C:
			h.step(sim, now)
		}
	}
}

// handle folds one event into the pending frame; returns true on quit
func (h *Host) handle(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return true
		}
		h.keyDown(ev.Key(), ev.Rune(), ev.Modifiers(), now)
	case *tcell.EventMouse:
		x, y := ev.Position()
		h.mouseReport(x, y, ev.Buttons())
	case *tcell.EventResize:
		if h.screen != nil {
			h.screen.Sync()
		}
	}
	return false
}

// keyDown records a press or repeat; only the first report of a hold is a transition
func (h *Host) keyDown(k tcell.Key, r rune, mod tcell.ModMask, now time.Time) {
	for _, key := range keysFor(k, r, mod) {
		if h.holds.touch(key, now) {
			h.frame.Keys = append(h.frame.Keys, input.KeyEvent{Key: key, State: input.Pressed})
		}
	}
}

func (h *Host) mouseReport(x, y int, btn tcell.ButtonMask) {
	var d mgl64.Vec2
	var moved bool
	h.frame.MouseButtons, d, moved = h.mouse.update(h.frame.MouseButtons, x, y, btn, h.locked)
	if moved {
		h.frame.Motion = append(h.frame.Motion, d)
	}
}

// step closes the pending frame, runs it and redraws
func (h *Host) step(sim host.Simulation, now time.Time) {
	f := &h.frame
	f.Delta = now.Sub(h.last)
	if f.Delta > parameter.MaxFrameDelta {
		f.Delta = parameter.MaxFrameDelta
	}
	h.last = now

	f.Keys = h.holds.expire(f.Keys, now)
	f.Held = h.holds.held()

	sim.Step(f)
	if h.screen != nil {
		h.draw(sim.Snapshot())
	}
	f.Reset()
}
