package system

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/gamefeel/engine"
	"github.com/lixenwraith/gamefeel/input"
	"github.com/lixenwraith/gamefeel/parameter"
)

// CursorToggleSystem flips cursor visibility and capture on an escape key-down edge
// Independent of GameState: toggling never pauses or resumes
type CursorToggleSystem struct {
	world  *engine.World
	escape input.Key
}

func NewCursorToggleSystem(world *engine.World, bindings input.Bindings) *CursorToggleSystem {
	return &CursorToggleSystem{
		world:  world,
		escape: bindings.Escape,
	}
}

func (s *CursorToggleSystem) Name() string {
	return "cursor_toggle"
}

func (s *CursorToggleSystem) Priority() int {
	return parameter.PriorityCursorToggle
}

func (s *CursorToggleSystem) Update(w *engine.World) {
	frame := w.Resources.Input.Frame
	for _, ev := range frame.Keys {
		if ev.Key == s.escape && ev.State == input.Pressed {
			w.Resources.Cursor.Toggle()
		}
	}
}

// CursorApplySystem is the single writer of host cursor state
// Commits the frame's last cursor request to the controller
type CursorApplySystem struct {
	world      *engine.World
	controller engine.CursorController
	logger     *zap.Logger
}

// NewCursorApplySystem creates the cursor writer; a nil controller tracks state only
func NewCursorApplySystem(world *engine.World, controller engine.CursorController) *CursorApplySystem {
	return &CursorApplySystem{
		world:      world,
		controller: controller,
		logger:     world.Logger.Named("cursor"),
	}
}

func (s *CursorApplySystem) Name() string {
	return "cursor_apply"
}

func (s *CursorApplySystem) Priority() int {
	return parameter.PriorityCursorApply
}

func (s *CursorApplySystem) Update(w *engine.World) {
	if !w.Resources.Cursor.Apply(s.controller) {
		return
	}
	cur := w.Resources.Cursor.Current()
	s.logger.Debug("cursor applied",
		zap.Bool("visible", cur.Visible),
		zap.Bool("locked", cur.Locked),
	)
}
