// Package window hosts the simulation in a desktop window using ebiten
package window

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/lixenwraith/gamefeel/host"
	"github.com/lixenwraith/gamefeel/input"
	"github.com/lixenwraith/gamefeel/parameter"
	"github.com/lixenwraith/gamefeel/render"
)

const (
	lineHeight = 16
	panelPad   = 8
	playerSize = 8
)

// Options configures the window
type Options struct {
	Width  int
	Height int
	Title  string
	Logger *zap.Logger
}

// Host samples ebiten input into frames and draws the debug view
// Implements ebiten.Game and engine.CursorController
type Host struct {
	opts   Options
	logger *zap.Logger
	sim    host.Simulation
	ctx    context.Context

	frame   input.Frame
	keyBuf  []ebiten.Key
	padIDs  []ebiten.GamepadID
	pads    map[ebiten.GamepadID]*padState
	cursorX int
	cursorY int
	tracked bool
}

func New(opts Options) *Host {
	if opts.Width <= 0 {
		opts.Width = parameter.WindowWidth
	}
	if opts.Height <= 0 {
		opts.Height = parameter.WindowHeight
	}
	if opts.Title == "" {
		opts.Title = parameter.WindowTitle
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Host{
		opts:   opts,
		logger: logger.Named("window"),
		pads:   make(map[ebiten.GamepadID]*padState),
	}
}

// SetCursor applies the cursor mode; called on the ebiten update goroutine
func (h *Host) SetCursor(visible, locked bool) {
	ebiten.SetCursorMode(cursorMode(visible, locked))
	// Mode switches can warp the pointer; resync to avoid a look jump
	h.tracked = false
}

// Run opens the window and blocks until it closes or ctx is done
func (h *Host) Run(ctx context.Context, sim host.Simulation) error {
	h.ctx = ctx
	h.sim = sim

	ebiten.SetWindowSize(h.opts.Width, h.opts.Height)
	ebiten.SetWindowTitle(h.opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	h.logger.Info("window starting", zap.Int("width", h.opts.Width), zap.Int("height", h.opts.Height))
	if err := ebiten.RunGame(h); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window run: %w", err)
	}
	return nil
}

// Update samples devices and steps one frame
func (h *Host) Update() error {
	if h.ctx != nil && h.ctx.Err() != nil {
		return ebiten.Termination
	}

	f := &h.frame
	f.Reset()
	f.Delta = time.Second / time.Duration(ebiten.TPS())

	h.sampleKeys(f)
	h.sampleMouse(f)
	h.sampleGamepads(f)

	h.sim.Step(f)
	return nil
}

func (h *Host) sampleKeys(f *input.Frame) {
	f.Held = input.KeySet{}
	for ek, k := range keyMap {
		if ebiten.IsKeyPressed(ek) {
			f.Held.Press(k)
		}
	}

	h.keyBuf = inpututil.AppendJustPressedKeys(h.keyBuf[:0])
	for _, ek := range h.keyBuf {
		if k, ok := keyMap[ek]; ok {
			f.Keys = append(f.Keys, input.KeyEvent{Key: k, State: input.Pressed})
		}
	}
	h.keyBuf = inpututil.AppendJustReleasedKeys(h.keyBuf[:0])
	for _, ek := range h.keyBuf {
		if k, ok := keyMap[ek]; ok {
			f.Keys = append(f.Keys, input.KeyEvent{Key: k, State: input.Released})
		}
	}
}

func (h *Host) sampleMouse(f *input.Frame) {
	for _, m := range mouseMap {
		if inpututil.IsMouseButtonJustPressed(m.eb) {
			f.MouseButtons = append(f.MouseButtons, input.MouseButtonEvent{Button: m.in, State: input.Pressed})
		}
		if inpututil.IsMouseButtonJustReleased(m.eb) {
			f.MouseButtons = append(f.MouseButtons, input.MouseButtonEvent{Button: m.in, State: input.Released})
		}
	}

	x, y := ebiten.CursorPosition()
	if h.tracked && (x != h.cursorX || y != h.cursorY) {
		f.Motion = append(f.Motion, mgl64.Vec2{float64(x - h.cursorX), float64(y - h.cursorY)})
	}
	h.cursorX, h.cursorY, h.tracked = x, y, true
}

func (h *Host) sampleGamepads(f *input.Frame) {
	h.padIDs = ebiten.AppendGamepadIDs(h.padIDs[:0])
	for _, id := range h.padIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}

		prev, ok := h.pads[id]
		if !ok {
			prev = &padState{}
			h.pads[id] = prev
			h.logger.Info("gamepad connected", zap.Int("id", int(id)), zap.String("name", ebiten.GamepadName(id)))
		}

		var next padState
		for i, b := range padButtonMap {
			next.buttons[i] = ebiten.StandardGamepadButtonValue(id, b.eb)
		}
		for i, a := range padAxisMap {
			next.axes[i] = a.sign * ebiten.StandardGamepadAxisValue(id, a.eb)
		}

		f.Gamepad = diff(f.Gamepad, int(id), prev, &next)
		*prev = next
	}

	for id := range h.pads {
		if inpututil.IsGamepadJustDisconnected(id) {
			delete(h.pads, id)
			h.logger.Info("gamepad disconnected", zap.Int("id", int(id)))
		}
	}
}

// Draw renders the top-down view and overlay from the last snapshot
func (h *Host) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	rc := render.NewRenderContext(h.sim.Snapshot(), b.Dx(), b.Dy(), parameter.ViewPixelsPerUnit, 1)

	screen.Fill(render.RGBBackground.RGBA())

	for _, l := range rc.GridLines() {
		c := render.RGBGrid
		if l.Axis {
			c = render.RGBAxis
		}
		vector.StrokeLine(screen, float32(l.X0), float32(l.Y0), float32(l.X1), float32(l.Y1), 1, c.RGBA(), false)
	}

	px, py := rc.PlayerScreen()
	fx, fy := rc.FacingScreen()
	vector.StrokeLine(screen, float32(px), float32(py), float32(fx), float32(fy), 2, render.RGBFacing.RGBA(), true)
	vector.DrawFilledCircle(screen, float32(px), float32(py), playerSize, render.RGBPlayer.RGBA(), true)

	y := panelPad
	for _, p := range render.Panels(rc.Snapshot) {
		for _, row := range p.Text(parameter.PanelWidth) {
			ebitenutil.DebugPrintAt(screen, row, panelPad, y)
			y += lineHeight
		}
		y += lineHeight / 2
	}

	ebitenutil.DebugPrintAt(screen, rc.StatusLine(), panelPad, b.Dy()-2*lineHeight-panelPad)
	ebitenutil.DebugPrintAt(screen, rc.Snapshot.Summary, panelPad, b.Dy()-lineHeight-panelPad)
}

// Layout uses the window size one-to-one
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
