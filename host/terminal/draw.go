package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gamefeel/engine"
	"github.com/lixenwraith/gamefeel/parameter"
	"github.com/lixenwraith/gamefeel/render"
)

const (
	runeGridV    = '|'
	runeGridH    = '-'
	runeGridX    = '+'
	runeAxisV    = ':'
	runeAxisH    = '='
	runePlayer   = '@'
	runeFacing   = '*'
	viewAspect   = 0.5
	panelMargin  = 1
	statusFooter = 2
)

func tcolor(c render.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

var (
	styleBackground = tcell.StyleDefault.Background(tcolor(render.RGBBackground)).Foreground(tcolor(render.RGBText))
	styleGrid       = styleBackground.Foreground(tcolor(render.RGBGrid))
	styleAxis       = styleBackground.Foreground(tcolor(render.RGBAxis))
	stylePlayer     = styleBackground.Foreground(tcolor(render.RGBPlayer)).Bold(true)
	styleFacing     = styleBackground.Foreground(tcolor(render.RGBFacing))
	stylePanel      = tcell.StyleDefault.Background(tcolor(render.RGBPanel)).Foreground(tcolor(render.RGBText))
	stylePaused     = styleBackground.Foreground(tcolor(render.RGBPaused)).Bold(true)
)

// draw renders the snapshot: grid, player and facing, then panels and footer
func (h *Host) draw(snap engine.Snapshot) {
	s := h.screen
	s.Clear()
	w, hgt := s.Size()
	if w <= 0 || hgt <= 0 {
		return
	}

	// Cells are about twice as tall as wide, so X gets double the cells per unit
	rc := render.NewRenderContext(snap, w, hgt, parameter.ViewCellsPerUnit*2, viewAspect)
	drawGrid(s, rc)

	px, py := rc.PlayerScreen()
	fx, fy := rc.FacingScreen()
	drawSegment(s, px, py, fx, fy, runeFacing, styleFacing)
	s.SetContent(cell(px), cell(py), runePlayer, nil, stylePlayer)

	y := 0
	for _, p := range render.Panels(snap) {
		for _, row := range p.Text(parameter.PanelWidth) {
			putString(s, panelMargin, y, row, stylePanel)
			y++
		}
		y++
	}

	footer := styleBackground
	if snap.Paused {
		footer = stylePaused
	}
	putString(s, panelMargin, hgt-statusFooter, render.Truncate(rc.StatusLine(), w-panelMargin), footer)
	putString(s, panelMargin, hgt-1, render.Truncate(snap.Summary, w-panelMargin), styleBackground)

	if h.visible && h.mouse.tracked {
		s.ShowCursor(h.mouse.x, h.mouse.y)
	} else {
		s.HideCursor()
	}
	s.Show()
}

func drawGrid(s tcell.Screen, rc render.RenderContext) {
	cols := make(map[int]bool)
	for _, l := range rc.GridLines() {
		if l.X0 != l.X1 {
			continue
		}
		x := cell(l.X0)
		r, st := runeGridV, styleGrid
		if l.Axis {
			r, st = runeAxisV, styleAxis
		}
		for y := 0; y < rc.Height; y++ {
			s.SetContent(x, y, r, nil, st)
		}
		cols[x] = true
	}
	for _, l := range rc.GridLines() {
		if l.Y0 != l.Y1 {
			continue
		}
		y := cell(l.Y0)
		r, st := runeGridH, styleGrid
		if l.Axis {
			r, st = runeAxisH, styleAxis
		}
		for x := 0; x < rc.Width; x++ {
			if cols[x] {
				s.SetContent(x, y, runeGridX, nil, st)
				continue
			}
			s.SetContent(x, y, r, nil, st)
		}
	}
}

// drawSegment plots a line by stepping along its longer screen extent
func drawSegment(s tcell.Screen, x0, y0, x1, y1 float64, r rune, st tcell.Style) {
	steps := int(math.Ceil(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))))
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		s.SetContent(cell(x0+(x1-x0)*t), cell(y0+(y1-y0)*t), r, nil, st)
	}
}

func putString(s tcell.Screen, x, y int, str string, st tcell.Style) {
	for _, r := range str {
		s.SetContent(x, y, r, nil, st)
		x++
	}
}

func cell(v float64) int {
	return int(math.Floor(v))
}
